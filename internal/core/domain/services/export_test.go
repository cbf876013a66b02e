package services

func NewProximityRankerWithRadius(radiusKm float64) ProximityRanker {
	return ProximityRanker{radiusKm: radiusKm}
}
