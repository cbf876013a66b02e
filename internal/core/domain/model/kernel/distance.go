package kernel

import "math"

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance in kilometres between two points
// given in decimal degrees, using the spherical law of cosines.
//
// The cosine term is clamped to [-1, 1] so that rounding never pushes it outside
// the domain of acos. Identical points yield exactly 0.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	if lat1 == lat2 && lon1 == lon2 {
		return 0
	}

	phi1 := toRadians(lat1)
	phi2 := toRadians(lat2)
	deltaLambda := toRadians(math.Abs(lon2 - lon1))

	cosC := math.Sin(phi1)*math.Sin(phi2) + math.Cos(phi1)*math.Cos(phi2)*math.Cos(deltaLambda)
	cosC = math.Max(-1, math.Min(1, cosC))

	return EarthRadiusKm * math.Acos(cosC)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
