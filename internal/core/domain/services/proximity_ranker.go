package services

import (
	"cmp"
	"slices"

	"fastfeet/internal/core/domain/model/kernel"
)

// NearbyRadiusKm bounds the nearby-delivery search. The bound is exclusive.
const NearbyRadiusKm = 10.0

// Candidate is anything with an identity and a position, typically a delivery
// located at its recipient's coordinates.
type Candidate struct {
	ID       kernel.UUID
	Location kernel.Location
}

type RankedCandidate struct {
	Candidate
	DistanceKm float64
}

// ProximityRanker keeps the candidates strictly closer than its radius to an origin
// and sorts them nearest first. Ties keep their input order.
type ProximityRanker struct {
	radiusKm float64
}

// NewNearbyDeliveryRanker returns a ranker using NearbyRadiusKm.
func NewNearbyDeliveryRanker() ProximityRanker {
	return ProximityRanker{radiusKm: NearbyRadiusKm}
}

// RadiusKm is the exclusive search radius. Callers may use it to narrow the
// candidates they load before ranking.
func (r ProximityRanker) RadiusKm() float64 {
	return r.radiusKm
}

func (r ProximityRanker) Rank(origin kernel.Location, candidates []Candidate) ([]RankedCandidate, error) {
	if err := origin.Validate(); err != nil {
		return nil, err
	}

	ranked := make([]RankedCandidate, 0, len(candidates))
	for _, c := range candidates {
		d, err := origin.DistanceTo(c.Location)
		if err != nil {
			return nil, err
		}
		if d < r.radiusKm {
			ranked = append(ranked, RankedCandidate{Candidate: c, DistanceKm: d})
		}
	}

	slices.SortStableFunc(ranked, func(a, b RankedCandidate) int {
		return cmp.Compare(a.DistanceKm, b.DistanceKm)
	})

	return ranked, nil
}
