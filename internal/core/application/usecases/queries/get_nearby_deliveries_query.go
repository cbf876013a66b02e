package queries

import (
	"errors"

	"fastfeet/internal/core/domain/model/access"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/guard"
)

var ErrGetNearbyDeliveriesQueryIsNotConstructed = errors.New(
	"GetNearbyDeliveriesQuery must be created via NewGetNearbyDeliveriesQuery constructor",
)

// GetNearbyDeliveriesQuery finds the AGUARDANDO deliveries whose recipient lives
// less than services.NearbyRadiusKm from the given point.
//
//	query, err := NewGetNearbyDeliveriesQuery(caller, -23.55052, -46.633308)
type GetNearbyDeliveriesQuery struct {
	caller access.Caller
	origin kernel.Location

	guard guard.ConstructorGuard
}

// NewGetNearbyDeliveriesQuery rejects NaN, infinite and out-of-range coordinates.
func NewGetNearbyDeliveriesQuery(caller access.Caller, latitude float64, longitude float64) (GetNearbyDeliveriesQuery, error) {
	if err := caller.RequireAuthenticated("find nearby deliveries"); err != nil {
		return GetNearbyDeliveriesQuery{}, err
	}

	origin, err := kernel.NewLocation(latitude, longitude)
	if err != nil {
		return GetNearbyDeliveriesQuery{}, err
	}

	return GetNearbyDeliveriesQuery{
		caller: caller,
		origin: origin,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetNearbyDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetNearbyDeliveriesQueryIsNotConstructed)
}

func (q GetNearbyDeliveriesQuery) Origin() kernel.Location { return q.origin }

type NearbyDelivery struct {
	DeliveryView
	Location   kernel.Location
	DistanceKm float64
}
