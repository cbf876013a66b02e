package queries

import (
	"context"
	"math"

	"fastfeet/internal/core/domain/model/delivery"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetNearbyDeliveriesQueryHandler loads the AGUARDANDO deliveries whose recipient
// lies in the latitude band of the search radius and lets the ProximityRanker
// apply the exact distance rule and order them.
type GetNearbyDeliveriesQueryHandler struct {
	db     *gorm.DB
	ranker services.ProximityRanker
}

func NewGetNearbyDeliveriesQueryHandler(db *gorm.DB, ranker services.ProximityRanker) GetNearbyDeliveriesQueryHandler {
	return GetNearbyDeliveriesQueryHandler{
		db:     db,
		ranker: ranker,
	}
}

// Handle returns the matches nearest first.
func (h GetNearbyDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetNearbyDeliveriesQuery,
) ([]NearbyDelivery, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	origin := query.Origin()
	span := latitudeSpan(h.ranker.RadiusKm())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+deliveryColumns+`,
			r.location_latitude,
			r.location_longitude
		FROM deliveries d
		JOIN recipients r ON r.id = d.recipient_id
		WHERE d.status = ?
			AND r.location_latitude BETWEEN ? AND ?
	`, delivery.Awaiting.String(), origin.Latitude()-span, origin.Latitude()+span).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make(map[kernel.UUID]DeliveryView)
	candidates := make([]services.Candidate, 0)

	for rows.Next() {
		var row deliveryRow
		var latitude, longitude float64

		err = rows.Scan(
			&row.ID,
			&row.RecipientID,
			&row.AdminID,
			&row.CourierID,
			&row.Status,
			&row.PhotoURL,
			&row.CreatedAt,
			&row.UpdatedAt,
			&latitude,
			&longitude,
		)
		if err != nil {
			return nil, err
		}

		view, convErr := row.toView()
		if convErr != nil {
			return nil, convErr
		}

		loc, locErr := kernel.NewLocation(latitude, longitude)
		if locErr != nil {
			return nil, locErr
		}

		views[view.ID] = view
		candidates = append(candidates, services.Candidate{ID: view.ID, Location: loc})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	ranked, err := h.ranker.Rank(origin, candidates)
	if err != nil {
		return nil, err
	}

	nearby := make([]NearbyDelivery, 0, len(ranked))
	for _, rc := range ranked {
		nearby = append(nearby, NearbyDelivery{
			DeliveryView: views[rc.ID],
			Location:     rc.Location,
			DistanceKm:   rc.DistanceKm,
		})
	}

	return nearby, nil
}

// latitudeSpan is the latitude difference, in degrees, that a great-circle
// distance of radiusKm can never be shorter than.
func latitudeSpan(radiusKm float64) float64 {
	return radiusKm / (kernel.EarthRadiusKm * math.Pi / 180)
}
