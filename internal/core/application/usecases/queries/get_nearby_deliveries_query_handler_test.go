package queries

import (
	"testing"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestLatitudeSpan_CoversRadius(t *testing.T) {
	span := latitudeSpan(services.NearbyRadiusKm)

	assert.InDelta(t, 0.0899, span, 1e-4)
	// a meridian step of span degrees is exactly the radius
	assert.InDelta(t, services.NearbyRadiusKm, kernel.DistanceKm(-23.5, -46.6, -23.5+span, -46.6), 1e-6)
	// any longitude offset only makes the distance longer
	assert.Greater(t, kernel.DistanceKm(-23.5, -46.6, -23.5+span, -46.5), services.NearbyRadiusKm)
}
