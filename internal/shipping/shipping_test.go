package shipping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCost_FloorDominatesShortTrips(t *testing.T) {
	assert.Equal(t, 1000, Cost(0.01, 650))
	assert.Equal(t, 1000, Cost(0, 650))
	assert.Equal(t, 6500, Cost(10, 650))
	assert.Equal(t, 1040, Cost(1.6, 650))
}

func TestHaversineKm_SamePointIsZero(t *testing.T) {
	assert.Zero(t, HaversineKm(9.86, -83.92, 9.86, -83.92))
}

func TestHaversineKm_OneDegreeOfLatitude(t *testing.T) {
	// one degree along a meridian is ~111.19 km on a 6371 km sphere
	assert.InDelta(t, 111.19, HaversineKm(0, 0, 1, 0), 0.05)
}

func TestHaversineKm_Symmetry(t *testing.T) {
	d1 := HaversineKm(9.86, -83.92, 9.9325, -84.0796)
	d2 := HaversineKm(9.9325, -84.0796, 9.86, -83.92)
	assert.InDelta(t, d1, d2, 1e-9)
	assert.Greater(t, d1, 10.0)
	assert.Less(t, d1, 30.0)
}

func TestCost_Deterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, Cost(12.34, 650), Cost(12.34, 650))
	}
}
