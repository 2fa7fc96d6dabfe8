// Package shipping holds the delivery pricing math: great-circle distance
// from the shop to the drop point and the per-kilometer cost with its fixed
// floor. Pure functions, deterministic, no state.
package shipping

import "math"

const earthRadiusKm = 6371

// MinimumCost is the shipping floor in colones: no delivery goes out for
// less, however close the address.
const MinimumCost = 1000

// HaversineKm is the great-circle distance in kilometers between two
// coordinate pairs.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// Cost converts a distance into the delivery charge, never below the floor.
func Cost(distanceKm, costPerKm float64) int {
	c := int(math.Round(distanceKm * costPerKm))
	if c < MinimumCost {
		return MinimumCost
	}
	return c
}
