package geo

import (
	"fleet-savings-service/internal/domain"
	"math"
)

// Earth's mean radius in miles. All distances in the service are miles.
const earthRadiusMiles = 3958.7613

// Distance returns the great-circle distance between two coordinates in miles,
// computed with the Haversine formula. Pure function: symmetric, zero for
// identical coordinates, never fails for in-range inputs (callers validate
// ranges at Coordinate construction).
func Distance(a, b domain.Coordinate) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Lat*math.Pi/180)*math.Cos(b.Lat*math.Pi/180)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMiles * c
}
