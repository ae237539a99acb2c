package domain

import "fmt"

// Immutable geographic coordinate (latitude, longitude) in signed degrees.
// Construct via NewCoordinate so out-of-range values never reach distance math.
type Coordinate struct {
	Lat float64
	Lon float64
}

func NewCoordinate(lat, lon float64) (Coordinate, error) {
	if lat < -90 || lat > 90 {
		return Coordinate{}, fmt.Errorf("new coordinate: latitude %v out of range [-90, 90]", lat)
	}
	if lon < -180 || lon > 180 {
		return Coordinate{}, fmt.Errorf("new coordinate: longitude %v out of range [-180, 180]", lon)
	}
	return Coordinate{Lat: lat, Lon: lon}, nil
}
