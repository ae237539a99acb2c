package geo

import (
	"fleet-savings-service/internal/domain"
	"math"
	"testing"
)

func TestDistanceZeroForIdenticalPoints(t *testing.T) {
	points := []domain.Coordinate{
		{Lat: 0, Lon: 0},
		{Lat: 33.4484, Lon: -112.074},
		{Lat: -90, Lon: 180},
	}

	for _, p := range points {
		if d := Distance(p, p); d != 0 {
			t.Errorf("Distance(%+v, %+v) = %v, want 0", p, p, d)
		}
	}
}

func TestDistanceSymmetric(t *testing.T) {
	pairs := [][2]domain.Coordinate{
		{{Lat: 33.4484, Lon: -112.074}, {Lat: 34.0522, Lon: -118.2437}},
		{{Lat: 40.7128, Lon: -74.006}, {Lat: 51.5074, Lon: -0.1278}},
		{{Lat: -33.8688, Lon: 151.2093}, {Lat: 35.6762, Lon: 139.6503}},
	}

	for _, p := range pairs {
		ab := Distance(p[0], p[1])
		ba := Distance(p[1], p[0])
		if ab != ba {
			t.Errorf("Distance not symmetric: %v vs %v for %+v", ab, ba, p)
		}
		if ab <= 0 {
			t.Errorf("Distance(%+v, %+v) = %v, want > 0", p[0], p[1], ab)
		}
	}
}

func TestDistanceKnownValues(t *testing.T) {
	// Phoenix -> Los Angeles is roughly 357 miles great-circle.
	phx := domain.Coordinate{Lat: 33.4484, Lon: -112.074}
	la := domain.Coordinate{Lat: 34.0522, Lon: -118.2437}

	d := Distance(phx, la)
	if d < 350 || d > 365 {
		t.Fatalf("Phoenix -> LA = %v miles, want ~357", d)
	}

	// One degree of latitude along a meridian is about 69.1 miles.
	a := domain.Coordinate{Lat: 0, Lon: 0}
	b := domain.Coordinate{Lat: 1, Lon: 0}
	if d := Distance(a, b); math.Abs(d-69.09) > 0.2 {
		t.Fatalf("one degree latitude = %v miles, want ~69.09", d)
	}
}
