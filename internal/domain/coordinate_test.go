package domain

import "testing"

func TestNewCoordinateValid(t *testing.T) {
	cases := []struct {
		lat, lon float64
	}{
		{0, 0},
		{90, 180},
		{-90, -180},
		{33.4484, -112.074},
	}

	for _, c := range cases {
		coord, err := NewCoordinate(c.lat, c.lon)
		if err != nil {
			t.Fatalf("NewCoordinate(%v, %v): unexpected error: %v", c.lat, c.lon, err)
		}
		if coord.Lat != c.lat || coord.Lon != c.lon {
			t.Fatalf("NewCoordinate(%v, %v) = %+v", c.lat, c.lon, coord)
		}
	}
}

func TestNewCoordinateOutOfRange(t *testing.T) {
	cases := []struct {
		name     string
		lat, lon float64
	}{
		{"lat too high", 90.0001, 0},
		{"lat too low", -91, 0},
		{"lon too high", 0, 180.5},
		{"lon too low", 0, -181},
	}

	for _, c := range cases {
		if _, err := NewCoordinate(c.lat, c.lon); err == nil {
			t.Errorf("%s: NewCoordinate(%v, %v) accepted invalid input", c.name, c.lat, c.lon)
		}
	}
}

func TestDriverVisitAdvancesPosition(t *testing.T) {
	start := Coordinate{Lat: 33.45, Lon: -112.07}
	d := NewDriver(1, start)

	stop := Stop{Address: "A", Coord: Coordinate{Lat: 33.5, Lon: -112.0}}
	d.Visit(stop)

	if len(d.Stops) != 1 {
		t.Fatalf("expected 1 stop, got %d", len(d.Stops))
	}
	if d.Position != stop.Coord {
		t.Fatalf("position = %+v, want %+v", d.Position, stop.Coord)
	}
}
