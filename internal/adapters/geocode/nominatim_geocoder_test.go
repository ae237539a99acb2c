package geocode

import (
	"context"
	"errors"
	"fleet-savings-service/internal/domain"
	"fleet-savings-service/internal/ports"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"golang.org/x/time/rate"
)

type memoryCache struct {
	mu sync.Mutex
	m  map[string]domain.Coordinate
}

func newMemoryCache() *memoryCache {
	return &memoryCache{m: make(map[string]domain.Coordinate)}
}

func (c *memoryCache) GetMany(ctx context.Context, addresses []string) (map[string]domain.Coordinate, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]domain.Coordinate)
	for _, a := range addresses {
		if coord, ok := c.m[a]; ok {
			out[a] = coord
		}
	}
	return out, nil
}

func (c *memoryCache) PutMany(ctx context.Context, coords map[string]domain.Coordinate) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, v := range coords {
		c.m[k] = v
	}
	return nil
}

func newTestGeocoder(t *testing.T, handler http.HandlerFunc, cache Cache) (*NominatimGeocoder, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	g, err := NewNominatimGeocoder("fleet-savings-service-test", cache)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g.baseURL = srv.URL
	g.limiter = rate.NewLimiter(rate.Inf, 1)

	return g, srv
}

func TestNominatimGeocoderResolves(t *testing.T) {
	var calls int
	handler := func(w http.ResponseWriter, r *http.Request) {
		calls++
		if ua := r.Header.Get("User-Agent"); ua != "fleet-savings-service-test" {
			t.Errorf("user agent = %q", ua)
		}
		fmt.Fprint(w, `[{"lat":"33.4484","lon":"-112.0740","display_name":"Phoenix"}]`)
	}

	g, _ := newTestGeocoder(t, handler, newMemoryCache())

	coord, err := g.Geocode(context.Background(), "Phoenix, AZ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coord.Lat != 33.4484 || coord.Lon != -112.074 {
		t.Fatalf("coord = %+v", coord)
	}

	// Second lookup is served from the cache.
	if _, err := g.Geocode(context.Background(), "Phoenix,  AZ"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("upstream calls = %d, want 1 (cache miss only)", calls)
	}
}

func TestNominatimGeocoderUnresolvable(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}

	g, _ := newTestGeocoder(t, handler, nil)

	_, err := g.Geocode(context.Background(), "nowhere at all")
	if !errors.Is(err, ports.ErrUnresolvableAddress) {
		t.Fatalf("err = %v, want ErrUnresolvableAddress", err)
	}
}

func TestNominatimGeocoderRetriesServerErrors(t *testing.T) {
	var calls int
	handler := func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, `[{"lat":"40.7128","lon":"-74.0060"}]`)
	}

	g, _ := newTestGeocoder(t, handler, nil)

	coord, err := g.Geocode(context.Background(), "New York, NY")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coord.Lat != 40.7128 {
		t.Fatalf("coord = %+v", coord)
	}
	if calls != 2 {
		t.Fatalf("upstream calls = %d, want 2 (one retry)", calls)
	}
}

func TestNominatimGeocoderRejectsOutOfRangeCoordinates(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"lat":"91.0","lon":"0.0"}]`)
	}

	g, _ := newTestGeocoder(t, handler, nil)

	_, err := g.Geocode(context.Background(), "broken upstream")
	if !errors.Is(err, ports.ErrUnresolvableAddress) {
		t.Fatalf("err = %v, want ErrUnresolvableAddress for invalid upstream coordinate", err)
	}
}

func TestNominatimGeocoderBatchKeysByInputAddress(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		switch q {
		case "A St":
			fmt.Fprint(w, `[{"lat":"10.0","lon":"20.0"}]`)
		case "B St":
			fmt.Fprint(w, `[{"lat":"30.0","lon":"40.0"}]`)
		default:
			fmt.Fprint(w, `[]`)
		}
	}

	g, _ := newTestGeocoder(t, handler, newMemoryCache())

	results, err := g.GeocodeMany(context.Background(), []string{"A St", "  B   St ", "missing"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("results = %+v, want 2 resolved", results)
	}
	if c := results["A St"]; c.Lat != 10 || c.Lon != 20 {
		t.Errorf("A St = %+v", c)
	}
	// Result is keyed by the address exactly as the caller supplied it.
	if c, ok := results["  B   St "]; !ok || c.Lat != 30 {
		t.Errorf("raw-form key missing: %+v", results)
	}
}
