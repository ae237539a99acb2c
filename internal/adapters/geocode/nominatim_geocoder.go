package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fleet-savings-service/internal/domain"
	"fleet-savings-service/internal/metrics"
	"fleet-savings-service/internal/platform/obs"
	"fleet-savings-service/internal/ports"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// NominatimGeocoder implements the Geocoder port against the OpenStreetMap
// Nominatim search API.
//
// It coordinates:
//   - Address normalization
//   - Persistent geocode caching
//   - Client-side rate limiting (the public Nominatim instance allows one
//     request per second)
//   - External API calls with retry/backoff
//
// The geocoder is safe for concurrent use.
type NominatimGeocoder struct {
	session   *http.Client
	baseURL   string
	userAgent string
	limiter   *rate.Limiter
	cache     Cache
}

func NewNominatimGeocoder(userAgent string, cache Cache) (*NominatimGeocoder, error) {
	if strings.TrimSpace(userAgent) == "" {
		return nil, errors.New("nominatim user agent is empty")
	}

	return &NominatimGeocoder{
		session:   &http.Client{Timeout: 10 * time.Second},
		baseURL:   "https://nominatim.openstreetmap.org",
		userAgent: userAgent,
		limiter:   rate.NewLimiter(rate.Limit(1), 1),
		cache:     cache,
	}, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func (g *NominatimGeocoder) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Geocode resolves a single address; it delegates to the batched path to
// reuse caching and rate limiting.
func (g *NominatimGeocoder) Geocode(ctx context.Context, address string) (domain.Coordinate, error) {
	if strings.TrimSpace(address) == "" {
		return domain.Coordinate{}, errors.New("geocode: address must be non-empty")
	}

	results, err := g.GeocodeMany(ctx, []string{address})
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("geocode %q: %w", address, err)
	}

	coord, ok := results[address]
	if !ok {
		return domain.Coordinate{}, fmt.Errorf("geocode %q: %w", address, ports.ErrUnresolvableAddress)
	}

	return coord, nil
}

// GeocodeMany resolves many addresses, keyed by the address as given.
// Unresolvable addresses are absent from the result; only transport
// failures produce an error.
func (g *NominatimGeocoder) GeocodeMany(ctx context.Context, addresses []string) (_ map[string]domain.Coordinate, err error) {
	defer obs.Time(ctx, "nominatim.GeocodeMany")(&err)

	if len(addresses) == 0 {
		return map[string]domain.Coordinate{}, nil
	}

	// Dedupe on normalized form; remember which inputs map to each key.
	byNorm := make(map[string][]string, len(addresses))
	normList := make([]string, 0, len(addresses))
	for _, a := range addresses {
		n := g.normalize(a)
		if n == "" {
			continue
		}
		if _, ok := byNorm[n]; !ok {
			normList = append(normList, n)
		}
		byNorm[n] = append(byNorm[n], a)
	}

	if len(normList) == 0 {
		return map[string]domain.Coordinate{}, nil
	}

	hits := make(map[string]domain.Coordinate)
	// Check the persistent cache before issuing external API calls.
	if g.cache != nil {
		hits, err = g.cache.GetMany(ctx, normList)
		if err != nil {
			return nil, fmt.Errorf("geocode cache: %w", err)
		}
		metrics.GeocodeLookups.WithLabelValues("cache_hit").Add(float64(len(hits)))
	}

	misses := make([]string, 0, len(normList))
	for _, n := range normList {
		if _, ok := hits[n]; !ok {
			misses = append(misses, n)
		}
	}

	fresh := make(map[string]domain.Coordinate, len(misses))
	for _, n := range misses {
		coord, found, err := g.search(ctx, n)
		if err != nil {
			return nil, fmt.Errorf("nominatim search %q: %w", n, err)
		}
		if !found {
			metrics.GeocodeLookups.WithLabelValues("unresolved").Inc()
			continue
		}
		metrics.GeocodeLookups.WithLabelValues("resolved").Inc()
		fresh[n] = coord
	}

	if g.cache != nil && len(fresh) > 0 {
		if err := g.cache.PutMany(ctx, fresh); err != nil {
			log.Printf("geocode cache write failed: %v", err)
		}
	}

	out := make(map[string]domain.Coordinate, len(addresses))
	for n, coord := range hits {
		for _, original := range byNorm[n] {
			out[original] = coord
		}
	}
	for n, coord := range fresh {
		for _, original := range byNorm[n] {
			out[original] = coord
		}
	}

	return out, nil
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// search performs one rate-limited /search call. A response with no results
// means the address is unresolvable, not a failure.
func (g *NominatimGeocoder) search(ctx context.Context, address string) (domain.Coordinate, bool, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return domain.Coordinate{}, false, err
	}

	endpoint := g.baseURL + "/search?" + url.Values{
		"q":      {address},
		"format": {"jsonv2"},
		"limit":  {"1"},
	}.Encode()

	resp, err := g.doWithRetry(ctx, func() (*http.Request, error) {
		return g.newRequest(ctx, endpoint)
	})
	if err != nil {
		return domain.Coordinate{}, false, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	var decoded []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinate{}, false, fmt.Errorf("decode search response: %w", err)
	}

	if len(decoded) == 0 {
		return domain.Coordinate{}, false, nil
	}

	lat, err := strconv.ParseFloat(decoded[0].Lat, 64)
	if err != nil {
		return domain.Coordinate{}, false, fmt.Errorf("parse latitude %q: %w", decoded[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(decoded[0].Lon, 64)
	if err != nil {
		return domain.Coordinate{}, false, fmt.Errorf("parse longitude %q: %w", decoded[0].Lon, err)
	}

	coord, err := domain.NewCoordinate(lat, lon)
	if err != nil {
		// Out-of-range values from upstream are treated as unresolvable
		// rather than propagated into distance math.
		log.Printf("nominatim returned invalid coordinate for %q: %v", address, err)
		return domain.Coordinate{}, false, nil
	}

	return coord, true, nil
}
