package api

import (
	"fleet-savings-service/internal/api/handlers"
	"fleet-savings-service/internal/metrics"
	"fleet-savings-service/internal/ports"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.AddressRepository, geocoder ports.Geocoder, depot string) http.Handler {
	metrics.RegisterDefault()

	mux := http.NewServeMux()

	addrHandler := &handlers.AddressHandler{Repo: repo}
	savingsHandler := &handlers.SavingsHandler{
		Repo:         repo,
		Geocoder:     geocoder,
		DefaultDepot: depot,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/stops", addrHandler.List)
	mux.HandleFunc("/savings", savingsHandler.Estimate)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	return loggingMiddleware(mux)
}
