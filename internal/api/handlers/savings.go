package handlers

import (
	"encoding/json"
	"errors"
	"fleet-savings-service/internal/api/dto"
	"fleet-savings-service/internal/metrics"
	"fleet-savings-service/internal/ports"
	"fleet-savings-service/internal/services"
	"io"
	"log"
	"net/http"
	"strings"
)

type SavingsHandler struct {
	Repo         ports.AddressRepository
	Geocoder     ports.Geocoder
	DefaultDepot string
}

// Estimate orchestrates one savings run: geocoding, baseline tour, greedy
// multi-driver assignment, and the cost comparison.
func (h *SavingsHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.SavingsRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	depot := strings.TrimSpace(req.Depot)
	if depot == "" {
		depot = strings.TrimSpace(h.DefaultDepot)
	}

	driverCount := req.DriverCount
	if driverCount == 0 {
		driverCount = 3
	}
	if driverCount < 1 || driverCount > 50 {
		writeError(w, r, http.StatusBadRequest, "driver_count must be between 1 and 50")
		return
	}

	fuelPrice := req.FuelPricePerGallon
	if fuelPrice == 0 {
		fuelPrice = 4.00
	}
	if fuelPrice <= 0 {
		writeError(w, r, http.StatusBadRequest, "fuel_price_per_gallon must be positive")
		return
	}

	mpg := req.AvgMPG
	if mpg == 0 {
		mpg = 25.0
	}
	if mpg <= 0 {
		writeError(w, r, http.StatusBadRequest, "avg_mpg must be positive")
		return
	}

	svcReq := services.EstimateSavingsRequest{
		Addresses:          req.Addresses,
		DepotAddress:       depot,
		DriverCount:        driverCount,
		FuelPricePerGallon: fuelPrice,
		AvgMPG:             mpg,
	}

	result, err := services.EstimateSavings(r.Context(), svcReq, h.Repo, h.Geocoder)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidConfiguration):
			metrics.SavingsRuns.WithLabelValues("invalid").Inc()
			writeInvalidRun(w, r, err, result)
		case errors.Is(err, ports.ErrUnresolvableAddress):
			metrics.SavingsRuns.WithLabelValues("invalid").Inc()
			writeError(w, r, http.StatusUnprocessableEntity, err.Error())
		default:
			metrics.SavingsRuns.WithLabelValues("error").Inc()
			log.Printf("estimate savings failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	metrics.SavingsRuns.WithLabelValues("ok").Inc()
	writeJSON(w, r, http.StatusOK, toSavingsResponse(result))
}

// writeInvalidRun reports a run-level configuration failure together with
// whatever diagnostics the run produced (e.g., the list of addresses that
// failed to geocode). Nothing is silently dropped.
func writeInvalidRun(w http.ResponseWriter, r *http.Request, err error, result *services.RunResult) {
	payload := map[string]any{"error": err.Error()}
	if result != nil {
		payload["unresolved_addresses"] = unresolvedList(result)
	}
	writeJSON(w, r, http.StatusUnprocessableEntity, payload)
}

func unresolvedList(result *services.RunResult) []string {
	out := make([]string, 0, len(result.Unresolved))
	for _, f := range result.Unresolved {
		out = append(out, f.Address)
	}
	return out
}

func toSavingsResponse(result *services.RunResult) dto.SavingsResponse {
	report := result.Report

	res := dto.SavingsResponse{
		BaselineMiles:      report.BaselineMiles,
		OptimizedMiles:     report.OptimizedMiles,
		MilesSaved:         report.MilesSaved,
		PercentSaved:       report.PercentSaved,
		FuelPricePerGallon: report.FuelPricePerGallon,
		AvgMPG:             report.AvgMPG,
		BaselineCost:       report.BaselineCost,
		OptimizedCost:      report.OptimizedCost,
		CostSaved:          report.CostSaved,
		Routes:             make([]dto.RouteResponse, 0, len(result.Routes)),
		ResolvedCount:      result.Resolved,
		Unresolved:         unresolvedList(result),
	}

	for _, plan := range result.Routes {
		stops := make([]dto.RouteStopResponse, 0, len(plan.Stops))
		for _, s := range plan.Stops {
			stops = append(stops, dto.RouteStopResponse{
				Address:         s.Address,
				Lat:             s.Coord.Lat,
				Lon:             s.Coord.Lon,
				LegMiles:        s.LegMiles,
				CumulativeMiles: s.CumulativeMiles,
			})
		}
		res.Routes = append(res.Routes, dto.RouteResponse{
			DriverID:   plan.DriverID,
			TotalMiles: plan.TotalMiles,
			Stops:      stops,
		})
	}

	return res
}
