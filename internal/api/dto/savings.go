package dto

type SavingsRequest struct {
	Addresses          []string `json:"addresses"`
	Depot              string   `json:"depot"`
	DriverCount        int      `json:"driver_count"`
	FuelPricePerGallon float64  `json:"fuel_price_per_gallon"`
	AvgMPG             float64  `json:"avg_mpg"`
}

type RouteStopResponse struct {
	Address         string  `json:"address"`
	Lat             float64 `json:"lat"`
	Lon             float64 `json:"lon"`
	LegMiles        float64 `json:"leg_miles"`
	CumulativeMiles float64 `json:"cumulative_miles"`
}

type RouteResponse struct {
	DriverID   int                 `json:"driver_id"`
	TotalMiles float64             `json:"total_miles"`
	Stops      []RouteStopResponse `json:"stops"`
}

type SavingsResponse struct {
	BaselineMiles      float64 `json:"baseline_miles"`
	OptimizedMiles     float64 `json:"optimized_miles"`
	MilesSaved         float64 `json:"miles_saved"`
	PercentSaved       float64 `json:"percent_saved"`
	FuelPricePerGallon float64 `json:"fuel_price_per_gallon"`
	AvgMPG             float64 `json:"avg_mpg"`
	BaselineCost       float64 `json:"baseline_cost"`
	OptimizedCost      float64 `json:"optimized_cost"`
	CostSaved          float64 `json:"cost_saved"`

	Routes        []RouteResponse `json:"routes"`
	ResolvedCount int             `json:"resolved_count"`
	Unresolved    []string        `json:"unresolved_addresses"`
}
