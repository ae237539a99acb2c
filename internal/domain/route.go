package domain

// Represents a single visited stop within a planned route.
// LegMiles is the distance from the previous position (depot or prior stop);
// CumulativeMiles is the distance traveled up to and including this leg.
type RouteStop struct {
	Stop
	LegMiles        float64
	CumulativeMiles float64
}

// Represents the planned delivery route for a single driver.
// A RoutePlan is the output of the assignment pass and describes the ordered
// sequence of delivery stops along with the total distance traveled.
// It is immutable planning data and contains no side effects.
type RoutePlan struct {
	DriverID   int
	Stops      []RouteStop
	TotalMiles float64
}
