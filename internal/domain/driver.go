package domain

// Driver aggregate used while a greedy assignment pass is in flight.
// Its position advances to each stop appended to its route; once the pass
// completes the accumulated stops are frozen into a RoutePlan.
type Driver struct {
	DriverID int
	Position Coordinate
	Stops    []Stop
}

func NewDriver(id int, start Coordinate) *Driver {
	return &Driver{
		DriverID: id,
		Position: start,
	}
}

// Append a stop to the driver's route and advance the driver's position.
func (d *Driver) Visit(stop Stop) {
	d.Stops = append(d.Stops, stop)
	d.Position = stop.Coord
}
