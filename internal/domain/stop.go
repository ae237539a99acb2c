package domain

// Represents a single delivery stop handled by one optimization run.
// A Stop pairs a resolved coordinate with the address it was geocoded from.
// Stops are owned by the run that created them and are never persisted.
type Stop struct {
	Address string
	Coord   Coordinate
}
