package services

import "errors"

// Returned (wrapped) for parameter combinations that make a run meaningless:
// non-positive driver count, non-positive fuel economics, or an empty stop
// set. Fatal to the current run; callers check with errors.Is.
var ErrInvalidConfiguration = errors.New("invalid configuration")
