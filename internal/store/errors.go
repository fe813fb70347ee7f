package store

import "errors"

// Sentinel errors callers can match with errors.Is. Not-found is a normal
// outcome and must stay distinguishable from a storage failure.
var (
	ErrNotFound          = errors.New("store: not found")
	ErrUsernameTaken     = errors.New("store: username already taken")
	ErrInsufficientSeats = errors.New("store: not enough available seats")
)
