package booking

import "errors"

var ErrBookingNotFound = errors.New("booking not found")

// ErrValidation covers malformed or missing interval and pricing input,
// rejected before touching the store.
var ErrValidation = errors.New("invalid booking request")

// ErrConflict means an overlapping active booking already exists for the
// vehicle. The request is rejected outright, never queued.
var ErrConflict = errors.New("vehicle is already booked for these dates")

var ErrNotAuthorized = errors.New("not authorized to perform this operation")

var ErrIllegalTransition = errors.New("illegal booking status transition")

// ErrBookingExpired is returned instead of applying an owner decision or a
// cancellation to a booking whose expiry has passed.
var ErrBookingExpired = errors.New("booking has expired")

// ErrStaleState signals an optimistic-concurrency loss; the caller should
// re-read the booking and re-decide.
var ErrStaleState = errors.New("booking was modified concurrently")

var ErrStoreTimeout = errors.New("store operation timed out")
