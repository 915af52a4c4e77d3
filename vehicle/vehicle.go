package vehicle

import (
	"context"
	"errors"
	"time"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type Vehicle struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Name        string    `json:"name"`
	Make        string    `json:"make"`
	Model       string    `json:"model"`
	Year        int       `json:"year"`
	Location    string    `json:"location"`
	PricePerDay float64   `json:"pricePerDay"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Catalog is what the booking engine needs from the vehicle side: ownership,
// active flag and an existence check, resolved at booking-creation time.
type Catalog interface {
	FindVehicleByID(ctx context.Context, id string) (Vehicle, error)
}

var ErrVehicleNotFound = errors.New("vehicle not found")

var ErrInvalidVehicle = errors.New("invalid vehicle")

var ErrNotOwner = errors.New("not the vehicle owner")
