package booking

import "time"

type Status string

const (
	StatusPending         Status = "PENDING"
	StatusConfirmed       Status = "CONFIRMED"
	StatusAwaitingPayment Status = "AWAITING_PAYMENT"
	StatusRejected        Status = "REJECTED"
	StatusExpired         Status = "EXPIRED"
	StatusCancelled       Status = "CANCELLED"
	StatusCompleted       Status = "COMPLETED"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
)

type Booking struct {
	ID              string        `json:"id"`
	VehicleID       string        `json:"vehicleId"`
	RenterID        string        `json:"renterId"`
	OwnerID         string        `json:"ownerId"`
	PickupDate      time.Time     `json:"pickupDate"`
	DropoffDate     time.Time     `json:"dropoffDate"`
	TotalDays       int           `json:"totalDays"`
	PricePerDay     float64       `json:"pricePerDay"`
	TotalPrice      float64       `json:"totalPrice"`
	Status          Status        `json:"status"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	TransactionID   string        `json:"transactionId,omitempty"`
	PaidAt          *time.Time    `json:"paidAt,omitempty"`
	ExpiresAt       time.Time     `json:"expiresAt"`
	Message         string        `json:"message,omitempty"`
	RejectionReason string        `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// legalTransitions is the full transition graph. Any (from, to) pair not
// listed here is rejected with ErrIllegalTransition, never silently ignored.
// Terminal statuses (REJECTED, EXPIRED, CANCELLED, COMPLETED) have no
// outgoing transitions.
var legalTransitions = map[Status][]Status{
	StatusPending:         {StatusConfirmed, StatusRejected, StatusExpired, StatusCancelled},
	StatusConfirmed:       {StatusAwaitingPayment, StatusCancelled},
	StatusAwaitingPayment: {StatusCompleted, StatusConfirmed, StatusCancelled},
}

// CanTransition reports whether moving a booking from one status to another
// is legal.
func CanTransition(from, to Status) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible from s.
func IsTerminal(s Status) bool {
	return len(legalTransitions[s]) == 0
}
