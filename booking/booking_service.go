package booking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/Brook07/RideShareX/vehicle"
)

type BookingRepository interface {
	GetBookingByID(ctx context.Context, id string) (Booking, error)
	GetActiveBookingsForVehicle(ctx context.Context, vehicleID string) ([]Booking, error)
	InsertBookingIfFree(ctx context.Context, booking Booking) (Booking, error)
	CompareAndSetStatus(ctx context.Context, id string, expected, next Status, update StatusUpdate) (Booking, error)
	ExpireStale(ctx context.Context, now time.Time) (int64, error)
	GetBookingsForRenter(ctx context.Context, renterID string) ([]Booking, error)
	GetRequestsForOwner(ctx context.Context, ownerID string) ([]Booking, error)
}

// insertAttempts caps the internal retry on serialization losses during
// insert; after that the failure surfaces to the caller.
const insertAttempts = 3

type Service struct {
	repo      BookingRepository
	catalog   vehicle.Catalog
	expiryTTL time.Duration
	now       func() time.Time
}

type Option func(*Service)

// WithClock overrides the service time source. Tests use it to drive expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo BookingRepository, catalog vehicle.Catalog, expiryTTL time.Duration, opts ...Option) *Service {
	s := &Service{repo: repo, catalog: catalog, expiryTTL: expiryTTL, now: time.Now}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

type BookingRequest struct {
	VehicleID   string    `json:"vehicleId"`
	RenterID    string    `json:"-"`
	PickupDate  time.Time `json:"pickupDate"`
	DropoffDate time.Time `json:"dropoffDate"`
	TotalDays   int       `json:"totalDays"`
	PricePerDay float64   `json:"pricePerDay"`
	TotalPrice  float64   `json:"totalPrice"`
	Message     string    `json:"message"`
}

func (req BookingRequest) validate() error {
	switch {
	case req.VehicleID == "":
		return fmt.Errorf("%w: vehicleId is required", ErrValidation)
	case req.RenterID == "":
		return fmt.Errorf("%w: renterId is required", ErrValidation)
	case req.PickupDate.IsZero() || req.DropoffDate.IsZero():
		return fmt.Errorf("%w: pickupDate and dropoffDate are required", ErrValidation)
	case !req.PickupDate.Before(req.DropoffDate):
		return fmt.Errorf("%w: pickupDate must be before dropoffDate", ErrValidation)
	case req.TotalDays < 1:
		return fmt.Errorf("%w: totalDays must be at least 1", ErrValidation)
	case req.PricePerDay < 0 || req.TotalPrice < 0:
		return fmt.Errorf("%w: prices cannot be negative", ErrValidation)
	}

	if days := int(math.Ceil(req.DropoffDate.Sub(req.PickupDate).Hours() / 24)); req.TotalDays != days {
		return fmt.Errorf("%w: totalDays does not match the requested dates", ErrValidation)
	}

	if req.TotalPrice != float64(req.TotalDays)*req.PricePerDay {
		return fmt.Errorf("%w: totalPrice does not match totalDays * pricePerDay", ErrValidation)
	}

	return nil
}

// RequestBooking creates a PENDING reservation for the renter, provided the
// vehicle exists, is active, does not belong to the renter, and has no active
// booking overlapping the requested dates.
func (s *Service) RequestBooking(ctx context.Context, req BookingRequest) (Booking, error) {
	if err := req.validate(); err != nil {
		return Booking{}, err
	}

	veh, err := s.catalog.FindVehicleByID(ctx, req.VehicleID)

	if err != nil {
		return Booking{}, err
	}

	if veh.Status != vehicle.StatusActive {
		return Booking{}, fmt.Errorf("%w: vehicle is not available for booking", ErrValidation)
	}

	if veh.OwnerID == req.RenterID {
		return Booking{}, fmt.Errorf("%w: you cannot book your own vehicle", ErrValidation)
	}

	// Lazy expiry: a hold nobody has read since it lapsed must not block
	// the requested dates.
	if _, err := s.repo.ExpireStale(ctx, s.now()); err != nil {
		return Booking{}, err
	}

	candidate := Booking{
		ID:          uuid.NewString(),
		VehicleID:   req.VehicleID,
		RenterID:    req.RenterID,
		OwnerID:     veh.OwnerID,
		PickupDate:  req.PickupDate,
		DropoffDate: req.DropoffDate,
		TotalDays:   req.TotalDays,
		PricePerDay: req.PricePerDay,
		TotalPrice:  req.TotalPrice,
		Message:     req.Message,
		ExpiresAt:   s.now().Add(s.expiryTTL),
	}

	var lastErr error

	for attempt := 0; attempt < insertAttempts; attempt++ {
		created, err := s.repo.InsertBookingIfFree(ctx, candidate)

		if err == nil {
			return created, nil
		}

		if !errors.Is(err, ErrStaleState) {
			return Booking{}, err
		}

		lastErr = err
	}

	return Booking{}, fmt.Errorf("%w: insert kept losing after %d attempts: %v", ErrStoreTimeout, insertAttempts, lastErr)
}

// RespondToBooking applies the owner's decision to a PENDING booking. The
// decision must be CONFIRMED or REJECTED; a booking past its expiry is forced
// to EXPIRED first and the decision is rejected with ErrBookingExpired.
func (s *Service) RespondToBooking(ctx context.Context, id, ownerID string, decision Status, reason string) (Booking, error) {
	if decision != StatusConfirmed && decision != StatusRejected {
		return Booking{}, fmt.Errorf("%w: decision must be %s or %s", ErrValidation, StatusConfirmed, StatusRejected)
	}

	booking, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return Booking{}, err
	}

	booking, justExpired, err := s.expireIfStale(ctx, booking)

	if err != nil {
		return Booking{}, err
	}

	if justExpired {
		return Booking{}, ErrBookingExpired
	}

	if booking.OwnerID != ownerID {
		return Booking{}, fmt.Errorf("%w: only the vehicle owner can respond to this booking", ErrNotAuthorized)
	}

	if !CanTransition(booking.Status, decision) {
		return Booking{}, illegalTransition(booking.Status, decision)
	}

	update := StatusUpdate{}

	if decision == StatusRejected && reason != "" {
		update.RejectionReason = &reason
	}

	return s.repo.CompareAndSetStatus(ctx, id, StatusPending, decision, update)
}

// CancelBooking cancels the renter's own booking while it is still PENDING,
// CONFIRMED or AWAITING_PAYMENT.
func (s *Service) CancelBooking(ctx context.Context, id, renterID string) (Booking, error) {
	booking, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return Booking{}, err
	}

	booking, justExpired, err := s.expireIfStale(ctx, booking)

	if err != nil {
		return Booking{}, err
	}

	if justExpired {
		return Booking{}, ErrBookingExpired
	}

	if booking.RenterID != renterID {
		return Booking{}, fmt.Errorf("%w: only the renter can cancel this booking", ErrNotAuthorized)
	}

	if !CanTransition(booking.Status, StatusCancelled) {
		return Booking{}, illegalTransition(booking.Status, StatusCancelled)
	}

	return s.repo.CompareAndSetStatus(ctx, id, booking.Status, StatusCancelled, StatusUpdate{})
}

type PaymentOutcome string

const (
	PaymentOutcomeInitiated PaymentOutcome = "INITIATED"
	PaymentOutcomeCompleted PaymentOutcome = "COMPLETED"
	PaymentOutcomeFailed    PaymentOutcome = "FAILED"
)

// PaymentEvent is the asynchronous notification the payment collaborator
// sends after running its out-of-band flow. The engine never waits on the
// gateway itself.
type PaymentEvent struct {
	Outcome       PaymentOutcome `json:"outcome"`
	TransactionID string         `json:"transactionId"`
}

// OnPaymentEvent advances a booking's payment sub-state: INITIATED moves a
// CONFIRMED booking to AWAITING_PAYMENT, COMPLETED settles it, FAILED drops
// it back to CONFIRMED so the renter may retry.
func (s *Service) OnPaymentEvent(ctx context.Context, id string, event PaymentEvent) (Booking, error) {
	booking, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return Booking{}, err
	}

	booking, justExpired, err := s.expireIfStale(ctx, booking)

	if err != nil {
		return Booking{}, err
	}

	if justExpired {
		return Booking{}, ErrBookingExpired
	}

	switch event.Outcome {
	case PaymentOutcomeInitiated:
		if booking.Status != StatusConfirmed {
			return Booking{}, illegalTransition(booking.Status, StatusAwaitingPayment)
		}

		return s.repo.CompareAndSetStatus(ctx, id, StatusConfirmed, StatusAwaitingPayment, StatusUpdate{})

	case PaymentOutcomeCompleted:
		if booking.Status != StatusAwaitingPayment {
			return Booking{}, illegalTransition(booking.Status, StatusCompleted)
		}

		paidAt := s.now()
		paymentStatus := PaymentCompleted
		update := StatusUpdate{
			PaymentStatus: &paymentStatus,
			PaidAt:        &paidAt,
		}

		if event.TransactionID != "" {
			update.TransactionID = &event.TransactionID
		}

		return s.repo.CompareAndSetStatus(ctx, id, StatusAwaitingPayment, StatusCompleted, update)

	case PaymentOutcomeFailed:
		if booking.Status != StatusAwaitingPayment {
			return Booking{}, illegalTransition(booking.Status, StatusConfirmed)
		}

		paymentStatus := PaymentFailed

		return s.repo.CompareAndSetStatus(ctx, id, StatusAwaitingPayment, StatusConfirmed, StatusUpdate{PaymentStatus: &paymentStatus})

	default:
		return Booking{}, fmt.Errorf("%w: unknown payment outcome '%v'", ErrValidation, event.Outcome)
	}
}

// GetBooking returns a single booking, visible only to its renter or owner.
func (s *Service) GetBooking(ctx context.Context, id, callerID string) (Booking, error) {
	booking, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return Booking{}, err
	}

	booking, _, err = s.expireIfStale(ctx, booking)

	if err != nil {
		return Booking{}, err
	}

	if booking.RenterID != callerID && booking.OwnerID != callerID {
		return Booking{}, fmt.Errorf("%w: not allowed to view this booking", ErrNotAuthorized)
	}

	return booking, nil
}

// ActiveBookingsForVehicle returns the PENDING and CONFIRMED bookings that
// currently block the vehicle's calendar, with stale ones swept out first.
func (s *Service) ActiveBookingsForVehicle(ctx context.Context, vehicleID string) ([]Booking, error) {
	if _, err := s.repo.ExpireStale(ctx, s.now()); err != nil {
		return nil, err
	}

	return s.repo.GetActiveBookingsForVehicle(ctx, vehicleID)
}

// BookingsForRenter lists the renter's bookings after sweeping any bookings
// that expired since the last pass.
func (s *Service) BookingsForRenter(ctx context.Context, renterID string) ([]Booking, error) {
	if _, err := s.repo.ExpireStale(ctx, s.now()); err != nil {
		return nil, err
	}

	return s.repo.GetBookingsForRenter(ctx, renterID)
}

// RequestsForOwner lists the requests against the owner's vehicles after
// sweeping any bookings that expired since the last pass.
func (s *Service) RequestsForOwner(ctx context.Context, ownerID string) ([]Booking, error) {
	if _, err := s.repo.ExpireStale(ctx, s.now()); err != nil {
		return nil, err
	}

	return s.repo.GetRequestsForOwner(ctx, ownerID)
}

// expireIfStale is the lazy half of expiry: every path that touches a
// PENDING booking goes through here first, so no caller acts on a logically
// expired one. Returns the up-to-date booking and whether this call (or a
// concurrent one racing it) moved the booking to EXPIRED.
func (s *Service) expireIfStale(ctx context.Context, booking Booking) (Booking, bool, error) {
	if booking.Status != StatusPending || !s.now().After(booking.ExpiresAt) {
		return booking, false, nil
	}

	expired, err := s.repo.CompareAndSetStatus(ctx, booking.ID, StatusPending, StatusExpired, StatusUpdate{})

	if errors.Is(err, ErrStaleState) {
		// Someone else resolved the booking between our read and the update.
		fresh, rerr := s.repo.GetBookingByID(ctx, booking.ID)

		if rerr != nil {
			return Booking{}, false, rerr
		}

		return fresh, fresh.Status == StatusExpired, nil
	}

	if err != nil {
		return Booking{}, false, err
	}

	return expired, true, nil
}

func illegalTransition(from, to Status) error {
	return fmt.Errorf("%w: cannot move booking from %s to %s", ErrIllegalTransition, from, to)
}
