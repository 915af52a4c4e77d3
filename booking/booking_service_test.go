package booking_test

import (
	"context"
	"errors"
	"testing"
	"time"

	bk "github.com/Brook07/RideShareX/booking"
	bk_mocks "github.com/Brook07/RideShareX/booking/mocks"
	"github.com/Brook07/RideShareX/vehicle"
	vh_mocks "github.com/Brook07/RideShareX/vehicle/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

const testTTL = 5 * time.Minute

var activeVehicle = vehicle.Vehicle{
	ID:          "veh1",
	OwnerID:     "owner1",
	Name:        "City Hatchback",
	Status:      vehicle.StatusActive,
	PricePerDay: 50,
}

func validRequest() bk.BookingRequest {
	return bk.BookingRequest{
		VehicleID:   "veh1",
		RenterID:    "renter1",
		PickupDate:  day(2025, 6, 10),
		DropoffDate: day(2025, 6, 12),
		TotalDays:   2,
		PricePerDay: 50,
		TotalPrice:  100,
		Message:     "weekend trip",
	}
}

func pendingBooking() bk.Booking {
	return bk.Booking{
		ID:          "booking1",
		VehicleID:   "veh1",
		RenterID:    "renter1",
		OwnerID:     "owner1",
		PickupDate:  day(2025, 6, 10),
		DropoffDate: day(2025, 6, 12),
		TotalDays:   2,
		PricePerDay: 50,
		TotalPrice:  100,
		Status:      bk.StatusPending,
		ExpiresAt:   testNow.Add(testTTL),
	}
}

type testDeps struct {
	repo    *bk_mocks.MockBookingRepository
	catalog *vh_mocks.MockCatalog
	service *bk.Service
	ctx     context.Context
}

func newTestDeps(t *testing.T) (*gomock.Controller, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := bk_mocks.NewMockBookingRepository(ctrl)
	catalog := vh_mocks.NewMockCatalog(ctrl)
	svc := bk.NewService(repo, catalog, testTTL, bk.WithClock(func() time.Time { return testNow }))

	return ctrl, testDeps{
		repo: repo, catalog: catalog, service: svc, ctx: context.Background(),
	}
}

func TestRequestBooking(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		req := validRequest()

		deps.catalog.EXPECT().FindVehicleByID(deps.ctx, "veh1").Return(activeVehicle, nil).Times(1)
		deps.repo.EXPECT().ExpireStale(deps.ctx, testNow).Return(int64(0), nil).Times(1)
		deps.repo.EXPECT().InsertBookingIfFree(deps.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, candidate bk.Booking) (bk.Booking, error) {
				require.NotEmpty(t, candidate.ID)
				require.Equal(t, "veh1", candidate.VehicleID)
				require.Equal(t, "renter1", candidate.RenterID)
				require.Equal(t, "owner1", candidate.OwnerID)
				require.Equal(t, testNow.Add(testTTL), candidate.ExpiresAt)

				candidate.Status = bk.StatusPending

				return candidate, nil
			}).Times(1)

		created, err := deps.service.RequestBooking(deps.ctx, req)

		require.Nil(t, err)
		require.Equal(t, bk.StatusPending, created.Status)
		require.Equal(t, req.TotalPrice, created.TotalPrice)
	})

	t.Run("invalid request", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*bk.BookingRequest)
		}{
			{"missing vehicle", func(r *bk.BookingRequest) { r.VehicleID = "" }},
			{"missing renter", func(r *bk.BookingRequest) { r.RenterID = "" }},
			{"zero dates", func(r *bk.BookingRequest) { r.PickupDate = time.Time{} }},
			{"pickup after dropoff", func(r *bk.BookingRequest) {
				r.PickupDate = day(2025, 6, 12)
				r.DropoffDate = day(2025, 6, 10)
			}},
			{"totalDays below one", func(r *bk.BookingRequest) { r.TotalDays = 0 }},
			{"negative price", func(r *bk.BookingRequest) {
				r.PricePerDay = -1
				r.TotalPrice = -2
			}},
			{"totalDays does not match dates", func(r *bk.BookingRequest) { r.TotalDays = 5 }},
			{"totalPrice does not match rate", func(r *bk.BookingRequest) { r.TotalPrice = 99 }},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				ctrl, deps := newTestDeps(t)
				defer ctrl.Finish()

				req := validRequest()
				tc.mutate(&req)

				deps.catalog.EXPECT().FindVehicleByID(gomock.Any(), gomock.Any()).Times(0)
				deps.repo.EXPECT().InsertBookingIfFree(gomock.Any(), gomock.Any()).Times(0)

				_, err := deps.service.RequestBooking(deps.ctx, req)

				require.ErrorIs(t, err, bk.ErrValidation)
			})
		}
	})

	t.Run("vehicle not found", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.catalog.EXPECT().FindVehicleByID(deps.ctx, "veh1").Return(vehicle.Vehicle{}, vehicle.ErrVehicleNotFound).Times(1)
		deps.repo.EXPECT().InsertBookingIfFree(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.RequestBooking(deps.ctx, validRequest())

		require.ErrorIs(t, err, vehicle.ErrVehicleNotFound)
	})

	t.Run("inactive vehicle", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		inactive := activeVehicle
		inactive.Status = vehicle.StatusInactive

		deps.catalog.EXPECT().FindVehicleByID(deps.ctx, "veh1").Return(inactive, nil).Times(1)
		deps.repo.EXPECT().InsertBookingIfFree(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.RequestBooking(deps.ctx, validRequest())

		require.ErrorIs(t, err, bk.ErrValidation)
	})

	t.Run("renter owns the vehicle", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		req := validRequest()
		req.RenterID = "owner1"

		deps.catalog.EXPECT().FindVehicleByID(deps.ctx, "veh1").Return(activeVehicle, nil).Times(1)
		deps.repo.EXPECT().InsertBookingIfFree(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.RequestBooking(deps.ctx, req)

		require.ErrorIs(t, err, bk.ErrValidation)
	})

	t.Run("dates already taken", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.catalog.EXPECT().FindVehicleByID(deps.ctx, "veh1").Return(activeVehicle, nil).Times(1)
		deps.repo.EXPECT().ExpireStale(deps.ctx, testNow).Return(int64(0), nil).Times(1)
		deps.repo.EXPECT().InsertBookingIfFree(deps.ctx, gomock.Any()).Return(bk.Booking{}, bk.ErrConflict).Times(1)

		_, err := deps.service.RequestBooking(deps.ctx, validRequest())

		require.ErrorIs(t, err, bk.ErrConflict)
	})

	t.Run("stale holds are swept before the conflict check", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.catalog.EXPECT().FindVehicleByID(deps.ctx, "veh1").Return(activeVehicle, nil).Times(1)

		// An expired PENDING booking on the same dates only blocks the
		// request if it is still unswept when the conflict scan runs.
		gomock.InOrder(
			deps.repo.EXPECT().ExpireStale(deps.ctx, testNow).Return(int64(1), nil),
			deps.repo.EXPECT().InsertBookingIfFree(deps.ctx, gomock.Any()).Return(pendingBooking(), nil),
		)

		created, err := deps.service.RequestBooking(deps.ctx, validRequest())

		require.Nil(t, err)
		require.Equal(t, bk.StatusPending, created.Status)
	})

	t.Run("sweep failure aborts the request", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.catalog.EXPECT().FindVehicleByID(deps.ctx, "veh1").Return(activeVehicle, nil).Times(1)
		deps.repo.EXPECT().ExpireStale(deps.ctx, testNow).Return(int64(0), errors.New("connection reset")).Times(1)
		deps.repo.EXPECT().InsertBookingIfFree(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.RequestBooking(deps.ctx, validRequest())

		require.Error(t, err)
	})

	t.Run("retries on serialization loss and succeeds", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.catalog.EXPECT().FindVehicleByID(deps.ctx, "veh1").Return(activeVehicle, nil).Times(1)
		deps.repo.EXPECT().ExpireStale(deps.ctx, testNow).Return(int64(0), nil).Times(1)

		gomock.InOrder(
			deps.repo.EXPECT().InsertBookingIfFree(deps.ctx, gomock.Any()).Return(bk.Booking{}, bk.ErrStaleState),
			deps.repo.EXPECT().InsertBookingIfFree(deps.ctx, gomock.Any()).Return(pendingBooking(), nil),
		)

		created, err := deps.service.RequestBooking(deps.ctx, validRequest())

		require.Nil(t, err)
		require.Equal(t, bk.StatusPending, created.Status)
	})

	t.Run("gives up after repeated serialization losses", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.catalog.EXPECT().FindVehicleByID(deps.ctx, "veh1").Return(activeVehicle, nil).Times(1)
		deps.repo.EXPECT().ExpireStale(deps.ctx, testNow).Return(int64(0), nil).Times(1)
		deps.repo.EXPECT().InsertBookingIfFree(deps.ctx, gomock.Any()).Return(bk.Booking{}, bk.ErrStaleState).Times(3)

		_, err := deps.service.RequestBooking(deps.ctx, validRequest())

		require.ErrorIs(t, err, bk.ErrStoreTimeout)
	})
}

func TestRespondToBooking(t *testing.T) {

	t.Run("owner approves", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		booking := pendingBooking()
		confirmed := booking
		confirmed.Status = bk.StatusConfirmed

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "booking1").Return(booking, nil).Times(1)
		deps.repo.EXPECT().CompareAndSetStatus(deps.ctx, "booking1", bk.StatusPending, bk.StatusConfirmed, bk.StatusUpdate{}).
			Return(confirmed, nil).Times(1)

		got, err := deps.service.RespondToBooking(deps.ctx, "booking1", "owner1", bk.StatusConfirmed, "")

		require.Nil(t, err)
		require.Equal(t, bk.StatusConfirmed, got.Status)
	})

	t.Run("owner rejects with a reason", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		booking := pendingBooking()
		rejected := booking
		rejected.Status = bk.StatusRejected

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "booking1").Return(booking, nil).Times(1)
		deps.repo.EXPECT().CompareAndSetStatus(deps.ctx, "booking1", bk.StatusPending, bk.StatusRejected, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _, _ bk.Status, update bk.StatusUpdate) (bk.Booking, error) {
				require.NotNil(t, update.RejectionReason)
				require.Equal(t, "dates no longer work", *update.RejectionReason)

				return rejected, nil
			}).Times(1)

		got, err := deps.service.RespondToBooking(deps.ctx, "booking1", "owner1", bk.StatusRejected, "dates no longer work")

		require.Nil(t, err)
		require.Equal(t, bk.StatusRejected, got.Status)
	})

	t.Run("invalid decision", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.RespondToBooking(deps.ctx, "booking1", "owner1", bk.StatusCancelled, "")

		require.ErrorIs(t, err, bk.ErrValidation)
	})

	t.Run("approval after the request expired", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		booking := pendingBooking()
		booking.ExpiresAt = testNow.Add(-time.Minute)

		expired := booking
		expired.Status = bk.StatusExpired

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "booking1").Return(booking, nil).Times(1)
		deps.repo.EXPECT().CompareAndSetStatus(deps.ctx, "booking1", bk.StatusPending, bk.StatusExpired, bk.StatusUpdate{}).
			Return(expired, nil).Times(1)

		_, err := deps.service.RespondToBooking(deps.ctx, "booking1", "owner1", bk.StatusConfirmed, "")

		require.ErrorIs(t, err, bk.ErrBookingExpired)
	})

	t.Run("sweeper expired the booking first", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		booking := pendingBooking()
		booking.ExpiresAt = testNow.Add(-time.Minute)

		expired := booking
		expired.Status = bk.StatusExpired

		gomock.InOrder(
			deps.repo.EXPECT().GetBookingByID(deps.ctx, "booking1").Return(booking, nil),
			deps.repo.EXPECT().CompareAndSetStatus(deps.ctx, "booking1", bk.StatusPending, bk.StatusExpired, bk.StatusUpdate{}).
				Return(bk.Booking{}, bk.ErrStaleState),
			deps.repo.EXPECT().GetBookingByID(deps.ctx, "booking1").Return(expired, nil),
		)

		_, err := deps.service.RespondToBooking(deps.ctx, "booking1", "owner1", bk.StatusConfirmed, "")

		require.ErrorIs(t, err, bk.ErrBookingExpired)
	})

	t.Run("caller is not the owner", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "booking1").Return(pendingBooking(), nil).Times(1)
		deps.repo.EXPECT().CompareAndSetStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.RespondToBooking(deps.ctx, "booking1", "someone-else", bk.StatusConfirmed, "")

		require.ErrorIs(t, err, bk.ErrNotAuthorized)
	})

	t.Run("booking already resolved", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		booking := pendingBooking()
		booking.Status = bk.StatusConfirmed

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "booking1").Return(booking, nil).Times(1)
		deps.repo.EXPECT().CompareAndSetStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.RespondToBooking(deps.ctx, "booking1", "owner1", bk.StatusConfirmed, "")

		require.ErrorIs(t, err, bk.ErrIllegalTransition)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "nope").Return(bk.Booking{}, bk.ErrBookingNotFound).Times(1)

		_, err := deps.service.RespondToBooking(deps.ctx, "nope", "owner1", bk.StatusConfirmed, "")

		require.ErrorIs(t, err, bk.ErrBookingNotFound)
	})
}

func TestCancelBooking(t *testing.T) {

	t.Run("renter cancels a pending booking", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		booking := pendingBooking()
		cancelled := booking
		cancelled.Status = bk.StatusCancelled

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "booking1").Return(booking, nil).Times(1)
		deps.repo.EXPECT().CompareAndSetStatus(deps.ctx, "booking1", bk.StatusPending, bk.StatusCancelled, bk.StatusUpdate{}).
			Return(cancelled, nil).Times(1)

		got, err := deps.service.CancelBooking(deps.ctx, "booking1", "renter1")

		require.Nil(t, err)
		require.Equal(t, bk.StatusCancelled, got.Status)
	})

	t.Run("renter cancels while awaiting payment", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		booking := pendingBooking()
		booking.Status = bk.StatusAwaitingPayment

		cancelled := booking
		cancelled.Status = bk.StatusCancelled

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "booking1").Return(booking, nil).Times(1)
		deps.repo.EXPECT().CompareAndSetStatus(deps.ctx, "booking1", bk.StatusAwaitingPayment, bk.StatusCancelled, bk.StatusUpdate{}).
			Return(cancelled, nil).Times(1)

		got, err := deps.service.CancelBooking(deps.ctx, "booking1", "renter1")

		require.Nil(t, err)
		require.Equal(t, bk.StatusCancelled, got.Status)
	})

	t.Run("caller is not the renter", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "booking1").Return(pendingBooking(), nil).Times(1)
		deps.repo.EXPECT().CompareAndSetStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.CancelBooking(deps.ctx, "booking1", "owner1")

		require.ErrorIs(t, err, bk.ErrNotAuthorized)
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		booking := pendingBooking()
		booking.Status = bk.StatusCompleted

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "booking1").Return(booking, nil).Times(1)
		deps.repo.EXPECT().CompareAndSetStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.CancelBooking(deps.ctx, "booking1", "renter1")

		require.ErrorIs(t, err, bk.ErrIllegalTransition)
	})

	t.Run("expired booking cannot be cancelled", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		booking := pendingBooking()
		booking.ExpiresAt = testNow.Add(-time.Second)

		expired := booking
		expired.Status = bk.StatusExpired

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "booking1").Return(booking, nil).Times(1)
		deps.repo.EXPECT().CompareAndSetStatus(deps.ctx, "booking1", bk.StatusPending, bk.StatusExpired, bk.StatusUpdate{}).
			Return(expired, nil).Times(1)

		_, err := deps.service.CancelBooking(deps.ctx, "booking1", "renter1")

		require.ErrorIs(t, err, bk.ErrBookingExpired)
	})
}

func TestOnPaymentEvent(t *testing.T) {

	t.Run("initiated moves a confirmed booking to awaiting payment", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		booking := pendingBooking()
		booking.Status = bk.StatusConfirmed

		awaiting := booking
		awaiting.Status = bk.StatusAwaitingPayment

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "booking1").Return(booking, nil).Times(1)
		deps.repo.EXPECT().CompareAndSetStatus(deps.ctx, "booking1", bk.StatusConfirmed, bk.StatusAwaitingPayment, bk.StatusUpdate{}).
			Return(awaiting, nil).Times(1)

		got, err := deps.service.OnPaymentEvent(deps.ctx, "booking1", bk.PaymentEvent{Outcome: bk.PaymentOutcomeInitiated})

		require.Nil(t, err)
		require.Equal(t, bk.StatusAwaitingPayment, got.Status)
	})

	t.Run("completed settles the booking", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		booking := pendingBooking()
		booking.Status = bk.StatusAwaitingPayment

		completed := booking
		completed.Status = bk.StatusCompleted

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "booking1").Return(booking, nil).Times(1)
		deps.repo.EXPECT().CompareAndSetStatus(deps.ctx, "booking1", bk.StatusAwaitingPayment, bk.StatusCompleted, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _, _ bk.Status, update bk.StatusUpdate) (bk.Booking, error) {
				require.NotNil(t, update.PaymentStatus)
				require.Equal(t, bk.PaymentCompleted, *update.PaymentStatus)
				require.NotNil(t, update.PaidAt)
				require.Equal(t, testNow, *update.PaidAt)
				require.NotNil(t, update.TransactionID)
				require.Equal(t, "txn-42", *update.TransactionID)

				return completed, nil
			}).Times(1)

		got, err := deps.service.OnPaymentEvent(deps.ctx, "booking1", bk.PaymentEvent{
			Outcome:       bk.PaymentOutcomeCompleted,
			TransactionID: "txn-42",
		})

		require.Nil(t, err)
		require.Equal(t, bk.StatusCompleted, got.Status)
	})

	t.Run("failed drops the booking back to confirmed", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		booking := pendingBooking()
		booking.Status = bk.StatusAwaitingPayment

		confirmed := booking
		confirmed.Status = bk.StatusConfirmed

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "booking1").Return(booking, nil).Times(1)
		deps.repo.EXPECT().CompareAndSetStatus(deps.ctx, "booking1", bk.StatusAwaitingPayment, bk.StatusConfirmed, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _, _ bk.Status, update bk.StatusUpdate) (bk.Booking, error) {
				require.NotNil(t, update.PaymentStatus)
				require.Equal(t, bk.PaymentFailed, *update.PaymentStatus)

				return confirmed, nil
			}).Times(1)

		got, err := deps.service.OnPaymentEvent(deps.ctx, "booking1", bk.PaymentEvent{Outcome: bk.PaymentOutcomeFailed})

		require.Nil(t, err)
		require.Equal(t, bk.StatusConfirmed, got.Status)
	})

	t.Run("initiated on a pending booking", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "booking1").Return(pendingBooking(), nil).Times(1)
		deps.repo.EXPECT().CompareAndSetStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.OnPaymentEvent(deps.ctx, "booking1", bk.PaymentEvent{Outcome: bk.PaymentOutcomeInitiated})

		require.ErrorIs(t, err, bk.ErrIllegalTransition)
	})

	t.Run("completed on a confirmed booking", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		booking := pendingBooking()
		booking.Status = bk.StatusConfirmed

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "booking1").Return(booking, nil).Times(1)
		deps.repo.EXPECT().CompareAndSetStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.OnPaymentEvent(deps.ctx, "booking1", bk.PaymentEvent{Outcome: bk.PaymentOutcomeCompleted})

		require.ErrorIs(t, err, bk.ErrIllegalTransition)
	})

	t.Run("unknown outcome", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "booking1").Return(pendingBooking(), nil).Times(1)

		_, err := deps.service.OnPaymentEvent(deps.ctx, "booking1", bk.PaymentEvent{Outcome: "SOMETHING"})

		require.ErrorIs(t, err, bk.ErrValidation)
	})
}

func TestGetBooking(t *testing.T) {

	t.Run("renter can view", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "booking1").Return(pendingBooking(), nil).Times(1)

		got, err := deps.service.GetBooking(deps.ctx, "booking1", "renter1")

		require.Nil(t, err)
		require.Equal(t, "booking1", got.ID)
	})

	t.Run("owner can view", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "booking1").Return(pendingBooking(), nil).Times(1)

		_, err := deps.service.GetBooking(deps.ctx, "booking1", "owner1")

		require.Nil(t, err)
	})

	t.Run("stranger cannot view", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "booking1").Return(pendingBooking(), nil).Times(1)

		_, err := deps.service.GetBooking(deps.ctx, "booking1", "stranger")

		require.ErrorIs(t, err, bk.ErrNotAuthorized)
	})

	t.Run("stale pending booking reads back as expired", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		booking := pendingBooking()
		booking.ExpiresAt = testNow.Add(-time.Hour)

		expired := booking
		expired.Status = bk.StatusExpired

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "booking1").Return(booking, nil).Times(1)
		deps.repo.EXPECT().CompareAndSetStatus(deps.ctx, "booking1", bk.StatusPending, bk.StatusExpired, bk.StatusUpdate{}).
			Return(expired, nil).Times(1)

		got, err := deps.service.GetBooking(deps.ctx, "booking1", "renter1")

		require.Nil(t, err)
		require.Equal(t, bk.StatusExpired, got.Status)
	})
}

func TestListBookings(t *testing.T) {

	t.Run("renter listing sweeps first", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		gomock.InOrder(
			deps.repo.EXPECT().ExpireStale(deps.ctx, testNow).Return(int64(2), nil),
			deps.repo.EXPECT().GetBookingsForRenter(deps.ctx, "renter1").Return([]bk.Booking{pendingBooking()}, nil),
		)

		bookings, err := deps.service.BookingsForRenter(deps.ctx, "renter1")

		require.Nil(t, err)
		require.Len(t, bookings, 1)
	})

	t.Run("owner listing sweeps first", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		gomock.InOrder(
			deps.repo.EXPECT().ExpireStale(deps.ctx, testNow).Return(int64(0), nil),
			deps.repo.EXPECT().GetRequestsForOwner(deps.ctx, "owner1").Return([]bk.Booking{pendingBooking()}, nil),
		)

		requests, err := deps.service.RequestsForOwner(deps.ctx, "owner1")

		require.Nil(t, err)
		require.Len(t, requests, 1)
	})

	t.Run("vehicle calendar sweeps first", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		gomock.InOrder(
			deps.repo.EXPECT().ExpireStale(deps.ctx, testNow).Return(int64(0), nil),
			deps.repo.EXPECT().GetActiveBookingsForVehicle(deps.ctx, "veh1").Return([]bk.Booking{pendingBooking()}, nil),
		)

		bookings, err := deps.service.ActiveBookingsForVehicle(deps.ctx, "veh1")

		require.Nil(t, err)
		require.Len(t, bookings, 1)
	})

	t.Run("sweep failure aborts the listing", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().ExpireStale(deps.ctx, testNow).Return(int64(0), errors.New("connection reset")).Times(1)
		deps.repo.EXPECT().GetBookingsForRenter(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.BookingsForRenter(deps.ctx, "renter1")

		require.Error(t, err)
	})
}
