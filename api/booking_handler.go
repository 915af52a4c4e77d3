package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	bk "github.com/Brook07/RideShareX/booking"
	"github.com/Brook07/RideShareX/vehicle"
)

type BookingService interface {
	RequestBooking(ctx context.Context, req bk.BookingRequest) (bk.Booking, error)
	RespondToBooking(ctx context.Context, id, ownerID string, decision bk.Status, reason string) (bk.Booking, error)
	CancelBooking(ctx context.Context, id, renterID string) (bk.Booking, error)
	OnPaymentEvent(ctx context.Context, id string, event bk.PaymentEvent) (bk.Booking, error)
	GetBooking(ctx context.Context, id, callerID string) (bk.Booking, error)
	ActiveBookingsForVehicle(ctx context.Context, vehicleID string) ([]bk.Booking, error)
	BookingsForRenter(ctx context.Context, renterID string) ([]bk.Booking, error)
	RequestsForOwner(ctx context.Context, ownerID string) ([]bk.Booking, error)
}

type BookingHandler struct {
	service BookingService
}

func NewBookingHandler(service BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("/user", h.ListForRenter)
	rg.GET("/owner", h.ListForOwner)
	rg.GET("/vehicle/:vehicleId", h.ActiveForVehicle)
	rg.GET("/:bookingId", h.GetByID)
	rg.PATCH("/:bookingId/status", h.Respond)
	rg.PATCH("/:bookingId/cancel", h.Cancel)
	rg.POST("/:bookingId/payment", h.PaymentEvent)
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req bk.BookingRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	req.RenterID = callerID(c)

	booking, err := h.service.RequestBooking(c.Request.Context(), req)

	if err != nil {
		writeBookingError(c, err, "failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	booking, err := h.service.GetBooking(c.Request.Context(), c.Param("bookingId"), callerID(c))

	if err != nil {
		writeBookingError(c, err, "failed to fetch booking")
		return
	}

	c.IndentedJSON(http.StatusOK, booking)
}

func (h *BookingHandler) ListForRenter(c *gin.Context) {
	bookings, err := h.service.BookingsForRenter(c.Request.Context(), callerID(c))

	if err != nil {
		writeBookingError(c, err, "failed to retrieve bookings")
		return
	}

	c.IndentedJSON(http.StatusOK, bookings)
}

func (h *BookingHandler) ListForOwner(c *gin.Context) {
	bookings, err := h.service.RequestsForOwner(c.Request.Context(), callerID(c))

	if err != nil {
		writeBookingError(c, err, "failed to retrieve booking requests")
		return
	}

	c.IndentedJSON(http.StatusOK, bookings)
}

// calendarEntry is the slice of a booking a vehicle calendar needs. Anyone
// browsing a vehicle can see which dates are taken, but not by whom or for
// how much.
type calendarEntry struct {
	PickupDate  time.Time `json:"pickupDate"`
	DropoffDate time.Time `json:"dropoffDate"`
}

func (h *BookingHandler) ActiveForVehicle(c *gin.Context) {
	bookings, err := h.service.ActiveBookingsForVehicle(c.Request.Context(), c.Param("vehicleId"))

	if err != nil {
		writeBookingError(c, err, "failed to retrieve vehicle bookings")
		return
	}

	entries := make([]calendarEntry, 0, len(bookings))

	for _, booking := range bookings {
		entries = append(entries, calendarEntry{
			PickupDate:  booking.PickupDate,
			DropoffDate: booking.DropoffDate,
		})
	}

	c.IndentedJSON(http.StatusOK, entries)
}

type respondRequest struct {
	Status          bk.Status `json:"status"`
	RejectionReason string    `json:"rejectionReason"`
}

func (h *BookingHandler) Respond(c *gin.Context) {
	var req respondRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	booking, err := h.service.RespondToBooking(c.Request.Context(), c.Param("bookingId"), callerID(c), req.Status, req.RejectionReason)

	if err != nil {
		writeBookingError(c, err, "failed to update booking status")
		return
	}

	c.IndentedJSON(http.StatusOK, booking)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	booking, err := h.service.CancelBooking(c.Request.Context(), c.Param("bookingId"), callerID(c))

	if err != nil {
		writeBookingError(c, err, "failed to cancel booking")
		return
	}

	c.IndentedJSON(http.StatusOK, booking)
}

func (h *BookingHandler) PaymentEvent(c *gin.Context) {
	var event bk.PaymentEvent

	if err := c.BindJSON(&event); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	booking, err := h.service.OnPaymentEvent(c.Request.Context(), c.Param("bookingId"), event)

	if err != nil {
		writeBookingError(c, err, "failed to apply payment event")
		return
	}

	c.IndentedJSON(http.StatusOK, booking)
}

func callerID(c *gin.Context) string {
	return c.MustGet("userID").(string)
}

// writeBookingError maps the engine's error taxonomy onto HTTP statuses.
func writeBookingError(c *gin.Context, err error, fallback string) {
	c.Error(err)

	switch {
	case errors.Is(err, bk.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
	case errors.Is(err, vehicle.ErrVehicleNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
	case errors.Is(err, bk.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, bk.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to perform this operation"})
	case errors.Is(err, bk.ErrBookingExpired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "booking has expired"})
	case errors.Is(err, bk.ErrIllegalTransition):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking state"})
	case errors.Is(err, bk.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "vehicle is already booked for these dates"})
	case errors.Is(err, bk.ErrStaleState):
		c.JSON(http.StatusConflict, gin.H{"error": "booking was modified concurrently, please retry"})
	case errors.Is(err, bk.ErrStoreTimeout):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "temporarily unable to process booking"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
