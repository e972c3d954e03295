package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"alabraar/middleware"
	"alabraar/models"
	"alabraar/services/availability"
	"alabraar/services/booking"
	"alabraar/utils"
)

// BookingHandler exposes booking creation, listing and lifecycle endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	p, _ := middleware.GetPrincipal(c)
	if p.Role != models.RoleStudent {
		utils.JSONError(c, http.StatusForbidden, "forbidden", "only students create bookings")
		return
	}

	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Service.CreateBooking(c.Request.Context(), p.ID, input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// MyBookingsHandler handles GET /api/bookings/mine.
func (h *BookingHandler) MyBookingsHandler(c *gin.Context) {
	p, _ := middleware.GetPrincipal(c)

	bookings, err := h.Service.ListForUser(c.Request.Context(), p.ID, p.Role)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// UpdateBookingHandler handles PATCH /api/bookings/:id — status changes only,
// forward transitions enforced by the service.
func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	b, ok := h.authorizedBooking(c)
	if !ok {
		return
	}

	updated, err := h.Service.UpdateStatus(c.Request.Context(), b.ID, input.Status)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// CancelBookingHandler handles POST /api/bookings/:id/cancel.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	var input struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&input)

	b, ok := h.authorizedBooking(c)
	if !ok {
		return
	}

	cancelled, err := h.Service.CancelBooking(c.Request.Context(), b.ID, input.Reason)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cancelled)
}

// CompleteSlotHandler handles POST /api/bookings/:id/slots/:slotID/complete.
func (h *BookingHandler) CompleteSlotHandler(c *gin.Context) {
	b, ok := h.authorizedBooking(c)
	if !ok {
		return
	}
	if err := h.Service.CompleteSlot(c.Request.Context(), b.ID, c.Param("slotID")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// CancelSlotHandler handles POST /api/bookings/:id/slots/:slotID/cancel.
func (h *BookingHandler) CancelSlotHandler(c *gin.Context) {
	b, ok := h.authorizedBooking(c)
	if !ok {
		return
	}
	if err := h.Service.CancelSlot(c.Request.Context(), b.ID, c.Param("slotID")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// PaymentIntentHandler handles POST /api/bookings/:id/payment-intent.
func (h *BookingHandler) PaymentIntentHandler(c *gin.Context) {
	b, ok := h.authorizedBooking(c)
	if !ok {
		return
	}
	p, _ := middleware.GetPrincipal(c)
	if p.ID != b.StudentID && !p.IsAdmin() {
		utils.JSONError(c, http.StatusForbidden, "forbidden", "only the paying student opens payment")
		return
	}

	inv, err := h.Service.CreatePaymentIntent(c.Request.Context(), b.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// SettlePaymentHandler handles POST /api/bookings/:id/settle.
func (h *BookingHandler) SettlePaymentHandler(c *gin.Context) {
	var input struct {
		Succeeded bool `json:"succeeded"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	b, ok := h.authorizedBooking(c)
	if !ok {
		return
	}

	settled, err := h.Service.SettlePayment(c.Request.Context(), b.ID, input.Succeeded)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settled)
}

// authorizedBooking loads the booking and enforces that the caller is one of
// its two parties or an admin.
func (h *BookingHandler) authorizedBooking(c *gin.Context) (*models.Booking, bool) {
	p, _ := middleware.GetPrincipal(c)

	b, err := h.Service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return nil, false
	}
	if p.ID != b.StudentID && p.ID != b.UstaadhID && !p.IsAdmin() {
		utils.JSONError(c, http.StatusForbidden, "forbidden", "not a party to this booking")
		return nil, false
	}
	return b, true
}

func (h *BookingHandler) respondError(c *gin.Context, err error) {
	var conflictErr *booking.ConflictError
	var transitionErr *booking.TransitionError
	switch {
	case errors.Is(err, booking.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking not found", "")
	case errors.Is(err, availability.ErrUstaadhNotFound):
		utils.JSONError(c, http.StatusNotFound, "ustaadh not found", "")
	case errors.As(err, &conflictErr):
		utils.JSONError(c, http.StatusConflict, "slot unavailable", conflictErr.Error())
	case errors.As(err, &transitionErr):
		utils.JSONError(c, http.StatusBadRequest, "invalid transition", transitionErr.Error())
	case errors.Is(err, availability.ErrMalformed):
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
	default:
		h.Logger.Error("booking request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "booking request failed", err.Error())
	}
}
