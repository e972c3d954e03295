package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"alabraar/middleware"
	"alabraar/models"
	"alabraar/services/availability"
	"alabraar/utils"
)

// AvailabilityHandler exposes the weekly template and derived day views.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// GetAvailabilityHandler handles GET /api/availability?ustaadhId=.
func (h *AvailabilityHandler) GetAvailabilityHandler(c *gin.Context) {
	ustaadhID := c.Query("ustaadhId")
	if ustaadhID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing ustaadhId", "")
		return
	}

	slots, err := h.Service.GetAvailability(c.Request.Context(), ustaadhID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// SetAvailabilityHandler handles POST /api/availability. The body carries
// the full weekly template; the save replaces everything or nothing.
func (h *AvailabilityHandler) SetAvailabilityHandler(c *gin.Context) {
	p, _ := middleware.GetPrincipal(c)

	var input struct {
		UstaadhID string                    `json:"ustaadhId"`
		Slots     []models.AvailabilitySlot `json:"slots" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.UstaadhID == "" {
		input.UstaadhID = p.ID
	}
	if !p.Owns(input.UstaadhID) {
		utils.JSONError(c, http.StatusForbidden, "forbidden", "not the calendar owner")
		return
	}

	slots, err := h.Service.SetAvailability(c.Request.Context(), input.UstaadhID, input.Slots)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// GetTimeSlotsHandler handles GET /api/availability/slots?ustaadhId=&date=.
func (h *AvailabilityHandler) GetTimeSlotsHandler(c *gin.Context) {
	ustaadhID, date := c.Query("ustaadhId"), c.Query("date")
	if ustaadhID == "" || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing ustaadhId or date", "")
		return
	}

	windows, err := h.Service.GetAvailableTimeSlots(c.Request.Context(), ustaadhID, date)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": windows})
}

// GetBookedSlotsHandler handles GET /api/availability/booked?ustaadhId=&date=.
func (h *AvailabilityHandler) GetBookedSlotsHandler(c *gin.Context) {
	ustaadhID, date := c.Query("ustaadhId"), c.Query("date")
	if ustaadhID == "" || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing ustaadhId or date", "")
		return
	}

	windows, err := h.Service.GetBookedSlots(c.Request.Context(), ustaadhID, date)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": windows})
}

func (h *AvailabilityHandler) respondError(c *gin.Context, err error) {
	var valErr *availability.ValidationError
	switch {
	case errors.Is(err, availability.ErrUstaadhNotFound):
		utils.JSONError(c, http.StatusNotFound, "ustaadh not found", "")
	case errors.As(err, &valErr):
		utils.JSONError(c, http.StatusBadRequest, "invalid availability", valErr.Error())
	case errors.Is(err, availability.ErrMalformed):
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "availability request failed", err.Error())
	}
}
