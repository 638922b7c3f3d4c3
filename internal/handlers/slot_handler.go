package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gabrielbarbershop/booking-api/internal/httperr"
	"github.com/gabrielbarbershop/booking-api/internal/httpresp"
	"github.com/gabrielbarbershop/booking-api/internal/models"
	"github.com/gabrielbarbershop/booking-api/internal/usecase/schedule"
)

type SlotHandler struct {
	schedule *schedule.Schedule
}

func NewSlotHandler(s *schedule.Schedule) *SlotHandler {
	return &SlotHandler{schedule: s}
}

type CreateSlotRequest struct {
	Timestamp time.Time `json:"timestamp" binding:"required"`
	Available *bool     `json:"available"`
}

func (h *SlotHandler) List(c *gin.Context) {
	slots, err := h.schedule.List(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, slots)
}

// ListAvailableByDate serves /horarios/disponiveis/:date with date as
// YYYY-MM-DD.
func (h *SlotHandler) ListAvailableByDate(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Use o formato YYYY-MM-DD.")
		return
	}

	slots, err := h.schedule.ListAvailableByDate(c.Request.Context(), date)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, slots)
}

func (h *SlotHandler) Create(c *gin.Context) {
	var req CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	slot := models.AvailableSlot{
		Timestamp: req.Timestamp,
		Available: true,
	}
	if req.Available != nil {
		slot.Available = *req.Available
	}

	if err := h.schedule.Save(c.Request.Context(), &slot); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, slot)
}

func (h *SlotHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.schedule.Delete(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SetAvailability serves PUT /horarios/:id/disponibilidade?disponivel=bool.
func (h *SlotHandler) SetAvailability(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var available bool
	switch c.Query("disponivel") {
	case "true":
		available = true
	case "false":
		available = false
	default:
		httperr.BadRequest(c, "invalid_availability", "O parâmetro disponivel deve ser true ou false.")
		return
	}

	slot, err := h.schedule.SetAvailability(c.Request.Context(), id, available)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, slot)
}
