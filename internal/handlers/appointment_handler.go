package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	status "github.com/gabrielbarbershop/booking-api/internal/domain/appointment"
	"github.com/gabrielbarbershop/booking-api/internal/httperr"
	"github.com/gabrielbarbershop/booking-api/internal/httpresp"
	ucAppointment "github.com/gabrielbarbershop/booking-api/internal/usecase/appointment"
)

type AppointmentHandler struct {
	create       *ucAppointment.CreateAppointment
	updateStatus *ucAppointment.UpdateStatus
	queries      *ucAppointment.Queries
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	updateStatus *ucAppointment.UpdateStatus,
	queries *ucAppointment.Queries,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:       create,
		updateStatus: updateStatus,
		queries:      queries,
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	ClientID       uint      `json:"client_id" binding:"required"`
	ProfessionalID *uint     `json:"professional_id"`
	ServiceID      uint      `json:"service_id" binding:"required"`
	ScheduledAt    time.Time `json:"scheduled_at" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// --------- Handlers ---------

func (h *AppointmentHandler) List(c *gin.Context) {
	apps, err := h.queries.List(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, apps)
}

func (h *AppointmentHandler) ListByClient(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	apps, err := h.queries.ListByClient(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, apps)
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientID:       req.ClientID,
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		ScheduledAt:    req.ScheduledAt,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.updateStatus.Execute(c.Request.Context(), id, status.Status(req.Status))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.queries.Delete(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
