package appointment

import "github.com/gabrielbarbershop/booking-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "Pendente"
	StatusCompleted Status = "Concluido"
	StatusCancelled Status = "Cancelado"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ===============================
// Transitions
// ===============================

// Only a pending appointment moves; completed and cancelled are terminal.
func CanTransition(from, to Status) error {
	if !to.Valid() {
		return httperr.ErrInvalidArgument("invalid_status")
	}
	if from != StatusPending || to == StatusPending {
		return httperr.ErrInvalidArgument("invalid_status_transition")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
