package booking

import (
	"context"
	"time"

	"github.com/gabrielbarbershop/booking-api/internal/models"
)

// Repository is the persistence contract the usecases run against.
// InTx hands the callback a Repository bound to one transaction; every
// guard-check-then-write sequence must go through it.
type Repository interface {
	InTx(ctx context.Context, fn func(Repository) error) error

	// -------- User --------
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	SaveUser(ctx context.Context, u *models.User) error
	DeleteUser(ctx context.Context, id uint) error

	// -------- UserType --------
	GetUserTypeByID(ctx context.Context, id uint) (*models.UserType, error)

	// -------- Service --------
	ListServices(ctx context.Context) ([]models.Service, error)
	GetServiceByID(ctx context.Context, id uint) (*models.Service, error)
	SaveService(ctx context.Context, s *models.Service) error
	DeleteService(ctx context.Context, id uint) error

	// -------- Appointment --------
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	ListAppointmentsByClient(ctx context.Context, clientID uint) ([]models.Appointment, error)
	ListAppointmentsByProfessional(ctx context.Context, professionalID uint) ([]models.Appointment, error)
	GetAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error)
	SaveAppointment(ctx context.Context, ap *models.Appointment) error
	DeleteAppointment(ctx context.Context, id uint) error

	// Guards. Both take row locks when called inside InTx.
	HasPendingForProfessional(ctx context.Context, professionalID uint) (bool, error)
	HasPendingForService(ctx context.Context, serviceID uint) (bool, error)
	HasPendingAt(ctx context.Context, professionalID uint, at time.Time) (bool, error)

	// -------- AvailableSlot --------
	ListSlots(ctx context.Context) ([]models.AvailableSlot, error)
	ListAvailableSlotsBetween(ctx context.Context, start, end time.Time) ([]models.AvailableSlot, error)
	GetSlotByID(ctx context.Context, id uint) (*models.AvailableSlot, error)
	GetSlotAt(ctx context.Context, at time.Time) (*models.AvailableSlot, error)
	SaveSlot(ctx context.Context, s *models.AvailableSlot) error
	DeleteSlot(ctx context.Context, id uint) error
}
