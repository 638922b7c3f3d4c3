package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/gabrielbarbershop/booking-api/internal/domain/booking"
	"github.com/gabrielbarbershop/booking-api/internal/httperr"
	"github.com/gabrielbarbershop/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func (r *BookingGormRepository) InTx(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx})
	})
}

// --------------------------------------------------
// User
// --------------------------------------------------

func (r *BookingGormRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Preload("UserType").
		Order("id ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *BookingGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Preload("UserType").
		First(&user, id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("user_not_found")
		}
		return nil, err
	}
	return &user, nil
}

func (r *BookingGormRepository) GetUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Preload("UserType").
		Where("email = ?", email).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("user_not_found")
		}
		return nil, err
	}
	return &user, nil
}

func (r *BookingGormRepository) SaveUser(ctx context.Context, u *models.User) error {
	err := r.db.WithContext(ctx).Save(u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.ErrConflict("email_or_cpf_already_registered")
	}
	return err
}

func (r *BookingGormRepository) DeleteUser(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.User{}, id).Error
}

// --------------------------------------------------
// UserType
// --------------------------------------------------

func (r *BookingGormRepository) GetUserTypeByID(
	ctx context.Context,
	id uint,
) (*models.UserType, error) {

	var ut models.UserType
	if err := r.db.WithContext(ctx).First(&ut, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("user_type_not_found")
		}
		return nil, err
	}
	return &ut, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) ListServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *BookingGormRepository) GetServiceByID(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("service_not_found")
		}
		return nil, err
	}
	return &svc, nil
}

func (r *BookingGormRepository) SaveService(ctx context.Context, s *models.Service) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *BookingGormRepository) DeleteService(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Service{}, id).Error
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *BookingGormRepository) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Professional").
		Preload("Service").
		Order("scheduled_at ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *BookingGormRepository) ListAppointmentsByClient(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Professional").
		Preload("Service").
		Where("client_id = ?", clientID).
		Order("scheduled_at ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *BookingGormRepository) ListAppointmentsByProfessional(
	ctx context.Context,
	professionalID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("professional_id = ?", professionalID).
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *BookingGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("appointment_not_found")
		}
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) SaveAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *BookingGormRepository) DeleteAppointment(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Appointment{}, id).Error
}

// --------------------------------------------------
// Guards
// --------------------------------------------------

// The guards pluck ids instead of counting: postgres refuses FOR UPDATE
// on aggregate queries, and the lock on the matching rows is the point.

func (r *BookingGormRepository) HasPendingForProfessional(
	ctx context.Context,
	professionalID uint,
) (bool, error) {

	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("professional_id = ? AND status = ?", professionalID, "Pendente").
		Limit(1).
		Pluck("id", &ids).Error; err != nil {
		return false, err
	}
	return len(ids) > 0, nil
}

func (r *BookingGormRepository) HasPendingForService(
	ctx context.Context,
	serviceID uint,
) (bool, error) {

	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("service_id = ? AND status = ?", serviceID, "Pendente").
		Limit(1).
		Pluck("id", &ids).Error; err != nil {
		return false, err
	}
	return len(ids) > 0, nil
}

func (r *BookingGormRepository) HasPendingAt(
	ctx context.Context,
	professionalID uint,
	at time.Time,
) (bool, error) {

	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"professional_id = ? AND status = ? AND scheduled_at = ?",
			professionalID, "Pendente", at,
		).
		Limit(1).
		Pluck("id", &ids).Error; err != nil {
		return false, err
	}
	return len(ids) > 0, nil
}

// --------------------------------------------------
// AvailableSlot
// --------------------------------------------------

func (r *BookingGormRepository) ListSlots(ctx context.Context) ([]models.AvailableSlot, error) {
	var slots []models.AvailableSlot
	if err := r.db.WithContext(ctx).
		Order("timestamp ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *BookingGormRepository) ListAvailableSlotsBetween(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.AvailableSlot, error) {

	var slots []models.AvailableSlot
	if err := r.db.WithContext(ctx).
		Where("available = ? AND timestamp BETWEEN ? AND ?", true, start, end).
		Order("timestamp ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *BookingGormRepository) GetSlotByID(
	ctx context.Context,
	id uint,
) (*models.AvailableSlot, error) {

	var slot models.AvailableSlot
	if err := r.db.WithContext(ctx).First(&slot, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("slot_not_found")
		}
		return nil, err
	}
	return &slot, nil
}

// GetSlotAt locks the matching row so a concurrent booking cannot claim
// the same slot between check and write.
func (r *BookingGormRepository) GetSlotAt(
	ctx context.Context,
	at time.Time,
) (*models.AvailableSlot, error) {

	var slot models.AvailableSlot
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("timestamp = ?", at).
		First(&slot).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("slot_not_found")
		}
		return nil, err
	}
	return &slot, nil
}

func (r *BookingGormRepository) SaveSlot(ctx context.Context, s *models.AvailableSlot) error {
	err := r.db.WithContext(ctx).Save(s).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.ErrConflict("slot_timestamp_already_exists")
	}
	return err
}

func (r *BookingGormRepository) DeleteSlot(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.AvailableSlot{}, id).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
