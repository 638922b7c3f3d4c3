// Package bookingtest provides an in-memory booking.Repository for
// usecase and handler tests.
package bookingtest

import (
	"context"
	"sort"
	"time"

	"github.com/gabrielbarbershop/booking-api/internal/domain/booking"
	"github.com/gabrielbarbershop/booking-api/internal/httperr"
	"github.com/gabrielbarbershop/booking-api/internal/models"
)

type FakeRepo struct {
	Users        map[uint]*models.User
	UserTypes    map[uint]*models.UserType
	Services     map[uint]*models.Service
	Appointments map[uint]*models.Appointment
	Slots        map[uint]*models.AvailableSlot

	nextID uint
}

func NewFakeRepo() *FakeRepo {
	return &FakeRepo{
		Users:        map[uint]*models.User{},
		UserTypes:    map[uint]*models.UserType{},
		Services:     map[uint]*models.Service{},
		Appointments: map[uint]*models.Appointment{},
		Slots:        map[uint]*models.AvailableSlot{},
		nextID:       100,
	}
}

func (f *FakeRepo) id() uint {
	f.nextID++
	return f.nextID
}

func (f *FakeRepo) InTx(ctx context.Context, fn func(booking.Repository) error) error {
	return fn(f)
}

// -------- User --------

func (f *FakeRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(f.Users))
	for _, u := range f.Users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *FakeRepo) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	u, ok := f.Users[id]
	if !ok {
		return nil, httperr.ErrNotFound("user_not_found")
	}
	cp := *u
	return &cp, nil
}

func (f *FakeRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.Users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, httperr.ErrNotFound("user_not_found")
}

func (f *FakeRepo) SaveUser(ctx context.Context, u *models.User) error {
	if u.ID == 0 {
		u.ID = f.id()
	}
	cp := *u
	f.Users[u.ID] = &cp
	return nil
}

func (f *FakeRepo) DeleteUser(ctx context.Context, id uint) error {
	delete(f.Users, id)
	return nil
}

// -------- UserType --------

func (f *FakeRepo) GetUserTypeByID(ctx context.Context, id uint) (*models.UserType, error) {
	ut, ok := f.UserTypes[id]
	if !ok {
		return nil, httperr.ErrNotFound("user_type_not_found")
	}
	cp := *ut
	return &cp, nil
}

// -------- Service --------

func (f *FakeRepo) ListServices(ctx context.Context) ([]models.Service, error) {
	out := make([]models.Service, 0, len(f.Services))
	for _, s := range f.Services {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *FakeRepo) GetServiceByID(ctx context.Context, id uint) (*models.Service, error) {
	s, ok := f.Services[id]
	if !ok {
		return nil, httperr.ErrNotFound("service_not_found")
	}
	cp := *s
	return &cp, nil
}

func (f *FakeRepo) SaveService(ctx context.Context, s *models.Service) error {
	if s.ID == 0 {
		s.ID = f.id()
	}
	cp := *s
	f.Services[s.ID] = &cp
	return nil
}

func (f *FakeRepo) DeleteService(ctx context.Context, id uint) error {
	delete(f.Services, id)
	return nil
}

// -------- Appointment --------

func (f *FakeRepo) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0, len(f.Appointments))
	for _, ap := range f.Appointments {
		out = append(out, *ap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *FakeRepo) ListAppointmentsByClient(ctx context.Context, clientID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.Appointments {
		if ap.ClientID == clientID {
			out = append(out, *ap)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *FakeRepo) ListAppointmentsByProfessional(ctx context.Context, professionalID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.Appointments {
		if ap.ProfessionalID != nil && *ap.ProfessionalID == professionalID {
			out = append(out, *ap)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *FakeRepo) GetAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	ap, ok := f.Appointments[id]
	if !ok {
		return nil, httperr.ErrNotFound("appointment_not_found")
	}
	cp := *ap
	return &cp, nil
}

func (f *FakeRepo) SaveAppointment(ctx context.Context, ap *models.Appointment) error {
	if ap.ID == 0 {
		ap.ID = f.id()
	}
	cp := *ap
	f.Appointments[ap.ID] = &cp
	return nil
}

func (f *FakeRepo) DeleteAppointment(ctx context.Context, id uint) error {
	delete(f.Appointments, id)
	return nil
}

func (f *FakeRepo) HasPendingForProfessional(ctx context.Context, professionalID uint) (bool, error) {
	for _, ap := range f.Appointments {
		if ap.ProfessionalID != nil && *ap.ProfessionalID == professionalID && ap.Status == "Pendente" {
			return true, nil
		}
	}
	return false, nil
}

func (f *FakeRepo) HasPendingForService(ctx context.Context, serviceID uint) (bool, error) {
	for _, ap := range f.Appointments {
		if ap.ServiceID == serviceID && ap.Status == "Pendente" {
			return true, nil
		}
	}
	return false, nil
}

func (f *FakeRepo) HasPendingAt(ctx context.Context, professionalID uint, at time.Time) (bool, error) {
	for _, ap := range f.Appointments {
		if ap.ProfessionalID != nil && *ap.ProfessionalID == professionalID &&
			ap.Status == "Pendente" && ap.ScheduledAt.Equal(at) {
			return true, nil
		}
	}
	return false, nil
}

// -------- AvailableSlot --------

func (f *FakeRepo) ListSlots(ctx context.Context) ([]models.AvailableSlot, error) {
	out := make([]models.AvailableSlot, 0, len(f.Slots))
	for _, s := range f.Slots {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (f *FakeRepo) ListAvailableSlotsBetween(ctx context.Context, start, end time.Time) ([]models.AvailableSlot, error) {
	var out []models.AvailableSlot
	for _, s := range f.Slots {
		if s.Available && !s.Timestamp.Before(start) && !s.Timestamp.After(end) {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (f *FakeRepo) GetSlotByID(ctx context.Context, id uint) (*models.AvailableSlot, error) {
	s, ok := f.Slots[id]
	if !ok {
		return nil, httperr.ErrNotFound("slot_not_found")
	}
	cp := *s
	return &cp, nil
}

func (f *FakeRepo) GetSlotAt(ctx context.Context, at time.Time) (*models.AvailableSlot, error) {
	for _, s := range f.Slots {
		if s.Timestamp.Equal(at) {
			cp := *s
			return &cp, nil
		}
	}
	return nil, httperr.ErrNotFound("slot_not_found")
}

func (f *FakeRepo) SaveSlot(ctx context.Context, s *models.AvailableSlot) error {
	if s.ID == 0 {
		for _, existing := range f.Slots {
			if existing.Timestamp.Equal(s.Timestamp) {
				return httperr.ErrConflict("slot_timestamp_already_exists")
			}
		}
		s.ID = f.id()
	}
	cp := *s
	f.Slots[s.ID] = &cp
	return nil
}

func (f *FakeRepo) DeleteSlot(ctx context.Context, id uint) error {
	delete(f.Slots, id)
	return nil
}

var _ booking.Repository = (*FakeRepo)(nil)
