package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrielbarbershop/booking-api/internal/domain/booking/bookingtest"
	"github.com/gabrielbarbershop/booking-api/internal/httperr"
	"github.com/gabrielbarbershop/booking-api/internal/models"
)

func TestServiceCatalog_SaveUpserts(t *testing.T) {
	repo := bookingtest.NewFakeRepo()
	uc := NewServiceCatalog(repo)

	svc := models.Service{Name: "Corte", Price: 45.00, DurationMin: 30}
	require.NoError(t, uc.Save(context.Background(), &svc))
	require.NotZero(t, svc.ID)

	svc.Price = 50.00
	require.NoError(t, uc.Save(context.Background(), &svc))

	all, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 50.00, all[0].Price)
}

func TestServiceCatalog_DeleteNotFound(t *testing.T) {
	repo := bookingtest.NewFakeRepo()
	uc := NewServiceCatalog(repo)

	err := uc.Delete(context.Background(), 404)
	require.Error(t, err)
	assert.Equal(t, httperr.KindNotFound, httperr.KindOf(err))
}

func TestServiceCatalog_DeleteBlockedWhilePending(t *testing.T) {
	repo := bookingtest.NewFakeRepo()
	uc := NewServiceCatalog(repo)

	svc := models.Service{Name: "Barba", Price: 30.00, DurationMin: 20}
	require.NoError(t, uc.Save(context.Background(), &svc))

	repo.Appointments[1] = &models.Appointment{
		ID: 1, ClientID: 7, ServiceID: svc.ID, Status: "Pendente",
	}

	err := uc.Delete(context.Background(), svc.ID)
	require.Error(t, err)
	assert.Equal(t, httperr.KindConflict, httperr.KindOf(err))

	// once the appointment completes, the delete goes through
	repo.Appointments[1].Status = "Concluido"
	require.NoError(t, uc.Delete(context.Background(), svc.ID))

	_, stillThere := repo.Services[svc.ID]
	assert.False(t, stillThere)
}

// Appointments referencing a deleted non-pending service are left alone.
func TestServiceCatalog_DeleteDoesNotTouchAppointments(t *testing.T) {
	repo := bookingtest.NewFakeRepo()
	uc := NewServiceCatalog(repo)

	svc := models.Service{Name: "Sobrancelha", Price: 20.00, DurationMin: 15}
	require.NoError(t, uc.Save(context.Background(), &svc))

	repo.Appointments[1] = &models.Appointment{
		ID: 1, ClientID: 7, ServiceID: svc.ID, Status: "Cancelado",
	}

	require.NoError(t, uc.Delete(context.Background(), svc.ID))
	assert.Equal(t, svc.ID, repo.Appointments[1].ServiceID)
}
