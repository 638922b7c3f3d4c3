package catalog

import (
	"context"

	domain "github.com/gabrielbarbershop/booking-api/internal/domain/booking"
	"github.com/gabrielbarbershop/booking-api/internal/httperr"
	"github.com/gabrielbarbershop/booking-api/internal/models"
)

// ServiceCatalog covers the offered-services lifecycle: plain list and
// upsert, plus the delete guard against pending appointments.
type ServiceCatalog struct {
	repo domain.Repository
}

func NewServiceCatalog(repo domain.Repository) *ServiceCatalog {
	return &ServiceCatalog{repo: repo}
}

func (uc *ServiceCatalog) List(ctx context.Context) ([]models.Service, error) {
	return uc.repo.ListServices(ctx)
}

// Save upserts: a set id overwrites the stored row, a zero id inserts.
func (uc *ServiceCatalog) Save(ctx context.Context, s *models.Service) error {
	return uc.repo.SaveService(ctx, s)
}

// Delete removes a service outright. Appointments referencing it are not
// touched: a non-pending reference is assumed terminal.
func (uc *ServiceCatalog) Delete(ctx context.Context, id uint) error {
	return uc.repo.InTx(ctx, func(r domain.Repository) error {
		if _, err := r.GetServiceByID(ctx, id); err != nil {
			return err
		}

		pending, err := r.HasPendingForService(ctx, id)
		if err != nil {
			return err
		}
		if pending {
			return httperr.ErrConflict("service_has_pending_appointments")
		}

		return r.DeleteService(ctx, id)
	})
}
