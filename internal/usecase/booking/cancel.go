package booking

import (
	"context"

	"github.com/valentinobarber/site-api/internal/audit"
	domain "github.com/valentinobarber/site-api/internal/domain/booking"
	"github.com/valentinobarber/site-api/internal/models"
)

type Cancel struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancel(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Cancel {
	return &Cancel{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Cancel) Execute(
	ctx context.Context,
	actor string,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.Cancel(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
