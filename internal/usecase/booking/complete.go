package booking

import (
	"context"

	"github.com/valentinobarber/site-api/internal/audit"
	domain "github.com/valentinobarber/site-api/internal/domain/booking"
	"github.com/valentinobarber/site-api/internal/models"
)

type Complete struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewComplete(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Complete {
	return &Complete{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Complete) Execute(
	ctx context.Context,
	actor string,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.Complete(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
