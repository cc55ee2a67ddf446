package booking

import (
	"context"
	"time"

	domain "github.com/valentinobarber/site-api/internal/domain/booking"
	"github.com/valentinobarber/site-api/internal/models"
	"github.com/valentinobarber/site-api/internal/timezone"
)

type List struct {
	repo domain.Repository
	tz   string
}

func NewList(repo domain.Repository, tz string) *List {
	return &List{
		repo: repo,
		tz:   tz,
	}
}

// Execute returns appointments ordered by start time descending, optionally
// narrowed to one barber and/or the calendar day containing date (midnight
// to midnight in the shop timezone).
func (uc *List) Execute(
	ctx context.Context,
	barberID uint,
	date *time.Time,
) ([]models.Appointment, error) {

	f := domain.ListFilter{BarberID: barberID}

	if date != nil {
		f.From, f.To = timezone.DayWindow(*date, uc.tz)
	}

	return uc.repo.ListAppointments(ctx, f)
}
