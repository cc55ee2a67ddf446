package booking

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/valentinobarber/site-api/internal/audit"
	domain "github.com/valentinobarber/site-api/internal/domain/booking"
	"github.com/valentinobarber/site-api/internal/httperr"
	"github.com/valentinobarber/site-api/internal/metrics"
	"github.com/valentinobarber/site-api/internal/models"
	"github.com/valentinobarber/site-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type ReserveInput struct {
	BarberID uint

	// Comma-joined service ids from the wizard.
	ServiceID string

	CustomerName  string
	CustomerPhone string

	StartTime time.Time
}

// ======================================================
// USE CASE
// ======================================================

// Reserve creates an appointment for a (barber, start time) slot. Validation
// happens entirely before the transaction; the transaction itself is the
// repository's lock-then-insert, so losing a slot race costs a rollback and
// nothing else.
type Reserve struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewReserve(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Reserve {
	return &Reserve{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Reserve) Execute(
	ctx context.Context,
	in ReserveInput,
) (*models.Appointment, error) {

	if err := validate(in); err != nil {
		return nil, err
	}

	exists, err := uc.repo.BarberExists(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	ap := &models.Appointment{
		BarberID:      in.BarberID,
		ServiceID:     strings.TrimSpace(in.ServiceID),
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerPhone: strings.TrimSpace(in.CustomerPhone),
		StartTime:     in.StartTime,
		Status:        string(domain.InitialStatus()),
	}

	if err := uc.repo.ReserveSlot(ctx, ap); err != nil {
		if httperr.IsBusiness(err, "slot_conflict") {
			metrics.IncReservation("conflict")

			uc.audit.Dispatch(audit.Event{
				Actor:  "public",
				Action: "appointment_conflict",
				Entity: "appointment",
				Metadata: map[string]any{
					"barber_id":  in.BarberID,
					"start_time": in.StartTime,
				},
			})
		}
		return nil, err
	}

	metrics.IncReservation("created")

	log.Info().
		Uint("appointment_id", ap.ID).
		Uint("barber_id", ap.BarberID).
		Time("start_time", ap.StartTime).
		Msg("appointment reserved")

	uc.audit.Dispatch(audit.Event{
		Actor:    "public",
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func validate(in ReserveInput) error {
	if in.BarberID == 0 {
		return httperr.ErrBusiness("missing_barber")
	}
	if strings.TrimSpace(in.ServiceID) == "" {
		return httperr.ErrBusiness("missing_service")
	}
	if strings.TrimSpace(in.CustomerName) == "" {
		return httperr.ErrBusiness("missing_customer_name")
	}
	if strings.TrimSpace(in.CustomerPhone) == "" {
		return httperr.ErrBusiness("missing_customer_phone")
	}
	if in.StartTime.IsZero() {
		return httperr.ErrBusiness("missing_start_time")
	}
	if !validators.IsPhoneValid(in.CustomerPhone) {
		return httperr.ErrBusiness("invalid_phone")
	}
	return nil
}
