package booking

import (
	"context"
	"time"

	"github.com/valentinobarber/site-api/internal/models"
)

// ListFilter narrows the appointment listing. A zero BarberID means all
// barbers; zero From/To means no day window.
type ListFilter struct {
	BarberID uint
	From     time.Time
	To       time.Time
}

type Repository interface {
	// -------- Barber --------
	BarberExists(
		ctx context.Context,
		barberID uint,
	) (bool, error)

	// -------- Slot reservation (lock-then-insert) --------

	// ReserveSlot runs a single transaction that locks any existing
	// non-cancelled appointment for (ap.BarberID, ap.StartTime), fails
	// with ErrBusiness("slot_conflict") if one exists, and otherwise
	// inserts ap. No row is written on conflict.
	ReserveSlot(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listing --------
	ListAppointments(
		ctx context.Context,
		f ListFilter,
	) ([]models.Appointment, error)

	// -------- State change --------
	GetAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
