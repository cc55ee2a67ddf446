package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/valentinobarber/site-api/internal/domain/booking"
	"github.com/valentinobarber/site-api/internal/httperr"
	"github.com/valentinobarber/site-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Barber
// --------------------------------------------------

func (r *BookingGormRepository) BarberExists(
	ctx context.Context,
	barberID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Barber{}).
		Where("id = ?", barberID).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// --------------------------------------------------
// Slot reservation
// --------------------------------------------------

func (r *BookingGormRepository) ReserveSlot(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// FOR UPDATE serializes contenders for the same slot. Same
		// barber at a different time, or another barber, never waits
		// on this lock.
		var existing []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"barber_id = ? AND start_time = ? AND status <> ?",
				ap.BarberID,
				ap.StartTime,
				string(domain.StatusCancelled),
			).
			Find(&existing).Error; err != nil {
			return err
		}

		if len(existing) > 0 {
			return httperr.ErrBusiness("slot_conflict")
		}

		if err := tx.Create(ap).Error; err != nil {
			// The partial unique index backstops the lock. Map its
			// violation to the same conflict the lock path reports.
			if httperr.IsUniqueViolation(err) {
				return httperr.ErrBusiness("slot_conflict")
			}
			return err
		}

		return nil
	})
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *BookingGormRepository) ListAppointments(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).Model(&models.Appointment{})

	if f.BarberID != 0 {
		q = q.Where("barber_id = ?", f.BarberID)
	}

	if !f.From.IsZero() {
		q = q.Where("start_time >= ? AND start_time < ?", f.From, f.To)
	}

	var apps []models.Appointment
	if err := q.Order("start_time DESC").Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// State change
// --------------------------------------------------

func (r *BookingGormRepository) GetAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, appointmentID).Error; err != nil {
		// Only a genuinely absent row becomes "not found"; everything
		// else (a storage outage included) propagates as-is.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
