package booking

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/valentinobarber/site-api/internal/domain/booking"
	"github.com/valentinobarber/site-api/internal/httperr"
	"github.com/valentinobarber/site-api/internal/models"
)

// fakeRepo mimics the gorm repository's locking semantics with a mutex, so
// the concurrency property can be exercised without a database.
type fakeRepo struct {
	mu       sync.Mutex
	barbers  map[uint]bool
	appts    []models.Appointment
	nextID   uint
	failWith error
}

func newFakeRepo(barberIDs ...uint) *fakeRepo {
	r := &fakeRepo{barbers: map[uint]bool{}}
	for _, id := range barberIDs {
		r.barbers[id] = true
	}
	return r
}

func (r *fakeRepo) BarberExists(_ context.Context, barberID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return false, r.failWith
	}
	return r.barbers[barberID], nil
}

func (r *fakeRepo) ReserveSlot(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failWith != nil {
		return r.failWith
	}

	for _, ex := range r.appts {
		if ex.BarberID == ap.BarberID &&
			ex.StartTime.Equal(ap.StartTime) &&
			ex.Status != string(domain.StatusCancelled) {
			return httperr.ErrBusiness("slot_conflict")
		}
	}

	r.nextID++
	ap.ID = r.nextID
	r.appts = append(r.appts, *ap)
	return nil
}

func (r *fakeRepo) ListAppointments(_ context.Context, f domain.ListFilter) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failWith != nil {
		return nil, r.failWith
	}

	var out []models.Appointment
	for _, ap := range r.appts {
		if f.BarberID != 0 && ap.BarberID != f.BarberID {
			continue
		}
		if !f.From.IsZero() && (ap.StartTime.Before(f.From) || !ap.StartTime.Before(f.To)) {
			continue
		}
		out = append(out, ap)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.After(out[j].StartTime)
	})
	return out, nil
}

func (r *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failWith != nil {
		return nil, r.failWith
	}

	for i := range r.appts {
		if r.appts[i].ID == id {
			ap := r.appts[i]
			return &ap, nil
		}
	}
	return nil, httperr.ErrBusiness("appointment_not_found")
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.appts {
		if r.appts[i].ID == ap.ID {
			r.appts[i] = *ap
			return nil
		}
	}
	return httperr.ErrBusiness("appointment_not_found")
}

func (r *fakeRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.appts)
}

var _ domain.Repository = (*fakeRepo)(nil)

func slot(hour int) time.Time {
	return time.Date(2025, 6, 1, hour, 0, 0, 0, time.UTC)
}

func validInput() ReserveInput {
	return ReserveInput{
		BarberID:      1,
		ServiceID:     "2,3",
		CustomerName:  "Mehmet Kaya",
		CustomerPhone: "+90 532 123 4567",
		StartTime:     slot(10),
	}
}

func TestReserve_Success(t *testing.T) {
	repo := newFakeRepo(1)
	uc := NewReserve(repo, nil)

	ap, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	assert.NotZero(t, ap.ID)
	assert.Equal(t, string(domain.StatusScheduled), ap.Status)
	assert.Equal(t, "Mehmet Kaya", ap.CustomerName)
	assert.Equal(t, 1, repo.count())
}

func TestReserve_SameSlotConflicts(t *testing.T) {
	repo := newFakeRepo(1, 2)
	uc := NewReserve(repo, nil)

	_, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	// Same barber, exact same timestamp.
	_, err = uc.Execute(context.Background(), validInput())
	assert.True(t, httperr.IsBusiness(err, "slot_conflict"))
	assert.Equal(t, 1, repo.count())

	// Another barber at the same timestamp is fine.
	in := validInput()
	in.BarberID = 2
	_, err = uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.count())

	// Same barber at another timestamp is fine too.
	in = validInput()
	in.StartTime = slot(11)
	_, err = uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 3, repo.count())
}

func TestReserve_CancelledSlotCanBeRebooked(t *testing.T) {
	repo := newFakeRepo(1)
	repo.appts = append(repo.appts, models.Appointment{
		ID:        99,
		BarberID:  1,
		StartTime: slot(10),
		Status:    string(domain.StatusCancelled),
	})

	uc := NewReserve(repo, nil)

	_, err := uc.Execute(context.Background(), validInput())
	assert.NoError(t, err)
}

func TestReserve_Validation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*ReserveInput)
		wantCode string
	}{
		{"missing barber", func(in *ReserveInput) { in.BarberID = 0 }, "missing_barber"},
		{"missing service", func(in *ReserveInput) { in.ServiceID = " " }, "missing_service"},
		{"missing name", func(in *ReserveInput) { in.CustomerName = "" }, "missing_customer_name"},
		{"missing phone", func(in *ReserveInput) { in.CustomerPhone = "" }, "missing_customer_phone"},
		{"missing start time", func(in *ReserveInput) { in.StartTime = time.Time{} }, "missing_start_time"},
		{"bogus phone", func(in *ReserveInput) { in.CustomerPhone = "call me" }, "invalid_phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo(1)
			uc := NewReserve(repo, nil)

			in := validInput()
			tt.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			assert.True(t, httperr.IsBusiness(err, tt.wantCode), "got %v", err)
			assert.Zero(t, repo.count(), "validation failure must not store a row")
		})
	}
}

func TestReserve_UnknownBarber(t *testing.T) {
	repo := newFakeRepo(1)
	uc := NewReserve(repo, nil)

	in := validInput()
	in.BarberID = 42

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "barber_not_found"))
	assert.Zero(t, repo.count())
}

func TestReserve_ConcurrentSameSlot(t *testing.T) {
	repo := newFakeRepo(1)
	uc := NewReserve(repo, nil)

	const contenders = 2

	var wg sync.WaitGroup
	errs := make([]error, contenders)

	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), validInput())
		}(i)
	}
	wg.Wait()

	var successes, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case httperr.IsBusiness(err, "slot_conflict"):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)
	assert.Equal(t, 1, repo.count())
}
