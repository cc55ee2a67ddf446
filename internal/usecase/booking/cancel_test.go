package booking

import (
	"context"
	"net"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/valentinobarber/site-api/internal/domain/booking"
	"github.com/valentinobarber/site-api/internal/httperr"
	"github.com/valentinobarber/site-api/internal/models"
)

func TestCancel_UnknownAppointment(t *testing.T) {
	repo := newFakeRepo(1)
	uc := NewCancel(repo, nil)

	_, err := uc.Execute(context.Background(), "admin", 42)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestCancel_StorageOutageIsNotNotFound(t *testing.T) {
	repo := newFakeRepo(1)
	repo.failWith = &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED}

	uc := NewCancel(repo, nil)

	_, err := uc.Execute(context.Background(), "admin", 1)
	require.Error(t, err)

	assert.False(t, httperr.IsBusiness(err, "appointment_not_found"),
		"an unreachable datastore must not read as a missing appointment")
	assert.True(t, httperr.IsStorageUnavailable(err))
}

func TestComplete_StorageOutageIsNotNotFound(t *testing.T) {
	repo := newFakeRepo(1)
	repo.failWith = &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED}

	uc := NewComplete(repo, nil)

	_, err := uc.Execute(context.Background(), "admin", 1)
	require.Error(t, err)

	assert.False(t, httperr.IsBusiness(err, "appointment_not_found"))
	assert.True(t, httperr.IsStorageUnavailable(err))
}

func TestCancelThenComplete_Rejected(t *testing.T) {
	repo := newFakeRepo(1)
	repo.appts = append(repo.appts, models.Appointment{
		ID:        1,
		BarberID:  1,
		StartTime: slot(10),
		Status:    string(domain.StatusScheduled),
	})

	cancelUC := NewCancel(repo, nil)
	completeUC := NewComplete(repo, nil)

	ap, err := cancelUC.Execute(context.Background(), "admin", 1)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), ap.Status)

	_, err = completeUC.Execute(context.Background(), "admin", 1)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}
