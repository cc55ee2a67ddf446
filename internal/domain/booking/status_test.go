package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/valentinobarber/site-api/internal/httperr"
	"github.com/valentinobarber/site-api/internal/models"
)

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		check   func(Status) error
		current Status
		wantOK  bool
	}{
		{"cancel scheduled", CanCancel, StatusScheduled, true},
		{"cancel completed", CanCancel, StatusCompleted, false},
		{"cancel cancelled", CanCancel, StatusCancelled, false},
		{"complete scheduled", CanComplete, StatusScheduled, true},
		{"complete completed", CanComplete, StatusCompleted, false},
		{"complete cancelled", CanComplete, StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.check(tt.current)
			if tt.wantOK {
				assert.NoError(t, err)
			} else {
				assert.True(t, httperr.IsBusiness(err, "invalid_state"))
			}
		})
	}
}

func TestCancelAction(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusScheduled)}

	assert.NoError(t, Cancel(ap))
	assert.Equal(t, string(StatusCancelled), ap.Status)

	// A cancelled appointment stays cancelled.
	assert.Error(t, Cancel(ap))
	assert.Error(t, Complete(ap))
}

func TestCompleteAction(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusScheduled)}

	assert.NoError(t, Complete(ap))
	assert.Equal(t, string(StatusCompleted), ap.Status)

	assert.Error(t, Cancel(ap))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusScheduled, InitialStatus())
}
