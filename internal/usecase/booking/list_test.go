package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valentinobarber/site-api/internal/models"
	"github.com/valentinobarber/site-api/internal/timezone"
)

const testTZ = "Europe/Istanbul"

func seedListRepo(t *testing.T) *fakeRepo {
	t.Helper()

	loc := timezone.Location(testTZ)
	at := func(day, hour, min, sec int) time.Time {
		return time.Date(2025, 6, day, hour, min, sec, 0, loc)
	}

	repo := newFakeRepo(1, 2)
	repo.appts = []models.Appointment{
		{ID: 1, BarberID: 1, StartTime: at(1, 9, 0, 0), Status: "Scheduled"},
		{ID: 2, BarberID: 1, StartTime: at(1, 23, 59, 59), Status: "Scheduled"},
		{ID: 3, BarberID: 2, StartTime: at(1, 12, 0, 0), Status: "Scheduled"},
		{ID: 4, BarberID: 1, StartTime: at(2, 0, 0, 0), Status: "Scheduled"},
	}
	return repo
}

func TestList_NoFilters_DescendingOrder(t *testing.T) {
	repo := seedListRepo(t)
	uc := NewList(repo, testTZ)

	apps, err := uc.Execute(context.Background(), 0, nil)
	require.NoError(t, err)
	require.Len(t, apps, 4)

	for i := 1; i < len(apps); i++ {
		assert.False(t, apps[i-1].StartTime.Before(apps[i].StartTime),
			"appointments must be ordered by start time descending")
	}
}

func TestList_BarberAndDayWindow(t *testing.T) {
	repo := seedListRepo(t)
	uc := NewList(repo, testTZ)

	day := time.Date(2025, 6, 1, 0, 0, 0, 0, timezone.Location(testTZ))

	apps, err := uc.Execute(context.Background(), 1, &day)
	require.NoError(t, err)

	// 23:59:59 on the day is in; midnight of the next day is out, and so
	// is barber 2.
	require.Len(t, apps, 2)
	assert.Equal(t, uint(2), apps[0].ID)
	assert.Equal(t, uint(1), apps[1].ID)
}

func TestList_DayOnly(t *testing.T) {
	repo := seedListRepo(t)
	uc := NewList(repo, testTZ)

	day := time.Date(2025, 6, 1, 0, 0, 0, 0, timezone.Location(testTZ))

	apps, err := uc.Execute(context.Background(), 0, &day)
	require.NoError(t, err)
	assert.Len(t, apps, 3)
}

func TestList_EmptyIsNotAnError(t *testing.T) {
	repo := newFakeRepo(1)
	uc := NewList(repo, testTZ)

	apps, err := uc.Execute(context.Background(), 0, nil)
	require.NoError(t, err)
	assert.Empty(t, apps)
}

