package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valentinobarber/site-api/internal/timezone"
)

func TestShopDay(t *testing.T) {
	loc := timezone.Location("Europe/Istanbul")

	got, ok := shopDay("2025-06-01", "Europe/Istanbul")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, loc), got)

	// Istanbul midnight is 21:00 UTC the previous day, not UTC midnight.
	assert.Equal(t, time.Date(2025, 5, 31, 21, 0, 0, 0, time.UTC), got.UTC())

	_, ok = shopDay("", "Europe/Istanbul")
	assert.False(t, ok)

	_, ok = shopDay("not-a-date", "Europe/Istanbul")
	assert.False(t, ok)
}
