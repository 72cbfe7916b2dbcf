package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{"pending to accepted", BookingStatusPending, BookingStatusAccepted, true},
		{"pending to declined", BookingStatusPending, BookingStatusDeclined, true},
		{"pending to cancelled", BookingStatusPending, BookingStatusCancelled, true},
		{"pending to in_progress skips accept", BookingStatusPending, BookingStatusInProgress, false},
		{"pending to completed", BookingStatusPending, BookingStatusCompleted, false},
		{"accepted to in_progress", BookingStatusAccepted, BookingStatusInProgress, true},
		{"accepted to cancelled", BookingStatusAccepted, BookingStatusCancelled, true},
		{"accepted to declined", BookingStatusAccepted, BookingStatusDeclined, false},
		{"in_progress to completed", BookingStatusInProgress, BookingStatusCompleted, true},
		{"in_progress to cancelled", BookingStatusInProgress, BookingStatusCancelled, false},
		{"declined is terminal", BookingStatusDeclined, BookingStatusAccepted, false},
		{"cancelled is terminal", BookingStatusCancelled, BookingStatusPending, false},
		{"completed is terminal", BookingStatusCompleted, BookingStatusInProgress, false},
		{"no self transition", BookingStatusPending, BookingStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, BookingStatusDeclined.IsTerminal())
	assert.True(t, BookingStatusCancelled.IsTerminal())
	assert.True(t, BookingStatusCompleted.IsTerminal())
	assert.False(t, BookingStatusPending.IsTerminal())
	assert.False(t, BookingStatusAccepted.IsTerminal())
	assert.False(t, BookingStatusInProgress.IsTerminal())
}

func TestParseBookingStatus(t *testing.T) {
	status, err := ParseBookingStatus("accepted")
	require.NoError(t, err)
	assert.Equal(t, BookingStatusAccepted, status)

	_, err = ParseBookingStatus("confirmed")
	require.Error(t, err)
}

func TestBookingOccupies(t *testing.T) {
	for _, status := range []BookingStatus{BookingStatusPending, BookingStatusAccepted, BookingStatusInProgress} {
		b := Booking{Status: status}
		assert.True(t, b.Occupies(), "status %s must occupy the slot", status)
	}
	for _, status := range []BookingStatus{BookingStatusDeclined, BookingStatusCancelled, BookingStatusCompleted} {
		b := Booking{Status: status}
		assert.False(t, b.Occupies(), "status %s must release the slot", status)
	}
}

func TestBookingCanBeCancelled(t *testing.T) {
	tests := []struct {
		status    BookingStatus
		cancelled bool
	}{
		{BookingStatusPending, true},
		{BookingStatusAccepted, true},
		{BookingStatusInProgress, false},
		{BookingStatusCompleted, false},
		{BookingStatusDeclined, false},
	}
	for _, tt := range tests {
		b := Booking{Status: tt.status}
		assert.Equal(t, tt.cancelled, b.CanBeCancelled(), "status %s", tt.status)
	}
}
