package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svcmarket/booking-engine/pkg/types"
)

func rng(start, end string) TimeRange {
	return TimeRange{Start: types.TimeString(start), End: types.TimeString(end)}
}

func TestAvailabilityValidate(t *testing.T) {
	tests := []struct {
		name    string
		a       Availability
		wantErr bool
	}{
		{
			name: "valid weekly schedule",
			a: Availability{Weekly: []WeeklyRule{
				{Day: 1, Slots: []TimeRange{rng("09:00", "12:00"), rng("13:00", "17:00")}},
				{Day: 2, Slots: []TimeRange{rng("10:00", "16:00")}},
			}},
		},
		{
			name:    "day out of range",
			a:       Availability{Weekly: []WeeklyRule{{Day: 7, Slots: []TimeRange{rng("09:00", "12:00")}}}},
			wantErr: true,
		},
		{
			name: "duplicate day",
			a: Availability{Weekly: []WeeklyRule{
				{Day: 1, Slots: []TimeRange{rng("09:00", "12:00")}},
				{Day: 1, Slots: []TimeRange{rng("13:00", "17:00")}},
			}},
			wantErr: true,
		},
		{
			name:    "inverted interval",
			a:       Availability{Weekly: []WeeklyRule{{Day: 1, Slots: []TimeRange{rng("12:00", "09:00")}}}},
			wantErr: true,
		},
		{
			name:    "empty interval",
			a:       Availability{Weekly: []WeeklyRule{{Day: 1, Slots: []TimeRange{rng("09:00", "09:00")}}}},
			wantErr: true,
		},
		{
			name: "overlapping intervals",
			a: Availability{Weekly: []WeeklyRule{
				{Day: 1, Slots: []TimeRange{rng("09:00", "12:00"), rng("11:00", "14:00")}},
			}},
			wantErr: true,
		},
		{
			name: "abutting intervals are fine",
			a: Availability{Weekly: []WeeklyRule{
				{Day: 1, Slots: []TimeRange{rng("09:00", "12:00"), rng("12:00", "14:00")}},
			}},
		},
		{
			name:    "bad exception date",
			a:       Availability{Exceptions: []DateException{{Date: "15-10-2025", Slots: nil}}},
			wantErr: true,
		},
		{
			name: "duplicate exception date",
			a: Availability{Exceptions: []DateException{
				{Date: "2025-10-15"},
				{Date: "2025-10-15"},
			}},
			wantErr: true,
		},
		{
			name: "closed-day exception is valid",
			a:    Availability{Exceptions: []DateException{{Date: "2025-10-15", Slots: []TimeRange{}}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.a.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidSchedule)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSlotsForDate(t *testing.T) {
	a := Availability{
		Weekly: []WeeklyRule{
			{Day: 2, Slots: []TimeRange{rng("09:00", "12:00")}}, // вторник
		},
		Exceptions: []DateException{
			{Date: "2025-10-14", Slots: []TimeRange{rng("14:00", "16:00")}}, // тоже вторник
			{Date: "2025-10-21", Slots: []TimeRange{}},                     // закрытый день
		},
	}

	tuesday := time.Date(2025, 10, 7, 0, 0, 0, 0, time.UTC)
	slots := a.SlotsForDate(tuesday)
	require.Len(t, slots, 1)
	assert.Equal(t, rng("09:00", "12:00"), slots[0])

	// исключение полностью замещает недельное правило
	overridden := a.SlotsForDate(time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC))
	require.Len(t, overridden, 1)
	assert.Equal(t, rng("14:00", "16:00"), overridden[0])

	// пустое исключение = закрыто, недельное правило не применяется
	closed := a.SlotsForDate(time.Date(2025, 10, 21, 0, 0, 0, 0, time.UTC))
	assert.Empty(t, closed)

	// день без правила
	monday := a.SlotsForDate(time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC))
	assert.Empty(t, monday)
}

func TestHasOpenHours(t *testing.T) {
	a := Availability{
		Weekly: []WeeklyRule{{Day: 2, Slots: []TimeRange{rng("09:00", "12:00")}}},
		Exceptions: []DateException{
			{Date: "2025-10-21", Slots: []TimeRange{}},
		},
	}

	assert.True(t, a.HasOpenHours(time.Date(2025, 10, 7, 0, 0, 0, 0, time.UTC)))
	assert.False(t, a.HasOpenHours(time.Date(2025, 10, 21, 0, 0, 0, 0, time.UTC)))
	assert.False(t, a.HasOpenHours(time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC)))
}
