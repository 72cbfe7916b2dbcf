package domain

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/svcmarket/booking-engine/pkg/types"
)

// ErrInvalidSchedule возвращается при нарушении инвариантов расписания
var ErrInvalidSchedule = errors.New("invalid schedule")

// TimeRange полуинтервал [Start, End) внутри одного дня
type TimeRange struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

// WeeklyRule открытые интервалы для одного дня недели (0 = воскресенье)
type WeeklyRule struct {
	Day   int         `json:"day"`
	Slots []TimeRange `json:"slots"`
}

// DateException переопределение недельного шаблона для конкретной даты
// Пустой список Slots означает "закрыто в этот день"
type DateException struct {
	Date  string      `json:"date"` // YYYY-MM-DD
	Slots []TimeRange `json:"slots"`
}

// Availability represents a provider's recurring weekly open hours
// plus date-specific exceptions. Owned by exactly one provider and
// replaced wholesale, never patched incrementally.
type Availability struct {
	ID         string
	ProviderID string
	Weekly     []WeeklyRule
	Exceptions []DateException
	UpdatedAt  time.Time
}

// SlotsForDate возвращает список открытых интервалов на календарную дату
// Exception для точной даты полностью заменяет недельный шаблон,
// в том числе пустым списком (закрытие)
func (a *Availability) SlotsForDate(date time.Time) []TimeRange {
	dateKey := date.Format(DateFormat)
	for _, exc := range a.Exceptions {
		if exc.Date == dateKey {
			return exc.Slots
		}
	}

	day := int(date.Weekday())
	for _, rule := range a.Weekly {
		if rule.Day == day {
			return rule.Slots
		}
	}
	return nil
}

// HasOpenHours returns true if the date's slot list is non-empty.
// Display-only approximation: a non-empty list does not guarantee a
// duration-feasible candidate exists.
func (a *Availability) HasOpenHours(date time.Time) bool {
	return len(a.SlotsForDate(date)) > 0
}

// Validate проверяет инварианты расписания:
// день недели встречается не более одного раза, дата exception
// корректна и уникальна, в каждом интервале start < end,
// интервалы одного дня не пересекаются
func (a *Availability) Validate() error {
	seenDays := make(map[int]bool)
	for _, rule := range a.Weekly {
		if rule.Day < 0 || rule.Day > 6 {
			return fmt.Errorf("%w: day %d is out of range 0-6", ErrInvalidSchedule, rule.Day)
		}
		if seenDays[rule.Day] {
			return fmt.Errorf("%w: day %d appears more than once", ErrInvalidSchedule, rule.Day)
		}
		seenDays[rule.Day] = true

		if err := validateDaySlots(rule.Slots); err != nil {
			return fmt.Errorf("%w: day %d: %v", ErrInvalidSchedule, rule.Day, err)
		}
	}

	seenDates := make(map[string]bool)
	for _, exc := range a.Exceptions {
		if _, err := time.Parse(DateFormat, exc.Date); err != nil {
			return fmt.Errorf("%w: exception date %q is not YYYY-MM-DD", ErrInvalidSchedule, exc.Date)
		}
		if seenDates[exc.Date] {
			return fmt.Errorf("%w: exception date %s appears more than once", ErrInvalidSchedule, exc.Date)
		}
		seenDates[exc.Date] = true

		if err := validateDaySlots(exc.Slots); err != nil {
			return fmt.Errorf("%w: exception %s: %v", ErrInvalidSchedule, exc.Date, err)
		}
	}

	return nil
}

func validateDaySlots(slots []TimeRange) error {
	type interval struct {
		start, end int
	}

	intervals := make([]interval, 0, len(slots))
	for _, s := range slots {
		start, err := s.Start.Minutes()
		if err != nil {
			return fmt.Errorf("bad start time %q", s.Start)
		}
		end, err := s.End.Minutes()
		if err != nil {
			return fmt.Errorf("bad end time %q", s.End)
		}
		if end <= start {
			return fmt.Errorf("interval %s-%s has end <= start", s.Start, s.End)
		}
		intervals = append(intervals, interval{start: start, end: end})
	}

	sort.Slice(intervals, func(i, j int) bool { return intervals[i].start < intervals[j].start })
	for i := 1; i < len(intervals); i++ {
		if intervals[i].start < intervals[i-1].end {
			return fmt.Errorf("intervals overlap")
		}
	}

	return nil
}
