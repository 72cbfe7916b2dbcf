package models

import (
	"time"

	"github.com/svcmarket/booking-engine/internal/domain"
	"github.com/svcmarket/booking-engine/pkg/types"
)

// Request модели

// TimeRangeRequest интервал приёма в рамках одного дня
type TimeRangeRequest struct {
	Start string `json:"start"` // "09:00"
	End   string `json:"end"`   // "17:00"
}

// WeeklyRuleRequest интервалы для одного дня недели
type WeeklyRuleRequest struct {
	Day   int                `json:"day"` // 0 = воскресенье ... 6 = суббота
	Slots []TimeRangeRequest `json:"slots"`
}

// DateExceptionRequest переопределение расписания на конкретную дату
type DateExceptionRequest struct {
	Date  string             `json:"date"` // "2025-10-15"
	Slots []TimeRangeRequest `json:"slots"`
}

// ReplaceAvailabilityRequest полная замена расписания исполнителя
type ReplaceAvailabilityRequest struct {
	UserID     string                 `json:"-"`
	Weekly     []WeeklyRuleRequest    `json:"weekly"`
	Exceptions []DateExceptionRequest `json:"exceptions"`
}

// ToDomain конвертирует request в domain модель (без ProviderID)
func (r *ReplaceAvailabilityRequest) ToDomain() *domain.Availability {
	availability := &domain.Availability{
		Weekly:     make([]domain.WeeklyRule, len(r.Weekly)),
		Exceptions: make([]domain.DateException, len(r.Exceptions)),
	}
	for i, rule := range r.Weekly {
		availability.Weekly[i] = domain.WeeklyRule{
			Day:   rule.Day,
			Slots: toDomainSlots(rule.Slots),
		}
	}
	for i, exception := range r.Exceptions {
		availability.Exceptions[i] = domain.DateException{
			Date:  exception.Date,
			Slots: toDomainSlots(exception.Slots),
		}
	}
	return availability
}

func toDomainSlots(slots []TimeRangeRequest) []domain.TimeRange {
	result := make([]domain.TimeRange, len(slots))
	for i, slot := range slots {
		result[i] = domain.TimeRange{
			Start: types.TimeString(slot.Start),
			End:   types.TimeString(slot.End),
		}
	}
	return result
}

// Response модели

// TimeRangeResponse интервал приёма
type TimeRangeResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// WeeklyRuleResponse интервалы для одного дня недели
type WeeklyRuleResponse struct {
	Day   int                 `json:"day"`
	Slots []TimeRangeResponse `json:"slots"`
}

// DateExceptionResponse переопределение на дату
type DateExceptionResponse struct {
	Date  string              `json:"date"`
	Slots []TimeRangeResponse `json:"slots"`
}

// AvailabilityResponse расписание исполнителя
type AvailabilityResponse struct {
	ProviderID string                  `json:"providerId"`
	Weekly     []WeeklyRuleResponse    `json:"weekly"`
	Exceptions []DateExceptionResponse `json:"exceptions"`
	UpdatedAt  time.Time               `json:"updatedAt"`
}

// FromDomainAvailability конвертирует domain модель в DTO
func FromDomainAvailability(a *domain.Availability) *AvailabilityResponse {
	if a == nil {
		return nil
	}

	resp := &AvailabilityResponse{
		ProviderID: a.ProviderID,
		Weekly:     make([]WeeklyRuleResponse, len(a.Weekly)),
		Exceptions: make([]DateExceptionResponse, len(a.Exceptions)),
		UpdatedAt:  a.UpdatedAt,
	}
	for i, rule := range a.Weekly {
		resp.Weekly[i] = WeeklyRuleResponse{
			Day:   rule.Day,
			Slots: fromDomainSlots(rule.Slots),
		}
	}
	for i, exception := range a.Exceptions {
		resp.Exceptions[i] = DateExceptionResponse{
			Date:  exception.Date,
			Slots: fromDomainSlots(exception.Slots),
		}
	}
	return resp
}

// EmptyAvailability ответ для исполнителя без сохранённого расписания
func EmptyAvailability(providerID string) *AvailabilityResponse {
	return &AvailabilityResponse{
		ProviderID: providerID,
		Weekly:     []WeeklyRuleResponse{},
		Exceptions: []DateExceptionResponse{},
	}
}

func fromDomainSlots(slots []domain.TimeRange) []TimeRangeResponse {
	result := make([]TimeRangeResponse, len(slots))
	for i, slot := range slots {
		result[i] = TimeRangeResponse{
			Start: slot.Start.String(),
			End:   slot.End.String(),
		}
	}
	return result
}
