package get_available_slots

import (
	"time"

	"github.com/svcmarket/booking-engine/internal/domain"
	"github.com/svcmarket/booking-engine/pkg/types"
)

// GenerateSlots вычисляет валидные старты услуги длительностью
// durationMinutes на указанную дату
//
// Для каждого открытого интервала [start, end) дня кандидаты идут от
// start с фиксированным шагом domain.SlotStepMinutes. Кандидат валиден,
// только если он целиком помещается в свой интервал:
// candidate + duration <= end. Невалидные кандидаты отбрасываются,
// не обрезаются.
//
// Кандидаты конкатенируются по интервалам в порядке следования, без
// дедупликации и слияния: кандидат, пересекающий границу двух смежных
// интервалов, невалиден — учитывается только вхождение в один интервал.
//
// Вырожденные интервалы (end <= start) и длительность больше любого
// интервала дают пустой результат: это нормальный исход "нет
// доступности", а не ошибка.
func GenerateSlots(availability *domain.Availability, date time.Time, durationMinutes int) []types.TimeString {
	candidates := make([]types.TimeString, 0)
	if availability == nil {
		return candidates
	}

	for _, interval := range availability.SlotsForDate(date) {
		start, err := interval.Start.Minutes()
		if err != nil {
			continue
		}
		end, err := interval.End.Minutes()
		if err != nil {
			continue
		}

		for current := start; current+durationMinutes <= end; current += domain.SlotStepMinutes {
			candidate, err := types.NewTimeStringFromMinutes(current)
			if err != nil {
				break
			}
			candidates = append(candidates, candidate)
		}
	}

	return candidates
}

// ContainsSlot возвращает true, если startTime — один из валидных
// стартов. Используется при создании бронирования для перепроверки
// запрошенного времени против актуального расписания.
func ContainsSlot(availability *domain.Availability, date time.Time, durationMinutes int, startTime types.TimeString) bool {
	for _, slot := range GenerateSlots(availability, date, durationMinutes) {
		if slot == startTime {
			return true
		}
	}
	return false
}
