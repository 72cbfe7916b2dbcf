package get_available_slots

import (
	"time"

	"github.com/svcmarket/booking-engine/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ProviderID  string    // ID провайдера
	PriceCardID string    // ID карточки — источник длительности услуги
	Date        time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных стартов
type Response struct {
	ProviderID      string
	PriceCardID     string
	Date            time.Time
	DurationMinutes int                // Длительность услуги из карточки
	Slots           []types.TimeString // Валидные старты в хронологическом порядке
	HasOpenHours    bool               // Есть ли на дату открытые интервалы (для календаря)
}
