package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/svcmarket/booking-engine/internal/api/handlers"
	"github.com/svcmarket/booking-engine/internal/domain"
	getAvailableSlots "github.com/svcmarket/booking-engine/internal/usecase/get_available_slots"
)

const (
	msgMissingPriceCardID = "параметр priceCardId обязателен"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgPriceCardNotFound  = "карточка услуги не найдена"
	msgPriceCardInactive  = "карточка услуги деактивирована"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	ProviderID      string   `json:"providerId"`
	PriceCardID     string   `json:"priceCardId"`
	Date            string   `json:"date"`
	DurationMinutes int      `json:"durationMinutes"`
	Slots           []string `json:"slots"`
	HasOpenHours    bool     `json:"hasOpenHours"`
}

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/slots?priceCardId=&date=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID := mux.Vars(r)["providerId"]

	priceCardID := r.URL.Query().Get("priceCardId")
	if priceCardID == "" {
		handlers.RespondBadRequest(w, msgMissingPriceCardID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /providers/%s/slots - Invalid date: %v", providerID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		ProviderID:  providerID,
		PriceCardID: priceCardID,
		Date:        date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /providers/%s/slots - Invalid input: %v", providerID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getAvailableSlots.ErrPriceCardNotFound):
			h.logger.Warn("GET /providers/%s/slots - Price card not found: card=%s", providerID, priceCardID)
			handlers.RespondNotFound(w, msgPriceCardNotFound)

		case errors.Is(err, getAvailableSlots.ErrPriceCardInactive):
			h.logger.Warn("GET /providers/%s/slots - Price card inactive: card=%s", providerID, priceCardID)
			handlers.RespondError(w, http.StatusConflict, msgPriceCardInactive)

		default:
			h.logger.Error("GET /providers/%s/slots - Failed: card=%s, error=%v", providerID, priceCardID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	slots := make([]string, len(result.Slots))
	for i, slot := range result.Slots {
		slots[i] = slot.String()
	}

	handlers.RespondJSON(w, http.StatusOK, SlotsResponse{
		ProviderID:      result.ProviderID,
		PriceCardID:     result.PriceCardID,
		Date:            result.Date.Format(domain.DateFormat),
		DurationMinutes: result.DurationMinutes,
		Slots:           slots,
		HasOpenHours:    result.HasOpenHours,
	})
}
