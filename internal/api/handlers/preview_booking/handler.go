package preview_booking

import (
	"errors"
	"net/http"

	"github.com/svcmarket/booking-engine/internal/api/handlers"
	previewBooking "github.com/svcmarket/booking-engine/internal/usecase/preview_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgPriceCardNotFound  = "карточка услуги не найдена"
	msgPriceCardInactive  = "карточка услуги деактивирована"
)

// PreviewBookingRequest HTTP request model
type PreviewBookingRequest struct {
	PriceCardID string   `json:"priceCardId"`
	AddOns      []string `json:"addOns,omitempty"`
}

// AddOnResponse выбранная доп. услуга
type AddOnResponse struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// PreviewBookingResponse детализация стоимости
type PreviewBookingResponse struct {
	PriceCardID     string          `json:"priceCardId"`
	ProviderID      string          `json:"providerId"`
	Title           string          `json:"title"`
	DurationMinutes int             `json:"durationMinutes"`
	BasePrice       int64           `json:"basePrice"`
	AddOns          []AddOnResponse `json:"addOns"`
	Subtotal        int64           `json:"subtotal"`
	Tax             int64           `json:"tax"`
	Total           int64           `json:"total"`
	Currency        string          `json:"currency"`
}

type Handler struct {
	useCase PreviewBookingUseCase
	logger  Logger
}

func NewHandler(useCase PreviewBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/preview
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PreviewBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/preview - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &previewBooking.Request{
		PriceCardID: req.PriceCardID,
		AddOnNames:  req.AddOns,
	})
	if err != nil {
		switch {
		case errors.Is(err, previewBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/preview - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, previewBooking.ErrPriceCardNotFound):
			h.logger.Warn("POST /bookings/preview - Price card not found: card=%s", req.PriceCardID)
			handlers.RespondNotFound(w, msgPriceCardNotFound)

		case errors.Is(err, previewBooking.ErrPriceCardInactive):
			h.logger.Warn("POST /bookings/preview - Price card inactive: card=%s", req.PriceCardID)
			handlers.RespondError(w, http.StatusConflict, msgPriceCardInactive)

		default:
			h.logger.Error("POST /bookings/preview - Failed to preview: card=%s, error=%v", req.PriceCardID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	addOns := make([]AddOnResponse, len(result.AddOns))
	for i, a := range result.AddOns {
		addOns[i] = AddOnResponse{Name: a.Name, Price: a.Price}
	}

	handlers.RespondJSON(w, http.StatusOK, PreviewBookingResponse{
		PriceCardID:     result.PriceCardID,
		ProviderID:      result.ProviderID,
		Title:           result.Title,
		DurationMinutes: result.DurationMinutes,
		BasePrice:       result.BasePrice,
		AddOns:          addOns,
		Subtotal:        result.Subtotal,
		Tax:             result.Tax,
		Total:           result.Total,
		Currency:        result.Currency,
	})
}
