package update_price_card

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/svcmarket/booking-engine/internal/api/handlers"
	"github.com/svcmarket/booking-engine/internal/api/middleware"
	"github.com/svcmarket/booking-engine/internal/service/pricecards"
	"github.com/svcmarket/booking-engine/internal/service/pricecards/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgPriceCardNotFound  = "карточка услуги не найдена"
	msgAccessDenied       = "редактировать карточку может только её владелец"
)

type Handler struct {
	service PriceCardsService
	logger  Logger
}

func NewHandler(service PriceCardsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/price-cards/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		handlers.RespondUnauthorized(w, "требуется аутентификация")
		return
	}
	cardID := mux.Vars(r)["id"]

	var req models.UpdatePriceCardRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /price-cards/%s - Invalid request body: %v", cardID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	result, err := h.service.Update(r.Context(), cardID, &req)
	if err != nil {
		switch {
		case errors.Is(err, pricecards.ErrInvalidInput):
			h.logger.Warn("PUT /price-cards/%s - Invalid input: %v", cardID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, pricecards.ErrPriceCardNotFound):
			h.logger.Warn("PUT /price-cards/%s - Not found", cardID)
			handlers.RespondNotFound(w, msgPriceCardNotFound)

		case errors.Is(err, pricecards.ErrAccessDenied):
			h.logger.Warn("PUT /price-cards/%s - Access denied for user=%s", cardID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("PUT /price-cards/%s - Failed: user=%s, error=%v", cardID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /price-cards/%s - Updated by user=%s", cardID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
