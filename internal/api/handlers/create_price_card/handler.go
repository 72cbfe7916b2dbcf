package create_price_card

import (
	"errors"
	"net/http"

	"github.com/svcmarket/booking-engine/internal/api/handlers"
	"github.com/svcmarket/booking-engine/internal/api/middleware"
	"github.com/svcmarket/booking-engine/internal/service/pricecards"
	"github.com/svcmarket/booking-engine/internal/service/pricecards/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgAccessDenied       = "создавать карточки может только исполнитель"
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

// Handle POST /api/v1/price-cards
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		handlers.RespondUnauthorized(w, "требуется аутентификация")
		return
	}

	var req models.CreatePriceCardRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /price-cards - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, pricecards.ErrInvalidInput):
			h.logger.Warn("POST /price-cards - Invalid input: user=%s: %v", userID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, pricecards.ErrAccessDenied):
			h.logger.Warn("POST /price-cards - Access denied for user=%s", userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("POST /price-cards - Failed: user=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /price-cards - Created id=%s for user=%s", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
