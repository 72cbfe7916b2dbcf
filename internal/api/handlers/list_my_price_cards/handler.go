package list_my_price_cards

import (
	"errors"
	"net/http"

	"github.com/svcmarket/booking-engine/internal/api/handlers"
	"github.com/svcmarket/booking-engine/internal/api/middleware"
	"github.com/svcmarket/booking-engine/internal/service/pricecards"
)

const msgAccessDenied = "доступно только исполнителям"

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

// Handle GET /api/v1/price-cards/mine
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		handlers.RespondUnauthorized(w, "требуется аутентификация")
		return
	}

	result, err := h.service.ListMine(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, pricecards.ErrAccessDenied):
			h.logger.Warn("GET /price-cards/mine - Access denied for user=%s", userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /price-cards/mine - Failed: user=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
