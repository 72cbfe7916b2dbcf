package delete_price_card

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/svcmarket/booking-engine/internal/api/handlers"
	"github.com/svcmarket/booking-engine/internal/api/middleware"
	"github.com/svcmarket/booking-engine/internal/service/pricecards"
)

const (
	msgPriceCardNotFound = "карточка услуги не найдена"
	msgAccessDenied      = "удалить карточку может только её владелец"
	msgPriceCardInUse    = "на карточку ссылаются бронирования, вместо удаления деактивируйте её"
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

// Handle DELETE /api/v1/price-cards/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		handlers.RespondUnauthorized(w, "требуется аутентификация")
		return
	}
	cardID := mux.Vars(r)["id"]

	if err := h.service.Delete(r.Context(), cardID, userID); err != nil {
		switch {
		case errors.Is(err, pricecards.ErrPriceCardNotFound):
			h.logger.Warn("DELETE /price-cards/%s - Not found", cardID)
			handlers.RespondNotFound(w, msgPriceCardNotFound)

		case errors.Is(err, pricecards.ErrAccessDenied):
			h.logger.Warn("DELETE /price-cards/%s - Access denied for user=%s", cardID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, pricecards.ErrPriceCardInUse):
			h.logger.Warn("DELETE /price-cards/%s - Card is referenced by bookings", cardID)
			handlers.RespondError(w, http.StatusConflict, msgPriceCardInUse)

		default:
			h.logger.Error("DELETE /price-cards/%s - Failed: user=%s, error=%v", cardID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /price-cards/%s - Deleted by user=%s", cardID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
