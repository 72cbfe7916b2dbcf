package get_price_card

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/svcmarket/booking-engine/internal/api/handlers"
	"github.com/svcmarket/booking-engine/internal/api/middleware"
	"github.com/svcmarket/booking-engine/internal/service/pricecards"
)

const msgPriceCardNotFound = "карточка услуги не найдена"

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

// Handle GET /api/v1/price-cards/{id}
// Публичный роут: userID может отсутствовать, тогда неактивные карточки скрыты
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cardID := mux.Vars(r)["id"]
	userID, _ := middleware.UserID(r)
	if userID == "" {
		userID = r.Header.Get(middleware.UserIDHeader)
	}

	result, err := h.service.GetByID(r.Context(), cardID, userID)
	if err != nil {
		switch {
		case errors.Is(err, pricecards.ErrPriceCardNotFound):
			h.logger.Warn("GET /price-cards/%s - Not found", cardID)
			handlers.RespondNotFound(w, msgPriceCardNotFound)

		default:
			h.logger.Error("GET /price-cards/%s - Failed: %v", cardID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
