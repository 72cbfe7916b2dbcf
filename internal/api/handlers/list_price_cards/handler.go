package list_price_cards

import (
	"net/http"

	"github.com/svcmarket/booking-engine/internal/api/handlers"
	"github.com/svcmarket/booking-engine/internal/service/pricecards/models"
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

// Handle GET /api/v1/price-cards?category=&city=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListPriceCardsRequest{}
	if category := r.URL.Query().Get("category"); category != "" {
		req.Category = &category
	}
	if city := r.URL.Query().Get("city"); city != "" {
		req.City = &city
	}

	result, err := h.service.ListPublic(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /price-cards - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
