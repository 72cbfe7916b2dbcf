package get_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/svcmarket/booking-engine/internal/api/handlers"
	"github.com/svcmarket/booking-engine/internal/service/availability"
)

const msgProviderNotFound = "исполнитель не найден"

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID := mux.Vars(r)["providerId"]

	result, err := h.service.GetPublic(r.Context(), providerID)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrProviderNotFound):
			h.logger.Warn("GET /providers/%s/availability - Provider not found", providerID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		default:
			h.logger.Error("GET /providers/%s/availability - Failed: %v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
