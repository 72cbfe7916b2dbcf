package replace_availability

import (
	"errors"
	"net/http"

	"github.com/svcmarket/booking-engine/internal/api/handlers"
	"github.com/svcmarket/booking-engine/internal/api/middleware"
	"github.com/svcmarket/booking-engine/internal/service/availability"
	"github.com/svcmarket/booking-engine/internal/service/availability/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSchedule    = "некорректное расписание"
	msgAccessDenied       = "управлять расписанием может только исполнитель"
)

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

// Handle PUT /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		handlers.RespondUnauthorized(w, "требуется аутентификация")
		return
	}

	var req models.ReplaceAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	result, err := h.service.Replace(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidSchedule):
			h.logger.Warn("PUT /availability - Invalid schedule: user=%s: %v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		case errors.Is(err, availability.ErrAccessDenied):
			h.logger.Warn("PUT /availability - Access denied for user=%s", userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("PUT /availability - Failed: user=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /availability - Replaced for user=%s", userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
