package create_booking

import (
	"errors"
	"net/http"

	"github.com/svcmarket/booking-engine/internal/api/handlers"
	"github.com/svcmarket/booking-engine/internal/api/middleware"
	createBooking "github.com/svcmarket/booking-engine/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgPriceCardNotFound  = "карточка услуги не найдена"
	msgPriceCardInactive  = "карточка услуги деактивирована"
	msgAddressNotFound    = "адрес не найден"
	msgInvalidSlot        = "запрошенное время недоступно в расписании исполнителя"
	msgSlotConflict       = "выбранный временной слот уже занят"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		handlers.RespondUnauthorized(w, "требуется аутентификация")
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user=%s: %v", userID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrPriceCardNotFound):
			h.logger.Warn("POST /bookings - Price card not found: user=%s, card=%s", userID, req.PriceCardID)
			handlers.RespondNotFound(w, msgPriceCardNotFound)

		case errors.Is(err, createBooking.ErrPriceCardInactive):
			h.logger.Warn("POST /bookings - Price card inactive: user=%s, card=%s", userID, req.PriceCardID)
			handlers.RespondError(w, http.StatusConflict, msgPriceCardInactive)

		case errors.Is(err, createBooking.ErrAddressNotFound):
			h.logger.Warn("POST /bookings - Address not found: user=%s, address=%s", userID, req.AddressID)
			handlers.RespondNotFound(w, msgAddressNotFound)

		case errors.Is(err, createBooking.ErrInvalidSlot):
			h.logger.Warn("POST /bookings - Invalid slot: user=%s, card=%s, date=%s %s",
				userID, req.PriceCardID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgInvalidSlot)

		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: user=%s, card=%s, date=%s %s",
				userID, req.PriceCardID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: id=%s, ref=%s, user=%s", result.ID, result.BookingRef, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
