package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/svcmarket/booking-engine/internal/domain"
	bookingRepo "github.com/svcmarket/booking-engine/internal/infra/storage/booking"
	providerRepo "github.com/svcmarket/booking-engine/internal/infra/storage/provider"
	"github.com/svcmarket/booking-engine/internal/service/bookings/models"
)

// Service сервис жизненного цикла бронирований
type Service struct {
	bookingRepo  BookingRepository
	providerRepo ProviderRepository
	notifier     Notifier
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	providerRepo ProviderRepository,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		providerRepo: providerRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Доступно клиенту бронирования и исполнителю, которому оно адресовано
func (s *Service) GetByID(ctx context.Context, id string, userID string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s", id, userID)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkReadAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", userID, id)
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// GetMine получает бронирования пользователя: те, где он клиент,
// и те, которые адресованы его профилю исполнителя
func (s *Service) GetMine(ctx context.Context, req *models.GetMyBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetMine: fetching bookings for user=%s, status=%v", req.UserID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetMine: invalid status=%s for user=%s", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	asCustomer, err := s.bookingRepo.List(ctx, domain.BookingsFilter{
		CustomerID: &req.UserID,
		Status:     domainStatus,
	})
	if err != nil {
		s.logger.Error("GetMine: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetMine - repository error: %v", ErrInternal, err)
	}

	all := asCustomer

	provider, err := s.providerRepo.GetByUserID(ctx, req.UserID)
	switch {
	case err == nil:
		asProvider, listErr := s.bookingRepo.List(ctx, domain.BookingsFilter{
			ProviderID: &provider.ID,
			Status:     domainStatus,
		})
		if listErr != nil {
			s.logger.Error("GetMine: repository error for provider=%s: %v", provider.ID, listErr)
			return nil, fmt.Errorf("%w: GetMine - repository error: %v", ErrInternal, listErr)
		}
		all = append(all, asProvider...)
	case errors.Is(err, providerRepo.ErrProviderNotFound):
		// пользователь не исполнитель, показываем только клиентские брони
	default:
		s.logger.Error("GetMine: failed to resolve provider for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetMine - failed to resolve provider: %v", ErrInternal, err)
	}

	s.logger.Info("GetMine: successfully fetched %d bookings for user=%s", len(all), req.UserID)
	return models.FromDomainBookingList(all), nil
}

// Accept подтверждает бронирование
// Доступно только исполнителю, которому адресовано бронирование
func (s *Service) Accept(ctx context.Context, bookingID string, userID string) (*models.BookingResponse, error) {
	return s.transitionAsProvider(ctx, "Accept", bookingID, userID, domain.BookingStatusAccepted)
}

// Decline отклоняет бронирование
// Доступно только исполнителю, которому адресовано бронирование
func (s *Service) Decline(ctx context.Context, bookingID string, userID string) (*models.BookingResponse, error) {
	return s.transitionAsProvider(ctx, "Decline", bookingID, userID, domain.BookingStatusDeclined)
}

// Start отмечает начало работ по подтверждённому бронированию
// Доступно только исполнителю
func (s *Service) Start(ctx context.Context, bookingID string, userID string) (*models.BookingResponse, error) {
	return s.transitionAsProvider(ctx, "Start", bookingID, userID, domain.BookingStatusInProgress)
}

// Complete завершает начатое бронирование
// Доступно и клиенту, и исполнителю
func (s *Service) Complete(ctx context.Context, bookingID string, userID string) (*models.BookingResponse, error) {
	s.logger.Info("Complete: completing booking id=%s by user=%s", bookingID, userID)

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := s.checkReadAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("Complete: access denied for user=%s to booking id=%s", userID, bookingID)
		return nil, err
	}

	return s.applyTransition(ctx, "Complete", booking, domain.BookingStatusCompleted)
}

// Cancel отменяет бронирование
// Доступно только клиенту, пока работы не начаты
func (s *Service) Cancel(ctx context.Context, bookingID string, userID string) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s by user=%s", bookingID, userID)

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.CustomerID != userID {
		s.logger.Warn("Cancel: access denied for user=%s to cancel booking id=%s", userID, bookingID)
		return nil, ErrAccessDenied
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", bookingID, booking.Status)
		return nil, fmt.Errorf("%w: cannot cancel from %s", ErrInvalidTransition, booking.Status)
	}

	return s.applyTransition(ctx, "Cancel", booking, domain.BookingStatusCancelled)
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("getBooking: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("getBooking: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: getBooking - repository error: %v", ErrInternal, err)
	}
	return booking, nil
}

// transitionAsProvider выполняет переход статуса, доступный только исполнителю бронирования
func (s *Service) transitionAsProvider(
	ctx context.Context,
	op string,
	bookingID string,
	userID string,
	to domain.BookingStatus,
) (*models.BookingResponse, error) {
	s.logger.Info("%s: booking id=%s by user=%s", op, bookingID, userID)

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := s.checkProviderAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("%s: access denied for user=%s to booking id=%s", op, userID, bookingID)
		return nil, err
	}

	return s.applyTransition(ctx, op, booking, to)
}

// applyTransition проверяет допустимость перехода и выполняет его с защитой
// от устаревшего чтения: UPDATE срабатывает только если статус в БД
// всё ещё равен прочитанному
func (s *Service) applyTransition(
	ctx context.Context,
	op string,
	booking *domain.Booking,
	to domain.BookingStatus,
) (*models.BookingResponse, error) {
	from := booking.Status
	if !domain.CanTransition(from, to) {
		s.logger.Warn("%s: transition %s -> %s is not allowed for booking id=%s", op, from, to, booking.ID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, booking.ID, from, to); err != nil {
		if errors.Is(err, bookingRepo.ErrStatusGuard) {
			// статус поменялся между чтением и записью, перечитываем
			// чтобы отличить гонку от удаления
			if _, refetchErr := s.getBooking(ctx, booking.ID); refetchErr != nil {
				return nil, refetchErr
			}
			s.logger.Warn("%s: concurrent status change for booking id=%s", op, booking.ID)
			return nil, fmt.Errorf("%w: booking status changed concurrently", ErrInvalidTransition)
		}
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, booking.ID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	booking.Status = to
	s.logger.Info("%s: booking id=%s moved %s -> %s", op, booking.ID, from, to)
	s.notifier.BookingStatusChanged(ctx, booking, from)

	return models.FromDomainBooking(booking), nil
}

// checkReadAccess проверяет, что пользователь - клиент бронирования
// или исполнитель, которому оно адресовано
func (s *Service) checkReadAccess(ctx context.Context, booking *domain.Booking, userID string) error {
	if booking.CustomerID == userID {
		return nil
	}
	return s.checkProviderAccess(ctx, booking, userID)
}

// checkProviderAccess проверяет, что пользователь - исполнитель бронирования
func (s *Service) checkProviderAccess(ctx context.Context, booking *domain.Booking, userID string) error {
	provider, err := s.providerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			return ErrAccessDenied
		}
		s.logger.Error("checkProviderAccess: failed to resolve provider for user=%s: %v", userID, err)
		return fmt.Errorf("%w: checkProviderAccess - failed to resolve provider: %v", ErrInternal, err)
	}
	if provider.ID != booking.ProviderID {
		return ErrAccessDenied
	}
	return nil
}
