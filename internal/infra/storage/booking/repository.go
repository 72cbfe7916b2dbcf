package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/svcmarket/booking-engine/internal/domain"
	"github.com/svcmarket/booking-engine/pkg/dbmetrics"
	"github.com/svcmarket/booking-engine/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникальности
const uniqueViolation = "23505"

// Имена ограничений из миграций, по которым различаются конфликты
const (
	refConstraint  = "bookings_booking_ref_key"
	slotConstraint = "bookings_provider_slot_occupied_idx"
)

var bookingColumns = []string{
	"id",
	"booking_ref",
	"customer_id",
	"provider_id",
	"price_card_id",
	"address_id",
	"scheduled_at",
	"duration_minutes",
	"add_ons",
	"subtotal",
	"tax",
	"total",
	"currency",
	"status",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create вставляет новое бронирование
// Если в контексте передана активная транзакция, использует её —
// создание бронирования с проверкой занятости слота обязано
// выполняться внутри сериализуемой транзакции
//
// Конфликты уникальности транслируются в доменные ошибки:
// коллизия booking_ref -> ErrRefConflict (вызывающая сторона повторяет
// с новым кодом), занятый слот -> ErrSlotTaken
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}

	addOns, err := json.Marshal(booking.AddOns)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal add-ons: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"booking_ref",
			"customer_id",
			"provider_id",
			"price_card_id",
			"address_id",
			"scheduled_at",
			"duration_minutes",
			"add_ons",
			"subtotal",
			"tax",
			"total",
			"currency",
			"status",
			"notes",
		).
		Values(
			booking.ID,
			booking.BookingRef,
			booking.CustomerID,
			booking.ProviderID,
			booking.PriceCardID,
			booking.AddressID,
			booking.ScheduledAt,
			booking.DurationMinutes,
			addOns,
			booking.Subtotal,
			booking.Tax,
			booking.Total,
			booking.Currency,
			booking.Status,
			booking.Notes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			switch pqErr.Constraint {
			case refConstraint:
				return nil, ErrRefConflict
			case slotConstraint:
				return nil, ErrSlotTaken
			}
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List получает бронирования по фильтру
// Если в контексте активна транзакция и задан фильтр по дате,
// добавляет FOR UPDATE: выборка занятости в сериализуемой транзакции
// блокирует конкурирующее создание на ту же дату
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).From("bookings")

	if filter.CustomerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.ProviderID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"provider_id": *filter.ProviderID})
	}
	if filter.Date != nil {
		d := *filter.Date
		dayStart := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
		selectBuilder = selectBuilder.
			Where(squirrel.GtOrEq{"scheduled_at": dayStart}).
			Where(squirrel.Lt{"scheduled_at": dayStart.AddDate(0, 0, 1)})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.OnlyOccupying {
		occupying := make([]string, len(domain.OccupyingStatuses))
		for i, s := range domain.OccupyingStatuses {
			occupying[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": occupying})
	}

	if filter.Date != nil {
		selectBuilder = selectBuilder.OrderBy("scheduled_at ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("scheduled_at DESC")
	}

	if dbmetrics.IsInTransaction(ctx) && filter.Date != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateStatus переводит бронирование из from в to
// Precondition перепроверяется на уровне SQL (WHERE status = from):
// даже если вызывающая сторона уже проверила статус, чтение могло
// устареть. Ноль затронутых строк -> ErrStatusGuard
func (r *Repository) UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStatusGuard
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var addOns []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.BookingRef,
		&booking.CustomerID,
		&booking.ProviderID,
		&booking.PriceCardID,
		&booking.AddressID,
		&booking.ScheduledAt,
		&booking.DurationMinutes,
		&addOns,
		&booking.Subtotal,
		&booking.Tax,
		&booking.Total,
		&booking.Currency,
		&booking.Status,
		&booking.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(addOns, &booking.AddOns); err != nil {
		return nil, fmt.Errorf("unmarshal add-ons: %w", err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
