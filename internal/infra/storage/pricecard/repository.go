package pricecard

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/svcmarket/booking-engine/internal/domain"
	"github.com/svcmarket/booking-engine/pkg/dbmetrics"
	"github.com/svcmarket/booking-engine/pkg/psqlbuilder"
)

// foreignKeyViolation код ошибки PostgreSQL для нарушения внешнего ключа
const foreignKeyViolation = "23503"

var priceCardColumns = []string{
	"id",
	"provider_id",
	"title",
	"category",
	"city",
	"description",
	"base_price",
	"add_ons",
	"duration_minutes",
	"is_active",
	"created_at",
}

// Repository репозиторий для работы с карточками каталога
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория карточек
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую карточку каталога
func (r *Repository) Create(ctx context.Context, card *domain.PriceCard) (*domain.PriceCard, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if card.ID == "" {
		card.ID = uuid.New().String()
	}

	addOns, err := json.Marshal(card.AddOns)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal add-ons: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert("price_cards").
		Columns(
			"id",
			"provider_id",
			"title",
			"category",
			"city",
			"description",
			"base_price",
			"add_ons",
			"duration_minutes",
			"is_active",
		).
		Values(
			card.ID,
			card.ProviderID,
			card.Title,
			card.Category,
			card.City,
			card.Description,
			card.BasePrice,
			addOns,
			card.DurationMinutes,
			card.IsActive,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	card.CreatedAt = createdAt.Time

	return card, nil
}

// GetByID получает карточку по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.PriceCard, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(priceCardColumns...).
		From("price_cards").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	card, err := scanPriceCard(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPriceCardNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan price card: %v", ErrScanRow, err)
	}

	return card, nil
}

// List получает карточки по фильтру, сначала новые
func (r *Repository) List(ctx context.Context, filter domain.PriceCardsFilter) ([]*domain.PriceCard, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(priceCardColumns...).From("price_cards")

	if filter.ProviderID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"provider_id": *filter.ProviderID})
	}
	if filter.Category != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category": *filter.Category})
	}
	if filter.City != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"city": *filter.City})
	}
	if filter.OnlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	cards := make([]*domain.PriceCard, 0)
	for rows.Next() {
		card, err := scanPriceCard(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return cards, nil
}

// Update обновляет редактируемые поля карточки
// Снимки в исторических бронированиях не затрагиваются
func (r *Repository) Update(ctx context.Context, card *domain.PriceCard) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	addOns, err := json.Marshal(card.AddOns)
	if err != nil {
		return fmt.Errorf("%w: Update - marshal add-ons: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Update("price_cards").
		Set("title", card.Title).
		Set("category", card.Category).
		Set("city", card.City).
		Set("description", card.Description).
		Set("base_price", card.BasePrice).
		Set("add_ons", addOns).
		Set("duration_minutes", card.DurationMinutes).
		Set("is_active", card.IsActive).
		Where(squirrel.Eq{"id": card.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrPriceCardNotFound
	}

	return nil
}

// Delete удаляет карточку
// Для временного скрытия из поиска используется деактивация (Update
// с is_active=false), удаление — только для карточек без истории
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("price_cards").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return ErrPriceCardInUse
		}
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrPriceCardNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPriceCard(row rowScanner) (*domain.PriceCard, error) {
	var card domain.PriceCard
	var addOns []byte
	var createdAt sql.NullTime

	err := row.Scan(
		&card.ID,
		&card.ProviderID,
		&card.Title,
		&card.Category,
		&card.City,
		&card.Description,
		&card.BasePrice,
		&addOns,
		&card.DurationMinutes,
		&card.IsActive,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(addOns, &card.AddOns); err != nil {
		return nil, fmt.Errorf("unmarshal add-ons: %w", err)
	}

	card.CreatedAt = createdAt.Time

	return &card, nil
}
