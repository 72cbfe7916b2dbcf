package provider

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/svcmarket/booking-engine/internal/domain"
	"github.com/svcmarket/booking-engine/pkg/dbmetrics"
	"github.com/svcmarket/booking-engine/pkg/psqlbuilder"
)

var (
	// ErrProviderNotFound возвращается, когда запись провайдера не найдена
	ErrProviderNotFound = errors.New("provider.repository: provider not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("provider.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("provider.repository: failed to scan row")
)

var providerColumns = []string{"id", "user_id", "display_name", "city", "created_at"}

// Repository репозиторий для работы с записями провайдеров
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория провайдеров
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает провайдера по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Provider, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByUserID получает провайдера по ID пользователя
// Используется при разрешении ролей: отсутствие записи означает,
// что пользователь не является провайдером
func (r *Repository) GetByUserID(ctx context.Context, userID string) (*domain.Provider, error) {
	return r.getOne(ctx, squirrel.Eq{"user_id": userID})
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Provider, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(providerColumns...).
		From("providers").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var provider domain.Provider
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&provider.ID,
		&provider.UserID,
		&provider.DisplayName,
		&provider.City,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrProviderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan provider: %v", ErrScanRow, err)
	}

	provider.CreatedAt = createdAt.Time

	return &provider, nil
}
