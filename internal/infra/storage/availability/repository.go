package availability

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/svcmarket/booking-engine/internal/domain"
	"github.com/svcmarket/booking-engine/pkg/dbmetrics"
	"github.com/svcmarket/booking-engine/pkg/psqlbuilder"
)

// Repository репозиторий для работы с расписаниями провайдеров
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByProviderID получает расписание провайдера
func (r *Repository) GetByProviderID(ctx context.Context, providerID string) (*domain.Availability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"provider_id",
		"weekly",
		"exceptions",
		"updated_at",
	).
		From("availability").
		Where(squirrel.Eq{"provider_id": providerID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderID - build select query: %v", ErrBuildQuery, err)
	}

	var availability domain.Availability
	var weekly, exceptions []byte
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&availability.ID,
		&availability.ProviderID,
		&weekly,
		&exceptions,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAvailabilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderID - scan availability: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(weekly, &availability.Weekly); err != nil {
		return nil, fmt.Errorf("%w: GetByProviderID - unmarshal weekly: %v", ErrScanRow, err)
	}
	if err := json.Unmarshal(exceptions, &availability.Exceptions); err != nil {
		return nil, fmt.Errorf("%w: GetByProviderID - unmarshal exceptions: %v", ErrScanRow, err)
	}

	availability.UpdatedAt = updatedAt.Time

	return &availability, nil
}

// Replace заменяет расписание провайдера целиком (upsert)
// Расписание — единый документ: недельный шаблон и исключения
// всегда записываются вместе, инкрементальных патчей нет
func (r *Repository) Replace(ctx context.Context, availability *domain.Availability) (*domain.Availability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if availability.ID == "" {
		availability.ID = uuid.New().String()
	}

	weekly, err := json.Marshal(availability.Weekly)
	if err != nil {
		return nil, fmt.Errorf("%w: Replace - marshal weekly: %v", ErrBuildQuery, err)
	}
	exceptions, err := json.Marshal(availability.Exceptions)
	if err != nil {
		return nil, fmt.Errorf("%w: Replace - marshal exceptions: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert("availability").
		Columns("id", "provider_id", "weekly", "exceptions").
		Values(availability.ID, availability.ProviderID, weekly, exceptions).
		Suffix(`ON CONFLICT (provider_id) DO UPDATE
			SET weekly = EXCLUDED.weekly,
			    exceptions = EXCLUDED.exceptions,
			    updated_at = NOW()
			RETURNING id, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Replace - build upsert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&availability.ID, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Replace - execute upsert: %v", ErrExecQuery, err)
	}

	availability.UpdatedAt = updatedAt.Time

	return availability, nil
}
