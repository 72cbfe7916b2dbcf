package address

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
	// ErrAddressNotFound возвращается, когда адрес не найден
	ErrAddressNotFound = errors.New("address.repository: address not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("address.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("address.repository: failed to scan row")
)

// Repository репозиторий для работы с адресами клиентов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория адресов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает адрес по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Address, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"label",
		"line1",
		"line2",
		"city",
		"postal_code",
		"is_default",
		"created_at",
	).
		From("addresses").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var address domain.Address
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&address.ID,
		&address.UserID,
		&address.Label,
		&address.Line1,
		&address.Line2,
		&address.City,
		&address.PostalCode,
		&address.IsDefault,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAddressNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan address: %v", ErrScanRow, err)
	}

	address.CreatedAt = createdAt.Time

	return &address, nil
}
