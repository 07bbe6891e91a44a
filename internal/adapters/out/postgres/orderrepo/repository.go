package orderrepo

import (
	"context"
	"errors"

	"supportbot/internal/core/domain/model/kernel"
	"supportbot/internal/core/domain/model/order"
	"supportbot/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a unique constraint violation.
const uniqueViolation pq.ErrorCode = "23505"

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(number kernel.OrderNumber, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// NewGormOrderReader creates a repository for lookups outside any unit of work.
// It holds no per-request state and is safe to share between requests.
func NewGormOrderReader(db *gorm.DB) *GormOrderRepository {
	return NewGormOrderRepository(db, untracked{})
}

// untracked discards tracking for repositories without a unit of work.
type untracked struct{}

func (untracked) TrackAggregate(kernel.OrderNumber, any) {}

// Add saves a new order. A second order with the same number yields
// errs.ObjectAlreadyExistsError.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("orderNumber", aggregate.Number().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.Number(), aggregate)
	return nil
}

// FindByOrderNumber retrieves an order by exact number match.
func (r *GormOrderRepository) FindByOrderNumber(ctx context.Context, number kernel.OrderNumber) (*order.Order, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_number = ?", number.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderNumber", number.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// isUniqueViolation recognises duplicate keys from both drivers the store can
// run on: pgx (gorm's postgres driver) and lib/pq.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == string(uniqueViolation)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}

	return false
}
