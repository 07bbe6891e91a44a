package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// DatabaseProbe checks that the order store accepts connections.
type DatabaseProbe struct {
	db *gorm.DB
}

// NewDatabaseProbe wraps a GORM connection for health checks.
func NewDatabaseProbe(db *gorm.DB) *DatabaseProbe {
	return &DatabaseProbe{db: db}
}

// Ping round-trips to the database using the underlying pool.
func (p *DatabaseProbe) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}
