// Package ports defines the contracts between the support bot's use cases and
// the outside world: the order store and the intent classifier.
package ports

import (
	"context"

	"supportbot/internal/core/domain/model/kernel"
	"supportbot/internal/core/domain/model/order"
)

// OrderReader is the read side of the order store used by the chat flow.
type OrderReader interface {
	// FindByOrderNumber returns the order with exactly this number.
	// A miss is reported as *errs.ObjectNotFoundError; any other error means
	// the store could not answer.
	FindByOrderNumber(ctx context.Context, number kernel.OrderNumber) (*order.Order, error)
}

// OrderRepository is the full persistence contract for orders.
type OrderRepository interface {
	OrderReader

	// Add persists a new order. An order with the same number already in
	// storage is reported as *errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *order.Order) error
}
