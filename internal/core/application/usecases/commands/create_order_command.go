package commands

import (
	"errors"
	"slices"
	"strings"

	"supportbot/internal/core/domain/model/kernel"
	"supportbot/internal/core/domain/model/order"
	"supportbot/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrStatusIsRequired = errors.New("status is required")
)

// CreateOrderCommand registers an order so the chat flow can find it.
//
// Example:
//
//	number, _ := kernel.NewOrderNumber(42)
//	total, _ := kernel.NewMoneyFromString("19.99")
//	cmd, err := NewCreateOrderCommand(number, total, order.Details{
//	    Status: "Shipped",
//	    Items:  []string{"Widget"},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	number  kernel.OrderNumber
	total   kernel.Money
	details order.Details

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the order number, total and status.
// All validation errors are reported together.
func NewCreateOrderCommand(
	number kernel.OrderNumber,
	total kernel.Money,
	details order.Details,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setNumber(number),
		cmd.setTotal(total),
		cmd.setDetails(details),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Number() kernel.OrderNumber {
	return c.number
}

func (c CreateOrderCommand) Total() kernel.Money {
	return c.total
}

// Details returns a copy of the free-form order fields.
func (c CreateOrderCommand) Details() order.Details {
	details := c.details
	details.Items = slices.Clone(c.details.Items)
	return details
}

func (c *CreateOrderCommand) setNumber(number kernel.OrderNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}

	c.number = number
	return nil
}

func (c *CreateOrderCommand) setTotal(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}

	c.total = total
	return nil
}

func (c *CreateOrderCommand) setDetails(details order.Details) error {
	if strings.TrimSpace(details.Status) == "" {
		return ErrStatusIsRequired
	}

	c.details = details
	c.details.Items = slices.Clone(details.Items)
	return nil
}
