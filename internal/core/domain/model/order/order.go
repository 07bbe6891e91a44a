package order

import (
	"errors"
	"slices"

	"supportbot/internal/core/domain/model/kernel"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through NewOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a purchase record keyed by its order number.
//
// Order follows these invariants:
//   - Number is a valid, positive OrderNumber
//   - Total is a constructed, non-negative Money value
//   - Items are copied in and out, so callers cannot mutate the aggregate
type Order struct {
	number       kernel.OrderNumber
	status       string
	items        []string
	total        kernel.Money
	customerName string
	address      string
	orderDate    string

	isConstructed bool
}

// Details carries the free-form fields of an order. It exists so NewOrder does
// not take a long list of positional strings that are easy to swap.
type Details struct {
	Status       string
	Items        []string
	CustomerName string
	Address      string
	OrderDate    string
}

// NewOrder validates the key and total and builds an Order.
//
// Example:
//
//	number, _ := kernel.NewOrderNumber(42)
//	total, _ := kernel.NewMoneyFromString("19.99")
//	o, err := order.NewOrder(number, total, order.Details{
//	    Status:       "Shipped",
//	    Items:        []string{"Widget", "Gadget"},
//	    CustomerName: "Ann",
//	    Address:      "1 Main St",
//	    OrderDate:    "2024-01-01",
//	})
func NewOrder(number kernel.OrderNumber, total kernel.Money, details Details) (*Order, error) {
	o := &Order{
		status:        details.Status,
		items:         slices.Clone(details.Items),
		customerName:  details.CustomerName,
		address:       details.Address,
		orderDate:     details.OrderDate,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setNumber(number),
		o.setTotal(total),
	); err != nil {
		return nil, err
	}

	if o.items == nil {
		o.items = []string{}
	}

	return o, nil
}

// Validate ensures the Order was created through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by number only.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.number.IsEqual(other.number)
}

func (o *Order) Number() kernel.OrderNumber {
	return o.number
}

func (o *Order) Status() string {
	return o.status
}

// Items returns a copy of the line items in display order.
func (o *Order) Items() []string {
	return slices.Clone(o.items)
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) CustomerName() string {
	return o.customerName
}

func (o *Order) Address() string {
	return o.address
}

func (o *Order) OrderDate() string {
	return o.orderDate
}

func (o *Order) setNumber(number kernel.OrderNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setTotal(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}
	o.total = total
	return nil
}
