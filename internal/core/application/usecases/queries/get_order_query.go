package queries

import (
	"errors"

	"supportbot/internal/core/domain/model/kernel"
	"supportbot/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order by its number for the admin API.
type GetOrderQuery struct {
	number kernel.OrderNumber

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the given order number.
func NewGetOrderQuery(number kernel.OrderNumber) (GetOrderQuery, error) {
	if err := number.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		number: number,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Number() kernel.OrderNumber {
	return q.number
}

// GetOrderQueryResponse is the stored order as shown by the admin API.
type GetOrderQueryResponse struct {
	Number       kernel.OrderNumber
	Status       string
	Items        []string
	Total        kernel.Money
	CustomerName string
	Address      string
	OrderDate    string
}
