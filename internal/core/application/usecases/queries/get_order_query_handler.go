package queries

import (
	"context"
	"errors"

	"supportbot/internal/core/domain/model/kernel"
	"supportbot/internal/pkg/errs"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order straight from the database,
// bypassing the aggregate.
//
// Example:
//
//	number, _ := kernel.NewOrderNumber(42)
//	query, _ := NewGetOrderQuery(number)
//	resp, err := NewGetOrderQueryHandler(db).Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // 404
//	}
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler backed by the given GORM connection.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order or *errs.ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var row struct {
		OrderNumber  int64
		Status       string
		Items        pq.StringArray
		Total        decimal.Decimal
		CustomerName string
		Address      string
		OrderDate    string
	}

	result := h.db.WithContext(ctx).Raw(`
		SELECT
			order_number,
			status,
			items,
			total,
			customer_name,
			address,
			order_date
		FROM orders
		WHERE order_number = ?
		LIMIT 1
	`, query.Number().Int64()).Scan(&row)
	if result.Error != nil {
		return GetOrderQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderNumber", query.Number().String())
	}

	number, err := kernel.NewOrderNumber(row.OrderNumber)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	total, err := kernel.NewMoney(row.Total)
	if err != nil {
		return GetOrderQueryResponse{}, errors.Join(errs.NewValueIsInvalidError("total"), err)
	}

	items := []string(row.Items)
	if items == nil {
		items = []string{}
	}

	return GetOrderQueryResponse{
		Number:       number,
		Status:       row.Status,
		Items:        items,
		Total:        total,
		CustomerName: row.CustomerName,
		Address:      row.Address,
		OrderDate:    row.OrderDate,
	}, nil
}
