// Package orderrepo provides the GORM-backed order store: data transfer objects,
// mapping functions and the repository used by the chat and admin use cases.
package orderrepo

import (
	"supportbot/internal/core/domain/model/kernel"
	"supportbot/internal/core/domain/model/order"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The order number is the natural key; the surrogate ID only exists for GORM.
type OrderDTO struct {
	ID           uint            `gorm:"primaryKey"`
	OrderNumber  int64           `gorm:"not null;uniqueIndex"`
	Status       string          `gorm:"not null;default:''"`
	Items        pq.StringArray  `gorm:"type:text[];not null;default:'{}'"`
	Total        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CustomerName string          `gorm:"not null;default:''"`
	Address      string          `gorm:"not null;default:''"`
	OrderDate    string          `gorm:"not null;default:''"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		OrderNumber:  o.Number().Int64(),
		Status:       o.Status(),
		Items:        pq.StringArray(o.Items()),
		Total:        o.Total().Amount(),
		CustomerName: o.CustomerName(),
		Address:      o.Address(),
		OrderDate:    o.OrderDate(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	number, err := kernel.NewOrderNumber(dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	return order.NewOrder(number, total, order.Details{
		Status:       dto.Status,
		Items:        []string(dto.Items),
		CustomerName: dto.CustomerName,
		Address:      dto.Address,
		OrderDate:    dto.OrderDate,
	})
}
