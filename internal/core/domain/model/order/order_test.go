package order_test

import (
	"testing"

	"supportbot/internal/core/domain/model/kernel"
	"supportbot/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails() order.Details {
	return order.Details{
		Status:       "Shipped",
		Items:        []string{"Widget", "Gadget"},
		CustomerName: "Ann",
		Address:      "1 Main St",
		OrderDate:    "2024-01-01",
	}
}

func TestNewOrder(t *testing.T) {
	number, _ := kernel.NewOrderNumber(42)
	total, _ := kernel.NewMoneyFromString("19.99")

	t.Run("should create valid order with all fields", func(t *testing.T) {
		o, err := order.NewOrder(number, total, validDetails())

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.Number().IsEqual(number))
		assert.Equal(t, "Shipped", o.Status())
		assert.Equal(t, []string{"Widget", "Gadget"}, o.Items())
		assert.Equal(t, "$19.99", o.Total().String())
		assert.Equal(t, "Ann", o.CustomerName())
		assert.Equal(t, "1 Main St", o.Address())
		assert.Equal(t, "2024-01-01", o.OrderDate())
	})

	t.Run("should fail with zero order number", func(t *testing.T) {
		o, err := order.NewOrder(kernel.OrderNumber{}, total, validDetails())

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "order number must be created")
	})

	t.Run("should fail with zero money", func(t *testing.T) {
		o, err := order.NewOrder(number, kernel.Money{}, validDetails())

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "money must be created")
	})

	t.Run("should join multiple validation errors", func(t *testing.T) {
		_, err := order.NewOrder(kernel.OrderNumber{}, kernel.Money{}, validDetails())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "order number must be created")
		assert.Contains(t, err.Error(), "money must be created")
	})

	t.Run("should accept empty free-form fields", func(t *testing.T) {
		o, err := order.NewOrder(number, total, order.Details{})

		require.NoError(t, err)
		assert.Empty(t, o.Status())
		assert.NotNil(t, o.Items())
		assert.Empty(t, o.Items())
	})
}

func TestOrder_ItemsAreCopied(t *testing.T) {
	number, _ := kernel.NewOrderNumber(7)
	total, _ := kernel.NewMoneyFromString("5")
	details := validDetails()

	o, err := order.NewOrder(number, total, details)
	require.NoError(t, err)

	details.Items[0] = "Changed by caller"
	returned := o.Items()
	returned[1] = "Changed by reader"

	assert.Equal(t, []string{"Widget", "Gadget"}, o.Items())
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail for nil order", func(t *testing.T) {
		var o *order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("should fail for zero value order", func(t *testing.T) {
		var o order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	n1, _ := kernel.NewOrderNumber(1)
	n2, _ := kernel.NewOrderNumber(2)
	total, _ := kernel.NewMoneyFromString("1")

	o1, _ := order.NewOrder(n1, total, validDetails())
	o1Again, _ := order.NewOrder(n1, total, order.Details{Status: "Pending"})
	o2, _ := order.NewOrder(n2, total, validDetails())

	assert.True(t, o1.IsEqual(o1Again))
	assert.False(t, o1.IsEqual(o2))
	assert.False(t, o1.IsEqual(nil))
}
