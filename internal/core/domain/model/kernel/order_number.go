package kernel

import (
	"math"
	"strconv"
	"strings"

	"supportbot/internal/pkg/errs"
)

// ErrOrderNumberIsNotConstructed is returned by Validate for the zero OrderNumber.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"order number must be created via NewOrderNumber or ParseOrderNumber",
)

// OrderNumber is the customer-facing numeric order identifier. It is the
// exact-match lookup key of the order store, so two OrderNumbers are equal
// only when their values are equal.
type OrderNumber struct {
	value int64
}

// NewOrderNumber accepts any positive value.
func NewOrderNumber(value int64) (OrderNumber, error) {
	if value < 1 {
		return OrderNumber{}, errs.NewValueIsOutOfRangeError("orderNumber", value, 1, int64(math.MaxInt64))
	}
	return OrderNumber{value: value}, nil
}

// ParseOrderNumber reads a base-10 order number, ignoring surrounding spaces.
func ParseOrderNumber(s string) (OrderNumber, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("orderNumber", err)
	}
	return NewOrderNumber(value)
}

// Int64 returns the raw value, e.g. for persistence.
func (n OrderNumber) Int64() int64 {
	return n.value
}

func (n OrderNumber) String() string {
	return strconv.FormatInt(n.value, 10)
}

func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

func (n OrderNumber) Validate() error {
	if n.value < 1 {
		return ErrOrderNumberIsNotConstructed
	}
	return nil
}
