package kernel

import (
	"fmt"

	"supportbot/internal/pkg/errs"
	"supportbot/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// CurrencySymbol prefixes every rendered amount. The store keeps bare amounts;
// currency is not modelled beyond this symbol.
const CurrencySymbol = "$"

var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney")

// Money is a non-negative monetary amount.
type Money struct {
	amount decimal.Decimal

	guard guard.ConstructorGuard
}

func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// NewMoneyFromString parses amounts such as "19.99".
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return NewMoney(amount)
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// String renders the amount in its shortest form with the currency symbol:
// 19.99 -> "$19.99", 20.00 -> "$20", 19.50 -> "$19.5".
func (m Money) String() string {
	return CurrencySymbol + m.amount.String()
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
