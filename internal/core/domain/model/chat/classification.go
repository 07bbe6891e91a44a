package chat

import (
	"errors"
	"strings"

	"supportbot/internal/core/domain/model/kernel"
	"supportbot/internal/pkg/errs"
	"supportbot/internal/pkg/guard"
)

var ErrClassificationIsNotConstructed = errors.New(
	"Classification must be created via NewClassification or NewClassificationWithOrderNumber",
)

// Classification is the classifier's verdict on one message. It lives for a
// single request and is never stored.
type Classification struct {
	intent         Intent
	orderNumber    *kernel.OrderNumber
	orderReference string

	guard guard.ConstructorGuard
}

// NewClassification builds a classification without an order number.
func NewClassification(intent Intent) Classification {
	return Classification{intent: intent, guard: guard.NewConstructorGuard()}
}

// NewClassificationWithOrderNumber attaches the order number extracted from the message.
func NewClassificationWithOrderNumber(intent Intent, number kernel.OrderNumber) (Classification, error) {
	if err := number.Validate(); err != nil {
		return Classification{}, err
	}
	return Classification{intent: intent, orderNumber: &number, guard: guard.NewConstructorGuard()}, nil
}

// NewClassificationWithOrderReference attaches a numeric order reference that no
// stored order can carry, such as a number beyond the int64 range. Such
// references are answered as not found without a store lookup.
func NewClassificationWithOrderReference(intent Intent, reference string) (Classification, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return Classification{}, errs.NewValueIsRequiredError("orderReference")
	}
	return Classification{intent: intent, orderReference: reference, guard: guard.NewConstructorGuard()}, nil
}

func (c Classification) Validate() error {
	return c.guard.Validate(ErrClassificationIsNotConstructed)
}

func (c Classification) Intent() Intent {
	return c.intent
}

// OrderNumber reports the extracted order number, if any.
func (c Classification) OrderNumber() (kernel.OrderNumber, bool) {
	if c.orderNumber == nil {
		return kernel.OrderNumber{}, false
	}
	return *c.orderNumber, true
}

// OrderReference reports an order reference that cannot be a stored order number.
func (c Classification) OrderReference() (string, bool) {
	return c.orderReference, c.orderReference != ""
}
