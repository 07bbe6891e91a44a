package services

import (
	"errors"
	"strings"

	"supportbot/internal/core/domain/model/chat"
	"supportbot/internal/core/domain/model/kernel"
	"supportbot/internal/core/domain/model/order"
	"supportbot/internal/pkg/errs"
)

// OrderLookup fetches an order by exact number. A miss must be reported as an
// error matching errs.ErrObjectNotFound.
type OrderLookup func(number kernel.OrderNumber) (*order.Order, error)

// Summary field labels, one per line after the "Order {n}" header.
const (
	SummaryLabelStatus    = "Status:"
	SummaryLabelItems     = "Items:"
	SummaryLabelTotal     = "Total:"
	SummaryLabelCustomer  = "Customer:"
	SummaryLabelAddress   = "Address:"
	SummaryLabelOrderDate = "Order Date:"

	itemSeparator = ", "
)

// ReplyComposer maps a classification to the customer-facing reply.
//
// Business rules:
//   - greeting, thanks and goodbye get fixed texts whatever else the message contained
//   - get_order without a number asks for one and never touches the store
//   - get_order with a number looks the order up exactly once
//   - get_order with a number no stored order can carry is not found, without a lookup
//   - a missing order is a normal reply, not an error
//   - any other lookup failure is returned to the caller untouched
//   - unrecognized intents get the "didn't understand" text
//
// Example:
//
//	composer := services.NewReplyComposer()
//	reply, err := composer.Compose(classification, func(n kernel.OrderNumber) (*order.Order, error) {
//	    return repo.FindByOrderNumber(ctx, n)
//	})
type ReplyComposer struct{}

func NewReplyComposer() ReplyComposer {
	return ReplyComposer{}
}

// Compose runs the intent dispatch. lookup is called at most once.
func (c ReplyComposer) Compose(classification chat.Classification, lookup OrderLookup) (chat.Reply, error) {
	if err := classification.Validate(); err != nil {
		return "", err
	}

	switch classification.Intent() {
	case chat.Greeting:
		return chat.GreetingReply, nil
	case chat.Thanks:
		return chat.ThanksReply, nil
	case chat.Goodbye:
		return chat.GoodbyeReply, nil
	case chat.GetOrder:
		if reference, ok := classification.OrderReference(); ok {
			return chat.OrderReferenceNotFoundReply(reference), nil
		}
		number, ok := classification.OrderNumber()
		if !ok {
			return chat.OrderNumberPromptReply, nil
		}
		return c.orderReply(number, lookup)
	case chat.Unrecognized:
		return chat.NotUnderstoodReply, nil
	}

	return chat.NotUnderstoodReply, nil
}

func (c ReplyComposer) orderReply(number kernel.OrderNumber, lookup OrderLookup) (chat.Reply, error) {
	o, err := lookup(number)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return chat.OrderNotFoundReply(number), nil
	}
	if err != nil {
		return "", err
	}

	return c.OrderSummary(o)
}

// OrderSummary renders an order as seven newline-separated lines:
//
//	Order 42
//	Status: Shipped
//	Items: Widget, Gadget
//	Total: $19.99
//	Customer: Ann
//	Address: 1 Main St
//	Order Date: 2024-01-01
func (c ReplyComposer) OrderSummary(o *order.Order) (chat.Reply, error) {
	if err := o.Validate(); err != nil {
		return "", err
	}

	lines := []string{
		"Order " + o.Number().String(),
		SummaryLabelStatus + " " + o.Status(),
		SummaryLabelItems + " " + strings.Join(o.Items(), itemSeparator),
		SummaryLabelTotal + " " + o.Total().String(),
		SummaryLabelCustomer + " " + o.CustomerName(),
		SummaryLabelAddress + " " + o.Address(),
		SummaryLabelOrderDate + " " + o.OrderDate(),
	}

	return chat.Reply(strings.Join(lines, "\n")), nil
}
