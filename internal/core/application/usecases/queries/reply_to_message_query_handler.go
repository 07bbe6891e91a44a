package queries

import (
	"context"
	"errors"

	"supportbot/internal/core/domain/model/kernel"
	"supportbot/internal/core/domain/model/order"
	"supportbot/internal/core/domain/services"
	"supportbot/internal/core/ports"
	"supportbot/internal/pkg/errs"
)

// ReplyToMessageQueryHandler is the chat flow: classify the message, look the
// order up when asked to, and render the reply.
//
// It makes exactly one classifier call and at most one store read per query.
// Classifier failures and store failures other than a miss come back as
// *errs.DependencyFailedError; a missing order is a normal reply.
type ReplyToMessageQueryHandler struct {
	classifier ports.IntentClassifier
	orders     ports.OrderReader
	composer   services.ReplyComposer
}

// NewReplyToMessageQueryHandler wires the chat flow to its collaborators.
func NewReplyToMessageQueryHandler(
	classifier ports.IntentClassifier,
	orders ports.OrderReader,
) (ReplyToMessageQueryHandler, error) {
	if classifier == nil {
		return ReplyToMessageQueryHandler{}, errs.NewValueIsRequiredError("classifier")
	}
	if orders == nil {
		return ReplyToMessageQueryHandler{}, errs.NewValueIsRequiredError("orders")
	}

	return ReplyToMessageQueryHandler{
		classifier: classifier,
		orders:     orders,
		composer:   services.NewReplyComposer(),
	}, nil
}

func (h ReplyToMessageQueryHandler) Handle(
	ctx context.Context,
	query ReplyToMessageQuery,
) (ReplyToMessageQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ReplyToMessageQueryResponse{}, err
	}

	classification, err := h.classifier.Classify(ctx, query.Message())
	if err != nil {
		return ReplyToMessageQueryResponse{}, errs.NewDependencyFailedErrorWithCause(ports.DependencyIntentClassifier, err)
	}

	reply, err := h.composer.Compose(classification, func(number kernel.OrderNumber) (*order.Order, error) {
		o, findErr := h.orders.FindByOrderNumber(ctx, number)
		if findErr != nil && !errors.Is(findErr, errs.ErrObjectNotFound) {
			return nil, errs.NewDependencyFailedErrorWithCause(ports.DependencyOrderStore, findErr)
		}
		return o, findErr
	})
	if err != nil {
		return ReplyToMessageQueryResponse{}, err
	}

	return ReplyToMessageQueryResponse{
		Intent: classification.Intent(),
		Reply:  reply,
	}, nil
}
