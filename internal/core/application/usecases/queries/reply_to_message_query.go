package queries

import (
	"errors"

	"supportbot/internal/core/domain/model/chat"
	"supportbot/internal/pkg/guard"
)

var (
	ErrReplyToMessageQueryIsNotConstructed = errors.New(
		"ReplyToMessageQuery must be created via NewReplyToMessageQuery constructor",
	)
)

// ReplyToMessageQuery asks for the bot's reply to one customer message.
// The message is passed to the classifier verbatim, including when empty.
//
// Example:
//
//	query := NewReplyToMessageQuery("where is order 42?")
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(resp.Reply)
type ReplyToMessageQuery struct {
	message string

	guard guard.ConstructorGuard
}

// NewReplyToMessageQuery creates a reply query for the given message.
func NewReplyToMessageQuery(message string) ReplyToMessageQuery {
	return ReplyToMessageQuery{
		message: message,
		guard:   guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ReplyToMessageQuery) Validate() error {
	return q.guard.Validate(ErrReplyToMessageQueryIsNotConstructed)
}

func (q ReplyToMessageQuery) Message() string {
	return q.message
}

// ReplyToMessageQueryResponse carries the reply text and the intent it was
// resolved from.
type ReplyToMessageQueryResponse struct {
	Intent chat.Intent
	Reply  chat.Reply
}
