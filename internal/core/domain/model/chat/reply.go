package chat

import (
	"fmt"

	"supportbot/internal/core/domain/model/kernel"
)

// Reply is the text sent back to the customer.
type Reply string

const (
	GreetingReply          Reply = "Hello! How can I help you today?"
	ThanksReply            Reply = "You're welcome!"
	GoodbyeReply           Reply = "Goodbye! Have a nice day."
	OrderNumberPromptReply Reply = "Please provide an order number."
	NotUnderstoodReply     Reply = "Sorry, I didn't understand that."

	// BackendErrorReply is the only text a caller sees when a dependency fails.
	BackendErrorReply Reply = "Backend error"
)

// OrderNotFoundReply is sent when the store has no order with the given number.
func OrderNotFoundReply(number kernel.OrderNumber) Reply {
	return OrderReferenceNotFoundReply(number.String())
}

// OrderReferenceNotFoundReply renders the not-found text for a reference as the customer wrote it.
func OrderReferenceNotFoundReply(reference string) Reply {
	return Reply(fmt.Sprintf("No order found with number %s.", reference))
}

func (r Reply) String() string {
	return string(r)
}
