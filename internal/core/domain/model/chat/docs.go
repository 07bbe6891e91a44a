// Package chat models one turn of the support conversation: the intent the
// classifier assigned to a customer message and the reply sent back.
//
// The package includes:
//   - Intent: the closed set of intents the bot reacts to
//   - Classification: an intent plus the order number extracted from the message, if any
//   - Reply: the fixed texts and the order-specific replies
//
// Intent is a closed enum. Dispatch code switches over every value and the
// exhaustive linter flags a switch that misses one, so adding an intent is a
// checked change rather than a silent fall-through.
package chat
