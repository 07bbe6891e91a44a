package chat

// Intent is the purpose the classifier assigned to a customer message.
type Intent int

const (
	// Unrecognized covers every label outside the known set, including the empty label.
	Unrecognized Intent = iota
	Greeting
	Thanks
	Goodbye
	GetOrder
)

// Wire labels, as emitted by the classifier. Matching is case-sensitive.
const (
	LabelGreeting = "greeting"
	LabelThanks   = "thanks"
	LabelGoodbye  = "goodbye"
	LabelGetOrder = "get_order"
)

func getIntentLabels() map[Intent]string {
	return map[Intent]string{
		Unrecognized: "unrecognized",
		Greeting:     LabelGreeting,
		Thanks:       LabelThanks,
		Goodbye:      LabelGoodbye,
		GetOrder:     LabelGetOrder,
	}
}

// ParseIntent maps a classifier label to an Intent. Unknown labels are not an
// error: they become Unrecognized and get the "didn't understand" reply.
func ParseIntent(label string) Intent {
	switch label {
	case LabelGreeting:
		return Greeting
	case LabelThanks:
		return Thanks
	case LabelGoodbye:
		return Goodbye
	case LabelGetOrder:
		return GetOrder
	default:
		return Unrecognized
	}
}

// Intents lists every intent, Unrecognized first.
func Intents() []Intent {
	return []Intent{Unrecognized, Greeting, Thanks, Goodbye, GetOrder}
}

// String returns the wire label, or "unrecognized".
func (i Intent) String() string {
	if label, ok := getIntentLabels()[i]; ok {
		return label
	}
	return getIntentLabels()[Unrecognized]
}
