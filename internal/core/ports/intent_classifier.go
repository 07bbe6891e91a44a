package ports

import (
	"context"

	"supportbot/internal/core/domain/model/chat"
)

// IntentClassifier turns free text into a chat.Classification.
type IntentClassifier interface {
	// Classify must accept any message, including the empty string. Labels
	// outside the known set come back as chat.Unrecognized, not as errors;
	// an error means the classifier itself failed.
	Classify(ctx context.Context, message string) (chat.Classification, error)
}
