package ports

// Names of the external collaborators, used in errors, logs, metrics and health output.
const (
	DependencyIntentClassifier = "intent classifier"
	DependencyOrderStore       = "order store"
)
