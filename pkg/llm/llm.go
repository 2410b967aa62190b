package llm

import "context"

// Result is the outcome of a single successful Ask call. Raw carries the
// provider's response exactly as parsed, including fields the typed layer
// does not model.
type Result struct {
	Answer string
	Raw    map[string]any
}

// Provider is a minimal abstraction for question-answering LLMs used by the
// HTTP layer. It intentionally hides concrete providers to preserve
// dependency direction. Implementations must be safe for concurrent use by
// callers sharing a single instance.
type Provider interface {
	Ask(ctx context.Context, question string) (Result, error)
}
