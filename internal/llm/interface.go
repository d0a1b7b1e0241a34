package llm

import "context"

// Invoker sends one session payload to the language model and returns the
// verbatim reply text. Implementations apply their own per-call timeout;
// the model gives no latency guarantee.
type Invoker interface {
	Invoke(ctx context.Context, sessionText string) (string, error)
}
