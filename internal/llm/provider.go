package llm

import "context"

// Reply contains a single completion result
type Reply struct {
	Content    string
	Model      string
	TokensUsed int
	LatencyMs  int64
}

// Provider defines the interface for chat-completion backends
type Provider interface {
	// Name returns the provider identifier
	Name() string

	// DefaultModel returns the model used when none is requested
	DefaultModel() string

	// IsConfigured checks if provider has valid credentials
	IsConfigured() bool

	// Complete sends an ordered transcript and returns the first candidate
	// reply. An empty transcript yields (nil, nil): there is nothing to
	// complete and the caller applies its own fallback.
	Complete(ctx context.Context, messages []string, model string) (*Reply, error)
}
