package ai

import "context"

type Message struct {
	Role    string
	Content string
}

// Provider is a chat-completion backend. Implementations must honor ctx;
// a timeout or transport failure is reported as an error and the caller
// decides how to degrade.
type Provider interface {
	Chat(ctx context.Context, messages []Message) (string, error)
}
