package core

import "context"

// Completer produces a free-text reply for a user message under a fixed
// system prompt. history is an already formatted transcript, possibly empty.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userMessage, history string) (string, error)
}

// FAQLookup finds a canned answer for a message.
type FAQLookup interface {
	Lookup(message string) (string, bool)
}
