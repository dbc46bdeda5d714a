package core

import "context"

// SessionStore keeps recent turns per chat session.
type SessionStore interface {
	Append(sessionID string, turn Turn)
	Recent(sessionID string, n int) []Turn
	Reset(sessionID string)
}

// Responder is the single contract the transports depend on.
type Responder interface {
	Respond(ctx context.Context, sessionID, text string) string
	Reset(ctx context.Context, sessionID string)
}
