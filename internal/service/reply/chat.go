package reply

import (
	"context"

	"github.com/luckteesid/luckbot/internal/core"
	"github.com/luckteesid/luckbot/pkg/log"
)

// Chat binds the resolver to conversation memory. Transports talk to it
// through core.Responder.
type Chat struct {
	resolver *Resolver
	sessions core.SessionStore
}

func NewChat(resolver *Resolver, sessions core.SessionStore) *Chat {
	return &Chat{
		resolver: resolver,
		sessions: sessions,
	}
}

func (c *Chat) Respond(ctx context.Context, sessionID, text string) string {
	history := c.sessions.Recent(sessionID, c.resolver.window)
	reply := c.resolver.Resolve(ctx, text, history)
	c.sessions.Append(sessionID, core.Turn{User: text, Bot: reply.Text})

	log.FromCtx(ctx).Debug().
		Str("session", sessionID).
		Str("source", string(reply.Source)).
		Int("history", len(history)).
		Msg("resolved reply")

	return reply.Text
}

func (c *Chat) Reset(ctx context.Context, sessionID string) {
	c.sessions.Reset(sessionID)
	log.FromCtx(ctx).Debug().Str("session", sessionID).Msg("session reset")
}
