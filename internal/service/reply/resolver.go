package reply

import (
	"context"
	"strings"

	"github.com/luckteesid/luckbot/internal/core"
	"github.com/luckteesid/luckbot/pkg/log"
)

// HistoryWindow is how many recent turns go into the model prompt.
const HistoryWindow = 3

// Resolver applies the reply policy: empty input, FAQ, greeting, then
// the completion service. The order is fixed.
type Resolver struct {
	faq       core.FAQLookup
	completer core.Completer
	window    int
}

func NewResolver(faq core.FAQLookup, completer core.Completer, window int) *Resolver {
	if window < 0 {
		window = HistoryWindow
	}
	return &Resolver{
		faq:       faq,
		completer: completer,
		window:    window,
	}
}

// Match runs the canned-answer tiers only. An unmatched result means the
// message has to go to the model.
func (r *Resolver) Match(message string) core.Match {
	normalized := strings.ToLower(strings.TrimSpace(message))

	if normalized == "" {
		return core.Match{Text: EmptyInputReply, Source: core.SourceEmpty}
	}
	if answer, ok := r.faq.Lookup(normalized); ok && strings.TrimSpace(answer) != "" {
		return core.Match{Text: answer, Source: core.SourceFAQ}
	}
	if isGreeting(normalized) {
		return core.Match{Text: WelcomeReply, Source: core.SourceGreeting}
	}
	return core.Match{}
}

// Resolve always returns a reply. Completion failures are logged and
// replaced by the apology text.
func (r *Resolver) Resolve(ctx context.Context, message string, history []core.Turn) core.Reply {
	if m := r.Match(message); m.Matched() {
		return core.Reply{Text: m.Text, Source: m.Source}
	}

	logger := log.FromCtx(ctx)

	if len(history) > r.window {
		history = history[len(history)-r.window:]
	}

	raw, err := r.completer.Complete(ctx, Persona, strings.TrimSpace(message), FormatHistory(history))
	if err != nil {
		logger.Error().Err(err).Msg("completion failed, sending apology")
		return core.Reply{Text: ApologyReply, Source: core.SourceFallback}
	}

	text := strings.TrimSpace(Sanitize(raw))
	if text == "" {
		logger.Warn().Str("raw", raw).Msg("completion empty after sanitizing, sending apology")
		return core.Reply{Text: ApologyReply, Source: core.SourceFallback}
	}
	return core.Reply{Text: text, Source: core.SourceLLM}
}
