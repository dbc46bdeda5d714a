package telegram

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/luckteesid/luckbot/pkg/conv"
	"github.com/luckteesid/luckbot/pkg/log"
	"github.com/luckteesid/luckbot/pkg/retry"
	tele "gopkg.in/telebot.v3"
)

const maxTelegramMsgLen = 4000 // Safety margin below 4096

type sender struct {
	bot     *tele.Bot
	retrier *retry.Retrier
}

func newSender(bot *tele.Bot, retrier *retry.Retrier) *sender {
	return &sender{bot: bot, retrier: retrier}
}

// send delivers text in chunks, retrying transient API failures.
func (s *sender) send(ctx context.Context, to tele.Recipient, text string) error {
	logger := log.FromCtx(ctx)
	body, opts := render(text)

	for i, chunk := range splitMessage(body, maxTelegramMsgLen) {
		err := s.retrier.Do(ctx, func() error {
			_, err := s.bot.Send(to, chunk, opts...)
			if isPermanent(err) {
				return retry.Permanent(err)
			}
			return err
		})
		if err != nil {
			logger.Error().Err(err).Int("chunk", i).Int("len", len(chunk)).Msg("failed to send telegram chunk")
			return err
		}
	}
	return nil
}

// render picks the parse mode. Replies with Markdown emphasis go out as
// Telegram HTML; everything else as plain text so list markers and
// line breaks survive untouched.
func render(text string) (string, []interface{}) {
	if strings.Contains(text, "*") || strings.Contains(text, "`") {
		if html := conv.MarkdownToTelegramHTML(text); html != "" {
			return html, []interface{}{tele.ModeHTML}
		}
	}
	return text, nil
}

// isPermanent reports errors a retry cannot fix: the chat is gone, the
// bot was blocked, or the request itself is invalid.
func isPermanent(err error) bool {
	if err == nil {
		return false
	}
	for _, target := range []error{tele.ErrBlockedByUser, tele.ErrChatNotFound, tele.ErrKickedFromGroup} {
		if errors.Is(err, target) {
			return true
		}
	}
	var apiErr *tele.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusBadRequest || apiErr.Code == http.StatusForbidden
	}
	return false
}

// splitMessage splits text into chunks respecting Telegram's limit.
// It tries to split at newlines to preserve formatting.
func splitMessage(text string, maxLen int) []string {
	if len(text) <= maxLen {
		return []string{text}
	}

	var chunks []string
	for len(text) > 0 {
		if len(text) <= maxLen {
			chunks = append(chunks, text)
			break
		}

		cut := maxLen
		if idx := strings.LastIndex(text[:maxLen], "\n"); idx > maxLen/3 {
			cut = idx
		} else {
			// Never cut inside a multi-byte rune.
			for cut > 0 && !utf8RuneStart(text[cut]) {
				cut--
			}
		}

		chunks = append(chunks, text[:cut])
		text = strings.TrimSpace(text[cut:])
	}
	return chunks
}

func utf8RuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
