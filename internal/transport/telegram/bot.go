package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/luckteesid/luckbot/internal/config"
	"github.com/luckteesid/luckbot/internal/core"
	"github.com/luckteesid/luckbot/internal/service/reply"
	"github.com/luckteesid/luckbot/pkg/log"
	"github.com/luckteesid/luckbot/pkg/retry"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

type Bot struct {
	bot       *tele.Bot
	responder core.Responder
	sender    *sender
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	responder core.Responder,
) (*Bot, error) {
	logger := log.FromCtx(ctx)

	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			logger.Error().Err(err).Msg("telegram handler error")
		},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:       b,
		responder: responder,
		sender:    newSender(b, retry.NewDefaultRetrier()),
	}

	// Carry the signal-aware context with its logger into every handler.
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	b.Handle("/start", bot.handleStart)
	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Name() string {
	return "telegram"
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("username", b.bot.Me.Username).Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func sessionID(c tele.Context) string {
	return "telegram-" + strconv.FormatInt(c.Chat().ID, 10)
}

func (b *Bot) handleStart(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	b.responder.Reset(ctx, sessionID(c))
	return b.sender.send(ctx, c.Recipient(), reply.StartReply)
}

// isCommand reports slash commands. Only /start has a handler, the rest
// are ignored rather than sent to the model.
func isCommand(text string) bool {
	return strings.HasPrefix(strings.TrimSpace(text), "/")
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	id := sessionID(c)
	logger := log.FromCtx(ctx).With().Str("session", id).Logger()

	if isCommand(c.Text()) {
		logger.Debug().Str("command", c.Text()).Msg("ignoring unknown command")
		return nil
	}

	_ = c.Notify(tele.Typing)

	text := b.responder.Respond(logger.WithContext(ctx), id, c.Text())
	if err := b.sender.send(ctx, c.Recipient(), text); err != nil {
		logger.Error().Err(err).Msg("failed to deliver reply")
		return err
	}
	return nil
}
