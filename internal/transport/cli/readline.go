package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/luckteesid/luckbot/internal/config"
	"github.com/luckteesid/luckbot/internal/core"
	"github.com/luckteesid/luckbot/internal/service/reply"
	"github.com/luckteesid/luckbot/internal/service/ui"
	"github.com/luckteesid/luckbot/pkg/log"
)

const sessionID = "cli-local"

// ReadLine is a local console chat against the same responder the
// public transports use.
type ReadLine struct {
	responder core.Responder
	rl        *readline.Instance
	done      chan struct{}
}

func NewReadLine(responder core.Responder, cfg *config.AppConfig) (*ReadLine, error) {
	if err := os.MkdirAll(cfg.GetRuntimePath(), 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "kamu> ",
		HistoryFile:     filepath.Join(cfg.GetRuntimePath(), "input_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		responder: responder,
		rl:        rl,
		done:      make(chan struct{}),
	}, nil
}

func (r *ReadLine) Name() string {
	return "cli"
}

// Done is closed when the user leaves the chat.
func (r *ReadLine) Done() <-chan struct{} {
	return r.done
}

func (r *ReadLine) Start(ctx context.Context) error {
	defer close(r.done)

	logger := log.FromCtx(ctx)
	logger.Info().Msg("console chat started, type 'exit' to quit, '/start' to reset")

	return serve(ctx, r.rl.Readline, r.rl.Stdout(), r.responder)
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}

func serve(ctx context.Context, readLine func() (string, error), out io.Writer, responder core.Responder) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := readLine()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if len(line) == 0 {
					return nil
				}
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch strings.TrimSpace(line) {
		case "exit":
			return nil
		case "/start":
			responder.Reset(ctx, sessionID)
			fmt.Fprintln(out, ui.BotStyle.Render("bot> "+reply.StartReply))
			continue
		}

		text := responder.Respond(ctx, sessionID, line)
		fmt.Fprintln(out, ui.BotStyle.Render("bot> "+text))
	}
}
