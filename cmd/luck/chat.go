package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/luckteesid/luckbot/internal/transport/cli"
	"github.com/luckteesid/luckbot/pkg/log"
	"github.com/luckteesid/luckbot/pkg/srv"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the bot in the terminal",
	Long:  `Runs the reply pipeline against a local console session. Telegram and the web server are not started.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)

		cfg, chat, services := newPipeline(ctx)

		console, err := cli.NewReadLine(chat, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize console")
		}
		services = append(services, console)

		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		srv.StartServices(ctx, services)
		go func() {
			<-console.Done()
			cancel()
		}()

		srv.ShutdownServices(ctx, services)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
