package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/luckteesid/luckbot/internal/config"
	"github.com/luckteesid/luckbot/internal/providers/llm"
	"github.com/luckteesid/luckbot/internal/service/faq"
	"github.com/luckteesid/luckbot/internal/service/memory"
	"github.com/luckteesid/luckbot/internal/service/reply"
	"github.com/luckteesid/luckbot/internal/transport/telegram"
	"github.com/luckteesid/luckbot/internal/transport/web"
	"github.com/luckteesid/luckbot/pkg/log"
	"github.com/luckteesid/luckbot/pkg/srv"
)

// NewServices builds the reply pipeline and the enabled transports.
func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)

	cfg, chat, services := newPipeline(ctx)

	transports, err := initTransports(ctx, cfg, chat)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize transports")
	}
	if len(transports) == 0 {
		logger.Fatal().Msg("no transport enabled, set ENABLE_TELEGRAM or ENABLE_WEB")
	}

	return append(services, transports...)
}

// newPipeline wires config, FAQ, completion client and session memory
// into a Chat. The returned services must be started before use.
func newPipeline(ctx context.Context) (*config.AppConfig, *reply.Chat, []srv.Service) {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	if err := initEnv(ctx, config.AppConfig{RuntimePath: config.GetRuntimePath()}.GetEnvPath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	llmCfg := config.NewLLMConfig(ctx)

	// 2. FAQ table
	faqStore := faq.NewStore(ctx, appCfg.GetFAQPath())

	// 3. Completion client
	completer, err := llm.NewProvider(ctx, llmCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize LLM provider")
	}

	// 4. Session memory
	sessions := memory.NewStore(memory.Config{
		MaxTurns:      appCfg.HistoryMaxTurns,
		TTL:           appCfg.SessionTTL,
		SweepInterval: appCfg.SweepInterval,
	})
	services = append(services, sessions)

	// 5. Reply pipeline
	resolver := reply.NewResolver(faqStore, completer, appCfg.HistoryWindow)
	chat := reply.NewChat(resolver, sessions)

	return appCfg, chat, services
}

func initTransports(ctx context.Context, cfg *config.AppConfig, chat *reply.Chat) ([]srv.Service, error) {
	var services []srv.Service

	if cfg.EnableTelegram {
		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg, chat)
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	}

	if cfg.EnableWeb {
		services = append(services, web.NewServer(ctx, cfg.WebAddr, chat))
	}

	return services, nil
}

func initEnv(ctx context.Context, envFile string) error {
	logger := log.FromCtx(ctx)

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
