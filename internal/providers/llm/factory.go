package llm

import (
	"context"
	"fmt"

	"github.com/luckteesid/luckbot/internal/config"
	"github.com/luckteesid/luckbot/internal/core"
	"github.com/luckteesid/luckbot/pkg/log"
)

// NewProvider creates the completion client selected by configuration.
func NewProvider(ctx context.Context, cfg *config.LLMConfig) (core.Completer, error) {
	log.FromCtx(ctx).Info().
		Str("provider", cfg.Provider).
		Str("model", cfg.Model).
		Dur("timeout", cfg.Timeout).
		Msg("starting llm provider")

	switch cfg.Provider {
	case config.ProviderGroq:
		return NewGroq(cfg.APIKey, cfg.Model, cfg.Temperature, cfg.Timeout), nil
	case config.ProviderCustom:
		return NewCustomOpenAI(cfg.BaseURL, cfg.APIKey, cfg.Model, cfg.Temperature, cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
}
