package config

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/luckteesid/luckbot/pkg/log"
)

const (
	ProviderGroq   = "groq"
	ProviderCustom = "custom"
)

type LLMConfig struct {
	Provider    string        `env:"LLM_PROVIDER" envDefault:"groq"`
	APIKey      string        `env:"GROQ_API_KEY,required,notEmpty"`
	Model       string        `env:"LLM_MODEL" envDefault:"llama-3.1-8b-instant"`
	BaseURL     string        `env:"LLM_BASE_URL"`
	Temperature float64       `env:"LLM_TEMPERATURE" envDefault:"0.3"`
	Timeout     time.Duration `env:"LLM_TIMEOUT" envDefault:"30s"`
}

func ParseLLMConfig() (*LLMConfig, error) {
	c := &LLMConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}

	switch c.Provider {
	case ProviderGroq:
	case ProviderCustom:
		if c.BaseURL == "" {
			return nil, fmt.Errorf("LLM_BASE_URL is required for the %q provider", ProviderCustom)
		}
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", c.Provider)
	}
	if c.Timeout <= 0 {
		return nil, fmt.Errorf("LLM_TIMEOUT must be positive, got %s", c.Timeout)
	}
	return c, nil
}

func NewLLMConfig(ctx context.Context) *LLMConfig {
	c, err := ParseLLMConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse LLM config")
	}
	return c
}
