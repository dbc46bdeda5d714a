package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/luckteesid/luckbot/pkg/log"
)

type AppConfig struct {
	RuntimePath string
	FAQPath     string `env:"FAQ_FILE"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"console"`

	// Transport flags
	EnableTelegram bool   `env:"ENABLE_TELEGRAM" envDefault:"true"`
	EnableWeb      bool   `env:"ENABLE_WEB" envDefault:"true"`
	WebAddr        string `env:"WEB_ADDR" envDefault:":5000"`

	// Conversation memory
	HistoryWindow   int           `env:"HISTORY_WINDOW" envDefault:"3"`
	HistoryMaxTurns int           `env:"HISTORY_MAX_TURNS" envDefault:"20"`
	SessionTTL      time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	SweepInterval   time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"10m"`
}

// ParseAppConfig reads the process environment.
func ParseAppConfig() (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	c.RuntimePath = GetRuntimePath()

	if c.HistoryWindow < 0 {
		return nil, fmt.Errorf("HISTORY_WINDOW must not be negative, got %d", c.HistoryWindow)
	}
	if c.HistoryMaxTurns < c.HistoryWindow {
		return nil, fmt.Errorf("HISTORY_MAX_TURNS (%d) must be at least HISTORY_WINDOW (%d)", c.HistoryMaxTurns, c.HistoryWindow)
	}
	if c.SessionTTL <= 0 || c.SweepInterval <= 0 {
		return nil, fmt.Errorf("SESSION_TTL and SESSION_SWEEP_INTERVAL must be positive")
	}
	if c.LogFormat != log.FormatConsole && c.LogFormat != log.FormatJSON {
		return nil, fmt.Errorf("unknown LOG_FORMAT %q", c.LogFormat)
	}
	return c, nil
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c, err := ParseAppConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetFAQPath() string {
	if c.FAQPath != "" {
		return c.FAQPath
	}
	return filepath.Join(c.RuntimePath, "faq.json")
}

func (c AppConfig) GetEnvPath() string {
	return filepath.Join(c.RuntimePath, ".env")
}
