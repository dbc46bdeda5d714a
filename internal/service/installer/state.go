package installer

// Settings is what the wizard writes to .env. Flags are strings so an
// explicit "false" is not dropped as a zero value.
type Settings struct {
	GroqAPIKey     string `env:"GROQ_API_KEY"`
	EnableTelegram string `env:"ENABLE_TELEGRAM"`
	EnableWeb      string `env:"ENABLE_WEB"`
	TelegramToken  string `env:"TELEGRAM_BOT_TOKEN"`
}

type InstallState struct {
	RuntimePath string
	Settings    Settings
}

func NewInstallState(runtimePath string) *InstallState {
	return &InstallState{
		RuntimePath: runtimePath,
	}
}

func (s *InstallState) TelegramEnabled() bool {
	return s.Settings.EnableTelegram == "true"
}
