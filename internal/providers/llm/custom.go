package llm

import (
	"time"

	"github.com/luckteesid/luckbot/internal/core"
)

// CustomOpenAI talks to any OpenAI-compatible endpoint, e.g. a gateway
// in front of Groq or a self-hosted model.
type CustomOpenAI struct {
	*OpenAICompatible
}

func NewCustomOpenAI(baseURL, apiKey, model string, temperature float64, timeout time.Duration) *CustomOpenAI {
	return &CustomOpenAI{
		OpenAICompatible: NewOpenAICompatible(OpenAICompatibleConfig{
			Name:        "custom",
			BaseURL:     baseURL,
			APIKey:      apiKey,
			Model:       model,
			Temperature: temperature,
			Timeout:     timeout,
			AuthHeader:  "Authorization",
			AuthPrefix:  "Bearer ",
			ExtraHeaders: map[string]string{
				"X-Title": core.BotName,
			},
		}),
	}
}
