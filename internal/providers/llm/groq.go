package llm

import "time"

const groqBaseURL = "https://api.groq.com/openai"

// Groq is the hosted completion service the bot runs on by default.
type Groq struct {
	*OpenAICompatible
}

func NewGroq(apiKey, model string, temperature float64, timeout time.Duration) *Groq {
	return &Groq{
		OpenAICompatible: NewOpenAICompatible(OpenAICompatibleConfig{
			Name:        "groq",
			BaseURL:     groqBaseURL,
			APIKey:      apiKey,
			Model:       model,
			Temperature: temperature,
			Timeout:     timeout,
			AuthHeader:  "Authorization",
			AuthPrefix:  "Bearer ",
		}),
	}
}
