package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	APIKey   string        `env:"GROQ_API_KEY,required,notEmpty"`
	Token    string        `env:"TELEGRAM_BOT_TOKEN"`
	Enabled  bool          `env:"ENABLE_TELEGRAM"`
	Port     int           `env:"PORT"`
	Temp     float64       `env:"LLM_TEMPERATURE"`
	Timeout  time.Duration `env:"LLM_TIMEOUT"`
	Greeting string        `env:"GREETING"`
	NoTag    string
	private  string `env:"PRIVATE"`
}

func TestMarshalEnv(t *testing.T) {
	s := &sample{
		APIKey:   "gsk_123",
		Enabled:  true,
		Temp:     0.3,
		Timeout:  30 * time.Second,
		Greeting: "halo kak",
		NoTag:    "ignored",
		private:  "ignored",
	}

	out, err := MarshalEnv(s)
	require.NoError(t, err)
	assert.Equal(t,
		"GROQ_API_KEY=gsk_123\n"+
			"ENABLE_TELEGRAM=true\n"+
			"LLM_TEMPERATURE=0.3\n"+
			"LLM_TIMEOUT=30s\n"+
			"GREETING=\"halo kak\"\n",
		out)
}

func TestMarshalEnv_Empty(t *testing.T) {
	out, err := MarshalEnv(&sample{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestMarshalEnv_RejectsNonPointer(t *testing.T) {
	_, err := MarshalEnv(sample{})
	assert.Error(t, err)
}
