package core

const (
	BotName       = "Lucktees.id"
	BotUserAgent  = "luckbot/0.1"
	RepositoryURL = "https://github.com/luckteesid/luckbot"
	Version       = "0.1.0"
)

// Turn is one completed exchange. Turns are appended and never mutated.
type Turn struct {
	User string `json:"user"`
	Bot  string `json:"bot"`
}

// FAQEntry is a keyword-triggered canned answer.
type FAQEntry struct {
	Keywords []string `json:"keywords" yaml:"keywords"`
	Answer   string   `json:"jawaban" yaml:"jawaban"`
}

// Source tells which resolution tier produced a reply.
type Source string

const (
	SourceNone     Source = ""
	SourceEmpty    Source = "empty"
	SourceFAQ      Source = "faq"
	SourceGreeting Source = "greeting"
	SourceLLM      Source = "llm"
	SourceFallback Source = "fallback"
)

// Match is the outcome of the canned-answer stage. A zero Match means
// the message must be escalated to the completion service.
type Match struct {
	Text   string
	Source Source
}

func (m Match) Matched() bool {
	return m.Source != SourceNone
}

// Reply is the final answer handed to a transport.
type Reply struct {
	Text   string
	Source Source
}
