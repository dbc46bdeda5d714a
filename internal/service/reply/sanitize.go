package reply

import (
	"strings"

	"github.com/luckteesid/luckbot/internal/core"
)

var stripper = strings.NewReplacer("*", "", "<", "", ">", "")

// Sanitize removes markdown emphasis and angle brackets from model output
// so it renders as plain text on every transport.
func Sanitize(s string) string {
	return stripper.Replace(s)
}

// FormatHistory renders turns as alternating "User:"/"Bot:" lines.
func FormatHistory(turns []core.Turn) string {
	var sb strings.Builder
	for _, t := range turns {
		sb.WriteString("User: ")
		sb.WriteString(t.User)
		sb.WriteString("\nBot: ")
		sb.WriteString(t.Bot)
		sb.WriteString("\n")
	}
	return sb.String()
}
