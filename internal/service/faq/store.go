package faq

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/luckteesid/luckbot/internal/core"
	"github.com/luckteesid/luckbot/pkg/log"
	"gopkg.in/yaml.v3"
)

// LoadError is returned when the FAQ file is missing, unreadable or
// malformed.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load faq %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Store is an ordered, immutable list of FAQ entries. Earlier entries
// win when several match.
type Store struct {
	entries []core.FAQEntry
	skipped int
}

// NewStore loads path and never fails: a broken or missing file is
// logged and yields an empty store, so every lookup is a miss.
func NewStore(ctx context.Context, path string) *Store {
	logger := log.FromCtx(ctx)

	s, err := Load(path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("faq unavailable, continuing without canned answers")
		return &Store{}
	}

	if s.Skipped() > 0 {
		logger.Warn().Str("path", path).Int("skipped", s.Skipped()).Msg("faq entries without keywords or answer were skipped")
	}
	logger.Info().Str("path", path).Int("entries", s.Len()).Msg("faq loaded")
	return s
}

// Load reads a JSON file, or YAML when the extension says so.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	var raw []core.FAQEntry
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	return New(raw), nil
}

// New builds a store from entries. Keywords are lowercased, blank
// keywords are dropped, and entries left without keywords or with a
// blank answer are skipped.
func New(entries []core.FAQEntry) *Store {
	s := &Store{entries: make([]core.FAQEntry, 0, len(entries))}
	for _, e := range entries {
		keywords := make([]string, 0, len(e.Keywords))
		for _, k := range e.Keywords {
			if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
				keywords = append(keywords, k)
			}
		}
		if len(keywords) == 0 || strings.TrimSpace(e.Answer) == "" {
			s.skipped++
			continue
		}
		s.entries = append(s.entries, core.FAQEntry{Keywords: keywords, Answer: e.Answer})
	}
	return s
}

// Lookup returns the answer of the first entry with a keyword contained
// in message. Matching is plain substring containment, so "hi" also
// matches "history".
func (s *Store) Lookup(message string) (string, bool) {
	msg := strings.ToLower(message)
	for _, e := range s.entries {
		for _, k := range e.Keywords {
			if strings.Contains(msg, k) {
				return e.Answer, true
			}
		}
	}
	return "", false
}

func (s *Store) Len() int {
	return len(s.entries)
}

// Skipped is how many entries New dropped as unusable.
func (s *Store) Skipped() int {
	return s.skipped
}
