package memory

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/luckteesid/luckbot/internal/core"
	"github.com/luckteesid/luckbot/pkg/log"
)

const (
	DefaultMaxTurns      = 20
	DefaultTTL           = 24 * time.Hour
	DefaultSweepInterval = 10 * time.Minute
)

type Config struct {
	// MaxTurns is how many turns a session retains. Older turns are dropped.
	MaxTurns int
	// TTL is how long an idle session survives.
	TTL time.Duration
	// SweepInterval is the janitor period.
	SweepInterval time.Duration
}

type session struct {
	turns    []core.Turn
	lastSeen time.Time
}

// Store is an in-memory, concurrency-safe turn log keyed by session id.
// It runs as a service so idle sessions are evicted in the background.
type Store struct {
	cfg Config
	now func() time.Time

	mu       sync.Mutex
	sessions map[string]*session

	stop    chan struct{}
	done    chan struct{}
	once    sync.Once
	started atomic.Bool
}

var ErrAlreadyStarted = errors.New("session janitor already started")

func NewStore(cfg Config) *Store {
	if cfg.MaxTurns <= 0 {
		cfg.MaxTurns = DefaultMaxTurns
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = DefaultSweepInterval
	}
	return &Store{
		cfg:      cfg,
		now:      time.Now,
		sessions: make(map[string]*session),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (s *Store) Name() string {
	return "memory"
}

// Append records a turn, creating the session on first use.
func (s *Store) Append(sessionID string, turn core.Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &session{}
		s.sessions[sessionID] = sess
	}

	sess.turns = append(sess.turns, turn)
	if over := len(sess.turns) - s.cfg.MaxTurns; over > 0 {
		// Copy so the dropped prefix can be collected.
		sess.turns = append([]core.Turn(nil), sess.turns[over:]...)
	}
	sess.lastSeen = s.now()
}

// Recent returns up to n of the latest turns, oldest first.
func (s *Store) Recent(sessionID string, n int) []core.Turn {
	if n <= 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil
	}

	turns := sess.turns
	if len(turns) > n {
		turns = turns[len(turns)-n:]
	}
	out := make([]core.Turn, len(turns))
	copy(out, turns)
	return out
}

// Reset forgets a session.
func (s *Store) Reset(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Evict drops sessions idle for longer than the TTL and returns how many
// were removed.
func (s *Store) Evict(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.cfg.TTL {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Start runs the eviction janitor until Shutdown or ctx is done. A store
// runs at most one janitor; later calls return ErrAlreadyStarted.
func (s *Store) Start(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}
	logger := log.FromCtx(ctx)
	logger.Info().
		Int("max_turns", s.cfg.MaxTurns).
		Dur("ttl", s.cfg.TTL).
		Msg("starting session janitor")

	ticker := time.NewTicker(s.cfg.SweepInterval)
	defer ticker.Stop()
	defer close(s.done)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stop:
			return nil
		case <-ticker.C:
			if n := s.Evict(s.now()); n > 0 {
				logger.Debug().Int("evicted", n).Int("live", s.Len()).Msg("evicted idle sessions")
			}
		}
	}
}

func (s *Store) Shutdown(ctx context.Context) error {
	s.once.Do(func() { close(s.stop) })
	if !s.started.Load() {
		return nil
	}
	select {
	case <-s.done:
	case <-ctx.Done():
	case <-time.After(time.Second):
	}
	return nil
}
