package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/luckteesid/luckbot/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func turn(i int) core.Turn {
	return core.Turn{User: fmt.Sprintf("u%d", i), Bot: fmt.Sprintf("b%d", i)}
}

func TestStore_RecentReturnsLastTurnsInOrder(t *testing.T) {
	s := NewStore(Config{})
	for i := 1; i <= 5; i++ {
		s.Append("chat-1", turn(i))
	}

	assert.Equal(t, []core.Turn{turn(3), turn(4), turn(5)}, s.Recent("chat-1", 3))
}

func TestStore_Recent(t *testing.T) {
	s := NewStore(Config{})
	s.Append("a", turn(1))
	s.Append("a", turn(2))

	assert.Equal(t, []core.Turn{turn(1), turn(2)}, s.Recent("a", 3), "shorter history returns everything")
	assert.Nil(t, s.Recent("unknown", 3))
	assert.Nil(t, s.Recent("a", 0))
}

func TestStore_RecentIsACopy(t *testing.T) {
	s := NewStore(Config{})
	s.Append("a", turn(1))

	got := s.Recent("a", 1)
	got[0].Bot = "mutated"

	assert.Equal(t, "b1", s.Recent("a", 1)[0].Bot)
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	s := NewStore(Config{})
	s.Append("a", turn(1))
	s.Append("b", turn(2))

	assert.Equal(t, []core.Turn{turn(1)}, s.Recent("a", 3))
	assert.Equal(t, []core.Turn{turn(2)}, s.Recent("b", 3))
	assert.Equal(t, 2, s.Len())
}

func TestStore_MaxTurns(t *testing.T) {
	s := NewStore(Config{MaxTurns: 4})
	for i := 1; i <= 10; i++ {
		s.Append("a", turn(i))
	}

	assert.Equal(t, []core.Turn{turn(7), turn(8), turn(9), turn(10)}, s.Recent("a", 100))
}

func TestStore_Reset(t *testing.T) {
	s := NewStore(Config{})
	s.Append("a", turn(1))
	s.Reset("a")

	assert.Nil(t, s.Recent("a", 3))
	assert.Equal(t, 0, s.Len())

	s.Reset("never-seen")
}

func TestStore_Evict(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewStore(Config{TTL: time.Hour})
	s.now = func() time.Time { return now }

	s.Append("old", turn(1))
	now = now.Add(50 * time.Minute)
	s.Append("fresh", turn(2))

	removed := s.Evict(now.Add(20 * time.Minute))
	assert.Equal(t, 1, removed)
	assert.Nil(t, s.Recent("old", 3))
	assert.Equal(t, []core.Turn{turn(2)}, s.Recent("fresh", 3))
}

func TestStore_ConcurrentAppend(t *testing.T) {
	s := NewStore(Config{MaxTurns: 1000})

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			id := fmt.Sprintf("chat-%d", w%4)
			for i := 0; i < 100; i++ {
				s.Append(id, turn(i))
				_ = s.Recent(id, 3)
			}
		}(w)
	}
	wg.Wait()

	total := 0
	for i := 0; i < 4; i++ {
		total += len(s.Recent(fmt.Sprintf("chat-%d", i), 1000))
	}
	assert.Equal(t, 800, total, "no appends may be lost")
}

func TestStore_JanitorLifecycle(t *testing.T) {
	s := NewStore(Config{TTL: time.Millisecond, SweepInterval: 5 * time.Millisecond})
	s.Append("a", turn(1))

	ctx := context.Background()
	errc := make(chan error, 1)
	go func() { errc <- s.Start(ctx) }()

	require.Eventually(t, func() bool { return s.Len() == 0 }, time.Second, 5*time.Millisecond)
	assert.ErrorIs(t, s.Start(ctx), ErrAlreadyStarted)

	require.NoError(t, s.Shutdown(ctx))
	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}

func TestStore_ShutdownWithoutStart(t *testing.T) {
	s := NewStore(Config{})

	start := time.Now()
	require.NoError(t, s.Shutdown(context.Background()))
	require.NoError(t, s.Shutdown(context.Background()))
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}
