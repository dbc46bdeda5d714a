package srv

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingService struct {
	name    string
	mu      *sync.Mutex
	order   *[]string
	started chan struct{}
}

func (r *recordingService) Name() string { return r.name }

func (r *recordingService) Start(ctx context.Context) error {
	close(r.started)
	return nil
}

func (r *recordingService) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	*r.order = append(*r.order, r.name)
	return nil
}

func TestServices_StartAndShutdownInReverseOrder(t *testing.T) {
	var mu sync.Mutex
	var order []string

	a := &recordingService{name: "a", mu: &mu, order: &order, started: make(chan struct{})}
	b := &recordingService{name: "b", mu: &mu, order: &order, started: make(chan struct{})}

	ctx, cancel := context.WithCancel(context.Background())
	StartServices(ctx, []Service{a, b})

	for _, s := range []*recordingService{a, b} {
		select {
		case <-s.started:
		case <-time.After(time.Second):
			t.Fatalf("service %s was not started", s.name)
		}
	}

	cancel()
	ShutdownServices(ctx, []Service{a, b})

	assert.Equal(t, []string{"b", "a"}, order)
}

func TestCleanup(t *testing.T) {
	called := false
	svc := NewCleanup("db", func() error {
		called = true
		return errors.New("boom")
	})

	require.NoError(t, svc.Start(context.Background()))
	err := svc.Shutdown(context.Background())
	assert.EqualError(t, err, "boom")
	assert.True(t, called)
	assert.Equal(t, "db", nameOf(svc))
}
