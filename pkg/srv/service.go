package srv

import (
	"context"
	"fmt"

	"github.com/luckteesid/luckbot/pkg/log"
)

// Service is a long-running component started with the process and
// stopped on shutdown.
type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// Named lets a service pick its own name for log lines.
type Named interface {
	Name() string
}

func nameOf(s Service) string {
	if n, ok := s.(Named); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", s)
}

// StartServices launches every service in its own goroutine. A failing
// Start is fatal.
func StartServices(ctx context.Context, services []Service) {
	logger := log.FromCtx(ctx)
	for _, service := range services {
		go func(service Service) {
			if err := service.Start(ctx); err != nil {
				logger.Fatal().Err(err).Str("service", nameOf(service)).Msg("service failed to start")
			}
		}(service)
	}
}

// ShutdownServices blocks until ctx is done, then stops services in
// reverse order so transports stop before the stores they use.
func ShutdownServices(ctx context.Context, services []Service) {
	<-ctx.Done()
	logger := log.FromCtx(ctx)
	for i := len(services) - 1; i >= 0; i-- {
		service := services[i]
		if err := service.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Error().Err(err).Str("service", nameOf(service)).Msg("service failed to shutdown")
		}
	}
}
