// Package worker contains background deliveries that run beside the API server.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"taskflow/config"
	"taskflow/internal/delivery"
	"taskflow/internal/domain/lifecycle"
	"taskflow/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type sessionSweeper struct {
	interval  time.Duration
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
	done     chan struct{}
}

// ServerParams holds dependencies for the session sweeper
type ServerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	SessionUC usecase.SessionUsecase
}

// NewServer creates the worker that periodically removes expired sessions
func NewServer(params ServerParams) (delivery.Delivery, error) {
	var interval time.Duration
	if params.Cfg.Session != nil {
		interval = params.Cfg.Session.CleanupInterval
	}

	srv := newSessionSweeper(interval, params.SessionUC, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newSessionSweeper(interval time.Duration, sessionUC usecase.SessionUsecase, logger *slog.Logger) *sessionSweeper {
	return &sessionSweeper{
		interval:  interval,
		sessionUC: sessionUC,
		logger:    logger,
		stopCh:    make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Serve sweeps on every tick until ctx ends or the app stops. The first sweep
// runs one interval after start.
// A non-positive interval disables the sweeper.
func (s *sessionSweeper) Serve(ctx context.Context) error {
	defer close(s.done)

	if s.interval <= 0 {
		s.logger.Info("Session sweeper disabled")

		return nil
	}

	s.logger.Info("Starting session sweeper", slog.Duration("interval", s.interval))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stopCh:
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *sessionSweeper) sweep(ctx context.Context) {
	// Errors are logged by the usecase; the next tick retries.
	_, _ = s.sessionUC.CleanupExpiredSessions(ctx)
}

// stop signals the loop and waits for the sweep in flight to finish
func (s *sessionSweeper) stop(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stopCh) })

	waitCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down session sweeper")

	select {
	case <-s.done:
		return nil
	case <-waitCtx.Done():
		return errors.Wrap(waitCtx.Err(), "session sweeper did not stop")
	}
}
