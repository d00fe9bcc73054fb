package middleware

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"taskflow/config"
	domainerrors "taskflow/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

// visitor tracks a rate limiter per client IP.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware enforces a per-IP token bucket.
type RateLimitMiddleware struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	ttl      time.Duration
	enabled  bool
	logger   *slog.Logger
	now      func() time.Time
}

// RateLimitParams holds dependencies for RateLimitMiddleware, injected by Fx.
type RateLimitParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
}

// NewRateLimitMiddleware creates the limiter and ties its visitor sweep to the app lifecycle.
func NewRateLimitMiddleware(params RateLimitParams) *RateLimitMiddleware {
	m := newRateLimitMiddleware(params.Cfg.RateLimit, params.Logger)
	if !m.enabled || m.ttl <= 0 {
		return m
	}

	ctx, cancel := context.WithCancel(context.Background())
	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go m.cleanupLoop(ctx)

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})

	return m
}

func newRateLimitMiddleware(cfg *config.RateLimitConfig, logger *slog.Logger) *RateLimitMiddleware {
	m := &RateLimitMiddleware{
		visitors: make(map[string]*visitor),
		logger:   logger,
		now:      time.Now,
	}
	if cfg == nil {
		return m
	}

	m.enabled = cfg.Enabled
	m.limit = rate.Limit(cfg.RPS)
	m.burst = cfg.Burst
	m.ttl = cfg.VisitorTTL

	return m
}

// Limit rejects requests from an IP that has used up its bucket with 429.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	if !m.enabled {
		return next
	}

	return func(c echo.Context) error {
		ip := c.RealIP()
		if !m.limiterFor(ip).Allow() {
			m.logger.Warn("Rate limit exceeded",
				slog.String("ip", ip),
				slog.String("path", c.Request().URL.Path),
			)

			return errors.WithStack(domainerrors.ErrTooManyRequests)
		}

		return next(c)
	}
}

func (m *RateLimitMiddleware) limiterFor(ip string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, exists := m.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(m.limit, m.burst)}
		m.visitors[ip] = v
	}
	v.lastSeen = m.now()

	return v.limiter
}

func (m *RateLimitMiddleware) cleanupLoop(ctx context.Context) {
	ticker := time.NewTicker(m.ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.cleanup()
		}
	}
}

// cleanup evicts visitors not seen within the TTL.
func (m *RateLimitMiddleware) cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for ip, v := range m.visitors {
		if now.Sub(v.lastSeen) > m.ttl {
			delete(m.visitors, ip)
		}
	}
}
