package middleware_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"newlife/internal/config"
	"newlife/pkg/middleware"
)

var Module = fx.Provide(
	middleware.NewMetrics,
	provideAIRateLimiter,
	fx.Annotate(provideAuthRateLimiter, fx.ResultTags(`name:"auth"`)),
)

// provideAIRateLimiter guards the model-backed and upload routes.
func provideAIRateLimiter(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) *middleware.RateLimiter {
	return withCleanup(lc, middleware.NewRateLimiter(cfg.AIRateLimitRPS, cfg.AIRateLimitBurst, log.Named("ratelimit")))
}

// provideAuthRateLimiter is keyed by client IP on the anonymous account routes.
func provideAuthRateLimiter(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) *middleware.RateLimiter {
	return withCleanup(lc, middleware.NewRateLimiter(cfg.AuthRateLimitRPS, cfg.AuthRateLimitBurst, log.Named("ratelimit.auth")))
}

func withCleanup(lc fx.Lifecycle, rl *middleware.RateLimiter) *middleware.RateLimiter {
	stop := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			rl.StartCleanup(time.Minute, stop)
			return nil
		},
		OnStop: func(context.Context) error {
			close(stop)
			return nil
		},
	})
	return rl
}
