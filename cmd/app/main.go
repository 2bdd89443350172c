package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"newlife/cmd/fx/account_fx"
	"newlife/cmd/fx/ai_fx"
	"newlife/cmd/fx/config_fx"
	"newlife/cmd/fx/controllers_fx"
	"newlife/cmd/fx/db_fx"
	"newlife/cmd/fx/destination_fx"
	"newlife/cmd/fx/expense_fx"
	"newlife/cmd/fx/itinerary_fx"
	"newlife/cmd/fx/logger_fx"
	"newlife/cmd/fx/mail_fx"
	"newlife/cmd/fx/media_fx"
	"newlife/cmd/fx/memcache_fx"
	"newlife/cmd/fx/middleware_fx"
	"newlife/cmd/fx/places_fx"
	"newlife/cmd/fx/post_fx"
	"newlife/cmd/fx/recommendation_fx"
	"newlife/cmd/fx/trip_fx"
	"newlife/cmd/fx/weather_fx"
	"newlife/internal/config"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		ai_fx.Module,
		account_fx.Module,
		trip_fx.Module,
		expense_fx.Module,
		itinerary_fx.Module,
		recommendation_fx.Module,
		places_fx.Module,
		destination_fx.Module,
		weather_fx.Module,
		media_fx.Module,
		post_fx.Module,
		middleware_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
		// itinerary generation waits on the model
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("starting HTTP server", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("http server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
