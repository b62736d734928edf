package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/iliyamo/hotel-reservation/internal/config"
	"github.com/iliyamo/hotel-reservation/internal/handler"
	"github.com/iliyamo/hotel-reservation/internal/middleware"
	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/queue"
	"github.com/iliyamo/hotel-reservation/internal/repository"
	"github.com/iliyamo/hotel-reservation/internal/router"
	"github.com/iliyamo/hotel-reservation/internal/service"
)

func main() {
	// .env is optional; real environment variables win.
	envErr := godotenv.Load()

	cfg := config.Load()
	logger, err := config.NewLogger(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	if envErr != nil {
		logger.Debug(".env not loaded; using process environment", zap.Error(envErr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Registries and their id sequences live for the lifetime of the process.
	hotels := repository.NewHotelRepo(model.NewIDSequence())
	customers := repository.NewCustomerRepo(model.NewIDSequence())

	var publisher service.EventPublisher
	if cfg.EventsEnabled {
		publisher = service.NewAMQPPublisher(cfg.AMQPURL)
	}
	reservations := service.NewReservationService(hotels, publisher, logger.Named("reservations"))

	if cfg.ConsumerEnabled {
		consumer := queue.NewConsumer(cfg.AMQPURL, cfg.EventLogDir, logger.Named("consumer"))
		go func() {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("reservation consumer stopped", zap.Error(err))
			}
		}()
	}

	rdb := config.NewRedisClient(logger)
	cacheCfg := config.LoadCacheConfig()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(requestLogger(logger))

	// The limiter is attached per route group rather than with e.Use so that
	// it runs after JWTAuth on staff routes and can key on the user.
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	hotelHandler := handler.NewHotelHandler(hotels, reservations)
	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg), cfg.JWTSecret, limiter)
	router.RegisterPublic(e, hotelHandler, limiter, middleware.NewRedisCache(cacheCfg, rdb))
	router.RegisterStaff(e, hotelHandler, handler.NewCustomerHandler(customers), cfg.JWTSecret,
		limiter, middleware.PurgeCacheOnWrite(cacheCfg, rdb))

	e.Server.ReadTimeout = 10 * time.Second
	e.Server.ReadHeaderTimeout = 5 * time.Second
	e.Server.WriteTimeout = 20 * time.Second
	e.Server.IdleTimeout = 60 * time.Second

	addr := ":" + cfg.Port
	go func() {
		logger.Info("listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	logger.Info("server stopped")
}

// requestLogger routes echo's request log through zap.
func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("remote_ip", v.RemoteIP),
			}
			if v.Error != nil {
				logger.Error("request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			logger.Info("request", fields...)
			return nil
		},
	})
}
