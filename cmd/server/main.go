package main // Entry point package

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/iliyamo/cinema-booking/internal/admin"
	"github.com/iliyamo/cinema-booking/internal/booking"
	"github.com/iliyamo/cinema-booking/internal/catalog"
	"github.com/iliyamo/cinema-booking/internal/config"
	"github.com/iliyamo/cinema-booking/internal/database"
	"github.com/iliyamo/cinema-booking/internal/fixture"
	"github.com/iliyamo/cinema-booking/internal/handler"
	"github.com/iliyamo/cinema-booking/internal/logger"
	"github.com/iliyamo/cinema-booking/internal/middleware"
	"github.com/iliyamo/cinema-booking/internal/queue"
	"github.com/iliyamo/cinema-booking/internal/repository"
	"github.com/iliyamo/cinema-booking/internal/router"
	"github.com/iliyamo/cinema-booking/internal/service"
	"github.com/iliyamo/cinema-booking/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := loadCatalog(ctx, cfg)
	if err != nil {
		return err
	}
	log.Info("catalog loaded",
		zap.String("source", cfg.CatalogSource),
		zap.Int("movies", len(c.Movies())),
		zap.Int("schedules", len(c.Schedules())))

	// Redis is optional unless it backs session storage.
	rdb, err := config.NewRedisClient(ctx)
	if err != nil {
		if cfg.Storage == config.StorageRedis {
			return err
		}
		log.Warn("redis unavailable; cache off, in-process rate limiting", zap.Error(err))
	} else {
		defer func() { _ = rdb.Close() }()
	}

	var kv store.KV = store.NewMemoryKV()
	if cfg.Storage == config.StorageRedis {
		kv = store.NewRedisKV(rdb, "session", cfg.SessionTTL)
	}

	var opts []store.OrderOption
	if cfg.PublishOrders {
		pub := service.NewPublisher(cfg.RabbitURL, log.Named("publisher"))
		defer func() { _ = pub.Close() }()
		opts = append(opts, store.WithPublisher(pub))
	}
	if cfg.ConsumeOrders {
		go func() {
			if err := queue.StartOrderConsumer(ctx, cfg.RabbitURL, cfg.OrderLogDir, log.Named("consumer")); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("order consumer stopped", zap.Error(err))
			}
		}()
	}

	q := catalog.New(c)
	flows := booking.NewRegistry(q, log.Named("booking"))
	sessions := store.NewSessions(kv, c, log.Named("store"), opts...)
	flows.SetIdleTTL(cfg.SessionIdle)
	sessions.SetIdleTTL(cfg.SessionIdle)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(log.Named("http")))

	// A nil *redis.Client must reach the middleware as a nil interface.
	var scripter redis.Scripter
	var cmdable redis.Cmdable
	if rdb != nil {
		scripter, cmdable = rdb, rdb
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), scripter, log.Named("ratelimit")))
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), cmdable, log.Named("cache"))

	router.RegisterRoutes(e)
	router.RegisterPublic(e, handler.NewPublicHandler(q), cache)
	router.RegisterSession(e, router.SessionHandlers{
		Session: handler.NewSessionHandler(flows, sessions),
		Auth:    handler.NewAuthHandler(cfg, c, sessions, log.Named("auth")),
		Booking: handler.NewBookingHandler(flows, sessions, log.Named("booking")),
		Account: handler.NewAccountHandler(q, sessions),
	})
	router.RegisterAdmin(e, handler.NewAdminHandler(admin.New(c)), cfg.JWTSecret)

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func loadCatalog(ctx context.Context, cfg config.Config) (*repository.Catalog, error) {
	if cfg.CatalogSource != config.CatalogMySQL {
		return fixture.Catalog(), nil
	}
	db, err := database.Open(ctx, cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return repository.LoadCatalog(ctx, db)
}
