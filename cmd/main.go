package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/loganlanou/academy/internal/boundary"
	"github.com/loganlanou/academy/internal/content"
	"github.com/loganlanou/academy/internal/jobs"
	"github.com/loganlanou/academy/internal/logging"
	"github.com/loganlanou/academy/internal/metrics"
	"github.com/loganlanou/academy/internal/middleware"
	"github.com/loganlanou/academy/internal/session"
	"github.com/loganlanou/academy/service"
	"github.com/loganlanou/academy/storage"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server failed", logging.Err(err))
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	config, err := service.LoadConfig()
	if err != nil {
		return err
	}
	if err := configureLogging(config.Environment, config.LogLevel); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	var reporter boundary.Reporter = boundary.SlogReporter{}
	if config.RollbarToken != "" {
		rb := boundary.NewRollbarReporter(config.RollbarToken, config.Environment, codeVersion())
		defer rb.Close()
		reporter = boundary.Multi(reporter, rb)
		slog.Info("rollbar error reporting enabled")
	}

	store, closeStore, err := newSessionStore(ctx, config)
	if err != nil {
		return err
	}
	defer closeStore()
	sessions := session.NewManager(config.SessionSecret, store, config.IsProduction())

	source, reloader, closeSource, err := newContentSource(config, m)
	if err != nil {
		return err
	}
	defer closeSource()

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	svc := service.New(config, source, sessions, m, reporter)
	e.HTTPErrorHandler = svc.HTTPErrorHandler

	// Middleware
	e.Pre(middleware.PathRewrite())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RequestLog())
	e.Use(middleware.Metrics(m))
	e.Use(middleware.Viewport())
	if config.IsDevelopment() {
		e.Use(middleware.Timing())
	}

	svc.RegisterRoutes(e)

	g, gctx := errgroup.WithContext(ctx)

	if reloader != nil {
		reloader.Start(gctx)
		defer reloader.Stop()
	}

	addr := fmt.Sprintf(":%s", config.Port)
	g.Go(func() error {
		slog.Info("academy site starting",
			"url", config.BaseURL,
			"port", config.Port,
			"environment", config.Environment,
			"content_source", config.ContentSource,
			"session_store", config.SessionStore,
		)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newSessionStore(ctx context.Context, config *service.Config) (session.Store, func(), error) {
	if config.SessionStore != service.StoreRedis {
		return session.NewMemoryStore(), func() {}, nil
	}

	store, err := session.NewRedisStore(ctx, session.RedisOptions{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
		DB:       config.RedisDB,
		TTL:      config.SessionTTL,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect session store: %w", err)
	}
	slog.Info("using redis session store", "addr", config.RedisAddr)
	return store, func() {
		if err := store.Close(); err != nil {
			slog.Warn("failed to close session store", logging.Err(err))
		}
	}, nil
}

// newContentSource opens the configured content source. The reloader is
// only returned for the file source.
func newContentSource(config *service.Config, m *metrics.Metrics) (content.Source, *jobs.ContentReloader, func(), error) {
	switch config.ContentSource {
	case service.ContentFile:
		fs, err := content.NewFileSource(config.ContentPath)
		if err != nil {
			return nil, nil, nil, err
		}
		reloader := jobs.NewContentReloader(fs, config.ContentPollInterval, config.ContentReloadDelay, m)
		return fs, reloader, func() {}, nil

	case service.ContentSQLite:
		db, err := storage.New(config.DBPath)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return storage.NewContentSource(db), nil, func() { db.Close() }, nil

	default:
		return content.NewStatic(), nil, func() {}, nil
	}
}

func codeVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "dev"
}
