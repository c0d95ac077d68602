package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/iudanet/stocktake/internal/server/config"
	"github.com/iudanet/stocktake/internal/server/handlers"
	"github.com/iudanet/stocktake/internal/server/middleware"
	"github.com/iudanet/stocktake/internal/server/notify"
	"github.com/iudanet/stocktake/internal/server/storage"
	"github.com/iudanet/stocktake/internal/server/storage/mysql"
	"github.com/iudanet/stocktake/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// store объединяет все возможности хранилища, нужные серверу
type store interface {
	storage.StateStorage
	storage.HistoryStorage
	Ping(ctx context.Context) error
	Close() error
}

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(os.Args[1:], os.Getenv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "stocktake-server: %v\n", err)
		return 2
	}

	if cfg.ShowVersion {
		printVersion()
		return 0
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := serve(ctx, cfg, logger); err != nil {
		logger.Error("Server stopped with error", "error", err)
		return 1
	}
	logger.Info("Server stopped")
	return 0
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	db, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database", "error", err)
		}
	}()
	logger.Info("Database ready", "driver", cfg.Driver)

	g, ctx := errgroup.WithContext(ctx)

	var broker notify.Broker
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer func() { _ = rdb.Close() }()

		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("failed to connect redis: %w", err)
		}
		relay := notify.NewRedisBroker(rdb, logger)
		g.Go(func() error {
			return relay.Run(ctx)
		})
		broker = relay
		logger.Info("Using Redis change relay", "addr", cfg.RedisAddr)
	} else {
		broker = notify.NewHub(logger)
	}

	limiter := middleware.NewRateLimiter(cfg.WriteRateLimit, time.Minute)
	defer limiter.Stop()

	mux := http.NewServeMux()
	handlers.Routes{
		Health:  handlers.NewHealthHandler(logger, db, Version),
		State:   handlers.NewStateHandler(logger, db, broker),
		Events:  handlers.NewEventsHandler(logger, broker),
		History: handlers.NewHistoryHandler(logger, db),
	}.Register(mux)

	const healthPath = "/api/v1/health"
	srv := &http.Server{
		Addr: cfg.Addr,
		Handler: middleware.Chain(mux,
			middleware.RecoveryMiddleware(logger),
			middleware.LoggingMiddleware(logger, healthPath),
			middleware.APIKeyMiddleware(logger, cfg.APIKey, healthPath),
			middleware.WriteRateLimitMiddleware(limiter, logger),
		),
		ReadHeaderTimeout: 10 * time.Second,
		// WriteTimeout не задаем: SSE соединения живут долго
		BaseContext: func(_ net.Listener) context.Context { return ctx },
	}

	g.Go(func() error {
		logger.Info("Starting HTTP server", "addr", cfg.Addr, "version", Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		logger.Info("Shutting down HTTP server")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func openStore(ctx context.Context, cfg *config.Config) (store, error) {
	switch cfg.Driver {
	case config.DriverMySQL:
		return mysql.New(ctx, cfg.DSN)
	default:
		return sqlite.New(ctx, cfg.DSN)
	}
}

func printVersion() {
	fmt.Printf("Stocktake Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
