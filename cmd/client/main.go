package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/iudanet/stocktake/internal/client/api"
	"github.com/iudanet/stocktake/internal/client/cli"
	"github.com/iudanet/stocktake/internal/client/config"
	"github.com/iudanet/stocktake/internal/client/export"
	"github.com/iudanet/stocktake/internal/client/iocli"
	"github.com/iudanet/stocktake/internal/client/storage/boltdb"
	"github.com/iudanet/stocktake/internal/client/sync"
	"github.com/iudanet/stocktake/internal/lowstock"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// closeTimeout ограничивает ожидание последней записи при выходе
const closeTimeout = 20 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	// Глобальные флаги
	configPath := flag.String("config", "", "Path to config file (default: "+config.DefaultPath+")")
	serverURL := flag.String("server", "", "Server URL (overrides config)")
	dbPath := flag.String("db", "", "Path to local cache database (overrides config)")
	docID := flag.String("doc", "", "Inventory document id (overrides config)")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Usage = func() { cli.PrintUsage(os.Stderr) }
	flag.Parse()

	if *showVersion {
		printVersion()
		return 0
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage(os.Stderr)
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if *serverURL != "" {
		cfg.Server = *serverURL
	}
	if *dbPath != "" {
		cfg.DB = *dbPath
	}
	if *docID != "" {
		cfg.Document = *docID
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	// Ctrl+C прерывает watch и ожидание сети
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := execute(ctx, cfg, logger, args[0], args[1:]); err != nil {
		logger.Error("Command failed", "command", args[0], "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, cli.ErrUsage) || errors.Is(err, cli.ErrUnknownCommand) {
			return 2
		}
		return 1
	}
	return 0
}

func execute(ctx context.Context, cfg config.Config, logger *slog.Logger, command string, args []string) error {
	opts, err := cfg.SyncOptions()
	if err != nil {
		return err
	}
	rule, err := lowstock.Compile(cfg.LowStockRule)
	if err != nil {
		return err
	}

	dbPath, err := config.ExpandPath(cfg.DB)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	boltStorage, err := boltdb.New(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to open local cache: %w", err)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("Failed to close local cache", "error", err)
		}
	}()

	exportDir, err := config.ExpandPath(cfg.ExportDir)
	if err != nil {
		return err
	}

	// Один origin на процесс, чтобы отличать свои события от чужих
	origin := uuid.NewString()
	apiClient := api.NewClient(cfg.Server,
		api.WithAPIKey(cfg.APIKey),
		api.WithOrigin(origin))

	app := cli.New(iocli.NewStdio(), nil, rule)

	opts.Logger = logger
	opts.Origin = origin
	opts.Exporter = export.NewCSVExporter(exportDir)
	opts.OnChange = app.OnChange

	synchronizer := sync.New(apiClient, boltStorage, opts)
	app.SetInventory(synchronizer)

	res, err := synchronizer.Load(ctx)
	if err != nil {
		return err
	}
	if res.Source != sync.SourceRemote && !errors.Is(res.RemoteErr, api.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "⚠️  Server unavailable (%v), using %s data\n", res.RemoteErr, res.Source)
	}

	runErr := app.Run(ctx, command, args)

	// Закрытие дожидается отложенной записи; прерванный контекст не должен ее отменить
	closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), closeTimeout)
	defer cancel()
	if err := synchronizer.Close(closeCtx); err != nil {
		logger.Warn("Unsaved changes remain in local cache", "error", err)
		if runErr == nil {
			fmt.Fprintf(os.Stderr, "⚠️  Changes kept locally, not yet saved to server: %v\n", err)
		}
	}

	return runErr
}

// newLogger пишет логи в файл с ротацией, чтобы не мешать выводу команд
func newLogger(cfg config.Config) (*slog.Logger, func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, nil, fmt.Errorf("invalid log_level %q: %w", cfg.LogLevel, err)
	}

	if strings.TrimSpace(cfg.LogFile) == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}

	path, err := config.ExpandPath(cfg.LogFile)
	if err != nil {
		return nil, nil, err
	}

	var w io.WriteCloser = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     30, // days
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = w.Close() }, nil
}

func printVersion() {
	fmt.Printf("Stocktake Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
