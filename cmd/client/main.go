package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/iudanet/chirp/internal/client/api"
	"github.com/iudanet/chirp/internal/client/auth"
	"github.com/iudanet/chirp/internal/client/cli"
	"github.com/iudanet/chirp/internal/client/iocli"
	"github.com/iudanet/chirp/internal/client/notification"
	"github.com/iudanet/chirp/internal/client/profile"
	"github.com/iudanet/chirp/internal/client/session"
	"github.com/iudanet/chirp/internal/client/sideeffect"
	"github.com/iudanet/chirp/internal/client/storage/boltdb"
	"github.com/iudanet/chirp/internal/client/tweet"
	"github.com/iudanet/chirp/internal/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	cli.Version = Version
	cli.BuildTime = BuildTime

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCommand(setup)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// setup собирает зависимости клиента по конфигу и флагам
func setup(ctx context.Context, opts cli.Options) (*cli.Cli, func(), error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, nil, err
	}

	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o700); err != nil {
		return nil, nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	// Открываем BoltDB storage
	store, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	sess := session.New(store, logger)

	apiClient := api.NewClient(cfg.ServerURL,
		api.WithTransport(api.NewHTTPTransport(cfg.Timeout)),
		api.WithTokenSource(sess),
		api.WithRetryPolicy(api.RetryPolicy{
			MaxAttempts: cfg.Retry.MaxAttempts,
			BackoffBase: cfg.Retry.BackoffBase,
		}),
		api.WithLogger(logger),
	)

	effects := sideeffect.New(
		sideeffect.WithMaxConcurrent(cfg.SideEffects.MaxConcurrent),
		sideeffect.WithTimeout(cfg.SideEffects.Timeout),
		sideeffect.WithLogger(logger),
	)

	notifications := notification.NewNotificationService(apiClient, sess, logger)
	tweets := tweet.NewTweetService(apiClient, sess, store, effects, notifications, logger)

	c := cli.New(
		iocli.NewStdio(),
		auth.NewAuthService(apiClient, sess, store, logger),
		tweets,
		profile.NewProfileService(apiClient, sess, logger),
		notifications,
	)

	cleanup := func() {
		// уведомления о лайках отправляются в фоне, дожидаемся их до выхода
		tweets.Wait()
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}

	return c, cleanup, nil
}

// loadConfig читает конфиг и применяет флаги командной строки
func loadConfig(opts cli.Options) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if opts.ServerURL != "" {
		cfg.ServerURL = opts.ServerURL
	}
	if opts.DBPath != "" {
		cfg.DBPath = opts.DBPath
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
