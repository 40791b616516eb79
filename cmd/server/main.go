package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mcoot/wordcapture/internal/api"
	"github.com/mcoot/wordcapture/internal/config"
	"github.com/mcoot/wordcapture/internal/factory"
)

func main() {
	configPath := flag.String("config", os.Getenv("WCAP_CONFIG"), "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	rules, err := cfg.Rules()
	if err != nil {
		logger.Error("invalid board rules", slog.String("error", err.Error()))
		os.Exit(1)
	}
	authCfg, err := cfg.AuthConfig()
	if err != nil {
		logger.Error("invalid auth keys", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Build factory config
	factoryCfg := factory.Config{
		DictionaryPath:  cfg.Dictionary.Path,
		Rules:           rules,
		GeneratorConfig: cfg.GeneratorConfig(),
		AuthConfig:      authCfg,
		Logger:          logger,
		StorageType:     cfg.Storage.Type,
	}
	if cfg.Storage.Type == config.StorageRedis {
		redisCfg := cfg.RedisConfig()
		factoryCfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("advisor configured",
		slog.Int("rows", rules.Rows()),
		slog.Int("cols", rules.Cols()),
		slog.Int("win_threshold", rules.WinThreshold()),
		slog.String("storage", cfg.Storage.Type),
		slog.Int("dictionary_words", app.DictionaryService.WordCount()),
		slog.Bool("auth", app.AuthService.Enabled()),
	)

	server := api.NewServer(app.Router(), cfg.ServerConfig(), logger)

	// Serve until SIGINT or SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func newLogger(cfg config.Config) *slog.Logger {
	level, _ := cfg.LogLevel()
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Log.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
