package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/partygamehq/partygame-go/internal/api"
	"github.com/partygamehq/partygame-go/internal/factory"
	redisstorage "github.com/partygamehq/partygame-go/internal/storage/redis"
)

func main() {
	cmd := newServerCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newServerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "partygame-server",
		Short: "Party game lobby server",
		Long:  "HTTP server hosting imposter and spin-the-bottle party game lobbies.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	flags := cmd.Flags()
	flags.String("host", "", "host to bind to")
	flags.Int("port", 8080, "port to listen on")
	flags.String("storage", "memory", "storage backend (memory, redis, file)")
	flags.String("redis-url", "", "redis connection URL")
	flags.String("snapshot-path", "data/db.json", "snapshot file path for file storage")
	flags.String("wordbank-path", "data/wordbank.json", "word bank JSON file")
	flags.String("public-url", "http://localhost:8080", "externally reachable base URL")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")

	viper.SetEnvPrefix("PARTYGAME")
	viper.AutomaticEnv()
	_ = viper.BindPFlags(flags)

	return cmd
}

func run() error {
	// .env is a development convenience; absence is not an error
	_ = godotenv.Load()

	logger := newLogger(viper.GetString("log-level"))
	slog.SetDefault(logger)

	cfg := factory.Config{
		StorageType:  factory.StorageType(viper.GetString("storage")),
		SnapshotPath: viper.GetString("snapshot-path"),
		Logger:       logger,
	}

	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := viper.GetString("redis-url")
		if redisURL == "" {
			return fmt.Errorf("PARTYGAME_REDIS_URL required when storage is redis")
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = redisCfg
	}

	app, err := factory.New(cfg)
	if err != nil {
		return fmt.Errorf("creating application: %w", err)
	}

	loadWordBank(app, viper.GetString("wordbank-path"), logger)

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		Identity:       app.Identity,
		LobbyService:   app.LobbyService,
		ImposterEngine: app.ImposterEngine,
		BottleEngine:   app.BottleEngine,
		WordBank:       app.WordBank,
		PublicURL:      viper.GetString("public-url"),
	})

	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = viper.GetString("host")
	serverConfig.Port = viper.GetInt("port")
	server := api.NewServer(router, serverConfig, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
	}

	return nil
}

// loadWordBank prefers the JSON file, falling back to whatever a previous
// run persisted to storage. The server still comes up with no bank at all;
// round starts will fail until one is loaded.
func loadWordBank(app *factory.App, path string, logger *slog.Logger) {
	ctx := context.Background()

	if err := app.WordBank.LoadFromFile(ctx, path); err != nil {
		logger.Warn("could not load word bank from file",
			slog.String("path", path),
			slog.String("error", err.Error()))

		if err := app.WordBank.LoadFromStorage(ctx); err != nil {
			logger.Warn("could not load word bank from storage",
				slog.String("error", err.Error()))
		}
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
