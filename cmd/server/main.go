package main

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/studysync/internal/config"
	"github.com/iudanet/studysync/internal/server"
	"github.com/iudanet/studysync/internal/server/handlers"
	"github.com/iudanet/studysync/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	config.LoadDotenv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// serverFlags переопределения конфигурации из командной строки
type serverFlags struct {
	configPath string
	host       string
	dbPath     string
	port       int
}

func newRootCommand() *cobra.Command {
	var flags serverFlags

	root := &cobra.Command{
		Use:           "studysync-sandbox",
		Short:         "Local implementation of the study platform API for development",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, newLogger(cfg.Log))
		},
	}
	root.SetVersionTemplate(versionText())

	root.Flags().StringVar(&flags.configPath, "config", "", "path to sandbox config file (YAML)")
	root.Flags().StringVar(&flags.host, "host", "", "listen host")
	root.Flags().IntVar(&flags.port, "port", 0, "listen port")
	root.Flags().StringVar(&flags.dbPath, "db", "", "SQLite database path (:memory: for a throwaway sandbox)")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), versionText())
		},
	})

	return root
}

// loadConfig читает файл и окружение, затем применяет явно заданные флаги
func loadConfig(cmd *cobra.Command, flags serverFlags) (config.Server, error) {
	cfg, err := config.LoadServer(flags.configPath)
	if err != nil {
		return config.Server{}, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("host") {
		cfg.Listen.Host = flags.host
	}
	if cmd.Flags().Changed("port") {
		cfg.Listen.Port = flags.port
	}
	if cmd.Flags().Changed("db") {
		cfg.DB.Path = flags.dbPath
	}

	return cfg, nil
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
}

// jwtSecret возвращает секрет из конфигурации или генерирует случайный.
// Случайный секрет делает недействительными все токены после перезапуска
func jwtSecret(cfg config.JWTConfig, logger *slog.Logger) ([]byte, error) {
	if cfg.Secret != "" {
		return []byte(cfg.Secret), nil
	}

	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("failed to generate jwt secret: %w", err)
	}
	logger.Warn("jwt.secret is not set, using a random secret; tokens will not survive a restart")

	return []byte(base64.RawURLEncoding.EncodeToString(secret)), nil
}

func run(ctx context.Context, cfg config.Server, logger *slog.Logger) error {
	secret, err := jwtSecret(cfg.JWT, logger)
	if err != nil {
		return err
	}

	store, err := sqlite.New(ctx, cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close storage", slog.Any("error", err))
		}
	}()

	version, err := store.Version(ctx)
	if err != nil {
		return err
	}
	logger.Info("storage ready", slog.String("path", cfg.DB.Path), slog.Int64("schema_version", version))

	srv := server.New(server.Options{
		Logger:     logger,
		Users:      store,
		Studies:    store,
		DB:         store,
		Version:    Version,
		FeePercent: cfg.Pricing.FeePercent,
		JWT: handlers.JWTConfig{
			Secret:         secret,
			AccessTokenTTL: time.Duration(cfg.JWT.TTLMinutes) * time.Minute,
		},
	})
	defer srv.Close()

	return srv.Run(ctx, cfg.Listen.Addr())
}

func versionText() string {
	return fmt.Sprintf("studysync-sandbox\nVersion:    %s\nBuild Date: %s\nGit Commit: %s\n", Version, BuildDate, GitCommit)
}
