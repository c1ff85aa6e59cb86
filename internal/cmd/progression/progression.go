// Package progression parses progression command flags and runs a command batch.
package progression

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	entrypoint "github.com/louisbranch/caseprogression/internal/platform/cmd"
	"github.com/louisbranch/caseprogression/internal/platform/logging"
	"github.com/louisbranch/caseprogression/internal/platform/otel"
	"github.com/louisbranch/caseprogression/internal/services/progression/app"
)

// Config holds progression command configuration.
type Config struct {
	DBPath        string        `env:"CASEPROGRESSION_DB_PATH" envDefault:"data/progression.db"`
	Input         string        `env:"CASEPROGRESSION_INPUT" envDefault:"-"`
	Output        string        `env:"CASEPROGRESSION_OUTPUT" envDefault:"-"`
	RedisAddr     string        `env:"CASEPROGRESSION_REDIS_ADDR"`
	RedisChannel  string        `env:"CASEPROGRESSION_REDIS_CHANNEL" envDefault:"caseprogression.events"`
	LogMode       string        `env:"CASEPROGRESSION_LOG_MODE" envDefault:"dev"`
	MaxAttempts   uint          `env:"CASEPROGRESSION_MAX_ATTEMPTS" envDefault:"5"`
	RetryInterval time.Duration `env:"CASEPROGRESSION_RETRY_INTERVAL" envDefault:"10ms"`
	Parallelism   int           `env:"CASEPROGRESSION_PARALLELISM" envDefault:"4"`

	OTel otel.Settings
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to the SQLite event journal (empty keeps events in memory)")
	fs.StringVar(&cfg.Input, "input", cfg.Input, "NDJSON command file, or - for stdin")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "File for NDJSON outcomes, or - for stdout")
	fs.StringVar(&cfg.RedisAddr, "redis-addr", cfg.RedisAddr, "Redis address for event publication (empty disables)")
	fs.StringVar(&cfg.RedisChannel, "redis-channel", cfg.RedisChannel, "Redis channel for event publication")
	fs.StringVar(&cfg.LogMode, "log-mode", cfg.LogMode, "Log output: prod or dev")
	fs.UintVar(&cfg.MaxAttempts, "max-attempts", cfg.MaxAttempts, "Decisions per command before a version conflict is reported")
	fs.DurationVar(&cfg.RetryInterval, "retry-interval", cfg.RetryInterval, "First pause after a version conflict")
	fs.IntVar(&cfg.Parallelism, "parallelism", cfg.Parallelism, "Aggregates dispatched concurrently")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.Parallelism <= 0 {
		return Config{}, fmt.Errorf("parallelism must be positive, got %d", cfg.Parallelism)
	}
	return cfg, nil
}

// Run dispatches the configured command batch.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(cfg.LogMode)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync()

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceProgression, cfg.OTel, func(ctx context.Context) error {
		in, closeIn, err := openInput(cfg.Input)
		if err != nil {
			return err
		}
		defer closeIn()
		out, closeOut, err := openOutput(cfg.Output)
		if err != nil {
			return err
		}
		defer closeOut()

		rt, err := app.Open(ctx, app.Settings{
			DBPath:        cfg.DBPath,
			RedisAddr:     cfg.RedisAddr,
			RedisChannel:  cfg.RedisChannel,
			MaxAttempts:   cfg.MaxAttempts,
			RetryInterval: cfg.RetryInterval,
		}, logger)
		if err != nil {
			return err
		}
		defer rt.Close()

		runner := app.Runner{Dispatcher: rt.Handler, Parallelism: cfg.Parallelism, Logger: logger}
		if _, err := runner.Run(ctx, in, out); err != nil {
			return fmt.Errorf("run batch: %w", err)
		}
		return nil
	})
}

func openInput(path string) (io.Reader, func(), error) {
	path = strings.TrimSpace(path)
	if path == "" || path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func openOutput(path string) (io.Writer, func(), error) {
	path = strings.TrimSpace(path)
	if path == "" || path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
