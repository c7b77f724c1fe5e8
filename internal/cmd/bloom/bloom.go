// Package bloom parses tracker service flags and launches the service.
package bloom

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/louisbranch/bloom/internal/platform/cmd"
	server "github.com/louisbranch/bloom/internal/services/tracker/app"
	"github.com/louisbranch/bloom/internal/services/tracker/sessiongrant"
)

// Config holds tracker command configuration.
type Config struct {
	Port        int    `env:"BLOOM_TRACKER_PORT"         envDefault:"8092"`
	JournalPath string `env:"BLOOM_TRACKER_JOURNAL_PATH"`
	DemoSession bool   `env:"BLOOM_TRACKER_DEMO_SESSION" envDefault:"true"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The tracker gRPC server port")
	fs.StringVar(&cfg.JournalPath, "journal", cfg.JournalPath, "SQLite action journal path (empty keeps the journal in memory)")
	fs.BoolVar(&cfg.DemoSession, "demo", cfg.DemoSession, "Start signed in as the demo account")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}
	return cfg, nil
}

// Run starts the tracker gRPC API service.
func Run(ctx context.Context, cfg Config) error {
	grants, err := sessiongrant.LoadConfigFromEnv(nil)
	if err != nil {
		return err
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceTracker, func(ctx context.Context) error {
		return server.Run(ctx, server.Config{
			Addr:        fmt.Sprintf(":%d", cfg.Port),
			JournalPath: cfg.JournalPath,
			DemoSession: cfg.DemoSession,
			Grants:      grants,
		})
	})
}
