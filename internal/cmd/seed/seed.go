// Package seed parses seed command flags and loads the starter catalog.
package seed

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/rahulmehra/fashionstore/internal/platform/cmd"
	"github.com/rahulmehra/fashionstore/internal/storefront/seed"
	"github.com/rahulmehra/fashionstore/internal/storefront/storage/sqlite"
)

// Config holds seed command configuration.
type Config struct {
	DBPath string `env:"FASHIONSTORE_DB_PATH" envDefault:"data/storefront.db"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run seeds the product catalog.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSeed, func(context.Context) error {
		store, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open storefront sqlite store: %w", err)
		}
		defer store.Close()

		return seed.Run(ctx, store)
	})
}
