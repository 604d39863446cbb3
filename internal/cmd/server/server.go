// Package server parses storefront server flags and launches the service.
package server

import (
	"context"
	"flag"

	entrypoint "github.com/rahulmehra/fashionstore/internal/platform/cmd"
	"github.com/rahulmehra/fashionstore/internal/storefront/app"
)

// Config holds server command configuration.
type Config struct {
	Addr         string `env:"FASHIONSTORE_ADDR" envDefault:":8080"`
	DBPath       string `env:"FASHIONSTORE_DB_PATH" envDefault:"data/storefront.db"`
	AdminKey     string `env:"FASHIONSTORE_ADMIN_KEY" envDefault:"ADMIN2024FASHION"`
	MediaDir     string `env:"FASHIONSTORE_MEDIA_DIR" envDefault:"data/media"`
	ContactPhone string `env:"FASHIONSTORE_CONTACT_PHONE" envDefault:"919876543210"`
	ContactEmail string `env:"FASHIONSTORE_CONTACT_EMAIL" envDefault:"orders@mensfashion.com"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	fs.StringVar(&cfg.AdminKey, "admin-key", cfg.AdminKey, "admin access key")
	fs.StringVar(&cfg.MediaDir, "media-dir", cfg.MediaDir, "product image upload directory")
	fs.StringVar(&cfg.ContactPhone, "contact-phone", cfg.ContactPhone, "merchant WhatsApp phone number")
	fs.StringVar(&cfg.ContactEmail, "contact-email", cfg.ContactEmail, "merchant order email")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the storefront HTTP service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceServer, func(context.Context) error {
		return app.Run(ctx, app.Config{
			Addr:         cfg.Addr,
			DBPath:       cfg.DBPath,
			AdminKey:     cfg.AdminKey,
			MediaDir:     cfg.MediaDir,
			ContactPhone: cfg.ContactPhone,
			ContactEmail: cfg.ContactEmail,
		})
	})
}
