// Package main provides the vetsoft binary: the clinic web server plus its
// maintenance commands.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"vetsoft/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const (
	Version = "1.0.0"
	appName = "vetsoft"
)

// BuildTime is set with -ldflags "-X main.BuildTime=...".
var BuildTime = "dev"

func main() {
	if err := rootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Veterinary clinic management",
		Long: `VetSoft manages the clients, pets, medicines, providers, products and
veterinarians of a clinic through HTML screens and a JSON API.

Configuration comes from environment variables or a .env file.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(serveCmd(), migrateCmd(), seedCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

// loadConfig reads the configuration and sets up the global logger.
// Structured logger: pretty in dev, JSON in prod
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.IsProduction() {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	return cfg, nil
}
