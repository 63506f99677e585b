package main

import (
	"fmt"

	"vetsoft/internal/infra"
	"vetsoft/internal/repository"
	"vetsoft/internal/service"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := infra.NewDatabase(cfg.DatabaseURL, cfg.DBLogLevel)
			if err != nil {
				return fmt.Errorf("connect to postgres: %w", err)
			}
			if err := infra.RunMigrations(db); err != nil {
				return err
			}
			log.Info().Msg("schema up to date")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo records",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := infra.NewDatabase(cfg.DatabaseURL, cfg.DBLogLevel)
			if err != nil {
				return fmt.Errorf("connect to postgres: %w", err)
			}
			if err := infra.RunMigrations(db); err != nil {
				return err
			}
			if err := service.New(repository.NewSet(db)).Sembrar(cmd.Context()); err != nil {
				return err
			}
			log.Info().Msg("demo records inserted")
			return nil
		},
	}
}
