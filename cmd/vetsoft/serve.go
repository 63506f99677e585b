package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"vetsoft/internal/config"
	"vetsoft/internal/infra"
	"vetsoft/internal/middleware"
	"vetsoft/internal/repository"
	"vetsoft/internal/repository/memory"
	"vetsoft/internal/router"
	"vetsoft/internal/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var enMemoria bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, enMemoria)
		},
	}
	cmd.Flags().BoolVar(&enMemoria, "memory", false, "Keep records in process memory instead of PostgreSQL")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config, enMemoria bool) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps := router.Deps{Registry: prometheus.NewRegistry()}
	deps.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	var repos repository.Set
	if enMemoria {
		log.Warn().Msg("serving from memory: records are lost on exit")
		repos = memory.NewSet()
	} else {
		db, err := infra.NewDatabase(cfg.DatabaseURL, cfg.DBLogLevel)
		if err != nil {
			return fmt.Errorf("connect to postgres: %w", err)
		}
		if err := infra.RunMigrations(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		deps.DB = db
		repos = repository.NewSet(db)
	}
	deps.Services = service.New(repos)

	if cfg.RedisURL != "" {
		rdb, err := infra.NewRedis(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer rdb.Close()
		deps.Redis = rdb
		deps.RateStore = middleware.NewRedisRateStore(rdb)
	} else {
		store := middleware.NewMemoryRateStore()
		go store.RunPurge(ctx, 5*time.Minute)
		deps.RateStore = store
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router.New(cfg, deps),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Msgf("VetSoft listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Graceful shutdown on SIGINT / SIGTERM
	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server…")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}
	log.Info().Msg("server exited")
	return nil
}
