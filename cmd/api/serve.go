package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"pet-adoption/internal/adapters/auth/jwtauth"
	"pet-adoption/internal/adapters/storage/postgres"
	"pet-adoption/internal/config"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/metrics"
	"pet-adoption/internal/router"
	"pet-adoption/internal/worker"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, db *postgres.DB) func(ctx context.Context) {
	tokens, err := jwtauth.New(jwtauth.Config{Secret: cfg.Auth.Secret, TTL: cfg.Auth.TTL})
	if err != nil {
		logger.Get(ctx).Fatal("could not create token service", zap.Error(err))
	}

	m := metrics.New()
	app, err := router.New(router.Options{
		Tokens:             tokens,
		DevHeaders:         cfg.Auth.DevHeaders && !cfg.IsProduction(),
		DB:                 db,
		Metrics:            m,
		MetricsPath:        cfg.HTTP.MetricsPath,
		PlatformName:       cfg.Platform.Name,
		MaxApplicationDays: cfg.Platform.MaxApplicationDays,
		SecureCookie:       cfg.IsProduction(),
	})
	if err != nil {
		logger.Get(ctx).Fatal("could not create router", zap.Error(err))
	}

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           app.Handler,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	// Se detiene con ctx (la señal de apagado).
	go worker.NewSnapshot(app.Stats, m, cfg.Jobs.SnapshotInterval).Run(ctx)

	go func() {
		logger.Get(ctx).Info("starting webserver...", zap.String("addr", cfg.HTTP.Addr), zap.Bool("postgres", db != nil))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Get(ctx).Error("could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Get(ctx).Info("stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Get(ctx).Error("could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the web dashboards and the JSON API",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			// Sin DSN se arranca con datos de demo en memoria.
			var db *postgres.DB
			if cfg.Database.DSN != "" {
				var closeDB func()
				db, closeDB = openPostgres(ctx, cfg)
				defer closeDB()

				if migrate, _ := cmd.Flags().GetBool("migrate"); migrate {
					if err := postgres.Migrate(ctx, db); err != nil {
						logger.Get(ctx).Fatal("could not migrate database", zap.Error(err))
					}
				}
			}

			stopWebserver := setupServer(ctx, cfg, db)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
		},
	}

	cmd.Flags().Bool("migrate", false, "Apply database migrations before serving (postgres only)")

	return cmd
}

