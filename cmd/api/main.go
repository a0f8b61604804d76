// Package main es el CLI de pet-adoption: servidor HTTP, migraciones y
// utilidades de sesión.
//
// @title Pet Adoption API
// @version 1.0
// @description Coordinación de adopciones entre refugios, adoptantes y administradores.
// @BasePath /
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"pet-adoption/internal/adapters/storage/postgres"
	"pet-adoption/internal/config"
	"pet-adoption/internal/platform/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// openPostgres abre la base configurada y devuelve una función para cerrarla.
func openPostgres(ctx context.Context, cfg *config.Config) (*postgres.DB, func()) {
	db, err := postgres.Open(ctx, postgres.Options{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
	})
	if err != nil {
		logger.Get(ctx).Fatal("could not open postgres", zap.Error(err))
	}

	return db, func() {
		logger.Get(ctx).Info("closing postgres client...")
		if err := db.Close(); err != nil {
			logger.Get(ctx).Warn("could not close postgres connection", zap.Error(err))
		}
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "pet-adoption",
		Short: "Online pet adoption platform",
	}

	// cobra no deja leer flags antes de ejecutar: -c se parsea con flag y
	// se declara también en cobra para que no la rechace.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	configPath := fs.String("c", "config.yml", "The config file path")
	_ = fs.Parse(configArgs(os.Args[1:]))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config: ", err)
	}

	logger.Setup(logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    "pet-adoption",
	}))

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Get(ctx).Error("captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		serveCommand(cfg),
		migrateCommand(cfg),
		tokenCommand(cfg),
		loginCommand(),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

// configArgs deja solo -c/--config y su valor; el resto lo parsea cobra.
func configArgs(args []string) []string {
	var out []string
	for i := 0; i < len(args); i++ {
		switch a := args[i]; {
		case a == "-c" || a == "--config":
			if i+1 < len(args) {
				out = append(out, "-c", args[i+1])
				i++
			}
		case strings.HasPrefix(a, "-c="):
			out = append(out, a)
		case strings.HasPrefix(a, "--config="):
			out = append(out, "-c="+strings.TrimPrefix(a, "--config="))
		}
	}
	return out
}
