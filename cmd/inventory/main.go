package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/inventory-tracker/internal/infrastructure/store"
	"github.com/jhoicas/inventory-tracker/internal/interfaces/cli"
	"github.com/jhoicas/inventory-tracker/pkg/config"
	"github.com/jhoicas/inventory-tracker/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Debug().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	deps := cli.Deps{
		Open: func(ctx context.Context) (*store.Repositories, error) {
			return store.Open(ctx, cfg, log)
		},
		Log: log,
	}
	code := cli.Execute(ctx, deps, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
