package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobboard/internal/app"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP and websocket server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			if migrate {
				if err := runMigrations(cmd.Context(), cfg, log); err != nil {
					return err
				}
			}

			bootstrap, cleanup, err := app.Bootstrap(cfg, log)
			if err != nil {
				log.Error("failed to bootstrap app", zap.Error(err))
				return err
			}
			defer func() {
				if err := cleanup(); err != nil {
					log.Warn("cleanup error", zap.Error(err))
				}
			}()

			addr, err := app.ListenAddr(cfg.App.HTTPPort)
			if err != nil {
				return err
			}

			errCh := make(chan error, 1)
			go func() {
				log.Info("http server listening", zap.String("addr", addr))
				errCh <- bootstrap.Fiber.Listen(addr)
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				if err != nil {
					log.Error("server error", zap.Error(err))
					return err
				}
			case sig := <-sigCh:
				log.Info("shutting down", zap.String("signal", sig.String()))
				ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := bootstrap.Fiber.ShutdownWithContext(ctx); err != nil {
					log.Warn("shutdown error", zap.Error(err))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before serving")
	return cmd
}
