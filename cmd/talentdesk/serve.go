package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/talentdesk/internal/config"
	"github.com/jonathan/talentdesk/internal/logging"
	"github.com/jonathan/talentdesk/internal/server"
)

type serveOptions struct {
	port         string
	pushInterval time.Duration
}

func newServeCmd(root *rootOptions) *cobra.Command {
	opts := &serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long:  `Start an HTTP server that exposes the imported-CV queue, candidates, interviews and job postings.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), root, opts)
		},
	}
	cmd.Flags().StringVar(&opts.port, "port", "", "Port to listen on (overrides PORT)")
	cmd.Flags().DurationVar(&opts.pushInterval, "push-interval", 0, "Push locally saved records to the database this often (0 disables)")
	return cmd
}

func runServe(ctx context.Context, root *rootOptions, opts *serveOptions) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	log := logging.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := openApp(ctx, root, log)
	if err != nil {
		return err
	}
	defer a.Close()

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return fmt.Errorf("failed to load JWT config: %w", err)
	}
	passwords, err := config.NewPasswordConfig()
	if err != nil {
		return fmt.Errorf("failed to load password config: %w", err)
	}
	admin, err := config.NewAdminConfig(passwords)
	if err != nil {
		return fmt.Errorf("failed to load admin account: %w", err)
	}

	port := a.cfg.Port
	if opts.port != "" {
		port = opts.port
	}

	srv, err := server.New(server.Config{
		Port:    port,
		Service: a.svc,
		Logger:  log,
		JWT:     jwtConfig,
		Admin:   admin,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(ctx) })
	if opts.pushInterval > 0 && a.db != nil {
		g.Go(func() error {
			pushLoop(ctx, a, opts.pushInterval)
			return nil
		})
	}
	return g.Wait()
}

// pushLoop periodically copies records saved locally during database outages.
func pushLoop(ctx context.Context, a *app, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := a.svc.Push(ctx); err != nil {
				a.log.Warn("background push failed", "error", err)
			}
		}
	}
}
