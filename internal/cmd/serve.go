package cmd

import (
	"carwash/internal/adapter/http/routes"
	"carwash/internal/config"
	"carwash/internal/infrastructure/scheduler"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Car Wash API server",
	Long: `Start the Car Wash API server which provides:
- REST API for customers, vehicles, employees and car washes
- Reports on clients to contact, wash statistics and customer activity
- A scheduled job that texts clients who are due for a wash`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	deps, err := routes.NewDependencies(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to build dependencies: %w", err)
	}

	jobs, err := newScheduler(cfg.Reminders, deps)
	if err != nil {
		return err
	}
	jobs.Start()

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           routes.NewRouter(cfg, deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[server] listening addr=%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		log.Printf("[server] shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	jobs.Stop(shutdownCtx)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

func newScheduler(cfg config.RemindersConfig, deps *routes.Dependencies) (*scheduler.Scheduler, error) {
	jobs := scheduler.New()
	if !cfg.Enabled {
		return jobs, nil
	}

	err := jobs.AddJob(cfg.Schedule, "contact-reminders", func(ctx context.Context) {
		summary, err := deps.Reminders.SendReminders(ctx)
		if err != nil {
			log.Printf("[reminder][job] run failed err=%v", err)
			return
		}
		log.Printf("[reminder][job] attempted=%d sent=%d failed=%d", summary.Attempted, summary.Sent, summary.Failed)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to schedule reminders: %w", err)
	}
	return jobs, nil
}
