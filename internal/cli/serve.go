package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/Timothyfranx/ultimatebosu/internal/scheduler"
)

// ServeCmd runs the bot: gateway connection, event routing, scheduled
// sweeps and the metrics endpoint.
func ServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the reply tracking bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(configPath)
			if err != nil {
				return err
			}
			defer a.Close()
			return runServe(a)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "path to config file")
	return cmd
}

func runServe(a *app) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		a.logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if err := a.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database unreachable: %w", err)
	}

	if err := a.connectPlatform(ctx); err != nil {
		return err
	}
	if err := a.buildServices(); err != nil {
		return err
	}

	// Repair drift accumulated while the bot was down before accepting
	// live traffic decisions based on stale refs.
	if _, err := a.reconciler.Reconcile(ctx); err != nil {
		a.logger.Error("startup reconcile failed", "error", err)
	}

	metricsSrv := startMetricsServer(a)
	defer shutdownMetricsServer(a, metricsSrv)

	sched := newScheduler(a)

	a.logger.Info("reply tracker started",
		"driver", a.cfg.Database.Driver,
		"reply_role", a.cfg.Tracking.ReplyRole,
		"period_days", a.cfg.Tracking.PeriodDays,
	)

	err := sched.Start(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func newScheduler(a *app) *scheduler.Scheduler {
	sched := scheduler.New(a.logger)
	sched.Register(scheduler.JobFunc{
		JobName: "session_sweep",
		Fn: func(ctx context.Context) error {
			if removed := a.sessions.Sweep(); removed > 0 {
				a.logger.Info("expired onboarding sessions removed", "count", removed)
			}
			return nil
		},
	}, a.cfg.Tracking.SweepInterval)
	sched.Register(scheduler.JobFunc{
		JobName: "daily_reminder",
		Fn:      a.reminder.Run,
	}, a.cfg.Tracking.ReminderInterval)
	return sched
}

func startMetricsServer(a *app) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := a.db.PingContext(r.Context()); err != nil {
			http.Error(w, "db unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{Addr: a.cfg.Metrics.ListenAddr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("metrics server failed", "error", err)
		}
	}()
	a.logger.Info("metrics listening", "addr", a.cfg.Metrics.ListenAddr)
	return srv
}

func shutdownMetricsServer(a *app, srv *http.Server) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Warn("metrics shutdown failed", "error", err)
	}
}
