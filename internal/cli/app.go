package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Timothyfranx/ultimatebosu/internal/config"
	"github.com/Timothyfranx/ultimatebosu/internal/links"
	"github.com/Timothyfranx/ultimatebosu/internal/platform/gateway"
	"github.com/Timothyfranx/ultimatebosu/internal/reporting"
	"github.com/Timothyfranx/ultimatebosu/internal/reportsink"
	"github.com/Timothyfranx/ultimatebosu/internal/storage"
	"github.com/Timothyfranx/ultimatebosu/internal/storage/postgres"
	"github.com/Timothyfranx/ultimatebosu/internal/storage/sqlite"
	"github.com/Timothyfranx/ultimatebosu/internal/tracker"
)

// app holds everything the commands wire up from one config file.
// Which pieces are populated depends on the command: reports only need
// the database, serve needs the full stack.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *sqlx.DB

	accounts tracker.AccountStore
	periods  tracker.PeriodStore
	subs     tracker.SubmissionStore
	tx       tracker.TransactionManager
	reports  reporting.Store

	gateway *gateway.Gateway
	sink    *reportsink.RabbitMQ

	sessions   *tracker.SessionStore
	ledger     *tracker.Ledger
	onboarder  *tracker.Onboarder
	router     *tracker.Router
	reconciler *tracker.Reconciler
	reminder   *tracker.Reminder
	admin      *tracker.Admin
	feed       *reporting.Feed
}

func newApp(configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:    cfg,
		logger: setupLogger(cfg.LogLevel),
	}
	if err := a.openStorage(); err != nil {
		return nil, err
	}
	a.feed = reporting.NewFeed(a.reports, a.logger)
	return a, nil
}

func (a *app) openStorage() error {
	switch a.cfg.Database.Driver {
	case "postgres":
		db, err := postgres.Connect(a.cfg.Database.DSN())
		if err != nil {
			return err
		}
		a.db = db
		periods := postgres.NewPeriodStore(db)
		a.accounts = postgres.NewAccountStore(db)
		a.periods = periods
		a.subs = postgres.NewSubmissionStore(db)
		a.tx = storage.NewTransactionManager(db)
		a.reports = postgres.NewReportingStore(db, periods)
	case "sqlite3":
		db, err := sqlite.Connect(a.cfg.Database.DSN())
		if err != nil {
			return err
		}
		a.db = db
		periods := sqlite.NewPeriodStore(db)
		a.accounts = sqlite.NewAccountStore(db)
		a.periods = periods
		a.subs = sqlite.NewSubmissionStore(db)
		a.tx = storage.NewTransactionManager(db)
		a.reports = sqlite.NewReportingStore(db, periods)
	default:
		return fmt.Errorf("unknown database driver %q", a.cfg.Database.Driver)
	}
	return nil
}

// connectPlatform dials the chat gateway and waits for the connection.
func (a *app) connectPlatform(ctx context.Context) error {
	a.gateway = gateway.New(a.cfg.Gateway, a.logger)

	go func() {
		if err := a.gateway.Run(ctx); err != nil && ctx.Err() == nil {
			a.logger.Error("gateway stopped", "error", err)
		}
	}()

	select {
	case <-a.gateway.Ready():
		return nil
	case <-time.After(30 * time.Second):
		return fmt.Errorf("gateway connection timed out")
	case <-ctx.Done():
		return ctx.Err()
	}
}

// buildServices wires the tracker services on top of storage, gateway
// and report sink.
func (a *app) buildServices() error {
	sink, err := reportsink.NewRabbitMQ(a.cfg.RabbitMQ, a.logger)
	if err != nil {
		return fmt.Errorf("connect report sink: %w", err)
	}
	a.sink = sink

	clock := tracker.SystemClock{}
	tcfg := a.cfg.Tracking
	adminResource := a.cfg.Gateway.AdminResourceID

	a.sessions = tracker.NewSessionStore(tcfg.SessionTTL, clock)
	a.ledger = tracker.NewLedger(a.periods, a.subs, a.tx, sink, a.logger)
	a.onboarder = tracker.NewOnboarder(
		a.sessions, a.accounts, a.periods, a.tx,
		a.gateway, sink, clock, a.logger, tcfg, adminResource,
	)
	a.router = tracker.NewRouter(
		links.NewExtractor(tcfg.MaxLinksPerMsg),
		a.accounts, a.periods, a.ledger, a.onboarder, a.sessions,
		a.gateway, clock, a.logger,
		tcfg.ReplyRole, adminResource,
	)
	a.reconciler = tracker.NewReconciler(
		a.accounts, a.periods, a.gateway, a.logger,
		tcfg.ReplyRole, adminResource,
	)
	a.reminder = tracker.NewReminder(a.periods, a.gateway, clock, a.logger)
	a.admin = tracker.NewAdmin(
		a.accounts, a.periods, a.gateway, a.onboarder, a.logger,
		tcfg.ReplyRole, tcfg.MaxDailyTarget, adminResource,
	)

	a.gateway.SetHandler(a.router)
	return nil
}

func (a *app) Close() {
	if a.sink != nil {
		_ = a.sink.Close()
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
