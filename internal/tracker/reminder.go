package tracker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Timothyfranx/ultimatebosu/internal/domain"
)

// Reminder nudges members who are behind their daily target. It runs as
// a scheduled job, once per reminder interval.
type Reminder struct {
	periods  PeriodStore
	platform Platform
	clock    Clock
	logger   *slog.Logger
}

func NewReminder(periods PeriodStore, platform Platform, clock Clock, logger *slog.Logger) *Reminder {
	return &Reminder{
		periods:  periods,
		platform: platform,
		clock:    clock,
		logger:   logger.With("component", "reminder"),
	}
}

// Run sends one reminder to every active member still behind target for
// the current day. Send failures are logged per member and never abort
// the sweep.
func (r *Reminder) Run(ctx context.Context) error {
	day := domain.Day(r.clock.Now())

	targets, err := r.periods.ListBehindTarget(ctx, day)
	if err != nil {
		return fmt.Errorf("list behind target: %w", err)
	}

	sent := 0
	for _, t := range targets {
		if t.ResourceRef == nil {
			continue
		}
		msg := fmt.Sprintf(
			"Daily reminder: you've logged %d of %d replies today. %d to go!",
			t.Done, t.Target, t.Target-t.Done,
		)
		if err := r.platform.SendMessage(ctx, *t.ResourceRef, msg); err != nil {
			r.logger.Warn("reminder send failed", "external_id", t.ExternalID, "error", err)
			continue
		}
		sent++
	}

	r.logger.Info("reminder sweep done",
		"day", day.Format(dateLayout),
		"behind", len(targets),
		"sent", sent,
	)
	return nil
}
