package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Timothyfranx/ultimatebosu/internal/config"
	"github.com/Timothyfranx/ultimatebosu/internal/domain"
)

var handlePattern = regexp.MustCompile(`^[A-Za-z0-9_]{1,15}$`)

const dateLayout = "2006-01-02"

// Onboarder runs the three-step setup dialogue and, on completion,
// converts the session into an Account plus TrackingPeriod.
type Onboarder struct {
	sessions *SessionStore
	accounts AccountStore
	periods  PeriodStore
	tx       TransactionManager
	platform Platform
	sink     ReportSink
	clock    Clock
	logger   *slog.Logger
	cfg      config.TrackingConfig

	adminResource int64
}

func NewOnboarder(
	sessions *SessionStore,
	accounts AccountStore,
	periods PeriodStore,
	tx TransactionManager,
	platform Platform,
	sink ReportSink,
	clock Clock,
	logger *slog.Logger,
	cfg config.TrackingConfig,
	adminResource int64,
) *Onboarder {
	return &Onboarder{
		sessions:      sessions,
		accounts:      accounts,
		periods:       periods,
		tx:            tx,
		platform:      platform,
		sink:          sink,
		clock:         clock,
		logger:        logger.With("component", "onboarding"),
		cfg:           cfg,
		adminResource: adminResource,
	}
}

// Begin creates the member's private tracking resource and opens an
// onboarding session in it.
func (o *Onboarder) Begin(ctx context.Context, externalID int64, displayName string) error {
	name := "tracking-" + strings.ReplaceAll(strings.ToLower(displayName), " ", "-")
	resourceID, err := o.platform.CreatePrivateResource(ctx, externalID, name)
	if err != nil {
		return fmt.Errorf("create tracking resource: %w", err)
	}

	// The resource ref is persisted up front so a restart mid-onboarding
	// still knows where the member's resource is.
	if acc, err := o.accounts.GetByExternalID(ctx, externalID); err == nil && acc != nil {
		if err := o.accounts.SetResourceRef(ctx, externalID, resourceID); err != nil {
			o.logger.Warn("persist resource ref failed", "external_id", externalID, "error", err)
		}
	}

	o.sessions.Start(externalID, resourceID, displayName)

	welcome := "Welcome to reply tracking! Quick setup, 3 steps.\n" +
		"Step 1 of 3: what's your X (Twitter) username? (without @)"
	if err := o.platform.SendMessage(ctx, resourceID, welcome); err != nil {
		o.logger.Warn("welcome message failed", "external_id", externalID, "error", err)
	}

	o.logger.Info("onboarding started", "external_id", externalID, "resource_id", resourceID)
	return nil
}

// HandleInput advances the session with one user message. Invalid input
// re-prompts and leaves the step unchanged.
func (o *Onboarder) HandleInput(ctx context.Context, externalID int64, text string) error {
	sess, ok := o.sessions.Get(externalID)
	if !ok {
		return domain.ErrSessionNotFound
	}

	switch sess.Step {
	case StepHandle:
		handle := strings.TrimPrefix(strings.TrimSpace(text), "@")
		if !handlePattern.MatchString(handle) {
			o.reply(ctx, sess, "That doesn't look like an X username. Letters, numbers and underscore only, max 15 characters.")
			return nil
		}
		sess.Handle = handle
		sess.Step = StepTarget
		o.reply(ctx, sess, fmt.Sprintf("Username saved: @%s.\nStep 2 of 3: how many replies do you want to track per day?", handle))

	case StepTarget:
		target, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil || target < 1 || target > o.cfg.MaxDailyTarget {
			o.reply(ctx, sess, fmt.Sprintf("Please enter a number between 1 and %d.", o.cfg.MaxDailyTarget))
			return nil
		}
		sess.Target = target
		sess.Step = StepStartDate
		o.reply(ctx, sess, fmt.Sprintf("Daily target saved: %d replies.\nStep 3 of 3: what's your start date? (format: YYYY-MM-DD)", target))

	case StepStartDate:
		start, err := time.ParseInLocation(dateLayout, strings.TrimSpace(text), time.UTC)
		if err != nil {
			o.reply(ctx, sess, "Please use the format YYYY-MM-DD, e.g. 2025-03-25.")
			return nil
		}
		if start.Before(domain.Day(o.clock.Now())) {
			o.reply(ctx, sess, "Start date cannot be in the past.")
			return nil
		}
		sess.StartDate = start
		return o.complete(ctx, sess)
	}

	return nil
}

// complete is the terminal action: create the account and period,
// request the empty report template, destroy the session. Completion is
// one-shot; any failure is reported and the session is still destroyed.
func (o *Onboarder) complete(ctx context.Context, sess *Session) error {
	defer o.sessions.Remove(sess.ExternalID)

	end := sess.StartDate.AddDate(0, 0, o.cfg.PeriodDays)

	var periodID int64
	err := o.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		acc := &domain.Account{
			ExternalID:    sess.ExternalID,
			DisplayName:   sess.DisplayName,
			ClaimedHandle: sess.Handle,
			ResourceRef:   &sess.ResourceID,
		}
		accountID, err := o.accounts.Upsert(txCtx, acc)
		if err != nil {
			return fmt.Errorf("upsert account: %w", err)
		}

		// One active period per account: the check and the insert share
		// the transaction, and the store backs it with a partial unique
		// index on (account_id) WHERE status = 'active'.
		existing, err := o.periods.GetActiveByExternalID(txCtx, sess.ExternalID)
		if err != nil && !errors.Is(err, domain.ErrNoActivePeriod) {
			return fmt.Errorf("check active period: %w", err)
		}
		if existing != nil {
			return domain.ErrDuplicatePeriod
		}

		periodID, err = o.periods.Create(txCtx, &domain.TrackingPeriod{
			AccountID:    accountID,
			TargetPerDay: sess.Target,
			StartDate:    sess.StartDate,
			EndDate:      end,
			Status:       domain.StatusActive,
		})
		if err != nil {
			return fmt.Errorf("create tracking period: %w", err)
		}
		return nil
	})
	if err != nil {
		o.logger.Error("onboarding completion failed", "external_id", sess.ExternalID, "error", err)
		o.reply(ctx, sess, "Setup failed. Please contact an admin to be set up again.")
		o.notifyAdmin(ctx, fmt.Sprintf("Setup failed for %s (@%s): %v", sess.DisplayName, sess.Handle, err))
		return err
	}

	// The spreadsheet is a derived artifact; template failure is logged
	// and setup still succeeds.
	ref, err := o.sink.GenerateTemplate(ctx, periodID, sess.Target, sess.StartDate, end)
	if err != nil {
		o.logger.Error("report template failed", "period_id", periodID, "error", err)
	} else if err := o.periods.SetReportRef(ctx, periodID, ref); err != nil {
		o.logger.Warn("persist report ref failed", "period_id", periodID, "error", err)
	}

	o.reply(ctx, sess, fmt.Sprintf(
		"Setup complete! Tracking @%s, %d replies per day, %s to %s.\nPaste your X reply links in this channel to log them.",
		sess.Handle, sess.Target, sess.StartDate.Format(dateLayout), end.Format(dateLayout),
	))

	o.logger.Info("onboarding completed",
		"external_id", sess.ExternalID,
		"handle", sess.Handle,
		"target", sess.Target,
		"period_id", periodID,
	)
	return nil
}

func (o *Onboarder) reply(ctx context.Context, sess *Session, text string) {
	if err := o.platform.SendMessage(ctx, sess.ResourceID, text); err != nil {
		o.logger.Warn("onboarding reply failed", "external_id", sess.ExternalID, "error", err)
	}
}

func (o *Onboarder) notifyAdmin(ctx context.Context, text string) {
	if o.adminResource == 0 {
		return
	}
	if err := o.platform.SendMessage(ctx, o.adminResource, text); err != nil {
		o.logger.Warn("admin notification failed", "error", err)
	}
}
