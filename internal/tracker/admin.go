package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Timothyfranx/ultimatebosu/internal/domain"
)

// Admin exposes the operator actions on tracking periods. All methods
// resolve the member by external id and return domain errors the caller
// can present verbatim.
type Admin struct {
	accounts  AccountStore
	periods   PeriodStore
	platform  Platform
	onboarder *Onboarder
	logger    *slog.Logger

	replyRole     string
	maxTarget     int
	adminResource int64
}

func NewAdmin(
	accounts AccountStore,
	periods PeriodStore,
	platform Platform,
	onboarder *Onboarder,
	logger *slog.Logger,
	replyRole string,
	maxTarget int,
	adminResource int64,
) *Admin {
	return &Admin{
		accounts:      accounts,
		periods:       periods,
		platform:      platform,
		onboarder:     onboarder,
		logger:        logger.With("component", "admin"),
		replyRole:     replyRole,
		maxTarget:     maxTarget,
		adminResource: adminResource,
	}
}

// Pause suspends the member's active period. Submissions are refused
// until Resume.
func (a *Admin) Pause(ctx context.Context, externalID int64) error {
	ap, err := a.periods.GetActiveByExternalID(ctx, externalID)
	if err != nil {
		return err
	}
	if err := a.periods.UpdateStatus(ctx, ap.Period.ID, domain.StatusPaused); err != nil {
		return fmt.Errorf("pause period: %w", err)
	}
	a.notifyMember(ctx, ap, "Your reply tracking has been paused by an admin. Links posted here won't be counted until it resumes.")
	a.logger.Info("period paused", "external_id", externalID, "period_id", ap.Period.ID)
	return nil
}

// Resume reactivates the member's paused period.
func (a *Admin) Resume(ctx context.Context, externalID int64) error {
	ap, err := a.periods.GetByStatus(ctx, externalID, domain.StatusPaused)
	if err != nil {
		if errors.Is(err, domain.ErrPeriodNotFound) {
			return domain.ErrPeriodNotActive
		}
		return err
	}
	if err := a.periods.UpdateStatus(ctx, ap.Period.ID, domain.StatusActive); err != nil {
		return fmt.Errorf("resume period: %w", err)
	}
	a.notifyMember(ctx, ap, "Your reply tracking has resumed. Keep posting your links here.")
	a.logger.Info("period resumed", "external_id", externalID, "period_id", ap.Period.ID)
	return nil
}

// ChangeTarget updates the daily target of the member's active period.
// Past days keep their old counts; the new target applies from now on.
func (a *Admin) ChangeTarget(ctx context.Context, externalID int64, target int) error {
	if target < 1 || target > a.maxTarget {
		return domain.NewValidationError("target", fmt.Sprintf("must be between 1 and %d", a.maxTarget))
	}

	ap, err := a.periods.GetActiveByExternalID(ctx, externalID)
	if err != nil {
		return err
	}
	if err := a.periods.UpdateTarget(ctx, ap.Period.ID, target); err != nil {
		return fmt.Errorf("update target: %w", err)
	}
	a.notifyMember(ctx, ap, fmt.Sprintf("Your daily reply target was changed from %d to %d.", ap.Period.TargetPerDay, target))
	a.logger.Info("target changed",
		"external_id", externalID,
		"period_id", ap.Period.ID,
		"old", ap.Period.TargetPerDay,
		"new", target,
	)
	return nil
}

// Delete removes the member's tracking resource and marks the active
// period deleted. History stays in the store for reporting.
func (a *Admin) Delete(ctx context.Context, externalID int64) error {
	ap, err := a.periods.GetActiveByExternalID(ctx, externalID)
	if err != nil {
		return err
	}
	if err := a.periods.UpdateStatus(ctx, ap.Period.ID, domain.StatusDeleted); err != nil {
		return fmt.Errorf("delete period: %w", err)
	}

	if ap.Account.ResourceRef != nil {
		if err := a.platform.DeleteResource(ctx, *ap.Account.ResourceRef, "tracking removed by admin"); err != nil {
			a.logger.Warn("resource delete failed",
				"external_id", externalID,
				"resource_id", *ap.Account.ResourceRef,
				"error", err,
			)
		}
	}

	a.logger.Info("tracking deleted", "external_id", externalID, "period_id", ap.Period.ID)
	return nil
}

// SetupMember starts onboarding for one member on admin request,
// bypassing the role-grant trigger.
func (a *Admin) SetupMember(ctx context.Context, externalID int64, displayName string) error {
	if _, err := a.periods.GetActiveByExternalID(ctx, externalID); err == nil {
		return domain.ErrDuplicatePeriod
	} else if !errors.Is(err, domain.ErrNoActivePeriod) {
		return fmt.Errorf("check active period: %w", err)
	}
	return a.onboarder.Begin(ctx, externalID, displayName)
}

// SetupAll walks the member list and starts onboarding for everyone who
// holds the reply role and has no active period yet. Returns how many
// setups were started.
func (a *Admin) SetupAll(ctx context.Context) (int, error) {
	members, err := a.platform.ListMembers(ctx)
	if err != nil {
		return 0, fmt.Errorf("list members: %w", err)
	}

	started := 0
	for _, id := range members {
		hasRole, err := a.platform.HasRole(ctx, id, a.replyRole)
		if err != nil {
			a.logger.Warn("role check failed", "external_id", id, "error", err)
			continue
		}
		if !hasRole {
			continue
		}
		if _, err := a.periods.GetActiveByExternalID(ctx, id); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrNoActivePeriod) {
			a.logger.Warn("active period check failed", "external_id", id, "error", err)
			continue
		}
		if err := a.onboarder.Begin(ctx, id, fmt.Sprintf("member-%d", id)); err != nil {
			a.logger.Error("bulk setup failed for member", "external_id", id, "error", err)
			continue
		}
		started++
	}

	a.logger.Info("bulk setup done", "candidates", len(members), "started", started)
	return started, nil
}

func (a *Admin) notifyMember(ctx context.Context, ap *domain.ActivePeriod, text string) {
	if ap.Account.ResourceRef == nil {
		return
	}
	if err := a.platform.SendMessage(ctx, *ap.Account.ResourceRef, text); err != nil {
		a.logger.Warn("member notification failed",
			"external_id", ap.Account.ExternalID,
			"error", err,
		)
	}
}
