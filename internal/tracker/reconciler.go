package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Timothyfranx/ultimatebosu/internal/domain"
)

// ReconcileStats summarizes one repair sweep.
type ReconcileStats struct {
	Checked   int
	Departed  int
	Attempted int
	Recreated int
	Errors    int
}

// Reconciler repairs drift between persisted state and live platform
// resources: departed members, externally deleted resources, stale refs.
// It runs at process start and on demand from the admin CLI.
type Reconciler struct {
	accounts AccountStore
	periods  PeriodStore
	platform Platform
	logger   *slog.Logger

	replyRole     string
	adminResource int64
}

func NewReconciler(
	accounts AccountStore,
	periods PeriodStore,
	platform Platform,
	logger *slog.Logger,
	replyRole string,
	adminResource int64,
) *Reconciler {
	return &Reconciler{
		accounts:      accounts,
		periods:       periods,
		platform:      platform,
		logger:        logger.With("component", "reconciler"),
		replyRole:     replyRole,
		adminResource: adminResource,
	}
}

// Reconcile walks every active period and repairs what it can. Each
// account is fault-isolated: one failure never aborts the sweep.
func (r *Reconciler) Reconcile(ctx context.Context) (*ReconcileStats, error) {
	active, err := r.periods.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active periods: %w", err)
	}

	stats := &ReconcileStats{}
	for i := range active {
		ap := &active[i]
		stats.Checked++
		if err := r.reconcileOne(ctx, ap, stats); err != nil {
			stats.Errors++
			r.logger.Error("reconcile failed for account",
				"external_id", ap.Account.ExternalID,
				"error", err,
			)
		}
	}

	r.logger.Info("reconcile sweep done",
		"checked", stats.Checked,
		"departed", stats.Departed,
		"recreated", stats.Recreated,
		"attempted", stats.Attempted,
		"errors", stats.Errors,
	)

	if stats.Attempted > 0 || stats.Departed > 0 {
		r.notifyAdmin(ctx, fmt.Sprintf(
			"Restart recovery report: %d/%d resources recreated, %d departed members cleaned up.",
			stats.Recreated, stats.Attempted, stats.Departed,
		))
	}
	return stats, nil
}

func (r *Reconciler) reconcileOne(ctx context.Context, ap *domain.ActivePeriod, stats *ReconcileStats) error {
	member, err := r.platform.IsMember(ctx, ap.Account.ExternalID)
	if err != nil {
		return fmt.Errorf("membership check: %w", err)
	}

	if !member {
		return r.handleDeparture(ctx, ap, stats)
	}

	if ap.Account.ResourceRef == nil {
		return nil
	}
	exists, err := r.platform.ResourceExists(ctx, *ap.Account.ResourceRef)
	if err != nil {
		return fmt.Errorf("resource check: %w", err)
	}
	if exists {
		return nil
	}
	return r.recreateResource(ctx, ap, stats)
}

func (r *Reconciler) handleDeparture(ctx context.Context, ap *domain.ActivePeriod, stats *ReconcileStats) error {
	if err := r.periods.UpdateStatus(ctx, ap.Period.ID, domain.StatusLeftServer); err != nil {
		return fmt.Errorf("mark left_server: %w", err)
	}
	stats.Departed++
	membersDeparted.Inc()

	if ap.Account.ResourceRef != nil {
		if err := r.platform.DeleteResource(ctx, *ap.Account.ResourceRef, "member left the server"); err != nil {
			r.logger.Warn("departed member resource delete failed",
				"external_id", ap.Account.ExternalID,
				"resource_id", *ap.Account.ResourceRef,
				"error", err,
			)
		}
	}

	r.notifyAdmin(ctx, fmt.Sprintf(
		"%s (@%s) left the server. Period %s to %s closed, daily target was %d.",
		ap.Account.DisplayName, ap.Account.ClaimedHandle,
		ap.Period.StartDate.Format(dateLayout), ap.Period.EndDate.Format(dateLayout),
		ap.Period.TargetPerDay,
	))
	return nil
}

func (r *Reconciler) recreateResource(ctx context.Context, ap *domain.ActivePeriod, stats *ReconcileStats) error {
	stats.Attempted++

	// A member who dropped the reply role keeps their data but gets no
	// new resource.
	hasRole, err := r.platform.HasRole(ctx, ap.Account.ExternalID, r.replyRole)
	if err != nil {
		return fmt.Errorf("role check: %w", err)
	}
	if !hasRole {
		r.logger.Info("skipping resource recreation, reply role gone",
			"external_id", ap.Account.ExternalID)
		return nil
	}

	name := "tracking-" + strings.ReplaceAll(strings.ToLower(ap.Account.DisplayName), " ", "-")
	resourceID, err := r.platform.CreatePrivateResource(ctx, ap.Account.ExternalID, name)
	if err != nil {
		return fmt.Errorf("recreate resource: %w", err)
	}
	if err := r.accounts.SetResourceRef(ctx, ap.Account.ExternalID, resourceID); err != nil {
		return fmt.Errorf("persist resource ref: %w", err)
	}
	stats.Recreated++
	resourcesRecreated.Inc()

	if err := r.platform.SendMessage(ctx, resourceID,
		"Your tracking channel was recreated after a restart. All your previous data is safe, keep submitting links here."); err != nil {
		r.logger.Warn("restoration notice failed", "external_id", ap.Account.ExternalID, "error", err)
	}

	r.logger.Info("resource recreated",
		"external_id", ap.Account.ExternalID,
		"resource_id", resourceID,
	)
	return nil
}

func (r *Reconciler) notifyAdmin(ctx context.Context, text string) {
	if r.adminResource == 0 {
		return
	}
	if err := r.platform.SendMessage(ctx, r.adminResource, text); err != nil {
		r.logger.Warn("admin notification failed", "error", err)
	}
}
