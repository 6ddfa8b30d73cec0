package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Timothyfranx/ultimatebosu/internal/domain"
	"github.com/Timothyfranx/ultimatebosu/internal/links"
)

// Router dispatches inbound platform events: onboarding input,
// submission batches in tracking resources, role grants and departures.
// Every handler converts failures to the error taxonomy at its boundary;
// nothing here is allowed to take the process down.
type Router struct {
	extractor *links.Extractor
	accounts  AccountStore
	periods   PeriodStore
	ledger    *Ledger
	onboarder *Onboarder
	sessions  *SessionStore
	platform  Platform
	clock     Clock
	logger    *slog.Logger

	replyRole     string
	adminResource int64
}

func NewRouter(
	extractor *links.Extractor,
	accounts AccountStore,
	periods PeriodStore,
	ledger *Ledger,
	onboarder *Onboarder,
	sessions *SessionStore,
	platform Platform,
	clock Clock,
	logger *slog.Logger,
	replyRole string,
	adminResource int64,
) *Router {
	return &Router{
		extractor:     extractor,
		accounts:      accounts,
		periods:       periods,
		ledger:        ledger,
		onboarder:     onboarder,
		sessions:      sessions,
		platform:      platform,
		clock:         clock,
		logger:        logger.With("component", "router"),
		replyRole:     replyRole,
		adminResource: adminResource,
	}
}

// HandleMessage routes one inbound chat message.
func (rt *Router) HandleMessage(ctx context.Context, ev domain.MessageEvent) error {
	if ev.AuthorBot {
		return nil
	}

	if sess, ok := rt.sessions.Get(ev.AuthorID); ok {
		if sess.ResourceID == ev.ResourceID {
			return rt.onboarder.HandleInput(ctx, ev.AuthorID, ev.Text)
		}
		// Mid-onboarding chatter elsewhere is none of our business.
		return nil
	}

	if !ev.TrackingResource {
		return nil
	}
	return rt.handleSubmission(ctx, ev)
}

func (rt *Router) handleSubmission(ctx context.Context, ev domain.MessageEvent) error {
	candidates := rt.extractor.Extract(ev.Text)
	if len(candidates) == 0 {
		return nil
	}

	acc, err := rt.accounts.GetByExternalID(ctx, ev.AuthorID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			// A stranger posting links in a tracking resource is a
			// consistency signal, not a user error. Dropped without reply.
			rt.logger.Warn("message in tracking resource from unknown account",
				"external_id", ev.AuthorID,
				"resource_id", ev.ResourceID,
			)
			return nil
		}
		return fmt.Errorf("load account: %w", err)
	}

	if acc.ResourceRef == nil || *acc.ResourceRef != ev.ResourceID {
		// The owner found their way into a recreated resource before we
		// persisted the new ref. Heal the ref and carry on.
		if err := rt.accounts.SetResourceRef(ctx, ev.AuthorID, ev.ResourceID); err != nil {
			return fmt.Errorf("heal resource ref: %w", err)
		}
		rt.logger.Info("resource ref updated from live traffic",
			"external_id", ev.AuthorID,
			"resource_id", ev.ResourceID,
		)
	}

	ap, err := rt.periods.GetActiveByExternalID(ctx, ev.AuthorID)
	if err != nil {
		if errors.Is(err, domain.ErrNoActivePeriod) {
			rt.logger.Warn("submission without active tracking period",
				"external_id", ev.AuthorID,
				"resource_id", ev.ResourceID,
			)
			rt.send(ctx, ev.ResourceID, "No active tracking session found. Contact an admin if this is a mistake.")
			return nil
		}
		return fmt.Errorf("load active period: %w", err)
	}

	result, err := rt.ledger.Submit(ctx, ap, rt.clock.Now(), candidates)
	if err != nil {
		return rt.replySubmitError(ctx, ev.ResourceID, ap, err)
	}

	if len(result.Accepted) == 0 {
		rt.send(ctx, ev.ResourceID, fmt.Sprintf(
			"None of those links are from your registered account (@%s) or they aren't status links.\nValid format: https://x.com/%s/status/1234567890",
			ap.Account.ClaimedHandle, ap.Account.ClaimedHandle,
		))
		return nil
	}

	msg := fmt.Sprintf("Logged %d reply(s). Today: %d/%d.",
		len(result.Accepted), result.TodayCount, ap.Period.TargetPerDay)
	if n := len(result.Rejected); n > 0 {
		msg += fmt.Sprintf(" %d link(s) rejected (wrong account or format).", n)
	}
	rt.send(ctx, ev.ResourceID, msg)
	return nil
}

func (rt *Router) replySubmitError(ctx context.Context, resourceID int64, ap *domain.ActivePeriod, err error) error {
	var quotaErr *domain.QuotaError
	switch {
	case errors.As(err, &quotaErr) && quotaErr.Boundary:
		today := domain.Day(rt.clock.Now())
		if today.Before(domain.Day(ap.Period.StartDate)) {
			rt.send(ctx, resourceID, fmt.Sprintf("Tracking hasn't started yet. Start date: %s.", ap.Period.StartDate.Format(dateLayout)))
		} else {
			rt.send(ctx, resourceID, fmt.Sprintf("Tracking period has ended. End date: %s.", ap.Period.EndDate.Format(dateLayout)))
		}
		return nil
	case errors.As(err, &quotaErr):
		if quotaErr.Remaining > 0 {
			rt.send(ctx, resourceID, fmt.Sprintf(
				"That batch would exceed your daily target of %d. You can submit %d more today.",
				ap.Period.TargetPerDay, quotaErr.Remaining,
			))
		} else {
			rt.send(ctx, resourceID, fmt.Sprintf(
				"You've already reached your daily target of %d replies!",
				ap.Period.TargetPerDay,
			))
		}
		return nil
	case errors.Is(err, domain.ErrPeriodNotActive):
		rt.send(ctx, resourceID, "Your tracking session is not active right now.")
		return nil
	default:
		// Persistence failure: the user must know nothing was recorded,
		// distinct from a validation rejection.
		rt.send(ctx, resourceID, "Failed to save replies. Nothing was recorded, please contact an admin.")
		return fmt.Errorf("submit batch: %w", err)
	}
}

// HandleRoleGrant starts setup when a member gains the reply role.
func (rt *Router) HandleRoleGrant(ctx context.Context, ev domain.RoleGrantEvent) error {
	if !strings.EqualFold(ev.Role, rt.replyRole) {
		return nil
	}

	if _, err := rt.periods.GetActiveByExternalID(ctx, ev.MemberID); err == nil {
		rt.logger.Info("role granted but tracking already active", "external_id", ev.MemberID)
		return nil
	} else if !errors.Is(err, domain.ErrNoActivePeriod) {
		return fmt.Errorf("check active period: %w", err)
	}

	displayName := fmt.Sprintf("member-%d", ev.MemberID)
	if acc, err := rt.accounts.GetByExternalID(ctx, ev.MemberID); err == nil {
		displayName = acc.DisplayName
	}

	if err := rt.onboarder.Begin(ctx, ev.MemberID, displayName); err != nil {
		rt.logger.Error("setup failed", "external_id", ev.MemberID, "error", err)
		rt.send(ctx, rt.adminResource, fmt.Sprintf("Could not create a tracking channel for member %d: %v", ev.MemberID, err))
		return err
	}
	return nil
}

// HandleMemberRemove closes out a departed member.
func (rt *Router) HandleMemberRemove(ctx context.Context, ev domain.MemberRemoveEvent) error {
	rt.sessions.Remove(ev.MemberID)

	ap, err := rt.periods.GetActiveByExternalID(ctx, ev.MemberID)
	if err != nil {
		if errors.Is(err, domain.ErrNoActivePeriod) {
			return nil
		}
		return fmt.Errorf("load active period: %w", err)
	}

	if err := rt.periods.UpdateStatus(ctx, ap.Period.ID, domain.StatusLeftServer); err != nil {
		return fmt.Errorf("mark left_server: %w", err)
	}
	membersDeparted.Inc()

	if ap.Account.ResourceRef != nil {
		if err := rt.platform.DeleteResource(ctx, *ap.Account.ResourceRef, "member left the server"); err != nil {
			rt.logger.Warn("resource delete failed",
				"external_id", ev.MemberID,
				"resource_id", *ap.Account.ResourceRef,
				"error", err,
			)
		}
	}

	rt.send(ctx, rt.adminResource, fmt.Sprintf(
		"%s (@%s) left the server. Tracking closed, target was %d/day, period %s to %s.",
		ap.Account.DisplayName, ap.Account.ClaimedHandle,
		ap.Period.TargetPerDay,
		ap.Period.StartDate.Format(dateLayout), ap.Period.EndDate.Format(dateLayout),
	))

	rt.logger.Info("member departure handled", "external_id", ev.MemberID)
	return nil
}

func (rt *Router) send(ctx context.Context, resourceID int64, text string) {
	if resourceID == 0 {
		return
	}
	if err := rt.platform.SendMessage(ctx, resourceID, text); err != nil {
		rt.logger.Warn("send failed", "resource_id", resourceID, "error", err)
	}
}
