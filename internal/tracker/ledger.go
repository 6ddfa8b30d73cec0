package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Timothyfranx/ultimatebosu/internal/domain"
	"github.com/Timothyfranx/ultimatebosu/internal/links"
)

// Ledger enforces the per-day submission cap and assigns ordinals.
type Ledger struct {
	periods PeriodStore
	subs    SubmissionStore
	tx      TransactionManager
	sink    ReportSink
	logger  *slog.Logger
}

func NewLedger(
	periods PeriodStore,
	subs SubmissionStore,
	tx TransactionManager,
	sink ReportSink,
	logger *slog.Logger,
) *Ledger {
	return &Ledger{
		periods: periods,
		subs:    subs,
		tx:      tx,
		sink:    sink,
		logger:  logger.With("component", "ledger"),
	}
}

// Submit runs one candidate batch against the period's daily quota.
//
// Ownership failures land in the result's Rejected list. A day outside
// the period window or a batch that would overshoot the target rejects
// the whole batch via *domain.QuotaError: nothing is persisted and the
// error carries the remaining capacity. Acceptance is all-or-nothing per
// batch, so ordinals stay dense and gap-free.
func (l *Ledger) Submit(ctx context.Context, ap *domain.ActivePeriod, day time.Time, candidates []string) (*domain.SubmitResult, error) {
	period := &ap.Period
	day = domain.Day(day)

	if period.Status != domain.StatusActive {
		return nil, domain.ErrPeriodNotActive
	}
	if !period.ContainsDay(day) {
		return nil, &domain.QuotaError{PeriodID: period.ID, Day: day, Boundary: true}
	}

	result := &domain.SubmitResult{}
	surviving := make([]string, 0, len(candidates))
	for _, link := range candidates {
		if links.OwnsPost(link, ap.Account.ClaimedHandle) {
			surviving = append(surviving, link)
		} else {
			result.Rejected = append(result.Rejected, domain.RejectedLink{
				Link:   link,
				Reason: domain.RejectOwnership,
			})
			submissionsRejected.WithLabelValues(string(domain.RejectOwnership)).Inc()
		}
	}

	if len(surviving) == 0 {
		existing, err := l.subs.CountForDay(ctx, period.ID, day)
		if err != nil {
			return nil, fmt.Errorf("count submissions: %w", err)
		}
		result.TodayCount = existing
		result.Remaining = period.TargetPerDay - existing
		return result, nil
	}

	err := l.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := l.periods.Lock(txCtx, period.ID); err != nil {
			return fmt.Errorf("lock period: %w", err)
		}

		existing, err := l.subs.CountForDay(txCtx, period.ID, day)
		if err != nil {
			return fmt.Errorf("count submissions: %w", err)
		}

		if existing+len(surviving) > period.TargetPerDay {
			return &domain.QuotaError{
				PeriodID:  period.ID,
				Day:       day,
				Reason:    domain.RejectQuota,
				Remaining: period.TargetPerDay - existing,
			}
		}

		subs := make([]domain.Submission, len(surviving))
		for i, link := range surviving {
			subs[i] = domain.Submission{
				PeriodID:        period.ID,
				OccurredOn:      day,
				Link:            link,
				Ordinal:         existing + i + 1,
				ExtractedHandle: links.Handle(link),
				PostID:          links.PostID(link),
				Valid:           true,
			}
		}
		if err := l.subs.InsertBatch(txCtx, subs); err != nil {
			return fmt.Errorf("insert submissions: %w", err)
		}

		result.Accepted = subs
		result.TodayCount = existing + len(subs)
		result.Remaining = period.TargetPerDay - result.TodayCount
		return nil
	})
	if err != nil {
		var quotaErr *domain.QuotaError
		if errors.As(err, &quotaErr) {
			submissionsRejected.WithLabelValues(string(domain.RejectQuota)).Add(float64(len(surviving)))
			return nil, quotaErr
		}
		return nil, err
	}

	submissionsAccepted.Add(float64(len(result.Accepted)))

	// Report rows are derived data; a sink failure never unwinds the
	// accepted submissions.
	for _, sub := range result.Accepted {
		if err := l.sink.WriteRow(ctx, sub.PeriodID, sub.OccurredOn, sub.Ordinal, sub.Link); err != nil {
			l.logger.Error("report row write failed",
				"period_id", sub.PeriodID,
				"ordinal", sub.Ordinal,
				"error", err,
			)
		}
	}

	l.logger.Info("batch accepted",
		"period_id", period.ID,
		"day", day.Format("2006-01-02"),
		"accepted", len(result.Accepted),
		"rejected", len(result.Rejected),
		"today", result.TodayCount,
	)

	return result, nil
}
