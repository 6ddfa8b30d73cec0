package reporting

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/Timothyfranx/ultimatebosu/internal/domain"
)

//go:generate mockgen -source=feed.go -destination=mocks/mocks.go -package=mocks

// Store is the read-side view over tracking data.
type Store interface {
	ActivePeriod(ctx context.Context, externalID int64) (*domain.ActivePeriod, error)
	ListActive(ctx context.Context) ([]domain.ActivePeriod, error)
	TotalReplies(ctx context.Context, periodID int64) (int, error)
	CountForDay(ctx context.Context, periodID int64, day time.Time) (int, error)
	ActiveDays(ctx context.Context, periodID int64) (int, error)
	Submissions(ctx context.Context, periodID int64) ([]domain.Submission, error)
}

// Feed builds progress and summary reports from stored submissions.
type Feed struct {
	store  Store
	logger *slog.Logger
}

func NewFeed(store Store, logger *slog.Logger) *Feed {
	return &Feed{
		store:  store,
		logger: logger.With("component", "reporting"),
	}
}

// Progress reports one account's standing across its whole period.
func (f *Feed) Progress(ctx context.Context, externalID int64, now time.Time) (*domain.ProgressReport, error) {
	ap, err := f.store.ActivePeriod(ctx, externalID)
	if err != nil {
		return nil, err
	}

	total, err := f.store.TotalReplies(ctx, ap.Period.ID)
	if err != nil {
		return nil, fmt.Errorf("total replies: %w", err)
	}
	activeDays, err := f.store.ActiveDays(ctx, ap.Period.ID)
	if err != nil {
		return nil, fmt.Errorf("active days: %w", err)
	}

	today := domain.Day(now)
	todayCount := 0
	if ap.Period.ContainsDay(today) {
		todayCount, err = f.store.CountForDay(ctx, ap.Period.ID, today)
		if err != nil {
			return nil, fmt.Errorf("today count: %w", err)
		}
	}

	elapsed := daysElapsed(ap.Period.StartDate, ap.Period.EndDate, today)
	expected := elapsed * ap.Period.TargetPerDay

	pct := 0.0
	if expected > 0 {
		pct = float64(total) / float64(expected) * 100
	}

	return &domain.ProgressReport{
		Handle:        ap.Account.ClaimedHandle,
		Target:        ap.Period.TargetPerDay,
		StartDate:     ap.Period.StartDate,
		EndDate:       ap.Period.EndDate,
		Status:        ap.Period.Status,
		TotalReplies:  total,
		Expected:      expected,
		ActiveDays:    activeDays,
		DaysElapsed:   elapsed,
		TodayCount:    todayCount,
		CompletionPct: pct,
	}, nil
}

// DailySummary reports every active account's standing for one day,
// worst performers first.
func (f *Feed) DailySummary(ctx context.Context, day time.Time) ([]domain.Performance, error) {
	day = domain.Day(day)

	active, err := f.store.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active periods: %w", err)
	}

	summary := make([]domain.Performance, 0, len(active))
	for i := range active {
		ap := &active[i]
		if !ap.Period.ContainsDay(day) {
			continue
		}
		done, err := f.store.CountForDay(ctx, ap.Period.ID, day)
		if err != nil {
			f.logger.Error("day count failed", "period_id", ap.Period.ID, "error", err)
			continue
		}
		pct := float64(done) / float64(ap.Period.TargetPerDay) * 100
		summary = append(summary, domain.Performance{
			DisplayName:   ap.Account.DisplayName,
			Handle:        ap.Account.ClaimedHandle,
			Target:        ap.Period.TargetPerDay,
			Done:          done,
			CompletionPct: pct,
		})
	}

	sort.Slice(summary, func(i, j int) bool {
		return summary[i].CompletionPct < summary[j].CompletionPct
	})
	return summary, nil
}

// ScanDuplicates looks for the same post submitted twice, within one
// account and across accounts. The result is advisory: deleted or
// edited posts are indistinguishable from honest resubmissions here.
func (f *Feed) ScanDuplicates(ctx context.Context) (*domain.DuplicateReport, error) {
	active, err := f.store.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active periods: %w", err)
	}

	report := &domain.DuplicateReport{}
	crossIndex := make(map[string][]string)

	for i := range active {
		ap := &active[i]
		subs, err := f.store.Submissions(ctx, ap.Period.ID)
		if err != nil {
			f.logger.Error("submission scan failed", "period_id", ap.Period.ID, "error", err)
			continue
		}

		byPost := make(map[string][]domain.Submission)
		for _, sub := range subs {
			if sub.PostID == "" {
				continue
			}
			byPost[sub.PostID] = append(byPost[sub.PostID], sub)
		}

		acc := domain.AccountDuplicates{
			ExternalID:  ap.Account.ExternalID,
			DisplayName: ap.Account.DisplayName,
			Handle:      ap.Account.ClaimedHandle,
			Total:       len(subs),
		}
		for postID, group := range byPost {
			crossIndex[postID] = appendUnique(crossIndex[postID], ap.Account.ClaimedHandle)
			if len(group) < 2 {
				continue
			}
			entry := domain.DuplicateEntry{
				PostID: postID,
				Link:   group[0].Link,
			}
			for _, sub := range group {
				entry.Days = append(entry.Days, sub.OccurredOn)
				entry.Ordinals = append(entry.Ordinals, sub.Ordinal)
			}
			acc.Duplicates = append(acc.Duplicates, entry)
		}
		if len(acc.Duplicates) > 0 {
			sort.Slice(acc.Duplicates, func(i, j int) bool {
				return acc.Duplicates[i].PostID < acc.Duplicates[j].PostID
			})
		}
		report.Scanned = append(report.Scanned, acc)
	}

	for postID, handles := range crossIndex {
		if len(handles) < 2 {
			continue
		}
		sort.Strings(handles)
		report.CrossAccount = append(report.CrossAccount, domain.CrossDuplicate{
			PostID:   postID,
			Accounts: handles,
		})
	}
	sort.Slice(report.CrossAccount, func(i, j int) bool {
		return report.CrossAccount[i].PostID < report.CrossAccount[j].PostID
	})

	return report, nil
}

// daysElapsed counts the days of the window that are already behind us,
// today included, clamped to the window length.
func daysElapsed(start, end, today time.Time) int {
	if today.Before(start) {
		return 0
	}
	last := today
	if last.After(end) {
		last = end
	}
	return int(last.Sub(start).Hours()/24) + 1
}

func appendUnique(list []string, v string) []string {
	for _, x := range list {
		if x == v {
			return list
		}
	}
	return append(list, v)
}
