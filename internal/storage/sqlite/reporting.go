package sqlite

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Timothyfranx/ultimatebosu/internal/domain"
	"github.com/Timothyfranx/ultimatebosu/internal/storage"
)

// ReportingStore is the read-side companion to the write stores.
type ReportingStore struct {
	db      *sqlx.DB
	periods *PeriodStore
}

func NewReportingStore(db *sqlx.DB, periods *PeriodStore) *ReportingStore {
	return &ReportingStore{db: db, periods: periods}
}

func (s *ReportingStore) ActivePeriod(ctx context.Context, externalID int64) (*domain.ActivePeriod, error) {
	return s.periods.GetActiveByExternalID(ctx, externalID)
}

func (s *ReportingStore) ListActive(ctx context.Context) ([]domain.ActivePeriod, error) {
	return s.periods.ListActive(ctx)
}

func (s *ReportingStore) TotalReplies(ctx context.Context, periodID int64) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, storage.GetExecutor(ctx, s.db), &count,
		`SELECT COUNT(*) FROM submissions WHERE period_id = ?`, periodID)
	return count, err
}

func (s *ReportingStore) CountForDay(ctx context.Context, periodID int64, day time.Time) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, storage.GetExecutor(ctx, s.db), &count,
		`SELECT COUNT(*) FROM submissions WHERE period_id = ? AND occurred_on = ?`, periodID, day)
	return count, err
}

func (s *ReportingStore) ActiveDays(ctx context.Context, periodID int64) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, storage.GetExecutor(ctx, s.db), &count,
		`SELECT COUNT(DISTINCT occurred_on) FROM submissions WHERE period_id = ?`, periodID)
	return count, err
}

func (s *ReportingStore) Submissions(ctx context.Context, periodID int64) ([]domain.Submission, error) {
	query := `
		SELECT id, period_id, occurred_on, link, ordinal, extracted_handle, post_id, valid, created_at
		FROM submissions
		WHERE period_id = ?
		ORDER BY occurred_on, ordinal`

	var subs []domain.Submission
	err := sqlx.SelectContext(ctx, storage.GetExecutor(ctx, s.db), &subs, query, periodID)
	if err != nil {
		return nil, err
	}
	return subs, nil
}
