package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Timothyfranx/ultimatebosu/internal/domain"
	"github.com/Timothyfranx/ultimatebosu/internal/storage"
)

type SubmissionStore struct {
	db *sqlx.DB
}

func NewSubmissionStore(db *sqlx.DB) *SubmissionStore {
	return &SubmissionStore{db: db}
}

func (s *SubmissionStore) CountForDay(ctx context.Context, periodID int64, day time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM submissions
		WHERE period_id = $1 AND occurred_on = $2`

	var count int
	err := sqlx.GetContext(ctx, storage.GetExecutor(ctx, s.db), &count, query, periodID, day)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *SubmissionStore) InsertBatch(ctx context.Context, subs []domain.Submission) error {
	if len(subs) == 0 {
		return nil
	}

	query := `
		INSERT INTO submissions (period_id, occurred_on, link, ordinal, extracted_handle, post_id, valid)
		VALUES (:period_id, :occurred_on, :link, :ordinal, :extracted_handle, :post_id, :valid)`

	_, err := sqlx.NamedExecContext(ctx, storage.GetExecutor(ctx, s.db), query, subs)
	return err
}
