package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Timothyfranx/ultimatebosu/internal/domain"
	"github.com/Timothyfranx/ultimatebosu/internal/storage"
)

type PeriodStore struct {
	db *sqlx.DB
}

func NewPeriodStore(db *sqlx.DB) *PeriodStore {
	return &PeriodStore{db: db}
}

// activePeriodColumns is the shared select list for period+account joins.
const activePeriodColumns = `
	p.id, p.account_id, p.target_per_day, p.start_date, p.end_date,
	p.status, p.report_ref, p.created_at, p.updated_at,
	a.id, a.external_id, a.display_name, a.claimed_handle,
	a.resource_ref, a.created_at, a.updated_at`

func scanActivePeriod(row sqlx.ColScanner) (*domain.ActivePeriod, error) {
	var ap domain.ActivePeriod
	err := row.Scan(
		&ap.Period.ID, &ap.Period.AccountID, &ap.Period.TargetPerDay,
		&ap.Period.StartDate, &ap.Period.EndDate, &ap.Period.Status,
		&ap.Period.ReportRef, &ap.Period.CreatedAt, &ap.Period.UpdatedAt,
		&ap.Account.ID, &ap.Account.ExternalID, &ap.Account.DisplayName,
		&ap.Account.ClaimedHandle, &ap.Account.ResourceRef,
		&ap.Account.CreatedAt, &ap.Account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ap, nil
}

func (s *PeriodStore) Create(ctx context.Context, p *domain.TrackingPeriod) (int64, error) {
	query := `
		INSERT INTO tracking_periods (account_id, target_per_day, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := storage.GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		p.AccountID,
		p.TargetPerDay,
		p.StartDate,
		p.EndDate,
		p.Status,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *PeriodStore) GetActiveByExternalID(ctx context.Context, externalID int64) (*domain.ActivePeriod, error) {
	ap, err := s.getByStatus(ctx, externalID, domain.StatusActive)
	if errors.Is(err, domain.ErrPeriodNotFound) {
		return nil, domain.ErrNoActivePeriod
	}
	return ap, err
}

func (s *PeriodStore) GetByStatus(ctx context.Context, externalID int64, status domain.PeriodStatus) (*domain.ActivePeriod, error) {
	return s.getByStatus(ctx, externalID, status)
}

func (s *PeriodStore) getByStatus(ctx context.Context, externalID int64, status domain.PeriodStatus) (*domain.ActivePeriod, error) {
	query := `
		SELECT ` + activePeriodColumns + `
		FROM tracking_periods p
		JOIN accounts a ON a.id = p.account_id
		WHERE a.external_id = $1 AND p.status = $2
		ORDER BY p.created_at DESC
		LIMIT 1`

	row := storage.GetExecutor(ctx, s.db).QueryRowxContext(ctx, query, externalID, status)
	ap, err := scanActivePeriod(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPeriodNotFound
	}
	if err != nil {
		return nil, err
	}
	return ap, nil
}

func (s *PeriodStore) UpdateStatus(ctx context.Context, periodID int64, status domain.PeriodStatus) error {
	query := `
		UPDATE tracking_periods
		SET status = $2, updated_at = now()
		WHERE id = $1`

	res, err := storage.GetExecutor(ctx, s.db).ExecContext(ctx, query, periodID, status)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *PeriodStore) UpdateTarget(ctx context.Context, periodID int64, target int) error {
	query := `
		UPDATE tracking_periods
		SET target_per_day = $2, updated_at = now()
		WHERE id = $1`

	res, err := storage.GetExecutor(ctx, s.db).ExecContext(ctx, query, periodID, target)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *PeriodStore) SetReportRef(ctx context.Context, periodID int64, ref string) error {
	query := `
		UPDATE tracking_periods
		SET report_ref = $2, updated_at = now()
		WHERE id = $1`

	res, err := storage.GetExecutor(ctx, s.db).ExecContext(ctx, query, periodID, ref)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *PeriodStore) ListActive(ctx context.Context) ([]domain.ActivePeriod, error) {
	query := `
		SELECT ` + activePeriodColumns + `
		FROM tracking_periods p
		JOIN accounts a ON a.id = p.account_id
		WHERE p.status = $1
		ORDER BY p.id`

	rows, err := storage.GetExecutor(ctx, s.db).QueryxContext(ctx, query, domain.StatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ActivePeriod
	for rows.Next() {
		ap, err := scanActivePeriod(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *ap)
	}
	return result, rows.Err()
}

// ListBehindTarget finds active accounts whose accepted count for day is
// below their daily target and whose window contains day.
func (s *PeriodStore) ListBehindTarget(ctx context.Context, day time.Time) ([]domain.ReminderTarget, error) {
	query := `
		SELECT
			a.external_id,
			a.resource_ref,
			p.target_per_day,
			COUNT(s.id) AS done
		FROM tracking_periods p
		JOIN accounts a ON a.id = p.account_id
		LEFT JOIN submissions s ON s.period_id = p.id AND s.occurred_on = $1
		WHERE p.status = $2
		  AND p.start_date <= $1
		  AND p.end_date >= $1
		GROUP BY a.external_id, a.resource_ref, p.target_per_day
		HAVING COUNT(s.id) < p.target_per_day`

	var targets []domain.ReminderTarget
	err := sqlx.SelectContext(ctx, storage.GetExecutor(ctx, s.db), &targets, query, day, domain.StatusActive)
	if err != nil {
		return nil, err
	}
	return targets, nil
}

// Lock takes a row lock on the period for the duration of the enclosing
// transaction. Serializes concurrent quota checks for the same period.
func (s *PeriodStore) Lock(ctx context.Context, periodID int64) error {
	query := `SELECT id FROM tracking_periods WHERE id = $1 FOR UPDATE`

	var id int64
	err := sqlx.GetContext(ctx, storage.GetExecutor(ctx, s.db), &id, query, periodID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrPeriodNotFound
	}
	return err
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrPeriodNotFound
	}
	return nil
}
