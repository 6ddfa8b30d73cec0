package sqlite

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"

	"github.com/Timothyfranx/ultimatebosu/internal/domain"
	"github.com/Timothyfranx/ultimatebosu/internal/storage"
	"github.com/Timothyfranx/ultimatebosu/internal/tracker"
)

type SqliteStoreSuite struct {
	suite.Suite
	ctx context.Context
	db  *sqlx.DB

	accounts *AccountStore
	periods  *PeriodStore
	subs     *SubmissionStore
	tx       *storage.TransactionManager
}

func (s *SqliteStoreSuite) SetupTest() {
	s.ctx = context.Background()

	db, err := Connect(filepath.Join(s.T().TempDir(), "tracker.db"))
	s.Require().NoError(err)
	s.db = db

	s.accounts = NewAccountStore(db)
	s.periods = NewPeriodStore(db)
	s.subs = NewSubmissionStore(db)
	s.tx = storage.NewTransactionManager(db)
}

func (s *SqliteStoreSuite) TearDownTest() {
	if s.db != nil {
		s.db.Close()
	}
}

func TestSqliteStoreSuite(t *testing.T) {
	suite.Run(t, new(SqliteStoreSuite))
}

func (s *SqliteStoreSuite) seedAccount(externalID int64, handle string) int64 {
	ref := externalID * 100
	id, err := s.accounts.Upsert(s.ctx, &domain.Account{
		ExternalID:    externalID,
		DisplayName:   handle,
		ClaimedHandle: handle,
		ResourceRef:   &ref,
	})
	s.Require().NoError(err)
	return id
}

func (s *SqliteStoreSuite) seedPeriod(accountID int64, target int) int64 {
	today := domain.Day(time.Now())
	id, err := s.periods.Create(s.ctx, &domain.TrackingPeriod{
		AccountID:    accountID,
		TargetPerDay: target,
		StartDate:    today.AddDate(0, 0, -5),
		EndDate:      today.AddDate(0, 0, 55),
		Status:       domain.StatusActive,
	})
	s.Require().NoError(err)
	return id
}

func (s *SqliteStoreSuite) TestAccountUpsertAndGet() {
	id := s.seedAccount(1001, "alice")

	acc, err := s.accounts.GetByExternalID(s.ctx, 1001)
	s.Require().NoError(err)
	s.Equal(id, acc.ID)
	s.Equal("alice", acc.ClaimedHandle)

	id2, err := s.accounts.Upsert(s.ctx, &domain.Account{
		ExternalID:    1001,
		DisplayName:   "Alice J",
		ClaimedHandle: "alice_j",
	})
	s.Require().NoError(err)
	s.Equal(id, id2)

	acc, err = s.accounts.GetByExternalID(s.ctx, 1001)
	s.Require().NoError(err)
	s.Equal("alice_j", acc.ClaimedHandle)
}

func (s *SqliteStoreSuite) TestAccountNotFound() {
	_, err := s.accounts.GetByExternalID(s.ctx, 404)
	s.ErrorIs(err, domain.ErrAccountNotFound)

	s.ErrorIs(s.accounts.SetResourceRef(s.ctx, 404, 1), domain.ErrAccountNotFound)
}

func (s *SqliteStoreSuite) TestOneActivePeriodPerAccount() {
	accID := s.seedAccount(1001, "alice")
	s.seedPeriod(accID, 5)

	today := domain.Day(time.Now())
	_, err := s.periods.Create(s.ctx, &domain.TrackingPeriod{
		AccountID:    accID,
		TargetPerDay: 10,
		StartDate:    today,
		EndDate:      today.AddDate(0, 0, 60),
		Status:       domain.StatusActive,
	})
	s.Error(err, "partial unique index must reject a second active period")
}

func (s *SqliteStoreSuite) TestPeriodStatusTransitions() {
	accID := s.seedAccount(1001, "alice")
	periodID := s.seedPeriod(accID, 5)

	ap, err := s.periods.GetActiveByExternalID(s.ctx, 1001)
	s.Require().NoError(err)
	s.Equal(periodID, ap.Period.ID)
	s.Equal("alice", ap.Account.ClaimedHandle)

	s.Require().NoError(s.periods.UpdateStatus(s.ctx, periodID, domain.StatusPaused))
	_, err = s.periods.GetActiveByExternalID(s.ctx, 1001)
	s.ErrorIs(err, domain.ErrNoActivePeriod)

	paused, err := s.periods.GetByStatus(s.ctx, 1001, domain.StatusPaused)
	s.Require().NoError(err)
	s.Equal(periodID, paused.Period.ID)
}

func (s *SqliteStoreSuite) TestSubmissionsInsideTransaction() {
	accID := s.seedAccount(1001, "alice")
	periodID := s.seedPeriod(accID, 5)
	today := domain.Day(time.Now())

	err := s.tx.WithTransaction(s.ctx, func(txCtx context.Context) error {
		if err := s.periods.Lock(txCtx, periodID); err != nil {
			return err
		}
		return s.subs.InsertBatch(txCtx, []domain.Submission{
			{PeriodID: periodID, OccurredOn: today, Link: "https://x.com/alice/status/1", Ordinal: 1, PostID: "1", Valid: true},
			{PeriodID: periodID, OccurredOn: today, Link: "https://x.com/alice/status/2", Ordinal: 2, PostID: "2", Valid: true},
		})
	})
	s.Require().NoError(err)

	count, err := s.subs.CountForDay(s.ctx, periodID, today)
	s.Require().NoError(err)
	s.Equal(2, count)
}

func (s *SqliteStoreSuite) TestTransactionRollback() {
	accID := s.seedAccount(1001, "alice")
	periodID := s.seedPeriod(accID, 5)
	today := domain.Day(time.Now())

	err := s.tx.WithTransaction(s.ctx, func(txCtx context.Context) error {
		if err := s.subs.InsertBatch(txCtx, []domain.Submission{
			{PeriodID: periodID, OccurredOn: today, Link: "https://x.com/alice/status/1", Ordinal: 1, Valid: true},
		}); err != nil {
			return err
		}
		return context.Canceled
	})
	s.Error(err)

	count, err := s.subs.CountForDay(s.ctx, periodID, today)
	s.Require().NoError(err)
	s.Equal(0, count)
}

func (s *SqliteStoreSuite) TestListBehindTarget() {
	accID := s.seedAccount(1001, "alice")
	periodID := s.seedPeriod(accID, 5)
	today := domain.Day(time.Now())

	s.Require().NoError(s.subs.InsertBatch(s.ctx, []domain.Submission{
		{PeriodID: periodID, OccurredOn: today, Link: "https://x.com/alice/status/1", Ordinal: 1, Valid: true},
	}))

	targets, err := s.periods.ListBehindTarget(s.ctx, today)
	s.Require().NoError(err)
	s.Require().Len(targets, 1)
	s.Equal(int64(1001), targets[0].ExternalID)
	s.Equal(1, targets[0].Done)
}

type noopSink struct{}

func (noopSink) WriteRow(context.Context, int64, time.Time, int, string) error { return nil }

func (noopSink) GenerateTemplate(context.Context, int64, int, time.Time, time.Time) (string, error) {
	return "", nil
}

func (s *SqliteStoreSuite) TestConcurrentBatchesNeverOvershootTarget() {
	accID := s.seedAccount(1001, "alice")
	periodID := s.seedPeriod(accID, 5)
	today := domain.Day(time.Now())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ledger := tracker.NewLedger(s.periods, s.subs, s.tx, noopSink{}, logger)

	ap, err := s.periods.GetActiveByExternalID(s.ctx, 1001)
	s.Require().NoError(err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		batch := []string{
			fmt.Sprintf("https://x.com/alice/status/%d", 100*i+1),
			fmt.Sprintf("https://x.com/alice/status/%d", 100*i+2),
			fmt.Sprintf("https://x.com/alice/status/%d", 100*i+3),
		}
		wg.Add(1)
		go func(i int, batch []string) {
			defer wg.Done()
			_, errs[i] = ledger.Submit(s.ctx, ap, today, batch)
		}(i, batch)
	}
	wg.Wait()

	count, err := s.subs.CountForDay(s.ctx, periodID, today)
	s.Require().NoError(err)
	s.Equal(3, count, "only one batch of three fits under target 5")

	accepted, rejected := 0, 0
	for _, err := range errs {
		var quotaErr *domain.QuotaError
		switch {
		case err == nil:
			accepted++
		case errors.As(err, &quotaErr):
			rejected++
			s.Equal(2, quotaErr.Remaining)
		default:
			s.Failf("unexpected submit error", "%v", err)
		}
	}
	s.Equal(1, accepted)
	s.Equal(1, rejected)
}

func (s *SqliteStoreSuite) TestReportingStore() {
	accID := s.seedAccount(1001, "alice")
	periodID := s.seedPeriod(accID, 5)
	today := domain.Day(time.Now())
	yesterday := today.AddDate(0, 0, -1)

	s.Require().NoError(s.subs.InsertBatch(s.ctx, []domain.Submission{
		{PeriodID: periodID, OccurredOn: yesterday, Link: "https://x.com/alice/status/1", Ordinal: 1, PostID: "1", Valid: true},
		{PeriodID: periodID, OccurredOn: today, Link: "https://x.com/alice/status/2", Ordinal: 1, PostID: "2", Valid: true},
		{PeriodID: periodID, OccurredOn: today, Link: "https://x.com/alice/status/1", Ordinal: 2, PostID: "1", Valid: true},
	}))

	reporting := NewReportingStore(s.db, s.periods)

	total, err := reporting.TotalReplies(s.ctx, periodID)
	s.Require().NoError(err)
	s.Equal(3, total)

	days, err := reporting.ActiveDays(s.ctx, periodID)
	s.Require().NoError(err)
	s.Equal(2, days)

	subs, err := reporting.Submissions(s.ctx, periodID)
	s.Require().NoError(err)
	s.Require().Len(subs, 3)
	s.Equal("1", subs[0].PostID)
}
