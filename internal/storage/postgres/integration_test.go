//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Timothyfranx/ultimatebosu/internal/domain"
	"github.com/Timothyfranx/ultimatebosu/internal/storage"
	"github.com/Timothyfranx/ultimatebosu/internal/tracker"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB

	accounts *AccountStore
	periods  *PeriodStore
	subs     *SubmissionStore
	tx       *storage.TransactionManager
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := Connect(connStr)
	s.Require().NoError(err)
	s.db = db

	s.accounts = NewAccountStore(db)
	s.periods = NewPeriodStore(db)
	s.subs = NewSubmissionStore(db)
	s.tx = storage.NewTransactionManager(db)
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM submissions")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM tracking_periods")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM accounts")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) seedAccount(externalID int64, handle string) int64 {
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

func (s *PostgresIntegrationSuite) seedPeriod(accountID int64, target int) int64 {
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

func (s *PostgresIntegrationSuite) TestAccountStore_UpsertAndGet() {
	s.seedAccount(1001, "alice")

	acc, err := s.accounts.GetByExternalID(s.ctx, 1001)
	s.Require().NoError(err)
	s.Equal("alice", acc.ClaimedHandle)
	s.Require().NotNil(acc.ResourceRef)
	s.Equal(int64(100100), *acc.ResourceRef)

	// Second upsert replaces mutable fields, keeps the row.
	newRef := int64(9999)
	id2, err := s.accounts.Upsert(s.ctx, &domain.Account{
		ExternalID:    1001,
		DisplayName:   "Alice J",
		ClaimedHandle: "alice_j",
		ResourceRef:   &newRef,
	})
	s.Require().NoError(err)
	s.Equal(acc.ID, id2)

	acc, err = s.accounts.GetByExternalID(s.ctx, 1001)
	s.Require().NoError(err)
	s.Equal("alice_j", acc.ClaimedHandle)
}

func (s *PostgresIntegrationSuite) TestAccountStore_NotFound() {
	_, err := s.accounts.GetByExternalID(s.ctx, 404)
	s.ErrorIs(err, domain.ErrAccountNotFound)

	err = s.accounts.SetResourceRef(s.ctx, 404, 1)
	s.ErrorIs(err, domain.ErrAccountNotFound)
}

func (s *PostgresIntegrationSuite) TestPeriodStore_OneActivePerAccount() {
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

func (s *PostgresIntegrationSuite) TestPeriodStore_StatusTransitions() {
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

func (s *PostgresIntegrationSuite) TestSubmissions_CountAndOrdinals() {
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

	// Duplicate ordinal on the same day must violate the constraint.
	err = s.subs.InsertBatch(s.ctx, []domain.Submission{
		{PeriodID: periodID, OccurredOn: today, Link: "https://x.com/alice/status/3", Ordinal: 2, PostID: "3", Valid: true},
	})
	s.Error(err)
}

func (s *PostgresIntegrationSuite) TestTransaction_RollbackDiscardsWrites() {
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

type noopSink struct{}

func (noopSink) WriteRow(context.Context, int64, time.Time, int, string) error { return nil }

func (noopSink) GenerateTemplate(context.Context, int64, int, time.Time, time.Time) (string, error) {
	return "", nil
}

func (s *PostgresIntegrationSuite) TestConcurrentBatchesNeverOvershootTarget() {
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

func (s *PostgresIntegrationSuite) TestListBehindTarget() {
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
	s.Equal(5, targets[0].Target)
	s.Equal(1, targets[0].Done)
}
