package tracker

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/Timothyfranx/ultimatebosu/internal/domain"
)

type AccountStore interface {
	GetByExternalID(ctx context.Context, externalID int64) (*domain.Account, error)
	Upsert(ctx context.Context, acc *domain.Account) (int64, error)
	SetResourceRef(ctx context.Context, externalID int64, resourceID int64) error
}

type PeriodStore interface {
	Create(ctx context.Context, p *domain.TrackingPeriod) (int64, error)
	GetActiveByExternalID(ctx context.Context, externalID int64) (*domain.ActivePeriod, error)
	GetByStatus(ctx context.Context, externalID int64, status domain.PeriodStatus) (*domain.ActivePeriod, error)
	UpdateStatus(ctx context.Context, periodID int64, status domain.PeriodStatus) error
	UpdateTarget(ctx context.Context, periodID int64, target int) error
	SetReportRef(ctx context.Context, periodID int64, ref string) error
	ListActive(ctx context.Context) ([]domain.ActivePeriod, error)
	ListBehindTarget(ctx context.Context, day time.Time) ([]domain.ReminderTarget, error)
	// Lock takes a row lock on the period for the duration of the ambient
	// transaction, serializing concurrent submission batches.
	Lock(ctx context.Context, periodID int64) error
}

type SubmissionStore interface {
	CountForDay(ctx context.Context, periodID int64, day time.Time) (int, error)
	InsertBatch(ctx context.Context, subs []domain.Submission) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Platform is the chat platform surface the core needs. All calls are
// fallible I/O with no built-in retry.
type Platform interface {
	SendMessage(ctx context.Context, resourceID int64, text string) error
	CreatePrivateResource(ctx context.Context, ownerExternalID int64, name string) (int64, error)
	DeleteResource(ctx context.Context, resourceID int64, reason string) error
	ResourceExists(ctx context.Context, resourceID int64) (bool, error)
	IsMember(ctx context.Context, externalID int64) (bool, error)
	HasRole(ctx context.Context, externalID int64, role string) (bool, error)
	ListMembers(ctx context.Context) ([]int64, error)
}

// ReportSink feeds the external spreadsheet generator. Best effort:
// failures are logged and never block persistence.
type ReportSink interface {
	WriteRow(ctx context.Context, periodID int64, day time.Time, ordinal int, link string) error
	GenerateTemplate(ctx context.Context, periodID int64, targetPerDay int, start, end time.Time) (string, error)
}

// Clock is injected wherever wall-clock time decides behavior, so tests
// can control it.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }
