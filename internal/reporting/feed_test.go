package reporting

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/Timothyfranx/ultimatebosu/internal/domain"
	"github.com/Timothyfranx/ultimatebosu/internal/reporting/mocks"
)

type FeedTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	store *mocks.MockStore
	feed  *Feed
	today time.Time
}

func (s *FeedTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = mocks.NewMockStore(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.feed = NewFeed(s.store, logger)
	s.today = time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
}

func (s *FeedTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestFeedTestSuite(t *testing.T) {
	suite.Run(t, new(FeedTestSuite))
}

func ref(v int64) *int64 { return &v }

func (s *FeedTestSuite) activePeriod(externalID int64, target int, handle string) domain.ActivePeriod {
	return domain.ActivePeriod{
		Period: domain.TrackingPeriod{
			ID:           externalID * 10,
			TargetPerDay: target,
			StartDate:    s.today.AddDate(0, 0, -9),
			EndDate:      s.today.AddDate(0, 0, 51),
			Status:       domain.StatusActive,
		},
		Account: domain.Account{
			ExternalID:    externalID,
			DisplayName:   handle,
			ClaimedHandle: handle,
			ResourceRef:   ref(externalID * 100),
		},
	}
}

func (s *FeedTestSuite) TestProgress() {
	ctx := context.Background()
	ap := s.activePeriod(1, 5, "alice")

	s.store.EXPECT().ActivePeriod(ctx, int64(1)).Return(&ap, nil)
	s.store.EXPECT().TotalReplies(ctx, int64(10)).Return(40, nil)
	s.store.EXPECT().ActiveDays(ctx, int64(10)).Return(9, nil)
	s.store.EXPECT().CountForDay(ctx, int64(10), s.today).Return(2, nil)

	report, err := s.feed.Progress(ctx, 1, s.today)
	s.Require().NoError(err)

	s.Equal("alice", report.Handle)
	s.Equal(10, report.DaysElapsed)
	s.Equal(50, report.Expected)
	s.Equal(40, report.TotalReplies)
	s.Equal(2, report.TodayCount)
	s.InDelta(80.0, report.CompletionPct, 0.01)
}

func (s *FeedTestSuite) TestProgress_BeforeStart() {
	ctx := context.Background()
	ap := s.activePeriod(1, 5, "alice")
	ap.Period.StartDate = s.today.AddDate(0, 0, 5)
	ap.Period.EndDate = s.today.AddDate(0, 0, 65)

	s.store.EXPECT().ActivePeriod(ctx, int64(1)).Return(&ap, nil)
	s.store.EXPECT().TotalReplies(ctx, int64(10)).Return(0, nil)
	s.store.EXPECT().ActiveDays(ctx, int64(10)).Return(0, nil)

	report, err := s.feed.Progress(ctx, 1, s.today)
	s.Require().NoError(err)

	s.Equal(0, report.DaysElapsed)
	s.Equal(0, report.Expected)
	s.Equal(0.0, report.CompletionPct)
}

func (s *FeedTestSuite) TestDailySummary_SortsWorstFirst() {
	ctx := context.Background()
	alice := s.activePeriod(1, 10, "alice")
	bob := s.activePeriod(2, 10, "bob")

	s.store.EXPECT().ListActive(ctx).Return([]domain.ActivePeriod{alice, bob}, nil)
	s.store.EXPECT().CountForDay(ctx, int64(10), s.today).Return(8, nil)
	s.store.EXPECT().CountForDay(ctx, int64(20), s.today).Return(3, nil)

	summary, err := s.feed.DailySummary(ctx, s.today)
	s.Require().NoError(err)

	s.Require().Len(summary, 2)
	s.Equal("bob", summary[0].Handle)
	s.Equal("alice", summary[1].Handle)
}

func (s *FeedTestSuite) TestScanDuplicates() {
	ctx := context.Background()
	alice := s.activePeriod(1, 10, "alice")
	bob := s.activePeriod(2, 10, "bob")

	s.store.EXPECT().ListActive(ctx).Return([]domain.ActivePeriod{alice, bob}, nil)
	s.store.EXPECT().Submissions(ctx, int64(10)).Return([]domain.Submission{
		{PostID: "111", Link: "https://x.com/alice/status/111", OccurredOn: s.today, Ordinal: 1},
		{PostID: "111", Link: "https://x.com/alice/status/111", OccurredOn: s.today.AddDate(0, 0, 1), Ordinal: 1},
		{PostID: "222", Link: "https://x.com/alice/status/222", OccurredOn: s.today, Ordinal: 2},
	}, nil)
	s.store.EXPECT().Submissions(ctx, int64(20)).Return([]domain.Submission{
		{PostID: "222", Link: "https://x.com/bob/status/222", OccurredOn: s.today, Ordinal: 1},
	}, nil)

	report, err := s.feed.ScanDuplicates(ctx)
	s.Require().NoError(err)

	s.Require().Len(report.Scanned, 2)
	s.Require().Len(report.Scanned[0].Duplicates, 1)
	s.Equal("111", report.Scanned[0].Duplicates[0].PostID)
	s.Len(report.Scanned[0].Duplicates[0].Days, 2)
	s.Empty(report.Scanned[1].Duplicates)

	s.Require().Len(report.CrossAccount, 1)
	s.Equal("222", report.CrossAccount[0].PostID)
	s.Equal([]string{"alice", "bob"}, report.CrossAccount[0].Accounts)
}
