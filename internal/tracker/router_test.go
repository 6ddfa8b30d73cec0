package tracker

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/Timothyfranx/ultimatebosu/internal/config"
	"github.com/Timothyfranx/ultimatebosu/internal/domain"
	"github.com/Timothyfranx/ultimatebosu/internal/links"
	"github.com/Timothyfranx/ultimatebosu/internal/tracker/mocks"
)

type RouterTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	accounts *mocks.MockAccountStore
	periods  *mocks.MockPeriodStore
	subs     *mocks.MockSubmissionStore
	tx       *mocks.MockTransactionManager
	platform *mocks.MockPlatform
	sink     *mocks.MockReportSink
	clock    *mocks.MockClock

	sessions *SessionStore
	router   *Router
	now      time.Time
	today    time.Time
}

func (s *RouterTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.accounts = mocks.NewMockAccountStore(s.ctrl)
	s.periods = mocks.NewMockPeriodStore(s.ctrl)
	s.subs = mocks.NewMockSubmissionStore(s.ctrl)
	s.tx = mocks.NewMockTransactionManager(s.ctrl)
	s.platform = mocks.NewMockPlatform(s.ctrl)
	s.sink = mocks.NewMockReportSink(s.ctrl)
	s.clock = mocks.NewMockClock(s.ctrl)

	s.now = time.Date(2025, 3, 20, 15, 0, 0, 0, time.UTC)
	s.today = domain.Day(s.now)
	s.clock.EXPECT().Now().Return(s.now).AnyTimes()
	s.platform.EXPECT().SendMessage(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := config.TrackingConfig{
		PeriodDays:     60,
		MaxDailyTarget: 500,
		SessionTTL:     time.Hour,
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.sessions = NewSessionStore(cfg.SessionTTL, s.clock)

	ledger := NewLedger(s.periods, s.subs, s.tx, s.sink, logger)
	onboarder := NewOnboarder(
		s.sessions, s.accounts, s.periods, s.tx,
		s.platform, s.sink, s.clock, logger, cfg, 555,
	)
	s.router = NewRouter(
		links.NewExtractor(30),
		s.accounts, s.periods, ledger, onboarder, s.sessions,
		s.platform, s.clock, logger,
		"Light Warriors", 555,
	)
}

func (s *RouterTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) activePeriod() *domain.ActivePeriod {
	return &domain.ActivePeriod{
		Period: domain.TrackingPeriod{
			ID:           42,
			AccountID:    7,
			TargetPerDay: 5,
			StartDate:    s.today.AddDate(0, 0, -5),
			EndDate:      s.today.AddDate(0, 0, 55),
			Status:       domain.StatusActive,
		},
		Account: domain.Account{
			ID:            7,
			ExternalID:    1001,
			DisplayName:   "alice",
			ClaimedHandle: "alice",
			ResourceRef:   ref(777),
		},
	}
}

func (s *RouterTestSuite) TestHandleMessage_BotIgnored() {
	err := s.router.HandleMessage(context.Background(), domain.MessageEvent{
		AuthorID:         1001,
		ResourceID:       777,
		Text:             "https://x.com/alice/status/111",
		AuthorBot:        true,
		TrackingResource: true,
	})
	s.NoError(err)
}

func (s *RouterTestSuite) TestHandleMessage_NonTrackingResourceIgnored() {
	err := s.router.HandleMessage(context.Background(), domain.MessageEvent{
		AuthorID:   1001,
		ResourceID: 9000,
		Text:       "https://x.com/alice/status/111",
	})
	s.NoError(err)
}

func (s *RouterTestSuite) TestHandleMessage_SubmissionAccepted() {
	ctx := context.Background()
	ap := s.activePeriod()

	s.accounts.EXPECT().GetByExternalID(ctx, int64(1001)).Return(&ap.Account, nil)
	s.periods.EXPECT().GetActiveByExternalID(ctx, int64(1001)).Return(ap, nil)

	s.tx.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(txCtx context.Context, fn func(context.Context) error) error {
			return fn(txCtx)
		},
	)
	s.periods.EXPECT().Lock(gomock.Any(), int64(42)).Return(nil)
	s.subs.EXPECT().CountForDay(gomock.Any(), int64(42), s.today).Return(0, nil)
	s.subs.EXPECT().InsertBatch(gomock.Any(), gomock.Len(1)).Return(nil)
	s.sink.EXPECT().WriteRow(gomock.Any(), int64(42), s.today, 1, "https://x.com/alice/status/111").Return(nil)

	err := s.router.HandleMessage(ctx, domain.MessageEvent{
		AuthorID:         1001,
		ResourceID:       777,
		Text:             "done for today https://x.com/alice/status/111",
		TrackingResource: true,
	})
	s.NoError(err)
}

func (s *RouterTestSuite) TestHandleMessage_HealsStaleResourceRef() {
	ctx := context.Background()
	ap := s.activePeriod()
	ap.Account.ResourceRef = ref(100) // stale, member now writes in 777

	s.accounts.EXPECT().GetByExternalID(ctx, int64(1001)).Return(&ap.Account, nil)
	s.accounts.EXPECT().SetResourceRef(ctx, int64(1001), int64(777)).Return(nil)
	s.periods.EXPECT().GetActiveByExternalID(ctx, int64(1001)).Return(ap, nil)

	s.tx.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(txCtx context.Context, fn func(context.Context) error) error {
			return fn(txCtx)
		},
	)
	s.periods.EXPECT().Lock(gomock.Any(), int64(42)).Return(nil)
	s.subs.EXPECT().CountForDay(gomock.Any(), int64(42), s.today).Return(0, nil)
	s.subs.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).Return(nil)
	s.sink.EXPECT().WriteRow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	err := s.router.HandleMessage(ctx, domain.MessageEvent{
		AuthorID:         1001,
		ResourceID:       777,
		Text:             "https://x.com/alice/status/111",
		TrackingResource: true,
	})
	s.NoError(err)
}

func (s *RouterTestSuite) TestHandleMessage_UnknownAccountDropped() {
	ctx := context.Background()

	s.accounts.EXPECT().GetByExternalID(ctx, int64(1001)).Return(nil, domain.ErrAccountNotFound)

	err := s.router.HandleMessage(ctx, domain.MessageEvent{
		AuthorID:         1001,
		ResourceID:       777,
		Text:             "https://x.com/alice/status/111",
		TrackingResource: true,
	})
	s.NoError(err)
}

func (s *RouterTestSuite) TestHandleMessage_NoActivePeriod() {
	ctx := context.Background()
	ap := s.activePeriod()

	s.accounts.EXPECT().GetByExternalID(ctx, int64(1001)).Return(&ap.Account, nil)
	s.periods.EXPECT().GetActiveByExternalID(ctx, int64(1001)).Return(nil, domain.ErrNoActivePeriod)

	err := s.router.HandleMessage(ctx, domain.MessageEvent{
		AuthorID:         1001,
		ResourceID:       777,
		Text:             "https://x.com/alice/status/111",
		TrackingResource: true,
	})
	s.NoError(err)
}

func (s *RouterTestSuite) TestHandleMessage_SessionInputRoutedToOnboarding() {
	ctx := context.Background()
	s.sessions.Start(1001, 777, "alice")

	err := s.router.HandleMessage(ctx, domain.MessageEvent{
		AuthorID:   1001,
		ResourceID: 777,
		Text:       "alice",
	})
	s.Require().NoError(err)

	sess, _ := s.sessions.Get(1001)
	s.Equal(StepTarget, sess.Step)
	s.Equal("alice", sess.Handle)
}

func (s *RouterTestSuite) TestHandleRoleGrant_StartsOnboarding() {
	ctx := context.Background()

	s.periods.EXPECT().GetActiveByExternalID(ctx, int64(1001)).Return(nil, domain.ErrNoActivePeriod)
	s.accounts.EXPECT().GetByExternalID(ctx, int64(1001)).Return(&domain.Account{DisplayName: "alice"}, nil).Times(2)
	s.platform.EXPECT().CreatePrivateResource(ctx, int64(1001), "tracking-alice").Return(int64(777), nil)
	s.accounts.EXPECT().SetResourceRef(ctx, int64(1001), int64(777)).Return(nil)

	err := s.router.HandleRoleGrant(ctx, domain.RoleGrantEvent{MemberID: 1001, Role: "light warriors"})
	s.Require().NoError(err)

	_, ok := s.sessions.Get(1001)
	s.True(ok)
}

func (s *RouterTestSuite) TestHandleRoleGrant_AlreadyTracked() {
	ctx := context.Background()

	s.periods.EXPECT().GetActiveByExternalID(ctx, int64(1001)).Return(s.activePeriod(), nil)

	err := s.router.HandleRoleGrant(ctx, domain.RoleGrantEvent{MemberID: 1001, Role: "Light Warriors"})
	s.NoError(err)
}

func (s *RouterTestSuite) TestHandleRoleGrant_OtherRoleIgnored() {
	err := s.router.HandleRoleGrant(context.Background(), domain.RoleGrantEvent{MemberID: 1001, Role: "Moderator"})
	s.NoError(err)
}

func (s *RouterTestSuite) TestHandleMemberRemove_ClosesTracking() {
	ctx := context.Background()
	ap := s.activePeriod()
	s.sessions.Start(1001, 777, "alice")

	s.periods.EXPECT().GetActiveByExternalID(ctx, int64(1001)).Return(ap, nil)
	s.periods.EXPECT().UpdateStatus(ctx, int64(42), domain.StatusLeftServer).Return(nil)
	s.platform.EXPECT().DeleteResource(ctx, int64(777), gomock.Any()).Return(nil)

	err := s.router.HandleMemberRemove(ctx, domain.MemberRemoveEvent{MemberID: 1001})
	s.Require().NoError(err)

	_, ok := s.sessions.Get(1001)
	s.False(ok)
}

func (s *RouterTestSuite) TestHandleMemberRemove_NoTracking() {
	ctx := context.Background()

	s.periods.EXPECT().GetActiveByExternalID(ctx, int64(1001)).Return(nil, domain.ErrNoActivePeriod)

	err := s.router.HandleMemberRemove(ctx, domain.MemberRemoveEvent{MemberID: 1001})
	s.NoError(err)
}
