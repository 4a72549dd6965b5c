package service_test

import (
	"context"
	"time"

	"arenahub-backend/internal/domain"
	"arenahub-backend/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockTeamRepo
type MockTeamRepo struct {
	mock.Mock
}

func (m *MockTeamRepo) Create(ctx context.Context, team *domain.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}
func (m *MockTeamRepo) GetByID(ctx context.Context, id int32) (*domain.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}
func (m *MockTeamRepo) AddMember(ctx context.Context, member *domain.TeamMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}
func (m *MockTeamRepo) GetMember(ctx context.Context, teamID, userID int32) (*domain.TeamMember, error) {
	args := m.Called(ctx, teamID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamMember), args.Error(1)
}
func (m *MockTeamRepo) ListMembers(ctx context.Context, teamID int32) ([]domain.TeamMember, error) {
	args := m.Called(ctx, teamID)
	return args.Get(0).([]domain.TeamMember), args.Error(1)
}

// MockWalletRepo
type MockWalletRepo struct {
	mock.Mock
}

func (m *MockWalletRepo) GetBalance(ctx context.Context, teamID int32) (int64, error) {
	args := m.Called(ctx, teamID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockWalletRepo) Commit(ctx context.Context, tx *domain.TeamTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
func (m *MockWalletRepo) ListTransactions(ctx context.Context, teamID int32) ([]domain.TeamTransaction, error) {
	args := m.Called(ctx, teamID)
	return args.Get(0).([]domain.TeamTransaction), args.Error(1)
}

// MockMoneyRequestRepo
type MockMoneyRequestRepo struct {
	mock.Mock
}

func (m *MockMoneyRequestRepo) Create(ctx context.Context, req *domain.MoneyRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockMoneyRequestRepo) GetByID(ctx context.Context, id int32) (*domain.MoneyRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MoneyRequest), args.Error(1)
}
func (m *MockMoneyRequestRepo) Resolve(ctx context.Context, id int32, status domain.MoneyRequestStatus, respondedOn time.Time) (*domain.MoneyRequest, error) {
	args := m.Called(ctx, id, status, respondedOn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MoneyRequest), args.Error(1)
}
func (m *MockMoneyRequestRepo) Approve(ctx context.Context, id int32, reference string, respondedOn time.Time) (*domain.MoneyRequest, *domain.TeamTransaction, error) {
	args := m.Called(ctx, id, reference, respondedOn)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.MoneyRequest), args.Get(1).(*domain.TeamTransaction), args.Error(2)
}
func (m *MockMoneyRequestRepo) ListPendingFor(ctx context.Context, userID int32) ([]domain.MoneyRequest, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.MoneyRequest), args.Error(1)
}
func (m *MockMoneyRequestRepo) ListByTeam(ctx context.Context, teamID int32) ([]domain.MoneyRequest, error) {
	args := m.Called(ctx, teamID)
	return args.Get(0).([]domain.MoneyRequest), args.Error(1)
}

// MockFriendshipRepo
type MockFriendshipRepo struct {
	mock.Mock
}

func (m *MockFriendshipRepo) Create(ctx context.Context, f *domain.Friendship) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}
func (m *MockFriendshipRepo) GetByID(ctx context.Context, id int32) (*domain.Friendship, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Friendship), args.Error(1)
}
func (m *MockFriendshipRepo) FindActiveByPair(ctx context.Context, userA, userB int32) (*domain.Friendship, error) {
	args := m.Called(ctx, userA, userB)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Friendship), args.Error(1)
}
func (m *MockFriendshipRepo) Resolve(ctx context.Context, id int32, status domain.FriendshipStatus, respondedOn time.Time) (*domain.Friendship, error) {
	args := m.Called(ctx, id, status, respondedOn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Friendship), args.Error(1)
}
func (m *MockFriendshipRepo) DeleteAccepted(ctx context.Context, userID, friendID int32) error {
	args := m.Called(ctx, userID, friendID)
	return args.Error(0)
}
func (m *MockFriendshipRepo) ListFriends(ctx context.Context, userID int32) ([]domain.Friendship, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Friendship), args.Error(1)
}
func (m *MockFriendshipRepo) ListPendingFor(ctx context.Context, userID int32) ([]domain.Friendship, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Friendship), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
func (m *MockNotificationRepo) GetByID(ctx context.Context, id int32) (*domain.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkRead(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockNotificationRepo) MarkAllRead(ctx context.Context, userID int32) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockNotificationRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockNotificationRepo) DeleteRead(ctx context.Context, userID int32) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockNotificationRepo) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// MockMessageRepo
type MockMessageRepo struct {
	mock.Mock
}

func (m *MockMessageRepo) Create(ctx context.Context, msg *domain.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
func (m *MockMessageRepo) GetByID(ctx context.Context, id int32) (*domain.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Message), args.Error(1)
}
func (m *MockMessageRepo) MarkRead(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockMessageRepo) MarkConversationRead(ctx context.Context, viewerID, peerID int32) (int64, error) {
	args := m.Called(ctx, viewerID, peerID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockMessageRepo) ListConversations(ctx context.Context, userID int32) ([]domain.Conversation, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Conversation), args.Error(1)
}

// stubNotifier records emitted notifications so tests can assert on fan-out
// without standing up the full dispatcher.
type emittedNote struct {
	UserID int32
	Type   domain.NotificationType
	Title  string
}

type stubNotifier struct {
	emitted []emittedNote
}

var _ service.NotificationService = (*stubNotifier)(nil)

func (s *stubNotifier) Emit(_ context.Context, userID int32, typ domain.NotificationType, title, _, _ string) {
	s.emitted = append(s.emitted, emittedNote{UserID: userID, Type: typ, Title: title})
}
func (s *stubNotifier) List(context.Context, int32, int32, int32) ([]domain.Notification, int32, error) {
	return nil, 0, nil
}
func (s *stubNotifier) MarkRead(context.Context, int32, int32) error    { return nil }
func (s *stubNotifier) MarkAllRead(context.Context, int32) (int64, error) { return 0, nil }
func (s *stubNotifier) Delete(context.Context, int32, int32) error      { return nil }
func (s *stubNotifier) ClearRead(context.Context, int32) (int64, error) { return 0, nil }
func (s *stubNotifier) FlushPending(context.Context) int                { return 0 }

func (s *stubNotifier) emittedTo(userID int32) []emittedNote {
	var out []emittedNote
	for _, n := range s.emitted {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

// stubEmail swallows every notice; delivery failures never block business
// operations, so tests only need call counts.
type stubEmail struct {
	sent int
}

var _ service.EmailService = (*stubEmail)(nil)

func (s *stubEmail) SendMoneyRequestNotice(context.Context, string, string, string, int64, string) error {
	s.sent++
	return nil
}
func (s *stubEmail) SendRequestResolvedNotice(context.Context, string, string, string, bool, int64) error {
	s.sent++
	return nil
}
func (s *stubEmail) SendFriendRequestNotice(context.Context, string, string, string) error {
	s.sent++
	return nil
}

// stubPusher fakes live connections for dispatcher tests.
type stubPusher struct {
	pushed []int32
}

func (s *stubPusher) Push(userID int32, _ *domain.Notification) bool {
	s.pushed = append(s.pushed, userID)
	return true
}
