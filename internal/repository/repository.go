package repository

import (
	"context"
	"time"

	"arenahub-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	GetByID(ctx context.Context, id int32) (*domain.Team, error)
	AddMember(ctx context.Context, member *domain.TeamMember) error
	GetMember(ctx context.Context, teamID, userID int32) (*domain.TeamMember, error)
	ListMembers(ctx context.Context, teamID int32) ([]domain.TeamMember, error)
}

// WalletRepository owns the team ledger. Commit is the only way balance
// changes: it applies the signed amount and appends the transaction in one
// database transaction, rejecting any commit that would leave the balance
// negative.
type WalletRepository interface {
	GetBalance(ctx context.Context, teamID int32) (int64, error)
	Commit(ctx context.Context, tx *domain.TeamTransaction) error
	ListTransactions(ctx context.Context, teamID int32) ([]domain.TeamTransaction, error)
}

type MoneyRequestRepository interface {
	Create(ctx context.Context, req *domain.MoneyRequest) error
	GetByID(ctx context.Context, id int32) (*domain.MoneyRequest, error)
	// Resolve flips a still-PENDING request into the given terminal status.
	// Returns domain.ErrAlreadyResolved when another actor won the race.
	Resolve(ctx context.Context, id int32, status domain.MoneyRequestStatus, respondedOn time.Time) (*domain.MoneyRequest, error)
	// Approve runs the whole approval as one database transaction: debit the
	// member's personal balance, credit the team wallet, append the ledger
	// transaction referencing the request, and flip the status.
	Approve(ctx context.Context, id int32, reference string, respondedOn time.Time) (*domain.MoneyRequest, *domain.TeamTransaction, error)
	ListPendingFor(ctx context.Context, userID int32) ([]domain.MoneyRequest, error)
	ListByTeam(ctx context.Context, teamID int32) ([]domain.MoneyRequest, error)
}

type FriendshipRepository interface {
	Create(ctx context.Context, f *domain.Friendship) error
	GetByID(ctx context.Context, id int32) (*domain.Friendship, error)
	// FindActiveByPair returns the PENDING or ACCEPTED record for the
	// unordered pair, or domain.ErrNotFound.
	FindActiveByPair(ctx context.Context, userA, userB int32) (*domain.Friendship, error)
	Resolve(ctx context.Context, id int32, status domain.FriendshipStatus, respondedOn time.Time) (*domain.Friendship, error)
	DeleteAccepted(ctx context.Context, userID, friendID int32) error
	ListFriends(ctx context.Context, userID int32) ([]domain.Friendship, error)
	ListPendingFor(ctx context.Context, userID int32) ([]domain.Friendship, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	GetByID(ctx context.Context, id int32) (*domain.Notification, error)
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkRead(ctx context.Context, id int32) error
	MarkAllRead(ctx context.Context, userID int32) (int64, error)
	Delete(ctx context.Context, id int32) error
	DeleteRead(ctx context.Context, userID int32) (int64, error)
	// DeleteReadBefore removes read notifications older than the cutoff,
	// across all users. Used by the retention job.
	DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) error
	GetByID(ctx context.Context, id int32) (*domain.Message, error)
	MarkRead(ctx context.Context, id int32) error
	MarkConversationRead(ctx context.Context, viewerID, peerID int32) (int64, error)
	ListConversations(ctx context.Context, userID int32) ([]domain.Conversation, error)
}
