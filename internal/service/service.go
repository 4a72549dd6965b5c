package service

import (
	"context"

	"arenahub-backend/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, string, *domain.User, error) // access, refresh
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// WalletService is the money-request workflow engine plus the read side of
// the team ledger.
type WalletService interface {
	GetBalance(ctx context.Context, teamID, actorID int32) (int64, error)
	ListTransactions(ctx context.Context, teamID, actorID int32) ([]domain.TeamTransaction, error)

	// CreateRequests persists one independent PENDING request per member and
	// notifies each of them. All validation happens before any row is
	// written.
	CreateRequests(ctx context.Context, teamID, requesterID int32, memberIDs []int32, amountCents int64, reason string) ([]domain.MoneyRequest, error)
	Respond(ctx context.Context, requestID, actorID int32, action domain.RequestAction) (*domain.MoneyRequest, error)
	Cancel(ctx context.Context, requestID, actorID int32) (*domain.MoneyRequest, error)
	ListPending(ctx context.Context, actorID int32) ([]domain.MoneyRequest, error)
	ListTeamRequests(ctx context.Context, teamID, actorID int32) ([]domain.MoneyRequest, error)
}

type FriendService interface {
	Request(ctx context.Context, fromUserID, toUserID int32) (*domain.Friendship, error)
	Accept(ctx context.Context, friendshipID, actorID int32) (*domain.Friendship, error)
	Reject(ctx context.Context, friendshipID, actorID int32) (*domain.Friendship, error)
	Remove(ctx context.Context, userID, friendID int32) error
	Status(ctx context.Context, userID, otherUserID int32) (*domain.FriendStatusView, error)
	ListFriends(ctx context.Context, userID int32) ([]domain.Friendship, error)
	ListRequests(ctx context.Context, userID int32) ([]domain.Friendship, error)
}

// NotificationService is the dispatcher plus the per-user feed operations.
// Emit never fails the operation that triggered it.
type NotificationService interface {
	Emit(ctx context.Context, userID int32, typ domain.NotificationType, title, message, link string)
	List(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkRead(ctx context.Context, actorID, notificationID int32) error
	MarkAllRead(ctx context.Context, actorID int32) (int64, error)
	Delete(ctx context.Context, actorID, notificationID int32) error
	ClearRead(ctx context.Context, actorID int32) (int64, error)

	// FlushPending retries notifications parked after failed emits. Invoked
	// by the scheduler; returns how many were delivered.
	FlushPending(ctx context.Context) int
}

type MessageService interface {
	Send(ctx context.Context, senderID, receiverID int32, content string) (*domain.Message, error)
	MarkRead(ctx context.Context, actorID, messageID int32) error
	MarkConversationRead(ctx context.Context, viewerID, peerID int32) (int64, error)
	ListConversations(ctx context.Context, userID int32) ([]domain.Conversation, error)
}

type EmailService interface {
	SendMoneyRequestNotice(ctx context.Context, email, username, teamName string, amountCents int64, reason string) error
	SendRequestResolvedNotice(ctx context.Context, email, username, memberName string, approved bool, amountCents int64) error
	SendFriendRequestNotice(ctx context.Context, email, username, fromName string) error
}
