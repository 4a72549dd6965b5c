package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"arenahub-backend/internal/domain"
	"arenahub-backend/internal/logger"
	"arenahub-backend/internal/repository"
)

type friendService struct {
	friendRepo repository.FriendshipRepository
	userRepo   repository.UserRepository
	notifier   NotificationService
	emailSvc   EmailService
}

func NewFriendService(
	friendRepo repository.FriendshipRepository,
	userRepo repository.UserRepository,
	notifier NotificationService,
	emailSvc EmailService,
) FriendService {
	return &friendService{
		friendRepo: friendRepo,
		userRepo:   userRepo,
		notifier:   notifier,
		emailSvc:   emailSvc,
	}
}

func (s *friendService) Request(ctx context.Context, fromUserID, toUserID int32) (*domain.Friendship, error) {
	if fromUserID == toUserID {
		return nil, domain.ErrSelfRequest
	}
	target, err := s.userRepo.GetByID(ctx, toUserID)
	if err != nil {
		return nil, err
	}
	switch _, err := s.friendRepo.FindActiveByPair(ctx, fromUserID, toUserID); {
	case err == nil:
		return nil, domain.ErrDuplicateRequest
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	f := &domain.Friendship{
		RequesterID: fromUserID,
		TargetID:    toUserID,
		Status:      domain.FriendshipStatusPending,
	}
	if err := s.friendRepo.Create(ctx, f); err != nil {
		return nil, err
	}

	if from, err := s.userRepo.GetByID(ctx, fromUserID); err == nil {
		s.notifier.Emit(ctx, toUserID, domain.NotificationTypeTeamInvite,
			"Friend request",
			fmt.Sprintf("%s wants to add you as a friend", from.Username),
			fmt.Sprintf("/friends/requests/%d", f.ID))
		if err := s.emailSvc.SendFriendRequestNotice(ctx, target.Email, target.Username, from.Username); err != nil {
			logger.Warn("friend request email failed", "friendship_id", f.ID, "error", err)
		}
	}
	return f, nil
}

func (s *friendService) Accept(ctx context.Context, friendshipID, actorID int32) (*domain.Friendship, error) {
	return s.resolve(ctx, friendshipID, actorID, domain.FriendshipStatusAccepted)
}

func (s *friendService) Reject(ctx context.Context, friendshipID, actorID int32) (*domain.Friendship, error) {
	return s.resolve(ctx, friendshipID, actorID, domain.FriendshipStatusRejected)
}

// resolve enforces that only the target of the request may act on it.
func (s *friendService) resolve(ctx context.Context, friendshipID, actorID int32, status domain.FriendshipStatus) (*domain.Friendship, error) {
	f, err := s.friendRepo.GetByID(ctx, friendshipID)
	if err != nil {
		return nil, err
	}
	if f.TargetID != actorID {
		return nil, domain.ErrForbidden
	}

	updated, err := s.friendRepo.Resolve(ctx, friendshipID, status, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if status == domain.FriendshipStatusAccepted {
		if target, err := s.userRepo.GetByID(ctx, actorID); err == nil {
			s.notifier.Emit(ctx, updated.RequesterID, domain.NotificationTypeTeamJoin,
				"Friend request accepted",
				fmt.Sprintf("%s accepted your friend request", target.Username),
				fmt.Sprintf("/friends/%d", actorID))
		}
	}
	return updated, nil
}

func (s *friendService) Remove(ctx context.Context, userID, friendID int32) error {
	return s.friendRepo.DeleteAccepted(ctx, userID, friendID)
}

// Status projects the single canonical record from the viewer's side. Both
// parties see the same status and relationship id.
func (s *friendService) Status(ctx context.Context, userID, otherUserID int32) (*domain.FriendStatusView, error) {
	f, err := s.friendRepo.FindActiveByPair(ctx, userID, otherUserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.FriendStatusView{Status: "none"}, nil
		}
		return nil, err
	}
	return &domain.FriendStatusView{
		Status:       strings.ToLower(string(f.Status)),
		FriendshipID: &f.ID,
		Outgoing:     f.RequesterID == userID,
	}, nil
}

func (s *friendService) ListFriends(ctx context.Context, userID int32) ([]domain.Friendship, error) {
	return s.friendRepo.ListFriends(ctx, userID)
}

func (s *friendService) ListRequests(ctx context.Context, userID int32) ([]domain.Friendship, error) {
	return s.friendRepo.ListPendingFor(ctx, userID)
}
