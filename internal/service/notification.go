package service

import (
	"context"
	"sync"

	"arenahub-backend/internal/domain"
	"arenahub-backend/internal/logger"
	"arenahub-backend/internal/repository"
)

// NotificationPusher delivers a stored notification to any live connections
// the owner has. Push reports whether at least one connection took it.
type NotificationPusher interface {
	Push(userID int32, n *domain.Notification) bool
}

// maxParked bounds the retry buffer; beyond it the oldest parked
// notifications are dropped and logged.
const maxParked = 1024

type notificationService struct {
	noteRepo repository.NotificationRepository
	pusher   NotificationPusher

	mu     sync.Mutex
	parked []domain.Notification
}

func NewNotificationService(noteRepo repository.NotificationRepository, pusher NotificationPusher) NotificationService {
	return &notificationService{noteRepo: noteRepo, pusher: pusher}
}

// Emit appends a notification to the user's feed. It never propagates
// failure to the caller: a store error parks the notification for the retry
// job and the triggering business operation proceeds as committed.
func (s *notificationService) Emit(ctx context.Context, userID int32, typ domain.NotificationType, title, message, link string) {
	n := domain.Notification{
		UserID:  userID,
		Type:    typ,
		Title:   title,
		Message: message,
		Link:    link,
	}
	if err := s.noteRepo.Create(ctx, &n); err != nil {
		logger.Error("notification store failed, parking for retry", "user_id", userID, "type", typ, "error", err)
		s.park(n)
		return
	}
	if s.pusher != nil {
		s.pusher.Push(userID, &n)
	}
}

func (s *notificationService) park(n domain.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.parked) >= maxParked {
		logger.Warn("notification retry buffer full, dropping oldest", "user_id", s.parked[0].UserID)
		s.parked = s.parked[1:]
	}
	s.parked = append(s.parked, n)
}

// FlushPending retries every parked notification once. Ones that fail again
// go back to the buffer.
func (s *notificationService) FlushPending(ctx context.Context) int {
	s.mu.Lock()
	pending := s.parked
	s.parked = nil
	s.mu.Unlock()

	delivered := 0
	for i := range pending {
		n := pending[i]
		if err := s.noteRepo.Create(ctx, &n); err != nil {
			logger.Warn("notification retry failed", "user_id", n.UserID, "error", err)
			s.park(n)
			continue
		}
		if s.pusher != nil {
			s.pusher.Push(n.UserID, &n)
		}
		delivered++
	}
	return delivered
}

func (s *notificationService) List(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.noteRepo.List(ctx, userID, pageSize, (page-1)*pageSize)
}

func (s *notificationService) MarkRead(ctx context.Context, actorID, notificationID int32) error {
	if err := s.authorize(ctx, actorID, notificationID); err != nil {
		return err
	}
	return s.noteRepo.MarkRead(ctx, notificationID)
}

func (s *notificationService) MarkAllRead(ctx context.Context, actorID int32) (int64, error) {
	return s.noteRepo.MarkAllRead(ctx, actorID)
}

func (s *notificationService) Delete(ctx context.Context, actorID, notificationID int32) error {
	if err := s.authorize(ctx, actorID, notificationID); err != nil {
		return err
	}
	return s.noteRepo.Delete(ctx, notificationID)
}

func (s *notificationService) ClearRead(ctx context.Context, actorID int32) (int64, error) {
	return s.noteRepo.DeleteRead(ctx, actorID)
}

func (s *notificationService) authorize(ctx context.Context, actorID, notificationID int32) error {
	n, err := s.noteRepo.GetByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if n.UserID != actorID {
		return domain.ErrForbidden
	}
	return nil
}
