package service

import (
	"context"
	"strings"

	"arenahub-backend/internal/domain"
	"arenahub-backend/internal/repository"
)

type messageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
}

func NewMessageService(messageRepo repository.MessageRepository, userRepo repository.UserRepository) MessageService {
	return &messageService{messageRepo: messageRepo, userRepo: userRepo}
}

func (s *messageService) Send(ctx context.Context, senderID, receiverID int32, content string) (*domain.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domain.ErrEmptyContent
	}
	if senderID == receiverID {
		return nil, domain.ErrSelfRequest
	}
	if _, err := s.userRepo.GetByID(ctx, receiverID); err != nil {
		return nil, err
	}

	m := &domain.Message{SenderID: senderID, ReceiverID: receiverID, Content: content}
	if err := s.messageRepo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *messageService) MarkRead(ctx context.Context, actorID, messageID int32) error {
	m, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return err
	}
	// Only the addressee may flip the read flag.
	if m.ReceiverID != actorID {
		return domain.ErrForbidden
	}
	return s.messageRepo.MarkRead(ctx, messageID)
}

func (s *messageService) MarkConversationRead(ctx context.Context, viewerID, peerID int32) (int64, error) {
	return s.messageRepo.MarkConversationRead(ctx, viewerID, peerID)
}

func (s *messageService) ListConversations(ctx context.Context, userID int32) ([]domain.Conversation, error) {
	return s.messageRepo.ListConversations(ctx, userID)
}
