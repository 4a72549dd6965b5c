package postgres

import (
	"database/sql"

	"arenahub-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.TeamRepository
	repository.WalletRepository
	repository.MoneyRequestRepository
	repository.FriendshipRepository
	repository.NotificationRepository
	repository.MessageRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		TeamRepository:         NewTeamRepository(db),
		WalletRepository:       NewWalletRepository(db),
		MoneyRequestRepository: NewMoneyRequestRepository(db),
		FriendshipRepository:   NewFriendshipRepository(db),
		NotificationRepository: NewNotificationRepository(db),
		MessageRepository:      NewMessageRepository(db),
	}
}
