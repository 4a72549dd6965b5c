package postgres_test

import (
	"context"
	"testing"
	"time"

	"arenahub-backend/internal/domain"
	"arenahub-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestFriendshipRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewFriendshipRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := &domain.Friendship{RequesterID: 1, TargetID: 2, Status: domain.FriendshipStatusPending}

		mock.ExpectQuery("INSERT INTO friendships").
			WithArgs(f.RequesterID, f.TargetID, f.Status).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_on"}).AddRow(7, time.Now()))

		err := repo.Create(ctx, f)
		assert.NoError(t, err)
		assert.Equal(t, int32(7), f.ID)
	})

	t.Run("ConcurrentDuplicateHitsUniqueIndex", func(t *testing.T) {
		f := &domain.Friendship{RequesterID: 2, TargetID: 1, Status: domain.FriendshipStatusPending}

		mock.ExpectQuery("INSERT INTO friendships").
			WithArgs(f.RequesterID, f.TargetID, f.Status).
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(ctx, f)
		assert.ErrorIs(t, err, domain.ErrDuplicateRequest)
	})
}

func TestFriendshipRepository_FindActiveByPair(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewFriendshipRepository(db)
	ctx := context.Background()

	t.Run("FoundEitherDirection", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "requester_id", "target_id", "status", "created_on", "responded_on"}).
			AddRow(7, 1, 2, "PENDING", time.Now(), nil)

		mock.ExpectQuery("SELECT id, requester_id, target_id, status, created_on, responded_on FROM friendships").
			WithArgs(int32(2), int32(1)).
			WillReturnRows(rows)

		f, err := repo.FindActiveByPair(ctx, 2, 1)
		assert.NoError(t, err)
		assert.Equal(t, int32(7), f.ID)
	})

	t.Run("NoActiveRecord", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, requester_id, target_id, status, created_on, responded_on FROM friendships").
			WithArgs(int32(1), int32(9)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.FindActiveByPair(ctx, 1, 9)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestFriendshipRepository_Resolve(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewFriendshipRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("LostRace", func(t *testing.T) {
		mock.ExpectQuery("UPDATE friendships SET status").
			WithArgs(domain.FriendshipStatusAccepted, now, int32(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		resolved := sqlmock.NewRows([]string{"id", "requester_id", "target_id", "status", "created_on", "responded_on"}).
			AddRow(7, 1, 2, "REJECTED", time.Now(), now)
		mock.ExpectQuery("SELECT id, requester_id, target_id, status, created_on, responded_on FROM friendships").
			WithArgs(int32(7)).
			WillReturnRows(resolved)

		_, err := repo.Resolve(ctx, 7, domain.FriendshipStatusAccepted, now)
		assert.ErrorIs(t, err, domain.ErrAlreadyResolved)
	})
}

func TestFriendshipRepository_DeleteAccepted(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewFriendshipRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM friendships").
			WithArgs(int32(1), int32(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteAccepted(ctx, 1, 2))
	})

	t.Run("NotFriends", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM friendships").
			WithArgs(int32(1), int32(9)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.DeleteAccepted(ctx, 1, 9), domain.ErrNotFound)
	})
}
