package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"arenahub-backend/internal/domain"
	"arenahub-backend/internal/repository"

	"github.com/lib/pq"
)

type friendshipRepository struct {
	db *sql.DB
}

func NewFriendshipRepository(db *sql.DB) repository.FriendshipRepository {
	return &friendshipRepository{db: db}
}

const friendshipColumns = `id, requester_id, target_id, status, created_on, responded_on`

func (r *friendshipRepository) Create(ctx context.Context, f *domain.Friendship) error {
	query := `INSERT INTO friendships (requester_id, target_id, status)
	          VALUES ($1, $2, $3) RETURNING id, created_on`
	err := r.db.QueryRowContext(ctx, query, f.RequesterID, f.TargetID, f.Status).Scan(&f.ID, &f.CreatedOn)
	// The partial unique index on the unordered pair backs the at-most-one
	// active relationship invariant even under concurrent requests.
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return domain.ErrDuplicateRequest
	}
	return err
}

func (r *friendshipRepository) GetByID(ctx context.Context, id int32) (*domain.Friendship, error) {
	query := `SELECT ` + friendshipColumns + ` FROM friendships WHERE id = $1`
	return scanFriendship(r.db.QueryRowContext(ctx, query, id))
}

func (r *friendshipRepository) FindActiveByPair(ctx context.Context, userA, userB int32) (*domain.Friendship, error) {
	query := `SELECT ` + friendshipColumns + ` FROM friendships
	          WHERE status IN ('PENDING', 'ACCEPTED')
	            AND ((requester_id = $1 AND target_id = $2) OR (requester_id = $2 AND target_id = $1))`
	return scanFriendship(r.db.QueryRowContext(ctx, query, userA, userB))
}

func (r *friendshipRepository) Resolve(ctx context.Context, id int32, status domain.FriendshipStatus, respondedOn time.Time) (*domain.Friendship, error) {
	query := `UPDATE friendships SET status = $1, responded_on = $2
	          WHERE id = $3 AND status = 'PENDING'
	          RETURNING ` + friendshipColumns
	f, err := scanFriendship(r.db.QueryRowContext(ctx, query, status, respondedOn, id))
	if errors.Is(err, domain.ErrNotFound) {
		if _, getErr := r.GetByID(ctx, id); getErr == nil {
			return nil, domain.ErrAlreadyResolved
		}
		return nil, domain.ErrNotFound
	}
	return f, err
}

func (r *friendshipRepository) DeleteAccepted(ctx context.Context, userID, friendID int32) error {
	query := `DELETE FROM friendships
	          WHERE status = 'ACCEPTED'
	            AND ((requester_id = $1 AND target_id = $2) OR (requester_id = $2 AND target_id = $1))`
	res, err := r.db.ExecContext(ctx, query, userID, friendID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *friendshipRepository) ListFriends(ctx context.Context, userID int32) ([]domain.Friendship, error) {
	query := `SELECT ` + friendshipColumns + ` FROM friendships
	          WHERE status = 'ACCEPTED' AND (requester_id = $1 OR target_id = $1)
	          ORDER BY responded_on DESC`
	return r.list(ctx, query, userID)
}

func (r *friendshipRepository) ListPendingFor(ctx context.Context, userID int32) ([]domain.Friendship, error) {
	query := `SELECT ` + friendshipColumns + ` FROM friendships
	          WHERE status = 'PENDING' AND target_id = $1 ORDER BY created_on ASC`
	return r.list(ctx, query, userID)
}

func (r *friendshipRepository) list(ctx context.Context, query string, arg any) ([]domain.Friendship, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fs []domain.Friendship
	for rows.Next() {
		var f domain.Friendship
		if err := rows.Scan(&f.ID, &f.RequesterID, &f.TargetID, &f.Status, &f.CreatedOn, &f.RespondedOn); err != nil {
			return nil, err
		}
		fs = append(fs, f)
	}
	return fs, rows.Err()
}

func scanFriendship(row rowScanner) (*domain.Friendship, error) {
	var f domain.Friendship
	err := row.Scan(&f.ID, &f.RequesterID, &f.TargetID, &f.Status, &f.CreatedOn, &f.RespondedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}
