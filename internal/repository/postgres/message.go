package postgres

import (
	"context"
	"database/sql"
	"errors"
	"sort"

	"arenahub-backend/internal/domain"
	"arenahub-backend/internal/repository"
)

type messageRepository struct {
	db *sql.DB
}

func NewMessageRepository(db *sql.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, m *domain.Message) error {
	query := `INSERT INTO messages (sender_id, receiver_id, content, is_read)
	          VALUES ($1, $2, $3, FALSE) RETURNING id, created_on`
	return r.db.QueryRowContext(ctx, query, m.SenderID, m.ReceiverID, m.Content).Scan(&m.ID, &m.CreatedOn)
}

func (r *messageRepository) GetByID(ctx context.Context, id int32) (*domain.Message, error) {
	var m domain.Message
	query := `SELECT id, sender_id, receiver_id, content, is_read, created_on FROM messages WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &m.IsRead, &m.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *messageRepository) MarkRead(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `UPDATE messages SET is_read = TRUE WHERE id = $1`, id)
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

// MarkConversationRead flips every unread message from peer to viewer.
// Running it twice is a no-op the second time.
func (r *messageRepository) MarkConversationRead(ctx context.Context, viewerID, peerID int32) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE messages SET is_read = TRUE WHERE receiver_id = $1 AND sender_id = $2 AND is_read = FALSE`,
		viewerID, peerID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ListConversations builds one aggregate per peer: the latest message in
// either direction plus the count of unread messages addressed to the user,
// ordered by most recent activity.
func (r *messageRepository) ListConversations(ctx context.Context, userID int32) ([]domain.Conversation, error) {
	query := `
		SELECT DISTINCT ON (peer_id)
		       CASE WHEN sender_id = $1 THEN receiver_id ELSE sender_id END AS peer_id,
		       id, sender_id, receiver_id, content, is_read, created_on,
		       (SELECT count(*) FROM messages u
		        WHERE u.receiver_id = $1 AND u.is_read = FALSE
		          AND u.sender_id = CASE WHEN m.sender_id = $1 THEN m.receiver_id ELSE m.sender_id END) AS unread_count
		FROM messages m
		WHERE sender_id = $1 OR receiver_id = $1
		ORDER BY peer_id, created_on DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var convs []domain.Conversation
	for rows.Next() {
		var c domain.Conversation
		m := &c.LastMessage
		if err := rows.Scan(&c.PeerID, &m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &m.IsRead, &m.CreatedOn, &c.UnreadCount); err != nil {
			return nil, err
		}
		convs = append(convs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// DISTINCT ON picks the newest row per peer but leaves the peers in
	// peer-id order; re-sort by recency for the inbox view.
	sort.Slice(convs, func(i, j int) bool {
		return convs[i].LastMessage.CreatedOn.After(convs[j].LastMessage.CreatedOn)
	})
	return convs, nil
}
