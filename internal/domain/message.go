package domain

import "time"

type Message struct {
	ID         int32     `json:"id"`
	SenderID   int32     `json:"sender_id"`
	ReceiverID int32     `json:"receiver_id"`
	Content    string    `json:"content"`
	IsRead     bool      `json:"is_read"`
	CreatedOn  time.Time `json:"created_on"`
}

// Conversation aggregates the direct-message history with one peer: the most
// recent message plus the count of messages addressed to the viewer that are
// still unread.
type Conversation struct {
	PeerID      int32   `json:"peer_id"`
	LastMessage Message `json:"last_message"`
	UnreadCount int32   `json:"unread_count"`
}
