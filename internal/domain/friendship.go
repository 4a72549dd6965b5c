package domain

import "time"

type FriendshipStatus string

const (
	FriendshipStatusPending  FriendshipStatus = "PENDING"
	FriendshipStatusAccepted FriendshipStatus = "ACCEPTED"
	FriendshipStatusRejected FriendshipStatus = "REJECTED"
)

// Friendship is the single canonical record for a user pair. At most one
// active (PENDING or ACCEPTED) record may exist per unordered pair; both
// sides see the same row projected from their own perspective.
type Friendship struct {
	ID          int32            `json:"id"`
	RequesterID int32            `json:"requester_id"`
	TargetID    int32            `json:"target_id"`
	Status      FriendshipStatus `json:"status"`
	CreatedOn   time.Time        `json:"created_on"`
	RespondedOn *time.Time       `json:"responded_on,omitempty"`
}

// Active reports whether the record blocks a new request for the same pair.
func (f *Friendship) Active() bool {
	return f.Status == FriendshipStatusPending || f.Status == FriendshipStatusAccepted
}

// PeerOf returns the other side of the relationship as seen by userID.
func (f *Friendship) PeerOf(userID int32) int32 {
	if f.RequesterID == userID {
		return f.TargetID
	}
	return f.RequesterID
}

// FriendStatusView is the query-time projection returned by the status
// endpoint, identical no matter which side asks.
type FriendStatusView struct {
	Status       string `json:"status"` // "none", "pending" or "accepted"
	FriendshipID *int32 `json:"friendship_id,omitempty"`
	Outgoing     bool   `json:"outgoing"` // true when the viewer sent the request
}
