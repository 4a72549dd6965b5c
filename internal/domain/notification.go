package domain

import (
	"fmt"
	"time"
)

type NotificationType string

const (
	NotificationTypeMatch           NotificationType = "MATCH"
	NotificationTypeTournament      NotificationType = "TOURNAMENT"
	NotificationTypeTeam            NotificationType = "TEAM"
	NotificationTypePayment         NotificationType = "PAYMENT"
	NotificationTypeWallet          NotificationType = "WALLET"
	NotificationTypeScrim           NotificationType = "SCRIM"
	NotificationTypeTeamInvite      NotificationType = "TEAM_INVITE"
	NotificationTypeTeamJoin        NotificationType = "TEAM_JOIN"
	NotificationTypeMatchResult     NotificationType = "MATCH_RESULT"
	NotificationTypeTournamentStart NotificationType = "TOURNAMENT_START"
	NotificationTypeTransaction     NotificationType = "TRANSACTION"
	NotificationTypeSystem          NotificationType = "SYSTEM"
	NotificationTypeAnnouncement    NotificationType = "ANNOUNCEMENT"
)

var notificationTypes = map[NotificationType]bool{
	NotificationTypeMatch:           true,
	NotificationTypeTournament:      true,
	NotificationTypeTeam:            true,
	NotificationTypePayment:         true,
	NotificationTypeWallet:          true,
	NotificationTypeScrim:           true,
	NotificationTypeTeamInvite:      true,
	NotificationTypeTeamJoin:        true,
	NotificationTypeMatchResult:     true,
	NotificationTypeTournamentStart: true,
	NotificationTypeTransaction:     true,
	NotificationTypeSystem:          true,
	NotificationTypeAnnouncement:    true,
}

// ParseNotificationType validates a wire value against the closed enumeration.
func ParseNotificationType(s string) (NotificationType, error) {
	t := NotificationType(s)
	if !notificationTypes[t] {
		return "", fmt.Errorf("unknown notification type %q", s)
	}
	return t, nil
}

// Notification belongs to exactly one user. After creation only the read
// flag changes, or the row is deleted.
type Notification struct {
	ID        int32            `json:"id"`
	UserID    int32            `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Link      string           `json:"link,omitempty"`
	IsRead    bool             `json:"is_read"`
	CreatedOn time.Time        `json:"created_on"`
}
