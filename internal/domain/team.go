package domain

import "time"

type Team struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	Tag       string    `json:"tag"`
	LogoURL   string    `json:"logo_url"`
	CreatedOn time.Time `json:"created_on"`
}

type TeamRole string

const (
	TeamRoleLeader   TeamRole = "LEADER"
	TeamRoleCoLeader TeamRole = "CO_LEADER"
	TeamRoleMember   TeamRole = "MEMBER"
)

// CanRequestMoney reports whether the role may initiate money requests on
// behalf of the team.
func (r TeamRole) CanRequestMoney() bool {
	return r == TeamRoleLeader || r == TeamRoleCoLeader
}

// TeamMember links a user to a team. BalanceCents is the member's personal
// balance within the platform, the source of approved wallet contributions.
type TeamMember struct {
	TeamID       int32     `json:"team_id"`
	UserID       int32     `json:"user_id"`
	Role         TeamRole  `json:"role"`
	BalanceCents int64     `json:"balance_cents"`
	JoinedOn     time.Time `json:"joined_on"`
}
