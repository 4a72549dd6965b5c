package domain

import (
	"fmt"
	"time"
)

type MoneyRequestStatus string

const (
	MoneyRequestStatusPending   MoneyRequestStatus = "PENDING"
	MoneyRequestStatusApproved  MoneyRequestStatus = "APPROVED"
	MoneyRequestStatusRejected  MoneyRequestStatus = "REJECTED"
	MoneyRequestStatusCancelled MoneyRequestStatus = "CANCELLED"
)

type RequestAction string

const (
	RequestActionApprove RequestAction = "approve"
	RequestActionReject  RequestAction = "reject"
)

// ParseRequestAction validates a wire value against the closed action set.
func ParseRequestAction(s string) (RequestAction, error) {
	switch a := RequestAction(s); a {
	case RequestActionApprove, RequestActionReject:
		return a, nil
	default:
		return "", fmt.Errorf("unknown request action %q", s)
	}
}

// Terminal reports whether the status admits no further transitions.
func (s MoneyRequestStatus) Terminal() bool {
	return s != MoneyRequestStatusPending
}

// MoneyRequest is a pending ask from a team lead to a specific member for a
// fixed contribution to the team wallet. A batch request to N members creates
// N independent records; each resolves on its own. RespondedOn is set exactly
// when the status leaves PENDING.
type MoneyRequest struct {
	ID            int32              `json:"id"`
	TeamID        int32              `json:"team_id"`
	RequesterID   int32              `json:"requester_id"`
	RequestedFrom int32              `json:"requested_from"`
	AmountCents   int64              `json:"amount_cents"`
	Reason        string             `json:"reason,omitempty"`
	Status        MoneyRequestStatus `json:"status"`
	CreatedOn     time.Time          `json:"created_on"`
	RespondedOn   *time.Time         `json:"responded_on,omitempty"`
}
