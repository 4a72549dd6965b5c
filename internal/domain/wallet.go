package domain

import "time"

type TransactionType string

const (
	TransactionTypeContribution TransactionType = "CONTRIBUTION"
	TransactionTypePrizePayout  TransactionType = "PRIZE_PAYOUT"
	TransactionTypeEntryFee     TransactionType = "ENTRY_FEE"
	TransactionTypeAdjustment   TransactionType = "ADJUSTMENT"
)

// TeamWallet is the pooled balance belonging to a team. BalanceCents always
// equals the running sum of all committed transaction amounts and never goes
// negative.
type TeamWallet struct {
	TeamID       int32     `json:"team_id"`
	BalanceCents int64     `json:"balance_cents"`
	UpdatedOn    time.Time `json:"updated_on"`
}

// TeamTransaction is one entry of a team's append-only ledger. Amount is
// signed: positive for credits, negative for debits, in minor currency units.
type TeamTransaction struct {
	ID          int32           `json:"id"`
	TeamID      int32           `json:"team_id"`
	ActorUserID *int32          `json:"actor_user_id,omitempty"`
	Type        TransactionType `json:"type"`
	AmountCents int64           `json:"amount_cents"`
	Description string          `json:"description,omitempty"`
	Reference   string          `json:"reference,omitempty"`
	CreatedOn   time.Time       `json:"created_on"`
}
