package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"arenahub-backend/internal/domain"
	"arenahub-backend/internal/repository"
)

type moneyRequestRepository struct {
	db *sql.DB
}

func NewMoneyRequestRepository(db *sql.DB) repository.MoneyRequestRepository {
	return &moneyRequestRepository{db: db}
}

const moneyRequestColumns = `id, team_id, requester_id, requested_from, amount_cents, reason, status, created_on, responded_on`

func (r *moneyRequestRepository) Create(ctx context.Context, req *domain.MoneyRequest) error {
	query := `INSERT INTO money_requests (team_id, requester_id, requested_from, amount_cents, reason, status)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_on`
	return r.db.QueryRowContext(ctx, query,
		req.TeamID, req.RequesterID, req.RequestedFrom, req.AmountCents, req.Reason, req.Status).
		Scan(&req.ID, &req.CreatedOn)
}

func (r *moneyRequestRepository) GetByID(ctx context.Context, id int32) (*domain.MoneyRequest, error) {
	query := `SELECT ` + moneyRequestColumns + ` FROM money_requests WHERE id = $1`
	return scanMoneyRequest(r.db.QueryRowContext(ctx, query, id))
}

// Resolve flips a still-PENDING request into the given status. The UPDATE is
// conditional on PENDING so the loser of two concurrent resolutions gets
// ErrAlreadyResolved instead of overwriting a terminal state.
func (r *moneyRequestRepository) Resolve(ctx context.Context, id int32, status domain.MoneyRequestStatus, respondedOn time.Time) (*domain.MoneyRequest, error) {
	query := `UPDATE money_requests SET status = $1, responded_on = $2
	          WHERE id = $3 AND status = 'PENDING'
	          RETURNING ` + moneyRequestColumns
	req, err := scanMoneyRequest(r.db.QueryRowContext(ctx, query, status, respondedOn, id))
	if errors.Is(err, domain.ErrNotFound) {
		// Distinguish a missing row from a lost race.
		if _, getErr := r.GetByID(ctx, id); getErr == nil {
			return nil, domain.ErrAlreadyResolved
		}
		return nil, domain.ErrNotFound
	}
	return req, err
}

// Approve resolves the request and moves the money in a single database
// transaction: the member's personal balance is debited (refused when
// insufficient), the team wallet is credited, and the ledger entry is
// appended referencing the request. Nothing is observable half-applied.
func (r *moneyRequestRepository) Approve(ctx context.Context, id int32, reference string, respondedOn time.Time) (*domain.MoneyRequest, *domain.TeamTransaction, error) {
	dbtx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	defer dbtx.Rollback()

	query := `SELECT ` + moneyRequestColumns + ` FROM money_requests WHERE id = $1 FOR UPDATE`
	req, err := scanMoneyRequest(dbtx.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, nil, err
	}
	if req.Status.Terminal() {
		return nil, nil, domain.ErrAlreadyResolved
	}

	res, err := dbtx.ExecContext(ctx,
		`UPDATE team_members SET balance_cents = balance_cents - $1
		 WHERE team_id = $2 AND user_id = $3 AND balance_cents >= $1`,
		req.AmountCents, req.TeamID, req.RequestedFrom)
	if err != nil {
		return nil, nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, nil, err
	}
	if affected == 0 {
		return nil, nil, domain.ErrInsufficientFunds
	}

	tx := &domain.TeamTransaction{
		TeamID:      req.TeamID,
		ActorUserID: &req.RequestedFrom,
		Type:        domain.TransactionTypeContribution,
		AmountCents: req.AmountCents,
		Description: fmt.Sprintf("Contribution for money request #%d", req.ID),
		Reference:   reference,
	}
	if err := applyTransaction(ctx, dbtx, tx); err != nil {
		return nil, nil, err
	}

	if _, err := dbtx.ExecContext(ctx,
		`UPDATE money_requests SET status = $1, responded_on = $2 WHERE id = $3`,
		domain.MoneyRequestStatusApproved, respondedOn, req.ID); err != nil {
		return nil, nil, err
	}
	if err := dbtx.Commit(); err != nil {
		return nil, nil, err
	}

	req.Status = domain.MoneyRequestStatusApproved
	req.RespondedOn = &respondedOn
	return req, tx, nil
}

// ListPendingFor returns PENDING requests addressed to the user, oldest
// first for fair queuing visibility.
func (r *moneyRequestRepository) ListPendingFor(ctx context.Context, userID int32) ([]domain.MoneyRequest, error) {
	query := `SELECT ` + moneyRequestColumns + ` FROM money_requests
	          WHERE requested_from = $1 AND status = 'PENDING' ORDER BY created_on ASC, id ASC`
	return r.list(ctx, query, userID)
}

func (r *moneyRequestRepository) ListByTeam(ctx context.Context, teamID int32) ([]domain.MoneyRequest, error) {
	query := `SELECT ` + moneyRequestColumns + ` FROM money_requests
	          WHERE team_id = $1 ORDER BY created_on DESC, id DESC`
	return r.list(ctx, query, teamID)
}

func (r *moneyRequestRepository) list(ctx context.Context, query string, arg any) ([]domain.MoneyRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.MoneyRequest
	for rows.Next() {
		var req domain.MoneyRequest
		if err := rows.Scan(&req.ID, &req.TeamID, &req.RequesterID, &req.RequestedFrom,
			&req.AmountCents, &req.Reason, &req.Status, &req.CreatedOn, &req.RespondedOn); err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMoneyRequest(row rowScanner) (*domain.MoneyRequest, error) {
	var req domain.MoneyRequest
	err := row.Scan(&req.ID, &req.TeamID, &req.RequesterID, &req.RequestedFrom,
		&req.AmountCents, &req.Reason, &req.Status, &req.CreatedOn, &req.RespondedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}
