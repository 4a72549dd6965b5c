package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"arenahub-backend/internal/domain"
	"arenahub-backend/internal/repository"
)

type walletRepository struct {
	db *sql.DB
}

func NewWalletRepository(db *sql.DB) repository.WalletRepository {
	return &walletRepository{db: db}
}

func (r *walletRepository) GetBalance(ctx context.Context, teamID int32) (int64, error) {
	var balance int64
	query := `SELECT balance_cents FROM team_wallets WHERE team_id = $1`
	err := r.db.QueryRowContext(ctx, query, teamID).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrNotFound
	}
	return balance, err
}

// Commit applies the signed amount to the wallet and appends the transaction
// atomically. The balance update is guarded so concurrent debits cannot
// interleave into a negative balance; the guarded UPDATE matching zero rows
// means the debit was refused.
func (r *walletRepository) Commit(ctx context.Context, tx *domain.TeamTransaction) error {
	dbtx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer dbtx.Rollback()

	if err := applyTransaction(ctx, dbtx, tx); err != nil {
		return err
	}
	return dbtx.Commit()
}

// applyTransaction performs the guarded balance update and the ledger append
// inside an open database transaction. Shared with the money-request
// approval path so both go through identical commit semantics.
func applyTransaction(ctx context.Context, dbtx *sql.Tx, tx *domain.TeamTransaction) error {
	res, err := dbtx.ExecContext(ctx,
		`UPDATE team_wallets SET balance_cents = balance_cents + $1, updated_on = now()
		 WHERE team_id = $2 AND balance_cents + $1 >= 0`,
		tx.AmountCents, tx.TeamID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		var exists bool
		if err := dbtx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM team_wallets WHERE team_id = $1)`, tx.TeamID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domain.ErrNotFound
		}
		return domain.ErrNegativeBalance
	}

	err = dbtx.QueryRowContext(ctx,
		`INSERT INTO team_transactions (team_id, actor_user_id, type, amount_cents, description, reference)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_on`,
		tx.TeamID, tx.ActorUserID, tx.Type, tx.AmountCents, tx.Description, tx.Reference).
		Scan(&tx.ID, &tx.CreatedOn)
	if err != nil {
		return fmt.Errorf("append transaction: %w", err)
	}
	return nil
}

func (r *walletRepository) ListTransactions(ctx context.Context, teamID int32) ([]domain.TeamTransaction, error) {
	query := `SELECT id, team_id, actor_user_id, type, amount_cents, description, reference, created_on
	          FROM team_transactions WHERE team_id = $1 ORDER BY created_on DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []domain.TeamTransaction
	for rows.Next() {
		var tx domain.TeamTransaction
		if err := rows.Scan(&tx.ID, &tx.TeamID, &tx.ActorUserID, &tx.Type, &tx.AmountCents, &tx.Description, &tx.Reference, &tx.CreatedOn); err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}
