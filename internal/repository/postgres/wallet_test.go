package postgres_test

import (
	"context"
	"testing"
	"time"

	"arenahub-backend/internal/domain"
	"arenahub-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestWalletRepository_GetBalance(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewWalletRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT balance_cents FROM team_wallets").
			WithArgs(int32(1)).
			WillReturnRows(sqlmock.NewRows([]string{"balance_cents"}).AddRow(7500))

		balance, err := repo.GetBalance(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(7500), balance)
	})

	t.Run("MissingWallet", func(t *testing.T) {
		mock.ExpectQuery("SELECT balance_cents FROM team_wallets").
			WithArgs(int32(9)).
			WillReturnRows(sqlmock.NewRows([]string{"balance_cents"}))

		_, err := repo.GetBalance(ctx, 9)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestWalletRepository_Commit(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewWalletRepository(db)
	ctx := context.Background()

	actor := int32(11)

	t.Run("CreditSuccess", func(t *testing.T) {
		tx := &domain.TeamTransaction{
			TeamID:      1,
			ActorUserID: &actor,
			Type:        domain.TransactionTypePrizePayout,
			AmountCents: 50_000,
			Description: "Summer Cup winnings",
			Reference:   "payout-123",
		}

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE team_wallets").
			WithArgs(tx.AmountCents, tx.TeamID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("INSERT INTO team_transactions").
			WithArgs(tx.TeamID, tx.ActorUserID, tx.Type, tx.AmountCents, tx.Description, tx.Reference).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_on"}).AddRow(4, time.Now()))
		mock.ExpectCommit()

		err := repo.Commit(ctx, tx)
		assert.NoError(t, err)
		assert.Equal(t, int32(4), tx.ID)
	})

	t.Run("DebitPastZeroRefused", func(t *testing.T) {
		tx := &domain.TeamTransaction{
			TeamID:      1,
			Type:        domain.TransactionTypeEntryFee,
			AmountCents: -999_999,
		}

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE team_wallets").
			WithArgs(tx.AmountCents, tx.TeamID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(tx.TeamID).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		err := repo.Commit(ctx, tx)
		assert.ErrorIs(t, err, domain.ErrNegativeBalance)
	})

	t.Run("MissingWallet", func(t *testing.T) {
		tx := &domain.TeamTransaction{TeamID: 9, Type: domain.TransactionTypeAdjustment, AmountCents: 100}

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE team_wallets").
			WithArgs(tx.AmountCents, tx.TeamID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(tx.TeamID).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectRollback()

		err := repo.Commit(ctx, tx)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestWalletRepository_ListTransactions(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewWalletRepository(db)
	ctx := context.Background()

	t.Run("NewestFirst", func(t *testing.T) {
		actor := int32(11)
		rows := sqlmock.NewRows([]string{"id", "team_id", "actor_user_id", "type", "amount_cents", "description", "reference", "created_on"}).
			AddRow(2, 1, actor, "CONTRIBUTION", 2500, "Contribution for money request #5", "ref-b", time.Now()).
			AddRow(1, 1, nil, "ADJUSTMENT", -100, "correction", "ref-a", time.Now().Add(-time.Hour))

		mock.ExpectQuery("SELECT id, team_id, actor_user_id, type, amount_cents, description, reference, created_on").
			WithArgs(int32(1)).
			WillReturnRows(rows)

		txs, err := repo.ListTransactions(ctx, 1)
		assert.NoError(t, err)
		assert.Len(t, txs, 2)
		assert.Equal(t, int32(2), txs[0].ID)
		assert.Nil(t, txs[1].ActorUserID)
	})
}
