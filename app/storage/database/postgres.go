package database

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"

	"github.com/LevanSamadashvili/BitcoinWallet/app/models"
	"github.com/LevanSamadashvili/BitcoinWallet/app/storage"
)

func (p *Postgres) CreateUser(ctx context.Context, apiKey string) error {
	_, err := p.DB.ExecContext(
		ctx,
		"INSERT INTO users (api_key) VALUES ($1);",
		apiKey,
	)
	return errors.Wrap(err, "failed to insert a user")
}

func (p *Postgres) HasUser(ctx context.Context, apiKey string) (bool, error) {
	var exists bool
	if err := p.DB.GetContext(
		ctx,
		&exists,
		"SELECT EXISTS (SELECT 1 FROM users WHERE api_key = $1);",
		apiKey,
	); err != nil {
		return false, errors.Wrap(err, "failed to look up a user")
	}
	return exists, nil
}

func (p *Postgres) CreateWallet(ctx context.Context, address, apiKey string) error {
	_, err := p.DB.ExecContext(
		ctx,
		"INSERT INTO wallets (address, api_key, balance) VALUES ($1, $2, 0);",
		address, apiKey,
	)
	return errors.Wrap(err, "failed to insert a wallet")
}

func (p *Postgres) GetWallet(ctx context.Context, address string) (*models.Wallet, error) {
	result := new(dbWallet)
	if err := p.DB.GetContext(
		ctx,
		result,
		"SELECT address, api_key, balance FROM wallets WHERE address = $1 LIMIT 1;",
		address,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to select a wallet")
	}
	return result.toPublic(), nil
}

func (p *Postgres) HasWallet(ctx context.Context, address string) (bool, error) {
	var exists bool
	if err := p.DB.GetContext(
		ctx,
		&exists,
		"SELECT EXISTS (SELECT 1 FROM wallets WHERE address = $1);",
		address,
	); err != nil {
		return false, errors.Wrap(err, "failed to look up a wallet")
	}
	return exists, nil
}

func (p *Postgres) GetBalance(ctx context.Context, address string) (decimal.Decimal, error) {
	var balance decimal.Decimal
	if err := p.DB.GetContext(
		ctx,
		&balance,
		"SELECT balance FROM wallets WHERE address = $1 LIMIT 1;",
		address,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, storage.ErrNotFound
		}
		return decimal.Zero, errors.Wrap(err, "failed to select a balance")
	}
	return balance, nil
}

func (p *Postgres) Deposit(ctx context.Context, address string, amount decimal.Decimal) error {
	result, err := p.DB.ExecContext(
		ctx,
		"UPDATE wallets SET balance = balance + $1 WHERE address = $2;",
		amount, address,
	)
	if err != nil {
		return errors.Wrap(err, "failed to deposit to a wallet")
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// Withdraw debits the wallet only when the balance covers the amount, so a
// concurrent writer can never drive a balance negative.
func (p *Postgres) Withdraw(ctx context.Context, address string, amount decimal.Decimal) error {
	result, err := p.DB.ExecContext(
		ctx,
		"UPDATE wallets SET balance = balance - $1 WHERE address = $2 AND balance >= $1;",
		amount, address,
	)
	if err != nil {
		return errors.Wrap(err, "failed to withdraw from a wallet")
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return errors.New("wallet is missing or the balance is insufficient")
	}
	return nil
}

func (p *Postgres) CountWallets(ctx context.Context, apiKey string) (int, error) {
	var count int
	if err := p.DB.GetContext(
		ctx,
		&count,
		"SELECT COUNT(*) FROM wallets WHERE api_key = $1;",
		apiKey,
	); err != nil {
		return 0, errors.Wrap(err, "failed to count wallets")
	}
	return count, nil
}

func (p *Postgres) AddTransaction(ctx context.Context, transaction *models.Transaction) error {
	_, err := p.DB.ExecContext(
		ctx,
		"INSERT INTO transactions (from_address, to_address, amount) VALUES ($1, $2, $3);",
		transaction.FromAddress, transaction.ToAddress, transaction.Amount,
	)
	return errors.Wrap(err, "failed to insert a transaction")
}

func (p *Postgres) GetTransactions(ctx context.Context) ([]models.Transaction, error) {
	var rows []dbTransaction
	if err := p.DB.SelectContext(
		ctx,
		&rows,
		"SELECT id, from_address, to_address, amount FROM transactions ORDER BY id;",
	); err != nil {
		return nil, errors.Wrap(err, "failed to select transactions")
	}

	result := make([]models.Transaction, 0, len(rows))
	for i := range rows {
		result = append(result, rows[i].toPublic())
	}
	return result, nil
}

func (p *Postgres) GetWalletTransactions(ctx context.Context, address string) ([]models.Transaction, error) {
	var rows []dbTransaction
	if err := p.DB.SelectContext(
		ctx,
		&rows,
		"SELECT id, from_address, to_address, amount FROM transactions WHERE from_address = $1 OR to_address = $1 ORDER BY id;",
		address,
	); err != nil {
		return nil, errors.Wrap(err, "failed to select wallet transactions")
	}

	result := make([]models.Transaction, 0, len(rows))
	for i := range rows {
		result = append(result, rows[i].toPublic())
	}
	return result, nil
}

func (p *Postgres) GetStatistics(ctx context.Context) (*models.Statistics, error) {
	result := new(dbStatistics)
	if err := p.DB.GetContext(
		ctx,
		result,
		"SELECT num_transactions, profit FROM statistics LIMIT 1;",
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to select statistics")
	}
	return result.toPublic(), nil
}

func (p *Postgres) AddStatistic(ctx context.Context, numTransactions int64, profit decimal.Decimal) error {
	tx, err := p.DB.Beginx()
	if err != nil {
		return errors.Wrap(err, "failed to start a db transaction")
	}

	result, err := tx.ExecContext(
		ctx,
		"UPDATE statistics SET num_transactions = num_transactions + $1, profit = profit + $2;",
		numTransactions, profit,
	)
	if err != nil {
		err = errors.Wrap(err, "failed to update statistics")
		rlbErr := errors.Wrap(tx.Rollback(), "failed to rollback the db transaction")
		return multierr.Append(err, rlbErr)
	}

	// the singleton row is seeded by the migration; re-seed if it is gone
	if affected, _ := result.RowsAffected(); affected == 0 {
		if _, err = tx.ExecContext(
			ctx,
			"INSERT INTO statistics (num_transactions, profit) VALUES ($1, $2);",
			numTransactions, profit,
		); err != nil {
			err = errors.Wrap(err, "failed to insert statistics")
			rlbErr := errors.Wrap(tx.Rollback(), "failed to rollback the db transaction")
			return multierr.Append(err, rlbErr)
		}
	}

	return errors.Wrap(tx.Commit(), "failed to commit the db transaction")
}
