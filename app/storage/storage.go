package storage

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/LevanSamadashvili/BitcoinWallet/app/models"
)

// ErrNotFound is returned by lookups when the requested record does not
// exist. Callers distinguish it from genuine backend failures.
var ErrNotFound = errors.New("record not found")

type UserStore interface {
	CreateUser(ctx context.Context, apiKey string) error
	HasUser(ctx context.Context, apiKey string) (bool, error)
}

type WalletStore interface {
	CreateWallet(ctx context.Context, address, apiKey string) error
	GetWallet(ctx context.Context, address string) (*models.Wallet, error)
	HasWallet(ctx context.Context, address string) (bool, error)
	GetBalance(ctx context.Context, address string) (decimal.Decimal, error)
	Deposit(ctx context.Context, address string, amount decimal.Decimal) error
	Withdraw(ctx context.Context, address string, amount decimal.Decimal) error
	CountWallets(ctx context.Context, apiKey string) (int, error)
}

type TransactionStore interface {
	AddTransaction(ctx context.Context, transaction *models.Transaction) error
	GetTransactions(ctx context.Context) ([]models.Transaction, error)
	GetWalletTransactions(ctx context.Context, address string) ([]models.Transaction, error)
}

type StatisticsStore interface {
	GetStatistics(ctx context.Context) (*models.Statistics, error)
	AddStatistic(ctx context.Context, numTransactions int64, profit decimal.Decimal) error
}
