package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/LevanSamadashvili/BitcoinWallet/app/models"
	"github.com/LevanSamadashvili/BitcoinWallet/app/storage"
)

func TestUserStore(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	has, err := mem.HasUser(ctx, "key")
	require.NoError(t, err)
	require.False(t, has)

	require.NoError(t, mem.CreateUser(ctx, "key"))

	has, err = mem.HasUser(ctx, "key")
	require.NoError(t, err)
	require.True(t, has)

	// api keys are unique
	require.Error(t, mem.CreateUser(ctx, "key"))
}

func TestWalletStore(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	_, err := mem.GetWallet(ctx, "addr")
	require.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, mem.CreateWallet(ctx, "addr", "key"))
	require.Error(t, mem.CreateWallet(ctx, "addr", "key"), "addresses are unique")

	wallet, err := mem.GetWallet(ctx, "addr")
	require.NoError(t, err)
	require.Equal(t, "key", wallet.APIKey)
	require.True(t, wallet.BalanceBTC.IsZero())

	require.NoError(t, mem.Deposit(ctx, "addr", decimal.NewFromInt(3)))
	require.NoError(t, mem.Withdraw(ctx, "addr", decimal.NewFromInt(1)))

	balance, err := mem.GetBalance(ctx, "addr")
	require.NoError(t, err)
	require.True(t, balance.Equal(decimal.NewFromInt(2)))

	require.Error(t, mem.Withdraw(ctx, "addr", decimal.NewFromInt(5)),
		"withdrawals never drive a balance negative")
	require.ErrorIs(t, mem.Deposit(ctx, "other", decimal.NewFromInt(1)), storage.ErrNotFound)
}

func TestWalletStoreReturnsCopies(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	require.NoError(t, mem.CreateWallet(ctx, "addr", "key"))

	wallet, err := mem.GetWallet(ctx, "addr")
	require.NoError(t, err)
	wallet.BalanceBTC = decimal.NewFromInt(1000) // must not leak into the store

	balance, err := mem.GetBalance(ctx, "addr")
	require.NoError(t, err)
	require.True(t, balance.IsZero())
}

func TestCountWallets(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	require.NoError(t, mem.CreateWallet(ctx, "a1", "alice"))
	require.NoError(t, mem.CreateWallet(ctx, "a2", "alice"))
	require.NoError(t, mem.CreateWallet(ctx, "b1", "bob"))

	count, err := mem.CountWallets(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, 2, count)

	count, err = mem.CountWallets(ctx, "nobody")
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestTransactionStore(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	transactions, err := mem.GetTransactions(ctx)
	require.NoError(t, err)
	require.Empty(t, transactions)

	require.NoError(t, mem.AddTransaction(ctx, &models.Transaction{
		FromAddress: "a", ToAddress: "b", Amount: decimal.NewFromInt(1),
	}))
	require.NoError(t, mem.AddTransaction(ctx, &models.Transaction{
		FromAddress: "b", ToAddress: "c", Amount: decimal.NewFromInt(2),
	}))

	transactions, err = mem.GetTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, transactions, 2)

	forA, err := mem.GetWalletTransactions(ctx, "a")
	require.NoError(t, err)
	require.Len(t, forA, 1)

	forB, err := mem.GetWalletTransactions(ctx, "b")
	require.NoError(t, err)
	require.Len(t, forB, 2, "sender and receiver both match")

	forD, err := mem.GetWalletTransactions(ctx, "d")
	require.NoError(t, err)
	require.Empty(t, forD)
}

func TestStatisticsStore(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	statistics, err := mem.GetStatistics(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 0, statistics.NumTransactions)
	require.True(t, statistics.Profit.IsZero())

	require.NoError(t, mem.AddStatistic(ctx, 1, decimal.RequireFromString("0.0075")))
	require.NoError(t, mem.AddStatistic(ctx, 1, decimal.RequireFromString("0.0025")))

	statistics, err = mem.GetStatistics(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, statistics.NumTransactions)
	require.True(t, statistics.Profit.Equal(decimal.RequireFromString("0.01")))
}
