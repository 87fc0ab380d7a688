package core

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/LevanSamadashvili/BitcoinWallet/app/core/status"
	"github.com/LevanSamadashvili/BitcoinWallet/app/models"
	"github.com/LevanSamadashvili/BitcoinWallet/app/storage/memory"
)

func newTestManager() (*Manager, *memory.Memory) {
	mem := memory.NewMemory()
	addresses := 0
	keys := 0
	m := &Manager{
		Users:        mem,
		Wallets:      mem,
		Transactions: mem,
		Statistics:   mem,
		Strategies: Strategies{
			GenerateAPIKey: func() string {
				keys++
				return fmt.Sprintf("key-%d", keys)
			},
			GenerateAddress: func() string {
				addresses++
				return fmt.Sprintf("addr-%d", addresses)
			},
			BTCToUSD: func(_ context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
				return amount.Mul(decimal.NewFromInt(100)), nil
			},
			TransactionFee: func(first, second *models.Wallet) decimal.Decimal {
				if first.APIKey == second.APIKey {
					return decimal.Zero
				}
				return decimal.RequireFromString("1.5")
			},
		},
	}
	return m, mem
}

// sentinel records whether the chain reached it.
func sentinel(called *bool) step {
	return func(ctx context.Context) *models.Response {
		*called = true
		return &models.Response{}
	}
}

func TestEmptyChainReturnsDefaultResponse(t *testing.T) {
	resp := chain{}.run(context.Background())

	require.Equal(t, status.Default, resp.StatusCode)
	require.Nil(t, resp.Content)
}

func TestCreateUser(t *testing.T) {
	m, mem := newTestManager()

	resp := m.createUser()(context.Background())

	require.NotNil(t, resp)
	require.Equal(t, status.UserCreatedSuccessfully, resp.StatusCode)

	content, ok := resp.Content.(*models.RegisterUserResponse)
	require.True(t, ok)

	hasUser, err := mem.HasUser(context.Background(), content.APIKey)
	require.NoError(t, err)
	require.True(t, hasUser)
}

func TestCreateUserDuplicateKey(t *testing.T) {
	m, mem := newTestManager()
	m.Strategies.GenerateAPIKey = func() string { return "same" }

	require.NoError(t, mem.CreateUser(context.Background(), "same"))

	resp := m.createUser()(context.Background())
	require.NotNil(t, resp)
	require.Equal(t, status.UserRegistrationError, resp.StatusCode)
	require.Nil(t, resp.Content)
}

func TestHasUserUnknownKey(t *testing.T) {
	m, _ := newTestManager()

	called := false
	resp := chain{m.hasUser("trash"), sentinel(&called)}.run(context.Background())

	require.Equal(t, status.IncorrectAPIKey, resp.StatusCode)
	require.False(t, called)
}

func TestHasUserDelegates(t *testing.T) {
	m, mem := newTestManager()
	require.NoError(t, mem.CreateUser(context.Background(), "known"))

	called := false
	chain{m.hasUser("known"), sentinel(&called)}.run(context.Background())

	require.True(t, called)
}

func TestMaxWalletsUnderTheCap(t *testing.T) {
	m, mem := newTestManager()
	require.NoError(t, mem.CreateUser(context.Background(), "key"))

	called := false
	chain{m.maxWallets("key"), sentinel(&called)}.run(context.Background())

	require.True(t, called)
}

func TestMaxWalletsAtTheCap(t *testing.T) {
	m, mem := newTestManager()
	ctx := context.Background()
	require.NoError(t, mem.CreateUser(ctx, "key"))
	for i := 0; i < MaxWalletsPerUser; i++ {
		require.NoError(t, mem.CreateWallet(ctx, fmt.Sprintf("wallet-%d", i), "key"))
	}

	called := false
	resp := chain{m.maxWallets("key"), sentinel(&called)}.run(ctx)

	require.Equal(t, status.CantCreateMoreWallets, resp.StatusCode)
	require.False(t, called)
}

func TestCreateWalletFundsInitialBalance(t *testing.T) {
	m, mem := newTestManager()
	ctx := context.Background()
	require.NoError(t, mem.CreateUser(ctx, "key"))

	resp := m.createWallet("key")(ctx)

	require.NotNil(t, resp)
	require.Equal(t, status.WalletCreatedSuccessfully, resp.StatusCode)

	content, ok := resp.Content.(*models.CreateWalletResponse)
	require.True(t, ok)
	require.True(t, content.BalanceBTC.Equal(InitialBalanceBTC))
	require.True(t, content.BalanceUSD.Equal(decimal.NewFromInt(100)))

	balance, err := mem.GetBalance(ctx, content.Address)
	require.NoError(t, err)
	require.True(t, balance.Equal(InitialBalanceBTC))
}

func TestGetWalletUnknownAddress(t *testing.T) {
	m, _ := newTestManager()

	resp := m.getWallet("missing")(context.Background())

	require.NotNil(t, resp)
	require.Equal(t, status.InvalidWallet, resp.StatusCode)
	require.Nil(t, resp.Content)
}

func TestGetWalletReportsBothCurrencies(t *testing.T) {
	m, mem := newTestManager()
	ctx := context.Background()
	require.NoError(t, mem.CreateUser(ctx, "key"))
	require.NoError(t, mem.CreateWallet(ctx, "addr", "key"))
	require.NoError(t, mem.Deposit(ctx, "addr", decimal.RequireFromString("0.5")))

	resp := m.getWallet("addr")(ctx)

	require.Equal(t, status.GotBalanceSuccessfully, resp.StatusCode)
	content, ok := resp.Content.(*models.GetBalanceResponse)
	require.True(t, ok)
	require.Equal(t, "addr", content.Address)
	require.True(t, content.BalanceBTC.Equal(decimal.RequireFromString("0.5")))
	require.True(t, content.BalanceUSD.Equal(decimal.NewFromInt(50)))
}

func TestWalletBelongsToAnotherUser(t *testing.T) {
	m, mem := newTestManager()
	ctx := context.Background()
	require.NoError(t, mem.CreateUser(ctx, "owner"))
	require.NoError(t, mem.CreateWallet(ctx, "addr", "owner"))

	called := false
	resp := chain{m.walletBelongsToUser("intruder", "addr"), sentinel(&called)}.run(ctx)

	require.Equal(t, status.NotYourWallet, resp.StatusCode)
	require.False(t, called)
}

func TestTransactionValidationInsufficientBalance(t *testing.T) {
	m, mem := newTestManager()
	ctx := context.Background()
	require.NoError(t, mem.CreateUser(ctx, "key"))
	require.NoError(t, mem.CreateWallet(ctx, "addr", "key"))
	require.NoError(t, mem.Deposit(ctx, "addr", decimal.NewFromInt(1)))

	called := false
	resp := chain{
		m.transactionValidation("addr", decimal.NewFromInt(2)),
		sentinel(&called),
	}.run(ctx)

	require.Equal(t, status.NotEnoughBalance, resp.StatusCode)
	require.False(t, called)
}

func TestIsAdmin(t *testing.T) {
	m, _ := newTestManager()
	m.AdminAPIKey = "secret"

	called := false
	resp := chain{m.isAdmin("guess"), sentinel(&called)}.run(context.Background())
	require.Equal(t, status.IncorrectAPIKey, resp.StatusCode)
	require.False(t, called)

	chain{m.isAdmin("secret"), sentinel(&called)}.run(context.Background())
	require.True(t, called)
}

func TestGetStatisticsEmptyLedger(t *testing.T) {
	m, _ := newTestManager()

	resp := m.getStatistics()(context.Background())

	require.Equal(t, status.FetchStatisticsSuccessful, resp.StatusCode)
	content, ok := resp.Content.(*models.GetStatisticsResponse)
	require.True(t, ok)
	require.EqualValues(t, 0, content.TotalTransactions)
	require.True(t, content.PlatformProfit.IsZero())
}

func TestGetTransactionsEmptyListIsValid(t *testing.T) {
	m, _ := newTestManager()

	resp := m.getTransactions()(context.Background())

	require.Equal(t, status.FetchTransactionsSuccessful, resp.StatusCode)
	content, ok := resp.Content.(*models.GetTransactionsResponse)
	require.True(t, ok)
	require.NotNil(t, content.Transactions)
	require.Empty(t, content.Transactions)
}
