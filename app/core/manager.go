package core

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/LevanSamadashvili/BitcoinWallet/app/models"
	"github.com/LevanSamadashvili/BitcoinWallet/app/storage"
)

const (
	// MaxWalletsPerUser caps the number of wallets a single user may own.
	MaxWalletsPerUser = 3

	// DefaultAdminAPIKey authorizes platform statistics reads unless the
	// config overrides it.
	DefaultAdminAPIKey = "3.14"
)

// InitialBalanceBTC is deposited into every freshly created wallet.
var InitialBalanceBTC = decimal.NewFromInt(1)

// Strategies parameterize the pipelines without hardcoding policy. All of
// them are pure except BTCToUSD, which may hit an external price endpoint
// and is therefore fallible.
type Strategies struct {
	GenerateAPIKey  func() string
	GenerateAddress func() string
	BTCToUSD        func(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error)
	TransactionFee  func(first, second *models.Wallet) decimal.Decimal
}

// Manager assembles one pipeline per use case over the storage ports and
// the injected strategies. The assembly is wiring only; all logic lives in
// the steps.
type Manager struct {
	Users        storage.UserStore
	Wallets      storage.WalletStore
	Transactions storage.TransactionStore
	Statistics   storage.StatisticsStore
	Observer     StatisticsObserver
	Strategies   Strategies
	AdminAPIKey  string
}

func (m *Manager) RegisterUser(ctx context.Context, _ *models.RegisterUserRequest) models.Response {
	return chain{
		m.createUser(),
	}.run(ctx)
}

func (m *Manager) CreateWallet(ctx context.Context, req *models.CreateWalletRequest) models.Response {
	return chain{
		m.hasUser(req.APIKey),
		m.maxWallets(req.APIKey),
		m.createWallet(req.APIKey),
	}.run(ctx)
}

func (m *Manager) GetBalance(ctx context.Context, req *models.GetBalanceRequest) models.Response {
	return chain{
		m.hasUser(req.APIKey),
		m.walletBelongsToUser(req.APIKey, req.Address),
		m.getWallet(req.Address),
	}.run(ctx)
}

func (m *Manager) MakeTransaction(ctx context.Context, req *models.MakeTransactionRequest) models.Response {
	return chain{
		m.hasUser(req.APIKey),
		m.hasWallet(req.FromAddress),
		m.hasWallet(req.ToAddress),
		m.walletBelongsToUser(req.APIKey, req.FromAddress),
		m.transactionValidation(req.FromAddress, req.Amount),
		m.makeTransaction(req.FromAddress, req.ToAddress, req.Amount),
		m.saveTransaction(req.FromAddress, req.ToAddress, req.Amount),
	}.run(ctx)
}

func (m *Manager) GetTransactions(ctx context.Context, req *models.GetTransactionsRequest) models.Response {
	return chain{
		m.hasUser(req.APIKey),
		m.getTransactions(),
	}.run(ctx)
}

func (m *Manager) GetWalletTransactions(ctx context.Context, req *models.GetWalletTransactionsRequest) models.Response {
	return chain{
		m.hasUser(req.APIKey),
		m.hasWallet(req.Address),
		m.walletBelongsToUser(req.APIKey, req.Address),
		m.getWalletTransactions(req.Address),
	}.run(ctx)
}

func (m *Manager) GetStatistics(ctx context.Context, req *models.GetStatisticsRequest) models.Response {
	return chain{
		m.isAdmin(req.APIKey),
		m.getStatistics(),
	}.run(ctx)
}

func (m *Manager) adminKey() string {
	if m.AdminAPIKey == "" {
		return DefaultAdminAPIKey
	}
	return m.AdminAPIKey
}
