package memory

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/LevanSamadashvili/BitcoinWallet/app/models"
	"github.com/LevanSamadashvili/BitcoinWallet/app/storage"
)

// Memory keeps the whole ledger in process memory. It satisfies all four
// storage ports and is the default backend for development and tests.
type Memory struct {
	mu           sync.Mutex
	users        map[string]struct{}
	wallets      map[string]*models.Wallet
	transactions []models.Transaction
	statistics   models.Statistics
}

func NewMemory() *Memory {
	return &Memory{
		users:   make(map[string]struct{}),
		wallets: make(map[string]*models.Wallet),
	}
}

func (m *Memory) CreateUser(_ context.Context, apiKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[apiKey]; ok {
		return errors.New("user already exists")
	}
	m.users[apiKey] = struct{}{}
	return nil
}

func (m *Memory) HasUser(_ context.Context, apiKey string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.users[apiKey]
	return ok, nil
}

func (m *Memory) CreateWallet(_ context.Context, address, apiKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.wallets[address]; ok {
		return errors.New("wallet already exists")
	}
	m.wallets[address] = &models.Wallet{
		Address:    address,
		APIKey:     apiKey,
		BalanceBTC: decimal.Zero,
	}
	return nil
}

func (m *Memory) GetWallet(_ context.Context, address string) (*models.Wallet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	wallet, ok := m.wallets[address]
	if !ok {
		return nil, storage.ErrNotFound
	}
	copied := *wallet
	return &copied, nil
}

func (m *Memory) HasWallet(_ context.Context, address string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.wallets[address]
	return ok, nil
}

func (m *Memory) GetBalance(_ context.Context, address string) (decimal.Decimal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	wallet, ok := m.wallets[address]
	if !ok {
		return decimal.Zero, storage.ErrNotFound
	}
	return wallet.BalanceBTC, nil
}

func (m *Memory) Deposit(_ context.Context, address string, amount decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	wallet, ok := m.wallets[address]
	if !ok {
		return storage.ErrNotFound
	}
	wallet.BalanceBTC = wallet.BalanceBTC.Add(amount)
	return nil
}

func (m *Memory) Withdraw(_ context.Context, address string, amount decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	wallet, ok := m.wallets[address]
	if !ok {
		return storage.ErrNotFound
	}
	if wallet.BalanceBTC.LessThan(amount) {
		return errors.New("insufficient balance")
	}
	wallet.BalanceBTC = wallet.BalanceBTC.Sub(amount)
	return nil
}

func (m *Memory) CountWallets(_ context.Context, apiKey string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, wallet := range m.wallets {
		if wallet.APIKey == apiKey {
			count++
		}
	}
	return count, nil
}

func (m *Memory) AddTransaction(_ context.Context, transaction *models.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.transactions = append(m.transactions, *transaction)
	return nil
}

func (m *Memory) GetTransactions(_ context.Context) ([]models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]models.Transaction, len(m.transactions))
	copy(result, m.transactions)
	return result, nil
}

func (m *Memory) GetWalletTransactions(_ context.Context, address string) ([]models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]models.Transaction, 0)
	for _, transaction := range m.transactions {
		if transaction.FromAddress == address || transaction.ToAddress == address {
			result = append(result, transaction)
		}
	}
	return result, nil
}

func (m *Memory) GetStatistics(_ context.Context) (*models.Statistics, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := m.statistics
	return &copied, nil
}

func (m *Memory) AddStatistic(_ context.Context, numTransactions int64, profit decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.statistics.NumTransactions += numTransactions
	m.statistics.Profit = m.statistics.Profit.Add(profit)
	return nil
}
