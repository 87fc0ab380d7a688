package core

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"

	"github.com/LevanSamadashvili/BitcoinWallet/app/core/status"
	"github.com/LevanSamadashvili/BitcoinWallet/app/models"
	"github.com/LevanSamadashvili/BitcoinWallet/pkg/log"
)

// hasUser rejects requests carrying an api key unknown to the user store.
func (m *Manager) hasUser(apiKey string) step {
	return func(ctx context.Context) *models.Response {
		ok, err := m.Users.HasUser(ctx, apiKey)
		if err != nil {
			log.ExtractLogger(ctx).Warnw("user lookup failed", "error", err.Error())
			return fail(status.IncorrectAPIKey)
		}
		if !ok {
			return fail(status.IncorrectAPIKey)
		}
		return nil
	}
}

// hasWallet rejects requests addressing a wallet unknown to the wallet store.
func (m *Manager) hasWallet(address string) step {
	return func(ctx context.Context) *models.Response {
		ok, err := m.Wallets.HasWallet(ctx, address)
		if err != nil {
			log.ExtractLogger(ctx).Warnw("wallet lookup failed", "error", err.Error())
			return fail(status.InvalidWallet)
		}
		if !ok {
			return fail(status.InvalidWallet)
		}
		return nil
	}
}

// walletBelongsToUser scopes wallet reads and debits to the caller's own wallets.
func (m *Manager) walletBelongsToUser(apiKey, address string) step {
	return func(ctx context.Context) *models.Response {
		wallet, err := m.Wallets.GetWallet(ctx, address)
		if err != nil {
			return fail(status.InvalidWallet)
		}
		if wallet.APIKey != apiKey {
			return fail(status.NotYourWallet)
		}
		return nil
	}
}

// maxWallets enforces the per-user wallet cap.
func (m *Manager) maxWallets(apiKey string) step {
	return func(ctx context.Context) *models.Response {
		count, err := m.Wallets.CountWallets(ctx, apiKey)
		if err != nil {
			log.ExtractLogger(ctx).Warnw("wallet count failed", "error", err.Error())
			return fail(status.WalletCreationError)
		}
		if count >= MaxWalletsPerUser {
			return fail(status.CantCreateMoreWallets)
		}
		return nil
	}
}

// transactionValidation rejects transfers the source wallet cannot cover.
func (m *Manager) transactionValidation(address string, amount decimal.Decimal) step {
	return func(ctx context.Context) *models.Response {
		balance, err := m.Wallets.GetBalance(ctx, address)
		if err != nil {
			log.ExtractLogger(ctx).Warnw("balance lookup failed", "error", err.Error())
			return fail(status.TransactionUnsuccessful)
		}
		if balance.LessThan(amount) {
			return fail(status.NotEnoughBalance)
		}
		return nil
	}
}

// isAdmin guards the platform-wide statistics behind the admin key.
func (m *Manager) isAdmin(apiKey string) step {
	return func(ctx context.Context) *models.Response {
		if apiKey != m.adminKey() {
			return fail(status.IncorrectAPIKey)
		}
		return nil
	}
}

// createUser registers a user under a freshly generated api key.
func (m *Manager) createUser() step {
	return func(ctx context.Context) *models.Response {
		apiKey := m.Strategies.GenerateAPIKey()
		if err := m.Users.CreateUser(ctx, apiKey); err != nil {
			log.ExtractLogger(ctx).Warnw("user registration failed", "error", err.Error())
			return fail(status.UserRegistrationError)
		}

		return succeed(status.UserCreatedSuccessfully, &models.RegisterUserResponse{
			APIKey: apiKey,
		})
	}
}

// createWallet opens a wallet at a freshly generated address and funds it
// with the fixed starting balance.
func (m *Manager) createWallet(apiKey string) step {
	return func(ctx context.Context) *models.Response {
		address := m.Strategies.GenerateAddress()
		if err := m.Wallets.CreateWallet(ctx, address, apiKey); err != nil {
			log.ExtractLogger(ctx).Warnw("wallet creation failed", "error", err.Error())
			return fail(status.WalletCreationError)
		}

		if err := m.Wallets.Deposit(ctx, address, InitialBalanceBTC); err != nil {
			log.ExtractLogger(ctx).Warnw("initial deposit failed", "error", err.Error())
			return fail(status.WalletCreationError)
		}

		return succeed(status.WalletCreatedSuccessfully, &models.CreateWalletResponse{
			Address:    address,
			BalanceBTC: InitialBalanceBTC,
			BalanceUSD: m.convertToUSD(ctx, InitialBalanceBTC),
		})
	}
}

// getWallet reports a wallet's balance in BTC and USD.
func (m *Manager) getWallet(address string) step {
	return func(ctx context.Context) *models.Response {
		wallet, err := m.Wallets.GetWallet(ctx, address)
		if err != nil {
			return fail(status.InvalidWallet)
		}

		return succeed(status.GotBalanceSuccessfully, &models.GetBalanceResponse{
			Address:    wallet.Address,
			BalanceBTC: wallet.BalanceBTC,
			BalanceUSD: m.convertToUSD(ctx, wallet.BalanceBTC),
		})
	}
}

// makeTransaction moves the amount between the two wallets: the source is
// debited the full amount, the destination is credited the amount net of
// the fee. If the credit fails after the debit succeeded, the debit is
// compensated by re-depositing the amount back to the source.
func (m *Manager) makeTransaction(fromAddress, toAddress string, amount decimal.Decimal) step {
	return func(ctx context.Context) *models.Response {
		first, err := m.Wallets.GetWallet(ctx, fromAddress)
		if err != nil {
			return fail(status.InvalidWallet)
		}
		second, err := m.Wallets.GetWallet(ctx, toAddress)
		if err != nil {
			return fail(status.InvalidWallet)
		}

		feePercent := m.Strategies.TransactionFee(first, second)

		if err = m.Wallets.Withdraw(ctx, fromAddress, amount); err != nil {
			// nothing has been mutated yet
			log.ExtractLogger(ctx).Warnw("transfer withdrawal failed", "error", err.Error())
			return fail(status.TransactionUnsuccessful)
		}

		deposit := amount.Mul(oneHundred.Sub(feePercent)).Div(oneHundred)
		if err = m.Wallets.Deposit(ctx, toAddress, deposit); err != nil {
			if rbErr := m.Wallets.Deposit(ctx, fromAddress, amount); rbErr != nil {
				err = multierr.Append(err, rbErr)
			}
			log.ExtractLogger(ctx).Errorw("transfer deposit failed", "error", err.Error())
			return fail(status.TransactionUnsuccessful)
		}

		return nil
	}
}

// saveTransaction records a completed transfer and notifies the statistics
// observer. The balances have already moved when this step runs, so store
// failures here are logged but cannot fail the transfer anymore.
func (m *Manager) saveTransaction(fromAddress, toAddress string, amount decimal.Decimal) step {
	return func(ctx context.Context) *models.Response {
		first, err := m.Wallets.GetWallet(ctx, fromAddress)
		if err != nil {
			return fail(status.InvalidWallet)
		}
		second, err := m.Wallets.GetWallet(ctx, toAddress)
		if err != nil {
			return fail(status.InvalidWallet)
		}

		feePercent := m.Strategies.TransactionFee(first, second)

		if err = m.Transactions.AddTransaction(ctx, &models.Transaction{
			FromAddress: fromAddress,
			ToAddress:   toAddress,
			Amount:      amount,
		}); err != nil {
			log.ExtractLogger(ctx).Errorw("failed to record a transaction", "error", err.Error())
		}

		if err = m.Observer.Update(ctx, feePercent, amount, m.Statistics); err != nil {
			log.ExtractLogger(ctx).Errorw("failed to update statistics", "error", err.Error())
		}

		return succeed(status.TransactionSuccessful, nil)
	}
}

// getTransactions lists every recorded transfer, optionally filtered to a wallet.
func (m *Manager) getTransactions() step {
	return func(ctx context.Context) *models.Response {
		transactions, err := m.Transactions.GetTransactions(ctx)
		if err != nil {
			log.ExtractLogger(ctx).Warnw("failed to fetch transactions", "error", err.Error())
			return fail(status.FetchTransactionsUnsuccessful)
		}

		return succeed(status.FetchTransactionsSuccessful, &models.GetTransactionsResponse{
			Transactions: transactions,
		})
	}
}

func (m *Manager) getWalletTransactions(address string) step {
	return func(ctx context.Context) *models.Response {
		transactions, err := m.Transactions.GetWalletTransactions(ctx, address)
		if err != nil {
			log.ExtractLogger(ctx).Warnw("failed to fetch wallet transactions", "error", err.Error())
			return fail(status.FetchTransactionsUnsuccessful)
		}

		return succeed(status.FetchTransactionsSuccessful, &models.GetTransactionsResponse{
			Transactions: transactions,
		})
	}
}

// getStatistics reports the platform-wide aggregate.
func (m *Manager) getStatistics() step {
	return func(ctx context.Context) *models.Response {
		statistics, err := m.Statistics.GetStatistics(ctx)
		if err != nil || statistics == nil {
			if err != nil {
				log.ExtractLogger(ctx).Warnw("failed to fetch statistics", "error", err.Error())
			}
			return fail(status.FetchStatisticsUnsuccessful)
		}

		return succeed(status.FetchStatisticsSuccessful, &models.GetStatisticsResponse{
			TotalTransactions: statistics.NumTransactions,
			PlatformProfit:    statistics.Profit,
		})
	}
}

// convertToUSD is best-effort: the BTC balance is authoritative and a dead
// rate endpoint must not fail the use case.
func (m *Manager) convertToUSD(ctx context.Context, amount decimal.Decimal) decimal.Decimal {
	usd, err := m.Strategies.BTCToUSD(ctx, amount)
	if err != nil {
		log.ExtractLogger(ctx).Warnw("btc to usd conversion failed", "error", err.Error())
		return decimal.Zero
	}
	return usd
}
