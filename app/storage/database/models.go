package database

import (
	"github.com/shopspring/decimal"

	"github.com/LevanSamadashvili/BitcoinWallet/app/models"
)

type dbWallet struct {
	Address string          `db:"address"`
	APIKey  string          `db:"api_key"`
	Balance decimal.Decimal `db:"balance"`
}

func (w *dbWallet) toPublic() *models.Wallet {
	return &models.Wallet{
		Address:    w.Address,
		APIKey:     w.APIKey,
		BalanceBTC: w.Balance,
	}
}

type dbTransaction struct {
	ID          int64           `db:"id"`
	FromAddress string          `db:"from_address"`
	ToAddress   string          `db:"to_address"`
	Amount      decimal.Decimal `db:"amount"`
}

func (t *dbTransaction) toPublic() models.Transaction {
	return models.Transaction{
		FromAddress: t.FromAddress,
		ToAddress:   t.ToAddress,
		Amount:      t.Amount,
	}
}

type dbStatistics struct {
	NumTransactions int64           `db:"num_transactions"`
	Profit          decimal.Decimal `db:"profit"`
}

func (s *dbStatistics) toPublic() *models.Statistics {
	return &models.Statistics{
		NumTransactions: s.NumTransactions,
		Profit:          s.Profit,
	}
}
