package models

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Transaction is an immutable record of a completed transfer. The amount is
// the gross amount withdrawn from the source wallet, before the fee.
type Transaction struct {
	FromAddress string          `json:"from_address"`
	ToAddress   string          `json:"to_address"`
	Amount      decimal.Decimal `json:"amount"`
}

type MakeTransactionRequest struct {
	APIKey      string          `json:"-"` // provided in a header
	FromAddress string          `json:"from_address,omitempty"`
	ToAddress   string          `json:"to_address,omitempty"`
	Amount      decimal.Decimal `json:"amount,omitempty"`
}

func (r *MakeTransactionRequest) Validate() error {
	if r.APIKey == "" {
		return errors.New("empty api key provided")
	}

	if r.FromAddress == "" {
		return errors.New("empty source address provided")
	}

	if r.ToAddress == "" {
		return errors.New("empty destination address provided")
	}

	if !r.Amount.IsPositive() {
		return errors.New("transfer amount must be positive")
	}

	return nil
}

type GetTransactionsRequest struct {
	APIKey string `json:"-"` // provided in a header
}

func (r *GetTransactionsRequest) Validate() error {
	if r.APIKey == "" {
		return errors.New("empty api key provided")
	}
	return nil
}

type GetWalletTransactionsRequest struct {
	APIKey  string `json:"-"` // provided in a header
	Address string `json:"-"` // provided in the path
}

func (r *GetWalletTransactionsRequest) Validate() error {
	if r.APIKey == "" {
		return errors.New("empty api key provided")
	}
	if r.Address == "" {
		return errors.New("empty wallet address provided")
	}
	return nil
}

type GetTransactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
}
