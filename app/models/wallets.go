package models

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Wallet belongs to exactly one user, referenced by the owner's api key.
type Wallet struct {
	Address    string          `json:"address"`
	APIKey     string          `json:"-"` // owner, never rendered
	BalanceBTC decimal.Decimal `json:"balance_btc"`
}

type CreateWalletRequest struct {
	APIKey string `json:"-"` // provided in a header
}

func (r *CreateWalletRequest) Validate() error {
	if r.APIKey == "" {
		return errors.New("empty api key provided")
	}
	return nil
}

type CreateWalletResponse struct {
	Address    string          `json:"address"`
	BalanceBTC decimal.Decimal `json:"balance_btc"`
	BalanceUSD decimal.Decimal `json:"balance_usd"`
}

type GetBalanceRequest struct {
	APIKey  string `json:"-"` // provided in a header
	Address string `json:"-"` // provided in the path
}

func (r *GetBalanceRequest) Validate() error {
	if r.APIKey == "" {
		return errors.New("empty api key provided")
	}
	if r.Address == "" {
		return errors.New("empty wallet address provided")
	}
	return nil
}

type GetBalanceResponse struct {
	Address    string          `json:"address"`
	BalanceBTC decimal.Decimal `json:"balance_btc"`
	BalanceUSD decimal.Decimal `json:"balance_usd"`
}
