package models

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Statistics is a singleton aggregate over all completed transfers.
type Statistics struct {
	NumTransactions int64           `json:"total_transactions"`
	Profit          decimal.Decimal `json:"total_profit"`
}

type GetStatisticsRequest struct {
	APIKey string `json:"-"` // provided in a header, must be the admin key
}

func (r *GetStatisticsRequest) Validate() error {
	if r.APIKey == "" {
		return errors.New("empty api key provided")
	}
	return nil
}

type GetStatisticsResponse struct {
	TotalTransactions int64           `json:"total_transactions"`
	PlatformProfit    decimal.Decimal `json:"total_profit"`
}
