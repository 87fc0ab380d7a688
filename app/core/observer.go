package core

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/LevanSamadashvili/BitcoinWallet/app/storage"
)

var oneHundred = decimal.NewFromInt(100)

// StatisticsObserver is notified once per completed transfer. It turns the
// fee percent into the platform's profit share and bumps the aggregate.
type StatisticsObserver struct{}

func (StatisticsObserver) Update(
	ctx context.Context,
	feePercent, amount decimal.Decimal,
	statistics storage.StatisticsStore,
) error {
	profit := amount.Mul(feePercent).Div(oneHundred)
	return statistics.AddStatistic(ctx, 1, profit)
}
