package core

import (
	"context"

	"github.com/LevanSamadashvili/BitcoinWallet/app/models"
)

type Service interface {
	RegisterUser(ctx context.Context, req *models.RegisterUserRequest) models.Response
	CreateWallet(ctx context.Context, req *models.CreateWalletRequest) models.Response
	GetBalance(ctx context.Context, req *models.GetBalanceRequest) models.Response
	MakeTransaction(ctx context.Context, req *models.MakeTransactionRequest) models.Response
	GetTransactions(ctx context.Context, req *models.GetTransactionsRequest) models.Response
	GetWalletTransactions(ctx context.Context, req *models.GetWalletTransactionsRequest) models.Response
	GetStatistics(ctx context.Context, req *models.GetStatisticsRequest) models.Response
}
