package status

// Code is a transport-agnostic outcome of a use-case pipeline. The http
// layer maps codes to http statuses with its own lookup table.
type Code int

const (
	Default Code = iota
	UserCreatedSuccessfully
	UserRegistrationError
	WalletCreatedSuccessfully
	CantCreateMoreWallets
	WalletCreationError
	GotBalanceSuccessfully
	InvalidWallet
	NotYourWallet
	IncorrectAPIKey
	NotEnoughBalance
	TransactionSuccessful
	TransactionUnsuccessful
	FetchTransactionsSuccessful
	FetchTransactionsUnsuccessful
	FetchStatisticsSuccessful
	FetchStatisticsUnsuccessful
)

var names = map[Code]string{
	Default:                       "default",
	UserCreatedSuccessfully:       "user_created_successfully",
	UserRegistrationError:         "user_registration_error",
	WalletCreatedSuccessfully:     "wallet_created_successfully",
	CantCreateMoreWallets:         "cant_create_more_wallets",
	WalletCreationError:           "wallet_creation_error",
	GotBalanceSuccessfully:        "got_balance_successfully",
	InvalidWallet:                 "invalid_wallet",
	NotYourWallet:                 "not_your_wallet",
	IncorrectAPIKey:               "incorrect_api_key",
	NotEnoughBalance:              "not_enough_balance",
	TransactionSuccessful:         "transaction_successful",
	TransactionUnsuccessful:       "transaction_unsuccessful",
	FetchTransactionsSuccessful:   "fetch_transactions_successful",
	FetchTransactionsUnsuccessful: "fetch_transactions_unsuccessful",
	FetchStatisticsSuccessful:     "fetch_statistics_successful",
	FetchStatisticsUnsuccessful:   "fetch_statistics_unsuccessful",
}

func (c Code) String() string {
	if name, ok := names[c]; ok {
		return name
	}
	return "unknown"
}
