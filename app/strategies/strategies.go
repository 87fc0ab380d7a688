package strategies

import (
	"math/rand"

	"github.com/segmentio/ksuid"
	"github.com/shopspring/decimal"

	"github.com/LevanSamadashvili/BitcoinWallet/app/models"
)

const (
	AddressLength = 8
	APIKeyLength  = 24

	addressAlphabet = "abcdefghijklmnopqrstuvwxyz"
	apiKeyAlphabet  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// DefaultFeePercent is the platform fee, on the 0-100 scale, charged when
// the sender and the receiver belong to different users.
var DefaultFeePercent = decimal.RequireFromString("1.5")

// KsuidAPIKeyGenerator issues a globally unique api key.
func KsuidAPIKeyGenerator() string {
	return ksuid.New().String()
}

// KsuidAddressGenerator issues a globally unique wallet address.
func KsuidAddressGenerator() string {
	return ksuid.New().String()
}

// RandomAddressGenerator issues a short human-readable address. Uniqueness
// is probabilistic; the wallet store rejects collisions on insert.
func RandomAddressGenerator() string {
	return randomString(addressAlphabet, AddressLength)
}

func RandomAPIKeyGenerator() string {
	return randomString(apiKeyAlphabet, APIKeyLength)
}

func randomString(alphabet string, length int) string {
	result := make([]byte, length)
	for i := range result {
		result[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(result)
}

// PercentageFee builds a fee strategy charging the given percent of the
// transferred amount for cross-user transfers. Transfers between wallets of
// the same user are free.
func PercentageFee(percent decimal.Decimal) func(first, second *models.Wallet) decimal.Decimal {
	return func(first, second *models.Wallet) decimal.Decimal {
		if first.APIKey == second.APIKey {
			return decimal.Zero
		}
		return percent
	}
}
