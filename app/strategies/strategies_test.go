package strategies

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/LevanSamadashvili/BitcoinWallet/app/models"
)

func TestKsuidGeneratorsProduceUniqueValues(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		key := KsuidAPIKeyGenerator()
		_, dup := seen[key]
		require.False(t, dup, "duplicate key %s", key)
		seen[key] = struct{}{}
	}
}

func TestRandomAddressGenerator(t *testing.T) {
	address := RandomAddressGenerator()

	require.Len(t, address, AddressLength)
	for _, r := range address {
		require.True(t, strings.ContainsRune(addressAlphabet, r))
	}
}

func TestRandomAPIKeyGenerator(t *testing.T) {
	key := RandomAPIKeyGenerator()

	require.Len(t, key, APIKeyLength)
	for _, r := range key {
		require.True(t, strings.ContainsRune(apiKeyAlphabet, r))
	}
}

func TestPercentageFee(t *testing.T) {
	fee := PercentageFee(DefaultFeePercent)

	alice1 := &models.Wallet{Address: "a1", APIKey: "alice"}
	alice2 := &models.Wallet{Address: "a2", APIKey: "alice"}
	bob := &models.Wallet{Address: "b1", APIKey: "bob"}

	require.True(t, fee(alice1, alice2).IsZero(), "same-user transfers are free")
	require.True(t, fee(alice1, bob).Equal(decimal.RequireFromString("1.5")))
}
