package strategies

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestConverterUsesTheTickerRate(t *testing.T) {
	calls := 0
	ticker := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"USD": {"last": 40000.5, "symbol": "$"}}`))
	}))
	defer ticker.Close()

	converter := NewConverter(RatesConfig{TickerURL: ticker.URL})

	usd, err := converter.BTCToUSD(context.Background(), decimal.NewFromInt(2))
	require.NoError(t, err)
	require.True(t, usd.Equal(decimal.RequireFromString("80001")), "got %s", usd)

	// the second conversion is served from the cache
	_, err = converter.BTCToUSD(context.Background(), decimal.NewFromInt(1))
	require.NoError(t, err)
	require.Equal(t, 1, calls)
}

func TestConverterTickerFailure(t *testing.T) {
	ticker := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ticker.Close()

	converter := NewConverter(RatesConfig{TickerURL: ticker.URL})

	_, err := converter.BTCToUSD(context.Background(), decimal.NewFromInt(1))
	require.Error(t, err)
}

func TestConverterMissingUSDRate(t *testing.T) {
	ticker := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"EUR": {"last": 100}}`))
	}))
	defer ticker.Close()

	converter := NewConverter(RatesConfig{TickerURL: ticker.URL})

	_, err := converter.BTCToUSD(context.Background(), decimal.NewFromInt(1))
	require.Error(t, err)
}
