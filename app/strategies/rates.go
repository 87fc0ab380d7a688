package strategies

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	cache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	defaultTickerURL = "https://blockchain.info/ticker"
	defaultCacheTTL  = 5 * time.Minute

	rateCacheKey = "btc_usd"
)

type RatesConfig struct {
	TickerURL string        `mapstructure:"tickerUrl"`
	CacheTTL  time.Duration `mapstructure:"cacheTtl"`
}

func (c *RatesConfig) applyDefaults() {
	if c.TickerURL == "" {
		c.TickerURL = defaultTickerURL
	}
	if c.CacheTTL == 0 {
		c.CacheTTL = defaultCacheTTL
	}
}

// Converter resolves the BTC to USD exchange rate against a public ticker.
// The rate is cached, so at most one outbound call is made per TTL window.
type Converter struct {
	Config     RatesConfig
	HTTPClient *http.Client

	rates *cache.Cache
}

func NewConverter(cfg RatesConfig) *Converter {
	cfg.applyDefaults()
	return &Converter{
		Config: cfg,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		rates: cache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
	}
}

// BTCToUSD converts an amount of bitcoins to its dollar value at the
// current exchange rate.
func (c *Converter) BTCToUSD(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	rate, err := c.rate(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(rate), nil
}

func (c *Converter) rate(ctx context.Context) (decimal.Decimal, error) {
	if cached, ok := c.rates.Get(rateCacheKey); ok {
		return cached.(decimal.Decimal), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Config.TickerURL, nil)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to build a ticker request")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to fetch the ticker")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, errors.Errorf("ticker responded with status %d", resp.StatusCode)
	}

	var ticker map[string]struct {
		Last float64 `json:"last"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&ticker); err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to decode the ticker response")
	}

	usd, ok := ticker["USD"]
	if !ok {
		return decimal.Zero, errors.New("ticker response has no USD rate")
	}

	rate := decimal.NewFromFloat(usd.Last)
	c.rates.Set(rateCacheKey, rate, cache.DefaultExpiration)
	return rate, nil
}
