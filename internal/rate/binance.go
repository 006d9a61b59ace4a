package rate

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/adshao/go-binance/v2"
	"github.com/shopspring/decimal"
)

const ethUSDTSymbol = "ETHUSDT"

var ErrNoPrice error = errors.New("no price returned")

// binanceSource prices ETH in USDT on Binance and converts to THB with a USD FX quote.
type binanceSource struct {
	client     *binance.Client
	httpClient *http.Client
	fxURL      string
}

// NewBinanceSource builds the Binance+FX source. An empty baseURL keeps the
// client's default endpoint.
func NewBinanceSource(httpClient *http.Client, baseURL, fxURL string) Source {
	client := binance.NewClient("", "")
	client.HTTPClient = httpClient
	if baseURL != "" {
		client.BaseURL = baseURL
	}

	return &binanceSource{
		client:     client,
		httpClient: httpClient,
		fxURL:      fxURL,
	}
}

func (s *binanceSource) Name() string {
	return "binance"
}

func (s *binanceSource) FetchTHBPerETH(ctx context.Context) (decimal.Decimal, error) {
	prices, err := s.client.NewListPricesService().Symbol(ethUSDTSymbol).Do(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("binance list prices: %w", err)
	}
	if len(prices) == 0 {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrNoPrice, ethUSDTSymbol)
	}

	ethUSD, err := decimal.NewFromString(prices[0].Price)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse binance price: %w", err)
	}

	usdTHB, err := fetchDecimal(ctx, s.httpClient, s.fxURL, "rates.THB")
	if err != nil {
		return decimal.Zero, fmt.Errorf("fetch usd/thb: %w", err)
	}

	return ethUSD.Mul(usdTHB), nil
}
