package rate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

const (
	DefaultCoinbaseURL = "https://api.coinbase.com"
	DefaultBitkubURL   = "https://api.bitkub.com"
	DefaultFXURL       = "https://open.er-api.com/v6/latest/USD"

	maxBodySize = 1 << 20
)

var ErrFieldMissing error = errors.New("field missing from response")

// jsonSource reads one numeric field out of a JSON endpoint.
type jsonSource struct {
	name   string
	url    string
	path   string
	client *http.Client
}

// NewCoinbaseSource reads the ETH-THB spot price.
func NewCoinbaseSource(client *http.Client, baseURL string) Source {
	return &jsonSource{
		name:   "coinbase",
		url:    strings.TrimRight(baseURL, "/") + "/v2/prices/ETH-THB/spot",
		path:   "data.amount",
		client: client,
	}
}

// NewBitkubSource reads the last THB_ETH trade.
func NewBitkubSource(client *http.Client, baseURL string) Source {
	return &jsonSource{
		name:   "bitkub",
		url:    strings.TrimRight(baseURL, "/") + "/api/market/ticker?sym=THB_ETH",
		path:   "THB_ETH.last",
		client: client,
	}
}

func (s *jsonSource) Name() string {
	return s.name
}

func (s *jsonSource) FetchTHBPerETH(ctx context.Context) (decimal.Decimal, error) {
	return fetchDecimal(ctx, s.client, s.url, s.path)
}

func fetchDecimal(ctx context.Context, client *http.Client, url, path string) (decimal.Decimal, error) {
	body, err := getJSON(ctx, client, url)
	if err != nil {
		return decimal.Zero, err
	}

	field := gjson.GetBytes(body, path)
	if !field.Exists() {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrFieldMissing, path)
	}

	value, err := decimal.NewFromString(field.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse %s: %w", path, err)
	}
	return value, nil
}

func getJSON(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("get %s: invalid json", url)
	}
	return body, nil
}
