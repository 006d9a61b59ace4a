package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/rate"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap/zapcore"
)

var (
	errEnvVarNotFound error = errors.New("environment variable not found")
	errInvalidValue   error = errors.New("invalid environment variable")
)

const (
	apiPortEnvKey         = "API_PORT"
	ethNodeEnvKey         = "ETH_NODE_URL"
	dbConnEnvKey          = "DB_CONNECTION_URL"
	jwtSecretEnvKey       = "JWT_SECRET"
	adminKeyEnvKey        = "ADMIN_PRIVATE_KEY"
	contractEnvKey        = "INSURANCE_CONTRACT_ADDRESS"
	vaultEnvKey           = "VAULT_ADDRESS"
	chainIDEnvKey         = "CHAIN_ID"
	redisURLEnvKey        = "REDIS_URL"
	logFileEnvKey         = "LOG_FILE"
	logLevelEnvKey        = "LOG_LEVEL"
	rateTTLEnvKey         = "RATE_CACHE_TTL"
	rateFallbackEnvKey    = "RATE_FALLBACK_THB"
	rateScheduleEnvKey    = "RATE_REFRESH_SCHEDULE"
	syncScheduleEnvKey    = "SYNC_SCHEDULE"
	rateLimitRPSEnvKey    = "RATE_LIMIT_RPS"
	rateLimitBurstEnvKey  = "RATE_LIMIT_BURST"
	coinbaseURLEnvKey     = "COINBASE_URL"
	bitkubURLEnvKey       = "BITKUB_URL"
	binanceURLEnvKey      = "BINANCE_URL"
	fxURLEnvKey           = "FX_URL"
	defaultRateTTL        = 5 * time.Minute
	defaultRateFallback   = "100000"
	defaultRateSchedule   = "@every 1m"
	defaultSyncSchedule   = "@every 30s"
	defaultRateLimitRPS   = 10
	defaultRateLimitBurst = 20
)

type App struct {
	Port            string
	NodeURL         string
	DBConnectionURL string
	JWTSecret       string

	AdminPrivateKey string
	ContractAddress common.Address
	// VaultAddress defaults to the contract address when unset.
	VaultAddress common.Address
	// ChainID zero means "ask the node".
	ChainID int64

	RedisURL string
	LogFile  string
	LogLevel zapcore.Level

	RateCacheTTL        time.Duration
	RateFallbackTHB     decimal.Decimal
	RateRefreshSchedule string
	SyncSchedule        string
	RateLimitRPS        float64
	RateLimitBurst      int

	CoinbaseURL string
	BitkubURL   string
	BinanceURL  string
	FXURL       string
}

// LoadDotEnv reads .env files into the environment without overriding variables already set.
// Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	return nil
}

func NewApp() (App, error) {
	var (
		app App
		err error
	)

	for key, dst := range map[string]*string{
		apiPortEnvKey:   &app.Port,
		ethNodeEnvKey:   &app.NodeURL,
		dbConnEnvKey:    &app.DBConnectionURL,
		jwtSecretEnvKey: &app.JWTSecret,
		adminKeyEnvKey:  &app.AdminPrivateKey,
	} {
		if *dst, err = required(key); err != nil {
			return App{}, err
		}
	}

	contract, err := required(contractEnvKey)
	if err != nil {
		return App{}, err
	}
	if app.ContractAddress, err = parseAddress(contractEnvKey, contract); err != nil {
		return App{}, err
	}

	app.VaultAddress = app.ContractAddress
	if vault, ok := os.LookupEnv(vaultEnvKey); ok && vault != "" {
		if app.VaultAddress, err = parseAddress(vaultEnvKey, vault); err != nil {
			return App{}, err
		}
	}

	if app.ChainID, err = parseInt(chainIDEnvKey, 0); err != nil {
		return App{}, err
	}

	app.RedisURL = optional(redisURLEnvKey, "")
	app.LogFile = optional(logFileEnvKey, "")
	if app.LogLevel, err = zapcore.ParseLevel(optional(logLevelEnvKey, "info")); err != nil {
		return App{}, fmt.Errorf("%w: %s: %w", errInvalidValue, logLevelEnvKey, err)
	}

	if app.RateCacheTTL, err = parseDuration(rateTTLEnvKey, defaultRateTTL); err != nil {
		return App{}, err
	}
	fallback := optional(rateFallbackEnvKey, defaultRateFallback)
	if app.RateFallbackTHB, err = decimal.NewFromString(fallback); err != nil || !app.RateFallbackTHB.IsPositive() {
		return App{}, fmt.Errorf("%w: %s=%q", errInvalidValue, rateFallbackEnvKey, fallback)
	}
	app.RateRefreshSchedule = optional(rateScheduleEnvKey, defaultRateSchedule)
	app.SyncSchedule = optional(syncScheduleEnvKey, defaultSyncSchedule)

	if app.RateLimitRPS, err = parseFloat(rateLimitRPSEnvKey, defaultRateLimitRPS); err != nil {
		return App{}, err
	}
	burst, err := parseInt(rateLimitBurstEnvKey, defaultRateLimitBurst)
	if err != nil {
		return App{}, err
	}
	app.RateLimitBurst = int(burst)

	app.CoinbaseURL = optional(coinbaseURLEnvKey, rate.DefaultCoinbaseURL)
	app.BitkubURL = optional(bitkubURLEnvKey, rate.DefaultBitkubURL)
	app.BinanceURL = optional(binanceURLEnvKey, "")
	app.FXURL = optional(fxURLEnvKey, rate.DefaultFXURL)

	return app, nil
}

func required(key string) (string, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return "", fmt.Errorf("%w: %s", errEnvVarNotFound, key)
	}
	return value, nil
}

func optional(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	return value
}

func parseAddress(key, value string) (common.Address, error) {
	if !common.IsHexAddress(value) {
		return common.Address{}, fmt.Errorf("%w: %s=%q is not an address", errInvalidValue, key, value)
	}
	return common.HexToAddress(value), nil
}

func parseInt(key string, fallback int64) (int64, error) {
	value := optional(key, "")
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s=%q", errInvalidValue, key, value)
	}
	return n, nil
}

func parseFloat(key string, fallback float64) (float64, error) {
	value := optional(key, "")
	if value == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", errInvalidValue, key, value)
	}
	return f, nil
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := optional(key, "")
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", errInvalidValue, key, value)
	}
	return d, nil
}
