package config_test

import (
	"os"
	"path/filepath"
	"time"

	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/config"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/rate"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap/zapcore"
)

const contract = "0x5FbDB2315678afecb367f032d93F642f64180aa3"

var keys = []string{
	"API_PORT", "ETH_NODE_URL", "DB_CONNECTION_URL", "JWT_SECRET", "ADMIN_PRIVATE_KEY",
	"INSURANCE_CONTRACT_ADDRESS", "VAULT_ADDRESS", "CHAIN_ID", "REDIS_URL", "LOG_FILE", "LOG_LEVEL",
	"RATE_CACHE_TTL", "RATE_FALLBACK_THB", "RATE_REFRESH_SCHEDULE", "SYNC_SCHEDULE",
	"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "COINBASE_URL", "BITKUB_URL", "BINANCE_URL", "FX_URL",
}

func setenv(key, value string) {
	Expect(os.Setenv(key, value)).To(Succeed())
}

var _ = Describe("NewApp", func() {
	var (
		app config.App
		err error
	)

	BeforeEach(func() {
		for _, key := range keys {
			if old, ok := os.LookupEnv(key); ok {
				DeferCleanup(os.Setenv, key, old)
			} else {
				DeferCleanup(os.Unsetenv, key)
			}
			Expect(os.Unsetenv(key)).To(Succeed())
		}

		setenv("API_PORT", "8080")
		setenv("ETH_NODE_URL", "http://127.0.0.1:8545")
		setenv("DB_CONNECTION_URL", "postgres://insurance@localhost/insurance")
		setenv("JWT_SECRET", "secret")
		setenv("ADMIN_PRIVATE_KEY", "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80")
		setenv("INSURANCE_CONTRACT_ADDRESS", contract)
	})

	JustBeforeEach(func() {
		app, err = config.NewApp()
	})

	It("applies defaults to optional settings", func() {
		Expect(err).NotTo(HaveOccurred())
		Expect(app.Port).To(Equal("8080"))
		Expect(app.ContractAddress).To(Equal(common.HexToAddress(contract)))
		Expect(app.VaultAddress).To(Equal(app.ContractAddress))
		Expect(app.ChainID).To(BeZero())
		Expect(app.LogLevel).To(Equal(zapcore.InfoLevel))
		Expect(app.RateCacheTTL).To(Equal(5 * time.Minute))
		Expect(app.RateFallbackTHB.Equal(decimal.NewFromInt(100_000))).To(BeTrue())
		Expect(app.RateRefreshSchedule).To(Equal("@every 1m"))
		Expect(app.SyncSchedule).To(Equal("@every 30s"))
		Expect(app.RateLimitRPS).To(Equal(10.0))
		Expect(app.RateLimitBurst).To(Equal(20))
		Expect(app.CoinbaseURL).To(Equal(rate.DefaultCoinbaseURL))
		Expect(app.BinanceURL).To(BeEmpty())
	})

	When("optional settings are given", func() {
		BeforeEach(func() {
			setenv("VAULT_ADDRESS", "0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
			setenv("CHAIN_ID", "11155111")
			setenv("LOG_LEVEL", "debug")
			setenv("RATE_CACHE_TTL", "90s")
			setenv("RATE_FALLBACK_THB", "95000.50")
			setenv("RATE_LIMIT_RPS", "2.5")
			setenv("REDIS_URL", "redis://localhost:6379/0")
		})

		It("parses them", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.VaultAddress).To(Equal(common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")))
			Expect(app.ChainID).To(Equal(int64(11155111)))
			Expect(app.LogLevel).To(Equal(zapcore.DebugLevel))
			Expect(app.RateCacheTTL).To(Equal(90 * time.Second))
			Expect(app.RateFallbackTHB.String()).To(Equal("95000.5"))
			Expect(app.RateLimitRPS).To(Equal(2.5))
			Expect(app.RedisURL).To(Equal("redis://localhost:6379/0"))
		})
	})

	When("a required variable is missing", func() {
		BeforeEach(func() {
			Expect(os.Unsetenv("JWT_SECRET")).To(Succeed())
		})

		It("names it", func() {
			Expect(err).To(MatchError(config.ErrEnvVarNotFound))
			Expect(err.Error()).To(ContainSubstring("JWT_SECRET"))
		})
	})

	When("the contract address is malformed", func() {
		BeforeEach(func() {
			setenv("INSURANCE_CONTRACT_ADDRESS", "0x1234")
		})

		It("fails", func() {
			Expect(err).To(MatchError(config.ErrInvalidValue))
		})
	})

	When("a duration cannot be parsed", func() {
		BeforeEach(func() {
			setenv("RATE_CACHE_TTL", "soon")
		})

		It("fails", func() {
			Expect(err).To(MatchError(config.ErrInvalidValue))
		})
	})

	When("the fallback rate is not positive", func() {
		BeforeEach(func() {
			setenv("RATE_FALLBACK_THB", "0")
		})

		It("fails", func() {
			Expect(err).To(MatchError(config.ErrInvalidValue))
		})
	})
})

var _ = Describe("LoadDotEnv", func() {
	BeforeEach(func() {
		DeferCleanup(os.Unsetenv, "DOTENV_ONLY")
		DeferCleanup(os.Unsetenv, "DOTENV_SET")
	})

	It("loads missing variables and keeps existing ones", func() {
		path := filepath.Join(GinkgoT().TempDir(), ".env")
		Expect(os.WriteFile(path, []byte("DOTENV_ONLY=from-file\nDOTENV_SET=from-file\n"), 0o600)).To(Succeed())
		setenv("DOTENV_SET", "from-env")

		Expect(config.LoadDotEnv(path)).To(Succeed())
		Expect(os.Getenv("DOTENV_ONLY")).To(Equal("from-file"))
		Expect(os.Getenv("DOTENV_SET")).To(Equal("from-env"))
	})

	It("ignores files that do not exist", func() {
		Expect(config.LoadDotEnv(filepath.Join(GinkgoT().TempDir(), "missing.env"))).To(Succeed())
	})
})
