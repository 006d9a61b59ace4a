package rate_test

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/rate"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/rate/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

var _ = Describe("Caches", func() {
	var (
		ctx    context.Context
		stored rate.Rate
	)

	BeforeEach(func() {
		ctx = context.Background()
		stored = rate.Rate{
			THBPerETH: decimal.RequireFromString("120000.5"),
			Source:    "coinbase",
			FetchedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		}
	})

	Describe("MemoryCache", func() {
		It("is empty until stored", func() {
			cache := rate.NewMemoryCache()

			_, ok, err := cache.Load(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())

			Expect(cache.Store(ctx, stored)).To(Succeed())
			got, ok, err := cache.Load(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(got).To(Equal(stored))
		})
	})

	Describe("RedisCache", func() {
		var (
			client *fake.RedisClient
			cache  *rate.RedisCache
		)

		BeforeEach(func() {
			client = new(fake.RedisClient)
			cache = rate.NewRedisCache(client, rate.DefaultRedisKey, time.Hour)
		})

		It("stores the rate as json under its key", func() {
			client.SetReturns(redis.NewStatusResult("OK", nil))

			Expect(cache.Store(ctx, stored)).To(Succeed())
			Expect(client.SetCallCount()).To(Equal(1))
			_, key, value, expiration := client.SetArgsForCall(0)
			Expect(key).To(Equal(rate.DefaultRedisKey))
			Expect(expiration).To(Equal(time.Hour))
			Expect(string(value.([]byte))).To(ContainSubstring(`"thbPerEth":"120000.5"`))
		})

		It("wraps set failures", func() {
			client.SetReturns(redis.NewStatusResult("", errors.New("conn refused")))
			Expect(cache.Store(ctx, stored)).To(MatchError(ContainSubstring("conn refused")))
		})

		It("loads a stored rate", func() {
			raw, err := json.Marshal(stored)
			Expect(err).NotTo(HaveOccurred())
			client.GetReturns(redis.NewStringResult(string(raw), nil))

			got, ok, err := cache.Load(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(got.THBPerETH.Equal(stored.THBPerETH)).To(BeTrue())
			Expect(got.FetchedAt.Equal(stored.FetchedAt)).To(BeTrue())
		})

		It("reports a missing key as not found", func() {
			client.GetReturns(redis.NewStringResult("", redis.Nil))

			_, ok, err := cache.Load(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
		})

		It("returns other errors", func() {
			client.GetReturns(redis.NewStringResult("", errors.New("timeout")))

			_, _, err := cache.Load(ctx)
			Expect(err).To(HaveOccurred())
		})
	})
})
