package rate

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Source . Source
type Source interface {
	Name() string
	FetchTHBPerETH(ctx context.Context) (decimal.Decimal, error)
}

//counterfeiter:generate -o fake -fake-name Cache . Cache
type Cache interface {
	Load(ctx context.Context) (Rate, bool, error)
	Store(ctx context.Context, r Rate) error
}

//counterfeiter:generate -o fake -fake-name RedisClient . RedisClient
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}
