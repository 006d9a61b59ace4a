// Package rate resolves the ETH→THB exchange rate used to price policies on-chain.
package rate

import (
	"context"
	"fmt"
	"time"

	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/metrics"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var TimeNow = time.Now

const (
	refreshKey     = "eth_thb"
	refreshTimeout = 15 * time.Second
)

// Service walks its sources in order and caches the first good answer for ttl.
// When every source fails it serves the last cached rate, then the fixed fallback.
type Service struct {
	logs     *zap.SugaredLogger
	sources  []Source
	cache    Cache
	ttl      time.Duration
	fallback decimal.Decimal
	group    singleflight.Group
}

func NewService(logger *zap.SugaredLogger, cache Cache, ttl time.Duration, fallback decimal.Decimal, sources ...Source) *Service {
	return &Service{
		logs:     logger,
		sources:  sources,
		cache:    cache,
		ttl:      ttl,
		fallback: fallback,
	}
}

// Current returns a cached rate younger than ttl, refreshing it otherwise.
func (s *Service) Current(ctx context.Context) (Rate, error) {
	cached, ok := s.load(ctx)
	if ok && !cached.Stale && TimeNow().Sub(cached.FetchedAt) < s.ttl {
		metrics.RecordRateFetch(SourceCache, "hit")
		return cached, nil
	}

	return s.Refresh(ctx)
}

// Refresh queries the sources regardless of the cache age. Concurrent callers share
// one refresh, which outlives any single caller's ctx.
func (s *Service) Refresh(ctx context.Context) (Rate, error) {
	if err := ctx.Err(); err != nil {
		return Rate{}, fmt.Errorf("refresh rate: %w", err)
	}

	ch := s.group.DoChan(refreshKey, func() (interface{}, error) {
		refreshCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), refreshTimeout)
		defer cancel()
		return s.refresh(refreshCtx)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return Rate{}, res.Err
		}
		return res.Val.(Rate), nil
	case <-ctx.Done():
		return Rate{}, fmt.Errorf("refresh rate: %w", ctx.Err())
	}
}

func (s *Service) refresh(ctx context.Context) (Rate, error) {
	for _, src := range s.sources {
		if err := ctx.Err(); err != nil {
			return Rate{}, fmt.Errorf("refresh rate: %w", err)
		}

		value, err := src.FetchTHBPerETH(ctx)
		if err == nil && !value.IsPositive() {
			err = fmt.Errorf("non-positive rate %s", value)
		}
		if err != nil {
			metrics.RecordRateFetch(src.Name(), "error")
			s.logs.Warnw("rate source failed", "source", src.Name(), "error", err)
			continue
		}

		metrics.RecordRateFetch(src.Name(), "success")
		r := Rate{
			THBPerETH: value,
			Source:    src.Name(),
			FetchedAt: TimeNow(),
		}
		if err := s.cache.Store(ctx, r); err != nil {
			s.logs.Errorw("failed to store rate in cache", "error", err)
		}
		s.logs.Infow("exchange rate refreshed", "source", r.Source, "thb_per_eth", r.THBPerETH.String())
		return r, nil
	}

	if cached, ok := s.load(ctx); ok {
		metrics.RecordRateFetch(SourceCache, "stale")
		s.logs.Warnw("all rate sources failed, serving stale rate", "fetched_at", cached.FetchedAt)
		cached.Source = SourceCache
		cached.Stale = true
		return cached, nil
	}

	metrics.RecordRateFetch(SourceFixed, "fallback")
	s.logs.Errorw("all rate sources failed and cache is empty, using fixed rate", "thb_per_eth", s.fallback.String())
	return Rate{
		THBPerETH: s.fallback,
		Source:    SourceFixed,
		FetchedAt: TimeNow(),
		Stale:     true,
	}, nil
}

func (s *Service) load(ctx context.Context) (Rate, bool) {
	cached, ok, err := s.cache.Load(ctx)
	if err != nil {
		s.logs.Errorw("failed to load rate from cache", "error", err)
		return Rate{}, false
	}
	return cached, ok
}
