package scheduler

import (
	"context"

	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/core"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/rate"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RateRefresher . RateRefresher
type RateRefresher interface {
	Refresh(ctx context.Context) (rate.Rate, error)
}

//counterfeiter:generate -o fake -fake-name MirrorSyncer . MirrorSyncer
type MirrorSyncer interface {
	SyncPending(ctx context.Context) (core.SyncReport, error)
}

//counterfeiter:generate -o fake -fake-name LimiterPruner . LimiterPruner
type LimiterPruner interface {
	Prune() int
}
