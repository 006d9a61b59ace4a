package scheduler_test

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/core"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/rate"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/scheduler"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/scheduler/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Scheduler", func() {
	var (
		logger  *zap.SugaredLogger
		ctx     context.Context
		fakeErr error
	)

	BeforeEach(func() {
		logger = zap.NewNop().Sugar()
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("Add", func() {
		It("rejects an invalid spec", func() {
			s := scheduler.New(logger, time.Second)
			err := s.Add("broken", "every now and then", func(context.Context) error { return nil })
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("broken"))
		})

		It("runs the job on schedule until stopped", func() {
			s := scheduler.New(logger, time.Second)
			var (
				runs        atomic.Int32
				hasDeadline atomic.Bool
			)
			Expect(s.Add("tick", "@every 1s", func(ctx context.Context) error {
				_, ok := ctx.Deadline()
				hasDeadline.Store(ok)
				runs.Add(1)
				return fakeErr
			})).To(Succeed())

			s.Start()
			Eventually(runs.Load, 3*time.Second, 50*time.Millisecond).Should(BeNumerically(">=", 1))
			Expect(hasDeadline.Load()).To(BeTrue())

			stopCtx, cancel := context.WithTimeout(ctx, time.Second)
			defer cancel()
			Expect(s.Stop(stopCtx)).To(Succeed())
		})
	})

	Describe("RateWarmer", func() {
		It("refreshes the rate", func() {
			refresher := new(fake.RateRefresher)
			refresher.RefreshReturns(rate.Rate{Source: "coinbase"}, nil)

			Expect(scheduler.RateWarmer(refresher)(ctx)).To(Succeed())
			Expect(refresher.RefreshCallCount()).To(Equal(1))
		})

		It("wraps refresh errors", func() {
			refresher := new(fake.RateRefresher)
			refresher.RefreshReturns(rate.Rate{}, fakeErr)

			Expect(scheduler.RateWarmer(refresher)(ctx)).To(MatchError(fakeErr))
		})
	})

	Describe("MirrorSync", func() {
		It("syncs pending records", func() {
			syncer := new(fake.MirrorSyncer)
			syncer.SyncPendingReturns(core.SyncReport{Confirmed: 2}, nil)

			Expect(scheduler.MirrorSync(syncer)(ctx)).To(Succeed())
			Expect(syncer.SyncPendingCallCount()).To(Equal(1))
		})

		It("wraps sync errors", func() {
			syncer := new(fake.MirrorSyncer)
			syncer.SyncPendingReturns(core.SyncReport{}, fakeErr)

			Expect(scheduler.MirrorSync(syncer)(ctx)).To(MatchError(fakeErr))
		})
	})

	Describe("LimiterPrune", func() {
		It("prunes idle limiters", func() {
			pruner := new(fake.LimiterPruner)
			pruner.PruneReturns(3)

			Expect(scheduler.LimiterPrune(logger, pruner)(ctx)).To(Succeed())
			Expect(pruner.PruneCallCount()).To(Equal(1))
		})
	})
})
