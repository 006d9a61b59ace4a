// Package scheduler runs the background jobs: exchange rate warming and mirror reconciliation.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Job is one unit of background work. It must return once ctx is done.
type Job func(ctx context.Context) error

type Scheduler struct {
	logs    *zap.SugaredLogger
	cron    *cron.Cron
	timeout time.Duration
}

// New builds a scheduler whose runs are bounded by timeout. Overlapping runs of the
// same job are skipped and panics are recovered.
func New(logger *zap.SugaredLogger, timeout time.Duration) *Scheduler {
	cronLogs := cronLogger{logs: logger}
	return &Scheduler{
		logs: logger,
		cron: cron.New(
			cron.WithLogger(cronLogs),
			cron.WithChain(cron.Recover(cronLogs), cron.SkipIfStillRunning(cronLogs)),
		),
		timeout: timeout,
	}
}

// Add registers job under a standard cron spec or a descriptor such as "@every 30s".
func (s *Scheduler) Add(name, spec string, job Job) error {
	_, err := s.cron.AddFunc(spec, func() {
		s.run(name, job)
	})
	if err != nil {
		return fmt.Errorf("schedule %s %q: %w", name, spec, err)
	}
	s.logs.Infow("job scheduled", "job", name, "spec", spec)
	return nil
}

func (s *Scheduler) run(name string, job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	if err := job(ctx); err != nil {
		s.logs.Errorw("job failed", "job", name, "error", err, "duration_ms", time.Since(start).Milliseconds())
		return
	}
	s.logs.Debugw("job finished", "job", name, "duration_ms", time.Since(start).Milliseconds())
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop prevents new runs and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func RateWarmer(refresher RateRefresher) Job {
	return func(ctx context.Context) error {
		if _, err := refresher.Refresh(ctx); err != nil {
			return fmt.Errorf("refresh rate: %w", err)
		}
		return nil
	}
}

func MirrorSync(syncer MirrorSyncer) Job {
	return func(ctx context.Context) error {
		if _, err := syncer.SyncPending(ctx); err != nil {
			return fmt.Errorf("sync pending: %w", err)
		}
		return nil
	}
}

func LimiterPrune(logger *zap.SugaredLogger, pruner LimiterPruner) Job {
	return func(_ context.Context) error {
		if n := pruner.Prune(); n > 0 {
			logger.Debugw("idle rate limiters pruned", "count", n)
		}
		return nil
	}
}

type cronLogger struct {
	logs *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logs.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logs.Errorw(msg, append(keysAndValues, "error", err)...)
}
