// Package scheduler runs the periodic sweeps. Tasks are plain callables
// so they stay testable without a ticking clock; the runner only owns
// the cadence, per-tick error isolation, and shutdown.
package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/condomino/internal/observability/telemetry"
	"github.com/seu-repo/condomino/internal/ports"
)

type task struct {
	name     string
	interval time.Duration
	run      func(context.Context) error
}

// Runner drives registered tasks on their intervals until the context
// is cancelled. A failing or panicking tick is logged and the task
// keeps its schedule; nothing retries within the same tick.
type Runner struct {
	tasks []task
	clock ports.Clock
	log   *zap.Logger
	wg    sync.WaitGroup
}

func NewRunner(clock ports.Clock, log *zap.Logger) *Runner {
	return &Runner{
		clock: clock,
		log:   log,
	}
}

func (r *Runner) Add(name string, interval time.Duration, run func(context.Context) error) {
	r.tasks = append(r.tasks, task{name: name, interval: interval, run: run})
}

// Start launches one goroutine per task and returns immediately.
func (r *Runner) Start(ctx context.Context) {
	for _, t := range r.tasks {
		r.wg.Add(1)
		go r.loop(ctx, t)
	}
}

// Wait blocks until every task loop has observed cancellation.
func (r *Runner) Wait() {
	r.wg.Wait()
}

func (r *Runner) loop(ctx context.Context, t task) {
	defer r.wg.Done()

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	r.log.Info("periodic task registered",
		zap.String("task", t.name),
		zap.Duration("interval", t.interval),
	)

	for {
		select {
		case <-ctx.Done():
			r.log.Info("periodic task stopped", zap.String("task", t.name))
			return
		case <-ticker.C:
			r.tick(ctx, t)
		}
	}
}

func (r *Runner) tick(ctx context.Context, t task) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("periodic task panicked",
				zap.String("task", t.name),
				zap.Any("panic", rec),
			)
		}
	}()

	start := r.clock.Now()
	if err := t.run(ctx); err != nil {
		r.log.Error("periodic task failed",
			zap.String("task", t.name),
			zap.Error(err),
		)
	}
	telemetry.SweepDuration.WithLabelValues(t.name).Observe(r.clock.Now().Sub(start).Seconds())
}
