// Package worker fans the pairwise comparison loop out across goroutines.
//
// Every pair's comparison is a pure function of its two traces, so the
// workers need no coordination beyond the shared queue and the outcome
// recorder.
package worker

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/okian/mimic/internal/adapters/mq/queue"
	"github.com/okian/mimic/internal/domain/compare"
	"github.com/okian/mimic/pkg/logger"
	"github.com/okian/mimic/pkg/metrics"
)

// Comparer aligns and scores one candidate pair.
type Comparer interface {
	// Skip reports whether the pair carries no signal and must not be
	// compared at all.
	Skip(p compare.Pair) bool

	// ComparePair runs the comparison; the flag reports whether the pair
	// scored below the threshold.
	ComparePair(ctx context.Context, p compare.Pair) (compare.Outcome, bool, error)
}

// Recorder receives flagged outcomes.
type Recorder interface {
	Record(ctx context.Context, o compare.Outcome) error
}

// Queue defines how workers receive candidate pairs.
type Queue interface {
	Dequeue(ctx context.Context) <-chan queue.Pair
}

// Worker drains pairs off the queue and records flagged outcomes.
type Worker struct {
	queue    Queue
	comparer Comparer
	recorder Recorder
	name     string
	logger   logger.Logger
}

// NewWorker creates a worker with configuration options.
func NewWorker(q Queue, comparer Comparer, recorder Recorder, opts ...Option) *Worker {
	w := &Worker{
		queue:    q,
		comparer: comparer,
		recorder: recorder,
		name:     "worker",
		logger:   logger.Get().Named("worker"),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Run processes pairs until the queue drains or ctx is canceled. The
// first pair error stops this worker and is returned; per the batch
// policy there is no per-pair recovery.
func (w *Worker) Run(ctx context.Context) error {
	pairs := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case p, ok := <-pairs:
			if !ok {
				return nil
			}
			if err := w.process(ctx, p); err != nil {
				return err
			}
		}
	}
}

// process handles a single candidate pair.
func (w *Worker) process(ctx context.Context, p queue.Pair) error {
	if w.comparer.Skip(p) {
		metrics.RecordSkipped()
		return nil
	}

	start := time.Now()
	outcome, flagged, err := w.comparer.ComparePair(ctx, p)
	metrics.RecordComparison()
	metrics.RecordComparisonLatency(float64(time.Since(start).Microseconds()) / 1e3)
	if err != nil {
		w.logger.Error(ctx, "comparison failed",
			logger.String("ownerA", p.A.Owner()),
			logger.String("ownerB", p.B.Owner()),
			logger.Error(err),
		)
		return err
	}

	metrics.ObserveAlignedSamples(outcome.AlignedSamples)
	if !flagged {
		return nil
	}

	metrics.RecordFlagged()
	if err := w.recorder.Record(ctx, outcome); err != nil {
		return fmt.Errorf("recording outcome: %w", err)
	}
	return nil
}

// Pool manages multiple workers over one queue.
type Pool struct {
	workers []*Worker

	wg      sync.WaitGroup
	errOnce sync.Once
	err     error
	cancel  context.CancelFunc
}

// NewPool creates a pool of workerCount workers.
func NewPool(workerCount int, q Queue, comparer Comparer, recorder Recorder) *Pool {
	if workerCount < 1 {
		workerCount = runtime.NumCPU()
	}

	p := &Pool{workers: make([]*Worker, workerCount)}
	for i := range p.workers {
		p.workers[i] = NewWorker(q, comparer, recorder,
			WithName("worker-"+strconv.Itoa(i)),
		)
	}

	metrics.UpdateWorkerCount(workerCount)
	return p
}

// Start launches all workers. A failing worker cancels the others; the
// first error is reported by Wait.
func (p *Pool) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)

	for _, w := range p.workers {
		p.wg.Add(1)
		go func(w *Worker) {
			defer p.wg.Done()
			if err := w.Run(ctx); err != nil {
				p.errOnce.Do(func() {
					p.err = err
					p.cancel()
				})
			}
		}(w)
	}
}

// Wait blocks until every worker has finished and returns the first
// error encountered, if any.
func (p *Pool) Wait() error {
	p.wg.Wait()
	if p.cancel != nil {
		p.cancel()
	}
	return p.err
}
