// Package app orchestrates a full comparison batch: pair enumeration,
// fan-out across the worker pool and ranking of the flagged outcomes.
package app

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	pairqueue "github.com/okian/mimic/internal/adapters/mq/queue"
	workerpool "github.com/okian/mimic/internal/adapters/mq/worker"
	"github.com/okian/mimic/internal/adapters/repository"
	"github.com/okian/mimic/internal/domain/align"
	"github.com/okian/mimic/internal/domain/compare"
	"github.com/okian/mimic/internal/domain/model"
	"github.com/okian/mimic/internal/domain/trust"
	"github.com/okian/mimic/pkg/logger"
)

const defaultThreshold = 18

// Service runs comparison batches over collections of traces.
type Service struct {
	mu sync.Mutex

	store repository.Store

	mode           compare.Mode
	threshold      float64
	workerCount    int
	breakThreshold float64
	outlierBound   float64
	resampleHz     float64
	interpolation  align.Interpolation
	trusted        *trust.Set

	logger logger.Logger
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		mode:         compare.ModeSingle,
		threshold:    defaultThreshold,
		workerCount:  runtime.NumCPU(),
		outlierBound: align.DefaultOutlierBound,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run compares the traces of set1 (against set2 in double mode), fanning
// the candidate pairs out across the worker pool, and returns the
// flagged outcomes ranked most similar first. The first comparison error
// aborts the whole batch.
func (s *Service) Run(ctx context.Context, set1, set2 []*model.Trace) ([]repository.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.logger == nil {
		s.logger = logger.Get().Named("app")
	}
	if s.store == nil {
		s.store = repository.NewMemStore()
	}

	engine := compare.NewEngine(s.threshold,
		compare.WithTrustSet(s.trusted),
		compare.WithAligner(align.NewAligner(
			align.WithInterpolation(s.interpolation),
			align.WithOutlierBound(s.outlierBound),
		)),
		compare.WithBreakCollapsing(s.breakThreshold),
		compare.WithResampling(s.resampleHz),
	)

	pairs, err := compare.Pairs(s.mode, set1, set2)
	if err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return nil, nil
	}

	batchID := uuid.NewString()
	s.logger.Info(ctx, "starting comparison batch",
		logger.String("batch", batchID),
		logger.String("mode", string(s.mode)),
		logger.Int("pairs", len(pairs)),
		logger.Int("workers", s.workerCount),
	)

	start := time.Now()
	q := pairqueue.NewInMemoryQueue(pairqueue.WithCapacity(len(pairs)))
	for _, p := range pairs {
		if !q.Enqueue(ctx, p) {
			_ = q.Close()
			return nil, fmt.Errorf("%w: batch %s", ErrQueueFull, batchID)
		}
	}
	if err := q.Close(); err != nil {
		return nil, err
	}

	pool := workerpool.NewPool(s.workerCount, q, engine, s.store)
	pool.Start(ctx)
	if err := pool.Wait(); err != nil {
		return nil, fmt.Errorf("comparison batch %s: %w", batchID, err)
	}

	entries, err := s.store.TopN(ctx, s.store.Count(ctx))
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "comparison batch finished",
		logger.String("batch", batchID),
		logger.Int("flagged", len(entries)),
		logger.Float64("elapsedMs", float64(time.Since(start).Microseconds())/1e3),
	)

	return entries, nil
}
