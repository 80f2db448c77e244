package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/okian/mimic/internal/adapters/loader"
	"github.com/okian/mimic/internal/app"
	"github.com/okian/mimic/internal/config"
	"github.com/okian/mimic/internal/domain/align"
	"github.com/okian/mimic/internal/domain/compare"
	"github.com/okian/mimic/internal/domain/model"
	"github.com/okian/mimic/pkg/logger"
	"github.com/okian/mimic/pkg/metrics"
)

// Metrics server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

func main() {
	// Disable default Go metrics collection; the batch exposes only its
	// own comparison metrics.
	prometheus.Unregister(collectors.NewGoCollector())
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	metrics.Init()

	// Optionally expose metrics while the batch runs.
	var metricsSrv *http.Server
	if cfg.MetricsAddr != "" {
		metricsSrv = serveMetrics(ctx, cfg.MetricsAddr)
	}

	set1, set2, err := loadCollections(ctx, cfg)
	if err != nil {
		log.Error(ctx, "loading traces failed", logger.Error(err))
		return
	}

	interpolation := align.Linear
	if cfg.StepInterpolation {
		interpolation = align.StepBefore
	}

	svc := app.New(
		app.WithLogger(log),
		app.WithMode(compare.Mode(cfg.Mode)),
		app.WithThreshold(cfg.Threshold),
		app.WithWorkerCount(cfg.WorkerCount),
		app.WithBreakCollapsing(cfg.BreakThresholdMS),
		app.WithOutlierBound(cfg.OutlierBound),
		app.WithResampleFrequency(cfg.ResampleHz),
		app.WithInterpolation(interpolation),
		app.WithTrust(cfg.Trust...),
	)

	entries, err := svc.Run(ctx, set1, set2)
	if err != nil {
		log.Error(ctx, "comparison batch failed", logger.Error(err))
		return
	}

	for _, e := range entries {
		log.Info(ctx, "flagged pair",
			logger.Int("rank", e.Rank),
			logger.String("ownerA", e.OwnerA),
			logger.String("ownerB", e.OwnerB),
			logger.Float64("meanDistance", e.MeanDistance),
			logger.Float64("stdDistance", e.StdDistance),
		)
	}
	log.Info(ctx, "batch complete", logger.Int("flagged", len(entries)))

	if metricsSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			log.Error(ctx, "metrics server shutdown failed", logger.Error(err))
		}
	}
}

// loadCollections reads the configured trace directories. Double mode
// loads both; single mode only the first.
func loadCollections(ctx context.Context, cfg *config.Config) ([]*model.Trace, []*model.Trace, error) {
	set1, err := loader.LoadDir(ctx, cfg.TracesDir)
	if err != nil {
		return nil, nil, err
	}

	var set2 []*model.Trace
	if compare.Mode(cfg.Mode) == compare.ModeDouble {
		set2, err = loader.LoadDir(ctx, cfg.TracesDirB)
		if err != nil {
			return nil, nil, err
		}
	}

	return set1, set2, nil
}

// serveMetrics starts the Prometheus exposition server in the background.
func serveMetrics(ctx context.Context, addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		logger.Get().Info(ctx, "serving metrics", logger.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Get().Error(ctx, "metrics server failed", logger.Error(err))
		}
	}()

	return srv
}
