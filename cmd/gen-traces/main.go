package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/mimic/internal/tracegen"
	"github.com/okian/mimic/pkg/logger"
)

// Default generation parameters.
const (
	defaultCount    = 20
	defaultCopies   = 2
	defaultSamples  = 500
	defaultInterval = 16.0
	defaultJitter   = 1.5
)

func main() {
	var (
		count    = flag.Int("count", defaultCount, "Number of independent traces to generate")
		copies   = flag.Int("copies", defaultCopies, "Number of jittered copies of the first trace")
		samples  = flag.Int("samples", defaultSamples, "Events per trace")
		interval = flag.Float64("interval", defaultInterval, "Milliseconds between events")
		jitter   = flag.Float64("jitter", defaultJitter, "Max per-axis offset applied to copies")
		seed     = flag.Int64("seed", time.Now().UnixNano(), "Seed for the deterministic walk")
		outDir   = flag.String("out", "traces", "Output directory")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stats, err := tracegen.Generate(ctx, &tracegen.Config{
		Count:      *count,
		Copies:     *copies,
		Samples:    *samples,
		IntervalMS: *interval,
		Jitter:     *jitter,
		Seed:       *seed,
		OutDir:     *outDir,
	})
	if err != nil {
		logger.Get().Error(ctx, "generation failed", logger.Error(err))
		return
	}

	logger.Get().Info(ctx, "done",
		logger.Int("traces", stats.Traces),
		logger.Int("copies", stats.Copies),
		logger.String("dir", *outDir),
	)
}
