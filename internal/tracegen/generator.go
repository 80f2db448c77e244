// Package tracegen produces synthetic cursor traces for exercising the
// comparison pipeline: independent random walks, plus jittered copies of
// the first walk that a detection run should flag.
package tracegen

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/okian/mimic/internal/domain/model"
	"github.com/okian/mimic/pkg/logger"
)

// Walk tuning defaults. The bounds mirror a typical playfield.
const (
	fieldWidth  = 512.0
	fieldHeight = 384.0
	walkStep    = 12.0

	defaultSamples    = 500
	defaultIntervalMS = 16.0
	defaultJitter     = 1.5
)

// Config controls a generation run.
type Config struct {
	Count      int     // independent traces to generate
	Copies     int     // jittered copies of the first trace
	Samples    int     // events per trace
	IntervalMS float64 // spacing between consecutive events
	Jitter     float64 // max per-axis offset applied to copies
	Seed       int64   // seed for the deterministic walk
	OutDir     string  // directory receiving one JSON file per trace
}

// Stats summarizes what a run produced.
type Stats struct {
	Traces int
	Copies int
	Files  []string
}

// traceFile matches the on-disk format the loader consumes.
type traceFile struct {
	Owner  string      `json:"owner"`
	Events []traceItem `json:"events"`
}

type traceItem struct {
	DT float64 `json:"dt"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// Generate writes cfg.Count random-walk traces plus cfg.Copies jittered
// copies of the first one into cfg.OutDir. The walks are deterministic
// for a given seed and shape; owners are fresh UUIDs on every run, with
// copies marked by a "-copy" suffix.
func Generate(ctx context.Context, cfg *Config) (*Stats, error) {
	if cfg.Count < 1 {
		return nil, ErrNothingToGenerate
	}
	if cfg.Samples < 1 {
		cfg.Samples = defaultSamples
	}
	if cfg.IntervalMS <= 0 {
		cfg.IntervalMS = defaultIntervalMS
	}
	if cfg.Jitter <= 0 {
		cfg.Jitter = defaultJitter
	}

	if err := os.MkdirAll(cfg.OutDir, 0o750); err != nil {
		return nil, fmt.Errorf("creating output dir %s: %w", cfg.OutDir, err)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	stats := &Stats{Files: make([]string, 0, cfg.Count+cfg.Copies)}

	var first []model.Event
	for i := 0; i < cfg.Count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("generation canceled: %w", err)
		}

		events := walk(rng, cfg.Samples, cfg.IntervalMS)
		if i == 0 {
			first = events
		}

		path, err := writeTrace(cfg.OutDir, uuid.NewString(), events)
		if err != nil {
			return nil, err
		}
		stats.Traces++
		stats.Files = append(stats.Files, path)
	}

	for i := 0; i < cfg.Copies; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("generation canceled: %w", err)
		}

		path, err := writeTrace(cfg.OutDir, uuid.NewString()+"-copy", jitter(rng, first, cfg.Jitter))
		if err != nil {
			return nil, err
		}
		stats.Copies++
		stats.Files = append(stats.Files, path)
	}

	logger.Get().Info(ctx, "generated traces",
		logger.Int("traces", stats.Traces),
		logger.Int("copies", stats.Copies),
		logger.String("dir", cfg.OutDir),
	)

	return stats, nil
}

// walk produces a bounded random walk starting at the field center.
func walk(rng *rand.Rand, samples int, interval float64) []model.Event {
	x, y := fieldWidth/2, fieldHeight/2

	events := make([]model.Event, samples)
	for i := range events {
		dt := interval
		if i == 0 {
			dt = 0
		}
		x = clamp(x+(rng.Float64()*2-1)*walkStep, 0, fieldWidth)
		y = clamp(y+(rng.Float64()*2-1)*walkStep, 0, fieldHeight)
		events[i] = model.Event{DT: dt, X: x, Y: y}
	}
	return events
}

// jitter perturbs each coordinate of src by at most amount, keeping the
// timing intact.
func jitter(rng *rand.Rand, src []model.Event, amount float64) []model.Event {
	events := make([]model.Event, len(src))
	for i, e := range src {
		events[i] = model.Event{
			DT: e.DT,
			X:  clamp(e.X+(rng.Float64()*2-1)*amount, 0, fieldWidth),
			Y:  clamp(e.Y+(rng.Float64()*2-1)*amount, 0, fieldHeight),
		}
	}
	return events
}

func writeTrace(dir, owner string, events []model.Event) (string, error) {
	items := make([]traceItem, len(events))
	for i, e := range events {
		items[i] = traceItem{DT: e.DT, X: e.X, Y: e.Y}
	}

	raw, err := json.Marshal(traceFile{Owner: owner, Events: items})
	if err != nil {
		return "", fmt.Errorf("encoding trace %s: %w", owner, err)
	}

	path := filepath.Join(dir, owner+".json")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return "", fmt.Errorf("writing trace file %s: %w", path, err)
	}
	return path, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
