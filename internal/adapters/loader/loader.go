// Package loader materializes traces from JSON files on disk.
//
// The comparison core only consumes already-built traces; this adapter is
// the external loader that builds them. Binary replay decoding is out of
// scope and happens upstream of these files.
package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/okian/mimic/internal/domain/model"
	"github.com/okian/mimic/pkg/metrics"
)

// traceFile is the on-disk trace format: an owner label and the raw
// per-event deltas.
type traceFile struct {
	Owner  string      `json:"owner"`
	Events []traceItem `json:"events"`
}

type traceItem struct {
	DT float64 `json:"dt"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// Load reads a single trace file. An empty owner field falls back to the
// file name without its extension.
func Load(ctx context.Context, path string) (*model.Trace, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load canceled: %w", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading trace file %s: %w", path, err)
	}

	var tf traceFile
	if err := json.Unmarshal(raw, &tf); err != nil {
		return nil, fmt.Errorf("parsing trace file %s: %w", path, err)
	}

	owner := tf.Owner
	if owner == "" {
		base := filepath.Base(path)
		owner = strings.TrimSuffix(base, filepath.Ext(base))
	}

	events := make([]model.Event, len(tf.Events))
	for i, e := range tf.Events {
		events[i] = model.Event{DT: e.DT, X: e.X, Y: e.Y}
	}

	trace, err := model.NewTrace(owner, events)
	if err != nil {
		return nil, fmt.Errorf("building trace from %s: %w", path, err)
	}
	return trace, nil
}

// LoadDir reads every .json file in dir, in lexical order.
// Returns ErrNoTraces if the directory holds no trace files.
func LoadDir(ctx context.Context, dir string) ([]*model.Trace, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("listing trace files in %s: %w", dir, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoTraces, dir)
	}

	traces := make([]*model.Trace, 0, len(paths))
	for _, path := range paths {
		trace, err := Load(ctx, path)
		if err != nil {
			return nil, err
		}
		traces = append(traces, trace)
	}

	metrics.RecordTracesLoaded(len(traces))
	return traces, nil
}
