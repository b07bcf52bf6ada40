// Package transform combines multiple result frames into one. Transforms run
// asynchronously and deliver exactly one Result on the returned channel
// before closing it; only the first emission is ever consumed by callers.
package transform

import (
	"context"

	"github.com/pkg/errors"

	"github.com/grafana/paneldata/pkg/panelframe"
)

// Result is a single transform emission.
type Result struct {
	Frames []*panelframe.Frame
	Err    error
}

// Transformer combines frames into a new set of frames.
type Transformer interface {
	Transform(ctx context.Context, frames []*panelframe.Frame) (<-chan Result, error)
}

// TransformerFunc adapts a synchronous combine function to Transformer,
// running it in a goroutine and emitting once.
type TransformerFunc func(frames []*panelframe.Frame) ([]*panelframe.Frame, error)

// Transform implements Transformer.
func (fn TransformerFunc) Transform(ctx context.Context, frames []*panelframe.Frame) (<-chan Result, error) {
	if len(frames) == 0 {
		return nil, errors.New("no frames to transform")
	}
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		combined, err := fn(frames)
		select {
		case out <- Result{Frames: combined, Err: err}:
		case <-ctx.Done():
		}
	}()
	return out, nil
}
