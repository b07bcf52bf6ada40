package shaper

import (
	"context"
	"sort"
	"time"

	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/grafana/paneldata/pkg/display"
	"github.com/grafana/paneldata/pkg/panelframe"
	"github.com/grafana/paneldata/pkg/transform"
)

// ShapeTable sets the table result: the table group sorted by refId and
// combined into a single frame. When every frame in the group is a time
// series they are joined on the shared time axis; otherwise they are merged
// column-wise. This is the only stage that suspends: it waits for the
// transform's single emission, then attaches a display formatter to each
// result field that does not already carry one.
func (s *Shaper) ShapeTable(ctx context.Context, data *PanelData) (*PanelData, error) {
	out := *data
	out.TableResult = nil
	if data.Error != nil || len(data.TableFrames) == 0 {
		return &out, nil
	}
	start := time.Now()

	frames := append([]*panelframe.Frame(nil), data.TableFrames...)
	sort.SliceStable(frames, func(i, j int) bool { return frames[i].RefID < frames[j].RefID })

	onlyTimeseries := true
	for _, fr := range frames {
		if !fr.IsTimeSeries() {
			onlyTimeseries = false
			break
		}
	}

	tr, name := s.merger, "merge"
	if onlyTimeseries {
		tr, name = s.joiner, "join by time"
	}
	level.Debug(s.logger).Log("msg", "combining table frames", "transform", name, "frames", len(frames))

	ch, err := tr.Transform(ctx, frames)
	if err != nil {
		s.metrics.transformErrors.Inc()
		return nil, errors.Wrapf(err, "starting %s transform", name)
	}

	var res transform.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		s.metrics.transformErrors.Inc()
		return nil, errors.Wrapf(res.Err, "%s transform", name)
	}
	if len(res.Frames) == 0 {
		return &out, nil
	}

	combined := res.Frames[0]
	loc := display.ResolveTimezone(s.timezone(data.Request))
	for _, f := range combined.Fields {
		if f.Display == nil {
			f.Display = display.NewProcessor(f, s.theme, loc)
		}
	}
	out.TableResult = combined
	s.metrics.shapeDuration.WithLabelValues("table").Observe(time.Since(start).Seconds())
	return &out, nil
}
