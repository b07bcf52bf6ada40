package shaper

import (
	"time"

	"github.com/go-kit/log/level"

	"github.com/grafana/paneldata/pkg/display"
	"github.com/grafana/paneldata/pkg/logsmodel"
)

// ShapeLogs sets the logs result: the logs group converted into the
// log-record model, sorted by the order the refresh interval implies (live
// streaming newest first, otherwise oldest first).
func (s *Shaper) ShapeLogs(data *PanelData, opts LogsOptions) *PanelData {
	out := *data
	out.LogsResult = nil
	if data.Error != nil || len(data.LogsFrames) == 0 {
		return &out
	}
	start := time.Now()

	refresh := opts.RefreshInterval
	if refresh == "" {
		refresh = data.Request.RefreshInterval
	}

	loc := display.ResolveTimezone(s.timezone(data.Request))
	model := logsmodel.Build(data.LogsFrames, data.Request.IntervalMs, loc, opts.AbsoluteRange)
	dir := logsmodel.DirectionFor(refresh)
	model = logsmodel.Sort(model, dir)
	if s.cfg.MaxLogRows > 0 && len(model.Rows) > s.cfg.MaxLogRows {
		model.Rows = model.Rows[:s.cfg.MaxLogRows]
	}

	level.Debug(s.logger).Log("msg", "built logs result", "rows", len(model.Rows), "direction", dir)
	out.LogsResult = model
	s.metrics.shapeDuration.WithLabelValues("logs").Observe(time.Since(start).Seconds())
	return &out
}
