// Package shaper classifies and reshapes query-result frames for a dashboard
// panel so that the graph, table, logs and trace visualizations each receive
// data in the shape they expect.
package shaper

import (
	"context"

	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/grafana/paneldata/pkg/display"
	"github.com/grafana/paneldata/pkg/transform"
)

// Shaper runs the shaping stages. One Shaper may be shared across panels;
// each call operates on its own bundle.
type Shaper struct {
	cfg     Config
	theme   display.Theme
	logger  log.Logger
	metrics *metrics

	joiner transform.Transformer
	merger transform.Transformer
}

// New builds a Shaper. logger may be nil.
func New(cfg Config, theme display.Theme, reg prometheus.Registerer, logger log.Logger) *Shaper {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Shaper{
		cfg:     cfg,
		theme:   theme,
		logger:  logger,
		metrics: newMetrics(reg),
		joiner:  transform.JoinByTime(),
		merger:  transform.Merge(),
	}
}

// Shape runs the full pipeline: classification, then graph, table and logs
// shaping. The table stage is the only one that suspends.
func (s *Shaper) Shape(ctx context.Context, data *PanelData, opts LogsOptions) (*PanelData, error) {
	out := s.Classify(data)
	out = s.ShapeGraph(out)
	out, err := s.ShapeTable(ctx, out)
	if err != nil {
		return nil, err
	}
	return s.ShapeLogs(out, opts), nil
}

// timezone resolves the request timezone, falling back to the configured
// default.
func (s *Shaper) timezone(req Request) string {
	if req.Timezone != "" {
		return req.Timezone
	}
	return s.cfg.DefaultTimezone
}
