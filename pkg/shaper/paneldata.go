package shaper

import (
	"flag"

	"github.com/grafana/paneldata/pkg/logsmodel"
	"github.com/grafana/paneldata/pkg/panelframe"
)

// Request describes the query request the frames answer: the dashboard
// timezone, the panel refresh interval and the sampling interval.
type Request struct {
	Timezone        string `json:"timezone,omitempty" yaml:"timezone,omitempty"`
	RefreshInterval string `json:"refreshInterval,omitempty" yaml:"refresh_interval,omitempty"`
	IntervalMs      int64  `json:"intervalMs,omitempty" yaml:"interval_ms,omitempty"`
}

// PanelData is the result bundle flowing through the shaping pipeline: the
// raw frames and request from the query layer, plus the groups and results
// the shaping stages derive. Each stage returns a new PanelData layering its
// own derived fields onto the input; the caller's slices are never mutated,
// though field-level Config and Display are filled in place.
type PanelData struct {
	Frames  []*panelframe.Frame
	Error   error
	Request Request

	GraphFrames []*panelframe.Frame
	TableFrames []*panelframe.Frame
	LogsFrames  []*panelframe.Frame
	TraceFrames []*panelframe.Frame

	GraphResult []*panelframe.Frame
	TableResult *panelframe.Frame
	LogsResult  *logsmodel.Model
}

// LogsOptions configures the logs shaping stage.
type LogsOptions struct {
	// AbsoluteRange bounds the visible window for log-volume bucketing.
	AbsoluteRange *logsmodel.TimeRange
	// RefreshInterval decides sort order; live streaming sorts newest
	// first. Defaults to the request's refresh interval when empty.
	RefreshInterval string
}

// Config holds shaping defaults.
type Config struct {
	// DefaultTimezone applies when the request does not carry one.
	DefaultTimezone string `yaml:"default_timezone"`
	// MaxLogRows caps the rows kept in the logs result, 0 means no cap.
	MaxLogRows int `yaml:"max_log_rows"`
}

// RegisterFlags registers shaper flags.
func (cfg *Config) RegisterFlags(f *flag.FlagSet) {
	f.StringVar(&cfg.DefaultTimezone, "shaper.default-timezone", "browser", "Timezone used when the request does not specify one. \"browser\" means the local zone.")
	f.IntVar(&cfg.MaxLogRows, "shaper.max-log-rows", 0, "Maximum number of log rows kept in the logs result. 0 disables the cap.")
}
