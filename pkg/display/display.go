// Package display builds per-field value formatters for table rendering.
package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/c2h5oh/datasize"
	"github.com/dustin/go-humanize"

	"github.com/grafana/paneldata/pkg/panelframe"
)

// Theme is the ambient visual theme. It is produced elsewhere and passed
// through opaquely; formatters only consult it for presentation hints.
type Theme struct {
	Name   string
	IsDark bool
}

// ResolveTimezone maps a dashboard timezone setting to a location. The
// default setting "browser" (or empty) means the local zone; unknown names
// also fall back to local rather than failing a render.
func ResolveTimezone(tz string) *time.Location {
	switch strings.ToLower(tz) {
	case "", "browser":
		return time.Local
	case "utc":
		return time.UTC
	default:
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return time.Local
		}
		return loc
	}
}

// NewProcessor builds a display formatter for the field from its own type
// and config, the theme and the dashboard timezone.
func NewProcessor(field *panelframe.Field, _ Theme, loc *time.Location) panelframe.DisplayFunc {
	if loc == nil {
		loc = time.Local
	}
	switch field.Type {
	case panelframe.FieldTypeTime:
		return timeProcessor(loc)
	case panelframe.FieldTypeNumber:
		return numberProcessor(field.Config)
	default:
		return stringProcessor()
	}
}

func timeProcessor(loc *time.Location) panelframe.DisplayFunc {
	return func(v interface{}) string {
		t, ok := v.(time.Time)
		if !ok {
			return sprint(v)
		}
		return t.In(loc).Format(time.RFC3339)
	}
}

func numberProcessor(cfg *panelframe.FieldConfig) panelframe.DisplayFunc {
	unit := ""
	decimals := 3
	if cfg != nil {
		unit = cfg.Unit
		if cfg.Decimals != nil {
			decimals = *cfg.Decimals
		}
	}
	return func(v interface{}) string {
		f, ok := toFloat(v)
		if !ok {
			return sprint(v)
		}
		switch unit {
		case "bytes":
			return datasize.ByteSize(f).HumanReadable()
		default:
			return humanize.CommafWithDigits(f, decimals)
		}
	}
}

func stringProcessor() panelframe.DisplayFunc {
	return sprint
}

func sprint(v interface{}) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
