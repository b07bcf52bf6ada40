package shaper

import (
	"dario.cat/mergo"
	"github.com/go-kit/log/level"

	"github.com/grafana/paneldata/pkg/panelframe"
)

func boolPtr(b bool) *bool        { return &b }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

// defaultGraphConfig returns the default styling for a time-series value
// field. Built fresh per call so merged-in pointers are never shared.
func defaultGraphConfig() panelframe.FieldConfig {
	return panelframe.FieldConfig{
		Graph: &panelframe.GraphStyle{
			AxisLabel:     "",
			AxisPlacement: "left",
			AxisWidth:     intPtr(60),
			AxisGrid:      boolPtr(true),
			ShowBars:      boolPtr(false),
			FillAlpha:     floatPtr(0.1),
			ShowLine:      boolPtr(true),
			LineWidth:     intPtr(1),
			NullMode:      "null",
			ShowPoints:    boolPtr(false),
			PointRadius:   intPtr(4),
		},
	}
}

// ShapeGraph sets the graph result: a copy of the graph group where each
// frame's canonical value field carries the default graph styling. Settings
// the producer already made are kept; defaults only fill gaps.
func (s *Shaper) ShapeGraph(data *PanelData) *PanelData {
	out := *data
	out.GraphResult = nil
	if data.Error != nil || len(data.GraphFrames) == 0 {
		return &out
	}

	out.GraphResult = append([]*panelframe.Frame(nil), data.GraphFrames...)
	for _, fr := range out.GraphResult {
		f := fr.FieldByName(panelframe.ValueFieldName)
		if f == nil {
			continue
		}
		if f.Config == nil {
			f.Config = &panelframe.FieldConfig{}
		}
		defaults := defaultGraphConfig()
		if err := mergo.Merge(f.Config, &defaults); err != nil {
			level.Warn(s.logger).Log("msg", "failed to apply graph defaults", "refId", fr.RefID, "err", err)
		}
	}
	return &out
}
