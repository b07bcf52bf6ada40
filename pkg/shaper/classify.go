package shaper

import (
	"github.com/go-kit/log/level"

	"github.com/grafana/paneldata/pkg/panelframe"
)

// Classify partitions the bundle's frames into the graph, table, logs and
// trace groups and resets the derived results. A frame with a visualization
// hint goes strictly where the hint says; a frame without one is probed with
// the time-series test and lands in both the graph and table groups when it
// passes, or in the table group alone when it does not. An error on the
// bundle absorbs everything: all groups stay empty.
func (s *Shaper) Classify(data *PanelData) *PanelData {
	out := *data
	out.GraphFrames, out.TableFrames, out.LogsFrames, out.TraceFrames = nil, nil, nil, nil
	out.GraphResult, out.TableResult, out.LogsResult = nil, nil, nil
	if data.Error != nil {
		return &out
	}

	for _, fr := range data.Frames {
		switch fr.Meta.PreferredVisualization {
		case panelframe.VisTypeLogs:
			out.LogsFrames = append(out.LogsFrames, fr)
			s.metrics.classifiedFrames.WithLabelValues(string(panelframe.VisTypeLogs)).Inc()
		case panelframe.VisTypeGraph:
			out.GraphFrames = append(out.GraphFrames, fr)
			s.metrics.classifiedFrames.WithLabelValues(string(panelframe.VisTypeGraph)).Inc()
		case panelframe.VisTypeTrace:
			out.TraceFrames = append(out.TraceFrames, fr)
			s.metrics.classifiedFrames.WithLabelValues(string(panelframe.VisTypeTrace)).Inc()
		case panelframe.VisTypeTable:
			out.TableFrames = append(out.TableFrames, fr)
			s.metrics.classifiedFrames.WithLabelValues(string(panelframe.VisTypeTable)).Inc()
		default:
			// No usable hint: time series render as both graph and
			// table, everything else falls back to table.
			if fr.IsTimeSeries() {
				out.GraphFrames = append(out.GraphFrames, fr)
				out.TableFrames = append(out.TableFrames, fr)
				s.metrics.classifiedFrames.WithLabelValues(string(panelframe.VisTypeGraph)).Inc()
			} else {
				out.TableFrames = append(out.TableFrames, fr)
			}
			s.metrics.classifiedFrames.WithLabelValues(string(panelframe.VisTypeTable)).Inc()
			level.Debug(s.logger).Log("msg", "classified unhinted frame", "refId", fr.RefID, "timeseries", fr.IsTimeSeries())
		}
	}
	return &out
}
