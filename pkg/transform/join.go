package transform

import (
	"fmt"
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/grafana/paneldata/pkg/panelframe"
)

// JoinByTime returns a transformer that aligns time-series frames on their
// shared time axis, producing one wide frame with a single time index. Rows
// missing from a frame at a given timestamp are filled with nil.
func JoinByTime() Transformer {
	return TransformerFunc(joinByTime)
}

func joinByTime(frames []*panelframe.Frame) ([]*panelframe.Frame, error) {
	if len(frames) == 1 {
		return frames, nil
	}

	// Collect the union of all timestamps, ascending and deduplicated.
	var stamps []time.Time
	for _, fr := range frames {
		tf := fr.TimeField()
		if tf == nil {
			return nil, errors.Errorf("frame %q has no time field to join on", fr.RefID)
		}
		for i := 0; i < tf.Len(); i++ {
			t, ok := tf.TimeAt(i)
			if !ok {
				return nil, errors.Errorf("frame %q has a non-timestamp value in its time field", fr.RefID)
			}
			stamps = append(stamps, t)
		}
	}
	sort.Slice(stamps, func(i, j int) bool { return stamps[i].Before(stamps[j]) })
	stamps = dedupeTimes(stamps)

	index := make(map[int64]int, len(stamps))
	timeField := panelframe.NewField(panelframe.TimeFieldName, panelframe.FieldTypeTime)
	for i, t := range stamps {
		index[t.UnixNano()] = i
		timeField.Append(t)
	}

	joined := panelframe.New("", timeField)
	joined.Meta.PreferredVisualization = panelframe.VisTypeTable

	seen := map[string]struct{}{panelframe.TimeFieldName: {}}
	for _, fr := range frames {
		tf := fr.TimeField()
		for _, f := range fr.Fields {
			if f.Type == panelframe.FieldTypeTime {
				continue
			}
			name := f.Name
			if _, taken := seen[name]; taken {
				name = fmt.Sprintf("%s #%s", f.Name, fr.RefID)
			}
			seen[name] = struct{}{}

			aligned := &panelframe.Field{
				Name:    name,
				Type:    f.Type,
				Config:  f.Config,
				Display: f.Display,
				Values:  make([]interface{}, len(stamps)),
			}
			for i := 0; i < f.Len(); i++ {
				t, ok := tf.TimeAt(i)
				if !ok {
					continue
				}
				aligned.Values[index[t.UnixNano()]] = f.At(i)
			}
			joined.Fields = append(joined.Fields, aligned)
		}
	}
	return []*panelframe.Frame{joined}, nil
}

func dedupeTimes(stamps []time.Time) []time.Time {
	out := stamps[:0]
	for i, t := range stamps {
		if i == 0 || !t.Equal(stamps[i-1]) {
			out = append(out, t)
		}
	}
	return out
}
