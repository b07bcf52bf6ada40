package transform

import (
	"github.com/grafana/paneldata/pkg/panelframe"
)

// Merge returns a transformer that unions frames column-wise by field name
// and concatenates their rows, without any index alignment. Columns absent
// from a frame are padded with nil for that frame's rows. Schemas are not
// validated; combining genuinely dissimilar frames is the caller's problem.
func Merge() Transformer {
	return TransformerFunc(mergeFrames)
}

func mergeFrames(frames []*panelframe.Frame) ([]*panelframe.Frame, error) {
	if len(frames) == 1 {
		return frames, nil
	}

	merged := panelframe.New("")
	merged.Meta.PreferredVisualization = panelframe.VisTypeTable

	// Union of columns in order of first appearance. The first frame to
	// contribute a name decides its type and config.
	byName := make(map[string]*panelframe.Field)
	for _, fr := range frames {
		for _, f := range fr.Fields {
			if _, ok := byName[f.Name]; ok {
				continue
			}
			col := &panelframe.Field{Name: f.Name, Type: f.Type, Config: f.Config, Display: f.Display}
			byName[f.Name] = col
			merged.Fields = append(merged.Fields, col)
		}
	}

	for _, fr := range frames {
		rows := fr.Rows()
		for i := 0; i < rows; i++ {
			for _, col := range merged.Fields {
				src := fr.FieldByName(col.Name)
				if src == nil {
					col.Append(nil)
					continue
				}
				col.Append(src.At(i))
			}
		}
	}
	return []*panelframe.Frame{merged}, nil
}
