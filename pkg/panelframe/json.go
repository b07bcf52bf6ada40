package panelframe

import (
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type fieldJSON struct {
	Name   string        `json:"name"`
	Type   string        `json:"type"`
	Config *FieldConfig  `json:"config,omitempty"`
	Values []interface{} `json:"values"`
}

type frameJSON struct {
	RefID  string      `json:"refId,omitempty"`
	Meta   *Meta       `json:"meta,omitempty"`
	Fields []fieldJSON `json:"fields"`
}

// MarshalJSON implements json.Marshaler. Timestamps are written as
// RFC3339Nano strings.
func (fr *Frame) MarshalJSON() ([]byte, error) {
	out := frameJSON{RefID: fr.RefID, Fields: make([]fieldJSON, 0, len(fr.Fields))}
	if fr.Meta.PreferredVisualization != VisTypeNone || len(fr.Meta.Custom) > 0 {
		meta := fr.Meta
		out.Meta = &meta
	}
	for _, f := range fr.Fields {
		fj := fieldJSON{Name: f.Name, Type: f.Type.String(), Config: f.Config, Values: make([]interface{}, 0, f.Len())}
		for _, v := range f.Values {
			if t, ok := v.(time.Time); ok {
				fj.Values = append(fj.Values, t.Format(time.RFC3339Nano))
				continue
			}
			fj.Values = append(fj.Values, v)
		}
		out.Fields = append(out.Fields, fj)
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler. Values of time fields may be
// RFC3339(Nano) strings or epoch milliseconds.
func (fr *Frame) UnmarshalJSON(data []byte) error {
	var in frameJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	fr.RefID = in.RefID
	if in.Meta != nil {
		fr.Meta = *in.Meta
	}
	fr.Fields = make([]*Field, 0, len(in.Fields))
	for _, fj := range in.Fields {
		f := &Field{Name: fj.Name, Type: ParseFieldType(fj.Type), Config: fj.Config}
		for i, v := range fj.Values {
			if f.Type != FieldTypeTime {
				f.Append(v)
				continue
			}
			t, err := decodeTime(v)
			if err != nil {
				return errors.Wrapf(err, "field %q value %d", fj.Name, i)
			}
			f.Append(t)
		}
		fr.Fields = append(fr.Fields, f)
	}
	return nil
}

func decodeTime(v interface{}) (interface{}, error) {
	switch tv := v.(type) {
	case nil:
		return nil, nil
	case string:
		t, err := time.Parse(time.RFC3339Nano, tv)
		if err != nil {
			return nil, err
		}
		return t, nil
	case float64:
		return time.UnixMilli(int64(tv)).UTC(), nil
	default:
		return nil, errors.Errorf("unsupported timestamp value of type %T", v)
	}
}
