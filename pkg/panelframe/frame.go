package panelframe

import (
	"time"
)

// Canonical field names used by time-series producers. Shapers look these up
// by name, so producers that want default graph styling must use them.
const (
	TimeFieldName  = "Time"
	ValueFieldName = "Value"
)

// FieldType is the logical type of a field's values.
type FieldType int

const (
	FieldTypeOther FieldType = iota
	FieldTypeTime
	FieldTypeNumber
	FieldTypeString
)

func (t FieldType) String() string {
	switch t {
	case FieldTypeTime:
		return "time"
	case FieldTypeNumber:
		return "number"
	case FieldTypeString:
		return "string"
	default:
		return "other"
	}
}

// ParseFieldType maps the wire name of a field type back to its FieldType.
// Unrecognized names fall back to FieldTypeOther.
func ParseFieldType(s string) FieldType {
	switch s {
	case "time":
		return FieldTypeTime
	case "number":
		return FieldTypeNumber
	case "string":
		return FieldTypeString
	default:
		return FieldTypeOther
	}
}

// VisType is the visualization a frame prefers to be rendered with.
type VisType string

const (
	VisTypeNone  VisType = ""
	VisTypeGraph VisType = "graph"
	VisTypeTable VisType = "table"
	VisTypeLogs  VisType = "logs"
	VisTypeTrace VisType = "trace"
)

// ParseVisType maps an upstream hint to a VisType, treating anything
// unrecognized as no hint at all.
func ParseVisType(s string) VisType {
	switch VisType(s) {
	case VisTypeGraph, VisTypeTable, VisTypeLogs, VisTypeTrace:
		return VisType(s)
	default:
		return VisTypeNone
	}
}

// Meta carries frame-level metadata supplied by the query layer.
type Meta struct {
	// PreferredVisualization steers classification; when unset the
	// structural time-series test decides.
	PreferredVisualization VisType           `json:"preferredVisualisationType,omitempty"`
	Custom                 map[string]string `json:"custom,omitempty"`
}

// DisplayFunc renders a single value for presentation.
type DisplayFunc func(v interface{}) string

// Field is one typed column of a frame. Config and Display are mutable and
// may be filled in by shaping stages after the frame is built.
type Field struct {
	Name    string
	Type    FieldType
	Config  *FieldConfig
	Display DisplayFunc
	Values  []interface{}
}

// NewField builds a field with the given values.
func NewField(name string, t FieldType, values ...interface{}) *Field {
	return &Field{Name: name, Type: t, Values: values}
}

// Append adds a value to the field.
func (f *Field) Append(v interface{}) {
	f.Values = append(f.Values, v)
}

// Len returns the number of values in the field.
func (f *Field) Len() int {
	return len(f.Values)
}

// At returns the value at index i, or nil when out of range.
func (f *Field) At(i int) interface{} {
	if i < 0 || i >= len(f.Values) {
		return nil
	}
	return f.Values[i]
}

// TimeAt returns the value at index i as a time.Time. The second return is
// false when the value is absent or not a timestamp.
func (f *Field) TimeAt(i int) (time.Time, bool) {
	t, ok := f.At(i).(time.Time)
	return t, ok
}

// Frame is one query's tabular result: an ordered set of typed fields plus
// metadata. RefID groups fields that came from the same source query.
type Frame struct {
	RefID  string
	Meta   Meta
	Fields []*Field
}

// New builds a frame from fields.
func New(refID string, fields ...*Field) *Frame {
	return &Frame{RefID: refID, Fields: fields}
}

// Rows returns the length of the longest field.
func (fr *Frame) Rows() int {
	max := 0
	for _, f := range fr.Fields {
		if f.Len() > max {
			max = f.Len()
		}
	}
	return max
}

// FieldByName returns the first field with the given name, or nil.
func (fr *Frame) FieldByName(name string) *Field {
	for _, f := range fr.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// TimeField returns the first field of type time, or nil.
func (fr *Frame) TimeField() *Field {
	for _, f := range fr.Fields {
		if f.Type == FieldTypeTime {
			return f
		}
	}
	return nil
}

// TypeCounts returns how many fields of each type the frame has.
func (fr *Frame) TypeCounts() map[FieldType]int {
	counts := make(map[FieldType]int, len(fr.Fields))
	for _, f := range fr.Fields {
		counts[f.Type]++
	}
	return counts
}

// IsTimeSeries reports whether the frame qualifies as a time series: exactly
// two distinct field types, exactly one time field and at least one number
// field. Frames carrying extra string or other fields do not qualify.
func (fr *Frame) IsTimeSeries() bool {
	counts := fr.TypeCounts()
	return len(counts) == 2 && counts[FieldTypeTime] == 1 && counts[FieldTypeNumber] > 0
}
