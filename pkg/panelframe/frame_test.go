package panelframe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrame_IsTimeSeries(t *testing.T) {
	now := time.Now()

	for name, tc := range map[string]struct {
		fields   []*Field
		expected bool
	}{
		"one time and one number": {
			fields:   []*Field{NewField(TimeFieldName, FieldTypeTime, now), NewField(ValueFieldName, FieldTypeNumber, 1.0)},
			expected: true,
		},
		"one time and several numbers": {
			fields: []*Field{
				NewField(TimeFieldName, FieldTypeTime, now),
				NewField("a", FieldTypeNumber, 1.0),
				NewField("b", FieldTypeNumber, 2.0),
			},
			expected: true,
		},
		"extra string field": {
			fields: []*Field{
				NewField(TimeFieldName, FieldTypeTime, now),
				NewField(ValueFieldName, FieldTypeNumber, 1.0),
				NewField("host", FieldTypeString, "a"),
			},
			expected: false,
		},
		"two time fields": {
			fields: []*Field{
				NewField("start", FieldTypeTime, now),
				NewField("end", FieldTypeTime, now),
				NewField(ValueFieldName, FieldTypeNumber, 1.0),
			},
			expected: false,
		},
		"numbers only": {
			fields:   []*Field{NewField("a", FieldTypeNumber, 1.0), NewField("b", FieldTypeNumber, 2.0)},
			expected: false,
		},
		"time only": {
			fields:   []*Field{NewField(TimeFieldName, FieldTypeTime, now)},
			expected: false,
		},
		"no fields": {
			expected: false,
		},
	} {
		t.Run(name, func(t *testing.T) {
			fr := New("A", tc.fields...)
			assert.Equal(t, tc.expected, fr.IsTimeSeries())
		})
	}
}

func TestFrame_Lookups(t *testing.T) {
	now := time.Now()
	fr := New("A",
		NewField(TimeFieldName, FieldTypeTime, now, now.Add(time.Second)),
		NewField(ValueFieldName, FieldTypeNumber, 1.0),
	)

	require.NotNil(t, fr.TimeField())
	assert.Equal(t, TimeFieldName, fr.TimeField().Name)
	assert.Nil(t, fr.FieldByName("missing"))
	assert.Equal(t, 2, fr.Rows())

	ts, ok := fr.TimeField().TimeAt(1)
	require.True(t, ok)
	assert.Equal(t, now.Add(time.Second), ts)

	_, ok = fr.TimeField().TimeAt(5)
	assert.False(t, ok)
	assert.Nil(t, fr.Fields[1].At(3))
}

func TestParseVisType(t *testing.T) {
	assert.Equal(t, VisTypeGraph, ParseVisType("graph"))
	assert.Equal(t, VisTypeNone, ParseVisType("piechart"))
	assert.Equal(t, VisTypeNone, ParseVisType(""))
}
