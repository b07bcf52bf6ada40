package panelframe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrame_JSONRoundTrip(t *testing.T) {
	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	in := New("A",
		NewField(TimeFieldName, FieldTypeTime, ts, ts.Add(time.Minute)),
		NewField(ValueFieldName, FieldTypeNumber, 1.5, nil),
	)
	in.Meta.PreferredVisualization = VisTypeGraph
	in.Fields[1].Config = &FieldConfig{Unit: "bytes"}

	buf, err := json.Marshal(in)
	require.NoError(t, err)

	var out Frame
	require.NoError(t, json.Unmarshal(buf, &out))

	assert.Equal(t, "A", out.RefID)
	assert.Equal(t, VisTypeGraph, out.Meta.PreferredVisualization)
	require.Len(t, out.Fields, 2)
	assert.Equal(t, FieldTypeTime, out.Fields[0].Type)
	got, ok := out.Fields[0].TimeAt(0)
	require.True(t, ok)
	assert.True(t, ts.Equal(got))
	assert.Equal(t, "bytes", out.Fields[1].Config.Unit)
	assert.Nil(t, out.Fields[1].At(1))
}

func TestFrame_UnmarshalEpochMillis(t *testing.T) {
	var fr Frame
	require.NoError(t, json.Unmarshal([]byte(`{
		"refId": "A",
		"fields": [{"name": "Time", "type": "time", "values": [1714557600000]}]
	}`), &fr))

	got, ok := fr.Fields[0].TimeAt(0)
	require.True(t, ok)
	assert.Equal(t, time.UnixMilli(1714557600000).UTC(), got)
}

func TestFrame_UnmarshalBadTimestamp(t *testing.T) {
	var fr Frame
	err := json.Unmarshal([]byte(`{
		"fields": [{"name": "Time", "type": "time", "values": [true]}]
	}`), &fr)
	require.Error(t, err)
}
