package transform

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafana/paneldata/pkg/panelframe"
)

func runTransform(t *testing.T, tr Transformer, frames []*panelframe.Frame) []*panelframe.Frame {
	t.Helper()
	ch, err := tr.Transform(context.Background(), frames)
	require.NoError(t, err)
	res := <-ch
	require.NoError(t, res.Err)
	return res.Frames
}

func timeSeriesFrame(refID, valueName string, start time.Time, values ...interface{}) *panelframe.Frame {
	timeField := panelframe.NewField(panelframe.TimeFieldName, panelframe.FieldTypeTime)
	for i := range values {
		timeField.Append(start.Add(time.Duration(i) * time.Minute))
	}
	return panelframe.New(refID,
		timeField,
		panelframe.NewField(valueName, panelframe.FieldTypeNumber, values...),
	)
}

func TestJoinByTime_AlignsOnSharedAxis(t *testing.T) {
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	a := timeSeriesFrame("A", "Value", start, 1.0, 2.0)
	// B starts one minute later, overlapping A's second sample.
	b := timeSeriesFrame("B", "Value", start.Add(time.Minute), 10.0, 20.0)

	out := runTransform(t, JoinByTime(), []*panelframe.Frame{a, b})
	require.Len(t, out, 1)
	joined := out[0]

	// Time axis is the union: 10:00, 10:01, 10:02.
	require.Len(t, joined.Fields, 3)
	tf := joined.TimeField()
	require.NotNil(t, tf)
	require.Equal(t, 3, tf.Len())
	for i, expected := range []time.Time{start, start.Add(time.Minute), start.Add(2 * time.Minute)} {
		got, ok := tf.TimeAt(i)
		require.True(t, ok)
		assert.True(t, expected.Equal(got))
	}

	// Colliding value names are disambiguated by refId.
	assert.Equal(t, "Value", joined.Fields[1].Name)
	assert.Equal(t, "Value #B", joined.Fields[2].Name)

	assert.Equal(t, []interface{}{1.0, 2.0, nil}, joined.Fields[1].Values)
	assert.Equal(t, []interface{}{nil, 10.0, 20.0}, joined.Fields[2].Values)
}

func TestJoinByTime_SingleFramePassesThrough(t *testing.T) {
	a := timeSeriesFrame("A", "Value", time.Now(), 1.0)
	out := runTransform(t, JoinByTime(), []*panelframe.Frame{a})
	require.Len(t, out, 1)
	assert.Same(t, a, out[0])
}

func TestJoinByTime_MissingTimeField(t *testing.T) {
	a := timeSeriesFrame("A", "Value", time.Now(), 1.0)
	b := panelframe.New("B", panelframe.NewField("Value", panelframe.FieldTypeNumber, 1.0))

	ch, err := JoinByTime().Transform(context.Background(), []*panelframe.Frame{a, b})
	require.NoError(t, err)
	res := <-ch
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "no time field")
}

func TestTransform_NoFrames(t *testing.T) {
	_, err := JoinByTime().Transform(context.Background(), nil)
	require.Error(t, err)
}

func TestTransform_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := timeSeriesFrame("A", "Value", time.Now(), 1.0, 2.0)
	b := timeSeriesFrame("B", "Value", time.Now(), 3.0)
	ch, err := JoinByTime().Transform(ctx, []*panelframe.Frame{a, b})
	require.NoError(t, err)

	// The emission may race the cancellation; either the result arrives or
	// the channel closes without one. Neither should hang.
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("transform neither emitted nor closed")
	}
}
