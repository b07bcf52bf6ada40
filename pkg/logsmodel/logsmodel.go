// Package logsmodel converts logs-shaped result frames into a flat model of
// individual log records, the form the logs visualization consumes.
package logsmodel

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/grafana/paneldata/pkg/panelframe"
)

// TimeRange bounds the visible window, used for log-volume bucketing.
type TimeRange struct {
	From time.Time
	To   time.Time
}

// Row is a single log line.
type Row struct {
	Timestamp time.Time
	Line      string
	Level     Level
	// Fields holds per-row metadata: extra frame columns plus key-value
	// pairs extracted from the line itself.
	Fields map[string]string
	// Hash identifies the row across refreshes of the same query.
	Hash uint64
}

// Model is the log-record model: flat rows plus the frames they came from.
type Model struct {
	Rows   []Row
	Series []*panelframe.Frame
	Volume *Volume
}

const maxVolumeBuckets = 100

// Volume counts rows per level over fixed time buckets.
type Volume struct {
	Start  time.Time
	Bucket time.Duration
	Counts map[Level][]int
}

func newVolume(rng *TimeRange, intervalMs int64) *Volume {
	if rng == nil || !rng.To.After(rng.From) {
		return nil
	}
	bucket := time.Duration(intervalMs) * time.Millisecond
	if bucket <= 0 {
		bucket = time.Second
	}
	span := rng.To.Sub(rng.From)
	if span/bucket > maxVolumeBuckets {
		bucket = span / maxVolumeBuckets
	}
	return &Volume{Start: rng.From, Bucket: bucket, Counts: make(map[Level][]int)}
}

func (v *Volume) record(ts time.Time, end time.Time, lvl Level) {
	if ts.Before(v.Start) || !ts.Before(end) {
		return
	}
	n := int(end.Sub(v.Start) / v.Bucket)
	if int(end.Sub(v.Start)%v.Bucket) > 0 {
		n++
	}
	if v.Counts[lvl] == nil {
		v.Counts[lvl] = make([]int, n)
	}
	i := int(ts.Sub(v.Start) / v.Bucket)
	if i >= 0 && i < n {
		v.Counts[lvl][i]++
	}
}

// Build converts logs frames into a Model. Each frame contributes one row per
// entry: the timestamp from its time field, the line from its first string
// field, remaining fields as row metadata. Key-value pairs embedded in the
// line (JSON or logfmt) are extracted into Fields, and a log level is
// detected from metadata or the line body. rng, when set, additionally
// produces a per-level volume histogram bucketed by intervalMs.
func Build(frames []*panelframe.Frame, intervalMs int64, loc *time.Location, rng *TimeRange) *Model {
	if loc == nil {
		loc = time.Local
	}
	m := &Model{Series: frames, Volume: newVolume(rng, intervalMs)}
	for _, fr := range frames {
		timeField := fr.TimeField()
		lineField := firstStringField(fr)
		if timeField == nil || lineField == nil {
			continue
		}
		rows := fr.Rows()
		for i := 0; i < rows; i++ {
			ts, ok := timeField.TimeAt(i)
			if !ok {
				continue
			}
			line, _ := lineField.At(i).(string)

			fields := extractFields(line)
			for _, f := range fr.Fields {
				if f == timeField || f == lineField || f.At(i) == nil {
					continue
				}
				if fields == nil {
					fields = make(map[string]string)
				}
				fields[f.Name] = fmt.Sprintf("%v", f.At(i))
			}

			row := Row{
				Timestamp: ts.In(loc),
				Line:      line,
				Level:     detectLevel(fields, line),
				Fields:    fields,
				Hash:      rowHash(fr.RefID, ts, line),
			}
			if m.Volume != nil {
				m.Volume.record(ts, rng.To, row.Level)
			}
			m.Rows = append(m.Rows, row)
		}
	}
	return m
}

func firstStringField(fr *panelframe.Frame) *panelframe.Field {
	for _, f := range fr.Fields {
		if f.Type == panelframe.FieldTypeString {
			return f
		}
	}
	return nil
}

func rowHash(refID string, ts time.Time, line string) uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(refID)
	_, _ = h.WriteString(fmt.Sprintf("_%d_", ts.UnixNano()))
	_, _ = h.WriteString(line)
	return h.Sum64()
}
