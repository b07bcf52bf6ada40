package display

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafana/paneldata/pkg/panelframe"
)

func TestResolveTimezone(t *testing.T) {
	assert.Equal(t, time.Local, ResolveTimezone(""))
	assert.Equal(t, time.Local, ResolveTimezone("browser"))
	assert.Equal(t, time.UTC, ResolveTimezone("utc"))
	assert.Equal(t, time.Local, ResolveTimezone("not/a-zone"))

	loc := ResolveTimezone("Europe/Stockholm")
	require.NotNil(t, loc)
	assert.Equal(t, "Europe/Stockholm", loc.String())
}

func TestNewProcessor_Time(t *testing.T) {
	f := panelframe.NewField(panelframe.TimeFieldName, panelframe.FieldTypeTime)
	p := NewProcessor(f, Theme{}, time.UTC)

	ts := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-05-01T10:30:00Z", p(ts))
	assert.Equal(t, "oops", p("oops"))
}

func TestNewProcessor_Number(t *testing.T) {
	f := panelframe.NewField(panelframe.ValueFieldName, panelframe.FieldTypeNumber)
	p := NewProcessor(f, Theme{}, nil)

	assert.Equal(t, "1,234.5", p(1234.5))
	assert.Equal(t, "7", p(int64(7)))
	assert.Equal(t, "", p(nil))
}

func TestNewProcessor_NumberDecimals(t *testing.T) {
	two := 2
	f := &panelframe.Field{
		Name:   panelframe.ValueFieldName,
		Type:   panelframe.FieldTypeNumber,
		Config: &panelframe.FieldConfig{Decimals: &two},
	}
	p := NewProcessor(f, Theme{}, nil)
	assert.Equal(t, "0.12", p(0.1234))
}

func TestNewProcessor_Bytes(t *testing.T) {
	f := &panelframe.Field{
		Name:   "size",
		Type:   panelframe.FieldTypeNumber,
		Config: &panelframe.FieldConfig{Unit: "bytes"},
	}
	p := NewProcessor(f, Theme{}, nil)
	// datasize switches units on strict greater-than, so exactly 1024
	// bytes still renders in bytes.
	assert.Equal(t, "1024 B", p(1024.0))
	assert.Equal(t, "2.0 KB", p(2048.0))
	assert.Equal(t, "1.5 MB", p(1.5*1024*1024))
}

func TestNewProcessor_String(t *testing.T) {
	f := panelframe.NewField("host", panelframe.FieldTypeString)
	p := NewProcessor(f, Theme{}, nil)
	assert.Equal(t, "db-1", p("db-1"))
	assert.Equal(t, "", p(nil))
}
