package logsmodel

import (
	"strings"
	"unicode"

	"github.com/go-logfmt/logfmt"
	"github.com/grafana/jsonparser"
)

// Level is a detected log severity.
type Level string

const (
	LevelUnknown  Level = "unknown"
	LevelTrace    Level = "trace"
	LevelDebug    Level = "debug"
	LevelInfo     Level = "info"
	LevelWarn     Level = "warn"
	LevelError    Level = "error"
	LevelCritical Level = "critical"
	LevelFatal    Level = "fatal"
)

var levelFieldNames = []string{"level", "lvl", "severity", "log.level"}

// Highest severity first so that a line mentioning several level tokens
// resolves to the most severe one.
var levelTokens = []struct {
	token string
	level Level
}{
	{"fatal", LevelFatal},
	{"critical", LevelCritical},
	{"error", LevelError},
	{"err", LevelError},
	{"warning", LevelWarn},
	{"warn", LevelWarn},
	{"wrn", LevelWarn},
	{"info", LevelInfo},
	{"inf", LevelInfo},
	{"debug", LevelDebug},
	{"dbg", LevelDebug},
	{"trace", LevelTrace},
	{"trc", LevelTrace},
}

func detectLevel(fields map[string]string, line string) Level {
	for _, name := range levelFieldNames {
		if v, ok := fields[name]; ok {
			if lvl := levelFromValue(v); lvl != LevelUnknown {
				return lvl
			}
		}
	}
	lower := strings.ToLower(line)
	for _, lt := range levelTokens {
		if strings.Contains(lower, lt.token) {
			return lt.level
		}
	}
	return LevelUnknown
}

func levelFromValue(v string) Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "trace", "trc":
		return LevelTrace
	case "debug", "dbg":
		return LevelDebug
	case "info", "inf", "information":
		return LevelInfo
	case "warn", "warning", "wrn":
		return LevelWarn
	case "error", "err":
		return LevelError
	case "critical", "crit":
		return LevelCritical
	case "fatal":
		return LevelFatal
	default:
		return LevelUnknown
	}
}

// extractFields pulls key-value pairs out of a log line. JSON object lines
// yield their top-level scalar members; anything else is attempted as
// logfmt. Returns nil when the line carries no recognizable pairs.
func extractFields(line string) map[string]string {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "{") {
		return jsonFields(trimmed)
	}
	return logfmtFields(trimmed)
}

func jsonFields(line string) map[string]string {
	var fields map[string]string
	err := jsonparser.ObjectEach([]byte(line), func(key, value []byte, dataType jsonparser.ValueType, _ int) error {
		switch dataType {
		case jsonparser.String, jsonparser.Number, jsonparser.Boolean:
			if fields == nil {
				fields = make(map[string]string)
			}
			fields[string(key)] = string(value)
		}
		return nil
	})
	if err != nil {
		return nil
	}
	return fields
}

func logfmtFields(line string) map[string]string {
	dec := logfmt.NewDecoder(strings.NewReader(line))
	var fields map[string]string
	for dec.ScanRecord() {
		for dec.ScanKeyval() {
			if len(dec.Value()) == 0 {
				continue
			}
			key := string(dec.Key())
			// Reject pairs whose key is not a bare word; prose with a
			// stray "=" is not logfmt.
			if !bareWord(key) {
				continue
			}
			if fields == nil {
				fields = make(map[string]string)
			}
			fields[key] = string(dec.Value())
		}
	}
	return fields
}

func bareWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '.' && r != '-' {
			return false
		}
	}
	return true
}
