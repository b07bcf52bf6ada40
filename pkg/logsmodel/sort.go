package logsmodel

import (
	"sort"
	"strings"
)

// Direction is the order log rows are presented in.
type Direction int

const (
	// Forward is oldest first.
	Forward Direction = iota
	// Backward is newest first.
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// DirectionFor maps a panel refresh interval to a sort direction: live
// streaming shows newest entries first, everything else oldest first.
func DirectionFor(refreshInterval string) Direction {
	switch strings.ToLower(strings.TrimSpace(refreshInterval)) {
	case "live", "streaming":
		return Backward
	default:
		// Fixed intervals like "5s", and anything unrecognized, sort
		// oldest first.
		return Forward
	}
}

// Sort orders the model's rows by timestamp, stably so that rows with equal
// timestamps keep their input order. The model is returned for chaining.
func Sort(m *Model, dir Direction) *Model {
	if m == nil {
		return nil
	}
	sort.SliceStable(m.Rows, func(i, j int) bool {
		if dir == Backward {
			return m.Rows[i].Timestamp.After(m.Rows[j].Timestamp)
		}
		return m.Rows[i].Timestamp.Before(m.Rows[j].Timestamp)
	})
	return m
}
