// Package views computes presentational aggregates over a snapshot of the
// registration registry. Everything here is a pure function: no state, no
// caching, recomputed on every call.
package views

import "github.com/squadhelper/tryouts/internal/model"

// RosterBySport filters a snapshot down to one sport, preserving insertion
// order
func RosterBySport(players []model.PlayerEntry, sport string) []model.PlayerEntry {
	roster := make([]model.PlayerEntry, 0, len(players))
	for _, p := range players {
		if p.Sport == sport {
			roster = append(roster, p)
		}
	}
	return roster
}

// Partition splits a roster by marked attendance. Unmarked entries appear
// in neither slice; that is a deliberate display choice, not an oversight.
type Partition struct {
	Present []model.PlayerEntry
	Absent  []model.PlayerEntry
}

// PartitionAttendance splits a roster into present and absent players
func PartitionAttendance(roster []model.PlayerEntry) Partition {
	var part Partition
	for _, p := range roster {
		switch {
		case p.Attendance == nil:
			// unmarked: excluded from both partitions
		case *p.Attendance:
			part.Present = append(part.Present, p)
		default:
			part.Absent = append(part.Absent, p)
		}
	}
	return part
}

// TotalCount returns the number of registered entries
func TotalCount(players []model.PlayerEntry) int {
	return len(players)
}

// CountBySport returns per-sport registration counts. Sports with no
// registrations are absent from the map.
func CountBySport(players []model.PlayerEntry) map[string]int {
	counts := make(map[string]int)
	for _, p := range players {
		counts[p.Sport]++
	}
	return counts
}
