package scheduler

import (
	"sort"

	"github.com/khalidh223/planit/internal/domain"
)

// freeBlocks returns the portions of daily, sorted and coalesced, that
// remain open after removing every range in busy. busy need not be sorted
// or non-overlapping on entry.
func freeBlocks(daily domain.TimeRange, busy []domain.TimeRange) []domain.TimeRange {
	if len(busy) == 0 {
		return []domain.TimeRange{daily}
	}
	sorted := append([]domain.TimeRange(nil), busy...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start.Minutes < sorted[j].Start.Minutes })

	merged := []domain.TimeRange{sorted[0]}
	for _, b := range sorted[1:] {
		last := &merged[len(merged)-1]
		if b.Start.Minutes <= last.End.Minutes {
			if b.End.Minutes > last.End.Minutes {
				last.End = b.End
			}
			continue
		}
		merged = append(merged, b)
	}

	var free []domain.TimeRange
	cursor := daily.Start
	for _, b := range merged {
		start := maxTime(b.Start, daily.Start)
		end := minTime(b.End, daily.End)
		if start.Minutes >= end.Minutes {
			continue
		}
		if cursor.Minutes < start.Minutes {
			free = append(free, domain.TimeRange{Start: cursor, End: start})
		}
		if end.Minutes > cursor.Minutes {
			cursor = end
		}
	}
	if cursor.Minutes < daily.End.Minutes {
		free = append(free, domain.TimeRange{Start: cursor, End: daily.End})
	}
	return free
}

func maxTime(a, b domain.TimeOfDay) domain.TimeOfDay {
	if a.Minutes > b.Minutes {
		return a
	}
	return b
}

func minTime(a, b domain.TimeOfDay) domain.TimeOfDay {
	if a.Minutes < b.Minutes {
		return a
	}
	return b
}
