package scheduler

import "github.com/khalidh223/planit/internal/domain"

// firstFit finds the first free block with any time left and allocates a
// prefix of it, up to hoursNeeded. It returns the allocated range, the updated
// block list with that prefix removed, and whether a placement was made.
func firstFit(blocks []domain.TimeRange, hoursNeeded float64) (domain.TimeRange, []domain.TimeRange, bool) {
	for i, b := range blocks {
		available := float64(b.End.Minutes-b.Start.Minutes) / 60.0
		if available <= 0 {
			continue
		}
		minutesNeeded := int(hoursNeeded * 60)
		if minutesNeeded > b.End.Minutes-b.Start.Minutes {
			minutesNeeded = b.End.Minutes - b.Start.Minutes
		}
		if minutesNeeded <= 0 {
			continue
		}
		allocated := domain.TimeRange{Start: b.Start, End: domain.TimeOfDay{Minutes: b.Start.Minutes + minutesNeeded}}
		remaining := domain.TimeRange{Start: allocated.End, End: b.End}

		out := make([]domain.TimeRange, 0, len(blocks))
		out = append(out, blocks[:i]...)
		if remaining.Start.Minutes < remaining.End.Minutes {
			out = append(out, remaining)
		}
		out = append(out, blocks[i+1:]...)
		return allocated, out, true
	}
	return domain.TimeRange{}, blocks, false
}
