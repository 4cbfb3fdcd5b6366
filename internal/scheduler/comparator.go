package scheduler

import (
	"github.com/khalidh223/planit/internal/domain"
	"github.com/khalidh223/planit/internal/model"
)

// Comparator reports whether a should sort before b within a single day's
// eligible-task list.
type Comparator func(a, b *model.Task) bool

// ShortestFirst orders by due date, then by less remaining work.
func ShortestFirst(a, b *model.Task) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.Before(b.Date)
	}
	return a.RemainingHours < b.RemainingHours
}

// LongestFirst orders by due date, then by more remaining work.
func LongestFirst(a, b *model.Task) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.Before(b.Date)
	}
	return a.RemainingHours > b.RemainingHours
}

// DueOnly orders by due date alone; ties keep their relative order (Run
// hands tasks to the stable sort in id order).
func DueOnly(a, b *model.Task) bool {
	return a.Date.Before(b.Date)
}

// ComparatorFor resolves the configured scheduling order to a Comparator.
func ComparatorFor(order domain.TaskSchedulingOrder) Comparator {
	switch order {
	case domain.ShortestTaskFirst:
		return ShortestFirst
	case domain.LongestTaskFirst:
		return LongestFirst
	default:
		return DueOnly
	}
}
