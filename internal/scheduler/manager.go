// Package scheduler implements planit's deterministic multi-day planner:
// reset every task to its full remaining hours, then walk the planning
// window day by day, computing each day's free time (daily range minus
// active events), ordering that day's eligible tasks with the configured
// comparator, and greedily first-fitting each one into whatever free time
// remains before falling back to the configured overflow policy on its due
// date.
package scheduler

import (
	"github.com/khalidh223/planit/internal/domain"
	"github.com/khalidh223/planit/internal/model"
	"github.com/khalidh223/planit/internal/repo"
)

// ConfigView is the slice of configuration the scheduler needs, kept
// narrow so this package doesn't depend on the config package.
type ConfigView interface {
	DailyRange() domain.TimeRange
	TaskOverflowPolicy() domain.TaskOverflowPolicy
	TaskSchedulingOrder() domain.TaskSchedulingOrder
	ScheduleStartDate() domain.Date
}

// Manager runs the scheduling algorithm against a pair of live
// repositories.
type Manager struct {
	tasks  *repo.Repository[*model.Task]
	events *repo.Repository[*model.Event]
	cfg    ConfigView
}

func New(tasks *repo.Repository[*model.Task], events *repo.Repository[*model.Event], cfg ConfigView) *Manager {
	return &Manager{tasks: tasks, events: events, cfg: cfg}
}

// Run resets every task and replans the whole window from the configured
// start date through the latest task due date.
func (m *Manager) Run() error {
	allTasks := m.tasks.Values(repo.IDAsc)
	for _, t := range allTasks {
		t.RemainingHours = t.Hours
		t.Subtasks = nil
	}

	start := m.cfg.ScheduleStartDate()
	horizon := start
	for _, t := range allTasks {
		if t.Date.After(horizon) {
			horizon = t.Date
		}
	}

	allEvents := m.events.Query().Collect()
	comparator := ComparatorFor(m.cfg.TaskSchedulingOrder())
	overflow := HandlerFor(m.cfg.TaskOverflowPolicy())
	daily := m.cfg.DailyRange()

	for day := start; !day.After(horizon); day = day.AddDays(1) {
		busy := make([]domain.TimeRange, 0)
		for _, e := range allEvents {
			if e.IsActiveOnDate(day) {
				busy = append(busy, e.TimeRange)
			}
		}
		free := freeBlocks(daily, busy)

		eligible := make([]*model.Task, 0)
		for _, t := range allTasks {
			if t.RemainingHours > 0 && !t.Date.Before(day) {
				eligible = append(eligible, t)
			}
		}
		stableSortTasks(eligible, comparator)

		for _, t := range eligible {
			if t.RemainingHours <= 0 {
				continue
			}
			for t.RemainingHours > 0 {
				allocated, updated, placed := firstFit(free, t.RemainingHours)
				if !placed {
					break
				}
				t.PushSubtaskWithHours(allocated, day, allocated.Hours())
				free = updated
			}
			if t.Date.Equal(day) && t.RemainingHours > 0 {
				if err := overflow.Handle(t, day); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func stableSortTasks(tasks []*model.Task, less Comparator) {
	for i := 1; i < len(tasks); i++ {
		for j := i; j > 0 && less(tasks[j], tasks[j-1]); j-- {
			tasks[j], tasks[j-1] = tasks[j-1], tasks[j]
		}
	}
}
