package scheduler

import (
	"github.com/khalidh223/planit/internal/domain"
	"github.com/khalidh223/planit/internal/model"
	"github.com/khalidh223/planit/internal/perr"
)

// OverflowHandler decides what happens to a task that still has remaining
// hours after its due date has been fully processed.
type OverflowHandler interface {
	Handle(t *model.Task, day domain.Date) error
}

// AllowOverflow marks the task's last placed subtask (or, if nothing was
// ever placed, leaves the task entirely unscheduled) and lets the run
// continue.
type AllowOverflow struct{}

func (AllowOverflow) Handle(t *model.Task, _ domain.Date) error {
	if len(t.Subtasks) > 0 {
		t.Subtasks[len(t.Subtasks)-1].Overflow = true
	}
	return nil
}

// BlockOverflow fails the entire scheduling run as soon as one task cannot
// be fully placed by its due date.
type BlockOverflow struct{}

func (BlockOverflow) Handle(t *model.Task, day domain.Date) error {
	return perr.TaskOverflow(t.IDVal, t.Name, day.String(), t.RemainingHours)
}

// HandlerFor resolves the configured policy to an OverflowHandler.
func HandlerFor(policy domain.TaskOverflowPolicy) OverflowHandler {
	if policy == domain.Block {
		return BlockOverflow{}
	}
	return AllowOverflow{}
}
