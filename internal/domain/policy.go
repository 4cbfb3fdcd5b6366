package domain

import "github.com/khalidh223/planit/internal/perr"

// TaskSchedulingOrder selects the comparator the scheduler uses to order
// each day's eligible tasks before packing them into free blocks.
type TaskSchedulingOrder int

const (
	ShortestTaskFirst TaskSchedulingOrder = iota
	LongestTaskFirst
	DueOnly
)

var taskSchedulingOrderTokens = map[TaskSchedulingOrder]string{
	ShortestTaskFirst: "shortest-task-first",
	LongestTaskFirst:  "longest-task-first",
	DueOnly:           "due-only",
}

func (o TaskSchedulingOrder) String() string { return taskSchedulingOrderTokens[o] }

// Help returns a one-line description of the ordering rule, used by the
// config editor and type-help commands.
func (o TaskSchedulingOrder) Help() string {
	switch o {
	case ShortestTaskFirst:
		return "Order by due date, then shorter remaining task first."
	case LongestTaskFirst:
		return "Order by due date, then longer remaining task first."
	default:
		return "Order by due date only; ties keep insertion order."
	}
}

// ParseTaskSchedulingOrder matches the kebab-case token.
func ParseTaskSchedulingOrder(token string) (TaskSchedulingOrder, error) {
	for o, tok := range taskSchedulingOrderTokens {
		if tok == token {
			return o, nil
		}
	}
	return 0, perr.Parse("'%s' is not a valid task scheduling order. Valid values: shortest-task-first, longest-task-first, due-only", token)
}

// TaskOverflowPolicy decides what happens when a task's remaining_hours is
// still positive after an attempted placement on a given day.
type TaskOverflowPolicy int

const (
	Allow TaskOverflowPolicy = iota
	Block
)

// ParseTaskOverflowPolicy matches the input token "allow" or "block". Note
// that Block's input token and its Display/serialized form differ: it is
// typed as "block" but always rendered back out as "hard-block".
func ParseTaskOverflowPolicy(token string) (TaskOverflowPolicy, error) {
	switch token {
	case "allow":
		return Allow, nil
	case "block":
		return Block, nil
	default:
		return 0, perr.Parse("'%s' is not a valid task overflow policy. Valid values: allow, block", token)
	}
}

func (p TaskOverflowPolicy) String() string {
	if p == Block {
		return "hard-block"
	}
	return "allow"
}
