package entityspec

import (
	"github.com/khalidh223/planit/internal/argtok"
	"github.com/khalidh223/planit/internal/domain"
	"github.com/khalidh223/planit/internal/perr"
)

func hoursSlot() ArgSlot {
	return ArgSlot{
		Label: "<hours>",
		Kinds: []argtok.Kind{argtok.KindInt},
		Validator: func(a argtok.Arg, _ ValidationContext) error {
			if a.Int <= 0 {
				return perr.Parse("Hours must be greater than 0.")
			}
			return nil
		},
	}
}

func dateSlot(validator func(argtok.Arg, ValidationContext) error) ArgSlot {
	return ArgSlot{Label: "<date>", Kinds: []argtok.Kind{argtok.KindDate}, Validator: validator}
}

// TaskSpec is the argument grammar and field extraction for the task
// entity's add/modify/delete commands.
type TaskSpec struct{}

// PatternsFor returns the accepted patterns for the given action:
//
//	Add:    task "<name>" <hours> [card-id] @ <date>
//	Modify: task <id> "<name>" <hours> [card-id] @ <date>
//	Delete: task <id>
func (TaskSpec) PatternsFor(action domain.EntityActionType) []ArgPattern {
	base := []ArgSlot{
		nameSlot(),
		hoursSlot(),
		optionalCardIDSlot(),
		atSymbolSlot(),
		dateSlot(taskStartDateValidator),
	}
	switch action {
	case domain.Modify:
		slots := append([]ArgSlot{EntitySlot(domain.Task), IDSlot()}, base...)
		return []ArgPattern{{Slots: slots}}
	case domain.Delete:
		return []ArgPattern{{Slots: []ArgSlot{EntitySlot(domain.Task), IDSlot()}}}
	default:
		slots := append([]ArgSlot{EntitySlot(domain.Task)}, base...)
		return []ArgPattern{{Slots: slots}}
	}
}

type TaskFields struct {
	Name   string
	Hours  float64
	CardID *int32
	Date   domain.Date
}

func readTaskFields(ci *ColumnIndexer) TaskFields {
	var f TaskFields
	f.Name = ci.Advance().Name
	f.Hours = float64(ci.Advance().Int)
	if a, ok := ci.NextOpt(argtok.KindCardColorId); ok {
		id := a.Int
		f.CardID = &id
	}
	ci.Advance() // @
	f.Date = ci.Advance().Date
	return f
}

// CreateFields extracts task fields from a matched Add pattern.
func (TaskSpec) CreateFields(ci *ColumnIndexer) TaskFields {
	ci.Advance()
	return readTaskFields(ci)
}

// ModifyFields extracts (id, fields) from a matched Modify pattern.
func (TaskSpec) ModifyFields(ci *ColumnIndexer) (int32, TaskFields) {
	ci.Advance()
	id := ci.Advance().Int
	return id, readTaskFields(ci)
}

// DeleteID extracts the id from a matched Delete pattern.
func (TaskSpec) DeleteID(ci *ColumnIndexer) int32 {
	return consumeEntityAndID(ci)
}
