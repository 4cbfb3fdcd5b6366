package entityspec

import (
	"github.com/khalidh223/planit/internal/argtok"
	"github.com/khalidh223/planit/internal/domain"
)

func boolSlot(label string) ArgSlot {
	return ArgSlot{Label: label, Kinds: []argtok.Kind{argtok.KindBool}}
}

func atSymbolSlot() ArgSlot {
	return ArgSlot{Label: "@", Kinds: []argtok.Kind{argtok.KindAtSymbol}}
}

func daysOfWeekSlot() ArgSlot {
	return ArgSlot{Label: "days-of-week", Kinds: []argtok.Kind{argtok.KindDaysOfWeek}, Optional: true}
}

func timeRangeSlot(validator func(argtok.Arg, ValidationContext) error) ArgSlot {
	return ArgSlot{Label: "<start>-<end>", Kinds: []argtok.Kind{argtok.KindTimeRange}, Validator: validator}
}

// EventSpec is the argument grammar and field extraction for the event
// entity's add/modify/delete commands.
type EventSpec struct{}

// PatternsFor returns the accepted patterns for the given action:
//
//	Add:    event <recurring> "<name>" [card-id] @ [days-of-week] <start>-<end>
//	Modify: event <id> <recurring> "<name>" [card-id] @ [days-of-week] <start>-<end>
//	Delete: event <id>
func (EventSpec) PatternsFor(action domain.EntityActionType) []ArgPattern {
	base := []ArgSlot{
		boolSlot("<recurring>"),
		nameSlot(),
		optionalCardIDSlot(),
		atSymbolSlot(),
		daysOfWeekSlot(),
		timeRangeSlot(dailyHourRangeValidator),
	}
	switch action {
	case domain.Modify:
		slots := append([]ArgSlot{EntitySlot(domain.Event), IDSlot()}, base...)
		return []ArgPattern{{Slots: slots}}
	case domain.Delete:
		return []ArgPattern{{Slots: []ArgSlot{EntitySlot(domain.Event), IDSlot()}}}
	default:
		slots := append([]ArgSlot{EntitySlot(domain.Event)}, base...)
		return []ArgPattern{{Slots: slots}}
	}
}

type EventFields struct {
	Recurring domain.Bool
	Name      string
	CardID    *int32
	Days      []domain.DayOfWeek
	TimeRange domain.TimeRange
}

func readEventFields(ci *ColumnIndexer) (EventFields, error) {
	var f EventFields
	f.Recurring = ci.Advance().BoolVal
	f.Name = ci.Advance().Name
	if a, ok := ci.NextOpt(argtok.KindCardColorId); ok {
		id := a.Int
		f.CardID = &id
	}
	ci.Advance() // @
	if a, ok := ci.NextOpt(argtok.KindDaysOfWeek); ok {
		f.Days = a.Days
	} else {
		f.Days = defaultDaysFor(f.Recurring)
	}
	f.TimeRange = ci.Advance().TimeRange
	if err := validateEventRecurringDays(f.Recurring, f.Days); err != nil {
		return EventFields{}, err
	}
	return f, nil
}

// CreateFields extracts event fields from a matched Add pattern.
func (EventSpec) CreateFields(ci *ColumnIndexer) (EventFields, error) {
	ci.Advance()
	return readEventFields(ci)
}

// ModifyFields extracts (id, fields) from a matched Modify pattern.
func (EventSpec) ModifyFields(ci *ColumnIndexer) (int32, EventFields, error) {
	ci.Advance()
	id := ci.Advance().Int
	f, err := readEventFields(ci)
	return id, f, err
}

// DeleteID extracts the id from a matched Delete pattern.
func (EventSpec) DeleteID(ci *ColumnIndexer) int32 {
	return consumeEntityAndID(ci)
}
