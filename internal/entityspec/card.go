package entityspec

import (
	"github.com/khalidh223/planit/internal/argtok"
	"github.com/khalidh223/planit/internal/domain"
)

func nameSlot() ArgSlot {
	return ArgSlot{Label: `"<name>"`, Kinds: []argtok.Kind{argtok.KindName}}
}

func cardColorSlot() ArgSlot {
	return ArgSlot{Label: "<color>", Kinds: []argtok.Kind{argtok.KindCardColor}}
}

// consumeEntityAndID advances past the leading entity keyword and id slots
// shared by every entity's modify/delete patterns.
func consumeEntityAndID(ci *ColumnIndexer) int32 {
	ci.Advance()
	return ci.Advance().Int
}

// CardSpec is the argument grammar and field extraction for the card
// entity's add/modify/delete commands.
type CardSpec struct{}

// PatternsFor returns the accepted patterns for the given action:
//
//	Add:    card "<name>" <color>
//	Modify: card <id> "<name>" <color>
//	Delete: card <id>
func (CardSpec) PatternsFor(action domain.EntityActionType) []ArgPattern {
	switch action {
	case domain.Modify:
		return []ArgPattern{{Slots: []ArgSlot{EntitySlot(domain.Card), IDSlot(), nameSlot(), cardColorSlot()}}}
	case domain.Delete:
		return []ArgPattern{{Slots: []ArgSlot{EntitySlot(domain.Card), IDSlot()}}}
	default:
		return []ArgPattern{{Slots: []ArgSlot{EntitySlot(domain.Card), nameSlot(), cardColorSlot()}}}
	}
}

// CreateFields extracts (name, color) from a matched Add pattern.
func (CardSpec) CreateFields(ci *ColumnIndexer) (name string, color domain.CardColor) {
	ci.Advance()
	return ci.Advance().Name, ci.Advance().Color
}

// ModifyFields extracts (id, name, color) from a matched Modify pattern.
func (CardSpec) ModifyFields(ci *ColumnIndexer) (id int32, name string, color domain.CardColor) {
	ci.Advance()
	id = ci.Advance().Int
	name = ci.Advance().Name
	color = ci.Advance().Color
	return
}

// DeleteID extracts the id from a matched Delete pattern.
func (CardSpec) DeleteID(ci *ColumnIndexer) int32 {
	return consumeEntityAndID(ci)
}
