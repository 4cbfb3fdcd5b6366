package domain

import (
	"strings"

	"github.com/khalidh223/planit/internal/perr"
)

// EntityType names one of the three domain entities the command grammar
// can add/modify/delete.
type EntityType int

const (
	Card EntityType = iota
	Event
	Task
)

func (e EntityType) String() string {
	switch e {
	case Card:
		return "card"
	case Event:
		return "event"
	default:
		return "task"
	}
}

// ParseEntityType matches the bare lowercase command word.
func ParseEntityType(token string) (EntityType, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "card":
		return Card, nil
	case "event":
		return Event, nil
	case "task":
		return Task, nil
	default:
		return 0, perr.Parse("'%s' is not a valid entity type. Valid entity types: card, event, task", token)
	}
}

// ValidEntityTypesCSV lists every entity keyword, comma-separated.
func ValidEntityTypesCSV() string { return "card, event, task" }

// EntityActionType names the three verbs the dispatcher routes on. Add has
// no command-word token of its own: a bare entity keyword ("task", "card",
// "event") is itself an Add command, so Add's String form is empty and
// usage strings read "Usage: <entity-pattern>" rather than
// "Usage: add <entity-pattern>".
type EntityActionType int

const (
	Add EntityActionType = iota
	Modify
	Delete
)

func (a EntityActionType) String() string {
	switch a {
	case Modify:
		return "mod"
	case Delete:
		return "del"
	default:
		return ""
	}
}

// ParseEntityActionType matches the command word that precedes an entity
// keyword: "mod" or "del". Add is never matched this way; the command
// parser infers it directly from a bare entity keyword.
func ParseEntityActionType(token string) (EntityActionType, bool) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "mod":
		return Modify, true
	case "del":
		return Delete, true
	default:
		return 0, false
	}
}
