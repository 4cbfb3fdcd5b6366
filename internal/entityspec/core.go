// Package entityspec implements the declarative, pattern-directed argument
// grammar shared by the card/event/task add, modify, and delete commands:
// each action owns one or more fixed ArgPatterns, and a raw argument list
// is matched against every candidate pattern, the deepest partial match
// winning the error message when none succeed outright.
package entityspec

import (
	"fmt"
	"strings"

	"github.com/khalidh223/planit/internal/argtok"
	"github.com/khalidh223/planit/internal/domain"
	"github.com/khalidh223/planit/internal/perr"
)

// ValidationContext is the narrow slice of application state a slot
// validator needs — just enough to check card references and config-backed
// bounds, without entityspec importing the application context package
// (which itself depends on entityspec's concrete specs).
type ValidationContext interface {
	CardExists(id int32) bool
	DailyRange() domain.TimeRange
	ScheduleStartDate() domain.Date
}

// ArgSlot is one position in an ArgPattern: the set of Arg kinds it
// accepts, whether it may be skipped when absent, and an optional
// value-level validator run after the kind check passes.
type ArgSlot struct {
	Label     string
	Kinds     []argtok.Kind
	Optional  bool
	Validator func(argtok.Arg, ValidationContext) error
}

func (s ArgSlot) acceptsKind(k argtok.Kind) bool {
	for _, want := range s.Kinds {
		if want == k {
			return true
		}
	}
	return false
}

func (s ArgSlot) usage() string {
	if s.Optional {
		return "[" + s.Label + "]"
	}
	return s.Label
}

// ArgPattern is a fixed sequence of slots an action's arguments must match.
type ArgPattern struct {
	Slots []ArgSlot
}

// Usage renders "<action> <slot> <slot> ..." for error messages; the entity
// keyword comes from the pattern's leading entity slot, and Add (whose
// action word is empty) starts directly with it.
func (p ArgPattern) Usage(entity domain.EntityType, action domain.EntityActionType) string {
	var parts []string
	if action.String() != "" {
		parts = append(parts, action.String())
	}
	for _, s := range p.Slots {
		parts = append(parts, s.usage())
	}
	return strings.Join(parts, " ")
}

type slotOutcome int

const (
	outcomeMatch slotOutcome = iota
	outcomeKindMismatch
	outcomeValidatorFail
)

func classify(slot ArgSlot, actual argtok.Arg, ctx ValidationContext) (slotOutcome, error) {
	if !slot.acceptsKind(actual.Kind) {
		return outcomeKindMismatch, nil
	}
	if slot.Validator != nil {
		if err := slot.Validator(actual, ctx); err != nil {
			return outcomeValidatorFail, err
		}
	}
	return outcomeMatch, nil
}

// matchPattern walks args against pattern's slots and reports how far it
// got (progress, used for deepest-match-wins ranking across candidate
// patterns) along with an error describing the first true failure, if any.
func matchPattern(args []argtok.Arg, pattern ArgPattern, entity domain.EntityType, action domain.EntityActionType, ctx ValidationContext) (matched bool, progress int, err error) {
	usage := pattern.Usage(entity, action)
	j := 0
	for i, slot := range pattern.Slots {
		if j >= len(args) {
			if slot.Optional {
				continue
			}
			return false, i, perr.Parse("Missing argument(s).\nUsage: %s", usage)
		}
		outcome, verr := classify(slot, args[j], ctx)
		switch outcome {
		case outcomeMatch:
			j++
			progress = i + 1
		case outcomeKindMismatch:
			if slot.Optional {
				continue
			}
			return false, i, perr.Parse("Wrong argument type.\nUsage: %s", usage)
		case outcomeValidatorFail:
			return false, i, perr.Parse("%s\nUsage: %s", verr.Error(), usage)
		}
	}
	if j < len(args) {
		return false, len(pattern.Slots), perr.Parse("Too many arguments provided.\nUsage: %s", usage)
	}
	return true, len(pattern.Slots), nil
}

// AssertMatchesPattern finds the pattern args fully satisfies, or returns
// the error from whichever candidate pattern made the deepest partial
// match before failing.
func AssertMatchesPattern(args []argtok.Arg, patterns []ArgPattern, entity domain.EntityType, action domain.EntityActionType, ctx ValidationContext) (ArgPattern, error) {
	var bestErr error
	bestProgress := -1
	for _, p := range patterns {
		ok, progress, err := matchPattern(args, p, entity, action, ctx)
		if ok {
			return p, nil
		}
		if progress > bestProgress {
			bestProgress = progress
			bestErr = err
		}
	}
	if bestErr == nil {
		bestErr = perr.Parse("No usage pattern found for %s %s.", action, entity)
	}
	return ArgPattern{}, bestErr
}

// ColumnIndexer walks a matched argument list slot by slot so a builder can
// pull typed values out in pattern order without re-deriving positions.
type ColumnIndexer struct {
	args []argtok.Arg
	idx  int
}

func NewColumnIndexer(args []argtok.Arg) *ColumnIndexer {
	return &ColumnIndexer{args: args}
}

// Advance consumes and returns the next argument unconditionally. It is a
// programmer error to call it past a successfully matched pattern's length,
// so it panics rather than returning an error — by construction the caller
// already knows, from AssertMatchesPattern succeeding, exactly how many
// arguments are present for each required slot.
func (c *ColumnIndexer) Advance() argtok.Arg {
	a := c.args[c.idx]
	c.idx++
	return a
}

// Peek reports whether another argument remains without consuming it.
func (c *ColumnIndexer) Peek() (argtok.Arg, bool) {
	if c.idx >= len(c.args) {
		return argtok.Arg{}, false
	}
	return c.args[c.idx], true
}

// NextOpt consumes the next argument only if it matches kind; otherwise it
// leaves the cursor untouched and reports absence, used for optional slots
// that may or may not have been supplied.
func (c *ColumnIndexer) NextOpt(kind argtok.Kind) (argtok.Arg, bool) {
	a, ok := c.Peek()
	if !ok || a.Kind != kind {
		return argtok.Arg{}, false
	}
	c.idx++
	return a, true
}

func (c *ColumnIndexer) String() string {
	return fmt.Sprintf("ColumnIndexer(idx=%d, len=%d)", c.idx, len(c.args))
}
