package command

import "strings"

// FlagDecision is what a FlagRule concluded about one command line.
type FlagDecision struct {
	ShortCircuit bool
	Message      string
}

// FlagRule inspects a tokenized command line and optionally short-circuits
// it into printing a message instead of being dispatched normally.
type FlagRule interface {
	Evaluate(tokens []string) (FlagDecision, bool)
}

// HelpAtIdx short-circuits when tokens[idx] is a help flag, rendering the
// manual entry for the command word at tokens[0] (or, for "mod"/"del"
// lines, the entity keyword one position later).
type HelpAtIdx struct {
	Idx int
}

func isHelpFlag(tok string) bool {
	lower := strings.ToLower(tok)
	return lower == "-h" || lower == "-help"
}

func (h HelpAtIdx) Evaluate(tokens []string) (FlagDecision, bool) {
	if h.Idx < 0 || h.Idx >= len(tokens) {
		return FlagDecision{}, false
	}
	if !isHelpFlag(tokens[h.Idx]) {
		return FlagDecision{}, false
	}
	return FlagDecision{ShortCircuit: true, Message: helpMessageFor(tokens)}, true
}

// FlagPolicy evaluates each of its rules in order and returns the first
// short-circuiting decision.
type FlagPolicy struct {
	Rules []FlagRule
}

func (p FlagPolicy) Evaluate(tokens []string) (FlagDecision, bool) {
	for _, r := range p.Rules {
		if d, ok := r.Evaluate(tokens); ok {
			return d, true
		}
	}
	return FlagDecision{}, false
}

// helpAtEveryPosition is used by the parser: a help flag can legally appear
// right after the command word, or right after an entity keyword that
// follows "mod"/"del".
func helpAtEveryPosition() FlagPolicy {
	return FlagPolicy{Rules: []FlagRule{HelpAtIdx{Idx: 1}, HelpAtIdx{Idx: 2}}}
}
