// Package argtok defines planit's typed command argument (the Arg sum
// type), how raw whitespace/quote-tokenized strings become Args, and how
// Args round-trip back to tokens for save-file emission.
package argtok

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/khalidh223/planit/internal/domain"
	"github.com/khalidh223/planit/internal/perr"
)

// Kind identifies which field of an Arg is populated.
type Kind int

const (
	KindName Kind = iota
	KindDaysOfWeek
	KindEntityType
	KindAtSymbol
	KindCardColor
	KindFlag
	KindBool
	KindInt
	KindTimeRange
	KindDate
	KindCardColorId
)

// Arg is the typed value produced by tokenizing and classifying one raw
// command-line token (or, for quoted names, a run of tokens).
type Arg struct {
	Kind      Kind
	Name      string
	Days      []domain.DayOfWeek
	Entity    domain.EntityType
	Color     domain.CardColor
	Flag      domain.Flag
	BoolVal   domain.Bool
	Int       int32
	TimeRange domain.TimeRange
	Date      domain.Date
}

func NewName(s string) Arg                     { return Arg{Kind: KindName, Name: s} }
func NewDaysOfWeek(d []domain.DayOfWeek) Arg    { return Arg{Kind: KindDaysOfWeek, Days: d} }
func NewEntityType(e domain.EntityType) Arg     { return Arg{Kind: KindEntityType, Entity: e} }
func NewAtSymbol() Arg                          { return Arg{Kind: KindAtSymbol} }
func NewCardColor(c domain.CardColor) Arg       { return Arg{Kind: KindCardColor, Color: c} }
func NewFlag(f domain.Flag) Arg                 { return Arg{Kind: KindFlag, Flag: f} }
func NewBool(b domain.Bool) Arg                 { return Arg{Kind: KindBool, BoolVal: b} }
func NewInt(i int32) Arg                        { return Arg{Kind: KindInt, Int: i} }
func NewTimeRange(tr domain.TimeRange) Arg      { return Arg{Kind: KindTimeRange, TimeRange: tr} }
func NewDate(d domain.Date) Arg                 { return Arg{Kind: KindDate, Date: d} }
func NewCardColorID(i int32) Arg                { return Arg{Kind: KindCardColorId, Int: i} }

// ToTokens renders the Arg back into the raw tokens that would reparse to
// an equal value, used when emitting a save file.
func (a Arg) ToTokens() []string {
	switch a.Kind {
	case KindName:
		return []string{fmt.Sprintf("%q", a.Name)}
	case KindDaysOfWeek:
		parts := make([]string, len(a.Days))
		for i, d := range a.Days {
			parts[i] = d.String()
		}
		return []string{strings.Join(parts, ",")}
	case KindEntityType:
		return []string{a.Entity.String()}
	case KindAtSymbol:
		return []string{"@"}
	case KindCardColor:
		return []string{a.Color.String()}
	case KindFlag:
		return []string{a.Flag.String()}
	case KindBool:
		return []string{a.BoolVal.String()}
	case KindInt:
		return []string{strconv.FormatInt(int64(a.Int), 10)}
	case KindTimeRange:
		return []string{a.TimeRange.String()}
	case KindDate:
		return []string{a.Date.String()}
	case KindCardColorId:
		return []string{"+C" + strconv.FormatInt(int64(a.Int), 10)}
	default:
		return nil
	}
}

func (a Arg) String() string { return strings.Join(a.ToTokens(), " ") }

// Factory classifies one raw token into an Arg, or reports that the token
// doesn't belong to its Kind.
type Factory interface {
	Kind() Kind
	TryParse(raw string) (Arg, bool)
}

// factories is ordered exactly per the grammar's fixed priority table:
// Name, EntityType, AtSymbol, CardColor, Flag, Bool, Int, DaysOfWeek,
// TimeRange, Date, CardColorId. Name only matches quoted text, so it can
// sit first without swallowing everything else.
var factories = []Factory{
	nameFactory{},
	entityTypeFactory{},
	atSymbolFactory{},
	cardColorFactory{},
	flagFactory{},
	boolFactory{},
	intFactory{},
	daysOfWeekFactory{},
	timeRangeFactory{},
	dateFactory{},
	cardColorIdFactory{},
}

type atSymbolFactory struct{}

func (atSymbolFactory) Kind() Kind { return KindAtSymbol }
func (atSymbolFactory) TryParse(raw string) (Arg, bool) {
	if raw == "@" {
		return NewAtSymbol(), true
	}
	return Arg{}, false
}

type flagFactory struct{}

func (flagFactory) Kind() Kind { return KindFlag }
func (flagFactory) TryParse(raw string) (Arg, bool) {
	f, err := domain.ParseFlag(raw)
	if err != nil {
		return Arg{}, false
	}
	return NewFlag(f), true
}

type boolFactory struct{}

func (boolFactory) Kind() Kind { return KindBool }
func (boolFactory) TryParse(raw string) (Arg, bool) {
	b, err := domain.ParseBool(raw)
	if err != nil {
		return Arg{}, false
	}
	return NewBool(b), true
}

type cardColorFactory struct{}

func (cardColorFactory) Kind() Kind { return KindCardColor }
func (cardColorFactory) TryParse(raw string) (Arg, bool) {
	c, err := domain.ParseCardColor(raw)
	if err != nil {
		return Arg{}, false
	}
	return NewCardColor(c), true
}

type entityTypeFactory struct{}

func (entityTypeFactory) Kind() Kind { return KindEntityType }
func (entityTypeFactory) TryParse(raw string) (Arg, bool) {
	e, err := domain.ParseEntityType(raw)
	if err != nil {
		return Arg{}, false
	}
	return NewEntityType(e), true
}

type daysOfWeekFactory struct{}

func (daysOfWeekFactory) Kind() Kind { return KindDaysOfWeek }
func (daysOfWeekFactory) TryParse(raw string) (Arg, bool) {
	parts := strings.Split(raw, ",")
	days := make([]domain.DayOfWeek, 0, len(parts))
	for _, p := range parts {
		d, err := domain.ParseDayOfWeek(p)
		if err != nil {
			return Arg{}, false
		}
		days = append(days, d)
	}
	return NewDaysOfWeek(days), true
}

type timeRangeFactory struct{}

func (timeRangeFactory) Kind() Kind { return KindTimeRange }
func (timeRangeFactory) TryParse(raw string) (Arg, bool) {
	tr, err := domain.ParseTimeRange(raw)
	if err != nil {
		return Arg{}, false
	}
	return NewTimeRange(tr), true
}

type dateFactory struct{}

func (dateFactory) Kind() Kind { return KindDate }
func (dateFactory) TryParse(raw string) (Arg, bool) {
	d, err := domain.ParseDate(raw)
	if err != nil {
		return Arg{}, false
	}
	return NewDate(d), true
}

type intFactory struct{}

func (intFactory) Kind() Kind { return KindInt }
func (intFactory) TryParse(raw string) (Arg, bool) {
	i, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return Arg{}, false
	}
	return NewInt(int32(i)), true
}

type nameFactory struct{}

func (nameFactory) Kind() Kind { return KindName }

// TryParse matches a token wrapped in matching single or double quotes
// with non-empty interior text, mirroring the grammar's quoted-name rule.
func (nameFactory) TryParse(raw string) (Arg, bool) {
	if len(raw) < 2 {
		return Arg{}, false
	}
	q := raw[0]
	if q != '\'' && q != '"' {
		return Arg{}, false
	}
	if raw[len(raw)-1] != q {
		return Arg{}, false
	}
	inner := raw[1 : len(raw)-1]
	if inner == "" {
		return Arg{}, false
	}
	return NewName(inner), true
}

type cardColorIdFactory struct{}

func (cardColorIdFactory) Kind() Kind { return KindCardColorId }
func (cardColorIdFactory) TryParse(raw string) (Arg, bool) {
	rest, ok := strings.CutPrefix(raw, "+C")
	if !ok || rest == "" {
		return Arg{}, false
	}
	i, err := strconv.ParseInt(rest, 10, 32)
	if err != nil {
		return Arg{}, false
	}
	return NewCardColorID(int32(i)), true
}

// Classify runs every factory in priority order and returns the first
// match, falling back to an unquoted Name if nothing else matched —
// unsuitability for a given command is caught later during pattern
// matching against the command's ArgSlots.
func Classify(raw string) Arg {
	for _, f := range factories {
		if a, ok := f.TryParse(raw); ok {
			return a
		}
	}
	return NewName(raw)
}

// Tokenize splits a raw command line into tokens, treating a single- or
// double-quoted run as a single token (preserving the quotes so Classify
// can recognize and strip them) and otherwise splitting on whitespace.
func Tokenize(line string) ([]string, error) {
	var tokens []string
	var cur strings.Builder
	var quote rune
	inQuotes := false
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for _, r := range line {
		switch {
		case inQuotes && r == quote:
			cur.WriteRune(r)
			inQuotes = false
		case !inQuotes && (r == '"' || r == '\''):
			cur.WriteRune(r)
			inQuotes = true
			quote = r
		case unicode.IsSpace(r) && !inQuotes:
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	if inQuotes {
		return nil, perr.Parse("Unterminated quoted argument.")
	}
	flush()
	return tokens, nil
}

// ClassifyTokens classifies an already-tokenized argument list.
func ClassifyTokens(tokens []string) []Arg {
	args := make([]Arg, len(tokens))
	for i, t := range tokens {
		args[i] = Classify(t)
	}
	return args
}

// ClassifyAll tokenizes and classifies an entire raw argument string.
func ClassifyAll(raw string) ([]Arg, error) {
	tokens, err := Tokenize(raw)
	if err != nil {
		return nil, err
	}
	return ClassifyTokens(tokens), nil
}
