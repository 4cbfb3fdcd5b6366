package domain

import (
	"strings"

	"github.com/khalidh223/planit/internal/perr"
)

// Bool is a closed grammar type distinct from Go's native bool: it accepts
// the literal tokens "true"/"True"/"false"/"False" and always displays as
// "True"/"False".
type Bool bool

func (b Bool) String() string {
	if b {
		return "True"
	}
	return "False"
}

// ParseBool matches a single token against the four accepted spellings.
func ParseBool(token string) (Bool, error) {
	switch token {
	case "true", "True":
		return Bool(true), nil
	case "false", "False":
		return Bool(false), nil
	default:
		return false, perr.Parse("'%s' is not a valid bool. Valid bools: true, True, false, False", token)
	}
}

// Flag represents the recognized -h/-help tokens that short-circuit a
// command into printing its own usage.
type Flag int

const (
	Help Flag = iota
)

func (f Flag) String() string {
	switch f {
	case Help:
		return "-h"
	default:
		return ""
	}
}

// ParseFlag matches "-h" or "-help".
func ParseFlag(token string) (Flag, error) {
	switch strings.ToLower(token) {
	case "-h", "-help":
		return Help, nil
	default:
		return 0, perr.Parse("'%s' is not a valid flag", token)
	}
}
