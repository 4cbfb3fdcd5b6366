package domain

import (
	"strings"
	"time"

	"github.com/khalidh223/planit/internal/perr"
)

// DayOfWeek is a closed grammar type: it accepts a wide set of
// case-insensitive aliases (full name, three-letter abbreviation with or
// without a trailing dot, and a handful of bare single/double-letter
// shorthands) and always renders back out as an uppercase three-letter code.
type DayOfWeek int

const (
	Mon DayOfWeek = iota
	Tue
	Wed
	Thu
	Fri
	Sat
	Sun
)

var dayOfWeekAliases = map[DayOfWeek][]string{
	Mon: {"mon", "monday", "mon.", "m"},
	Tue: {"tue", "tuesday", "tue.", "t"},
	Wed: {"wed", "wednesday", "wed.", "w"},
	Thu: {"thu", "thursday", "thu.", "th"},
	Fri: {"fri", "friday", "fri.", "f"},
	Sat: {"sat", "saturday", "sat.", "sa"},
	Sun: {"sun", "sunday", "sun.", "su"},
}

var allDaysOfWeek = []DayOfWeek{Mon, Tue, Wed, Thu, Fri, Sat, Sun}

// AllDaysOfWeek returns the seven days in canonical order.
func AllDaysOfWeek() []DayOfWeek {
	out := make([]DayOfWeek, len(allDaysOfWeek))
	copy(out, allDaysOfWeek)
	return out
}

func (d DayOfWeek) String() string {
	switch d {
	case Mon:
		return "MON"
	case Tue:
		return "TUE"
	case Wed:
		return "WED"
	case Thu:
		return "THU"
	case Fri:
		return "FRI"
	case Sat:
		return "SAT"
	default:
		return "SUN"
	}
}

// ParseDayOfWeek matches a single comma-free token against every alias,
// lower-cased, for every day.
func ParseDayOfWeek(token string) (DayOfWeek, error) {
	lower := strings.ToLower(strings.TrimSpace(token))
	for day, aliases := range dayOfWeekAliases {
		for _, a := range aliases {
			if a == lower {
				return day, nil
			}
		}
	}
	return 0, perr.Parse("'%s' is not a valid day of week. Valid days of week: %s", token, ValidDaysOfWeekCSV())
}

// ValidDaysOfWeekCSV lists the canonical display form of every day,
// comma-separated, for error messages.
func ValidDaysOfWeekCSV() string {
	parts := make([]string, 0, len(allDaysOfWeek))
	for _, d := range allDaysOfWeek {
		parts = append(parts, d.String())
	}
	return strings.Join(parts, ", ")
}

// FromTimeWeekday converts a standard library weekday into a DayOfWeek.
func FromTimeWeekday(w time.Weekday) DayOfWeek {
	switch w {
	case time.Monday:
		return Mon
	case time.Tuesday:
		return Tue
	case time.Wednesday:
		return Wed
	case time.Thursday:
		return Thu
	case time.Friday:
		return Fri
	case time.Saturday:
		return Sat
	default:
		return Sun
	}
}
