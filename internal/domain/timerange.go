package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/khalidh223/planit/internal/perr"
)

// TimeOfDay is a minute-resolution clock time, 0..=1439 minutes past
// midnight.
type TimeOfDay struct {
	Minutes int
}

func (t TimeOfDay) hour24() int   { return t.Minutes / 60 }
func (t TimeOfDay) minute() int   { return t.Minutes % 60 }
func (t TimeOfDay) Before(o TimeOfDay) bool { return t.Minutes < o.Minutes }

func (t TimeOfDay) String() string {
	h := t.hour24()
	meridian := "AM"
	h12 := h
	if h == 0 {
		h12 = 12
	} else if h == 12 {
		meridian = "PM"
	} else if h > 12 {
		h12 = h - 12
		meridian = "PM"
	}
	return fmt.Sprintf("%d:%02d%s", h12, t.minute(), meridian)
}

// TimeRange is a half-open [Start, End) clock interval within a single day.
type TimeRange struct {
	Start TimeOfDay
	End   TimeOfDay
}

func (tr TimeRange) String() string {
	return fmt.Sprintf("%s-%s", tr.Start, tr.End)
}

// Hours returns the duration of the range in fractional hours.
func (tr TimeRange) Hours() float64 {
	return float64(tr.End.Minutes-tr.Start.Minutes) / 60.0
}

// ParseTimeRange accepts "<start>-<end>" where each side is one of
// "H:MMam", "Ham", "H:MM", or "H" (no leading zero on the hour). A missing
// meridian defaults to AM for the start side and PM for the end side; a
// missing minute component defaults to :00.
func ParseTimeRange(raw string) (TimeRange, error) {
	parts := strings.SplitN(raw, "-", 2)
	if len(parts) != 2 {
		return TimeRange{}, perr.Parse("'%s' is not a valid time range. %s", raw, ValidTimeFormatsHelp)
	}
	start, err := parseClockTime(parts[0], true)
	if err != nil {
		return TimeRange{}, perr.Parse("'%s' is not a valid time range. %s", raw, ValidTimeFormatsHelp)
	}
	end, err := parseClockTime(parts[1], false)
	if err != nil {
		return TimeRange{}, perr.Parse("'%s' is not a valid time range. %s", raw, ValidTimeFormatsHelp)
	}
	if start.Minutes >= end.Minutes {
		return TimeRange{}, perr.Parse("Time range start must be before end: %s-%s", start, end)
	}
	return TimeRange{Start: start, End: end}, nil
}

func parseClockTime(raw string, isStart bool) (TimeOfDay, error) {
	s := strings.TrimSpace(raw)
	upper := strings.ToUpper(s)

	meridian := ""
	if strings.HasSuffix(upper, "AM") {
		meridian = "AM"
		s = s[:len(s)-2]
	} else if strings.HasSuffix(upper, "PM") {
		meridian = "PM"
		s = s[:len(s)-2]
	}
	if meridian == "" {
		if isStart {
			meridian = "AM"
		} else {
			meridian = "PM"
		}
	}

	hourStr, minuteStr := s, "00"
	if idx := strings.Index(s, ":"); idx >= 0 {
		hourStr, minuteStr = s[:idx], s[idx+1:]
	}

	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour < 1 || hour > 12 {
		return TimeOfDay{}, perr.Parse("invalid hour in time %q", raw)
	}
	minute, err := strconv.Atoi(minuteStr)
	if err != nil || minute < 0 || minute > 59 {
		return TimeOfDay{}, perr.Parse("invalid minute in time %q", raw)
	}

	h24 := hour % 12
	if meridian == "PM" {
		h24 += 12
	}
	return TimeOfDay{Minutes: h24*60 + minute}, nil
}

// ValidTimeFormatsHelp is printed by the bare `time` command.
const ValidTimeFormatsHelp = "Valid time forms: H:MMam, Ham, H:MM, H (start defaults to AM, end defaults to PM when the meridian is omitted)."
