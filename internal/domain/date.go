package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/khalidh223/planit/internal/perr"
)

// Date is a calendar day, always normalized to midnight UTC-free local time
// so date arithmetic never has to think about time-of-day.
type Date struct {
	T time.Time
}

func NewDate(t time.Time) Date {
	return Date{T: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)}
}

func (d Date) String() string { return d.T.Format("2006-01-02") }

func (d Date) Before(o Date) bool { return d.T.Before(o.T) }
func (d Date) After(o Date) bool  { return d.T.After(o.T) }
func (d Date) Equal(o Date) bool  { return d.T.Equal(o.T) }
func (d Date) AddDays(n int) Date { return NewDate(d.T.AddDate(0, 0, n)) }
func (d Date) Weekday() DayOfWeek { return FromTimeWeekday(d.T.Weekday()) }

// Today returns the current calendar day.
func Today() Date { return NewDate(time.Now()) }

// ParseDate accepts six textual forms, mirroring the original grammar:
//
//	Y-m-d, m-d-Y, Y/m/d, m/d/Y, m-d, m/d
//
// Slash-separated forms are normalized to dashes before matching. A
// month/day-only form is completed with the current year.
func ParseDate(raw string) (Date, error) {
	normalized := toDashSeparators(raw)

	if t, err := time.Parse("2006-01-02", normalized); err == nil {
		return NewDate(t), nil
	}
	if t, err := time.Parse("01-02-2006", normalized); err == nil {
		return NewDate(t), nil
	}
	if t, ok := parseMonthDayOnly(normalized); ok {
		return NewDate(t), nil
	}
	return Date{}, perr.Parse("'%s' is not a valid date. Valid formats: YYYY-MM-DD, MM-DD-YYYY, YYYY/MM/DD, MM/DD/YYYY, MM-DD, MM/DD", raw)
}

func toDashSeparators(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "/", "-")
}

func parseMonthDayOnly(normalized string) (time.Time, bool) {
	parts := strings.Split(normalized, "-")
	if len(parts) != 2 {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, false
	}
	withYear := fmt.Sprintf("%04d-%02d-%02d", time.Now().Year(), month, day)
	t, err := time.Parse("2006-01-02", withYear)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ValidDateFormatsHelp is printed by the bare `date` command.
const ValidDateFormatsHelp = "Valid date formats: YYYY-MM-DD, MM-DD-YYYY, YYYY/MM/DD, MM/DD/YYYY, MM-DD, MM/DD (MM-DD forms use the current year)."
