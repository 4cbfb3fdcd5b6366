package model

import (
	"fmt"
	"strings"

	"github.com/khalidh223/planit/internal/domain"
)

// Event is a (possibly recurring) calendar block that competes with tasks
// for time in the scheduler's daily free blocks.
type Event struct {
	IDVal     int32
	Name      string
	Days      []domain.DayOfWeek
	TimeRange domain.TimeRange
	Recurring bool
	CardID    *int32
}

func NewEvent(recurring bool, name string, cardID *int32, days []domain.DayOfWeek, tr domain.TimeRange) *Event {
	return &Event{
		Name:      name,
		CardID:    cardID,
		Days:      days,
		TimeRange: tr,
		Recurring: recurring,
	}
}

func (e *Event) ID() int32      { return e.IDVal }
func (e *Event) SetID(id int32) { e.IDVal = id }

func (e *Event) Modify(recurring bool, name string, cardID *int32, days []domain.DayOfWeek, tr domain.TimeRange) {
	e.Recurring = recurring
	e.Name = name
	e.Days = days
	e.TimeRange = tr
	e.CardID = cardID
}

func (e *Event) Clone() *Event {
	cp := *e
	cp.Days = append([]domain.DayOfWeek(nil), e.Days...)
	return &cp
}

// Hours returns the event's duration in fractional hours.
func (e *Event) Hours() float64 { return e.TimeRange.Hours() }

// IsActiveOnDate reports whether the event occurs on the given date's
// weekday.
func (e *Event) IsActiveOnDate(d domain.Date) bool {
	target := d.Weekday()
	for _, day := range e.Days {
		if day == target {
			return true
		}
	}
	return false
}

func (e *Event) String() string {
	days := make([]string, len(e.Days))
	for i, d := range e.Days {
		days[i] = d.String()
	}
	var cardID string
	if e.CardID != nil {
		cardID = fmt.Sprintf("Some(%d)", *e.CardID)
	} else {
		cardID = "None"
	}
	return fmt.Sprintf("Event(id=%d, name='%s', date=[%s], time_range=%s, recurring=%s, card_id=%s)",
		e.IDVal, e.Name, strings.Join(days, ", "), e.TimeRange, domain.Bool(e.Recurring), cardID)
}
