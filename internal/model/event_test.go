package model

import (
	"testing"

	"github.com/khalidh223/planit/internal/domain"
)

func mustRange(t *testing.T, raw string) domain.TimeRange {
	t.Helper()
	tr, err := domain.ParseTimeRange(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tr
}

func mustDate(t *testing.T, raw string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return d
}

func TestNewEvent_Fields(t *testing.T) {
	tr := mustRange(t, "9am-10am")
	e := NewEvent(true, "Standup", nil, []domain.DayOfWeek{domain.Mon}, tr)
	if e.Name != "Standup" || !e.Recurring || e.CardID != nil {
		t.Errorf("got %+v", e)
	}
}

func TestEvent_Clone_CopiesDaysIndependently(t *testing.T) {
	tr := mustRange(t, "9am-10am")
	e := NewEvent(true, "Standup", nil, []domain.DayOfWeek{domain.Mon}, tr)
	clone := e.Clone()
	clone.Days[0] = domain.Fri
	if e.Days[0] != domain.Mon {
		t.Errorf("expected the original's Days slice to be unaffected, got %v", e.Days)
	}
}

func TestEvent_Hours(t *testing.T) {
	tr := mustRange(t, "9am-11am")
	e := NewEvent(true, "Standup", nil, domain.AllDaysOfWeek(), tr)
	if e.Hours() != 2 {
		t.Errorf("got %v, want 2", e.Hours())
	}
}

func TestEvent_IsActiveOnDate(t *testing.T) {
	tr := mustRange(t, "9am-10am")
	e := NewEvent(false, "Dentist", nil, []domain.DayOfWeek{domain.Mon}, tr)

	monday := mustDate(t, "2026-03-02")
	tuesday := mustDate(t, "2026-03-03")
	if !e.IsActiveOnDate(monday) {
		t.Error("expected the event to be active on Monday")
	}
	if e.IsActiveOnDate(tuesday) {
		t.Error("did not expect the event to be active on Tuesday")
	}
}

func TestEvent_Modify(t *testing.T) {
	tr := mustRange(t, "9am-10am")
	e := NewEvent(false, "Dentist", nil, []domain.DayOfWeek{domain.Mon}, tr)
	newTR := mustRange(t, "1pm-2pm")
	cardID := int32(1)
	e.Modify(true, "Standup", &cardID, domain.AllDaysOfWeek(), newTR)
	if e.Name != "Standup" || !e.Recurring || e.CardID == nil || *e.CardID != 1 || e.TimeRange != newTR {
		t.Errorf("got %+v", e)
	}
}

func TestEvent_String_NoCardID(t *testing.T) {
	tr := mustRange(t, "9am-10am")
	e := NewEvent(false, "Dentist", nil, []domain.DayOfWeek{domain.Mon}, tr)
	e.SetID(1)
	if got := e.String(); got == "" {
		t.Fatal("expected a non-empty description")
	} else if !contains(got, "card_id=None") {
		t.Errorf("got %q, expected it to report card_id=None", got)
	}
}

func TestEvent_String_WithCardID(t *testing.T) {
	tr := mustRange(t, "9am-10am")
	cardID := int32(3)
	e := NewEvent(false, "Dentist", &cardID, []domain.DayOfWeek{domain.Mon}, tr)
	e.SetID(1)
	if got := e.String(); !contains(got, "card_id=Some(3)") {
		t.Errorf("got %q, expected it to report card_id=Some(3)", got)
	}
}

func contains(haystack, needle string) bool {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return true
		}
	}
	return false
}
