package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/khalidh223/planit/internal/domain"
)

// SubTask is one placed slice of a Task's total hours, sitting in a
// specific day's free block.
type SubTask struct {
	TaskID    int32
	Date      domain.Date
	TimeRange domain.TimeRange
	Overflow  bool
}

// Hours returns the slice's duration.
func (s SubTask) Hours() float64 { return s.TimeRange.Hours() }

func (s SubTask) String() string {
	return fmt.Sprintf("%s: %s", s.Date, s.TimeRange)
}

// Task is a unit of work with a due date and a total hour budget that the
// scheduler slices into SubTasks across the planning window.
type Task struct {
	IDVal          int32
	Name           string
	Hours          float64
	Date           domain.Date
	CardID         *int32
	Subtasks       []SubTask
	RemainingHours float64
}

func NewTask(name string, hours float64, cardID *int32, date domain.Date) *Task {
	h := maxFloat(hours, 0)
	return &Task{
		Name:           name,
		Hours:          h,
		Date:           date,
		CardID:         cardID,
		RemainingHours: h,
	}
}

func (t *Task) ID() int32      { return t.IDVal }
func (t *Task) SetID(id int32) { t.IDVal = id }

// Modify replaces the task's identity fields and, per the original
// semantics, discards all previously placed subtasks: a modified task is
// rescheduled from scratch on the next `schedule` run.
func (t *Task) Modify(name string, hours float64, cardID *int32, date domain.Date) {
	h := maxFloat(hours, 0)
	t.Name = name
	t.Hours = h
	t.Date = date
	t.CardID = cardID
	t.RemainingHours = h
	t.Subtasks = nil
}

// PushSubtaskWithHours records a placement of up to `hours` (clamped to
// what remains) into the given time range and day, and decrements
// RemainingHours accordingly.
func (t *Task) PushSubtaskWithHours(tr domain.TimeRange, date domain.Date, hours float64) {
	apply := maxFloat(hours, 0)
	if apply > t.RemainingHours {
		apply = t.RemainingHours
	}
	t.Subtasks = append(t.Subtasks, SubTask{
		TaskID:    t.IDVal,
		Date:      date,
		TimeRange: tr,
	})
	t.RemainingHours -= apply
}

func (t *Task) Clone() *Task {
	cp := *t
	cp.Subtasks = append([]SubTask(nil), t.Subtasks...)
	return &cp
}

func (t *Task) String() string {
	subtasks := "Not Scheduled"
	if len(t.Subtasks) > 0 {
		parts := make([]string, len(t.Subtasks))
		for i, s := range t.Subtasks {
			parts[i] = s.String()
		}
		subtasks = strings.Join(parts, ", ")
	}
	var cardID string
	if t.CardID != nil {
		cardID = fmt.Sprintf("Some(%d)", *t.CardID)
	} else {
		cardID = "None"
	}
	return fmt.Sprintf("Task(id=%d, name='%s', hours=%s, date=%s, card_id=%s, subtasks=%s)",
		t.IDVal, t.Name, formatHours(t.Hours), t.Date, cardID, subtasks)
}

// FreeTimeBlock is an open window of unscheduled time on a given day.
type FreeTimeBlock struct {
	Start          domain.Date
	StartTime      domain.TimeOfDay
	EndTime        domain.TimeOfDay
	RemainingHours float64
}

func NewFreeTimeBlock(date domain.Date, start, end domain.TimeOfDay) FreeTimeBlock {
	hrs := float64(end.Minutes-start.Minutes) / 60.0
	return FreeTimeBlock{Start: date, StartTime: start, EndTime: end, RemainingHours: maxFloat(hrs, 0)}
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// formatHours renders a fractional hour count the way Rust's f32 Display
// does: integral values drop the decimal point entirely.
func formatHours(h float64) string {
	if h == float64(int64(h)) {
		return strconv.FormatInt(int64(h), 10)
	}
	return strconv.FormatFloat(h, 'g', -1, 64)
}
