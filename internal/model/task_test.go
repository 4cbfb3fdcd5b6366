package model

import "testing"

func TestNewTask_ClampsNegativeHoursToZero(t *testing.T) {
	task := NewTask("Write report", -3, nil, mustDate(t, "2026-03-05"))
	if task.Hours != 0 || task.RemainingHours != 0 {
		t.Errorf("got hours=%v remaining=%v, want both 0", task.Hours, task.RemainingHours)
	}
}

func TestNewTask_RemainingHoursStartsAtFullHours(t *testing.T) {
	task := NewTask("Write report", 4, nil, mustDate(t, "2026-03-05"))
	if task.RemainingHours != 4 {
		t.Errorf("got %v, want 4", task.RemainingHours)
	}
}

func TestTask_Modify_ResetsSubtasksAndRemainingHours(t *testing.T) {
	task := NewTask("Write report", 4, nil, mustDate(t, "2026-03-05"))
	task.PushSubtaskWithHours(mustRange(t, "9am-11am"), mustDate(t, "2026-03-04"), 2)
	if len(task.Subtasks) == 0 {
		t.Fatal("expected a subtask to have been pushed")
	}

	task.Modify("Write report v2", 6, nil, mustDate(t, "2026-03-06"))
	if len(task.Subtasks) != 0 {
		t.Error("expected Modify to clear previously placed subtasks")
	}
	if task.RemainingHours != 6 {
		t.Errorf("got %v, want 6", task.RemainingHours)
	}
}

func TestTask_PushSubtaskWithHours_ClampsToRemaining(t *testing.T) {
	task := NewTask("Write report", 2, nil, mustDate(t, "2026-03-05"))
	task.PushSubtaskWithHours(mustRange(t, "9am-5pm"), mustDate(t, "2026-03-05"), 8)
	if task.RemainingHours != 0 {
		t.Errorf("got %v, want 0 (clamped to the 2 hours actually available)", task.RemainingHours)
	}
}

func TestTask_Clone_IsIndependent(t *testing.T) {
	task := NewTask("Write report", 4, nil, mustDate(t, "2026-03-05"))
	task.PushSubtaskWithHours(mustRange(t, "9am-11am"), mustDate(t, "2026-03-05"), 2)
	clone := task.Clone()
	clone.Subtasks[0].Overflow = true
	if task.Subtasks[0].Overflow {
		t.Error("expected mutating the clone's subtasks not to affect the original")
	}
}

func TestTask_String_NotScheduled(t *testing.T) {
	task := NewTask("Write report", 4, nil, mustDate(t, "2026-03-05"))
	task.SetID(1)
	if got := task.String(); !contains(got, "Not Scheduled") {
		t.Errorf("got %q, expected it to report Not Scheduled", got)
	}
}

func TestTask_String_IntegralHoursDropDecimal(t *testing.T) {
	task := NewTask("Write report", 4, nil, mustDate(t, "2026-03-05"))
	task.SetID(1)
	if got := task.String(); !contains(got, "hours=4,") {
		t.Errorf("got %q, expected integral hours to render without a decimal point", got)
	}
}

func TestTask_String_FractionalHoursKeepDecimal(t *testing.T) {
	task := NewTask("Write report", 2.5, nil, mustDate(t, "2026-03-05"))
	task.SetID(1)
	if got := task.String(); !contains(got, "hours=2.5,") {
		t.Errorf("got %q, expected fractional hours to keep the decimal point", got)
	}
}

func TestNewFreeTimeBlock_ComputesRemainingHours(t *testing.T) {
	tr := mustRange(t, "9am-5pm")
	block := NewFreeTimeBlock(mustDate(t, "2026-03-05"), tr.Start, tr.End)
	if block.RemainingHours != 8 {
		t.Errorf("got %v, want 8", block.RemainingHours)
	}
}

func TestNewFreeTimeBlock_NegativeSpanClampsToZero(t *testing.T) {
	tr := mustRange(t, "9am-5pm")
	block := NewFreeTimeBlock(mustDate(t, "2026-03-05"), tr.End, tr.Start)
	if block.RemainingHours != 0 {
		t.Errorf("got %v, want 0", block.RemainingHours)
	}
}
