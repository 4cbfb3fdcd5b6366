package appconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return path
}

const validFixture = `{
  "range": "9am-5pm",
  "task_overflow_policy": "allow",
  "task_scheduling_order": "due-only",
  "schedule_start_date": "2026-03-01",
  "file_logging_enabled": true
}`

func TestLoad_ValidFile(t *testing.T) {
	path := writeFixture(t, validFixture)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DailyRange().String() != "9:00AM-5:00PM" {
		t.Errorf("got %v", cfg.DailyRange())
	}
	if !cfg.FileLoggingEnabled() {
		t.Error("expected file logging to be enabled")
	}
	if cfg.ScheduleStartDate().String() != "2026-03-01" {
		t.Errorf("got %v", cfg.ScheduleStartDate())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "nope.json")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := writeFixture(t, "{not json")
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for invalid JSON")
	}
}

func TestLoad_InvalidRange(t *testing.T) {
	path := writeFixture(t, `{"range": "nonsense", "task_overflow_policy": "allow", "task_scheduling_order": "due-only"}`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for an invalid time range")
	}
}

func TestLoad_InvalidOverflowPolicy(t *testing.T) {
	path := writeFixture(t, `{"range": "9am-5pm", "task_overflow_policy": "nonsense", "task_scheduling_order": "due-only"}`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for an invalid overflow policy")
	}
}

func TestLoad_DefaultsWhenOptionalFieldsOmitted(t *testing.T) {
	path := writeFixture(t, `{"range": "9am-5pm", "task_overflow_policy": "block", "task_scheduling_order": "shortest-task-first"}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.FileLoggingEnabled() {
		t.Error("expected file logging to default to enabled")
	}
	if cfg.ScheduleStartDate() != cfg.ScheduleStartDate() {
		t.Error("expected ScheduleStartDate to be stable when unset")
	}
}

func TestSetKey_AndSave_RoundTrips(t *testing.T) {
	path := writeFixture(t, validFixture)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cfg.SetKey(KeyTaskOverflowPolicy, "block"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error reloading: %v", err)
	}
	if reloaded.TaskOverflowPolicy().String() != "hard-block" {
		t.Errorf("got %v, want hard-block after round trip", reloaded.TaskOverflowPolicy())
	}
}

func TestSet_UnknownKeyErrors(t *testing.T) {
	path := writeFixture(t, validFixture)
	cfg, _ := Load(path)
	if err := cfg.Set("NOT_A_KEY", "x"); err == nil {
		t.Fatal("expected an error for an unknown key")
	}
}

func TestSetKey_ScheduleStartDate_EmptyClears(t *testing.T) {
	path := writeFixture(t, validFixture)
	cfg, _ := Load(path)
	if err := cfg.SetKey(KeyScheduleStartDate, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ScheduleStartDate().String() == "2026-03-01" {
		t.Error("expected clearing the start date to fall back to today, not the old value")
	}
}

func TestSetMany_AppliesAllThenPersistsOnce(t *testing.T) {
	path := writeFixture(t, validFixture)
	cfg, _ := Load(path)
	err := cfg.SetMany(map[string]string{
		"RANGE":                 "8am-6pm",
		"TASK_SCHEDULING_ORDER": "longest-task-first",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error reloading: %v", err)
	}
	if reloaded.DailyRange().String() != "8:00AM-6:00PM" {
		t.Errorf("got %v", reloaded.DailyRange())
	}
	if reloaded.TaskSchedulingOrder().String() != "longest-task-first" {
		t.Errorf("got %v", reloaded.TaskSchedulingOrder())
	}
}

func TestRows_IncludesEveryKey(t *testing.T) {
	path := writeFixture(t, validFixture)
	cfg, _ := Load(path)
	rows := cfg.Rows()
	if len(rows) != 5 {
		t.Fatalf("got %d rows, want 5", len(rows))
	}
	if rows[0].Key != KeyRange || rows[0].Value != "9:00AM-5:00PM" {
		t.Errorf("got %+v", rows[0])
	}
}
