package appctx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/khalidh223/planit/internal/domain"
	"github.com/khalidh223/planit/internal/model"
)

const fixtureConfig = `{
  "range": "9am-5pm",
  "task_overflow_policy": "allow",
  "task_scheduling_order": "due-only",
  "file_logging_enabled": false
}`

func newTestContext(t *testing.T) *AppContext {
	t.Helper()
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.json")
	if err := os.WriteFile(configPath, []byte(fixtureConfig), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, err := NewWithPaths(configPath, filepath.Join(dir, "schedules"), filepath.Join(dir, "logs"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return ctx
}

func TestNewWithPaths_WiresEmptyRepositoriesAndConfig(t *testing.T) {
	ctx := newTestContext(t)
	if ctx.Cards == nil || ctx.Events == nil || ctx.Tasks == nil {
		t.Fatal("expected all three repositories to be initialized")
	}
	if ctx.Config == nil {
		t.Fatal("expected config to be loaded")
	}
	if ctx.DailyRange().String() != "9:00AM-5:00PM" {
		t.Errorf("got %v", ctx.DailyRange())
	}
}

func TestNewWithPaths_MissingConfigPropagatesError(t *testing.T) {
	dir := t.TempDir()
	_, err := NewWithPaths(filepath.Join(dir, "nope.json"), dir, dir)
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestCardExists_FalseForUnknownID(t *testing.T) {
	ctx := newTestContext(t)
	if ctx.CardExists(1) {
		t.Error("expected no card to exist in a fresh context")
	}
}

func TestCardExists_TrueOnceStaged(t *testing.T) {
	ctx := newTestContext(t)
	red, err := domain.ParseCardColor("red")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx.Cards.BeginStage(false)
	id, err := ctx.Cards.Insert(model.NewCard("Personal", red))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ctx.CardExists(id) {
		t.Error("expected the staged card to exist before the stage is applied")
	}
}

func TestTaskOverflowPolicy_DelegatesToConfig(t *testing.T) {
	ctx := newTestContext(t)
	if ctx.TaskOverflowPolicy().String() != "allow" {
		t.Errorf("got %v", ctx.TaskOverflowPolicy())
	}
}

func TestTaskSchedulingOrder_DelegatesToConfig(t *testing.T) {
	ctx := newTestContext(t)
	if ctx.TaskSchedulingOrder().String() != "due-only" {
		t.Errorf("got %v", ctx.TaskSchedulingOrder())
	}
}

func TestScheduleStartDate_DefaultsToToday(t *testing.T) {
	ctx := newTestContext(t)
	if got, want := ctx.ScheduleStartDate().String(), domain.Today().String(); got != want {
		t.Errorf("got %s, want today's date %s", got, want)
	}
}
