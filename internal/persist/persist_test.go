package persist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/khalidh223/planit/internal/domain"
	"github.com/khalidh223/planit/internal/model"
	"github.com/khalidh223/planit/internal/repo"
)

func stageAndApplyCard(t *testing.T, cards *repo.Repository[*model.Card], name string, color domain.CardColor) int32 {
	t.Helper()
	cards.BeginStage(false)
	id, err := cards.Insert(model.NewCard(name, color))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	prepared, err := cards.PrepareCommit()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cards.ApplyPrepared(prepared)
	return id
}

func newReposForPersist() (*repo.Repository[*model.Card], *repo.Repository[*model.Event], *repo.Repository[*model.Task]) {
	return repo.New[*model.Card](), repo.New[*model.Event](), repo.New[*model.Task]()
}

func TestBuildSaveFile_RemapsCardIDsToSaveFilePositions(t *testing.T) {
	cards, events, tasks := newReposForPersist()
	red, _ := domain.ParseCardColor("red")
	first := stageAndApplyCard(t, cards, "Personal", red)

	tr, err := domain.ParseTimeRange("9am-10am")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	events.BeginStage(false)
	events.Insert(model.NewEvent(false, "Standup", &first, domain.AllDaysOfWeek(), tr))
	preparedEvents, err := events.PrepareCommit()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	events.ApplyPrepared(preparedEvents)

	sf, err := BuildSaveFile(cards, events, tasks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sf.Cards) != 1 {
		t.Fatalf("got %d card rows, want 1", len(sf.Cards))
	}
	if len(sf.Events) != 1 {
		t.Fatalf("got %d event rows, want 1", len(sf.Events))
	}

	found := false
	for _, tok := range sf.Events[0] {
		if tok == "+C1" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected the event row %v to reference the remapped card id '+C1'", sf.Events[0])
	}
}

func TestResolveCardID_NilPassesThrough(t *testing.T) {
	id, err := resolveCardID(nil, map[int32]int32{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != nil {
		t.Errorf("got %v, want nil", id)
	}
}

func TestResolveCardID_MissingReferenceErrors(t *testing.T) {
	missing := int32(99)
	_, err := resolveCardID(&missing, map[int32]int32{})
	if err == nil {
		t.Fatal("expected an error for a reference to a missing card id")
	}
}

func TestSaveAndRead_RoundTrips(t *testing.T) {
	sf := SaveFile{
		Cards:  [][]string{{"Personal", "red"}},
		Events: [][]string{{"false", "Standup", "+C1", "@", "mon", "9am-10am"}},
		Tasks:  [][]string{{"Write report", "4", "@", "03-05-2026"}},
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "schedule.json")
	if err := Save(path, sf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reloaded, err := Read(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reloaded.Cards) != 1 || reloaded.Cards[0][0] != "Personal" {
		t.Errorf("got %+v", reloaded.Cards)
	}
	if len(reloaded.Tasks) != 1 || reloaded.Tasks[0][1] != "4" {
		t.Errorf("got %+v", reloaded.Tasks)
	}
}

func TestRead_MissingFileErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Read(filepath.Join(dir, "nope.json")); err == nil {
		t.Fatal("expected an error for a missing save file")
	}
}

func TestLoad_ReplaysRowsInCardsEventsTasksOrder(t *testing.T) {
	cards, events, tasks := newReposForPersist()
	sf := SaveFile{
		Cards:  [][]string{{"Personal", "red"}},
		Events: [][]string{{"false", "Standup", "@", "mon", "9am-10am"}},
		Tasks:  [][]string{{"Write report", "4", "@", "03-05-2026"}},
	}

	var seen []string
	exec := func(name string, args []string) error {
		seen = append(seen, name)
		return nil
	}

	if err := Load(sf, cards, events, tasks, exec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{domain.Card.String(), domain.Event.String(), domain.Task.String()}
	if len(seen) != len(want) {
		t.Fatalf("got %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("position %d: got %s, want %s", i, seen[i], want[i])
		}
	}
}

func TestLoad_ExecErrorRollsBackWholeBatch(t *testing.T) {
	cards, events, tasks := newReposForPersist()
	sf := SaveFile{
		Cards: [][]string{{"Personal", "red"}, {"Work", "blue"}},
	}

	calls := 0
	exec := func(name string, args []string) error {
		calls++
		if calls == 2 {
			return os.ErrInvalid
		}
		return nil
	}

	if err := Load(sf, cards, events, tasks, exec); err == nil {
		t.Fatal("expected the batch to fail when the second op errors")
	}
}
