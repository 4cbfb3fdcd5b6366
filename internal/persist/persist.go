// Package persist implements planit's save/load codec: a save file is a
// token matrix per entity — cards first, then events, then tasks — where
// every row is the exact argument list that would reproduce that entity
// via its "add" command. Card references are remapped to save-file-local
// ids (1-based, in card id order) so a reloaded schedule never depends on
// the ids a previous run happened to assign.
package persist

import (
	"encoding/json"
	"os"

	"github.com/khalidh223/planit/internal/argtok"
	"github.com/khalidh223/planit/internal/domain"
	"github.com/khalidh223/planit/internal/model"
	"github.com/khalidh223/planit/internal/perr"
	"github.com/khalidh223/planit/internal/repo"
	"github.com/khalidh223/planit/internal/txn"
)

// SaveFile is the on-disk shape: one token list per entity, grouped by
// entity kind.
type SaveFile struct {
	Cards  [][]string `json:"cards"`
	Events [][]string `json:"events"`
	Tasks  [][]string `json:"tasks"`
}

func flatten(args []argtok.Arg) []string {
	var out []string
	for _, a := range args {
		out = append(out, a.ToTokens()...)
	}
	return out
}

// BuildSaveFile snapshots the three repositories into a SaveFile, remapping
// every card_id reference to the card's position in the emitted card list.
func BuildSaveFile(cards *repo.Repository[*model.Card], events *repo.Repository[*model.Event], tasks *repo.Repository[*model.Task]) (SaveFile, error) {
	cardList := cards.Values(repo.IDAsc)
	idLookup := make(map[int32]int32, len(cardList))
	cardRows := make([][]string, 0, len(cardList))
	for i, c := range cardList {
		idLookup[c.IDVal] = int32(i + 1)
		cardRows = append(cardRows, flatten([]argtok.Arg{argtok.NewName(c.Name), argtok.NewCardColor(c.Color)}))
	}

	eventList := events.Values(repo.IDAsc)
	eventRows := make([][]string, 0, len(eventList))
	for _, e := range eventList {
		row, err := eventTokens(e, idLookup)
		if err != nil {
			return SaveFile{}, err
		}
		eventRows = append(eventRows, row)
	}

	taskList := tasks.Values(repo.IDAsc)
	taskRows := make([][]string, 0, len(taskList))
	for _, t := range taskList {
		row, err := taskTokens(t, idLookup)
		if err != nil {
			return SaveFile{}, err
		}
		taskRows = append(taskRows, row)
	}

	return SaveFile{Cards: cardRows, Events: eventRows, Tasks: taskRows}, nil
}

func resolveCardID(cardID *int32, idLookup map[int32]int32) (*int32, error) {
	if cardID == nil {
		return nil, nil
	}
	local, ok := idLookup[*cardID]
	if !ok {
		return nil, perr.Parse("Reference to missing card id %d when building save file.", *cardID)
	}
	return &local, nil
}

func eventTokens(e *model.Event, idLookup map[int32]int32) ([]string, error) {
	local, err := resolveCardID(e.CardID, idLookup)
	if err != nil {
		return nil, err
	}
	args := []argtok.Arg{argtok.NewBool(domain.Bool(e.Recurring)), argtok.NewName(e.Name)}
	if local != nil {
		args = append(args, argtok.NewCardColorID(*local))
	}
	args = append(args, argtok.NewAtSymbol(), argtok.NewDaysOfWeek(e.Days), argtok.NewTimeRange(e.TimeRange))
	return flatten(args), nil
}

func taskTokens(t *model.Task, idLookup map[int32]int32) ([]string, error) {
	local, err := resolveCardID(t.CardID, idLookup)
	if err != nil {
		return nil, err
	}
	args := []argtok.Arg{argtok.NewName(t.Name), argtok.NewInt(int32(t.Hours))}
	if local != nil {
		args = append(args, argtok.NewCardColorID(*local))
	}
	args = append(args, argtok.NewAtSymbol(), argtok.NewDate(t.Date))
	return flatten(args), nil
}

// Save writes a SaveFile as JSON to path.
func Save(path string, sf SaveFile) error {
	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return perr.Parse("Failed to encode save file: %s", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return perr.Parse("Failed to write %s: %s", path, err)
	}
	return nil
}

// Read loads a SaveFile from path.
func Read(path string) (SaveFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SaveFile{}, perr.Parse("Failed to read %s: %s", path, err)
	}
	var sf SaveFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return SaveFile{}, perr.Parse("Invalid JSON in '%s': %s", path, err)
	}
	return sf, nil
}

// Load replays a SaveFile's rows — cards, then events, then tasks — as
// "add" commands inside one transaction that clears the existing
// repositories first. exec parses and executes a single command by entity
// keyword and raw token args.
func Load(sf SaveFile, cards *repo.Repository[*model.Card], events *repo.Repository[*model.Event], tasks *repo.Repository[*model.Task], exec func(name string, args []string) error) error {
	var queue txn.CommandQueue
	for _, row := range sf.Cards {
		queue.Push(domain.Card.String(), row)
	}
	for _, row := range sf.Events {
		queue.Push(domain.Event.String(), row)
	}
	for _, row := range sf.Tasks {
		queue.Push(domain.Task.String(), row)
	}
	return queue.Execute(cards, events, tasks, true, exec)
}
