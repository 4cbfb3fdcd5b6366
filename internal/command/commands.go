package command

import (
	"fmt"
	"os"
	"strings"

	"github.com/khalidh223/planit/internal/appctx"
	"github.com/khalidh223/planit/internal/applog"
	"github.com/khalidh223/planit/internal/argtok"
	"github.com/khalidh223/planit/internal/display"
	"github.com/khalidh223/planit/internal/domain"
	"github.com/khalidh223/planit/internal/entityspec"
	"github.com/khalidh223/planit/internal/manual"
	"github.com/khalidh223/planit/internal/model"
	"github.com/khalidh223/planit/internal/perr"
	"github.com/khalidh223/planit/internal/persist"
	"github.com/khalidh223/planit/internal/scheduler"
	"github.com/khalidh223/planit/internal/txn"
)

// Command is one fully-parsed, ready-to-run line of input.
type Command interface {
	Execute(ctx *appctx.AppContext) error
}

// helpMessageFor renders the manual entry matching a help-flagged command
// line: the command word itself for most lines, or the entity keyword that
// follows "mod"/"del".
func helpMessageFor(tokens []string) string {
	word := tokens[0]
	if len(tokens) > 1 {
		if _, ok := domain.ParseEntityActionType(tokens[0]); ok {
			word = tokens[1]
		}
	}
	if e, ok := manual.Lookup(word); ok {
		return manual.Render(e)
	}
	return fmt.Sprintf("No manual entry for '%s'.", word)
}

// MessageCommand prints a precomputed message (used for -h short circuits
// and for `man`).
type MessageCommand struct{ Message string }

func (c MessageCommand) Execute(ctx *appctx.AppContext) error {
	ctx.Logger.Info(c.Message, applog.ConsoleOnly)
	return nil
}

// EntityCommand adds, modifies, or deletes one card, event, or task. It
// wraps its own body in a Transaction, so a single interactive command is
// already an atomic unit exactly like a batch of commands replayed from a
// save file.
type EntityCommand struct {
	Entity domain.EntityType
	Action domain.EntityActionType
	Args   []argtok.Arg
}

func (c EntityCommand) Execute(ctx *appctx.AppContext) error {
	tx := txn.New(ctx.Cards, ctx.Events, ctx.Tasks)
	return tx.Run(false, func() error { return c.perform(ctx) })
}

func (c EntityCommand) perform(ctx *appctx.AppContext) error {
	switch c.Entity {
	case domain.Card:
		return c.performCard(ctx)
	case domain.Event:
		return c.performEvent(ctx)
	default:
		return c.performTask(ctx)
	}
}

func (c EntityCommand) performCard(ctx *appctx.AppContext) error {
	spec := entityspec.CardSpec{}
	if _, err := entityspec.AssertMatchesPattern(c.Args, spec.PatternsFor(c.Action), domain.Card, c.Action, ctx); err != nil {
		return err
	}
	ci := entityspec.NewColumnIndexer(c.Args)
	switch c.Action {
	case domain.Modify:
		id, name, color := spec.ModifyFields(ci)
		existing, err := ctx.Cards.GetMut(id)
		if err != nil {
			return err
		}
		existing.Modify(name, color)
		ctx.Logger.Info(fmt.Sprintf("Modified %s", existing), applog.ConsoleAndFile)
	case domain.Delete:
		id := spec.DeleteID(ci)
		if err := ctx.Cards.Delete(id); err != nil {
			return err
		}
		ctx.Logger.Info(fmt.Sprintf("Deleted card with id %d.", id), applog.ConsoleAndFile)
	default:
		name, color := spec.CreateFields(ci)
		card := model.NewCard(name, color)
		id, err := ctx.Cards.Insert(card)
		if err != nil {
			return err
		}
		ctx.Logger.Info(fmt.Sprintf("Added %s", card), applog.ConsoleAndFile)
		_ = id
	}
	return nil
}

func (c EntityCommand) performEvent(ctx *appctx.AppContext) error {
	spec := entityspec.EventSpec{}
	if _, err := entityspec.AssertMatchesPattern(c.Args, spec.PatternsFor(c.Action), domain.Event, c.Action, ctx); err != nil {
		return err
	}
	ci := entityspec.NewColumnIndexer(c.Args)
	switch c.Action {
	case domain.Modify:
		id, f, err := spec.ModifyFields(ci)
		if err != nil {
			return err
		}
		existing, err := ctx.Events.GetMut(id)
		if err != nil {
			return err
		}
		existing.Modify(bool(f.Recurring), f.Name, f.CardID, f.Days, f.TimeRange)
		ctx.Logger.Info(fmt.Sprintf("Modified %s", existing), applog.ConsoleAndFile)
	case domain.Delete:
		id := spec.DeleteID(ci)
		if err := ctx.Events.Delete(id); err != nil {
			return err
		}
		ctx.Logger.Info(fmt.Sprintf("Deleted event with id %d.", id), applog.ConsoleAndFile)
	default:
		f, err := spec.CreateFields(ci)
		if err != nil {
			return err
		}
		event := model.NewEvent(bool(f.Recurring), f.Name, f.CardID, f.Days, f.TimeRange)
		id, err := ctx.Events.Insert(event)
		if err != nil {
			return err
		}
		ctx.Logger.Info(fmt.Sprintf("Added %s", event), applog.ConsoleAndFile)
		_ = id
	}
	return nil
}

func (c EntityCommand) performTask(ctx *appctx.AppContext) error {
	spec := entityspec.TaskSpec{}
	if _, err := entityspec.AssertMatchesPattern(c.Args, spec.PatternsFor(c.Action), domain.Task, c.Action, ctx); err != nil {
		return err
	}
	ci := entityspec.NewColumnIndexer(c.Args)
	switch c.Action {
	case domain.Modify:
		id, f := spec.ModifyFields(ci)
		existing, err := ctx.Tasks.GetMut(id)
		if err != nil {
			return err
		}
		existing.Modify(f.Name, f.Hours, f.CardID, f.Date)
		ctx.Logger.Info(fmt.Sprintf("Modified %s", existing), applog.ConsoleAndFile)
	case domain.Delete:
		id := spec.DeleteID(ci)
		if err := ctx.Tasks.Delete(id); err != nil {
			return err
		}
		ctx.Logger.Info(fmt.Sprintf("Deleted task with id %d.", id), applog.ConsoleAndFile)
	default:
		f := spec.CreateFields(ci)
		task := model.NewTask(f.Name, f.Hours, f.CardID, f.Date)
		id, err := ctx.Tasks.Insert(task)
		if err != nil {
			return err
		}
		ctx.Logger.Info(fmt.Sprintf("Added %s", task), applog.ConsoleAndFile)
		_ = id
	}
	return nil
}

// ListCommand renders every live card, event, or task as a table.
type ListCommand struct{ Entity domain.EntityType }

func (c ListCommand) Execute(ctx *appctx.AppContext) error {
	var tbl display.Table
	switch c.Entity {
	case domain.Card:
		tbl = display.Table{Columns: []display.Column{{Header: "ID", Width: 4}, {Header: "NAME", Width: 24}, {Header: "COLOR", Width: 14}}}
		for _, card := range ctx.Cards.Values(0) {
			tbl.Rows = append(tbl.Rows, []string{itoa(card.IDVal), display.CardTag(card.Name, card.Color), card.Color.String()})
		}
	case domain.Event:
		tbl = display.Table{Columns: []display.Column{{Header: "ID", Width: 4}, {Header: "NAME", Width: 24}, {Header: "DAYS", Width: 20}, {Header: "TIME", Width: 16}, {Header: "RECURRING", Width: 9}}}
		for _, e := range ctx.Events.Values(0) {
			days := make([]string, len(e.Days))
			for i, d := range e.Days {
				days[i] = d.String()
			}
			tbl.Rows = append(tbl.Rows, []string{itoa(e.IDVal), e.Name, strings.Join(days, ","), e.TimeRange.String(), domain.Bool(e.Recurring).String()})
		}
	default:
		tbl = display.Table{Columns: []display.Column{{Header: "ID", Width: 4}, {Header: "NAME", Width: 24}, {Header: "DUE", Width: 12}, {Header: "REMAINING", Width: 9}}}
		for _, t := range ctx.Tasks.Values(0) {
			tbl.Rows = append(tbl.Rows, []string{itoa(t.IDVal), t.Name, t.Date.String(), formatFloat(t.RemainingHours)})
		}
	}
	ctx.Logger.Info(tbl.String(), applog.ConsoleOnly)
	return nil
}

func itoa(id int32) string { return fmt.Sprintf("%d", id) }
func formatFloat(f float64) string { return fmt.Sprintf("%g", f) }

// ScheduleCommand recomputes every task's placement from scratch.
type ScheduleCommand struct{}

func (ScheduleCommand) Execute(ctx *appctx.AppContext) error {
	mgr := scheduler.New(ctx.Tasks, ctx.Events, ctx)
	if err := mgr.Run(); err != nil {
		return err
	}
	ctx.Logger.Info("Schedule recomputed.", applog.ConsoleAndFile)
	return nil
}

// ConfigCommand shows the current configuration, or applies one key/value
// update and persists it.
type ConfigCommand struct {
	Key   string
	Value string
	Show  bool
}

func (c ConfigCommand) Execute(ctx *appctx.AppContext) error {
	if c.Show {
		var b strings.Builder
		for _, row := range ctx.Config.Rows() {
			fmt.Fprintf(&b, "%-24s %-50s %s\n", row.Key, row.Description, row.Value)
		}
		ctx.Logger.Info(strings.TrimRight(b.String(), "\n"), applog.ConsoleOnly)
		return nil
	}
	if err := ctx.Config.Edit(c.Key, c.Value); err != nil {
		return err
	}
	ctx.Logger.Info(fmt.Sprintf("Set %s = %s", c.Key, c.Value), applog.ConsoleAndFile)
	return nil
}

// TypeHelpCommand prints the accepted literal forms for one of the
// grammar's closed types, for the bare "date", "time", "colors", and
// "weekdays" commands.
type TypeHelpCommand struct{ Topic string }

func (c TypeHelpCommand) Execute(ctx *appctx.AppContext) error {
	var msg string
	switch c.Topic {
	case "date":
		msg = domain.ValidDateFormatsHelp
	case "time":
		msg = domain.ValidTimeFormatsHelp
	case "colors":
		msg = "Valid card colors: " + domain.ValidCardColorsCSV()
	default:
		msg = "Valid days of week: " + domain.ValidDaysOfWeekCSV()
	}
	ctx.Logger.Info(msg, applog.ConsoleOnly)
	return nil
}

// LogCommand prints the contents of the current session's log file to the
// console. It never creates the file; before one exists it says so.
type LogCommand struct{}

func (LogCommand) Execute(ctx *appctx.AppContext) error {
	path, ok := ctx.Logger.LogPath()
	if !ok {
		ctx.Logger.Info("No log file has been created yet this session.", applog.ConsoleOnly)
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return perr.Parse("Could not read log file %s: %s", path, err)
	}
	ctx.Logger.Info(string(data), applog.ConsoleOnly)
	return nil
}

// ManCommand prints either the full command catalog or one command's entry.
type ManCommand struct{ Command string }

func (c ManCommand) Execute(ctx *appctx.AppContext) error {
	if c.Command == "" {
		var b strings.Builder
		for _, e := range manual.All() {
			b.WriteString(manual.Render(e))
			b.WriteString("\n\n")
		}
		ctx.Logger.Info(strings.TrimRight(b.String(), "\n"), applog.ConsoleOnly)
		return nil
	}
	e, ok := manual.Lookup(c.Command)
	if !ok {
		return perr.Parse("No manual entry for '%s'.", c.Command)
	}
	ctx.Logger.Info(manual.Render(e), applog.ConsoleOnly)
	return nil
}

// SaveCommand snapshots the repositories to a named file under SchedulesDir.
type SaveCommand struct{ Filename string }

func (c SaveCommand) Execute(ctx *appctx.AppContext) error {
	sf, err := persist.BuildSaveFile(ctx.Cards, ctx.Events, ctx.Tasks)
	if err != nil {
		return err
	}
	path := ctx.SchedulesDir + "/" + c.Filename
	if err := persist.Save(path, sf); err != nil {
		return err
	}
	ctx.Logger.Info(fmt.Sprintf("Saved to %s", path), applog.ConsoleAndFile)
	return nil
}

// ReadCommand replaces every card, event, and task with a save file's
// contents. Parser is used to re-parse each saved row back into a Command
// when replaying it inside the load transaction.
type ReadCommand struct {
	Filename string
	Parser   *Parser
}

func (c ReadCommand) Execute(ctx *appctx.AppContext) error {
	path := ctx.SchedulesDir + "/" + c.Filename
	sf, err := persist.Read(path)
	if err != nil {
		return err
	}
	exec := func(name string, args []string) error {
		cmd, err := c.Parser.ParseTokens(append([]string{name}, args...))
		if err != nil {
			return err
		}
		// Every queued row is an entity add; run its body directly rather
		// than through Execute, which would open a second, nested
		// Transaction on top of the one this whole load already runs in.
		if ec, ok := cmd.(EntityCommand); ok {
			return ec.perform(ctx)
		}
		return cmd.Execute(ctx)
	}
	if err := persist.Load(sf, ctx.Cards, ctx.Events, ctx.Tasks, exec); err != nil {
		return err
	}
	ctx.Logger.Info(fmt.Sprintf("Loaded %s", path), applog.ConsoleAndFile)
	return nil
}
