// Package manual holds planit's static help text: one usage entry per
// command word, looked up by the `man` command and by a command line whose
// -h/-help flag comes right after the command word or the entity keyword.
package manual

import "strings"

// Entry is one command's manual page.
type Entry struct {
	Command     string
	Summary     string
	Usage       []string
}

var entries = []Entry{
	{
		Command: "card",
		Summary: "Add, modify, or delete a card.",
		Usage: []string{
			`card "<name>" <color>`,
			`mod card <id> "<name>" <color>`,
			`del card <id>`,
		},
	},
	{
		Command: "event",
		Summary: "Add, modify, or delete an event.",
		Usage: []string{
			`event <recurring> "<name>" [+C<card-id>] @ [days-of-week] <start>-<end>`,
			`mod event <id> <recurring> "<name>" [+C<card-id>] @ [days-of-week] <start>-<end>`,
			`del event <id>`,
		},
	},
	{
		Command: "task",
		Summary: "Add, modify, or delete a task.",
		Usage: []string{
			`task "<name>" <hours> [+C<card-id>] @ <date>`,
			`mod task <id> "<name>" <hours> [+C<card-id>] @ <date>`,
			`del task <id>`,
		},
	},
	{
		Command: "cards",
		Summary: "List every card.",
		Usage:   []string{"cards"},
	},
	{
		Command: "events",
		Summary: "List every event.",
		Usage:   []string{"events"},
	},
	{
		Command: "tasks",
		Summary: "List every task.",
		Usage:   []string{"tasks"},
	},
	{
		Command: "schedule",
		Summary: "Recompute the schedule for every task from the configured start date.",
		Usage:   []string{"schedule"},
	},
	{
		Command: "config",
		Summary: "Show or change configuration values.",
		Usage: []string{
			"config",
			"config <KEY> <value>",
		},
	},
	{
		Command: "save",
		Summary: "Write the current cards, events, and tasks to a save file.",
		Usage:   []string{`save "<filename>"`},
	},
	{
		Command: "read",
		Summary: "Replace the current cards, events, and tasks with the contents of a save file.",
		Usage:   []string{`read "<filename>"`},
	},
	{
		Command: "log",
		Summary: "Print the current session's log file, if one has been created.",
		Usage:   []string{"log"},
	},
	{
		Command: "man",
		Summary: "Show the manual page for a command, or list every command.",
		Usage: []string{
			"man",
			"man <command>",
		},
	},
	{
		Command: "date",
		Summary: "Show the date formats accepted throughout the grammar.",
		Usage:   []string{"date"},
	},
	{
		Command: "time",
		Summary: "Show the clock-time forms accepted throughout the grammar.",
		Usage:   []string{"time"},
	},
	{
		Command: "colors",
		Summary: "List the card colors accepted throughout the grammar.",
		Usage:   []string{"colors"},
	},
	{
		Command: "weekdays",
		Summary: "List the day-of-week aliases accepted throughout the grammar.",
		Usage:   []string{"weekdays"},
	},
}

// Lookup finds a command's manual entry by name, case-insensitively.
func Lookup(command string) (Entry, bool) {
	lower := strings.ToLower(command)
	for _, e := range entries {
		if e.Command == lower {
			return e, true
		}
	}
	return Entry{}, false
}

// All returns every manual entry, in catalog order.
func All() []Entry { return entries }

// Render renders one entry as plain text, matching the multi-line
// "Usage: ..." style every ArgPattern mismatch error already uses.
func Render(e Entry) string {
	var b strings.Builder
	b.WriteString(e.Summary)
	b.WriteString("\n")
	for _, u := range e.Usage {
		b.WriteString("Usage: ")
		b.WriteString(u)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
