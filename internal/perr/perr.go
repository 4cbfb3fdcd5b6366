// Package perr defines the error taxonomy shared across planit's command
// dispatcher, argument grammar, scheduler, and config layers.
package perr

import "fmt"

// ParseError carries a user-facing message produced while tokenizing,
// matching, or validating input. It is the Go analogue of the original
// Error::Parse(String) variant and is deliberately the most common error
// kind in this codebase: grammar mismatches, bad ids, malformed dates.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string { return e.Message }

// Parse builds a ParseError from a format string.
func Parse(format string, args ...any) error {
	return &ParseError{Message: fmt.Sprintf(format, args...)}
}

// Message extracts the raw message from a ParseError, or falls back to
// err.Error() for any other error kind. Used when wrapping a lower-level
// error inside a higher "Usage: ..." message without doubling up context.
func Message(err error) string {
	if pe, ok := err.(*ParseError); ok {
		return pe.Message
	}
	return err.Error()
}

// UnknownCommandError is returned when the command parser does not
// recognize a command word.
type UnknownCommandError struct {
	Command string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("Unknown command: %s", e.Command)
}

// UnknownCommand builds an UnknownCommandError.
func UnknownCommand(cmd string) error {
	return &UnknownCommandError{Command: cmd}
}

// TaskOverflow builds a TaskOverflowError.
func TaskOverflow(taskID int32, taskName, date string, remainingHours float64) error {
	return &TaskOverflowError{TaskID: taskID, TaskName: taskName, Date: date, RemainingHours: remainingHours}
}

// TaskOverflowError is raised by the "block" overflow policy when a task
// cannot be fully placed within the planning window.
type TaskOverflowError struct {
	TaskID         int32
	TaskName       string
	Date           string
	RemainingHours float64
}

func (e *TaskOverflowError) Error() string {
	return fmt.Sprintf("Could not fully schedule task %d ('%s') on %s", e.TaskID, e.TaskName, e.Date)
}

// EventOutsideRangeError describes an event whose time range falls outside
// the configured daily hours range. The event validators report that case
// as a ParseError instead.
type EventOutsideRangeError struct {
	EventName  string
	EventTime  string
	DailyRange string
}

func (e *EventOutsideRangeError) Error() string {
	return fmt.Sprintf("Event '%s' time %s is outside daily range %s.", e.EventName, e.EventTime, e.DailyRange)
}

// ConfigError reports a problem loading, validating, or writing config.json.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string { return fmt.Sprintf("Config error: %s", e.Message) }

// Config builds a ConfigError from a format string.
func Config(format string, args ...any) error {
	return &ConfigError{Message: fmt.Sprintf(format, args...)}
}

// ConfigItemMissingError describes a required config key that is absent.
// The config loader reports such problems as a ConfigError instead.
type ConfigItemMissingError struct {
	Item string
}

func (e *ConfigItemMissingError) Error() string {
	return fmt.Sprintf("Missing configuration item: %s", e.Item)
}
