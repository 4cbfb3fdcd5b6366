// Package appconfig implements planit's JSON-backed, hot-editable
// configuration: the daily scheduling hour range, the task overflow
// policy, the task scheduling order, an optional schedule start date, and
// whether log messages are also written to disk.
package appconfig

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/khalidh223/planit/internal/domain"
	"github.com/khalidh223/planit/internal/perr"
)

// Key names one editable configuration setting.
type Key int

const (
	KeyRange Key = iota
	KeyTaskOverflowPolicy
	KeyTaskSchedulingOrder
	KeyScheduleStartDate
	KeyFileLoggingEnabled
)

var allKeys = []Key{KeyRange, KeyTaskOverflowPolicy, KeyTaskSchedulingOrder, KeyScheduleStartDate, KeyFileLoggingEnabled}

func (k Key) String() string {
	switch k {
	case KeyRange:
		return "RANGE"
	case KeyTaskOverflowPolicy:
		return "TASK_OVERFLOW_POLICY"
	case KeyTaskSchedulingOrder:
		return "TASK_SCHEDULING_ORDER"
	case KeyScheduleStartDate:
		return "SCHEDULE_START_DATE"
	default:
		return "FILE_LOGGING_ENABLED"
	}
}

func (k Key) description() string {
	switch k {
	case KeyRange:
		return "Daily hours during which events and tasks may be scheduled."
	case KeyTaskOverflowPolicy:
		return "What happens when a task cannot be fully scheduled by its due date."
	case KeyTaskSchedulingOrder:
		return "How each day's eligible tasks are ordered before packing."
	case KeyScheduleStartDate:
		return "The earliest date the scheduler will place work on; empty clears it to today."
	default:
		return "Enable writing log messages to file."
	}
}

func parseKey(raw string) (Key, error) {
	for _, k := range allKeys {
		if k.String() == raw {
			return k, nil
		}
	}
	return 0, perr.Parse("Unknown configuration key '%s'. Valid keys: %s", raw, validKeysCSV())
}

func validKeysCSV() string {
	parts := make([]string, len(allKeys))
	for i, k := range allKeys {
		parts[i] = k.String()
	}
	return strings.Join(parts, ", ")
}

// file is the on-disk JSON shape.
type file struct {
	Range               string  `json:"range"`
	TaskOverflowPolicy  string  `json:"task_overflow_policy"`
	TaskSchedulingOrder string  `json:"task_scheduling_order"`
	ScheduleStartDate   *string `json:"schedule_start_date,omitempty"`
	FileLoggingEnabled  *bool   `json:"file_logging_enabled,omitempty"`
}

// Config is the parsed, in-memory form of a config.json.
type Config struct {
	path string

	rangeVal    domain.TimeRange
	overflow    domain.TaskOverflowPolicy
	order       domain.TaskSchedulingOrder
	startDate   *domain.Date
	fileLogging bool
}

// Load reads and parses the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, perr.Config("Configuration file '%s' not found.", path)
		}
		return nil, perr.Config("Failed to read %s: %s", path, err)
	}
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, perr.Config("Invalid JSON in '%s': %s", path, err)
	}

	rng, err := domain.ParseTimeRange(f.Range)
	if err != nil {
		return nil, perr.Config("%s", err)
	}
	overflow, err := domain.ParseTaskOverflowPolicy(f.TaskOverflowPolicy)
	if err != nil {
		return nil, perr.Config("%s", err)
	}
	order, err := domain.ParseTaskSchedulingOrder(f.TaskSchedulingOrder)
	if err != nil {
		return nil, perr.Config("%s", err)
	}

	c := &Config{
		path:        path,
		rangeVal:    rng,
		overflow:    overflow,
		order:       order,
		fileLogging: true,
	}
	if f.ScheduleStartDate != nil && *f.ScheduleStartDate != "" {
		d, err := domain.ParseDate(*f.ScheduleStartDate)
		if err != nil {
			return nil, perr.Config("%s", err)
		}
		c.startDate = &d
	}
	if f.FileLoggingEnabled != nil {
		c.fileLogging = *f.FileLoggingEnabled
	}
	return c, nil
}

func (c *Config) DailyRange() domain.TimeRange                   { return c.rangeVal }
func (c *Config) TaskOverflowPolicy() domain.TaskOverflowPolicy   { return c.overflow }
func (c *Config) TaskSchedulingOrder() domain.TaskSchedulingOrder { return c.order }
func (c *Config) FileLoggingEnabled() bool                        { return c.fileLogging }

// ScheduleStartDate returns the configured start date, defaulting to today
// when unset.
func (c *Config) ScheduleStartDate() domain.Date {
	if c.startDate != nil {
		return *c.startDate
	}
	return domain.Today()
}

// Row is one line of a config listing.
type Row struct {
	Key         Key
	Description string
	Value       string
}

// Rows renders every key's current value for the `config` command's table.
func (c *Config) Rows() []Row {
	rows := make([]Row, len(allKeys))
	for i, k := range allKeys {
		rows[i] = Row{Key: k, Description: k.description(), Value: c.valueString(k)}
	}
	return rows
}

func (c *Config) valueString(k Key) string {
	switch k {
	case KeyRange:
		return c.rangeVal.String()
	case KeyTaskOverflowPolicy:
		return c.overflow.String()
	case KeyTaskSchedulingOrder:
		return c.order.String()
	case KeyScheduleStartDate:
		if c.startDate != nil {
			return c.startDate.String()
		}
		return ""
	default:
		return domain.Bool(c.fileLogging).String()
	}
}

// Set applies a string key name and raw value in memory only; it does not
// write the config file.
func (c *Config) Set(keyStr, rawValue string) error {
	key, err := parseKey(keyStr)
	if err != nil {
		return err
	}
	return c.SetKey(key, rawValue)
}

// SetKey applies one key's new value in-place, without persisting.
func (c *Config) SetKey(key Key, rawValue string) error {
	switch key {
	case KeyRange:
		v, err := domain.ParseTimeRange(rawValue)
		if err != nil {
			return err
		}
		c.rangeVal = v
	case KeyTaskOverflowPolicy:
		v, err := domain.ParseTaskOverflowPolicy(rawValue)
		if err != nil {
			return err
		}
		c.overflow = v
	case KeyTaskSchedulingOrder:
		v, err := domain.ParseTaskSchedulingOrder(rawValue)
		if err != nil {
			return err
		}
		c.order = v
	case KeyScheduleStartDate:
		if rawValue == "" {
			c.startDate = nil
		} else {
			v, err := domain.ParseDate(rawValue)
			if err != nil {
				return err
			}
			c.startDate = &v
		}
	default:
		v, err := domain.ParseBool(rawValue)
		if err != nil {
			return err
		}
		c.fileLogging = bool(v)
	}
	return nil
}

// SetMany applies several key=value updates and persists once at the end.
func (c *Config) SetMany(updates map[string]string) error {
	for k, v := range updates {
		if err := c.Set(k, v); err != nil {
			return err
		}
	}
	return c.Save()
}

// Edit applies a single key=value update and immediately persists it.
func (c *Config) Edit(keyStr, rawValue string) error {
	if err := c.Set(keyStr, rawValue); err != nil {
		return err
	}
	return c.Save()
}

// Save writes the current configuration back to disk as pretty JSON.
func (c *Config) Save() error {
	f := file{
		Range:               c.rangeVal.String(),
		TaskOverflowPolicy:  rawOverflowToken(c.overflow),
		TaskSchedulingOrder: c.order.String(),
		FileLoggingEnabled:  &c.fileLogging,
	}
	if c.startDate != nil {
		s := c.startDate.String()
		f.ScheduleStartDate = &s
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return perr.Config("Failed to encode config: %s", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return perr.Config("Failed to write %s: %s", c.path, err)
	}
	return nil
}

// rawOverflowToken recovers the input-side spelling ("block") for a policy
// whose Display form ("hard-block") differs from what it parses from.
func rawOverflowToken(p domain.TaskOverflowPolicy) string {
	if p == domain.Block {
		return "block"
	}
	return "allow"
}
