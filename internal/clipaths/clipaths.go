// Package clipaths resolves the three filesystem locations planit needs at
// startup — the config file, the schedules directory, and the logs
// directory — from command-line flags, via a thin cobra wrapper around a
// single root command.
package clipaths

import (
	"github.com/khalidh223/planit/internal/perr"
	"github.com/spf13/cobra"
)

// CliPaths is where planit reads its config and writes schedules and logs.
type CliPaths struct {
	ConfigPath   string
	SchedulesDir string
	LogsDir      string
}

// Defaults returns the paths planit uses when no flags are given.
func Defaults() CliPaths {
	return CliPaths{ConfigPath: "config.json", SchedulesDir: "schedules", LogsDir: "logs"}
}

// FromArgs parses --config/--schedules/--logs out of args (typically
// os.Args[1:]), falling back to Defaults for anything not given.
func FromArgs(args []string) (CliPaths, error) {
	paths := Defaults()
	var parseErr error

	root := &cobra.Command{
		Use:           "planit",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          func(*cobra.Command, []string) error { return nil },
	}
	root.Flags().StringVar(&paths.ConfigPath, "config", paths.ConfigPath, "path to config.json")
	root.Flags().StringVar(&paths.SchedulesDir, "schedules", paths.SchedulesDir, "directory for saved schedule files")
	root.Flags().StringVar(&paths.LogsDir, "logs", paths.LogsDir, "directory for session log files")
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		parseErr = perr.Parse("%s", err)
	}
	return paths, parseErr
}
