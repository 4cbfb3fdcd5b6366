// Command planit is an interactive planner for cards, events, and tasks
// with a deterministic multi-day scheduler.
package main

import (
	"fmt"
	"os"

	"github.com/khalidh223/planit/internal/appctx"
	"github.com/khalidh223/planit/internal/applog"
	"github.com/khalidh223/planit/internal/clipaths"
	"github.com/khalidh223/planit/internal/command"
	"github.com/khalidh223/planit/internal/repl"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	paths, err := clipaths.FromArgs(os.Args[1:])
	if err != nil {
		return err
	}

	ctx, err := appctx.NewWithPaths(paths.ConfigPath, paths.SchedulesDir, paths.LogsDir)
	if err != nil {
		return err
	}
	defer ctx.Logger.Sync()

	if err := os.MkdirAll(ctx.SchedulesDir, 0o755); err != nil {
		ctx.Logger.Error(err.Error(), applog.ConsoleAndFile)
		return err
	}

	parser := command.New()
	if err := repl.Run(ctx, parser); err != nil {
		ctx.Logger.Error(err.Error(), applog.ConsoleAndFile)
		return err
	}
	return nil
}
