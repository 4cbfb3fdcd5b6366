// Package repl runs planit's interactive read-eval-print loop: readline
// prompting with history, each line handed to the command parser, errors
// printed without killing the session, and "exit"/"quit" ending it.
package repl

import (
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/khalidh223/planit/internal/appctx"
	"github.com/khalidh223/planit/internal/applog"
	"github.com/khalidh223/planit/internal/command"
)

const prompt = "planit> "

// Run drives the loop until the user exits or stdin closes.
func Run(ctx *appctx.AppContext, parser *command.Parser) error {
	rl, err := readline.New(prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	if !ctx.StartupDisplayed {
		ctx.Logger.Info("planit — type 'man' for a list of commands, or 'exit' to quit.", applog.ConsoleOnly)
		ctx.StartupDisplayed = true
	}

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
				return nil
			}
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}

		cmd, err := parser.Parse(line)
		if err != nil {
			ctx.Logger.Error(err.Error(), applog.ConsoleOnly)
			continue
		}
		if err := cmd.Execute(ctx); err != nil {
			ctx.Logger.Error(err.Error(), applog.ConsoleAndFile)
		}
	}
}
