package command

import (
	"strings"

	"github.com/khalidh223/planit/internal/argtok"
	"github.com/khalidh223/planit/internal/domain"
	"github.com/khalidh223/planit/internal/perr"
)

// Parser turns raw input lines into a ready-to-run Command. It resolves
// commands in a fixed priority order: "mod"/"del" + entity keyword, a bare
// entity keyword (an implicit add), then the fixed set of global commands.
type Parser struct{}

func New() *Parser { return &Parser{} }

// Parse tokenizes line and resolves it to a Command.
func (p *Parser) Parse(line string) (Command, error) {
	tokens, err := argtok.Tokenize(line)
	if err != nil {
		return nil, err
	}
	return p.ParseTokens(tokens)
}

// ParseTokens resolves an already-tokenized command line.
func (p *Parser) ParseTokens(tokens []string) (Command, error) {
	if len(tokens) == 0 {
		return nil, perr.Parse("No command given.")
	}
	if d, ok := helpAtEveryPosition().Evaluate(tokens); ok {
		return MessageCommand{Message: d.Message}, nil
	}

	first := strings.ToLower(tokens[0])

	if action, ok := domain.ParseEntityActionType(first); ok {
		return p.resolveEntityAction(action, tokens)
	}
	if entity, err := domain.ParseEntityType(first); err == nil {
		args := argtok.ClassifyTokens(tokens)
		return EntityCommand{Entity: entity, Action: domain.Add, Args: args}, nil
	}
	return p.resolveGlobal(first, tokens)
}

func (p *Parser) resolveEntityAction(action domain.EntityActionType, tokens []string) (Command, error) {
	if len(tokens) < 2 {
		return nil, perr.Parse("Missing entity after '%s'.", tokens[0])
	}
	entity, err := domain.ParseEntityType(tokens[1])
	if err != nil {
		return nil, err
	}
	args := argtok.ClassifyTokens(tokens[1:])
	return EntityCommand{Entity: entity, Action: action, Args: args}, nil
}

func (p *Parser) resolveGlobal(first string, tokens []string) (Command, error) {
	switch first {
	case "cards":
		return ListCommand{Entity: domain.Card}, nil
	case "events":
		return ListCommand{Entity: domain.Event}, nil
	case "tasks":
		return ListCommand{Entity: domain.Task}, nil
	case "schedule":
		return ScheduleCommand{}, nil
	case "config":
		switch len(tokens) {
		case 1:
			return ConfigCommand{Show: true}, nil
		case 3:
			return ConfigCommand{Key: tokens[1], Value: unquote(tokens[2])}, nil
		default:
			return nil, perr.Parse("Missing argument(s).\nUsage: config <KEY> <value>")
		}
	case "save":
		if len(tokens) != 2 {
			return nil, perr.Parse(`Missing argument(s).` + "\n" + `Usage: save "<filename>"`)
		}
		return SaveCommand{Filename: unquote(tokens[1])}, nil
	case "read":
		if len(tokens) != 2 {
			return nil, perr.Parse(`Missing argument(s).` + "\n" + `Usage: read "<filename>"`)
		}
		return ReadCommand{Filename: unquote(tokens[1]), Parser: p}, nil
	case "date", "time", "colors", "weekdays":
		return TypeHelpCommand{Topic: first}, nil
	case "log":
		return LogCommand{}, nil
	case "man":
		if len(tokens) == 1 {
			return ManCommand{}, nil
		}
		return ManCommand{Command: tokens[1]}, nil
	default:
		return nil, perr.UnknownCommand(first)
	}
}

func unquote(s string) string { return strings.Trim(s, `"`) }
