package command

import (
	"testing"

	"github.com/khalidh223/planit/internal/domain"
)

func TestParse_EmptyLineErrors(t *testing.T) {
	p := New()
	if _, err := p.Parse(""); err == nil {
		t.Fatal("expected an error for an empty command line")
	}
}

func TestParse_HelpFlagShortCircuitsToMessageCommand(t *testing.T) {
	p := New()
	cmd, err := p.Parse("task -h")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := cmd.(MessageCommand); !ok {
		t.Errorf("got %T, want MessageCommand", cmd)
	}
}

func TestParse_BareEntityKeywordIsAnImplicitAdd(t *testing.T) {
	p := New()
	cmd, err := p.Parse(`card "Personal" red`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ec, ok := cmd.(EntityCommand)
	if !ok {
		t.Fatalf("got %T, want EntityCommand", cmd)
	}
	if ec.Entity != domain.Card || ec.Action != domain.Add {
		t.Errorf("got entity=%v action=%v", ec.Entity, ec.Action)
	}
}

func TestParse_ModPrefixResolvesToModifyAction(t *testing.T) {
	p := New()
	cmd, err := p.Parse(`mod card 1 "Work" blue`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ec, ok := cmd.(EntityCommand)
	if !ok {
		t.Fatalf("got %T, want EntityCommand", cmd)
	}
	if ec.Entity != domain.Card || ec.Action != domain.Modify {
		t.Errorf("got entity=%v action=%v", ec.Entity, ec.Action)
	}
}

func TestParse_DelPrefixMissingEntityErrors(t *testing.T) {
	p := New()
	if _, err := p.Parse("del"); err == nil {
		t.Fatal("expected an error when 'del' has no entity keyword")
	}
}

func TestParse_GlobalListCommands(t *testing.T) {
	p := New()
	for word, entity := range map[string]domain.EntityType{"cards": domain.Card, "events": domain.Event, "tasks": domain.Task} {
		cmd, err := p.Parse(word)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", word, err)
		}
		lc, ok := cmd.(ListCommand)
		if !ok || lc.Entity != entity {
			t.Errorf("%q: got %#v, want ListCommand{Entity: %v}", word, cmd, entity)
		}
	}
}

func TestParse_ConfigShowNoArgs(t *testing.T) {
	p := New()
	cmd, err := p.Parse("config")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cc, ok := cmd.(ConfigCommand)
	if !ok || !cc.Show {
		t.Errorf("got %#v, want a Show ConfigCommand", cmd)
	}
}

func TestParse_ConfigSetKeyValue(t *testing.T) {
	p := New()
	cmd, err := p.Parse("config RANGE 9am-5pm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cc, ok := cmd.(ConfigCommand)
	if !ok || cc.Key != "RANGE" || cc.Value != "9am-5pm" {
		t.Errorf("got %#v", cmd)
	}
}

func TestParse_ConfigWrongArgCountErrors(t *testing.T) {
	p := New()
	if _, err := p.Parse("config RANGE"); err == nil {
		t.Fatal("expected an error for a malformed config command")
	}
}

func TestParse_SaveRequiresFilename(t *testing.T) {
	p := New()
	if _, err := p.Parse("save"); err == nil {
		t.Fatal("expected an error when save has no filename")
	}
	cmd, err := p.Parse(`save "my-schedule"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sc, ok := cmd.(SaveCommand)
	if !ok || sc.Filename != "my-schedule" {
		t.Errorf("got %#v", cmd)
	}
}

func TestParse_ReadRequiresFilenameAndCarriesParser(t *testing.T) {
	p := New()
	if _, err := p.Parse("read"); err == nil {
		t.Fatal("expected an error when read has no filename")
	}
	cmd, err := p.Parse(`read "my-schedule"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rc, ok := cmd.(ReadCommand)
	if !ok || rc.Filename != "my-schedule" || rc.Parser != p {
		t.Errorf("got %#v", cmd)
	}
}

func TestParse_ManWithAndWithoutCommand(t *testing.T) {
	p := New()
	cmd, err := p.Parse("man")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := cmd.(ManCommand); !ok {
		t.Errorf("got %T, want ManCommand", cmd)
	}

	cmd, err = p.Parse("man task")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mc, ok := cmd.(ManCommand)
	if !ok || mc.Command != "task" {
		t.Errorf("got %#v", cmd)
	}
}

func TestParse_LogCommand(t *testing.T) {
	p := New()
	cmd, err := p.Parse("log")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := cmd.(LogCommand); !ok {
		t.Errorf("got %T, want LogCommand", cmd)
	}
}

func TestParse_UnknownCommandErrors(t *testing.T) {
	p := New()
	if _, err := p.Parse("frobnicate"); err == nil {
		t.Fatal("expected an error for an unknown command")
	}
}

func TestParse_TypeHelpCommands(t *testing.T) {
	p := New()
	for _, word := range []string{"date", "time", "colors", "weekdays"} {
		cmd, err := p.Parse(word)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", word, err)
		}
		th, ok := cmd.(TypeHelpCommand)
		if !ok || th.Topic != word {
			t.Errorf("%q: got %#v", word, cmd)
		}
	}
}

func TestParse_ScheduleCommand(t *testing.T) {
	p := New()
	cmd, err := p.Parse("schedule")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := cmd.(ScheduleCommand); !ok {
		t.Errorf("got %T, want ScheduleCommand", cmd)
	}
}
