package model

import (
	"testing"

	"github.com/khalidh223/planit/internal/domain"
)

func TestNewCard_StartsWithZeroID(t *testing.T) {
	c := NewCard("Personal", domain.Red)
	if c.ID() != 0 {
		t.Errorf("got id %d, want 0 before insertion", c.ID())
	}
}

func TestCard_SetID(t *testing.T) {
	c := NewCard("Personal", domain.Red)
	c.SetID(5)
	if c.ID() != 5 {
		t.Errorf("got %d, want 5", c.ID())
	}
}

func TestCard_Modify(t *testing.T) {
	c := NewCard("Personal", domain.Red)
	c.Modify("Work", domain.Blue)
	if c.Name != "Work" || c.Color != domain.Blue {
		t.Errorf("got %+v", c)
	}
}

func TestCard_Clone_IsIndependent(t *testing.T) {
	c := NewCard("Personal", domain.Red)
	c.SetID(1)
	clone := c.Clone()
	clone.Modify("Work", domain.Blue)
	if c.Name != "Personal" || c.Color != domain.Red {
		t.Errorf("expected the original to be unaffected by mutating the clone, got %+v", c)
	}
}

func TestCard_String(t *testing.T) {
	c := NewCard("Personal", domain.Red)
	c.SetID(2)
	want := `Card(id=2, name='Personal', color=RED)`
	if c.String() != want {
		t.Errorf("got %q, want %q", c.String(), want)
	}
}
