package model

import (
	"fmt"

	"github.com/khalidh223/planit/internal/domain"
)

// Card groups tasks and events under a shared name and color tag.
type Card struct {
	IDVal int32
	Name  string
	Color domain.CardColor
}

func NewCard(name string, color domain.CardColor) *Card {
	return &Card{Name: name, Color: color}
}

func (c *Card) ID() int32      { return c.IDVal }
func (c *Card) SetID(id int32) { c.IDVal = id }

// Modify replaces the card's mutable fields in place.
func (c *Card) Modify(name string, color domain.CardColor) {
	c.Name = name
	c.Color = color
}

func (c *Card) Clone() *Card {
	cp := *c
	return &cp
}

func (c *Card) String() string {
	return fmt.Sprintf("Card(id=%d, name='%s', color=%s)", c.IDVal, c.Name, c.Color)
}
