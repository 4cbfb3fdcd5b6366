// Package model defines planit's three staged domain entities (Card, Event,
// Task) plus the scheduler's working types (SubTask, FreeTimeBlock).
package model

// BaseEntity is implemented by every type the repository can stage, so the
// generic Repository can assign and rewrite ids without knowing anything
// else about the concrete type.
type BaseEntity interface {
	ID() int32
	SetID(int32)
}
