// Package txn coordinates multi-repository commits across cards, events,
// and tasks so that a batch of staged inserts either all land or none do,
// with referenced card ids checked before anything is applied.
package txn

import (
	"github.com/khalidh223/planit/internal/model"
	"github.com/khalidh223/planit/internal/perr"
	"github.com/khalidh223/planit/internal/repo"
)

// ParticipantOps is the non-generic face a RepoParticipant presents to a
// Transaction, so a single Transaction can drive repositories of three
// different entity types through one staging protocol.
type ParticipantOps interface {
	BeginStage(clearExisting bool) error
	DiscardStage()
	// IsProvider reports whether this participant's ids feed the shared id
	// pool (true for cards, which carry no references of their own).
	IsProvider() bool
	EffectiveIDs() map[int32]struct{}
	// References returns the card ids this participant's pending inserts
	// point at; nil for participants with no cross-entity reference.
	References() []int32
	Prepare() (func(), error)
}

// RepoParticipant adapts a concrete *repo.Repository[T] to ParticipantOps.
type RepoParticipant[T repo.Entity[T]] struct {
	Repo         *repo.Repository[T]
	RefExtractor func(T) *int32
}

func (p *RepoParticipant[T]) BeginStage(clearExisting bool) error { return p.Repo.BeginStage(clearExisting) }
func (p *RepoParticipant[T]) DiscardStage()                       { p.Repo.DiscardStage() }
func (p *RepoParticipant[T]) IsProvider() bool                    { return p.RefExtractor == nil }
func (p *RepoParticipant[T]) EffectiveIDs() map[int32]struct{}    { return p.Repo.StagedEffectiveIDs() }

func (p *RepoParticipant[T]) References() []int32 {
	if p.RefExtractor == nil {
		return nil
	}
	var out []int32
	for _, item := range p.Repo.StagedPending() {
		if id := p.RefExtractor(item); id != nil {
			out = append(out, *id)
		}
	}
	return out
}

func (p *RepoParticipant[T]) Prepare() (func(), error) {
	prepared, err := p.Repo.PrepareCommit()
	if err != nil {
		return nil, err
	}
	return func() { p.Repo.ApplyPrepared(prepared) }, nil
}

// Transaction stages cards, events, and tasks together, in that fixed
// order, and commits or rolls them all back as one unit.
type Transaction struct {
	participants []ParticipantOps
}

// New builds a Transaction over the three repositories. Cards have no
// reference extractor since nothing upstream of them needs validating;
// events and tasks both reference an optional card id.
func New(cards *repo.Repository[*model.Card], events *repo.Repository[*model.Event], tasks *repo.Repository[*model.Task]) *Transaction {
	cardsP := &RepoParticipant[*model.Card]{Repo: cards}
	eventsP := &RepoParticipant[*model.Event]{Repo: events, RefExtractor: func(e *model.Event) *int32 { return e.CardID }}
	tasksP := &RepoParticipant[*model.Task]{Repo: tasks, RefExtractor: func(t *model.Task) *int32 { return t.CardID }}
	return &Transaction{participants: []ParticipantOps{cardsP, eventsP, tasksP}}
}

func (tx *Transaction) beginAll(clearExisting bool) error {
	for i, p := range tx.participants {
		if err := p.BeginStage(clearExisting); err != nil {
			for j := 0; j < i; j++ {
				tx.participants[j].DiscardStage()
			}
			return err
		}
	}
	return nil
}

func (tx *Transaction) discardAll() {
	for _, p := range tx.participants {
		p.DiscardStage()
	}
}

func (tx *Transaction) validateAssociations() error {
	pool := make(map[int32]struct{})
	for _, p := range tx.participants {
		if p.IsProvider() {
			for id := range p.EffectiveIDs() {
				pool[id] = struct{}{}
			}
		}
	}
	for _, p := range tx.participants {
		for _, ref := range p.References() {
			if _, ok := pool[ref]; !ok {
				return perr.Parse("Referenced id %d not present in transaction.", ref)
			}
		}
	}
	return nil
}

func (tx *Transaction) prepareAll() ([]func(), error) {
	appliers := make([]func(), 0, len(tx.participants))
	for _, p := range tx.participants {
		apply, err := p.Prepare()
		if err != nil {
			return nil, err
		}
		appliers = append(appliers, apply)
	}
	return appliers, nil
}

func applyAll(appliers []func()) {
	for _, apply := range appliers {
		apply()
	}
}

// Run stages every participant, invokes f, validates cross-entity
// references, and applies the result — or discards everything and returns
// the first error encountered at any step.
func (tx *Transaction) Run(clearExisting bool, f func() error) error {
	if err := tx.beginAll(clearExisting); err != nil {
		return err
	}
	if err := f(); err != nil {
		tx.discardAll()
		return err
	}
	if err := tx.validateAssociations(); err != nil {
		tx.discardAll()
		return err
	}
	appliers, err := tx.prepareAll()
	if err != nil {
		tx.discardAll()
		return err
	}
	applyAll(appliers)
	return nil
}

// CommandOp is one queued command invocation, recorded as its raw name and
// token arguments so it can be replayed verbatim through a parser later.
type CommandOp struct {
	Name string
	Args []string
}

// CommandQueue accumulates command invocations (used while loading a save
// file) and replays them all inside a single Transaction.
type CommandQueue struct {
	ops []CommandOp
}

// Push appends a command invocation to the queue.
func (q *CommandQueue) Push(name string, args []string) {
	q.ops = append(q.ops, CommandOp{Name: name, Args: args})
}

// Execute replays every queued op inside one Transaction over the given
// repositories, invoking exec(name, args) for each op in queue order. exec
// is expected to parse and run that single command against the shared
// application context. If any op fails, the whole batch is rolled back.
func (q *CommandQueue) Execute(
	cards *repo.Repository[*model.Card],
	events *repo.Repository[*model.Event],
	tasks *repo.Repository[*model.Task],
	clearExisting bool,
	exec func(name string, args []string) error,
) error {
	tx := New(cards, events, tasks)
	return tx.Run(clearExisting, func() error {
		for _, op := range q.ops {
			if err := exec(op.Name, op.Args); err != nil {
				return err
			}
		}
		return nil
	})
}
