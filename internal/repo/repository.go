// Package repo implements planit's generic, two-phase-staged in-memory
// entity store: inserts accumulate in a pending buffer during a stage,
// prepare_commit computes a pure snapshot of what the store would look
// like if applied, and apply_prepared atomically swaps it in. Modify and
// delete act directly on live storage, because by the time either is
// invoked the argument grammar has already validated every field (including
// card-id references) against the live+pending state — there is nothing
// left that can fail after that point, so there is nothing to roll back.
package repo

import (
	"sort"

	"github.com/khalidh223/planit/internal/model"
	"github.com/khalidh223/planit/internal/perr"
)

// Sort selects how Repository.Values orders its result.
type Sort int

const (
	Unordered Sort = iota
	IDAsc
	IDDesc
)

// Entity is any model type usable with Repository: it must carry an id and
// know how to make an independent copy of itself for snapshotting.
type Entity[T any] interface {
	model.BaseEntity
	Clone() T
}

// Repository is a generic, staged, in-memory store keyed by int32 id.
type Repository[T Entity[T]] struct {
	live   map[int32]T
	nextID int32

	staged      bool
	pending     []T
	nextIDStart int32
	cleared     bool
}

// New creates an empty repository with ids starting at 1.
func New[T Entity[T]]() *Repository[T] {
	return &Repository[T]{live: make(map[int32]T), nextID: 1}
}

// Get returns the live entity with the given id, if present.
func (r *Repository[T]) Get(id int32) (T, bool) {
	v, ok := r.live[id]
	return v, ok
}

// GetMut returns the live entity for in-place mutation by the caller. T is
// itself a pointer type, so mutating fields through the returned value
// mutates the entity actually stored in the repository.
func (r *Repository[T]) GetMut(id int32) (T, error) {
	v, ok := r.live[id]
	if !ok {
		var zero T
		return zero, perr.Parse("Id %d does not exist.", id)
	}
	return v, nil
}

// Delete removes an entity from live storage.
func (r *Repository[T]) Delete(id int32) error {
	if _, ok := r.live[id]; !ok {
		return perr.Parse("Id %d does not exist.", id)
	}
	delete(r.live, id)
	return nil
}

// ExistsIncludingStaged reports whether id resolves to something live or
// pending-inserted in the current stage.
func (r *Repository[T]) ExistsIncludingStaged(id int32) bool {
	if _, ok := r.live[id]; ok {
		return true
	}
	for _, p := range r.pending {
		if p.ID() == id {
			return true
		}
	}
	return false
}

// Values returns every live entity in the requested order.
func (r *Repository[T]) Values(s Sort) []T {
	out := make([]T, 0, len(r.live))
	for _, v := range r.live {
		out = append(out, v)
	}
	switch s {
	case IDAsc:
		sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	case IDDesc:
		sort.Slice(out, func(i, j int) bool { return out[i].ID() > out[j].ID() })
	}
	return out
}

// Len reports the number of live entities.
func (r *Repository[T]) Len() int { return len(r.live) }

// Insert stages a new entity for the current transaction, assigning it the
// next available id (an explicit positive id already set by the caller is
// honored and validated instead). It must be called between BeginStage and
// PrepareCommit.
func (r *Repository[T]) Insert(item T) (int32, error) {
	if !r.staged {
		return 0, perr.Parse("internal error: insert called outside an active stage")
	}
	id := item.ID()
	if id == 0 {
		id = r.nextID
		item.SetID(id)
	} else if id < 0 {
		return 0, perr.Parse("Id must be greater than 0.")
	} else if r.ExistsIncludingStaged(id) {
		return 0, perr.Parse("Id %d already exists.", id)
	}
	r.pending = append(r.pending, item)
	if id+1 > r.nextID {
		r.nextID = id + 1
	}
	return id, nil
}

// BeginStage opens a new pending-insert buffer. clearExisting marks the
// stage so that PrepareCommit builds its snapshot from scratch instead of
// from the current live map; the live map itself is not touched until
// ApplyPrepared.
func (r *Repository[T]) BeginStage(clearExisting bool) error {
	if r.staged {
		return perr.Parse("Repository is already staged.")
	}
	r.staged = true
	r.pending = nil
	r.nextIDStart = r.nextID
	r.cleared = clearExisting
	if clearExisting {
		r.nextID = 1
	}
	return nil
}

// DiscardStage rolls back to the pre-stage state.
func (r *Repository[T]) DiscardStage() {
	r.staged = false
	r.pending = nil
	r.nextID = r.nextIDStart
	r.cleared = false
}

// StagedPending exposes the pending-insert buffer, used by transaction
// participants to extract card-id references for association validation.
func (r *Repository[T]) StagedPending() []T { return r.pending }

// StagedEffectiveIDs returns the id set the repository would expose if the
// current stage were applied right now.
func (r *Repository[T]) StagedEffectiveIDs() map[int32]struct{} {
	ids := make(map[int32]struct{})
	if !r.cleared {
		for id := range r.live {
			ids[id] = struct{}{}
		}
	}
	for _, p := range r.pending {
		ids[p.ID()] = struct{}{}
	}
	return ids
}

// Prepared is a pure snapshot of what Repository would look like after
// ApplyPrepared. Building it never mutates the repository.
type Prepared[T Entity[T]] struct {
	items  map[int32]T
	nextID int32
}

// PrepareCommit computes the snapshot without mutating the repository.
func (r *Repository[T]) PrepareCommit() (Prepared[T], error) {
	result := make(map[int32]T, len(r.live)+len(r.pending))
	if !r.cleared {
		for id, v := range r.live {
			result[id] = v
		}
	}
	for _, p := range r.pending {
		id := p.ID()
		if _, exists := result[id]; exists {
			return Prepared[T]{}, perr.Parse("Duplicate id %d.", id)
		}
		result[id] = p
	}

	maxID := int32(0)
	for id := range result {
		if id > maxID {
			maxID = id
		}
	}
	nextID := r.nextID
	if maxID+1 > nextID {
		nextID = maxID + 1
	}
	return Prepared[T]{items: result, nextID: nextID}, nil
}

// ApplyPrepared atomically swaps the live map for the prepared snapshot and
// clears staging state.
func (r *Repository[T]) ApplyPrepared(p Prepared[T]) {
	r.live = p.items
	r.nextID = p.nextID
	r.staged = false
	r.pending = nil
	r.cleared = false
}

// Query begins a read/mutate pass over live entities, used by the
// scheduler to reorder and mutate tasks in place.
func (r *Repository[T]) Query() *Query[T] {
	items := make([]T, 0, len(r.live))
	for _, v := range r.live {
		items = append(items, v)
	}
	return &Query[T]{items: items}
}

// Query is a small builder over a snapshot of live entity pointers.
type Query[T Entity[T]] struct {
	items []T
}

// Where filters the working set in place.
func (q *Query[T]) Where(pred func(T) bool) *Query[T] {
	out := q.items[:0]
	for _, v := range q.items {
		if pred(v) {
			out = append(out, v)
		}
	}
	q.items = out
	return q
}

// OrderWith sorts the working set with the given less-than comparator.
func (q *Query[T]) OrderWith(less func(a, b T) bool) *Query[T] {
	sort.SliceStable(q.items, func(i, j int) bool { return less(q.items[i], q.items[j]) })
	return q
}

// ForEachMut applies fn to each item, in the query's current order. Because
// T is a pointer type, mutations are visible in the repository's live map.
func (q *Query[T]) ForEachMut(fn func(T)) {
	for _, v := range q.items {
		fn(v)
	}
}

// Collect returns the working set.
func (q *Query[T]) Collect() []T { return q.items }
