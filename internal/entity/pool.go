// internal/entity/pool.go
package entity

import "electro-shoot/internal/types"

// Pool stores values under stable IDs and iterates them in insertion order,
// so every pass over a pool is deterministic.
type Pool[T any] struct {
	nextID types.EntityID
	order  []types.EntityID
	items  map[types.EntityID]*T
}

func NewPool[T any]() *Pool[T] {
	return &Pool[T]{
		nextID: 1,
		items:  make(map[types.EntityID]*T),
	}
}

// Insert stores v and returns its new ID. IDs are never reused.
func (p *Pool[T]) Insert(v T) types.EntityID {
	id := p.nextID
	p.nextID++
	p.items[id] = &v
	p.order = append(p.order, id)
	return id
}

// Get returns a pointer to the stored value; it stays valid until removal.
func (p *Pool[T]) Get(id types.EntityID) (*T, bool) {
	v, ok := p.items[id]
	return v, ok
}

// Contains reports whether id is live.
func (p *Pool[T]) Contains(id types.EntityID) bool {
	_, ok := p.items[id]
	return ok
}

// Remove deletes id and reports whether it was present.
func (p *Pool[T]) Remove(id types.EntityID) bool {
	if _, ok := p.items[id]; !ok {
		return false
	}
	delete(p.items, id)
	for i, o := range p.order {
		if o == id {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
	return true
}

func (p *Pool[T]) Len() int { return len(p.items) }

// IDs returns a snapshot of the live IDs in insertion order. Removing
// entries while ranging over the snapshot is safe.
func (p *Pool[T]) IDs() []types.EntityID {
	ids := make([]types.EntityID, len(p.order))
	copy(ids, p.order)
	return ids
}

// Each visits every value in insertion order.
func (p *Pool[T]) Each(fn func(types.EntityID, *T)) {
	for _, id := range p.order {
		fn(id, p.items[id])
	}
}

// Retain visits every value in insertion order and removes those for which
// keep returns false.
func (p *Pool[T]) Retain(keep func(types.EntityID, *T) bool) {
	kept := p.order[:0]
	for _, id := range p.order {
		if keep(id, p.items[id]) {
			kept = append(kept, id)
		} else {
			delete(p.items, id)
		}
	}
	p.order = kept
}
