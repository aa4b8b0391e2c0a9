// internal/types/set.go
package types

// IDSet is an unordered set of entity IDs.
type IDSet map[EntityID]struct{}

func (s IDSet) Add(id EntityID) { s[id] = struct{}{} }
func (s IDSet) Len() int        { return len(s) }

func (s IDSet) Has(id EntityID) bool {
	_, ok := s[id]
	return ok
}

// Retain removes every id for which keep returns false.
func (s IDSet) Retain(keep func(EntityID) bool) {
	for id := range s {
		if !keep(id) {
			delete(s, id)
		}
	}
}
