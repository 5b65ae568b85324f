package frontier

import "github.com/jonesrussell/wikihop/internal/domain"

// Visited records pages already enqueued or expanded during one search.
type Visited struct {
	seen map[domain.PageID]struct{}
}

// NewVisited returns a set holding the given pages.
func NewVisited(ids ...domain.PageID) *Visited {
	v := &Visited{seen: make(map[domain.PageID]struct{}, len(ids))}
	for _, id := range ids {
		v.seen[id] = struct{}{}
	}
	return v
}

// Add inserts id and reports whether it was not already present.
func (v *Visited) Add(id domain.PageID) bool {
	if _, ok := v.seen[id]; ok {
		return false
	}
	v.seen[id] = struct{}{}
	return true
}

// Has reports whether id has been seen.
func (v *Visited) Has(id domain.PageID) bool {
	_, ok := v.seen[id]
	return ok
}

// Len returns the number of pages seen.
func (v *Visited) Len() int {
	return len(v.seen)
}
