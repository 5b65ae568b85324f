// Package frontier holds the per-search bookkeeping of the breadth-first
// traversal: the FIFO queue of partial paths awaiting expansion and the set of
// pages already discovered. It also resolves user input into page ids.
package frontier

import "github.com/jonesrussell/wikihop/internal/domain"

// compactThreshold is the number of consumed slots after which the queue
// reclaims the head of its backing slice.
const compactThreshold = 64

// Entry is a partial path waiting to be expanded together with its depth
// (edges from the start page).
type Entry struct {
	Path  domain.Path
	Depth int
}

// Queue is a FIFO of entries. The zero value is ready to use.
type Queue struct {
	items []Entry
	head  int
}

// NewQueue returns a queue seeded with the given entries in order.
func NewQueue(entries ...Entry) *Queue {
	q := &Queue{items: make([]Entry, 0, len(entries))}
	q.items = append(q.items, entries...)
	return q
}

// Push appends an entry at the back.
func (q *Queue) Push(e Entry) {
	q.items = append(q.items, e)
}

// Pop removes and returns the oldest entry. ok is false when the queue is empty.
func (q *Queue) Pop() (e Entry, ok bool) {
	if q.head >= len(q.items) {
		return Entry{}, false
	}

	e = q.items[q.head]
	q.items[q.head] = Entry{}
	q.head++

	if q.head >= compactThreshold && q.head*2 >= len(q.items) {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}

	return e, true
}

// Len returns the number of pending entries.
func (q *Queue) Len() int {
	return len(q.items) - q.head
}
