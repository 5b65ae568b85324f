package domain

import "strings"

// PathSeparator joins path elements when rendered as text.
const PathSeparator = " => "

// pathNode is one immutable cell of a Path. Cells are shared between paths
// that have a common prefix and are never modified after creation.
type pathNode struct {
	id     PageID
	parent *pathNode
	length int
}

// Path is an immutable sequence of pages from a search start to the most
// recently appended page. Append returns a new Path and leaves the receiver
// untouched, so sibling branches of a search can grow independently.
// The zero value is the empty path.
type Path struct {
	tail *pathNode
}

// NewPath returns a one-element path holding start.
func NewPath(start PageID) Path {
	return Path{tail: &pathNode{id: start, length: 1}}
}

// Append returns a new path with id added at the end.
func (p Path) Append(id PageID) Path {
	return Path{tail: &pathNode{id: id, parent: p.tail, length: p.Len() + 1}}
}

// Len returns the number of pages in the path.
func (p Path) Len() int {
	if p.tail == nil {
		return 0
	}
	return p.tail.length
}

// Empty reports whether the path holds no pages.
func (p Path) Empty() bool {
	return p.tail == nil
}

// Depth returns the number of edges in the path. It is -1 for the empty path.
func (p Path) Depth() int {
	return p.Len() - 1
}

// Last returns the final page of the path, or "" when empty.
func (p Path) Last() PageID {
	if p.tail == nil {
		return ""
	}
	return p.tail.id
}

// First returns the first page of the path, or "" when empty.
func (p Path) First() PageID {
	n := p.tail
	if n == nil {
		return ""
	}
	for n.parent != nil {
		n = n.parent
	}
	return n.id
}

// Nodes returns the pages from first to last in a freshly allocated slice.
func (p Path) Nodes() []PageID {
	nodes := make([]PageID, p.Len())
	for n := p.tail; n != nil; n = n.parent {
		nodes[n.length-1] = n.id
	}
	return nodes
}

// Contains reports whether id occurs anywhere in the path.
func (p Path) Contains(id PageID) bool {
	for n := p.tail; n != nil; n = n.parent {
		if n.id == id {
			return true
		}
	}
	return false
}

// Strings returns the pages as plain strings, first to last.
func (p Path) Strings() []string {
	nodes := p.Nodes()
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = string(n)
	}
	return out
}

// String renders the path joined by PathSeparator.
func (p Path) String() string {
	return strings.Join(p.Strings(), PathSeparator)
}
