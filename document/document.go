package document

import (
	"fmt"
	"strings"
)

// nodeList is the shared ordered-container core behind Document and
// MutableDocument. Lookups are linear scans, which is fine for the
// node counts a block document holds; callers needing more can layer
// an id-to-index cache on top.
type nodeList []Node

func (l nodeList) indexByID(id string) int {
	for i, n := range l {
		if n.ID() == id {
			return i
		}
	}
	return -1
}

func (l nodeList) byID(id string) Node {
	if i := l.indexByID(id); i >= 0 {
		return l[i]
	}
	return nil
}

func (l nodeList) before(id string) Node {
	if i := l.indexByID(id); i > 0 {
		return l[i-1]
	}
	return nil
}

func (l nodeList) after(id string) Node {
	if i := l.indexByID(id); i >= 0 && i < len(l)-1 {
		return l[i+1]
	}
	return nil
}

func (l nodeList) copy() []Node {
	out := make([]Node, len(l))
	copy(out, l)
	return out
}

// checkUnique returns ErrDuplicateNodeID if any two nodes share an ID,
// or ErrNilNode for a nil entry.
func (l nodeList) checkUnique() error {
	seen := make(map[string]struct{}, len(l))
	for _, n := range l {
		if n == nil {
			return ErrNilNode
		}
		if _, dup := seen[n.ID()]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateNodeID, n.ID())
		}
		seen[n.ID()] = struct{}{}
	}
	return nil
}

// Document is an immutable ordered list of nodes.
type Document struct {
	nodes nodeList
}

// New creates a document from the given nodes. The slice is copied.
// Returns ErrDuplicateNodeID if two nodes share an ID.
func New(nodes ...Node) (*Document, error) {
	l := make(nodeList, len(nodes))
	copy(l, nodes)
	if err := l.checkUnique(); err != nil {
		return nil, err
	}
	return &Document{nodes: l}, nil
}

// NodeCount returns the number of nodes.
func (d *Document) NodeCount() int { return len(d.nodes) }

// Nodes returns the full ordered node list as a copy.
func (d *Document) Nodes() []Node { return d.nodes.copy() }

// NodeByID returns the node with the given ID, or nil.
func (d *Document) NodeByID(id string) Node { return d.nodes.byID(id) }

// NodeAt returns the node at the given index. Panics if the index is
// out of range; callers validate against NodeCount first.
func (d *Document) NodeAt(index int) Node {
	if index < 0 || index >= len(d.nodes) {
		panic(fmt.Sprintf("document: node index %d out of range for count %d", index, len(d.nodes)))
	}
	return d.nodes[index]
}

// IndexByID returns the position of the node with the given ID, or -1
// if the ID is not in the document.
func (d *Document) IndexByID(id string) int { return d.nodes.indexByID(id) }

// NodeBefore returns the node preceding the given ID, or nil at the
// front or for an unknown ID.
func (d *Document) NodeBefore(id string) Node { return d.nodes.before(id) }

// NodeAfter returns the node following the given ID, or nil at the
// back or for an unknown ID.
func (d *Document) NodeAfter(id string) Node { return d.nodes.after(id) }

// FirstNode returns the first node, or nil for an empty document.
func (d *Document) FirstNode() Node {
	if len(d.nodes) == 0 {
		return nil
	}
	return d.nodes[0]
}

// LastNode returns the last node, or nil for an empty document.
func (d *Document) LastNode() Node {
	if len(d.nodes) == 0 {
		return nil
	}
	return d.nodes[len(d.nodes)-1]
}

// Equal reports structural equality: same nodes in the same order.
func (d *Document) Equal(other *Document) bool {
	if other == nil || len(d.nodes) != len(other.nodes) {
		return false
	}
	for i, n := range d.nodes {
		if !n.Equal(other.nodes[i]) {
			return false
		}
	}
	return true
}

// String returns a human-readable description of the document.
func (d *Document) String() string {
	var b strings.Builder
	b.WriteString("Document[")
	for i, n := range d.nodes {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(n.String())
	}
	b.WriteString("]")
	return b.String()
}
