package document

import "fmt"

// ChangeEvent describes one structural or textual change made by a
// MutableDocument operation. The set of implementations is closed.
type ChangeEvent interface {
	fmt.Stringer
	isChangeEvent()
}

// NodeInserted reports a node added at an index.
type NodeInserted struct {
	NodeID string
	Index  int
}

func (NodeInserted) isChangeEvent() {}

// String returns a human-readable description of the event.
func (e NodeInserted) String() string {
	return fmt.Sprintf("NodeInserted(%s at %d)", e.NodeID, e.Index)
}

// NodeDeleted reports a node removed from an index.
type NodeDeleted struct {
	NodeID string
	Index  int
}

func (NodeDeleted) isChangeEvent() {}

// String returns a human-readable description of the event.
func (e NodeDeleted) String() string {
	return fmt.Sprintf("NodeDeleted(%s at %d)", e.NodeID, e.Index)
}

// NodeReplaced reports a node swapped for another in place.
type NodeReplaced struct {
	OldNodeID string
	NewNodeID string
}

func (NodeReplaced) isChangeEvent() {}

// String returns a human-readable description of the event.
func (e NodeReplaced) String() string {
	return fmt.Sprintf("NodeReplaced(%s -> %s)", e.OldNodeID, e.NewNodeID)
}

// NodeMoved reports a node relocated to a new index.
type NodeMoved struct {
	NodeID   string
	OldIndex int
	NewIndex int
}

func (NodeMoved) isChangeEvent() {}

// String returns a human-readable description of the event.
func (e NodeMoved) String() string {
	return fmt.Sprintf("NodeMoved(%s %d -> %d)", e.NodeID, e.OldIndex, e.NewIndex)
}

// TextChanged reports that a node's content changed without a change
// of identity or position.
type TextChanged struct {
	NodeID string
}

func (TextChanged) isChangeEvent() {}

// String returns a human-readable description of the event.
func (e TextChanged) String() string {
	return fmt.Sprintf("TextChanged(%s)", e.NodeID)
}

// Listener receives the full event batch of a single mutation. It is
// invoked synchronously on the mutating goroutine and must return
// quickly.
type Listener func(events []ChangeEvent)
