package selection

import "fmt"

// Affinity is a direction relative to document order. Upstream points
// toward the start of the document, downstream toward the end.
type Affinity uint8

const (
	Upstream Affinity = iota
	Downstream
)

// String returns the string representation of the affinity.
func (a Affinity) String() string {
	switch a {
	case Upstream:
		return "upstream"
	case Downstream:
		return "downstream"
	default:
		return fmt.Sprintf("Affinity(%d)", uint8(a))
	}
}

// NodePosition is a location inside a single node. The set of
// implementations is closed: TextNodePosition for text-bearing nodes
// and BinaryNodePosition for non-text nodes.
type NodePosition interface {
	fmt.Stringer
	isNodePosition()
}

// TextNodePosition addresses a caret offset inside a text-bearing
// node. The affinity breaks the tie when one offset has two visual
// locations, such as the end of a soft-wrapped line.
type TextNodePosition struct {
	Offset   int
	Affinity Affinity
}

func (TextNodePosition) isNodePosition() {}

// String returns a human-readable representation of the position.
func (p TextNodePosition) String() string {
	return fmt.Sprintf("text:%d(%s)", p.Offset, p.Affinity)
}

// BinaryNodePosition addresses one of the two locations a non-text
// node offers: upstream of its content or downstream of it.
type BinaryNodePosition struct {
	Side Affinity
}

func (BinaryNodePosition) isNodePosition() {}

// String returns a human-readable representation of the position.
func (p BinaryNodePosition) String() string {
	return fmt.Sprintf("binary:%s", p.Side)
}

// Position addresses a location in a document: a node plus a position
// inside that node. The pairing is not validated against any document
// at construction; consumers resolve the node ID lazily.
type Position struct {
	NodeID       string
	NodePosition NodePosition
}

// Equal reports structural equality.
func (p Position) Equal(other Position) bool {
	return p == other
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("%s@%s", p.NodeID, p.NodePosition)
}
