package selection

import "fmt"

// Document is the node ordering a selection is resolved against. Both
// document.Document and document.MutableDocument satisfy it.
type Document interface {
	// IndexByID returns the position of the node with the given ID,
	// or -1 when the ID is not in the document.
	IndexByID(id string) int
}

// Selection is a range between two document positions. Base is where
// the selection started; Extent is where it currently ends. The two
// may sit in any document order and may share a node.
type Selection struct {
	Base   Position
	Extent Position
}

// Collapsed creates a selection with base and extent at the same
// position.
func Collapsed(pos Position) Selection {
	return Selection{Base: pos, Extent: pos}
}

// IsCollapsed returns true if base and extent are the same position.
func (s Selection) IsCollapsed() bool {
	return s.Base == s.Extent
}

// IsExpanded returns true if the selection covers a non-empty range.
func (s Selection) IsExpanded() bool {
	return !s.IsCollapsed()
}

// Equal reports structural equality.
func (s Selection) Equal(other Selection) bool {
	return s == other
}

// String returns a human-readable representation of the selection.
func (s Selection) String() string {
	return fmt.Sprintf("Selection(%s -> %s)", s.Base, s.Extent)
}

// Affinity returns the selection's direction in the given document:
// Downstream when the extent sits at or after the base in document
// order, Upstream otherwise. A collapsed selection is Downstream.
//
// When base and extent share a node, two text positions compare by
// offset and two binary positions by side, with the downstream side
// after the upstream side. A mismatched pairing of position kinds in
// one node is not expected from the node/position convention but is
// not type-enforced; it resolves to Downstream.
//
// A node ID unknown to the document orders before every known node.
// When base and extent sit on two different unknown nodes there is no
// order to compare and the selection resolves to Downstream; when both
// sit on the same node the intra-node comparison applies whether or
// not the document knows that node.
func (s Selection) Affinity(doc Document) Affinity {
	if s.IsCollapsed() {
		return Downstream
	}

	baseIndex := doc.IndexByID(s.Base.NodeID)
	extentIndex := doc.IndexByID(s.Extent.NodeID)
	if baseIndex < 0 && extentIndex < 0 && s.Base.NodeID != s.Extent.NodeID {
		return Downstream
	}
	if baseIndex != extentIndex {
		if extentIndex > baseIndex {
			return Downstream
		}
		return Upstream
	}

	switch base := s.Base.NodePosition.(type) {
	case TextNodePosition:
		if extent, ok := s.Extent.NodePosition.(TextNodePosition); ok {
			if extent.Offset >= base.Offset {
				return Downstream
			}
			return Upstream
		}
	case BinaryNodePosition:
		if extent, ok := s.Extent.NodePosition.(BinaryNodePosition); ok {
			if base.Side == Downstream && extent.Side == Upstream {
				return Upstream
			}
			return Downstream
		}
	}
	return Downstream
}

// Normalize returns the selection with base and extent in document
// order: the result always has Downstream affinity. A collapsed or
// already-downstream selection is returned unchanged. Normalize is
// idempotent.
func (s Selection) Normalize(doc Document) Selection {
	if s.IsCollapsed() || s.Affinity(doc) == Downstream {
		return s
	}
	return Selection{Base: s.Extent, Extent: s.Base}
}

// Start returns the upstream-most of base and extent in the given
// document.
func (s Selection) Start(doc Document) Position {
	return s.Normalize(doc).Base
}

// End returns the downstream-most of base and extent in the given
// document.
func (s Selection) End(doc Document) Position {
	return s.Normalize(doc).Extent
}

// CollapseUpstream returns a collapsed selection at Start.
func (s Selection) CollapseUpstream(doc Document) Selection {
	return Collapsed(s.Start(doc))
}

// CollapseDownstream returns a collapsed selection at End.
func (s Selection) CollapseDownstream(doc Document) Selection {
	return Collapsed(s.End(doc))
}
