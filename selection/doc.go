// Package selection provides the position and selection model for
// block documents: intra-node positions, cross-node document
// positions, and base/extent selections that can range over many
// nodes.
//
// The selection package provides:
//
//   - TextNodePosition, a character offset with caret affinity inside
//     a text-bearing node
//   - BinaryNodePosition, one of the two addressable sides of a
//     non-text node
//   - Position, a node ID paired with an intra-node position
//   - Selection, a base/extent pair with document-order semantics
//
// A Position performs no validity check against a document when it is
// built; consumers resolve the node ID lazily. Selections carry no
// persisted direction flag. Direction is computed on demand against a
// document, through the Affinity and Normalize methods, which need
// only the document's node ordering (the Document interface here).
// Both document.Document and document.MutableDocument satisfy it.
//
// Basic usage:
//
//	sel := selection.Selection{
//	    Base:   selection.Position{NodeID: "n2", NodePosition: selection.TextNodePosition{Offset: 0}},
//	    Extent: selection.Position{NodeID: "n1", NodePosition: selection.TextNodePosition{Offset: 3}},
//	}
//	sel.Affinity(doc)  // Upstream: the extent precedes the base
//	sel.Normalize(doc) // base and extent swapped into document order
//
// All types are small immutable values, recomputed continuously as
// focus moves; they are safe to copy and share.
package selection
