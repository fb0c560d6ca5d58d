package document

import (
	"reflect"

	"github.com/dshills/richdoc/attrtext"
)

// Node is one block-level unit of document content. The set of
// implementations is closed: paragraph, list item, code block, image,
// and horizontal rule.
//
// Nodes are immutable. Every With* method returns a new node with the
// selected field replaced and all other fields preserved.
type Node interface {
	// ID returns the node's stable identity, unique within a document.
	ID() string

	// Metadata returns a copy of the node's metadata map.
	Metadata() map[string]any

	// WithMetadata returns a copy of the node carrying the given
	// metadata in place of the old map.
	WithMetadata(metadata map[string]any) Node

	// Equal reports structural equality over all fields, metadata
	// included.
	Equal(other Node) bool

	// String returns a human-readable description of the node.
	String() string

	isNode()
}

// TextBlock is a text-bearing node: a paragraph, list item, or code
// block. Non-text nodes (image, horizontal rule) do not implement it.
type TextBlock interface {
	Node

	// Text returns the node's attributed text.
	Text() *attrtext.Text

	// WithText returns a copy of the node carrying the given text.
	WithText(text *attrtext.Text) TextBlock
}

// baseNode holds the identity and metadata every variant shares.
type baseNode struct {
	id   string
	meta map[string]any
}

func newBaseNode(id string, metadata map[string]any) baseNode {
	return baseNode{id: id, meta: copyMetadata(metadata)}
}

func (b baseNode) ID() string { return b.id }

func (b baseNode) Metadata() map[string]any { return copyMetadata(b.meta) }

func (b baseNode) metadataEqual(other baseNode) bool {
	if len(b.meta) != len(other.meta) {
		return false
	}
	for k, v := range b.meta {
		ov, ok := other.meta[k]
		if !ok || !reflect.DeepEqual(v, ov) {
			return false
		}
	}
	return true
}

// copyMetadata returns a defensive copy, mapping nil to nil.
func copyMetadata(metadata map[string]any) map[string]any {
	if metadata == nil {
		return nil
	}
	out := make(map[string]any, len(metadata))
	for k, v := range metadata {
		out[k] = v
	}
	return out
}

// textEqual compares two attributed texts, treating nil as empty.
func textEqual(a, b *attrtext.Text) bool {
	if a == nil {
		a = attrtext.New("")
	}
	if b == nil {
		b = attrtext.New("")
	}
	return a.Equal(b)
}
