package document

import (
	"fmt"

	"github.com/dshills/richdoc/attrtext"
)

// ParagraphNode is the default text-bearing block.
type ParagraphNode struct {
	baseNode
	text *attrtext.Text
}

// NewParagraph creates a paragraph node.
func NewParagraph(id string, text *attrtext.Text) *ParagraphNode {
	return NewParagraphWithMetadata(id, text, nil)
}

// NewParagraphWithMetadata creates a paragraph node with metadata.
func NewParagraphWithMetadata(id string, text *attrtext.Text, metadata map[string]any) *ParagraphNode {
	if text == nil {
		text = attrtext.New("")
	}
	return &ParagraphNode{baseNode: newBaseNode(id, metadata), text: text}
}

func (p *ParagraphNode) isNode() {}

// Text returns the paragraph's attributed text.
func (p *ParagraphNode) Text() *attrtext.Text { return p.text }

// WithText returns a copy of the paragraph carrying the given text.
func (p *ParagraphNode) WithText(text *attrtext.Text) TextBlock {
	return NewParagraphWithMetadata(p.id, text, p.meta)
}

// WithMetadata returns a copy of the paragraph carrying the given
// metadata.
func (p *ParagraphNode) WithMetadata(metadata map[string]any) Node {
	return NewParagraphWithMetadata(p.id, p.text, metadata)
}

// Equal reports structural equality.
func (p *ParagraphNode) Equal(other Node) bool {
	o, ok := other.(*ParagraphNode)
	return ok && p.id == o.id && p.metadataEqual(o.baseNode) && textEqual(p.text, o.text)
}

// String returns a human-readable description of the paragraph.
func (p *ParagraphNode) String() string {
	return fmt.Sprintf("Paragraph(%s, %q)", p.id, p.text.Text())
}

// ListItemType distinguishes ordered from unordered list items.
type ListItemType uint8

const (
	ListItemUnordered ListItemType = iota
	ListItemOrdered
)

// String returns the string representation of the list item type.
func (t ListItemType) String() string {
	switch t {
	case ListItemUnordered:
		return "unordered"
	case ListItemOrdered:
		return "ordered"
	default:
		return fmt.Sprintf("ListItemType(%d)", uint8(t))
	}
}

// ListItemNode is a text-bearing block belonging to an ordered or
// unordered list, with a nesting indent starting at zero.
type ListItemNode struct {
	baseNode
	text     *attrtext.Text
	itemType ListItemType
	indent   int
}

// NewListItem creates a list item node with indent zero.
func NewListItem(id string, text *attrtext.Text, itemType ListItemType) *ListItemNode {
	return newListItem(id, text, itemType, 0, nil)
}

func newListItem(id string, text *attrtext.Text, itemType ListItemType, indent int, metadata map[string]any) *ListItemNode {
	if text == nil {
		text = attrtext.New("")
	}
	return &ListItemNode{
		baseNode: newBaseNode(id, metadata),
		text:     text,
		itemType: itemType,
		indent:   indent,
	}
}

func (l *ListItemNode) isNode() {}

// Text returns the list item's attributed text.
func (l *ListItemNode) Text() *attrtext.Text { return l.text }

// ItemType returns whether the item is ordered or unordered.
func (l *ListItemNode) ItemType() ListItemType { return l.itemType }

// Indent returns the nesting level, starting at zero.
func (l *ListItemNode) Indent() int { return l.indent }

// WithText returns a copy of the list item carrying the given text.
func (l *ListItemNode) WithText(text *attrtext.Text) TextBlock {
	return newListItem(l.id, text, l.itemType, l.indent, l.meta)
}

// WithIndent returns a copy of the list item at the given indent.
func (l *ListItemNode) WithIndent(indent int) *ListItemNode {
	return newListItem(l.id, l.text, l.itemType, indent, l.meta)
}

// WithItemType returns a copy of the list item with the given type.
func (l *ListItemNode) WithItemType(itemType ListItemType) *ListItemNode {
	return newListItem(l.id, l.text, itemType, l.indent, l.meta)
}

// WithMetadata returns a copy of the list item carrying the given
// metadata.
func (l *ListItemNode) WithMetadata(metadata map[string]any) Node {
	return newListItem(l.id, l.text, l.itemType, l.indent, metadata)
}

// Equal reports structural equality.
func (l *ListItemNode) Equal(other Node) bool {
	o, ok := other.(*ListItemNode)
	return ok && l.id == o.id && l.itemType == o.itemType && l.indent == o.indent &&
		l.metadataEqual(o.baseNode) && textEqual(l.text, o.text)
}

// String returns a human-readable description of the list item.
func (l *ListItemNode) String() string {
	return fmt.Sprintf("ListItem(%s, %s, indent=%d, %q)", l.id, l.itemType, l.indent, l.text.Text())
}

// CodeBlockNode is a text-bearing block of preformatted code with an
// optional language tag.
type CodeBlockNode struct {
	baseNode
	text     *attrtext.Text
	language string
}

// NewCodeBlock creates a code block node.
func NewCodeBlock(id string, text *attrtext.Text, language string) *CodeBlockNode {
	if text == nil {
		text = attrtext.New("")
	}
	return &CodeBlockNode{baseNode: newBaseNode(id, nil), text: text, language: language}
}

func (c *CodeBlockNode) isNode() {}

// Text returns the code block's attributed text.
func (c *CodeBlockNode) Text() *attrtext.Text { return c.text }

// Language returns the language tag, which may be empty.
func (c *CodeBlockNode) Language() string { return c.language }

// WithText returns a copy of the code block carrying the given text.
func (c *CodeBlockNode) WithText(text *attrtext.Text) TextBlock {
	n := NewCodeBlock(c.id, text, c.language)
	n.meta = copyMetadata(c.meta)
	return n
}

// WithLanguage returns a copy of the code block with the given
// language tag.
func (c *CodeBlockNode) WithLanguage(language string) *CodeBlockNode {
	n := NewCodeBlock(c.id, c.text, language)
	n.meta = copyMetadata(c.meta)
	return n
}

// WithMetadata returns a copy of the code block carrying the given
// metadata.
func (c *CodeBlockNode) WithMetadata(metadata map[string]any) Node {
	n := NewCodeBlock(c.id, c.text, c.language)
	n.meta = copyMetadata(metadata)
	return n
}

// Equal reports structural equality.
func (c *CodeBlockNode) Equal(other Node) bool {
	o, ok := other.(*CodeBlockNode)
	return ok && c.id == o.id && c.language == o.language &&
		c.metadataEqual(o.baseNode) && textEqual(c.text, o.text)
}

// String returns a human-readable description of the code block.
func (c *CodeBlockNode) String() string {
	return fmt.Sprintf("CodeBlock(%s, lang=%s, %q)", c.id, c.language, c.text.Text())
}

// ImageNode is a non-text block referencing an image. It is only
// addressable with a binary position, before or after its content.
type ImageNode struct {
	baseNode
	imageURL string
	altText  string
}

// NewImage creates an image node.
func NewImage(id, imageURL, altText string) *ImageNode {
	return &ImageNode{baseNode: newBaseNode(id, nil), imageURL: imageURL, altText: altText}
}

func (i *ImageNode) isNode() {}

// ImageURL returns the image location.
func (i *ImageNode) ImageURL() string { return i.imageURL }

// AltText returns the alternative text description.
func (i *ImageNode) AltText() string { return i.altText }

// WithImageURL returns a copy of the image pointing at the given URL.
func (i *ImageNode) WithImageURL(imageURL string) *ImageNode {
	n := NewImage(i.id, imageURL, i.altText)
	n.meta = copyMetadata(i.meta)
	return n
}

// WithAltText returns a copy of the image with the given alt text.
func (i *ImageNode) WithAltText(altText string) *ImageNode {
	n := NewImage(i.id, i.imageURL, altText)
	n.meta = copyMetadata(i.meta)
	return n
}

// WithMetadata returns a copy of the image carrying the given metadata.
func (i *ImageNode) WithMetadata(metadata map[string]any) Node {
	n := NewImage(i.id, i.imageURL, i.altText)
	n.meta = copyMetadata(metadata)
	return n
}

// Equal reports structural equality.
func (i *ImageNode) Equal(other Node) bool {
	o, ok := other.(*ImageNode)
	return ok && i.id == o.id && i.imageURL == o.imageURL && i.altText == o.altText &&
		i.metadataEqual(o.baseNode)
}

// String returns a human-readable description of the image.
func (i *ImageNode) String() string {
	return fmt.Sprintf("Image(%s, %s)", i.id, i.imageURL)
}

// HorizontalRuleNode is a non-text divider block. It is only
// addressable with a binary position.
type HorizontalRuleNode struct {
	baseNode
}

// NewHorizontalRule creates a horizontal rule node.
func NewHorizontalRule(id string) *HorizontalRuleNode {
	return &HorizontalRuleNode{baseNode: newBaseNode(id, nil)}
}

func (h *HorizontalRuleNode) isNode() {}

// WithMetadata returns a copy of the rule carrying the given metadata.
func (h *HorizontalRuleNode) WithMetadata(metadata map[string]any) Node {
	n := NewHorizontalRule(h.id)
	n.meta = copyMetadata(metadata)
	return n
}

// Equal reports structural equality.
func (h *HorizontalRuleNode) Equal(other Node) bool {
	o, ok := other.(*HorizontalRuleNode)
	return ok && h.id == o.id && h.metadataEqual(o.baseNode)
}

// String returns a human-readable description of the rule.
func (h *HorizontalRuleNode) String() string {
	return fmt.Sprintf("HorizontalRule(%s)", h.id)
}
