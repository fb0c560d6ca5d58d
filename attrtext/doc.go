// Package attrtext provides an immutable attributed string: plain text
// plus a sorted list of span markers that tag character ranges with
// attributions such as bold, italic, or a link.
//
// The attrtext package provides:
//
//   - Attribution, a named comparable tag with a merge predicate
//   - SpanMarker, a single start/end boundary at a character offset
//   - Span, a resolved inclusive [Start, End] attribution interval
//   - Text, the attributed string with the full span algebra
//
// All offsets are character (rune) indexed, never byte indexed. Span
// endpoints are inclusive on both ends; text extraction and deletion
// ranges are half-open [start, end) to match ordinary slicing.
//
// Every mutating operation on Text returns a new value; the receiver is
// never modified. The marker list of any Text is always sorted (offset
// ascending, start before end at equal offset) and normalized: spans of
// the same merge class that touch or overlap (gap of at most one
// character) are collapsed into a single span.
//
// Basic usage:
//
//	bold := attrtext.NamedAttribution("bold")
//	t := attrtext.New("hello world")
//	t = t.ApplyAttribution(bold, 0, 4)
//	t = t.ApplyAttribution(bold, 3, 8)
//	t.HasAttributionAt(6, bold) // true, spans merged into [0,8]
//
// Thread Safety:
//
// Text values are immutable and safe to share across goroutines once
// published. No internal synchronization is needed or performed.
package attrtext
