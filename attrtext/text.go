package attrtext

import (
	"fmt"
	"strings"
)

// Text is an immutable attributed string: plain text plus normalized
// span markers. All mutating methods return a new Text; the receiver is
// never modified.
//
// Offsets are character (rune) indexed. Valid character offsets are
// [0, Len()-1]; insertion points additionally allow Len().
type Text struct {
	runes   []rune
	markers []SpanMarker
}

// New creates an attributed text with no attributions.
func New(text string) *Text {
	return &Text{runes: []rune(text)}
}

// NewWithMarkers creates an attributed text from raw span markers. The
// markers are copied, sorted, and normalized; the input slice is not
// retained.
func NewWithMarkers(text string, markers []SpanMarker) *Text {
	ms := make([]SpanMarker, len(markers))
	copy(ms, markers)
	sortMarkers(ms)
	return &Text{runes: []rune(text), markers: normalizeMarkers(ms)}
}

// newFromSpans builds a Text directly from resolved spans.
func newFromSpans(runes []rune, spans []Span) *Text {
	return &Text{runes: runes, markers: markersFromSpans(normalizeSpans(spans))}
}

// Len returns the length of the text in characters.
func (t *Text) Len() int { return len(t.runes) }

// IsEmpty returns true if the text has no characters.
func (t *Text) IsEmpty() bool { return len(t.runes) == 0 }

// Text returns the plain string content.
func (t *Text) Text() string { return string(t.runes) }

// Markers returns a copy of the normalized, sorted marker list.
func (t *Text) Markers() []SpanMarker {
	ms := make([]SpanMarker, len(t.markers))
	copy(ms, t.markers)
	return ms
}

// Spans returns every resolved attribution span in canonical order.
func (t *Text) Spans() []Span {
	return resolveSpans(t.markers)
}

// String returns a human-readable representation of the text and its
// spans.
func (t *Text) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Text(%q", string(t.runes))
	for _, s := range t.Spans() {
		b.WriteString(", ")
		b.WriteString(s.String())
	}
	b.WriteString(")")
	return b.String()
}

// GetAttributionsAt returns every attribution whose span covers the
// given character offset. Panics if offset is out of range.
func (t *Text) GetAttributionsAt(offset int) []Attribution {
	t.checkOffset(offset)
	var attrs []Attribution
	for _, s := range t.Spans() {
		if s.Contains(offset) {
			attrs = append(attrs, s.Attribution)
		}
	}
	return attrs
}

// HasAttributionAt returns true if the given attribution covers the
// offset. Offsets outside the text have no attributions.
func (t *Text) HasAttributionAt(offset int, attribution Attribution) bool {
	if offset < 0 || offset >= len(t.runes) {
		return false
	}
	_, ok := t.GetAttributionSpanAt(offset, attribution)
	return ok
}

// GetAttributionSpanAt returns the resolved span of the given
// attribution covering offset, if any.
func (t *Text) GetAttributionSpanAt(offset int, attribution Attribution) (Span, bool) {
	for _, s := range t.Spans() {
		if s.Attribution == attribution && s.Contains(offset) {
			return s, true
		}
	}
	return Span{}, false
}

// GetAttributionSpansInRange returns every resolved span that overlaps
// the inclusive range [start, end].
func (t *Text) GetAttributionSpansInRange(start, end int) []Span {
	var out []Span
	for _, s := range t.Spans() {
		if s.Overlaps(start, end) {
			out = append(out, s)
		}
	}
	return out
}

// ApplyAttribution returns a new Text with the attribution applied over
// the inclusive range [start, end]. Spans of the same merge class that
// now overlap or sit adjacent collapse into one contiguous span.
// Panics if start > end or either offset is out of range.
func (t *Text) ApplyAttribution(attribution Attribution, start, end int) *Text {
	t.checkSpan(start, end)
	markers := make([]SpanMarker, 0, len(t.markers)+2)
	markers = append(markers, t.markers...)
	markers = append(markers,
		SpanMarker{Attribution: attribution, Offset: start, Kind: MarkerStart},
		SpanMarker{Attribution: attribution, Offset: end, Kind: MarkerEnd},
	)
	sortMarkers(markers)
	return &Text{runes: t.runes, markers: normalizeMarkers(markers)}
}

// RemoveAttribution returns a new Text with the attribution cleared
// over the inclusive range [start, end]. A span extending past either
// side of the range survives as the clipped remainder. Returns the
// receiver itself when the attribution is absent from the whole text.
// Panics if start > end or either offset is out of range.
func (t *Text) RemoveAttribution(attribution Attribution, start, end int) *Text {
	t.checkSpan(start, end)
	spans := t.Spans()
	found := false
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Attribution != attribution {
			out = append(out, s)
			continue
		}
		found = true
		if !s.Overlaps(start, end) {
			out = append(out, s)
			continue
		}
		if s.Start < start {
			out = append(out, Span{Attribution: s.Attribution, Start: s.Start, End: start - 1})
		}
		if s.End > end {
			out = append(out, Span{Attribution: s.Attribution, Start: end + 1, End: s.End})
		}
	}
	if !found {
		return t
	}
	return newFromSpans(t.runes, out)
}

// ToggleAttribution removes the attribution over [start, end] when
// every character in the range already carries it, and otherwise
// applies it over the entire range. Panics on an invalid range.
func (t *Text) ToggleAttribution(attribution Attribution, start, end int) *Text {
	t.checkSpan(start, end)
	if t.isCoveredBy(attribution, start, end) {
		return t.RemoveAttribution(attribution, start, end)
	}
	return t.ApplyAttribution(attribution, start, end)
}

// isCoveredBy reports whether the attribution covers every character in
// the inclusive range [start, end].
func (t *Text) isCoveredBy(attribution Attribution, start, end int) bool {
	next := start
	for _, s := range t.Spans() {
		if s.Attribution != attribution || !s.Overlaps(next, end) {
			continue
		}
		if s.Start > next {
			return false
		}
		if s.End+1 > next {
			next = s.End + 1
		}
		if next > end {
			return true
		}
	}
	return next > end
}

// CopyText extracts the half-open range [start, end) as a new Text.
// Surviving spans are clipped to the extracted range and re-indexed so
// the extraction starts at offset zero. Panics on an invalid range.
func (t *Text) CopyText(start, end int) *Text {
	if start < 0 || end > len(t.runes) || start > end {
		panic(fmt.Sprintf("attrtext: copy range [%d,%d) out of range for length %d", start, end, len(t.runes)))
	}
	runes := make([]rune, end-start)
	copy(runes, t.runes[start:end])
	var spans []Span
	for _, s := range t.Spans() {
		if end == start || !s.Overlaps(start, end-1) {
			continue
		}
		clipped := Span{Attribution: s.Attribution, Start: s.Start, End: s.End}
		if clipped.Start < start {
			clipped.Start = start
		}
		if clipped.End > end-1 {
			clipped.End = end - 1
		}
		clipped.Start -= start
		clipped.End -= start
		spans = append(spans, clipped)
	}
	return newFromSpans(runes, spans)
}

// CopyTextFrom extracts [start, Len()) as a new Text.
func (t *Text) CopyTextFrom(start int) *Text {
	return t.CopyText(start, len(t.runes))
}

// Insert splices other into the receiver at the given offset. Markers
// of the receiver at or after the offset shift right by other's length;
// markers of other shift right by the offset. Spans of the same merge
// class meeting across the splice boundary collapse. Panics if offset
// is outside [0, Len()].
func (t *Text) Insert(offset int, other *Text) *Text {
	if offset < 0 || offset > len(t.runes) {
		panic(fmt.Sprintf("attrtext: insert offset %d out of range for length %d", offset, len(t.runes)))
	}
	runes := make([]rune, 0, len(t.runes)+len(other.runes))
	runes = append(runes, t.runes[:offset]...)
	runes = append(runes, other.runes...)
	runes = append(runes, t.runes[offset:]...)

	markers := make([]SpanMarker, 0, len(t.markers)+len(other.markers))
	for _, m := range t.markers {
		if m.Offset >= offset {
			m.Offset += len(other.runes)
		}
		markers = append(markers, m)
	}
	for _, m := range other.markers {
		m.Offset += offset
		markers = append(markers, m)
	}
	sortMarkers(markers)
	return &Text{runes: runes, markers: normalizeMarkers(markers)}
}

// InsertString splices a plain, unattributed string at the offset.
func (t *Text) InsertString(offset int, s string) *Text {
	return t.Insert(offset, New(s))
}

// Plus returns the concatenation of the receiver and other.
func (t *Text) Plus(other *Text) *Text {
	return t.Insert(len(t.runes), other)
}

// Delete removes the half-open range [start, end). Spans wholly inside
// the range are dropped; spans at or after end shift left; spans
// straddling a boundary are clipped to the surviving text. Panics on an
// invalid range.
func (t *Text) Delete(start, end int) *Text {
	if start < 0 || end > len(t.runes) || start > end {
		panic(fmt.Sprintf("attrtext: delete range [%d,%d) out of range for length %d", start, end, len(t.runes)))
	}
	d := end - start
	runes := make([]rune, 0, len(t.runes)-d)
	runes = append(runes, t.runes[:start]...)
	runes = append(runes, t.runes[end:]...)

	var spans []Span
	for _, s := range t.Spans() {
		switch {
		case s.End < start:
			spans = append(spans, s)
		case s.Start >= end:
			spans = append(spans, Span{Attribution: s.Attribution, Start: s.Start - d, End: s.End - d})
		default:
			if s.Start < start {
				spans = append(spans, Span{Attribution: s.Attribution, Start: s.Start, End: start - 1})
			}
			if s.End >= end {
				spans = append(spans, Span{Attribution: s.Attribution, Start: start, End: s.End - d})
			}
		}
	}
	return newFromSpans(runes, spans)
}

// ReplaceSub replaces the inclusive range [start, end] with the given
// replacement, equivalent to Delete(start, end+1) then Insert(start,
// replacement).
func (t *Text) ReplaceSub(start, end int, replacement *Text) *Text {
	return t.Delete(start, end+1).Insert(start, replacement)
}

// Equal returns true if other has the same text content and the same
// resolved attribution spans.
func (t *Text) Equal(other *Text) bool {
	if other == nil || len(t.runes) != len(other.runes) {
		return false
	}
	for i, r := range t.runes {
		if other.runes[i] != r {
			return false
		}
	}
	a, b := t.Spans(), other.Spans()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// checkOffset panics if offset does not address a character.
func (t *Text) checkOffset(offset int) {
	if offset < 0 || offset >= len(t.runes) {
		panic(fmt.Sprintf("attrtext: offset %d out of range for length %d", offset, len(t.runes)))
	}
}

// checkSpan panics unless [start, end] is a valid inclusive span.
func (t *Text) checkSpan(start, end int) {
	if start > end {
		panic(fmt.Sprintf("attrtext: span start %d after end %d", start, end))
	}
	t.checkOffset(start)
	t.checkOffset(end)
}
