package attrtext

import (
	"fmt"
	"sort"
)

// MarkerKind distinguishes the two boundary events of a span.
type MarkerKind uint8

const (
	MarkerStart MarkerKind = iota // opens a span at its offset
	MarkerEnd                     // closes a span at its offset (inclusive)
)

// String returns the string representation of the marker kind.
func (k MarkerKind) String() string {
	switch k {
	case MarkerStart:
		return "start"
	case MarkerEnd:
		return "end"
	default:
		return fmt.Sprintf("MarkerKind(%d)", uint8(k))
	}
}

// SpanMarker is a single span boundary: an attribution either starts or
// ends at a character offset. Both boundaries are inclusive.
type SpanMarker struct {
	Attribution Attribution
	Offset      int
	Kind        MarkerKind
}

// String returns a human-readable representation of the marker.
func (m SpanMarker) String() string {
	return fmt.Sprintf("%s@%d(%s)", m.Attribution.ID(), m.Offset, m.Kind)
}

// Compare returns -1 if m sorts before other, 0 if they tie, 1 if m
// sorts after other. Markers order by offset ascending; at equal
// offset a start sorts before an end.
func (m SpanMarker) Compare(other SpanMarker) int {
	if m.Offset != other.Offset {
		if m.Offset < other.Offset {
			return -1
		}
		return 1
	}
	if m.Kind != other.Kind {
		if m.Kind == MarkerStart {
			return -1
		}
		return 1
	}
	return 0
}

// sortMarkers sorts markers in place into canonical order.
func sortMarkers(markers []SpanMarker) {
	sort.SliceStable(markers, func(i, j int) bool {
		return markers[i].Compare(markers[j]) < 0
	})
}
