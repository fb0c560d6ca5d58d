package attrtext

import "fmt"

// Span is a resolved attribution interval. Both Start and End are
// inclusive character offsets.
type Span struct {
	Attribution Attribution
	Start       int
	End         int
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	return fmt.Sprintf("[%d..%d]%s", s.Start, s.End, s.Attribution.ID())
}

// Len returns the number of characters the span covers.
func (s Span) Len() int {
	return s.End - s.Start + 1
}

// Contains returns true if the given offset lies within the span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset <= s.End
}

// Overlaps returns true if the span intersects the inclusive range
// [start, end].
func (s Span) Overlaps(start, end int) bool {
	return s.Start <= end && s.End >= start
}

// Equal returns true if other carries the same attribution over the
// same interval.
func (s Span) Equal(other Span) bool {
	return s.Start == other.Start && s.End == other.End &&
		s.Attribution == other.Attribution
}
