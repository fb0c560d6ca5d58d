package attrtext

import (
	"fmt"

	"github.com/rivo/uniseg"
)

// Caret movement over attributed text must not land inside a grapheme
// cluster: an emoji or combining sequence spans several runes but is a
// single user-perceived character. These helpers map a character offset
// to the nearest legal caret boundary in either direction.

// NextCharacterOffset returns the first grapheme boundary strictly
// after offset, or Len() when offset is already at or past the last
// boundary. Panics if offset is outside [0, Len()].
func (t *Text) NextCharacterOffset(offset int) int {
	t.checkCaretOffset(offset)
	boundary := 0
	state := -1
	rest := string(t.runes)
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		boundary += len([]rune(cluster))
		if boundary > offset {
			return boundary
		}
	}
	return len(t.runes)
}

// PrevCharacterOffset returns the last grapheme boundary strictly
// before offset, or 0 when offset is at the start. Panics if offset is
// outside [0, Len()].
func (t *Text) PrevCharacterOffset(offset int) int {
	t.checkCaretOffset(offset)
	boundary := 0
	state := -1
	rest := string(t.runes)
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		next := boundary + len([]rune(cluster))
		if next >= offset {
			return boundary
		}
		boundary = next
	}
	return boundary
}

// checkCaretOffset panics unless offset is a valid caret position,
// which includes the end of the text.
func (t *Text) checkCaretOffset(offset int) {
	if offset < 0 || offset > len(t.runes) {
		panic(fmt.Sprintf("attrtext: caret offset %d out of range for length %d", offset, len(t.runes)))
	}
}
