package attrtext

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var (
	bold   = NamedAttribution("bold")
	italic = NamedAttribution("italic")
)

func spansOf(t *testing.T, txt *Text) []Span {
	t.Helper()
	return txt.Spans()
}

func TestNew(t *testing.T) {
	txt := New("hello world")

	if txt.Len() != 11 {
		t.Errorf("expected length 11, got %d", txt.Len())
	}
	if txt.IsEmpty() {
		t.Error("text should not be empty")
	}
	if txt.Text() != "hello world" {
		t.Errorf("expected 'hello world', got %q", txt.Text())
	}
	if len(txt.Spans()) != 0 {
		t.Errorf("expected no spans, got %v", txt.Spans())
	}
}

func TestLenCountsCharactersNotBytes(t *testing.T) {
	txt := New("héllo")
	if txt.Len() != 5 {
		t.Errorf("expected 5 characters, got %d", txt.Len())
	}
}

func TestApplyAttribution(t *testing.T) {
	txt := New("hello world").ApplyAttribution(bold, 0, 4)

	for offset := 0; offset <= 4; offset++ {
		if !txt.HasAttributionAt(offset, bold) {
			t.Errorf("expected bold at offset %d", offset)
		}
	}
	if txt.HasAttributionAt(5, bold) {
		t.Error("expected no bold at offset 5")
	}
}

func TestApplyAttributionImmutable(t *testing.T) {
	orig := New("hello world")
	orig.ApplyAttribution(bold, 0, 4)

	if len(orig.Spans()) != 0 {
		t.Error("ApplyAttribution mutated the receiver")
	}
}

func TestApplyAttributionOverlapMerges(t *testing.T) {
	txt := New("hello world").
		ApplyAttribution(bold, 0, 4).
		ApplyAttribution(bold, 3, 8)

	want := []Span{{Attribution: bold, Start: 0, End: 8}}
	if diff := cmp.Diff(want, spansOf(t, txt)); diff != "" {
		t.Errorf("spans mismatch (-want +got):\n%s", diff)
	}
	if txt.HasAttributionAt(9, bold) {
		t.Error("expected no bold at offset 9")
	}
}

func TestApplyAttributionAdjacentMerges(t *testing.T) {
	txt := New("hello world").
		ApplyAttribution(bold, 0, 3).
		ApplyAttribution(bold, 4, 7)

	want := []Span{{Attribution: bold, Start: 0, End: 7}}
	if diff := cmp.Diff(want, spansOf(t, txt)); diff != "" {
		t.Errorf("spans mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyAttributionGapStaysSplit(t *testing.T) {
	txt := New("hello world").
		ApplyAttribution(bold, 0, 2).
		ApplyAttribution(bold, 5, 7)

	if got := len(txt.Spans()); got != 2 {
		t.Errorf("expected 2 spans across a gap, got %d: %v", got, txt.Spans())
	}
}

func TestApplyAttributionIdempotent(t *testing.T) {
	once := New("hello world").ApplyAttribution(bold, 2, 6)
	twice := once.ApplyAttribution(bold, 2, 6)

	if !once.Equal(twice) {
		t.Errorf("second apply changed the span set: %v vs %v", once, twice)
	}
}

func TestApplyDistinctAttributionsDoNotMerge(t *testing.T) {
	txt := New("hello world").
		ApplyAttribution(bold, 0, 4).
		ApplyAttribution(italic, 5, 8)

	if got := len(txt.Spans()); got != 2 {
		t.Errorf("expected 2 spans, got %d: %v", got, txt.Spans())
	}
	attrs := txt.GetAttributionsAt(2)
	if len(attrs) != 1 || attrs[0] != Attribution(bold) {
		t.Errorf("expected only bold at offset 2, got %v", attrs)
	}
}

func TestLinkMergeRequiresSameURL(t *testing.T) {
	a := LinkAttribution{URL: "https://example.com/a"}
	b := LinkAttribution{URL: "https://example.com/b"}

	txt := New("two links here").
		ApplyAttribution(a, 0, 3).
		ApplyAttribution(b, 4, 8)
	if got := len(txt.Spans()); got != 2 {
		t.Errorf("links to different URLs should not merge, got %v", txt.Spans())
	}

	same := New("one link here!").
		ApplyAttribution(a, 0, 3).
		ApplyAttribution(a, 4, 8)
	want := []Span{{Attribution: a, Start: 0, End: 8}}
	if diff := cmp.Diff(want, spansOf(t, same)); diff != "" {
		t.Errorf("same-URL links should merge (-want +got):\n%s", diff)
	}
}

func TestGetAttributionSpanAt(t *testing.T) {
	txt := New("hello world").ApplyAttribution(bold, 3, 8)

	span, ok := txt.GetAttributionSpanAt(5, bold)
	if !ok {
		t.Fatal("expected a bold span at offset 5")
	}
	if span.Start != 3 || span.End != 8 {
		t.Errorf("expected [3..8], got %v", span)
	}

	if _, ok := txt.GetAttributionSpanAt(1, bold); ok {
		t.Error("expected no bold span at offset 1")
	}
	if _, ok := txt.GetAttributionSpanAt(5, italic); ok {
		t.Error("expected no italic span at offset 5")
	}
}

func TestGetAttributionSpansInRange(t *testing.T) {
	txt := New("hello world").
		ApplyAttribution(bold, 0, 2).
		ApplyAttribution(italic, 4, 6).
		ApplyAttribution(bold, 8, 10)

	got := txt.GetAttributionSpansInRange(2, 8)
	if len(got) != 3 {
		t.Fatalf("expected 3 overlapping spans, got %d: %v", len(got), got)
	}

	got = txt.GetAttributionSpansInRange(3, 3)
	if len(got) != 0 {
		t.Errorf("expected no spans at the uncovered offset, got %v", got)
	}
}

func TestRemoveAttributionSplitsSpan(t *testing.T) {
	txt := New("hello world").
		ApplyAttribution(bold, 0, 10).
		RemoveAttribution(bold, 4, 6)

	want := []Span{
		{Attribution: bold, Start: 0, End: 3},
		{Attribution: bold, Start: 7, End: 10},
	}
	if diff := cmp.Diff(want, spansOf(t, txt)); diff != "" {
		t.Errorf("spans mismatch (-want +got):\n%s", diff)
	}
}

func TestRemoveAttributionAbsentReturnsReceiver(t *testing.T) {
	txt := New("hello world").ApplyAttribution(italic, 0, 4)

	got := txt.RemoveAttribution(bold, 0, 4)
	if got != txt {
		t.Error("removing an absent attribution should return the receiver itself")
	}
}

func TestRemoveAttributionLeavesOtherAttributions(t *testing.T) {
	txt := New("hello world").
		ApplyAttribution(bold, 0, 6).
		ApplyAttribution(italic, 0, 6).
		RemoveAttribution(bold, 0, 6)

	if txt.HasAttributionAt(3, bold) {
		t.Error("bold should be removed")
	}
	if !txt.HasAttributionAt(3, italic) {
		t.Error("italic should survive")
	}
}

func TestToggleAttributionAppliesWholeRange(t *testing.T) {
	// Partial coverage applies the attribution over the entire range,
	// not just the gaps.
	txt := New("hello world").
		ApplyAttribution(bold, 0, 4).
		ToggleAttribution(bold, 3, 8)

	want := []Span{{Attribution: bold, Start: 0, End: 8}}
	if diff := cmp.Diff(want, spansOf(t, txt)); diff != "" {
		t.Errorf("spans mismatch (-want +got):\n%s", diff)
	}
}

func TestToggleAttributionRemovesWhenCovered(t *testing.T) {
	txt := New("hello world").
		ApplyAttribution(bold, 0, 10).
		ToggleAttribution(bold, 0, 10)

	if len(txt.Spans()) != 0 {
		t.Errorf("expected no spans after toggling full coverage, got %v", txt.Spans())
	}
}

func TestToggleAttributionTwiceRestores(t *testing.T) {
	orig := New("hello world").ApplyAttribution(bold, 0, 8)

	toggled := orig.ToggleAttribution(bold, 3, 5).ToggleAttribution(bold, 3, 5)
	if !orig.Equal(toggled) {
		t.Errorf("double toggle should restore original: %v vs %v", orig, toggled)
	}

	plain := New("hello world")
	toggled = plain.ToggleAttribution(bold, 0, 4).ToggleAttribution(bold, 0, 4)
	if !plain.Equal(toggled) {
		t.Errorf("double toggle on plain text should restore original: %v", toggled)
	}
}

func TestCopyText(t *testing.T) {
	txt := New("hello world").ApplyAttribution(bold, 3, 8)

	sub := txt.CopyText(4, 7)
	if sub.Text() != "o w" {
		t.Errorf("expected 'o w', got %q", sub.Text())
	}
	want := []Span{{Attribution: bold, Start: 0, End: 2}}
	if diff := cmp.Diff(want, spansOf(t, sub)); diff != "" {
		t.Errorf("clipped spans mismatch (-want +got):\n%s", diff)
	}
}

func TestCopyTextFrom(t *testing.T) {
	txt := New("hello world").ApplyAttribution(bold, 6, 10)

	tail := txt.CopyTextFrom(6)
	if tail.Text() != "world" {
		t.Errorf("expected 'world', got %q", tail.Text())
	}
	want := []Span{{Attribution: bold, Start: 0, End: 4}}
	if diff := cmp.Diff(want, spansOf(t, tail)); diff != "" {
		t.Errorf("spans mismatch (-want +got):\n%s", diff)
	}
}

func TestCopyTextEmptyRange(t *testing.T) {
	txt := New("hello").ApplyAttribution(bold, 0, 4)

	sub := txt.CopyText(2, 2)
	if !sub.IsEmpty() || len(sub.Spans()) != 0 {
		t.Errorf("expected empty extraction, got %v", sub)
	}
}

func TestInsertShiftsMarkers(t *testing.T) {
	txt := New("helloworld").
		ApplyAttribution(bold, 5, 9).
		InsertString(5, ", ")

	if txt.Text() != "hello, world" {
		t.Errorf("expected 'hello, world', got %q", txt.Text())
	}
	want := []Span{{Attribution: bold, Start: 7, End: 11}}
	if diff := cmp.Diff(want, spansOf(t, txt)); diff != "" {
		t.Errorf("spans mismatch (-want +got):\n%s", diff)
	}
}

func TestInsertInsideSpanExtendsIt(t *testing.T) {
	txt := New("bolded").
		ApplyAttribution(bold, 0, 5).
		InsertString(3, "xx")

	want := []Span{{Attribution: bold, Start: 0, End: 7}}
	if diff := cmp.Diff(want, spansOf(t, txt)); diff != "" {
		t.Errorf("spans mismatch (-want +got):\n%s", diff)
	}
}

func TestInsertMergesAcrossSpliceBoundary(t *testing.T) {
	head := New("hello").ApplyAttribution(bold, 0, 4)
	tail := New(" world").ApplyAttribution(bold, 0, 5)

	joined := head.Insert(5, tail)
	if joined.Text() != "hello world" {
		t.Errorf("expected 'hello world', got %q", joined.Text())
	}
	want := []Span{{Attribution: bold, Start: 0, End: 10}}
	if diff := cmp.Diff(want, spansOf(t, joined)); diff != "" {
		t.Errorf("spans mismatch (-want +got):\n%s", diff)
	}
}

func TestPlus(t *testing.T) {
	joined := New("ab").ApplyAttribution(bold, 0, 1).
		Plus(New("cd").ApplyAttribution(italic, 0, 1))

	if joined.Text() != "abcd" {
		t.Errorf("expected 'abcd', got %q", joined.Text())
	}
	want := []Span{
		{Attribution: bold, Start: 0, End: 1},
		{Attribution: italic, Start: 2, End: 3},
	}
	if diff := cmp.Diff(want, spansOf(t, joined)); diff != "" {
		t.Errorf("spans mismatch (-want +got):\n%s", diff)
	}
}

func TestDeleteDropsInteriorSpan(t *testing.T) {
	txt := New("hello world").
		ApplyAttribution(bold, 3, 5).
		Delete(2, 8)

	if txt.Text() != "herld" {
		t.Errorf("expected 'herld', got %q", txt.Text())
	}
	if len(txt.Spans()) != 0 {
		t.Errorf("interior span should be dropped, got %v", txt.Spans())
	}
}

func TestDeleteShiftsTrailingSpan(t *testing.T) {
	txt := New("hello world").
		ApplyAttribution(bold, 6, 10).
		Delete(0, 3)

	want := []Span{{Attribution: bold, Start: 3, End: 7}}
	if diff := cmp.Diff(want, spansOf(t, txt)); diff != "" {
		t.Errorf("spans mismatch (-want +got):\n%s", diff)
	}
}

func TestDeleteClipsStraddlingSpans(t *testing.T) {
	txt := New("hello world").
		ApplyAttribution(bold, 2, 8).
		Delete(4, 7)

	// Left part keeps [2,3]; the tail shifts left and rejoins it.
	want := []Span{{Attribution: bold, Start: 2, End: 5}}
	if diff := cmp.Diff(want, spansOf(t, txt)); diff != "" {
		t.Errorf("spans mismatch (-want +got):\n%s", diff)
	}
	if txt.Text() != "hellorld" {
		t.Errorf("expected 'hellorld', got %q", txt.Text())
	}
}

func TestDeleteInsertRoundTrip(t *testing.T) {
	orig := New("hello world").
		ApplyAttribution(bold, 2, 8).
		ApplyAttribution(italic, 0, 4)

	extracted := orig.CopyText(3, 7)
	rebuilt := orig.Delete(3, 7).Insert(3, extracted)

	if !orig.Equal(rebuilt) {
		t.Errorf("delete then re-insert should reproduce the original:\n  orig:    %v\n  rebuilt: %v", orig, rebuilt)
	}
}

func TestCopyRoundTrip(t *testing.T) {
	orig := New("hello world").ApplyAttribution(bold, 0, 10)

	head := orig.CopyText(0, 5)
	tail := orig.CopyTextFrom(5)
	rebuilt := head.Plus(tail)

	if !orig.Equal(rebuilt) {
		t.Errorf("split and rejoin should reproduce the original:\n  orig:    %v\n  rebuilt: %v", orig, rebuilt)
	}
}

func TestReplaceSub(t *testing.T) {
	txt := New("hello world").
		ApplyAttribution(bold, 0, 10).
		ReplaceSub(6, 10, New("there"))

	if txt.Text() != "hello there" {
		t.Errorf("expected 'hello there', got %q", txt.Text())
	}
	// The replacement carries no attributions; bold survives only on
	// the untouched prefix.
	want := []Span{{Attribution: bold, Start: 0, End: 5}}
	if diff := cmp.Diff(want, spansOf(t, txt)); diff != "" {
		t.Errorf("spans mismatch (-want +got):\n%s", diff)
	}
}

func TestEqual(t *testing.T) {
	a := New("hello").ApplyAttribution(bold, 0, 2)
	b := New("hello").ApplyAttribution(bold, 0, 2)
	c := New("hello").ApplyAttribution(bold, 0, 3)
	d := New("hellO").ApplyAttribution(bold, 0, 2)

	if !a.Equal(b) {
		t.Error("equal texts reported unequal")
	}
	if a.Equal(c) {
		t.Error("different spans reported equal")
	}
	if a.Equal(d) {
		t.Error("different text reported equal")
	}
	if a.Equal(nil) {
		t.Error("nil reported equal")
	}
}

func TestInvalidSpanPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for start > end")
		}
	}()
	New("hello").ApplyAttribution(bold, 3, 1)
}

func TestOutOfRangeSpanPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range span")
		}
	}()
	New("hello").ApplyAttribution(bold, 0, 5)
}

func TestOutOfRangeInsertPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range insert")
		}
	}()
	New("hello").InsertString(6, "!")
}
