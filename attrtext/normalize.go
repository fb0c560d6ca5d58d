package attrtext

import "sort"

// resolveSpans converts a sorted marker list into resolved spans.
// Each attribution identity keeps its own bracket stack: a start marker
// pushes its offset, an end marker pops the most recent open start and
// emits a span. The stack discipline makes nested or re-opened spans of
// the same attribution resolve to properly bracketed intervals.
func resolveSpans(markers []SpanMarker) []Span {
	open := make(map[Attribution][]int)
	var spans []Span
	for _, m := range markers {
		switch m.Kind {
		case MarkerStart:
			open[m.Attribution] = append(open[m.Attribution], m.Offset)
		case MarkerEnd:
			stack := open[m.Attribution]
			if len(stack) == 0 {
				// Unbalanced end marker. Cannot happen for markers
				// produced by this package; dropped if handed in.
				continue
			}
			start := stack[len(stack)-1]
			open[m.Attribution] = stack[:len(stack)-1]
			spans = append(spans, Span{Attribution: m.Attribution, Start: start, End: m.Offset})
		}
	}
	sortSpans(spans)
	return spans
}

// sortSpans orders spans by start ascending, then end, then ID for a
// deterministic tiebreak between different attributions.
func sortSpans(spans []Span) {
	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		if spans[i].End != spans[j].End {
			return spans[i].End < spans[j].End
		}
		return spans[i].Attribution.ID() < spans[j].Attribution.ID()
	})
}

// unionFind is a plain disjoint-set over span indices, used to group
// spans into merge classes without depending on probe order.
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &unionFind{parent: parent}
}

func (u *unionFind) find(i int) int {
	for u.parent[i] != i {
		u.parent[i] = u.parent[u.parent[i]]
		i = u.parent[i]
	}
	return i
}

func (u *unionFind) union(i, j int) {
	ri, rj := u.find(i), u.find(j)
	if ri != rj {
		u.parent[rj] = ri
	}
}

// normalizeSpans collapses spans of the same merge class that overlap
// or sit within one character of each other. Classes are computed as
// true equivalence classes via union-find over pairwise CanMergeWith
// probes, so the result does not depend on encounter order as long as
// CanMergeWith is an equivalence relation.
//
// Within a folded run the surviving span carries the attribution of the
// earliest member.
func normalizeSpans(spans []Span) []Span {
	if len(spans) <= 1 {
		out := make([]Span, len(spans))
		copy(out, spans)
		return out
	}

	uf := newUnionFind(len(spans))
	for i := 0; i < len(spans); i++ {
		for j := i + 1; j < len(spans); j++ {
			if mergeEquivalent(spans[i].Attribution, spans[j].Attribution) {
				uf.union(i, j)
			}
		}
	}

	classes := make(map[int][]Span)
	var roots []int
	for i, s := range spans {
		r := uf.find(i)
		if _, seen := classes[r]; !seen {
			roots = append(roots, r)
		}
		classes[r] = append(classes[r], s)
	}

	var out []Span
	for _, r := range roots {
		members := classes[r]
		sortSpans(members)
		cur := members[0]
		for _, s := range members[1:] {
			if s.Start <= cur.End+1 {
				if s.End > cur.End {
					cur.End = s.End
				}
				continue
			}
			out = append(out, cur)
			cur = s
		}
		out = append(out, cur)
	}
	sortSpans(out)
	return out
}

// markersFromSpans rebuilds the canonical sorted marker list from
// resolved spans.
func markersFromSpans(spans []Span) []SpanMarker {
	markers := make([]SpanMarker, 0, len(spans)*2)
	for _, s := range spans {
		markers = append(markers,
			SpanMarker{Attribution: s.Attribution, Offset: s.Start, Kind: MarkerStart},
			SpanMarker{Attribution: s.Attribution, Offset: s.End, Kind: MarkerEnd},
		)
	}
	sortMarkers(markers)
	return markers
}

// normalizeMarkers resolves, folds, and re-serializes a marker list.
func normalizeMarkers(markers []SpanMarker) []SpanMarker {
	return markersFromSpans(normalizeSpans(resolveSpans(markers)))
}
