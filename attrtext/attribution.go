package attrtext

// Attribution is a named tag applicable to a character range, such as
// bold, italic, or a link with a URL.
//
// Implementations must be comparable value types: two attributions are
// the same attribution if and only if they compare equal with ==.
// Sharing an ID does not imply equality; two links to different URLs
// both have ID "link" but are distinct attributions.
//
// CanMergeWith controls span coalescing and may be looser than
// equality. It must define an equivalence relation over the
// attributions present in a single Text (reflexive, symmetric,
// transitive); a non-transitive predicate is a caller error and makes
// normalization results order-dependent.
type Attribution interface {
	// ID returns the identity key of the attribution kind.
	ID() string

	// CanMergeWith reports whether adjacent or overlapping spans
	// carrying the receiver and other should collapse into one span.
	CanMergeWith(other Attribution) bool
}

// NamedAttribution is a plain style tag identified solely by its name,
// e.g. "bold" or "italic". Two equal names always merge.
type NamedAttribution string

// ID returns the attribution name.
func (n NamedAttribution) ID() string { return string(n) }

// CanMergeWith reports whether other is the same named attribution.
func (n NamedAttribution) CanMergeWith(other Attribution) bool {
	o, ok := other.(NamedAttribution)
	return ok && o == n
}

// String returns the attribution name.
func (n NamedAttribution) String() string { return string(n) }

// LinkAttribution tags a range as a hyperlink. All links share the ID
// "link", but links merge only when they point at the same URL, so two
// adjacent links to different destinations stay separate spans.
type LinkAttribution struct {
	URL string
}

// ID returns "link" for every link attribution.
func (l LinkAttribution) ID() string { return "link" }

// CanMergeWith reports whether other is a link to the same URL.
func (l LinkAttribution) CanMergeWith(other Attribution) bool {
	o, ok := other.(LinkAttribution)
	return ok && o.URL == l.URL
}

// String returns a human-readable representation of the link.
func (l LinkAttribution) String() string { return "link(" + l.URL + ")" }

// mergeEquivalent reports whether a and b mutually accept merging.
// CanMergeWith is probed in both directions so an asymmetric predicate
// never produces a one-sided merge.
func mergeEquivalent(a, b Attribution) bool {
	return a.CanMergeWith(b) && b.CanMergeWith(a)
}
