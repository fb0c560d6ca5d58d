package document

import "errors"

// Errors returned by document operations.
var (
	// ErrNodeNotFound indicates the given node ID is not in the document.
	ErrNodeNotFound = errors.New("node not found")

	// ErrIndexOutOfRange indicates an index outside the valid range.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrDuplicateNodeID indicates an insert or replace would produce
	// two nodes with the same ID.
	ErrDuplicateNodeID = errors.New("duplicate node id")

	// ErrNilNode indicates a nil node was passed to a mutation.
	ErrNilNode = errors.New("nil node")
)
