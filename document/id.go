package document

import (
	"fmt"

	"github.com/google/uuid"
)

// IDGenerator supplies node IDs. The generator is injected into a
// MutableDocument rather than living in process-wide state, keeping ID
// assignment deterministic where tests need it.
type IDGenerator interface {
	// NextID returns a new node ID. IDs must not repeat within the
	// lifetime of the generator.
	NextID() string
}

// UUIDGenerator issues random UUID node IDs.
type UUIDGenerator struct{}

// NextID returns a new random UUID string.
func (UUIDGenerator) NextID() string { return uuid.NewString() }

// SequenceGenerator issues "prefix1", "prefix2", ... in order. It is
// the generator of choice for deterministic tests.
type SequenceGenerator struct {
	prefix string
	next   int
}

// NewSequenceGenerator creates a sequence generator with the given
// prefix.
func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

// NextID returns the next ID in the sequence.
func (g *SequenceGenerator) NextID() string {
	g.next++
	return fmt.Sprintf("%s%d", g.prefix, g.next)
}
