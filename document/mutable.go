package document

import (
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// MutableDocument is an ordered, uniquely-keyed node container with
// mutation operations and synchronous change notification. It is not
// internally synchronized; a single logical owner must serialize all
// calls.
type MutableDocument struct {
	nodes      nodeList
	gen        IDGenerator
	log        *zap.Logger
	subs       []subscription
	nextSubID  int
	lastChange []ChangeEvent
}

type subscription struct {
	id int
	fn Listener
}

// NewMutable creates a mutable document holding the given nodes. The
// slice is copied. Returns ErrDuplicateNodeID if two nodes share an ID.
func NewMutable(nodes []Node, opts ...Option) (*MutableDocument, error) {
	l := make(nodeList, len(nodes))
	copy(l, nodes)
	if err := l.checkUnique(); err != nil {
		return nil, err
	}
	m := &MutableDocument{
		nodes: l,
		gen:   UUIDGenerator{},
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Document returns an immutable snapshot of the current node list.
func (m *MutableDocument) Document() *Document {
	return &Document{nodes: nodeList(m.nodes.copy())}
}

// NewNodeID returns a fresh node ID from the configured generator.
func (m *MutableDocument) NewNodeID() string { return m.gen.NextID() }

// NodeCount returns the number of nodes.
func (m *MutableDocument) NodeCount() int { return len(m.nodes) }

// Nodes returns the full ordered node list as a copy.
func (m *MutableDocument) Nodes() []Node { return m.nodes.copy() }

// NodeByID returns the node with the given ID, or nil.
func (m *MutableDocument) NodeByID(id string) Node { return m.nodes.byID(id) }

// NodeAt returns the node at the given index. Panics if the index is
// out of range.
func (m *MutableDocument) NodeAt(index int) Node {
	if index < 0 || index >= len(m.nodes) {
		panic(fmt.Sprintf("document: node index %d out of range for count %d", index, len(m.nodes)))
	}
	return m.nodes[index]
}

// IndexByID returns the position of the node with the given ID, or -1.
func (m *MutableDocument) IndexByID(id string) int { return m.nodes.indexByID(id) }

// NodeBefore returns the node preceding the given ID, or nil.
func (m *MutableDocument) NodeBefore(id string) Node { return m.nodes.before(id) }

// NodeAfter returns the node following the given ID, or nil.
func (m *MutableDocument) NodeAfter(id string) Node { return m.nodes.after(id) }

// FirstNode returns the first node, or nil for an empty document.
func (m *MutableDocument) FirstNode() Node {
	if len(m.nodes) == 0 {
		return nil
	}
	return m.nodes[0]
}

// LastNode returns the last node, or nil for an empty document.
func (m *MutableDocument) LastNode() Node {
	if len(m.nodes) == 0 {
		return nil
	}
	return m.nodes[len(m.nodes)-1]
}

// Subscribe registers a listener for mutation event batches. The
// returned function removes the listener; calling it more than once is
// harmless. Both Subscribe and the removal function may be called from
// inside a listener callback; the change takes effect from the next
// mutation, never the batch being delivered.
func (m *MutableDocument) Subscribe(fn Listener) (unsubscribe func()) {
	id := m.nextSubID
	m.nextSubID++
	m.subs = append(m.subs, subscription{id: id, fn: fn})
	return func() {
		for i, s := range m.subs {
			if s.id == id {
				// Copy rather than splice so a fan-out in progress
				// keeps iterating its own snapshot untouched.
				subs := make([]subscription, 0, len(m.subs)-1)
				subs = append(subs, m.subs[:i]...)
				subs = append(subs, m.subs[i+1:]...)
				m.subs = subs
				return
			}
		}
	}
}

// LastChange returns the event batch of the most recent mutation, or
// nil before any mutation. Only the latest batch is retained: a reader
// that misses a synchronous notification cannot recover intervening
// batches here.
func (m *MutableDocument) LastChange() []ChangeEvent {
	if m.lastChange == nil {
		return nil
	}
	out := make([]ChangeEvent, len(m.lastChange))
	copy(out, m.lastChange)
	return out
}

// InsertNode inserts a node at the given index, which may equal
// NodeCount to append. Returns ErrIndexOutOfRange, ErrNilNode, or
// ErrDuplicateNodeID; on success emits NodeInserted.
func (m *MutableDocument) InsertNode(index int, node Node) error {
	if node == nil {
		return ErrNilNode
	}
	if index < 0 || index > len(m.nodes) {
		return fmt.Errorf("%w: insert at %d with count %d", ErrIndexOutOfRange, index, len(m.nodes))
	}
	if m.nodes.indexByID(node.ID()) >= 0 {
		return fmt.Errorf("%w: %q", ErrDuplicateNodeID, node.ID())
	}
	m.nodes = append(m.nodes, nil)
	copy(m.nodes[index+1:], m.nodes[index:])
	m.nodes[index] = node
	m.log.Debug("insert node", zap.String("node_id", node.ID()), zap.Int("index", index))
	m.emit(NodeInserted{NodeID: node.ID(), Index: index})
	return nil
}

// InsertNodeBefore inserts a node immediately before an existing node.
func (m *MutableDocument) InsertNodeBefore(existingID string, node Node) error {
	index := m.nodes.indexByID(existingID)
	if index < 0 {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, existingID)
	}
	return m.InsertNode(index, node)
}

// InsertNodeAfter inserts a node immediately after an existing node.
func (m *MutableDocument) InsertNodeAfter(existingID string, node Node) error {
	index := m.nodes.indexByID(existingID)
	if index < 0 {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, existingID)
	}
	return m.InsertNode(index+1, node)
}

// DeleteNode removes the node with the given ID. Returns
// ErrNodeNotFound; on success emits NodeDeleted.
func (m *MutableDocument) DeleteNode(id string) error {
	index := m.nodes.indexByID(id)
	if index < 0 {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	m.nodes = append(m.nodes[:index], m.nodes[index+1:]...)
	m.log.Debug("delete node", zap.String("node_id", id), zap.Int("index", index))
	m.emit(NodeDeleted{NodeID: id, Index: index})
	return nil
}

// ReplaceNode swaps the node with the given ID for newNode, keeping
// its position. The new node may keep the old ID or introduce a fresh
// one; a fresh ID must not collide with any other node. Returns
// ErrNodeNotFound, ErrNilNode, or ErrDuplicateNodeID; on success emits
// NodeReplaced.
func (m *MutableDocument) ReplaceNode(oldID string, newNode Node) error {
	if newNode == nil {
		return ErrNilNode
	}
	index := m.nodes.indexByID(oldID)
	if index < 0 {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, oldID)
	}
	if newNode.ID() != oldID && m.nodes.indexByID(newNode.ID()) >= 0 {
		return fmt.Errorf("%w: %q", ErrDuplicateNodeID, newNode.ID())
	}
	m.nodes[index] = newNode
	m.log.Debug("replace node",
		zap.String("old_node_id", oldID),
		zap.String("new_node_id", newNode.ID()))
	m.emit(NodeReplaced{OldNodeID: oldID, NewNodeID: newNode.ID()})
	return nil
}

// MoveNode relocates the node with the given ID to newIndex, its
// position in the resulting list. Returns ErrNodeNotFound or
// ErrIndexOutOfRange; on success emits NodeMoved.
func (m *MutableDocument) MoveNode(id string, newIndex int) error {
	oldIndex := m.nodes.indexByID(id)
	if oldIndex < 0 {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	if newIndex < 0 || newIndex >= len(m.nodes) {
		return fmt.Errorf("%w: move to %d with count %d", ErrIndexOutOfRange, newIndex, len(m.nodes))
	}
	node := m.nodes[oldIndex]
	m.nodes = append(m.nodes[:oldIndex], m.nodes[oldIndex+1:]...)
	m.nodes = append(m.nodes, nil)
	copy(m.nodes[newIndex+1:], m.nodes[newIndex:])
	m.nodes[newIndex] = node
	m.log.Debug("move node",
		zap.String("node_id", id),
		zap.Int("old_index", oldIndex),
		zap.Int("new_index", newIndex))
	m.emit(NodeMoved{NodeID: id, OldIndex: oldIndex, NewIndex: newIndex})
	return nil
}

// UpdateNode replaces the node with the given ID by the result of fn.
// When fn preserves the ID the change is reported as TextChanged; when
// it returns a node under a new ID the change is reported as
// NodeReplaced. Returns ErrNodeNotFound, ErrNilNode, or
// ErrDuplicateNodeID.
func (m *MutableDocument) UpdateNode(id string, fn func(Node) Node) error {
	index := m.nodes.indexByID(id)
	if index < 0 {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	updated := fn(m.nodes[index])
	if updated == nil {
		return ErrNilNode
	}
	if updated.ID() != id {
		if m.nodes.indexByID(updated.ID()) >= 0 {
			return fmt.Errorf("%w: %q", ErrDuplicateNodeID, updated.ID())
		}
		m.nodes[index] = updated
		m.log.Debug("update node",
			zap.String("old_node_id", id),
			zap.String("new_node_id", updated.ID()))
		m.emit(NodeReplaced{OldNodeID: id, NewNodeID: updated.ID()})
		return nil
	}
	m.nodes[index] = updated
	m.log.Debug("update node", zap.String("node_id", id))
	m.emit(TextChanged{NodeID: id})
	return nil
}

// emit records the batch as the latest change and fans it out to every
// listener, synchronously, in subscription order. The fan-out iterates
// a snapshot of the subscription list, so each listener registered at
// the start of the mutation is notified exactly once even when a
// callback subscribes or unsubscribes listeners.
func (m *MutableDocument) emit(events ...ChangeEvent) {
	m.lastChange = events
	for _, s := range slices.Clone(m.subs) {
		s.fn(events)
	}
}
