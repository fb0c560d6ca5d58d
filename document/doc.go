// Package document provides the block-structured document model: an
// ordered, uniquely-keyed list of content nodes with mutation and
// change notification.
//
// The document package provides:
//
//   - Node variants: paragraph, list item, code block, image, and
//     horizontal rule
//   - Document, an immutable ordered node container
//   - MutableDocument, the same container with insert, delete,
//     replace, move, and update operations
//   - ChangeEvent, a closed union describing each mutation
//   - Synchronous observer notification, one batch per mutation
//   - Node ID generation via an injected IDGenerator
//
// Nodes are immutable value objects: every change produces a new node
// which a MutableDocument operation installs in the list. Node IDs are
// unique within a document at all times; operations that would break
// the invariant fail with ErrDuplicateNodeID.
//
// Basic usage:
//
//	p1 := document.NewParagraph("n1", attrtext.New("hello"))
//	doc, _ := document.NewMutable([]document.Node{p1})
//	unsubscribe := doc.Subscribe(func(events []document.ChangeEvent) {
//	    // react to the batch for this one mutation
//	})
//	defer unsubscribe()
//	doc.InsertNode(1, document.NewParagraph("n2", attrtext.New("world")))
//
// Change Notification:
//
// Notification is a direct synchronous callback fan-out with no queue
// and no backpressure. Each successful mutation invokes every listener
// exactly once with exactly that mutation's events. The channel retains
// only the most recent batch (see LastChange); a listener registered
// after a mutation returns does not see that mutation. Listeners must
// not perform long-running work inline.
//
// Listeners may subscribe or unsubscribe listeners, themselves
// included, from inside a callback. The fan-out for the current batch
// covers exactly the listeners registered when the mutation began:
// a listener added during a callback first hears the next mutation,
// and a listener removed during a callback still receives the batch
// being delivered, once. Listeners must not mutate the document from
// inside a callback.
//
// Thread Safety:
//
// Document and Node values are immutable and freely shareable once
// published. MutableDocument is not internally synchronized; all
// mutation must originate from a single logical owner.
package document
