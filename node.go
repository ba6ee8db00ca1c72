package linkdeque

// Node is a single link in a deque chain.
// It holds one element and the owning pointer to its successor;
// the chain is single-linked, so there is no backward pointer.
//
// Value is an exported field on purpose: peeking a node through
// [Deque.FrontNode] or [Deque.BackNode] gives a read/write view of the
// element without detaching it.
type Node[T any] struct {
	Value T
	next  *Node[T]
}

// NewNode returns a detached node holding value.
// It enters a deque through [Deque.PushFrontNode] or [Deque.PushBackNode].
func NewNode[T any](value T) *Node[T] {
	return &Node[T]{Value: value}
}

// Next returns the successor of n, or nil if n is the last node of its chain.
// Typical iteration:
//
//	for n := d.FrontNode(); n != nil; n = n.Next() {
//		// use n.Value
//	}
func (n *Node[T]) Next() *Node[T] {
	return n.next
}
