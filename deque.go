// Package linkdeque provides a generic double-ended queue backed by a
// singly-linked node chain.
//
// Insertion is O(1) at both ends, removal is O(1) at the front only; the
// structure deliberately stays single-linked instead of paying a backward
// pointer per node for O(1) back-removal. The deque tracks its length, so
// Len is O(1) too.
//
// The deque is a single-owner structure with no internal synchronization.
// Concurrent use requires external locking, e.g. the mutex discipline of
// [github.com/ngicks/linkdeque/pump].
package linkdeque

// Deque is a double-ended queue over a singly-linked chain of [Node].
//
// The zero value is an empty deque ready for use.
//
// The deque owns its first node and every node owns its successor; last is
// only a cached pointer to make PushBack O(1) and never owns anything.
// Nodes never belong to two deques at once: insertion transfers ownership
// into the chain, removal transfers it back out.
type Deque[T any] struct {
	first *Node[T]
	last  *Node[T]
	size  int
}

// New returns an empty deque.
// It is equivalent to new(Deque[T]) and exists for symmetry with the rest
// of the constructors in this module.
func New[T any]() *Deque[T] {
	return &Deque[T]{}
}

// Len returns the number of elements in d.
func (d *Deque[T]) Len() int {
	return d.size
}

// PushFront inserts value at the head of d.
func (d *Deque[T]) PushFront(value T) {
	d.PushFrontNode(&Node[T]{Value: value})
}

// PushBack inserts value at the tail of d.
func (d *Deque[T]) PushBack(value T) {
	d.PushBackNode(&Node[T]{Value: value})
}

// PushFrontNode links the caller-held node n in at the head of d,
// taking ownership of it. n must not currently belong to any chain.
func (d *Deque[T]) PushFrontNode(n *Node[T]) {
	n.next = d.first
	if d.first == nil {
		d.last = n
	}
	d.first = n
	d.size++
}

// PushBackNode links the caller-held node n in at the tail of d,
// taking ownership of it. n must not currently belong to any chain.
func (d *Deque[T]) PushBackNode(n *Node[T]) {
	n.next = nil
	if d.first == nil {
		d.first = n
	} else {
		d.last.next = n
	}
	d.last = n
	d.size++
}

// PopFront removes and returns the head element.
// It panics if d is empty; callers either check Len first or use
// TryPopFront. The detached node is unlinked and left to the collector.
func (d *Deque[T]) PopFront() T {
	n := d.PopFrontNode()
	if n == nil {
		panic("linkdeque: PopFront on empty deque")
	}
	return n.Value
}

// TryPopFront removes and returns the head element.
// It reports false, leaving d unchanged, if d is empty.
func (d *Deque[T]) TryPopFront() (T, bool) {
	n := d.PopFrontNode()
	if n == nil {
		var zero T
		return zero, false
	}
	return n.Value, true
}

// PopFrontNode detaches and returns the head node, transferring its
// ownership to the caller, or returns nil if d is empty. The returned
// node's successor link is severed so it can be pushed onto another
// chain or recycled through a [Pool].
//
// Popping the only remaining node leaves d identical to a fresh deque.
func (d *Deque[T]) PopFrontNode() *Node[T] {
	n := d.first
	if n == nil {
		return nil
	}
	d.first = n.next
	if d.first == nil {
		d.last = nil
	}
	n.next = nil
	d.size--
	return n
}

// Front returns the head element without removing it.
// It panics if d is empty.
func (d *Deque[T]) Front() T {
	if d.first == nil {
		panic("linkdeque: Front on empty deque")
	}
	return d.first.Value
}

// Back returns the tail element without removing it.
// It panics if d is empty.
func (d *Deque[T]) Back() T {
	if d.last == nil {
		panic("linkdeque: Back on empty deque")
	}
	return d.last.Value
}

// TryFront returns the head element, or false if d is empty.
func (d *Deque[T]) TryFront() (T, bool) {
	if d.first == nil {
		var zero T
		return zero, false
	}
	return d.first.Value, true
}

// TryBack returns the tail element, or false if d is empty.
func (d *Deque[T]) TryBack() (T, bool) {
	if d.last == nil {
		var zero T
		return zero, false
	}
	return d.last.Value, true
}

// FrontNode returns the head node without detaching it, or nil if d is
// empty. The node gives a read/write view of the element and is the
// starting point for iteration via [Node.Next].
func (d *Deque[T]) FrontNode() *Node[T] {
	return d.first
}

// BackNode returns the tail node without detaching it, or nil if d is
// empty. The tail pointer is a non-owning shortcut; mutate the returned
// node's Value if needed, but never splice through it.
func (d *Deque[T]) BackNode() *Node[T] {
	return d.last
}

// Clear resets d to empty in O(1) without touching any node.
//
// The nodes keep their links, so callers that still hold them (through
// node accessors, or collectively via [Pool.Adopt]) keep a valid chain.
// If nothing else tracks the nodes, Clear merely delays their collection
// compared to Free; use Free unless node ownership has already moved
// elsewhere.
func (d *Deque[T]) Clear() {
	d.first = nil
	d.last = nil
	d.size = 0
}

// Free unlinks every node, zeroing its value and severing its successor
// pointer, then resets d to empty. O(n). Stale node pointers held by the
// caller no longer pin the rest of the chain afterwards.
//
// Free on an empty deque is a no-op, and calling it twice is safe.
func (d *Deque[T]) Free() {
	var zero T
	for n := d.first; n != nil; {
		next := n.next
		n.Value = zero
		n.next = nil
		n = next
	}
	d.first = nil
	d.last = nil
	d.size = 0
}

// Range calls fn front to back for each element in d. If fn returns
// false, Range stops the iteration.
func (d *Deque[T]) Range(fn func(i int, e T) (next bool)) {
	i := 0
	for n := d.first; n != nil; n = n.next {
		if !fn(i, n.Value) {
			break
		}
		i++
	}
}

// Clone copies the elements of d into a new slice, front to back.
func (d *Deque[T]) Clone() []T {
	cloned := make([]T, 0, d.size)
	for n := d.first; n != nil; n = n.next {
		cloned = append(cloned, n.Value)
	}
	return cloned
}
