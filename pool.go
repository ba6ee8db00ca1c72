package linkdeque

// Pool is a free list of detached nodes.
//
// Push/pop churn on a deque allocates one node per element; a Pool lets
// hot loops recycle nodes instead. It is also the intended counterpart of
// [Deque.Clear]: Adopt takes a whole chain off a deque in O(1) so its
// nodes survive the reset.
//
// Like the deque itself, a Pool is single-owner and unsynchronized.
// The zero value is ready for use.
type Pool[T any] struct {
	free Deque[T]
}

// Len returns the number of free nodes held by p.
func (p *Pool[T]) Len() int {
	return p.free.Len()
}

// Get returns a node holding value, reusing a pooled node when one is
// available and allocating otherwise.
func (p *Pool[T]) Get(value T) *Node[T] {
	n := p.free.PopFrontNode()
	if n == nil {
		n = &Node[T]{}
	}
	n.Value = value
	return n
}

// Put stores the detached node n for reuse. The held value is zeroed so
// the pool does not pin it. n must not belong to any chain.
func (p *Pool[T]) Put(n *Node[T]) {
	var zero T
	n.Value = zero
	p.free.PushFrontNode(n)
}

// Adopt moves every node of d into p in O(1) by splicing the whole chain
// onto the free list, then clears d. Values are left in place until the
// nodes are handed out again through Get.
func (p *Pool[T]) Adopt(d *Deque[T]) {
	if d.size == 0 {
		return
	}
	if p.free.first == nil {
		p.free.first = d.first
	} else {
		p.free.last.next = d.first
	}
	p.free.last = d.last
	p.free.size += d.size
	d.Clear()
}
