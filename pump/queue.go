package pump

import "github.com/ngicks/linkdeque"

// Queue is the backing storage a [Pump] drains.
// Implementations may be goroutine-unsafe; the Pump serializes access.
type Queue[E any] interface {
	Range(fn func(i int, e E) (next bool))
	Clone() []E
	Clear()
	Len() int
	PopFront() E
	PushBack(elem E)
	PushFront(elem E)
}

var _ Queue[any] = (*linkdeque.Deque[any])(nil)
