package pump

import "github.com/gammazero/deque"

var _ Queue[any] = (*Ring[any])(nil)

// Ring implements [Queue] over an array-backed ring buffer, for callers
// that prefer contiguous storage over the default linked chain.
type Ring[E any] struct {
	*deque.Deque[E]
}

func NewRing[E any](cap int) *Ring[E] {
	return &Ring[E]{
		Deque: deque.New[E](cap),
	}
}

func (q *Ring[E]) Range(fn func(i int, e E) (next bool)) {
	for i := 0; i < q.Len(); i++ {
		if !fn(i, q.At(i)) {
			break
		}
	}
}

func (q *Ring[E]) Clone() []E {
	cloned := make([]E, q.Len())
	for i := 0; i < q.Len(); i++ {
		cloned[i] = q.At(i)
	}
	return cloned
}
