package pump

import (
	"slices"

	"github.com/ngicks/go-common/generic/priorityqueue"
)

var _ Queue[any] = (*Priority[any])(nil)

// Priority implements [Queue] with heap ordering instead of insertion
// ordering. PushFront still wins over heap order so that an element put
// back after a failed Write is retried first.
type Priority[E any] struct {
	pushedBack []E
	q          *priorityqueue.Filterable[E]
}

func NewPriority[E any](init []E, less func(i, j E) bool, methods priorityqueue.SliceInterfaceMethods[E]) *Priority[E] {
	return &Priority[E]{
		q: priorityqueue.NewFilterable(init, less, methods),
	}
}

func (q *Priority[E]) Range(fn func(i int, e E) (next bool)) {
	for i, e := range q.pushedBack {
		if !fn(i, e) {
			return
		}
	}
	c := q.q.Clone()
	for i := len(q.pushedBack); c.Len() > 0; i++ {
		p := c.Pop()
		if !fn(i, p) {
			return
		}
	}
}

func (q *Priority[E]) Clone() []E {
	s := make([]E, len(q.pushedBack), q.Len())
	_ = copy(s, q.pushedBack)
	c := q.q.Clone()
	for c.Len() > 0 {
		s = append(s, c.Pop())
	}
	return s
}

func (q *Priority[E]) Clear() {
	q.pushedBack = slices.Delete(q.pushedBack, 0, len(q.pushedBack))
	q.q.Filter(func(s []E) []E {
		return slices.Delete(s, 0, len(s))
	})
}

func (q *Priority[E]) Len() int {
	return len(q.pushedBack) + q.q.Len()
}

func (q *Priority[E]) PopFront() E {
	if len(q.pushedBack) > 0 {
		last := len(q.pushedBack) - 1
		popped := q.pushedBack[last]
		var zero E
		q.pushedBack[last] = zero
		q.pushedBack = q.pushedBack[:last]
		return popped
	}
	return q.q.Pop()
}

func (q *Priority[E]) PushBack(elem E) {
	q.q.Push(elem)
}

func (q *Priority[E]) PushFront(elem E) {
	q.pushedBack = append(q.pushedBack, elem)
}
