package pump

import (
	"context"
	"testing"

	"github.com/ngicks/go-common/generic/priorityqueue"
	"github.com/ngicks/go-common/timing"
	"gotest.tools/v3/assert"
)

func TestRing(t *testing.T) {
	q := NewRing[int](4)

	q.PushBack(0)
	q.PushBack(1)
	q.PushBack(2)
	q.PushFront(9)

	assert.Equal(t, q.Len(), 4)
	assert.DeepEqual(t, []int{9, 0, 1, 2}, q.Clone())

	var ranged []int
	q.Range(func(i int, e int) bool {
		ranged = append(ranged, e)
		return true
	})
	assert.DeepEqual(t, []int{9, 0, 1, 2}, ranged)

	assert.Equal(t, q.PopFront(), 9)
	assert.Equal(t, q.PopFront(), 0)

	q.Clear()
	assert.Equal(t, q.Len(), 0)
}

func TestPriority(t *testing.T) {
	q := NewPriority(
		nil,
		func(i, j int) bool { return i < j },
		priorityqueue.SliceInterfaceMethods[int]{},
	)

	q.PushBack(3)
	q.PushBack(1)
	q.PushBack(2)

	assert.Equal(t, q.Len(), 3)
	assert.DeepEqual(t, []int{1, 2, 3}, q.Clone())

	// a pushed-back element outranks heap order
	q.PushFront(7)
	assert.DeepEqual(t, []int{7, 1, 2, 3}, q.Clone())

	var ranged []int
	q.Range(func(i int, e int) bool {
		ranged = append(ranged, e)
		return true
	})
	assert.DeepEqual(t, []int{7, 1, 2, 3}, ranged)

	assert.Equal(t, q.PopFront(), 7)
	assert.Equal(t, q.PopFront(), 1)
	assert.Equal(t, q.PopFront(), 2)
	assert.Equal(t, q.PopFront(), 3)
	assert.Equal(t, q.Len(), 0)

	q.PushBack(5)
	q.Clear()
	assert.Equal(t, q.Len(), 0)
}

func TestPump_with_ring_backing(t *testing.T) {
	sink := &sliceSink[int]{}
	p := New[int](sink, WithQueue[int](NewRing[int](8)))

	for i := 0; i < 8; i++ {
		p.Push(i)
	}

	ctx, cancel := context.WithCancel(context.Background())
	g := timing.NewGroup(ctx, false)
	g.Go(func(ctx context.Context) error {
		_, err := p.Run(ctx)
		return err
	})

	p.Drain()
	cancel()
	assert.NilError(t, g.Wait())

	assert.DeepEqual(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, sink.Received)
}
