package linkdeque

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestPool_reuses_nodes(t *testing.T) {
	var p Pool[int]
	assert.Equal(t, p.Len(), 0)

	n := p.Get(1)
	assert.Equal(t, n.Value, 1)
	assert.Equal(t, p.Len(), 0)

	p.Put(n)
	assert.Equal(t, p.Len(), 1)

	m := p.Get(2)
	assert.Assert(t, n == m, "Get must hand back the pooled node before allocating")
	assert.Equal(t, m.Value, 2)
	assert.Equal(t, p.Len(), 0)
}

func TestPool_put_drops_the_value(t *testing.T) {
	var p Pool[*int]
	v := 5
	n := p.Get(&v)
	p.Put(n)
	assert.Assert(t, n.Value == nil, "Put must not pin the stored value")
}

func TestPool_adopt(t *testing.T) {
	d := New[int]()
	for i := 0; i < 5; i++ {
		d.PushBack(i)
	}
	head := d.FrontNode()

	var p Pool[int]
	p.Adopt(d)

	assert.Equal(t, p.Len(), 5)
	assert.Equal(t, d.Len(), 0)
	assertWellFormed(t, d)

	// the adopted deque must be indistinguishable from a fresh one
	d.PushBack(99)
	assertWellFormed(t, d)
	assert.Equal(t, d.Front(), 99)

	got := p.Get(0)
	assert.Assert(t, got == head, "Adopt must splice the chain head first")

	// adopting again extends the free list
	p.Adopt(d)
	assert.Equal(t, p.Len(), 5)

	p.Adopt(New[int]()) // empty source is a no-op
	assert.Equal(t, p.Len(), 5)
}

func TestPool_balanced_churn_does_not_allocate(t *testing.T) {
	var p Pool[int]
	d := New[int]()

	// warm the pool
	for i := 0; i < 8; i++ {
		p.Put(NewNode(0))
	}

	allocs := testing.AllocsPerRun(100, func() {
		for i := 0; i < 8; i++ {
			d.PushBackNode(p.Get(i))
		}
		for d.Len() > 0 {
			p.Put(d.PopFrontNode())
		}
	})
	assert.Equal(t, allocs, 0.0)
}
