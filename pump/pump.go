// Package pump drains a queue into a Sink, one element at a time.
//
// It is the concurrency shell the single-owner linkdeque.Deque is meant
// to live behind: all queue access happens under one mutex, Write calls
// are serialized, and a failed Write pushes the element back to the head
// of the queue for a later retry.
package pump

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/ngicks/linkdeque"
)

var ErrAlreadyRunning = errors.New("already running")

// Pump moves elements from a [Queue] into a [Sink].
// Push may be called at any time; elements are only drained while a
// single Run is active.
type Pump[E any] struct {
	queue Queue[E]
	sink  Sink[E]

	isRunning atomic.Bool
	writing   bool
	hasUpdate chan struct{}

	cond         *sync.Cond
	retryTimeout time.Duration
	clock        clockwork.Clock
}

func New[E any](sink Sink[E], opts ...Option[E]) *Pump[E] {
	p := &Pump[E]{
		sink:      sink,
		hasUpdate: make(chan struct{}, 1),
		cond:      sync.NewCond(&sync.Mutex{}),
		clock:     clockwork.NewRealClock(),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.queue == nil {
		p.queue = linkdeque.New[E]()
	}

	return p
}

func (p *Pump[E]) IsRunning() bool {
	return p.isRunning.Load()
}

// Push enqueues elem and wakes the runner.
func (p *Pump[E]) Push(elem E) {
	p.cond.L.Lock()
	p.queue.PushBack(elem)
	p.cond.Broadcast()
	p.cond.L.Unlock()

	select {
	case p.hasUpdate <- struct{}{}:
	default:
	}
}

// Range calls fn sequentially for each queued element. If fn returns
// false, Range stops the iteration. The order is the order the Sink
// would see the elements.
func (p *Pump[E]) Range(fn func(i int, e E) (next bool)) {
	p.cond.L.Lock()
	defer p.cond.L.Unlock()
	p.queue.Range(fn)
}

// Clone copies the queued elements, in the order the Sink would see them.
//
// An element currently being written may not be included; if that Write
// fails, a subsequent call observes it again at the head.
func (p *Pump[E]) Clone() []E {
	p.cond.L.Lock()
	defer p.cond.L.Unlock()
	return p.queue.Clone()
}

// Clear drops all queued elements.
func (p *Pump[E]) Clear() {
	p.cond.L.Lock()
	defer p.cond.L.Unlock()
	p.queue.Clear()
	p.cond.Broadcast()
}

func (p *Pump[E]) Len() int {
	p.cond.L.Lock()
	defer p.cond.L.Unlock()
	return p.queue.Len()
}

// Drain blocks until the queue is empty and no Write is in flight.
func (p *Pump[E]) Drain() {
	p.cond.L.Lock()
	defer p.cond.L.Unlock()
	p.waitUntil(func(writing bool, queued int) bool {
		return !writing && queued == 0
	})
}

// WaitUntil blocks until cond returns true.
// cond is re-evaluated whenever the queue length or the writing state
// changes.
func (p *Pump[E]) WaitUntil(cond func(writing bool, queued int) bool) {
	p.cond.L.Lock()
	defer p.cond.L.Unlock()
	p.waitUntil(cond)
}

func (p *Pump[E]) waitUntil(cond func(writing bool, queued int) bool) {
	for !cond(p.writing, p.queue.Len()) {
		p.cond.Wait()
	}
}

func (p *Pump[E]) pop() (elem E, popped bool) {
	p.cond.L.Lock()
	defer p.cond.L.Unlock()
	if p.queue.Len() > 0 {
		p.cond.Broadcast()
		return p.queue.PopFront(), true
	}
	var zero E
	return zero, false
}

func (p *Pump[E]) setWriting(writing bool) {
	p.cond.L.Lock()
	p.writing = writing
	p.cond.Broadcast()
	p.cond.L.Unlock()
}

// Run drains p until ctx is cancelled, then returns the number of
// elements still queued. Only one Run may be active at a time; a second
// concurrent call returns ErrAlreadyRunning.
func (p *Pump[E]) Run(ctx context.Context) (remaining int, err error) {
	if !p.isRunning.CompareAndSwap(false, true) {
		return 0, ErrAlreadyRunning
	}
	defer p.isRunning.Store(false)

	retryTimer := p.clock.NewTimer(30 * 24 * time.Hour) // far future.
	_ = retryTimer.Stop()

	var set bool
	resetTimer := func() {}
	if p.retryTimeout > 0 {
		resetTimer = func() {
			retryTimer.Reset(p.retryTimeout)
			set = true
		}
	}
	stopTimer := func() {
		if !retryTimer.Stop() && set {
			// Stop reports false both when the timer fired and when it
			// was never running; without the flag, draining the channel
			// here could block forever.
			<-retryTimer.Chan()
		}
		set = false
	}

	defer stopTimer()

	writeAll := func() {
		stopTimer()
		for {
			elem, popped := p.pop()
			if !popped {
				break
			}

			p.setWriting(true)
			err := p.sink.Write(ctx, elem)
			p.setWriting(false)

			if err != nil {
				p.cond.L.Lock()
				p.queue.PushFront(elem)
				p.cond.Broadcast()
				p.cond.L.Unlock()

				resetTimer()
				break
			}
		}
	}

	if p.Len() > 0 {
		select {
		case p.hasUpdate <- struct{}{}:
		default:
		}
	}

	for {
		select {
		case <-ctx.Done():
			stopTimer()
			return p.Len(), nil
		case <-retryTimer.Chan():
			set = false
			writeAll()
		case <-p.hasUpdate:
			writeAll()
		}
	}
}
