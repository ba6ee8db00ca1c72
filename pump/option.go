package pump

import (
	"time"

	"github.com/jonboulle/clockwork"
)

type Option[E any] func(p *Pump[E])

// WithQueue swaps the backing queue. The default is an empty
// [github.com/ngicks/linkdeque.Deque]; see also [Ring] and [Priority].
func WithQueue[E any](queue Queue[E]) Option[E] {
	return func(p *Pump[E]) {
		p.queue = queue
	}
}

// WithRetryInterval returns an Option that sets the retry interval.
// Without it, a Pump whose Sink returned an error does not try to
// Write again until the next Push.
func WithRetryInterval[E any](retryTimeout time.Duration) Option[E] {
	return func(p *Pump[E]) {
		p.retryTimeout = retryTimeout
	}
}

// WithClock replaces the wall clock, mainly for tests.
func WithClock[E any](clock clockwork.Clock) Option[E] {
	return func(p *Pump[E]) {
		p.clock = clock
	}
}
