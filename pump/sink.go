package pump

import "context"

// Sink receives elements popped off the queue.
// Write is serialized by the Pump, so it can be goroutine-unsafe.
// If Write returns an error, the element is pushed back to the head of
// the queue and the Pump suspends until the next Push or retry timeout.
type Sink[E any] interface {
	Write(ctx context.Context, elem E) error
}

// ChannelSink exposes drained elements on a channel.
type ChannelSink[E any] struct {
	ch chan E
}

func NewChannelSink[E any](buf int) *ChannelSink[E] {
	return &ChannelSink[E]{
		ch: make(chan E, buf),
	}
}

func (s *ChannelSink[E]) Write(ctx context.Context, elem E) error {
	select {
	case s.ch <- elem:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *ChannelSink[E]) Outlet() <-chan E {
	return s.ch
}
