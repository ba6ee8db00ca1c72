package pump

import (
	"context"
	"sync"
	"testing"
)

type swappable[E any] struct {
	sync.Mutex
	t       *testing.T
	blocker chan struct{}
	sink    Sink[E]
}

func newSwappable[E any](t *testing.T) *swappable[E] {
	return &swappable[E]{
		t:       t,
		blocker: make(chan struct{}),
	}
}

func (s *swappable[E]) waitWrite() {
	s.blocker <- struct{}{}
}

func (s *swappable[E]) closeBlocker() {
	close(s.blocker)
}

func (s *swappable[E]) Write(ctx context.Context, e E) error {
	s.t.Logf("Write is called with %#v", e)
	s.Lock()
	defer s.Unlock()
	<-s.blocker
	return s.sink.Write(ctx, e)
}

func (s *swappable[E]) swap(o Sink[E]) Sink[E] {
	s.Lock()
	defer s.Unlock()
	before := s.sink
	s.sink = o
	return before
}

type errSink[E any] struct {
	Err error
}

func (s *errSink[E]) Write(ctx context.Context, e E) error {
	return s.Err
}

type sliceSink[E any] struct {
	Received []E
}

func (s *sliceSink[E]) Write(ctx context.Context, e E) error {
	s.Received = append(s.Received, e)
	return nil
}
