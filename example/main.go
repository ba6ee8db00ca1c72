package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/ngicks/linkdeque"
	"github.com/ngicks/linkdeque/pump"
)

func main() {
	// the deque on its own: O(1) at both ends, pop from the front.
	d := linkdeque.New[int]()
	d.PushFront(1)
	d.PushBack(2)
	d.PushFront(0)
	for d.Len() > 0 {
		fmt.Printf("popped: %d\n", d.PopFront())
	}

	// the same deque behind a pump, drained into a channel.
	sink := pump.NewChannelSink[int](0)
	p := pump.New[int](sink)

	for i := 0; i < 10; i++ {
		p.Push(i)
	}

	var wg sync.WaitGroup

	ctx, cancel := context.WithCancel(context.Background())
	wg.Add(1)
	go func() {
		defer wg.Done()
		p.Run(ctx)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 10; i++ {
			fmt.Printf("received: %d\n", <-sink.Outlet())
		}
		fmt.Println("done")
	}()

	p.Drain()

	cancel()
	wg.Wait()
}
