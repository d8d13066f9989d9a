// Package queue implements the in-process notification bus: an
// unbounded FIFO of text events published by CRUD handlers and drained
// by the event-stream endpoint.
package queue

import (
	"context"
	"sync"
)

// Bus is a process-wide single-topic queue. Publish never blocks.
// Each event is delivered to exactly one consumer: if several stream
// clients are connected, events are split between them, not broadcast.
type Bus struct {
	mu    sync.Mutex
	items []string
	wake  chan struct{}
}

func New() *Bus {
	return &Bus{wake: make(chan struct{}, 1)}
}

func (b *Bus) Publish(text string) {
	b.mu.Lock()
	b.items = append(b.items, text)
	b.mu.Unlock()
	select {
	case b.wake <- struct{}{}:
	default:
	}
}

// Next pops the oldest event, blocking while the queue is empty until
// a publish or ctx cancellation.
func (b *Bus) Next(ctx context.Context) (string, error) {
	for {
		b.mu.Lock()
		if len(b.items) > 0 {
			ev := b.items[0]
			b.items = b.items[1:]
			if len(b.items) > 0 {
				// keep the wake signal alive for other waiters
				select {
				case b.wake <- struct{}{}:
				default:
				}
			}
			b.mu.Unlock()
			return ev, nil
		}
		b.mu.Unlock()

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-b.wake:
		}
	}
}

// Len reports the number of undelivered events.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}
