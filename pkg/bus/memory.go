package bus

import (
	"context"
	"sync"
)

type memorySubscriber[T any] struct {
	ch     chan T
	closed bool
	mu     sync.Mutex
}

func (s *memorySubscriber[T]) Events() <-chan T {
	return s.ch
}

func (s *memorySubscriber[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		close(s.ch)
		s.closed = true
	}
	return nil
}

func (s *memorySubscriber[T]) send(event T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}

	select {
	case s.ch <- event:
		return true
	default:
		return false
	}
}

// Memory is an in-process Broadcaster implementation.
// All methods are safe for concurrent use.
type Memory[T any] struct {
	subscribers map[*memorySubscriber[T]]struct{}
	bufferSize  int
	closed      bool
	mu          sync.RWMutex
	cleanupWg   sync.WaitGroup
}

// NewMemory creates an in-memory broadcaster. bufferSize sets the per-
// subscriber channel buffer; a minimum of 1 is enforced so publishing can
// stay non-blocking.
func NewMemory[T any](bufferSize int) *Memory[T] {
	return &Memory[T]{
		subscribers: make(map[*memorySubscriber[T]]struct{}),
		bufferSize:  max(bufferSize, 1),
	}
}

// Subscribe registers a subscriber that receives every published event.
// The subscription is removed when ctx is cancelled. If the broadcaster is
// already closed, the returned subscriber is closed as well.
func (b *Memory[T]) Subscribe(ctx context.Context) Subscriber[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := &memorySubscriber[T]{ch: make(chan T, b.bufferSize)}
	if b.closed {
		_ = sub.Close()
		return sub
	}

	b.subscribers[sub] = struct{}{}

	if ctx.Done() != nil {
		b.cleanupWg.Add(1)
		go func() {
			defer b.cleanupWg.Done()
			<-ctx.Done()
			b.unsubscribe(sub)
		}()
	}

	return sub
}

// Publish delivers the event to every active subscriber. Subscribers whose
// buffers are full miss the event and are dropped from the broadcaster.
// Returns nil even if some subscribers missed the event.
func (b *Memory[T]) Publish(ctx context.Context, event T) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return nil
	}

	for sub := range b.subscribers {
		if !sub.send(event) {
			// Unsubscribing needs the write lock, so it happens off the
			// publish path.
			go b.unsubscribe(sub)
		}
	}

	return nil
}

// Close shuts down the broadcaster and closes all subscribers.
// Safe to call multiple times.
func (b *Memory[T]) Close() error {
	b.mu.Lock()

	if b.closed {
		b.mu.Unlock()
		return nil
	}

	b.closed = true
	for sub := range b.subscribers {
		_ = sub.Close()
	}
	clear(b.subscribers)
	b.mu.Unlock()

	b.cleanupWg.Wait()
	return nil
}

func (b *Memory[T]) unsubscribe(sub *memorySubscriber[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.subscribers, sub)
	_ = sub.Close()
}
