package blockingqueue

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	base "github.com/xyhelper/ubqueue"
)

// Queue is an unbounded, blocking, concurrency-safe FIFO.
//
// Producers never block. Consumers calling Dequeue suspend while the queue is
// empty and each Enqueue wakes one of them. Which waiter wins is unspecified.
//
// All methods are safe for concurrent use by multiple goroutines. The zero
// value is not ready for use; construct via New.
type Queue[T any] struct {
	mu       sync.Mutex
	notEmpty *sync.Cond
	items    *base.Queue[T] // guarded by mu
	waiting  int            // consumers suspended in Dequeue, guarded by mu
	log      *zap.Logger
}

// New creates an empty blocking queue.
func New[T any](opts ...Option) *Queue[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	q := &Queue[T]{
		items: base.NewWithCapacity[T](o.capacity),
		log:   o.logger,
	}
	q.notEmpty = sync.NewCond(&q.mu)
	return q
}

// Enqueue appends v to the tail and wakes one waiting consumer.
// It never blocks and never fails.
func (q *Queue[T]) Enqueue(v T) {
	q.mu.Lock()
	q.items.Enqueue(v)
	q.notEmpty.Signal()
	q.mu.Unlock()
}

// EnqueueMany appends items in order as a single step and returns the count
// added. One consumer is woken per item, up to the number currently waiting.
func (q *Queue[T]) EnqueueMany(items ...T) int {
	if len(items) == 0 {
		return 0
	}
	q.mu.Lock()
	q.items.EnqueueMany(items...)
	for i := 0; i < min(len(items), q.waiting); i++ {
		q.notEmpty.Signal()
	}
	q.mu.Unlock()
	return len(items)
}

// Dequeue removes and returns the head, blocking until one is available or
// ctx is done.
//
// On cancellation it returns the zero value and an error wrapping ctx.Err();
// nothing is removed. If an element arrives together with the cancellation,
// the element is returned. A nil ctx never cancels.
func (q *Queue[T]) Dequeue(ctx context.Context) (T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	q.mu.Lock()
	defer q.mu.Unlock()

	// Fast path
	if v, ok := q.items.Dequeue(); ok {
		return v, nil
	}
	if err := ctx.Err(); err != nil {
		return q.canceled(err)
	}

	// Cond.Wait cannot watch ctx, so cancellation broadcasts and every waiter
	// re-checks its own ctx. The callback needs mu, so it cannot fire between
	// the ctx check below and Wait releasing the lock.
	stop := context.AfterFunc(ctx, q.wakeAll)
	defer stop()

	q.waiting++
	defer func() { q.waiting-- }()

	for q.items.Len() == 0 {
		if err := ctx.Err(); err != nil {
			return q.canceled(err)
		}
		q.notEmpty.Wait() // releases and re-acquires q.mu
	}
	v, _ := q.items.Dequeue()
	return v, nil
}

// TryDequeue removes and returns the head without blocking.
// ok is false if the queue is empty.
func (q *Queue[T]) TryDequeue() (v T, ok bool) {
	q.mu.Lock()
	v, ok = q.items.Dequeue()
	q.mu.Unlock()
	return
}

// Peek returns the head value without removing it. ok is false when empty.
func (q *Queue[T]) Peek() (v T, ok bool) {
	q.mu.Lock()
	v, ok = q.items.Peek()
	q.mu.Unlock()
	return
}

// Size returns the number of elements currently queued.
func (q *Queue[T]) Size() int {
	q.mu.Lock()
	n := q.items.Len()
	q.mu.Unlock()
	return n
}

// IsEmpty reports whether the queue is empty.
func (q *Queue[T]) IsEmpty() bool { return q.Size() == 0 }

// Waiting returns the number of consumers currently blocked in Dequeue.
func (q *Queue[T]) Waiting() int {
	q.mu.Lock()
	n := q.waiting
	q.mu.Unlock()
	return n
}

// Drain removes every queued element and returns them in FIFO order.
func (q *Queue[T]) Drain() []T {
	q.mu.Lock()
	out := q.items.ToSlice()
	q.items.Clear()
	q.mu.Unlock()
	return out
}

// String renders a snapshot of the contents, head first.
func (q *Queue[T]) String() string {
	q.mu.Lock()
	s := q.items.String()
	q.mu.Unlock()
	return s
}

func (q *Queue[T]) wakeAll() {
	q.mu.Lock()
	q.notEmpty.Broadcast()
	q.mu.Unlock()
}

// canceled must be called with q.mu held.
func (q *Queue[T]) canceled(err error) (T, error) {
	var zero T
	q.log.Debug("dequeue canceled",
		zap.Int("size", q.items.Len()),
		zap.Int("waiting", q.waiting),
		zap.Error(err),
	)
	return zero, errors.Wrap(err, "blockingqueue: dequeue")
}
