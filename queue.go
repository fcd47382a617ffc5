package ubqueue

import (
	"fmt"
	"sync"

	"github.com/xyhelper/ubqueue/internal/fifo"
)

// Queue is a generic, concurrency-safe, unbounded FIFO queue. The zero value
// is not ready for use; construct via New or NewWithCapacity.
type Queue[T any] struct {
	mu    sync.Mutex
	items *fifo.Ring[T]
}

// New creates a new queue. All exported methods are safe for concurrent use.
func New[T any]() *Queue[T] {
	return &Queue[T]{items: fifo.NewRing[T](0)}
}

// NewWithCapacity creates a new queue with room for capacity elements before
// it first grows. Capacity is a hint, not a limit.
func NewWithCapacity[T any](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Queue[T]{items: fifo.NewRing[T](capacity)}
}

// Enqueue appends v to the tail. Amortized complexity: O(1).
func (q *Queue[T]) Enqueue(v T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items.Push(v)
}

// EnqueueMany appends items in order and returns the count added.
// Other goroutines never observe a partial batch. Amortized complexity: O(k).
func (q *Queue[T]) EnqueueMany(items ...T) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items.PushMany(items...)
	return len(items)
}

// Dequeue removes and returns the head value.
//
// The second result is false when the queue is empty. Complexity: O(1).
func (q *Queue[T]) Dequeue() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.Pop()
}

// Peek returns the head value without removing it.
// The second result is false when the queue is empty. Complexity: O(1).
func (q *Queue[T]) Peek() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.Front()
}

// Len returns the number of elements currently queued.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.Len()
}

// IsEmpty reports whether the queue is empty. Equivalent to Len() == 0.
func (q *Queue[T]) IsEmpty() bool {
	return q.Len() == 0
}

// Clear removes all elements from the queue, keeping allocated storage.
// Complexity: O(n).
func (q *Queue[T]) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items.Reset()
}

// ToSlice returns a copy of the queue's contents in FIFO order.
// Complexity: O(n). The returned slice is independent of the queue.
func (q *Queue[T]) ToSlice() []T {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.Slice()
}

// String renders a snapshot of the contents, head first.
func (q *Queue[T]) String() string {
	return fmt.Sprint(q.ToSlice())
}

// Range calls fn for each element from head to tail while holding the lock,
// stopping early if fn returns false. fn must not call methods on q.
func (q *Queue[T]) Range(fn func(v T) bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items.Each(fn)
}
