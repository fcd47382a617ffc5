package blockingqueue

import (
	"context"
	"fmt"
	"time"
)

func Example_basic() {
	q := New[string]()
	go func() {
		// Producer
		q.Enqueue("a")
		q.Enqueue("b")
	}()

	// Consumer with timeout safety
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	v1, _ := q.Dequeue(ctx)
	v2, _ := q.Dequeue(ctx)
	fmt.Println(v1, v2)
	// Output:
	// a b
}

func Example_errorHandling() {
	q := New[int]()

	// Context timeout leads to an error from Dequeue.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := q.Dequeue(ctx)
	fmt.Println(IsContextError(err))
	fmt.Println(err)

	// TryDequeue is non-blocking and reports via ok.
	q.Enqueue(1)
	if v, ok := q.TryDequeue(); ok {
		fmt.Println(v, ok)
	}
	if _, ok := q.TryDequeue(); !ok {
		fmt.Println("empty", ok)
	}
	// Output:
	// true
	// blockingqueue: dequeue: context deadline exceeded
	// 1 true
	// empty false
}

func Example_accessors() {
	q := New[string]()
	q.EnqueueMany("x", "y", "z")
	head, _ := q.Peek()
	fmt.Println(head, q.Size(), q.IsEmpty())
	fmt.Println(q)
	fmt.Println(q.Drain(), q.IsEmpty())
	// Output:
	// x 3 false
	// [x y z]
	// [x y z] true
}
