// Package blockingqueue provides an unbounded FIFO whose consumers block until
// an element is available.
//
// The queue is a monitor: one mutex guards the elements and a condition
// variable on that mutex parks consumers while the queue is empty. Enqueue
// never blocks and wakes one parked consumer. Dequeue waits in a loop, so
// spurious wakeups and consumers racing for the same element are handled by
// re-checking. Dequeue takes a context; when it is done before an element
// arrives the call fails with an error wrapping ctx.Err() and the queue is left
// untouched.
//
// Typical producer/consumer use:
//
//	q := blockingqueue.New[Job]()
//	go func() {
//	    for _, j := range jobs {
//	        q.Enqueue(j)
//	    }
//	}()
//	for {
//	    j, err := q.Dequeue(ctx)
//	    if blockingqueue.IsContextError(err) {
//	        return
//	    }
//	    handle(j)
//	}
package blockingqueue
