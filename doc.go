// Package ubqueue provides unbounded generic FIFO queues.
//
// Queue in this package is concurrency-safe and never blocks: Dequeue on an
// empty queue returns immediately with ok == false. Construct a queue with New
// or NewWithCapacity. Elements of any type are accepted, duplicates included.
//
// For consumers that should wait for work instead of polling, use the
// blockingqueue subpackage. Its Dequeue parks the caller until a producer
// enqueues an element or the caller's context is done:
//
//	q := blockingqueue.New[string]()
//	go q.Enqueue("job")
//	v, err := q.Dequeue(ctx)
//	if blockingqueue.IsContextError(err) {
//	    // ctx ended first; nothing was removed
//	}
package ubqueue
