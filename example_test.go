package ubqueue

import (
	"fmt"
)

// Example showing basic FIFO.
func Example_basic() {
	q := New[int]()
	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)
	for !q.IsEmpty() {
		v, _ := q.Dequeue()
		fmt.Println(v)
	}
	// Output:
	// 1
	// 2
	// 3
}

// Example for EnqueueMany and ToSlice. Duplicates are kept.
func Example_enqueueMany() {
	q := New[int]()
	n := q.EnqueueMany(1, 1, 2, 3)
	fmt.Println(n)
	fmt.Println(q.ToSlice())
	// Output:
	// 4
	// [1 1 2 3]
}

// Example for Peek.
func Example_peek() {
	q := New[string]()
	q.Enqueue("x")
	q.Enqueue("y")
	v, _ := q.Peek()
	fmt.Println(v, q.Len())
	// Output:
	// x 2
}

// Example for Clear and Len/IsEmpty.
func Example_clear() {
	q := New[int]()
	q.EnqueueMany(1, 2)
	fmt.Println(q)
	q.Clear()
	fmt.Println(q.Len(), q.IsEmpty())
	// Output:
	// [1 2]
	// 0 true
}

// Example using a struct type that is not comparable.
func Example_structType() {
	type job struct {
		ID   int
		Tags []string
	}
	q := NewWithCapacity[job](16)
	q.Enqueue(job{ID: 1, Tags: []string{"a"}})
	q.Enqueue(job{ID: 2})
	q.Range(func(j job) bool {
		fmt.Println(j.ID, len(j.Tags))
		return true
	})
	// Output:
	// 1 1
	// 2 0
}
