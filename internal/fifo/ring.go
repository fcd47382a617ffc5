// Package fifo holds the growable ring that backs both queue flavours.
package fifo

const minRingCap = 8

// Ring is an unbounded FIFO sequence stored in a circular slice.
// It grows on demand and never rejects a Push.
// It is NOT thread-safe.
type Ring[T any] struct {
	buf  []T
	head int // index of the oldest element
	n    int // number of queued elements
}

// NewRing creates a Ring with room for at least capacity elements.
// A non-positive capacity defers allocation to the first Push.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity <= 0 {
		return &Ring[T]{}
	}
	return &Ring[T]{buf: make([]T, ceilPow2(capacity))}
}

// Push appends v at the tail. Amortized O(1).
func (r *Ring[T]) Push(v T) {
	if r.n == len(r.buf) {
		r.grow(r.n + 1)
	}
	r.buf[r.wrap(r.head+r.n)] = v
	r.n++
}

// PushMany appends items in order, growing at most once.
func (r *Ring[T]) PushMany(items ...T) {
	if need := r.n + len(items); need > len(r.buf) {
		r.grow(need)
	}
	for _, v := range items {
		r.buf[r.wrap(r.head+r.n)] = v
		r.n++
	}
}

// Pop removes and returns the head. ok is false when the ring is empty.
func (r *Ring[T]) Pop() (v T, ok bool) {
	if r.n == 0 {
		return v, false
	}
	var zero T
	v = r.buf[r.head]
	r.buf[r.head] = zero // drop the reference for the GC
	r.head = r.wrap(r.head + 1)
	r.n--
	if r.n == 0 {
		r.head = 0
	}
	return v, true
}

// Front returns the head without removing it.
func (r *Ring[T]) Front() (v T, ok bool) {
	if r.n == 0 {
		return v, false
	}
	return r.buf[r.head], true
}

// Len returns the number of queued elements.
func (r *Ring[T]) Len() int { return r.n }

// Cap returns the number of slots currently allocated.
func (r *Ring[T]) Cap() int { return len(r.buf) }

// Each calls fn for every element from head to tail until fn returns false.
func (r *Ring[T]) Each(fn func(T) bool) {
	for i := 0; i < r.n; i++ {
		if !fn(r.buf[r.wrap(r.head+i)]) {
			return
		}
	}
}

// Slice returns a copy of the contents in FIFO order.
func (r *Ring[T]) Slice() []T {
	out := make([]T, r.n)
	r.copyTo(out)
	return out
}

// Reset removes all elements, keeping the allocated slots.
func (r *Ring[T]) Reset() {
	clear(r.buf)
	r.head = 0
	r.n = 0
}

func (r *Ring[T]) wrap(idx int) int {
	return idx & (len(r.buf) - 1)
}

// copyTo copies the queued elements into dst, which must hold r.n elements.
func (r *Ring[T]) copyTo(dst []T) {
	if r.n == 0 {
		return
	}
	end := r.head + r.n
	if end <= len(r.buf) {
		copy(dst, r.buf[r.head:end])
		return
	}
	k := copy(dst, r.buf[r.head:])
	copy(dst[k:], r.buf[:end-len(r.buf)])
}

// grow reallocates so that at least minCap elements fit, unwrapping the contents.
func (r *Ring[T]) grow(minCap int) {
	newBuf := make([]T, r.calculateGrowth(minCap))
	r.copyTo(newBuf)
	r.buf = newBuf
	r.head = 0
}

// calculateGrowth doubles the ring, or jumps straight to the next power of
// two above minCap when doubling is not enough. wrap relies on the result
// being a power of two.
func (r *Ring[T]) calculateGrowth(minCap int) int {
	oldCap := len(r.buf)
	if oldCap == 0 {
		return ceilPow2(max(minCap, minRingCap))
	}
	return ceilPow2(max(oldCap*2, minCap))
}

// ceilPow2 returns n if it is a power of two, otherwise the next one up.
func ceilPow2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
