package trinet

// FIFO is a first-in-first-out queue.
type FIFO[T any] struct {
	values []T
}

// NewFIFO creates an empty queue.
func NewFIFO[T any]() *FIFO[T] {
	return &FIFO[T]{values: make([]T, 0)}
}

// Push appends values to the back of the queue.
func (f *FIFO[T]) Push(values ...T) {
	f.values = append(f.values, values...)
}

// Pop removes and returns the oldest value. The second return is false
// when the queue is empty.
func (f *FIFO[T]) Pop() (T, bool) {
	var zero T
	if len(f.values) == 0 {
		return zero, false
	}
	v := f.values[0]
	f.values = f.values[1:]
	return v, true
}

// Len returns the number of queued values.
func (f *FIFO[T]) Len() int { return len(f.values) }
