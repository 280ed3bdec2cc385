package frontier

import "container/heap"

// Heap is a priority-queue Frontier ordered by a caller-supplied less
// function, built on the standard container/heap idiom: Len/Less/Swap/
// Push/Pop satisfy heap.Interface, and the exported type wraps
// heap.Init/Push/Pop so callers never touch container/heap directly.
type Heap[T any] struct {
	items []T
	less  func(a, b T) bool
}

// NewMinHeap returns a Heap that pops the smallest element first,
// according to less.
func NewMinHeap[T any](less func(a, b T) bool) *Heap[T] {
	h := &Heap[T]{less: less}
	heap.Init((*heapAdapter[T])(h))
	return h
}

// NewMaxHeap returns a Heap that pops the largest element first,
// according to less — the "negative" frontier discipline spec.md calls
// for: it reuses less but inverts the comparison.
func NewMaxHeap[T any](less func(a, b T) bool) *Heap[T] {
	inverted := func(a, b T) bool { return less(b, a) }
	h := &Heap[T]{less: inverted}
	heap.Init((*heapAdapter[T])(h))
	return h
}

// Push adds item to the heap.
func (h *Heap[T]) Push(item T) {
	heap.Push((*heapAdapter[T])(h), item)
}

// Pop removes and returns the item at the head of the heap's ordering.
func (h *Heap[T]) Pop() (item T, ok bool) {
	if len(h.items) == 0 {
		return item, false
	}
	return heap.Pop((*heapAdapter[T])(h)).(T), true
}

// Len returns the number of queued items.
func (h *Heap[T]) Len() int { return len(h.items) }

// heapAdapter satisfies container/heap.Interface for a Heap[T] without
// exposing the heap.Interface methods (Swap, the interface{}-typed
// Push/Pop) on the public Frontier API.
type heapAdapter[T any] Heap[T]

func (a *heapAdapter[T]) Len() int { return len(a.items) }

func (a *heapAdapter[T]) Less(i, j int) bool { return a.less(a.items[i], a.items[j]) }

func (a *heapAdapter[T]) Swap(i, j int) { a.items[i], a.items[j] = a.items[j], a.items[i] }

func (a *heapAdapter[T]) Push(x any) { a.items = append(a.items, x.(T)) }

func (a *heapAdapter[T]) Pop() any {
	old := a.items
	n := len(old)
	item := old[n-1]
	a.items = old[:n-1]
	return item
}
