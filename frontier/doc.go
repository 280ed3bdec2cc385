// Package frontier provides the four queueing disciplines the search
// core is parameterized over: a LIFO stack, a FIFO queue, and min/max
// priority heaps keyed by a caller-supplied comparator.
//
// All four share one generic Frontier[T] interface so the search
// skeleton in the search package can treat "pop the next candidate" the
// same way regardless of which discipline is in play. The discipline is
// chosen once, when the frontier is constructed; every Push and Pop is
// then an ordinary interface method call.
package frontier
