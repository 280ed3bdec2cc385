package frontier

// Frontier is the uniform interface over every queueing discipline used
// by the search core. Push adds a candidate; Pop removes and returns the
// next candidate to explore (ok is false on an empty frontier); Len
// reports how many candidates remain.
type Frontier[T any] interface {
	Push(item T)
	Pop() (item T, ok bool)
	Len() int
}
