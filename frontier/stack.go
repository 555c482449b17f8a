package frontier

// Stack is a LIFO of pending nodes. The zero value is an empty stack.
// Not safe for concurrent use.
type Stack[N any] struct {
	items []N
}

// NewStack returns a stack holding seed, with seed[len(seed)-1] on top.
func NewStack[N any](seed ...N) *Stack[N] {
	s := &Stack[N]{items: make([]N, 0, max(len(seed), 16))}
	s.items = append(s.items, seed...)

	return s
}

// Push places n on top.
func (s *Stack[N]) Push(n N) { s.items = append(s.items, n) }

// Pop removes and returns the top node; ok is false when the stack is empty.
func (s *Stack[N]) Pop() (n N, ok bool) {
	last := len(s.items) - 1
	if last < 0 {
		return n, false
	}
	n = s.items[last]
	var zero N
	s.items[last] = zero // release the reference for the GC
	s.items = s.items[:last]

	return n, true
}

// Len returns the number of pending nodes.
func (s *Stack[N]) Len() int { return len(s.items) }

// Drain empties the stack and returns its former contents, bottom first.
func (s *Stack[N]) Drain() []N {
	out := s.items
	s.items = nil

	return out
}
