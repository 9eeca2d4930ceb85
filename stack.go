package notation

// stack is a LIFO container used by the scanning
// functions for operands and pending operators.
type stack[T any] struct {
	items []T
}

func (s *stack[T]) push(x T) {
	s.items = append(s.items, x)
}

func (s *stack[T]) pop() T {
	return s.popN(1)[0]
}

// popN removes the top n items and returns them, the
// deepest first. The returned slice aliases the stack, so
// it must be consumed before the next push.
func (s *stack[T]) popN(n int) []T {
	d := len(s.items) - n
	if d < 0 {
		panic("stack underflow")
	}
	v := s.items[d:]
	s.items = s.items[0:d]
	return v
}

func (s *stack[T]) peek() T {
	return s.items[len(s.items)-1]
}

func (s *stack[T]) len() int {
	return len(s.items)
}

func (s *stack[T]) empty() bool {
	return len(s.items) == 0
}
