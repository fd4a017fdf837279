package eval

// Stack is the value stack of the push-down automaton: a LIFO sequence of
// float64 operands. It is exclusively owned by the evaluator's control loop
// and only touched through Push and Pop.
type Stack []float64

// Push appends v to the top of the stack
func (s *Stack) Push(v float64) {
	*s = append(*s, v)
}

// Pop removes and returns the top value. The boolean is false on underflow.
func (s *Stack) Pop() (float64, bool) {
	if len(*s) == 0 {
		return 0, false
	}
	v := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return v, true
}

// Len returns the number of values on the stack
func (s Stack) Len() int {
	return len(s)
}

// Values returns the stack contents from bottom to top
func (s Stack) Values() []float64 {
	out := make([]float64, len(s))
	copy(out, s)
	return out
}
