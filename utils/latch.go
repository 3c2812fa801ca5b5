package utils

// Latch reports rising edges of a boolean signal.
type Latch struct {
	val bool
}

// Run returns true only when v is true and the previous value was false.
func (l *Latch) Run(v bool) bool {
	r := v && !l.val
	l.val = v
	return r
}

// Value returns the last value passed to Run.
func (l *Latch) Value() bool {
	return l.val
}
