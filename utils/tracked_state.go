package utils

// Tracker remembers the previous value of something that is polled
// repeatedly, so a caller can tell whether the last poll changed it.
type Tracker[T comparable] struct {
	LastValue T
	Value     T
	seen      bool
}

func (t *Tracker[T]) Update(val T) (updated bool) {
	if !t.seen {
		t.seen = true
		t.Value = val
		return false
	}
	if t.Value != val {
		t.LastValue = t.Value
		t.Value = val
		return true
	}
	return false
}
