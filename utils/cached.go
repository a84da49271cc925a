package utils

// Cached holds a value computed on first use until it is invalidated.
type Cached[T any] struct {
	set bool
	val T
}

func (c *Cached[T]) Value(setter func() T) T {
	if c.set {
		return c.val
	}
	c.set = true
	c.val = setter()
	return c.val
}

func (c *Cached[T]) Set(val T) {
	c.set = true
	c.val = val
}

func (c *Cached[T]) Invalidate() {
	var zero T
	c.set = false
	c.val = zero
}
