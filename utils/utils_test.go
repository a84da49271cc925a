package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCachedComputesOnce(t *testing.T) {
	c := Cached[int]{}
	calls := 0
	compute := func() int {
		calls++
		return 42
	}

	assert.Equal(t, 42, c.Value(compute))
	assert.Equal(t, 42, c.Value(compute))
	assert.Equal(t, 1, calls)

	c.Invalidate()
	assert.Equal(t, 42, c.Value(compute))
	assert.Equal(t, 2, calls)
}

func TestCachedSet(t *testing.T) {
	c := Cached[string]{}
	c.Set("ready")
	assert.Equal(t, "ready", c.Value(func() string { return "never" }))
}

func TestTracker(t *testing.T) {
	tr := Tracker[string]{}

	assert.False(t, tr.Update("1.25"), "first poll only records the value")

	assert.False(t, tr.Update("1.25"))
	assert.True(t, tr.Update("1.31"))
	assert.Equal(t, "1.25", tr.LastValue)
	assert.Equal(t, "1.31", tr.Value)

	assert.False(t, tr.Update("1.31"))
}
