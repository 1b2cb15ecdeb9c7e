// Package state provides the reactive cells that window positions, visibility
// and stacking order are stored in.
//
// A Cell is a mutable value with synchronous subscribers: every Set notifies
// subscribers before it returns, so anything reading the cell afterwards (the
// next render) observes the new value on the same tick.
package state

import "sync"

// Cell holds a value of type T and notifies subscribers on every change.
type Cell[T any] struct {
	mu     sync.RWMutex
	value  T
	nextID int
	subs   []subscriber[T]
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// NewCell creates a cell holding v.
func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{value: v}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set stores v and notifies subscribers in subscription order.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	c.value = v
	subs := make([]subscriber[T], len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()

	for _, s := range subs {
		s.fn(v)
	}
}

// Update applies fn to the current value and stores the result.
func (c *Cell[T]) Update(fn func(T) T) {
	c.Set(fn(c.Get()))
}

// Subscribe registers fn to be called after every Set. The returned function
// removes the subscription.
func (c *Cell[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs = append(c.subs, subscriber[T]{id: id, fn: fn})
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

// Counter is the shared stacking counter of a page.
type Counter = Cell[int]

// NewCounter creates a stacking counter starting at start.
func NewCounter(start int) *Counter {
	return NewCell(start)
}

// Increment adds one to the counter and returns the new value.
func Increment(c *Counter) int {
	c.Update(func(v int) int { return v + 1 })
	return c.Get()
}
