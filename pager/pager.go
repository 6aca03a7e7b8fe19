// Package pager cycles through a list of suggestions.
package pager

// Next is the index after i in a ring of n, 0 for an empty ring.
func Next(i, n int) int {
	if n <= 0 {
		return 0
	}
	return (i + 1) % n
}

// Prev is the index before i in a ring of n, 0 for an empty ring.
func Prev(i, n int) int {
	if n <= 0 {
		return 0
	}
	return (i - 1 + n) % n
}

// Pager wraps a slice with a cyclic cursor.
type Pager[T any] struct {
	items []T
	index int
}

func New[T any](items []T) *Pager[T] {
	return &Pager[T]{items: items}
}

// Current returns the item under the cursor and false when the pager is empty.
func (p *Pager[T]) Current() (T, bool) {
	if len(p.items) == 0 {
		var zero T
		return zero, false
	}
	return p.items[p.index], true
}

func (p *Pager[T]) Next() (T, bool) {
	p.index = Next(p.index, len(p.items))
	return p.Current()
}

func (p *Pager[T]) Prev() (T, bool) {
	p.index = Prev(p.index, len(p.items))
	return p.Current()
}

func (p *Pager[T]) Index() int {
	return p.index
}

func (p *Pager[T]) Len() int {
	return len(p.items)
}

func (p *Pager[T]) Items() []T {
	return p.items
}

// Reset replaces the items and moves the cursor to the start.
func (p *Pager[T]) Reset(items []T) {
	p.items = items
	p.index = 0
}
