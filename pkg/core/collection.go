package core

import "iter"

// Collection is a keyed set of records of one kind.
// Records are keyed by name and iterate in insertion order. A nil *Collection
// reads as empty.
type Collection[T Record] struct {
	items []T
	index map[string]int
}

// NewCollection builds a collection from records, in order.
// A later record with the same name replaces the earlier one in place.
func NewCollection[T Record](records ...T) *Collection[T] {
	c := &Collection[T]{index: make(map[string]int, len(records))}
	for _, r := range records {
		c.Put(r)
	}
	return c
}

// Put inserts r, or replaces the record with the same name keeping its position.
func (c *Collection[T]) Put(r T) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if i, ok := c.index[r.Key()]; ok {
		c.items[i] = r
		return
	}
	c.index[r.Key()] = len(c.items)
	c.items = append(c.items, r)
}

// Get returns the record named name.
func (c *Collection[T]) Get(name string) (T, bool) {
	if c == nil {
		var zero T
		return zero, false
	}
	i, ok := c.index[name]
	if !ok {
		var zero T
		return zero, false
	}
	return c.items[i], true
}

// Delete removes the record named name and reports whether it was present.
func (c *Collection[T]) Delete(name string) bool {
	if c == nil {
		return false
	}
	i, ok := c.index[name]
	if !ok {
		return false
	}
	delete(c.index, name)
	c.items = append(c.items[:i], c.items[i+1:]...)
	for j := i; j < len(c.items); j++ {
		c.index[c.items[j].Key()] = j
	}
	return true
}

func (c *Collection[T]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Kind reports the record kind held by the collection.
func (c *Collection[T]) Kind() Kind {
	var zero T
	return zero.Kind()
}

// All iterates the records in insertion order.
func (c *Collection[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if c == nil {
			return
		}
		for _, r := range c.items {
			if !yield(r) {
				return
			}
		}
	}
}

// Records returns a copy of the records in insertion order.
func (c *Collection[T]) Records() []T {
	if c == nil {
		return nil
	}
	return append([]T(nil), c.items...)
}

// Names returns the record names in insertion order.
func (c *Collection[T]) Names() []string {
	out := make([]string, c.Len())
	if c == nil {
		return out
	}
	for i, r := range c.items {
		out[i] = r.Key()
	}
	return out
}

func (c *Collection[T]) recordSet() {}
