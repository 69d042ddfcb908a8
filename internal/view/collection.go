package view

import "strings"

// Collection is the in-memory list behind a table: items fetched on mount,
// filtered locally by a search string.
type Collection[T any] struct {
	items  []T
	key    func(T) int64
	fields func(T) []string
}

func NewCollection[T any](key func(T) int64, fields func(T) []string) *Collection[T] {
	return &Collection[T]{key: key, fields: fields}
}

func (c *Collection[T]) Set(items []T) {
	c.items = items
}

func (c *Collection[T]) Items() []T {
	return c.items
}

func (c *Collection[T]) Len() int {
	return len(c.items)
}

// Filter keeps items where any search field contains query, ignoring case.
// A blank query keeps everything.
func (c *Collection[T]) Filter(query string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]T{}, c.items...)
	}

	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		for _, field := range c.fields(item) {
			if strings.Contains(strings.ToLower(field), q) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

func (c *Collection[T]) Find(id int64) (T, bool) {
	for _, item := range c.items {
		if c.key(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Remove splices id out and returns the list as it was before, for Restore.
func (c *Collection[T]) Remove(id int64) []T {
	prev := c.items
	next := make([]T, 0, len(prev))
	for _, item := range prev {
		if c.key(item) != id {
			next = append(next, item)
		}
	}
	c.items = next
	return prev
}

func (c *Collection[T]) Restore(prev []T) {
	c.items = prev
}
