// Package cache provides a small in-process LRU cache with expiry, used to
// keep reference-data lookups off the database.
package cache

import (
	"container/list"
	"sync"
	"time"
)

// LRU holds at most capacity entries, each valid for ttl after it was set.
// It is safe for concurrent use.
type LRU[V any] struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	now      func() time.Time
	entries  map[string]*list.Element
	order    *list.List
}

type entry[V any] struct {
	key       string
	value     V
	expiresAt time.Time
}

func NewLRU[V any](capacity int, ttl time.Duration) *LRU[V] {
	if capacity < 1 {
		capacity = 1
	}
	return &LRU[V]{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		entries:  make(map[string]*list.Element),
		order:    list.New(),
	}
}

func (c *LRU[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	elem, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	e := elem.Value.(*entry[V])
	if c.now().After(e.expiresAt) {
		c.remove(elem)
		return zero, false
	}
	c.order.MoveToFront(elem)
	return e.value, true
}

func (c *LRU[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.ttl)
	if elem, ok := c.entries[key]; ok {
		elem.Value = &entry[V]{key: key, value: value, expiresAt: expiresAt}
		c.order.MoveToFront(elem)
		return
	}

	c.entries[key] = c.order.PushFront(&entry[V]{key: key, value: value, expiresAt: expiresAt})
	if c.order.Len() > c.capacity {
		c.remove(c.order.Back())
	}
}

func (c *LRU[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		c.remove(elem)
	}
}

// Purge drops every entry.
func (c *LRU[V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*list.Element)
	c.order.Init()
}

func (c *LRU[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *LRU[V]) remove(elem *list.Element) {
	delete(c.entries, elem.Value.(*entry[V]).key)
	c.order.Remove(elem)
}
