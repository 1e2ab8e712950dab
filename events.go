package slotlru

// evictHandler pairs a subscriber with the id its unsubscribe closure
// removes it by.
type evictHandler[K comparable, V any] struct {
	id uint64
	fn func(K, V)
}

// OnEvicted subscribes fn to eviction notifications. Handlers run
// synchronously on the caller's goroutine, in subscription order, only when
// a full cache discards an entry to admit a new key — never for in-place
// overwrites of an existing key and never for Clear.
//
// A handler runs after the triggering Set has fully committed. If it
// panics, the panic reaches the Set caller, later handlers are skipped, and
// the new entry stays in the cache. Handlers must not mutate the cache.
//
// The returned function removes the subscription; calling it more than once
// is harmless.
func (c *Cache[K, V]) OnEvicted(fn func(key K, value V)) (unsubscribe func()) {
	c.lastID++
	id := c.lastID
	c.handlers = append(c.handlers, evictHandler[K, V]{id: id, fn: fn})
	return func() {
		for i, h := range c.handlers {
			if h.id == id {
				c.handlers = append(c.handlers[:i], c.handlers[i+1:]...)
				return
			}
		}
	}
}

func (c *Cache[K, V]) notify(key K, value V) {
	for _, h := range c.handlers {
		h.fn(key, value)
	}
}
