// Package slotlru provides a fixed-capacity LRU cache backed by
// preallocated slot storage.
//
// A Cache claims all of its memory at construction and never grows: the
// recency list is laid out over integer link arrays sized to the narrowest
// width the capacity needs, and entries are recycled in place when the
// least recently used one is evicted to admit a new key. Evictions can be
// observed through OnEvicted subscriptions.
//
// Caches take no locks and are not safe for concurrent use; callers that
// share one across goroutines must synchronize externally.
package slotlru
