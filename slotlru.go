package slotlru

import (
	"iter"

	"github.com/cachetools/slotlru/slab"
)

// Construction errors, re-exported from the core package.
var (
	ErrInvalidCapacity     = slab.ErrInvalidCapacity
	ErrCapacityUnsupported = slab.ErrCapacityUnsupported
)

// Cache is a fixed-size LRU cache over preallocated storage. The zero value
// is not usable; construct with New, From or FromSeq.
type Cache[K comparable, V any] struct {
	store    slab.Store[K, V]
	handlers []evictHandler[K, V]
	lastID   uint64
}

// Displaced describes the entry a Set pushed out: the prior value of the
// written key when Evicted is false, or a different entry discarded to make
// room when Evicted is true.
type Displaced[K comparable, V any] struct {
	Key     K
	Value   V
	Evicted bool
}

// New constructs a cache of the given capacity. All storage is allocated
// here and the capacity cannot change afterwards. Fails with
// ErrInvalidCapacity for capacities below one and ErrCapacityUnsupported
// for capacities whose highest slot index exceeds 32 bits.
func New[K comparable, V any](capacity int) (*Cache[K, V], error) {
	store, err := slab.New[K, V](capacity)
	if err != nil {
		return nil, err
	}
	return &Cache[K, V]{store: store}, nil
}

// Cap returns the immutable capacity.
func (c *Cache[K, V]) Cap() int { return c.store.Cap() }

// Len returns the current number of live entries.
func (c *Cache[K, V]) Len() int { return c.store.Len() }

// Set writes a key and promotes it to most recently used. An existing key
// is updated in place; a new key claims a free slot or, when the cache is
// full, recycles the least recently used one. On eviction OnEvicted
// subscribers are notified with the discarded entry, strictly after the new
// entry is committed.
func (c *Cache[K, V]) Set(key K, value V) {
	c.SetWithOutcome(key, value)
}

// SetWithOutcome is Set reporting what was displaced: nil when the key was
// new and the cache had room, otherwise the overwritten or evicted entry.
// Exactly one of the three outcomes occurs per call.
func (c *Cache[K, V]) SetWithOutcome(key K, value V) *Displaced[K, V] {
	res, displacedKey, prior := c.store.Set(key, value)
	switch res {
	case slab.SetUpdated:
		return &Displaced[K, V]{Key: displacedKey, Value: prior}
	case slab.SetEvicted:
		c.notify(displacedKey, prior)
		return &Displaced[K, V]{Key: displacedKey, Value: prior, Evicted: true}
	default:
		return nil
	}
}

// Get returns the value for key and promotes it to most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	return c.store.Get(key)
}

// Peek returns the value for key without updating its recency.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	return c.store.Peek(key)
}

// Has reports whether key is in the cache, without updating its recency.
func (c *Cache[K, V]) Has(key K) bool {
	return c.store.Has(key)
}

// Oldest returns the least recently used entry without promoting it, or
// ok=false when the cache is empty.
func (c *Cache[K, V]) Oldest() (key K, value V, ok bool) {
	return c.store.Oldest()
}

// Clear removes every entry. No eviction notifications fire; the backing
// storage is kept for reuse, so replaced keys and values stay referenced
// until their slots are rewritten.
func (c *Cache[K, V]) Clear() {
	c.store.Clear()
}

// Keys returns a lazy sequence of keys from most to least recently used.
// The entry count is captured when the range begins; mutating the cache
// mid-iteration is undefined behavior. Range again for a fresh pass.
func (c *Cache[K, V]) Keys() iter.Seq[K] { return c.store.Keys() }

// Values returns a lazy sequence of values from most to least recently
// used, under the same contract as Keys.
func (c *Cache[K, V]) Values() iter.Seq[V] { return c.store.Values() }

// Entries returns a lazy sequence of key-value pairs from most to least
// recently used, under the same contract as Keys.
func (c *Cache[K, V]) Entries() iter.Seq2[K, V] { return c.store.Entries() }
