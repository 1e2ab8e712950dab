// Package slab implements the allocation-free core of a fixed-capacity LRU
// cache. All storage — keys, values, and the recency links — is claimed up
// front in parallel slices sized exactly to the capacity, and entries are
// recycled in place when the least recently used one is evicted, so
// steady-state operations never allocate.
//
// Stores are not safe for concurrent use; callers must synchronize
// externally.
package slab

import (
	"errors"
	"iter"
	"math"
)

var (
	// ErrInvalidCapacity is returned when a capacity below one is requested.
	ErrInvalidCapacity = errors.New("slab: capacity must be a positive integer")

	// ErrCapacityUnsupported is returned when the highest slot index does
	// not fit in 32 bits.
	ErrCapacityUnsupported = errors.New("slab: capacity exceeds 1<<32 slots")
)

// SetResult reports what a Set displaced.
type SetResult uint8

const (
	// SetInserted means the key was new and a free slot was claimed.
	SetInserted SetResult = iota
	// SetUpdated means the key already existed and only its value changed.
	SetUpdated
	// SetEvicted means the least recently used entry was discarded to make
	// room for a new key.
	SetEvicted
)

// Store is a fixed-capacity key-value store with LRU eviction. Recency is
// advanced by Set and by Get hits; Peek, Has and Oldest never reorder.
type Store[K comparable, V any] interface {
	// Cap returns the immutable capacity.
	Cap() int

	// Len returns the current number of live entries.
	Len() int

	// Set writes a key and promotes it to most recently used. It reports
	// what was displaced: the prior value for an existing key (SetUpdated),
	// or the least recently used entry recycled to admit a new key on a
	// full store (SetEvicted). On SetInserted the remaining returns are
	// zero values.
	Set(key K, value V) (res SetResult, displacedKey K, prior V)

	// Get returns the value for key and promotes it to most recently used.
	Get(key K) (V, bool)

	// Peek returns the value for key without updating recency.
	Peek(key K) (V, bool)

	// Has reports whether key is live, without updating recency.
	Has(key K) bool

	// Oldest returns the least recently used entry without updating
	// recency. ok is false when the store is empty.
	Oldest() (key K, value V, ok bool)

	// Clear logically empties the store. The fixed slices are not
	// scrubbed, so replaced keys and values stay referenced until their
	// slots are rewritten.
	Clear()

	// Keys, Values and Entries return lazy sequences over live entries
	// from most to least recently used. The entry count is captured when a
	// range begins; mutating the store mid-walk is undefined behavior, and
	// a finished sequence must be ranged again for a fresh pass.
	Keys() iter.Seq[K]
	Values() iter.Seq[V]
	Entries() iter.Seq2[K, V]
}

// New constructs a Store of the given capacity, selecting the narrowest
// link width able to index the highest slot: one byte per link up to 256
// slots, two up to 65536, four beyond that.
func New[K comparable, V any](capacity int) (Store[K, V], error) {
	switch {
	case capacity < 1:
		return nil, ErrInvalidCapacity
	case uint64(capacity-1) <= math.MaxUint8:
		return newStore[K, V, uint8](capacity), nil
	case uint64(capacity-1) <= math.MaxUint16:
		return newStore[K, V, uint16](capacity), nil
	case uint64(capacity-1) <= math.MaxUint32:
		return newStore[K, V, uint32](capacity), nil
	default:
		return nil, ErrCapacityUnsupported
	}
}

// store lays a key index and a recency chain over four parallel slices all
// sized to the capacity. Slots are claimed in sequence 0,1,2,... until the
// store fills; from then on every slot is live and reused through eviction.
type store[K comparable, V any, S link] struct {
	keys  []K
	vals  []V
	index map[K]S
	order chain[S]
	size  int
}

func newStore[K comparable, V any, S link](capacity int) *store[K, V, S] {
	return &store[K, V, S]{
		keys:  make([]K, capacity),
		vals:  make([]V, capacity),
		index: make(map[K]S, capacity),
		order: newChain[S](capacity),
	}
}

func (s *store[K, V, S]) Cap() int { return len(s.keys) }

func (s *store[K, V, S]) Len() int { return s.size }

func (s *store[K, V, S]) Set(key K, value V) (SetResult, K, V) {
	if slot, ok := s.index[key]; ok {
		prior := s.vals[slot]
		s.vals[slot] = value
		s.order.moveToFront(slot)
		return SetUpdated, key, prior
	}

	if s.size < len(s.keys) {
		slot := S(s.size)
		s.keys[slot] = key
		s.vals[slot] = value
		s.index[key] = slot
		s.order.insertFresh(slot, s.size == 0)
		s.size++
		var zeroK K
		var zeroV V
		return SetInserted, zeroK, zeroV
	}

	// Full: recycle the tail slot in place. The index drops the old key
	// before the slot is rewritten, so the bijection never has two keys
	// naming one slot.
	slot := s.order.evictTail()
	evictedKey, evictedValue := s.keys[slot], s.vals[slot]
	delete(s.index, evictedKey)
	s.keys[slot] = key
	s.vals[slot] = value
	s.index[key] = slot
	s.order.pushFront(slot)
	return SetEvicted, evictedKey, evictedValue
}

func (s *store[K, V, S]) Get(key K) (V, bool) {
	slot, ok := s.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	s.order.moveToFront(slot)
	return s.vals[slot], true
}

func (s *store[K, V, S]) Peek(key K) (V, bool) {
	slot, ok := s.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return s.vals[slot], true
}

func (s *store[K, V, S]) Has(key K) bool {
	_, ok := s.index[key]
	return ok
}

func (s *store[K, V, S]) Oldest() (K, V, bool) {
	if s.size == 0 {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	slot := s.order.tail
	return s.keys[slot], s.vals[slot], true
}

func (s *store[K, V, S]) Clear() {
	clear(s.index)
	s.size = 0
	s.order.head, s.order.tail = 0, 0
}

func (s *store[K, V, S]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		slot := s.order.head
		for n := s.size; n > 0; n-- {
			if !yield(s.keys[slot]) {
				return
			}
			slot = s.order.fwd[slot]
		}
	}
}

func (s *store[K, V, S]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		slot := s.order.head
		for n := s.size; n > 0; n-- {
			if !yield(s.vals[slot]) {
				return
			}
			slot = s.order.fwd[slot]
		}
	}
}

func (s *store[K, V, S]) Entries() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		slot := s.order.head
		for n := s.size; n > 0; n-- {
			if !yield(s.keys[slot], s.vals[slot]) {
				return
			}
			slot = s.order.fwd[slot]
		}
	}
}
