package slotlru

import "iter"

// Entry is a key-value pair for bulk construction.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// From builds a cache from pairs, inserted in order: a later duplicate key
// overwrites the earlier value and ends up more recent. Capacity defaults
// to len(pairs); an explicit capacity may size the cache differently, in
// which case a smaller one evicts normally during the fill. An empty pairs
// slice with no explicit capacity fails with ErrInvalidCapacity.
func From[K comparable, V any](pairs []Entry[K, V], capacity ...int) (*Cache[K, V], error) {
	n := len(pairs)
	if len(capacity) > 0 {
		n = capacity[0]
	}
	c, err := New[K, V](n)
	if err != nil {
		return nil, err
	}
	for _, p := range pairs {
		c.Set(p.Key, p.Value)
	}
	return c, nil
}

// FromSeq builds a cache from an arbitrary finite sequence of pairs, with
// the same ordering semantics as From. The capacity must be given
// explicitly because a sequence's length is not known up front.
func FromSeq[K comparable, V any](pairs iter.Seq2[K, V], capacity int) (*Cache[K, V], error) {
	c, err := New[K, V](capacity)
	if err != nil {
		return nil, err
	}
	for k, v := range pairs {
		c.Set(k, v)
	}
	return c, nil
}
