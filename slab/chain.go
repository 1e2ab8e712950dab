package slab

// link is the set of cell widths a chain can be laid out in. The constructor
// picks the narrowest width able to index the highest slot so the two link
// slices cost one, two or four bytes per slot.
type link interface {
	~uint8 | ~uint16 | ~uint32
}

// chain orders live slots from most to least recently used as a
// doubly-linked list over two preallocated link slices instead of heap
// nodes. There is no sentinel: fwd[tail] and back[head] are never read, free
// slots have undefined linkage, and every walk is bounded by the store's
// live count rather than by a terminator.
type chain[S link] struct {
	fwd  []S // toward less recently used
	back []S // toward more recently used
	head S
	tail S
}

func newChain[S link](capacity int) chain[S] {
	return chain[S]{
		fwd:  make([]S, capacity),
		back: make([]S, capacity),
	}
}

// insertFresh places a never-linked slot at the head. first must be true for
// the insert that makes the chain non-empty, so head and tail get seeded.
func (c *chain[S]) insertFresh(slot S, first bool) {
	if first {
		c.head, c.tail = slot, slot
		return
	}
	c.pushFront(slot)
}

// moveToFront relocates a live slot to the head without disturbing the
// relative order of the remaining slots. Touches at most four link cells.
func (c *chain[S]) moveToFront(slot S) {
	if slot == c.head {
		return
	}
	prev := c.back[slot]
	if slot == c.tail {
		c.tail = prev
	} else {
		next := c.fwd[slot]
		c.fwd[prev] = next
		c.back[next] = prev
	}
	c.fwd[slot] = c.head
	c.back[c.head] = slot
	c.head = slot
}

// evictTail unlinks and returns the least recently used slot. Only valid on
// a full chain; the caller recycles the slot via pushFront once it holds the
// new entry.
func (c *chain[S]) evictTail() S {
	slot := c.tail
	if slot != c.head {
		c.tail = c.back[slot]
	}
	return slot
}

// pushFront splices an unlinked slot in before the current head. A no-op
// when the slot already is the head, which happens only on a single-slot
// chain recycling its one entry.
func (c *chain[S]) pushFront(slot S) {
	if slot == c.head {
		return
	}
	c.fwd[slot] = c.head
	c.back[c.head] = slot
	c.head = slot
}
