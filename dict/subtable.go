package dict

// subtable is one of the dictionary's two backing arrays: a fixed
// power-of-two number of bucket heads, each the head of a singly
// linked chain of entries.
type subtable struct {
	buckets  []*Entry
	capacity uint64
	mask     uint64
	used     uint64
}

// allocateSubtable zero-initializes a fresh backing array of the given
// power-of-two capacity.
func allocateSubtable(capacity uint64) subtable {
	return subtable{
		buckets:  make([]*Entry, capacity),
		capacity: capacity,
		mask:     capacity - 1,
		used:     0,
	}
}

// reset zeroes every field without freeing the backing array's
// entries; used after a pointer-move migration has already emptied
// the table's chains, and to clear a subtable that was never
// populated.
func (s *subtable) reset() {
	*s = subtable{}
}

// clear walks every bucket, destroys each entry's key and value via
// the policy, and resets the subtable to zero. progress, if non-nil,
// is invoked once per 65,536 buckets visited as a coarse progress
// hook for callers clearing very large tables.
func (s *subtable) clear(p *Policy, progress func()) {
	for i, head := range s.buckets {
		if progress != nil && i > 0 && i%65536 == 0 {
			progress()
		}
		for e := head; e != nil; {
			next := e.next
			destroyKey(p, e)
			destroyValue(p, e)
			e = next
		}
	}
	s.reset()
}

// index computes the bucket a hashed key belongs to in this subtable.
func (s *subtable) index(hash uint64) uint64 {
	return hash & s.mask
}
