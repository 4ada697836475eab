package dict

import "math/bits"

// reverseBinaryIncrement advances cursor by the reverse-binary step
// under mask: bits above the mask are forced to one, the whole word is
// bit-reversed, incremented, and reversed back. Incrementing from the
// high bit makes the cursor traverse buckets in a prefix-free order,
// so a previously-visited index's extensions in a doubled table are
// skipped rather than revisited, and the same reasoning works in
// reverse for a shrunk table.
func reverseBinaryIncrement(cursor, mask uint64) uint64 {
	v := cursor | ^mask
	v = bits.Reverse64(v)
	v++
	return bits.Reverse64(v)
}

// emitBucket invokes bucketFn (if non-nil) once with the chain head,
// then entryFn once per entry in the chain.
func emitBucket(s *subtable, idx uint64, bucketFn func([]*Entry), entryFn func(*Entry)) {
	head := s.buckets[idx]
	if bucketFn != nil {
		chain := make([]*Entry, 0, 4)
		for e := head; e != nil; e = e.next {
			chain = append(chain, e)
		}
		bucketFn(chain)
	}
	if entryFn != nil {
		for e := head; e != nil; e = e.next {
			entryFn(e)
		}
	}
}

// Scan visits every entry present throughout the scan under a table of
// stable size, tolerating growth or shrink (even an in-progress
// rehash) between calls at the cost of possibly revisiting some
// entries. It takes no iterator state beyond the 64-bit cursor it
// returns; passing 0 starts a scan, and a returned cursor of 0 means a
// full cycle completed. bucketFn, if non-nil, is called once per
// visited bucket with its full chain (head-first); entryFn, if
// non-nil, is called once per entry in that chain.
func (d *Dict) Scan(cursor uint64, bucketFn func([]*Entry), entryFn func(*Entry)) uint64 {
	if d.primary.capacity == 0 {
		return 0
	}
	d.iteratorsActive++
	defer func() { d.iteratorsActive-- }()

	if !d.IsRehashing() {
		mask := d.primary.mask
		emitBucket(&d.primary, cursor&mask, bucketFn, entryFn)
		return reverseBinaryIncrement(cursor, mask)
	}

	small, large := &d.primary, &d.secondary
	if small.capacity > large.capacity {
		small, large = large, small
	}
	ms, ml := small.mask, large.mask

	emitBucket(small, cursor&ms, bucketFn, entryFn)

	for {
		emitBucket(large, cursor&ml, bucketFn, entryFn)
		cursor = reverseBinaryIncrement(cursor, ml)
		if cursor&(ms^ml) == 0 {
			break
		}
	}
	return cursor
}
