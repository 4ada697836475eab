package dict

import "github.com/rucdlc/dictengine/dictlog"

// nextPowerOfTwo returns the smallest power of two >= n, with a floor
// of initialCapacity, via the standard bit-doubling technique
// generalized to 64 bits.
func nextPowerOfTwo(n uint64) uint64 {
	if n <= initialCapacity {
		return initialCapacity
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}

// expandIfNeeded runs the growth decision of spec.md §4.4 before every
// mutation that may insert a new entry.
func (d *Dict) expandIfNeeded() error {
	if d.IsRehashing() {
		return nil
	}
	if d.primary.capacity == 0 {
		return d.Expand(initialCapacity)
	}
	if d.primary.used >= d.primary.capacity &&
		(resizeEnabled || float64(d.primary.used)/float64(d.primary.capacity) > forceResizeRatio) {
		return d.Expand(d.primary.used * 2)
	}
	return nil
}

// Expand grows (or, on first call, allocates) the dictionary's backing
// storage to at least capacity, rounded up to a power of two. The
// first allocation sets the primary directly; subsequent expansions
// always target the secondary and begin an incremental rehash.
// Expanding to the same capacity as the current primary is refused
// with ErrInvariant, as is expanding an already-rehashing dictionary
// (ErrBusy) or to a capacity smaller than the current used count
// (ErrInvariant).
func (d *Dict) Expand(capacity uint64) error {
	if d.IsRehashing() {
		return ErrBusy
	}
	size := nextPowerOfTwo(capacity)
	if size < d.primary.used {
		return ErrInvariant
	}
	if d.primary.capacity == 0 {
		d.primary = allocateSubtable(size)
		dictlog.Debug("dict: initial allocation capacity=%d", size)
		return nil
	}
	if size == d.primary.capacity {
		return ErrInvariant
	}
	d.secondary = allocateSubtable(size)
	d.rehashIndex = 0
	dictlog.Debug("dict: begin rehash %d -> %d", d.primary.capacity, size)
	return nil
}

// ResizeToFit shrinks (or grows) the table toward a load factor near
// 1: it expands to max(nextPowerOfTwo(used), initialCapacity). It is a
// no-op, returning ErrBusy, while a rehash is already in progress, and
// does nothing (returns nil) when resizing has been disabled.
func (d *Dict) ResizeToFit() error {
	if !resizeEnabled {
		return nil
	}
	if d.IsRehashing() {
		return ErrBusy
	}
	target := nextPowerOfTwo(d.primary.used)
	if target < initialCapacity {
		target = initialCapacity
	}
	return d.Expand(target)
}
