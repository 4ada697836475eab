package dict

import "unsafe"

// Iterator walks every live entry of a Dict exactly once under a
// stable size. There are two flavors, distinguished by safe:
//
//   - An unsafe iterator may only be advanced; any mutation of the
//     dictionary during its lifetime voids correctness, and is
//     detected (not prevented) via a fingerprint captured on the first
//     call to Next and re-checked on Release.
//   - A safe iterator may coexist with free mutation of the
//     dictionary; while any safe iterator is alive, incremental
//     rehashing (passive or bulk) is suspended, though the secondary
//     subtable may still be allocated by the growth path.
type Iterator struct {
	d    *Dict
	safe bool

	table       int // 0 = primary, 1 = secondary
	bucketIndex int
	entry       *Entry
	nextEntry   *Entry

	fingerprint int64
	started     bool
	released    bool
}

// Iterator returns a new unsafe iterator over d.
func (d *Dict) Iterator() *Iterator {
	return &Iterator{d: d, bucketIndex: -1}
}

// SafeIterator returns a new safe iterator over d, incrementing d's
// active-iterator count for the iterator's lifetime.
func (d *Dict) SafeIterator() *Iterator {
	d.iteratorsActive++
	return &Iterator{d: d, safe: true, bucketIndex: -1}
}

// fingerprint derives a 64-bit digest of a dictionary's shape by
// XOR-chaining an integer-avalanche hash over the six values:
// {primary backing address, primary capacity, primary used, secondary
// backing address, secondary capacity, secondary used}. Any
// reallocation (growth, shrink, promotion) changes at least one of
// these and is therefore detectable.
func fingerprint(d *Dict) int64 {
	vals := [6]uint64{
		uint64(backingAddress(d.primary.buckets)),
		d.primary.capacity,
		d.primary.used,
		uint64(backingAddress(d.secondary.buckets)),
		d.secondary.capacity,
		d.secondary.used,
	}
	var fp uint64
	for _, v := range vals {
		fp ^= v
		// integer-avalanche hash: the splitmix64 finalizer.
		fp = (fp ^ (fp >> 30)) * 0xbf58476d1ce4e5b9
		fp = (fp ^ (fp >> 27)) * 0x94d049bb133111eb
		fp = fp ^ (fp >> 31)
	}
	return int64(fp)
}

// backingAddress returns the backing array's data pointer as an
// integer, or 0 for a nil/empty slice, so uninitialized subtables
// contribute a stable 0 rather than a garbage value to the
// fingerprint.
func backingAddress(buckets []*Entry) uintptr {
	if len(buckets) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(buckets)))
}

// Next advances the iterator and returns the next live entry, or nil
// once every bucket of the relevant subtable(s) has been exhausted.
// The saved next-entry pointer is captured before returning an entry
// so the caller may delete the returned entry immediately.
func (it *Iterator) Next() *Entry {
	for {
		if it.entry == nil {
			if !it.started {
				it.started = true
				if !it.safe {
					it.fingerprint = fingerprint(it.d)
				}
			}
			it.bucketIndex++
			table := it.currentSubtable()
			if it.bucketIndex >= int(table.capacity) {
				if it.d.IsRehashing() && it.table == 0 {
					it.table = 1
					it.bucketIndex = -1
					continue
				}
				return nil
			}
			it.entry = table.buckets[it.bucketIndex]
		} else {
			it.entry = it.nextEntry
		}
		if it.entry != nil {
			it.nextEntry = it.entry.next
			return it.entry
		}
	}
}

func (it *Iterator) currentSubtable() *subtable {
	if it.table == 0 {
		return &it.d.primary
	}
	return &it.d.secondary
}

// Release ends the iterator. For a safe iterator it decrements the
// dictionary's active-iterator count. For an unsafe iterator it
// re-captures the fingerprint and panics (a fatal assertion, matching
// dict.c's behavior) if the dictionary's shape changed during
// iteration.
func (it *Iterator) Release() {
	if it.released {
		return
	}
	it.released = true
	if it.safe {
		it.d.iteratorsActive--
		return
	}
	if it.started && fingerprint(it.d) != it.fingerprint {
		panic("dict: unsafe iterator used with dict mutated during iteration")
	}
}
