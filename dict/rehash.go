package dict

import "github.com/rucdlc/dictengine/dictlog"

// Rehash migrates up to n non-empty buckets from the primary into the
// secondary, one whole bucket (and its full chain) at a time. It is
// refused with ErrBusy if any iterator is active, and is a no-op
// (returns false, nil) if no rehash is in progress.
//
// An implicit empty-bucket skip budget of 10*n bounds the work done
// scanning past already-empty primary buckets: the step returns with
// work still pending if the budget runs out before n buckets were
// migrated. When the primary's used count reaches zero, the secondary
// is promoted into the primary and the rehash index resets to -1.
func (d *Dict) Rehash(n int) (moreWork bool, err error) {
	if d.iteratorsActive > 0 {
		return false, ErrBusy
	}
	if !d.IsRehashing() {
		return false, nil
	}
	emptyVisits := 10 * n
	for ; n > 0; n-- {
		if d.primary.used == 0 {
			break
		}
		for d.primary.buckets[d.rehashIndex] == nil {
			d.rehashIndex++
			emptyVisits--
			if emptyVisits == 0 {
				return true, nil
			}
		}
		d.migrateBucket(int(d.rehashIndex))
		d.rehashIndex++
	}
	if d.primary.used == 0 {
		d.finishRehash()
		return false, nil
	}
	return true, nil
}

// migrateBucket moves every entry in primary bucket idx into the
// secondary, recomputing each entry's target bucket from its key's
// hash. Entries are moved by pointer — only next links and bucket
// heads are rewritten, never reallocated — and prepended to the
// secondary's target chain.
func (d *Dict) migrateBucket(idx int) {
	e := d.primary.buckets[idx]
	for e != nil {
		next := e.next
		target := d.secondary.index(d.policy.hash(e.key))
		e.next = d.secondary.buckets[target]
		d.secondary.buckets[target] = e
		d.primary.used--
		d.secondary.used++
		e = next
	}
	d.primary.buckets[idx] = nil
}

// finishRehash frees the primary's backing array, promotes the
// secondary into the primary by field copy, resets the secondary, and
// clears the rehash index.
func (d *Dict) finishRehash() {
	dictlog.Debug("dict: rehash complete, promoting secondary capacity=%d", d.secondary.capacity)
	d.primary = d.secondary
	d.secondary.reset()
	d.rehashIndex = -1
}

// passiveRehashStep advances the rehash by exactly one bucket if a
// rehash is in progress and no iterator is active. Called at the top
// of every mutation, lookup, delete and sample entrypoint.
func (d *Dict) passiveRehashStep() {
	if d.iteratorsActive == 0 && d.IsRehashing() {
		d.Rehash(1)
	}
}

// RehashMilliseconds repeatedly rehashes in batches of 100 buckets
// until either no work remains or the elapsed time budget is
// exceeded, checked only between batches, so actual elapsed time may
// slightly exceed ms. Refuses (returns 0, ErrBusy) while any iterator
// is active.
func (d *Dict) RehashMilliseconds(ms int) (steps int, err error) {
	if d.iteratorsActive > 0 {
		return 0, ErrBusy
	}
	deadline := nowMillis() + int64(ms)
	for {
		more, rerr := d.Rehash(100)
		if rerr != nil {
			return steps, rerr
		}
		steps++
		if !more {
			return steps, nil
		}
		if nowMillis() >= deadline {
			return steps, nil
		}
	}
}
