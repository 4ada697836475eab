package dict

import (
	"math/rand"
	"time"
)

// rng is this package's private random source, seeded once at package
// init from the wall clock.
var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

// randomPopulatedBucket picks a non-empty bucket uniformly over the
// populated index range and returns the subtable and index it lives
// in. While rehashing, the populated range is [rehashIndex,
// primary.capacity+secondary.capacity) mapped piecewise across the
// two subtables; this biases sampling toward whichever subtable is
// larger, a known and deliberately preserved quirk (spec Open
// Question #1), not toward balance.
func (d *Dict) randomPopulatedBucket() (*subtable, uint64) {
	for {
		if !d.IsRehashing() {
			idx := uint64(rng.Int63n(int64(d.primary.capacity)))
			if d.primary.buckets[idx] != nil {
				return &d.primary, idx
			}
			continue
		}
		total := d.primary.capacity + d.secondary.capacity
		span := total - uint64(d.rehashIndex)
		pick := uint64(d.rehashIndex) + uint64(rng.Int63n(int64(span)))
		if pick < d.primary.capacity {
			if d.primary.buckets[pick] != nil {
				return &d.primary, pick
			}
		} else {
			idx := pick - d.primary.capacity
			if d.secondary.buckets[idx] != nil {
				return &d.secondary, idx
			}
		}
	}
}

// RandomEntry returns a uniformly random entry from a uniformly
// randomly chosen populated bucket — an entry in a chain of length L
// is therefore returned L times less often than an entry alone in its
// bucket; use FairRandomEntry when that matters. Returns nil on an
// empty dictionary.
func (d *Dict) RandomEntry() *Entry {
	d.passiveRehashStep()
	if d.Len() == 0 {
		return nil
	}
	s, idx := d.randomPopulatedBucket()
	length := 0
	for e := s.buckets[idx]; e != nil; e = e.next {
		length++
	}
	target := rng.Intn(length)
	e := s.buckets[idx]
	for i := 0; i < target; i++ {
		e = e.next
	}
	return e
}

// SampleK tries to collect up to count entries into des, returning how
// many it found. It starts at a random index within
// max(primary.mask, secondary.mask) and scans forward, skipping
// indices invisible to the current rehash state (below rehashIndex in
// the primary, or out of range in the smaller subtable). A run of 5 or
// more consecutive empty buckets once at least count step attempts
// have been made triggers a re-seed to a fresh random start index. The scan gives up after count*10 total step attempts.
// Duplicates are possible; uniformity is not guaranteed. Up to count
// passive rehash steps are spent first to make progress.
func (d *Dict) SampleK(des []*Entry, count int) int {
	for i := 0; i < count && d.IsRehashing(); i++ {
		d.passiveRehashStep()
	}
	if d.Len() == 0 || count <= 0 {
		return 0
	}

	maxMask := d.primary.mask
	if d.secondary.mask > maxMask {
		maxMask = d.secondary.mask
	}

	n := 0
	emptyRun := 0
	attempts := 0
	idx := uint64(rng.Int63n(int64(maxMask + 1)))

	for n < count && attempts < count*10 {
		attempts++
		found := false

		if !d.IsRehashing() {
			if idx <= d.primary.mask {
				if head := d.primary.buckets[idx]; head != nil {
					for e := head; e != nil && n < count; e = e.next {
						des[n] = e
						n++
					}
					found = true
				}
			}
		} else {
			if idx >= uint64(d.rehashIndex) && idx <= d.primary.mask {
				if head := d.primary.buckets[idx]; head != nil {
					for e := head; e != nil && n < count; e = e.next {
						des[n] = e
						n++
					}
					found = true
				}
			}
			if idx <= d.secondary.mask {
				if head := d.secondary.buckets[idx]; head != nil {
					for e := head; e != nil && n < count; e = e.next {
						des[n] = e
						n++
					}
					found = true
				}
			}
		}

		if found {
			emptyRun = 0
		} else {
			emptyRun++
			if emptyRun >= 5 && attempts >= count {
				idx = uint64(rng.Int63n(int64(maxMask + 1)))
				emptyRun = 0
				continue
			}
		}
		idx = (idx + 1) & maxMask
	}
	return n
}

// FairRandomEntry collects up to 15 entries via SampleK and returns a
// uniformly random one among them, reducing RandomEntry's bias
// against entries in long chains. Falls back to RandomEntry if SampleK collected
// nothing.
func (d *Dict) FairRandomEntry() *Entry {
	const fairSampleSize = 15
	des := make([]*Entry, fairSampleSize)
	n := d.SampleK(des, fairSampleSize)
	if n == 0 {
		return d.RandomEntry()
	}
	return des[rng.Intn(n)]
}
