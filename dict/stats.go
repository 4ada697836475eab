package dict

import (
	"fmt"
	"strings"
)

const statsHistogramCap = 50

// subtableStats renders one subtable's diagnostic summary: capacity,
// live entries, non-empty buckets, max chain length, mean chain length
// (per live bucket and per live entry), and a chain-length-frequency
// histogram capped at statsHistogramCap.
func subtableStats(label string, s *subtable) string {
	var b strings.Builder
	if s.capacity == 0 {
		fmt.Fprintf(&b, "[%s] capacity=0 (uninitialized)\n", label)
		return b.String()
	}

	histogram := make([]uint64, statsHistogramCap+1)
	nonEmpty := uint64(0)
	maxChain := 0
	sumSquares := uint64(0)

	for _, head := range s.buckets {
		length := 0
		for e := head; e != nil; e = e.next {
			length++
		}
		if length > 0 {
			nonEmpty++
		}
		if length > maxChain {
			maxChain = length
		}
		sumSquares += uint64(length * length)
		bucket := length
		if bucket > statsHistogramCap {
			bucket = statsHistogramCap
		}
		histogram[bucket]++
	}

	var meanPerBucket, meanPerEntry float64
	if nonEmpty > 0 {
		meanPerBucket = float64(s.used) / float64(nonEmpty)
	}
	if s.used > 0 {
		// Mean chain length as experienced by a randomly chosen live
		// entry: each entry in a chain of length L contributes L, so
		// summing L over entries equals summing L^2 over buckets.
		meanPerEntry = float64(sumSquares) / float64(s.used)
	}

	fmt.Fprintf(&b, "[%s] capacity=%d used=%d non-empty-buckets=%d max-chain=%d mean-chain/bucket=%.2f mean-chain/entry=%.2f\n",
		label, s.capacity, s.used, nonEmpty, maxChain, meanPerBucket, meanPerEntry)
	for length, count := range histogram {
		if count == 0 {
			continue
		}
		suffix := ""
		if length == statsHistogramCap {
			suffix = "+"
		}
		fmt.Fprintf(&b, "  chains of length %d%s: %d buckets\n", length, suffix, count)
	}
	return b.String()
}

// Stats renders a text summary of both subtables, for diagnostics.
func (d *Dict) Stats() string {
	var b strings.Builder
	b.WriteString(subtableStats("primary", &d.primary))
	b.WriteString(subtableStats("secondary", &d.secondary))
	if d.IsRehashing() {
		fmt.Fprintf(&b, "rehashing: index=%d\n", d.rehashIndex)
	}
	return b.String()
}
