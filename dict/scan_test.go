package dict

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReverseBinaryIncrementCyclesThroughAllIndices(t *testing.T) {
	mask := uint64(7) // capacity 8
	seen := make(map[uint64]bool)
	cursor := uint64(0)
	for {
		seen[cursor] = true
		cursor = reverseBinaryIncrement(cursor, mask)
		if cursor == 0 {
			break
		}
	}
	require.Len(t, seen, 8)
}

// scenario 5: scanning to completion visits every live key at least
// once, growth notwithstanding.
func TestScanToCompletionVisitsEveryKey(t *testing.T) {
	d := New(intPolicy())
	const n = 1000
	for i := 0; i < n; i++ {
		require.NoError(t, d.Add(i, i))
	}

	seen := make(map[int]bool)
	cursor := uint64(0)
	for {
		cursor = d.Scan(cursor, nil, func(e *Entry) {
			seen[e.Key().(int)] = true
		})
		if cursor == 0 {
			break
		}
	}
	require.Equal(t, n, len(seen))
}

func TestScanDuringRehashVisitsEveryKey(t *testing.T) {
	d := New(intPolicy())
	const n = 2000
	for i := 0; i < n; i++ {
		require.NoError(t, d.Add(i, i))
	}
	require.True(t, d.IsRehashing())

	seen := make(map[int]bool)
	cursor := uint64(0)
	rounds := 0
	for {
		cursor = d.Scan(cursor, nil, func(e *Entry) {
			seen[e.Key().(int)] = true
		})
		rounds++
		if cursor == 0 || rounds > 100000 {
			break
		}
	}
	require.Equal(t, n, len(seen))
}

func TestScanEmptyDictReturnsZeroImmediately(t *testing.T) {
	d := New(intPolicy())
	require.Equal(t, uint64(0), d.Scan(0, nil, nil))
}

func TestScanBucketCallbackReceivesFullChain(t *testing.T) {
	d := New(intPolicy())
	// force several keys into bucket 0 of a capacity-4 table by hashing
	// to a multiple of 4.
	require.NoError(t, d.Expand(4))
	for _, k := range []int{0, 4, 8} {
		require.NoError(t, d.Add(k, k))
	}

	var chainLen int
	d.Scan(0, func(chain []*Entry) {
		if len(chain) > chainLen {
			chainLen = len(chain)
		}
	}, nil)
	require.Equal(t, 3, chainLen)
}
