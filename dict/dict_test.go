package dict

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func stringPolicy() *Policy {
	return &Policy{
		Hash: func(key any) uint64 {
			s := key.(string)
			var h uint64 = 1469598103934665603
			for i := 0; i < len(s); i++ {
				h ^= uint64(s[i])
				h *= 1099511628211
			}
			return h
		},
		KeyEqual: func(_ any, a, b any) bool {
			return a.(string) == b.(string)
		},
	}
}

func intPolicy() *Policy {
	return &Policy{
		Hash: func(key any) uint64 {
			return uint64(key.(int)) * 2654435761
		},
		KeyEqual: func(_ any, a, b any) bool {
			return a.(int) == b.(int)
		},
	}
}

// scenario 1: empty dict.
func TestEmptyDictLookupMiss(t *testing.T) {
	d := New(stringPolicy())
	require.Nil(t, d.Find("x"))
	require.Equal(t, 0, d.Len())
}

// scenario 2: duplicate add is refused, first value survives.
func TestAddDuplicateRefused(t *testing.T) {
	d := New(stringPolicy())
	require.NoError(t, d.Add("a", 1))
	require.NoError(t, d.Add("b", 2))
	require.ErrorIs(t, d.Add("a", 3), ErrExists)

	v, ok := d.FetchValue("a")
	require.True(t, ok)
	require.Equal(t, 1, v)
}

// scenario 3: replace overwrites and destroys the old value in the
// documented order (new set before old destroyed).
func TestReplaceOverwritesAndDestroysOldValue(t *testing.T) {
	var destroyed []any
	p := stringPolicy()
	p.ValueDestroy = func(_ any, v any) {
		destroyed = append(destroyed, v)
	}

	d := New(p)
	require.NoError(t, d.Add("a", 1))

	inserted, err := d.Replace("a", 99)
	require.NoError(t, err)
	require.False(t, inserted)

	v, ok := d.FetchValue("a")
	require.True(t, ok)
	require.Equal(t, 99, v)
	require.Equal(t, []any{1}, destroyed)
}

// replace on a new key inserts and reports inserted=true.
func TestReplaceInsertsNewKey(t *testing.T) {
	d := New(stringPolicy())
	inserted, err := d.Replace("a", 1)
	require.NoError(t, err)
	require.True(t, inserted)
	v, ok := d.FetchValue("a")
	require.True(t, ok)
	require.Equal(t, 1, v)
}

// replace is idempotent in value.
func TestReplaceIdempotent(t *testing.T) {
	d := New(stringPolicy())
	_, err := d.Replace("k", "v")
	require.NoError(t, err)
	_, err = d.Replace("k", "v")
	require.NoError(t, err)
	require.Equal(t, 1, d.Len())
	v, _ := d.FetchValue("k")
	require.Equal(t, "v", v)
}

// scenario 4: the 4th insertion fills a fresh dict (used==capacity==4);
// the growth check before the 5th insertion then starts a rehash into
// an 8-slot secondary.
func TestGrowthTriggeredAtCapacity(t *testing.T) {
	d := New(intPolicy())
	for i := 0; i < 4; i++ {
		require.NoError(t, d.Add(i, i))
	}
	require.Equal(t, uint64(4), d.primary.capacity)
	require.False(t, d.IsRehashing())

	require.NoError(t, d.Add(4, 4))
	require.True(t, d.IsRehashing())
	require.Equal(t, uint64(8), d.secondary.capacity)
	require.Equal(t, 5, d.Len())
}

// add then find then delete then find.
func TestAddFindDeleteRoundTrip(t *testing.T) {
	d := New(stringPolicy())
	require.NoError(t, d.Add("k", "v"))

	e := d.Find("k")
	require.NotNil(t, e)
	require.Equal(t, "v", e.Ptr())

	require.NoError(t, d.Delete("k"))
	require.Nil(t, d.Find("k"))
	require.ErrorIs(t, d.Delete("k"), ErrNotFound)
}

func TestUnlinkDoesNotRunDestructorsUntilFreed(t *testing.T) {
	var destroyedKey, destroyedVal bool
	p := stringPolicy()
	p.KeyDestroy = func(_ any, _ any) { destroyedKey = true }
	p.ValueDestroy = func(_ any, _ any) { destroyedVal = true }

	d := New(p)
	require.NoError(t, d.Add("k", "v"))

	e := d.Unlink("k")
	require.NotNil(t, e)
	require.False(t, destroyedKey)
	require.False(t, destroyedVal)
	require.Nil(t, d.Find("k"))

	d.FreeUnlinkedEntry(e)
	require.True(t, destroyedKey)
	require.True(t, destroyedVal)
}

func TestAddOrFindReturnsExistingWithoutOverwrite(t *testing.T) {
	d := New(stringPolicy())
	e1 := d.AddOrFind("k")
	e1.SetPtr("first")

	e2 := d.AddOrFind("k")
	require.Same(t, e1, e2)
	require.Equal(t, "first", e2.Ptr())
	require.Equal(t, 1, d.Len())
}

func TestEmptyResetsToFreshState(t *testing.T) {
	d := New(intPolicy())
	for i := 0; i < 20; i++ {
		require.NoError(t, d.Add(i, i))
	}
	require.Greater(t, d.Len(), 0)

	d.Empty(nil)
	require.Equal(t, 0, d.Len())
	require.False(t, d.IsRehashing())
	require.Nil(t, d.Find(0))
}

func TestGetHashMatchesPolicy(t *testing.T) {
	p := intPolicy()
	d := New(p)
	require.Equal(t, p.Hash(42), d.GetHash(42))
}

func TestFindEntryRefByIdentityAndHash(t *testing.T) {
	d := New(stringPolicy())
	require.NoError(t, d.Add("k", "v"))
	e := d.Find("k")
	require.NotNil(t, e)

	hash := d.GetHash("k")
	ref := d.FindEntryRefByIdentityAndHash(e.Key(), hash)
	require.NotNil(t, ref)
	require.Same(t, e, *ref)

	require.Nil(t, d.FindEntryRefByIdentityAndHash("not-a-key", hash))
}

// invariant 6: capacities are always zero or a power of two.
func TestCapacitiesArePowersOfTwo(t *testing.T) {
	d := New(intPolicy())
	for i := 0; i < 2000; i++ {
		require.NoError(t, d.Add(i, i))
		for d.IsRehashing() {
			_, err := d.Rehash(1)
			require.NoError(t, err)
		}
		require.True(t, isPowerOfTwoOrZero(d.primary.capacity))
		require.True(t, isPowerOfTwoOrZero(d.secondary.capacity))
	}
}

func isPowerOfTwoOrZero(n uint64) bool {
	return n == 0 || n&(n-1) == 0
}

func TestDisableResizeDefersGrowthUntilForceRatio(t *testing.T) {
	DisableResize()
	defer EnableResize()

	d := New(intPolicy())
	require.NoError(t, d.Expand(4))
	for i := 0; i < 4; i++ {
		require.NoError(t, d.Add(i, i))
	}
	// used == capacity == 4, but resize is disabled and load factor
	// (1) does not exceed forceResizeRatio (5), so no rehash starts.
	require.False(t, d.IsRehashing())

	for i := 4; i < 100; i++ {
		require.NoError(t, d.Add(i, i))
	}
	// load factor now well past forceResizeRatio: growth is forced
	// even with resizing disabled.
	require.True(t, d.IsRehashing())
}

func TestExpandRejectsSameCapacityAndShrinkBelowUsed(t *testing.T) {
	d := New(intPolicy())
	require.NoError(t, d.Expand(16))
	require.ErrorIs(t, d.Expand(16), ErrInvariant)

	for i := 0; i < 10; i++ {
		require.NoError(t, d.Add(i, i))
	}
	require.ErrorIs(t, d.Expand(4), ErrInvariant)
}

func TestExpandRefusedWhileRehashing(t *testing.T) {
	d := New(intPolicy())
	require.NoError(t, d.Expand(4))
	require.NoError(t, d.Expand(8))
	require.True(t, d.IsRehashing())
	require.ErrorIs(t, d.Expand(16), ErrBusy)
}

func TestRehashMillisecondsDrainsToCompletion(t *testing.T) {
	d := New(intPolicy())
	for i := 0; i < 10000; i++ {
		require.NoError(t, d.Add(i, i))
	}
	for d.IsRehashing() {
		steps, err := d.RehashMilliseconds(50)
		require.NoError(t, err)
		require.Greater(t, steps, 0)
	}
	require.Equal(t, 10000, d.Len())
	for i := 0; i < 10000; i++ {
		v, ok := d.FetchValue(i)
		require.True(t, ok)
		require.Equal(t, i, v)
	}
}
