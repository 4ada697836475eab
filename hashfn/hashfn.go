// Package hashfn supplies the default hash primitive the core
// dictionary treats as an external collaborator: a 128-bit-seeded
// keyed hash over byte strings, reduced to a 64-bit digest. The core
// never calls into this package directly — callers wire it into a
// dict.Policy's Hash field, the way dict.c's callers bind
// dictGenHashFunction into a dictType.
//
// No keyed-hash third-party package (SipHash, xxHash, murmur3) appears
// anywhere in this project's reference corpus; every example reaching
// for a fast seeded table hash uses the standard library's
// hash/maphash, so this package follows that precedent rather than
// vendoring an unobserved dependency.
package hashfn

import (
	"hash/maphash"
	"strings"
	"sync"
)

var (
	seedMu sync.Mutex
	seed   [16]byte
	mhSeed = maphash.MakeSeed()
)

// SetSeed installs a new process-wide 128-bit hash seed, mirroring
// dictSetHashFunctionSeed. Changing the seed while any dictionary is
// in concurrent use is the caller's problem to avoid, exactly like
// dict.c's own seed API.
func SetSeed(s [16]byte) {
	seedMu.Lock()
	defer seedMu.Unlock()
	seed = s
}

// GetSeed returns the current 128-bit hash seed.
func GetSeed() [16]byte {
	seedMu.Lock()
	defer seedMu.Unlock()
	return seed
}

// Sum64 hashes b under the current process-wide seed.
func Sum64(b []byte) uint64 {
	seedMu.Lock()
	s := mhSeed
	saltedSeed := seed
	seedMu.Unlock()

	var h maphash.Hash
	h.SetSeed(s)
	h.Write(saltedSeed[:])
	h.Write(b)
	return h.Sum64()
}

// CaseInsensitiveSum64 hashes b as if every byte were lower-cased
// first, without allocating a lower-cased copy for the common
// all-ASCII-lowercase case.
func CaseInsensitiveSum64(b []byte) uint64 {
	needsFold := false
	for _, c := range b {
		if c >= 'A' && c <= 'Z' {
			needsFold = true
			break
		}
	}
	if !needsFold {
		return Sum64(b)
	}
	lowered := make([]byte, len(b))
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		lowered[i] = c
	}
	return Sum64(lowered)
}

// StringHash hashes a string's bytes via Sum64.
func StringHash(s string) uint64 {
	return Sum64([]byte(s))
}

// StringPolicy returns a ready-made dict.Policy-shaped set of
// callbacks for string keys: hashing via Sum64, key duplication via
// strings.Clone, and byte-wise equality. When dupValue is true the
// value is also duplicated via strings.Clone (for string-typed
// values); otherwise the raw value is stored, matching dict.h's
// dictTypeHeapStringCopyKey vs. dictTypeHeapStringCopyKeyValue split.
//
// The return type is an opaque function bundle (hash, keyDup, valueDup,
// keyEqual) rather than *dict.Policy to avoid an import cycle between
// hashfn and dict; callers assign the fields directly.
func StringPolicy(dupValue bool) (hash func(any) uint64, keyDup func(any, any) any, valueDup func(any, any) any, keyEqual func(any, any, any) bool) {
	hash = func(key any) uint64 {
		return StringHash(key.(string))
	}
	keyDup = func(_ any, key any) any {
		return strings.Clone(key.(string))
	}
	keyEqual = func(_ any, a, b any) bool {
		return a.(string) == b.(string)
	}
	if dupValue {
		valueDup = func(_ any, v any) any {
			return strings.Clone(v.(string))
		}
	}
	return hash, keyDup, valueDup, keyEqual
}

// Int64Policy returns hash/equal callbacks for int64 keys stored by
// value (no duplication needed for a scalar), mirroring a numeric
// dictType preset.
func Int64Policy() (hash func(any) uint64, keyEqual func(any, any, any) bool) {
	hash = func(key any) uint64 {
		v := key.(int64)
		var buf [8]byte
		for i := 0; i < 8; i++ {
			buf[i] = byte(v >> (8 * i))
		}
		return Sum64(buf[:])
	}
	keyEqual = func(_ any, a, b any) bool {
		return a.(int64) == b.(int64)
	}
	return hash, keyEqual
}
