// Package dict implements a general-purpose in-memory associative
// container: a chained hash table with incremental rehashing, a
// stateless reverse-binary cursor scan, and random sampling. Hashing,
// key/value duplication and equality are supplied by the caller
// through a Policy; the core never inspects the byte layout of a key
// or value.
//
// The core is single-threaded. Callers needing concurrent access must
// provide their own external synchronization.
package dict

import "errors"

// Sentinel errors returned by the might-fail mutation and resize
// operations. Failure here means "refused due to an invariant", never
// a memory or allocation error — those are fatal at a lower layer and
// not reported through this API.
var (
	// ErrBusy is returned when an operation is refused because a
	// rehash is already in progress (or, for Rehash and
	// RehashMilliseconds, because an iterator is active).
	ErrBusy = errors.New("dict: busy rehashing")
	// ErrInvariant is returned when a request would violate an
	// invariant: expanding to a capacity smaller than used, or to the
	// same capacity as the current primary.
	ErrInvariant = errors.New("dict: invariant violation")
	// ErrNotFound reports that a lookup or delete target is absent.
	// Not exceptional; a distinct, expected result.
	ErrNotFound = errors.New("dict: key not found")
	// ErrExists is returned by AddRaw/Add when the key is already present.
	ErrExists = errors.New("dict: key already exists")
)

// forceResizeRatio is the load factor above which growth proceeds even
// when resizing has been disabled.
const forceResizeRatio = 5

// initialCapacity is the size of the primary subtable's first
// allocation.
const initialCapacity = 4

// resizeEnabled is a process-wide flag mirroring dict_can_resize; it is
// not synchronized and is expected to be set only at startup or at
// quiescence, per spec.
var resizeEnabled = true

// EnableResize allows the growth policy to expand tables eagerly at
// load factor 1.
func EnableResize() { resizeEnabled = true }

// DisableResize suppresses eager growth; tables still grow once used
// exceeds forceResizeRatio times capacity.
func DisableResize() { resizeEnabled = false }

// Dict owns two subtables (primary and secondary), a policy, a rehash
// progress index (-1 when idle), and a count of currently active
// iterators.
type Dict struct {
	primary   subtable
	secondary subtable

	policy *Policy

	// rehashIndex is the next primary bucket awaiting migration, or -1
	// when no rehash is in progress.
	rehashIndex int64

	// iteratorsActive counts safe iterators currently alive over this
	// dictionary, plus one while a Scan call runs; unsafe iterators
	// are not counted. While non-zero, no incremental rehash step may
	// run.
	iteratorsActive int
}

// New creates an empty dictionary bound to the given policy. Both
// subtables start uninitialized (capacity 0); the primary is allocated
// on first insertion.
func New(policy *Policy) *Dict {
	if policy == nil || policy.Hash == nil {
		panic("dict: policy with a Hash function is required")
	}
	return &Dict{
		policy:      policy,
		rehashIndex: -1,
	}
}

// Release destroys both subtables (running key/value destructors on
// every live entry) and detaches the policy.
func (d *Dict) Release() {
	d.primary.clear(d.policy, nil)
	d.secondary.clear(d.policy, nil)
	d.rehashIndex = -1
	d.policy = nil
}

// Len returns the total number of live entries across both subtables.
func (d *Dict) Len() int {
	return int(d.primary.used + d.secondary.used)
}

// Slots returns the total bucket count across both subtables.
func (d *Dict) Slots() int {
	return int(d.primary.capacity + d.secondary.capacity)
}

// IsRehashing reports whether an incremental rehash is in progress.
func (d *Dict) IsRehashing() bool {
	return d.rehashIndex != -1
}
