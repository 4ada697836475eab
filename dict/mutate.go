package dict

// activeInsertionSubtable returns the subtable new entries are
// prepended into: the secondary while rehashing, otherwise the
// primary.
func (d *Dict) activeInsertionSubtable() *subtable {
	if d.IsRehashing() {
		return &d.secondary
	}
	return &d.primary
}

// findIndexOrExisting triggers growth, then searches for key. It
// searches both subtables while rehashing, only the primary otherwise.
// If key is already present, it returns the existing entry and ok=false
// meaning "do not insert". Otherwise it returns the bucket index in
// the active insertion subtable where a new entry should be prepended,
// and ok=true.
func (d *Dict) findIndexOrExisting(key any) (idx uint64, existing *Entry, ok bool, err error) {
	if err = d.expandIfNeeded(); err != nil {
		return 0, nil, false, err
	}
	hash := d.policy.hash(key)

	if e := chainFind(d.primary.buckets[d.primary.index(hash)], d.policy, key); e != nil {
		return 0, e, false, nil
	}
	if d.IsRehashing() {
		if e := chainFind(d.secondary.buckets[d.secondary.index(hash)], d.policy, key); e != nil {
			return 0, e, false, nil
		}
	}
	return d.activeInsertionSubtable().index(hash), nil, true, nil
}

// chainFind walks a bucket chain looking for key via the policy's
// equality callback (identity if unset).
func chainFind(head *Entry, p *Policy, key any) *Entry {
	for e := head; e != nil; e = e.next {
		if p.equal(e.key, key) {
			return e
		}
	}
	return nil
}

// AddRaw reserves a slot for key without setting its value. If key
// already exists, it returns the existing entry unchanged and
// ErrExists; the value slot is left uninitialized on the returned new
// entry otherwise. New entries are prepended — newest at the head —
// matching dict.c's recency-of-access locality bet.
func (d *Dict) AddRaw(key any) (e *Entry, existing *Entry, err error) {
	d.passiveRehashStep()
	idx, existing, ok, err := d.findIndexOrExisting(key)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return nil, existing, ErrExists
	}
	s := d.activeInsertionSubtable()
	e = &Entry{}
	setKeyGeneric(d.policy, e, key)
	e.next = s.buckets[idx]
	s.buckets[idx] = e
	s.used++
	return e, nil, nil
}

// Add inserts key/value. Returns ErrExists if key is already present.
func (d *Dict) Add(key, val any) error {
	e, _, err := d.AddRaw(key)
	if err != nil {
		return err
	}
	setValueGeneric(d.policy, e, val)
	return nil
}

// AddOrFind returns the entry for key, inserting a fresh one (with an
// uninitialized value slot) if it did not already exist.
func (d *Dict) AddOrFind(key any) *Entry {
	e, existing, err := d.AddRaw(key)
	if err == ErrExists {
		return existing
	}
	return e
}

// Replace inserts key/val if key is new (returning inserted=true), or
// overwrites the existing entry's value (returning inserted=false).
// On overwrite the order is load-bearing: the new value is duplicated
// and installed first, and only then is the old value destroyed, so
// that reference-counted values that happen to alias the new and old
// value survive the swap.
func (d *Dict) Replace(key, val any) (inserted bool, err error) {
	e, existing, err := d.AddRaw(key)
	if err != nil && err != ErrExists {
		return false, err
	}
	if err == nil {
		setValueGeneric(d.policy, e, val)
		return true, nil
	}
	old := existing.v
	setValueGeneric(d.policy, existing, val)
	destroyValueRaw(d.policy, old)
	return false, nil
}

// destroyValueRaw runs value_destroy over a previously-captured value
// snapshot, used by Replace to destroy the old value after the new one
// has already been installed on the live entry.
func destroyValueRaw(p *Policy, v value) {
	if p != nil && p.ValueDestroy != nil && v.kind == kindPtr {
		p.ValueDestroy(p.PrivData, v.ptr)
	}
}
