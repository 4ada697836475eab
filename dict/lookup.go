package dict

// Find returns the entry for key, searching the primary and then (if
// rehashing) the secondary, or nil if absent.
func (d *Dict) Find(key any) *Entry {
	d.passiveRehashStep()
	if d.primary.capacity == 0 && d.secondary.capacity == 0 {
		return nil
	}
	hash := d.policy.hash(key)
	if e := chainFind(d.primary.buckets[d.primary.index(hash)], d.policy, key); e != nil {
		return e
	}
	if d.IsRehashing() {
		if e := chainFind(d.secondary.buckets[d.secondary.index(hash)], d.policy, key); e != nil {
			return e
		}
	}
	return nil
}

// FetchValue is a convenience wrapping Find that returns the value
// slot's pointer field and whether key was present. Unlike Ptr it does
// not check the value's kind: a value stored through a non-pointer
// setter comes back as nil.
func (d *Dict) FetchValue(key any) (any, bool) {
	e := d.Find(key)
	if e == nil {
		return nil, false
	}
	return e.v.ptr, true
}

// GetHash returns the hash of key under the dictionary's policy.
func (d *Dict) GetHash(key any) uint64 {
	return d.policy.hash(key)
}

// FindEntryRefByIdentityAndHash locates the chain link holding the
// entry whose key is identical (==) to oldKeyPtr, given its
// precomputed hash, without invoking the policy's hash function again.
// It returns a pointer to the *Entry field that references the found
// entry (the previous entry's next field, or the bucket head), so the
// caller can splice the entry out in O(1). Returns nil if not found.
func (d *Dict) FindEntryRefByIdentityAndHash(oldKeyPtr any, hash uint64) **Entry {
	tables := 1
	if d.IsRehashing() {
		tables = 2
	}
	subtables := [2]*subtable{&d.primary, &d.secondary}
	for t := 0; t < tables; t++ {
		s := subtables[t]
		if s.capacity == 0 {
			continue
		}
		idx := s.index(hash)
		ref := &s.buckets[idx]
		for *ref != nil {
			if (*ref).key == oldKeyPtr {
				return ref
			}
			ref = &(*ref).next
		}
	}
	return nil
}
