package dict

// genericDelete walks both subtables (or just the primary when not
// rehashing), locates key by chain walk with the policy's equality
// callback, splices it out of its chain, and returns it. used is
// decremented on the subtable the entry was removed from. Returns nil
// if key is absent.
func (d *Dict) genericDelete(key any) *Entry {
	if d.primary.capacity == 0 && d.secondary.capacity == 0 {
		return nil
	}
	hash := d.policy.hash(key)
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
		var prev *Entry
		for e := s.buckets[idx]; e != nil; e = e.next {
			if d.policy.equal(e.key, key) {
				if prev != nil {
					prev.next = e.next
				} else {
					s.buckets[idx] = e.next
				}
				s.used--
				e.next = nil
				return e
			}
			prev = e
		}
	}
	return nil
}

// Delete removes key, running its key/value destructors and freeing
// the entry. Returns ErrNotFound if key is absent.
func (d *Dict) Delete(key any) error {
	d.passiveRehashStep()
	e := d.genericDelete(key)
	if e == nil {
		return ErrNotFound
	}
	destroyKey(d.policy, e)
	destroyValue(d.policy, e)
	return nil
}

// Unlink removes key without running destructors or freeing the
// entry, returning it so the caller can inspect or transfer its value
// before eventually calling FreeUnlinkedEntry. Returns nil if key is
// absent.
func (d *Dict) Unlink(key any) *Entry {
	d.passiveRehashStep()
	return d.genericDelete(key)
}

// FreeUnlinkedEntry runs e's key/value destructors. e must have been
// returned by Unlink and not already freed.
func (d *Dict) FreeUnlinkedEntry(e *Entry) {
	if e == nil {
		return
	}
	destroyKey(d.policy, e)
	destroyValue(d.policy, e)
}

// Empty destroys every entry in both subtables and resets the
// dictionary to its just-created state. cb, if non-nil, is invoked
// once per 65,536 buckets visited as a coarse progress hook.
func (d *Dict) Empty(cb func()) {
	d.primary.clear(d.policy, cb)
	d.secondary.clear(d.policy, cb)
	d.rehashIndex = -1
}
