package dict

// valueKind discriminates the tagged value slot every entry carries.
// The core never inspects a value's contents, only its kind tag; which
// accessor is correct to call is the caller's responsibility.
type valueKind uint8

const (
	kindPtr valueKind = iota
	kindUint64
	kindInt64
	kindFloat64
)

// value is the tagged union { ptr | u64 | i64 | f64 } from dict.h's
// dictEntry.v. Only one field is meaningful at a time, selected by kind.
type value struct {
	kind valueKind
	ptr  any
	u64  uint64
	i64  int64
	f64  float64
}

// Entry is a single key/value slot. Entries are individually allocated
// and owned exclusively by whichever subtable's bucket chain holds
// them; an entry's address is stable from insertion to deletion even
// as it migrates between subtables during rehashing.
type Entry struct {
	key  any
	v    value
	next *Entry
}

// Key returns the entry's key handle.
func (e *Entry) Key() any { return e.key }

// Ptr returns the value slot as a pointer/opaque value.
func (e *Entry) Ptr() any {
	if e.v.kind != kindPtr {
		panic("dict: entry value is not a pointer value")
	}
	return e.v.ptr
}

// SetPtr stores a pointer/opaque value directly, bypassing value_dup.
func (e *Entry) SetPtr(p any) {
	e.v = value{kind: kindPtr, ptr: p}
}

// Uint64 returns the value slot as an unsigned 64-bit integer.
func (e *Entry) Uint64() uint64 {
	if e.v.kind != kindUint64 {
		panic("dict: entry value is not a uint64 value")
	}
	return e.v.u64
}

// SetUint64 stores an unsigned 64-bit integer value.
func (e *Entry) SetUint64(u uint64) {
	e.v = value{kind: kindUint64, u64: u}
}

// Int64 returns the value slot as a signed 64-bit integer.
func (e *Entry) Int64() int64 {
	if e.v.kind != kindInt64 {
		panic("dict: entry value is not an int64 value")
	}
	return e.v.i64
}

// SetInt64 stores a signed 64-bit integer value.
func (e *Entry) SetInt64(i int64) {
	e.v = value{kind: kindInt64, i64: i}
}

// Float64 returns the value slot as a double.
func (e *Entry) Float64() float64 {
	if e.v.kind != kindFloat64 {
		panic("dict: entry value is not a float64 value")
	}
	return e.v.f64
}

// SetFloat64 stores a double value.
func (e *Entry) SetFloat64(f float64) {
	e.v = value{kind: kindFloat64, f64: f}
}

// setValueGeneric stores v through the policy's value_dup callback if
// one is set, otherwise assigns the raw value directly. Used by Add
// and Replace, matching dictSetVal's dup-or-assign macro.
func setValueGeneric(p *Policy, e *Entry, v any) {
	if p != nil && p.ValueDup != nil {
		e.SetPtr(p.ValueDup(p.PrivData, v))
		return
	}
	e.SetPtr(v)
}

// destroyValue runs the policy's value_destroy callback on e, if any.
func destroyValue(p *Policy, e *Entry) {
	if p != nil && p.ValueDestroy != nil && e.v.kind == kindPtr {
		p.ValueDestroy(p.PrivData, e.v.ptr)
	}
}

// destroyKey runs the policy's key_destroy callback on e, if any.
func destroyKey(p *Policy, e *Entry) {
	if p != nil && p.KeyDestroy != nil {
		p.KeyDestroy(p.PrivData, e.key)
	}
}

// setKeyGeneric stores key through the policy's key_dup callback if
// one is set, otherwise stores the raw key.
func setKeyGeneric(p *Policy, e *Entry, key any) {
	if p != nil && p.KeyDup != nil {
		e.key = p.KeyDup(p.PrivData, key)
		return
	}
	e.key = key
}
