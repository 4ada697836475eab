package dict

// Policy is the capability bundle a caller binds to a Dict at creation
// time: hash, equality, duplication and destruction for keys and
// values. Every field but Hash is optional; a nil KeyDup/ValueDup
// stores the raw key/value, a nil KeyEqual falls back to identity
// comparison (==), and nil destructors are treated as no-ops. This is
// the Go-native reading of dict.h's dictType vtable: a record of
// optional function values rather than an inheritance hierarchy.
type Policy struct {
	// Hash must be pure and deterministic for a given process-wide seed.
	Hash func(key any) uint64

	KeyDup   func(privdata, key any) any
	ValueDup func(privdata, v any) any

	KeyEqual func(privdata, a, b any) bool

	KeyDestroy   func(privdata, key any)
	ValueDestroy func(privdata, v any)

	// PrivData is passed as the first argument to every callback above.
	PrivData any
}

func (p *Policy) hash(key any) uint64 {
	return p.Hash(key)
}

func (p *Policy) equal(a, b any) bool {
	if p.KeyEqual != nil {
		return p.KeyEqual(p.PrivData, a, b)
	}
	return a == b
}
