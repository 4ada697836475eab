package main

import (
	"github.com/rucdlc/dictengine/dict"
	"github.com/rucdlc/dictengine/hashfn"
)

// newStringDict builds a dictionary keyed by string, values stored as
// opaque strings (not duplicated — the CLI's own strings already
// outlive the entries they're attached to).
func newStringDict() *dict.Dict {
	hash, keyDup, _, keyEqual := hashfn.StringPolicy(false)
	return dict.New(&dict.Policy{
		Hash:     hash,
		KeyDup:   keyDup,
		KeyEqual: keyEqual,
	})
}
