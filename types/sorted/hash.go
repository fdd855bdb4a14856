package sorted

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/zeebo/xxh3"
	"gopkg.in/typ.v4"
)

// Equal reports whether both lists have the same length and pairwise equal values
// under the policy of list l. Lists with different null placement or direction are
// never equal. Both lists are expected to share comparator and hasher, otherwise
// Equal may be asymmetric and equal lists may hash differently.
func (l *List[T]) Equal(other *List[T]) bool {
	if l == other {
		return true
	}
	if other == nil || l.chain.Len() != other.chain.Len() {
		return false
	}
	if l.policy.Placement() != other.policy.Placement() || l.policy.Reversed() != other.policy.Reversed() {
		return false
	}
	a, b := l.chain.Cursor(), other.chain.Cursor()
	for a.HasNext() {
		if !l.policy.Equal(a.PeekValue(), b.PeekValue()) {
			return false
		}
		a.Advance()
		b.Advance()
	}
	return true
}

// Hash returns order sensitive hash of the list values.
// Lists which are Equal produce the same hash.
func (l *List[T]) Hash() uint64 {
	h := uint64(1)
	for c := l.chain.Cursor(); c.HasNext(); c.Advance() {
		h = hashMultiplier*h + l.policy.Hash(c.PeekValue())
	}
	return h
}

// hashOrdered hashes any ordered value (including named types) with xxh3.
func hashOrdered[T typ.Ordered](v T) uint64 {
	rv := reflect.ValueOf(v)
	var buf [8]byte
	switch rv.Kind() {
	case reflect.String:
		return xxh3.HashString(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		binary.LittleEndian.PutUint64(buf[:], uint64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		binary.LittleEndian.PutUint64(buf[:], rv.Uint())
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		switch {
		case f != f:
			// Every NaN compares equal
			f = math.NaN()
		case f == 0:
			// -0 and +0 compare equal
			f = 0
		}
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
	}
	return xxh3.Hash(buf[:])
}
