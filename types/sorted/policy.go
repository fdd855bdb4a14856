package sorted

import (
	"gopkg.in/typ.v4"
)

// Policy is a total order over Value: present values are ordered by the comparator
// (optionally reversed), null values are equal to each other and placed according to
// the configured NullPlacement regardless of reversal.
type Policy[T any] struct {
	compare func(a, b T) int
	hash    func(v T) uint64
	config  Config
}

// NewPolicy creates ordering policy using a comparator function that is
// expected to return 0 if a == b, negative if a < b, and positive if a > b.
func NewPolicy[T any](compare func(a, b T) int, config Config) Policy[T] {
	if compare == nil {
		panic("sorted: nil compare function")
	}
	return Policy[T]{
		compare: compare,
		config:  config,
	}
}

// NewOrderedPolicy creates ordering policy using a default comparator function
// and hasher for any ordered type (ints, uints, floats, strings).
// NaN floats are equal to each other and less than any other number.
func NewOrderedPolicy[T typ.Ordered](config Config) Policy[T] {
	p := NewPolicy[T](compareOrdered[T], config)
	p.hash = hashOrdered[T]
	return p
}

// WithHasher returns copy of the policy using given element hasher.
// Values equal by the comparator must produce equal hashes.
func (p Policy[T]) WithHasher(hash func(v T) uint64) Policy[T] {
	p.hash = hash
	return p
}

// Config returns the config the policy was derived from.
func (p Policy[T]) Config() Config {
	return p.config
}

// Placement returns configured null placement.
func (p Policy[T]) Placement() NullPlacement {
	return p.config.NullPlacement
}

// Reversed reports whether present values are kept in descending order.
func (p Policy[T]) Reversed() bool {
	return p.config.Reversed
}

// Compare compares two values under the policy.
func (p Policy[T]) Compare(a, b Value[T]) int {
	switch {
	case !a.ok && !b.ok:
		return 0
	case !a.ok:
		if p.config.NullPlacement == NullsLeading {
			return -1
		}
		return 1
	case !b.ok:
		if p.config.NullPlacement == NullsLeading {
			return 1
		}
		return -1
	}
	if p.compare == nil {
		panic(ErrPolicyMissing)
	}
	if p.config.Reversed {
		return p.compare(b.v, a.v)
	}
	return p.compare(a.v, b.v)
}

// Equal reports whether two values are equal under the policy.
func (p Policy[T]) Equal(a, b Value[T]) bool {
	return p.Compare(a, b) == 0
}

// Hash returns hash of the value consistent with Equal.
// Null hashes to zero, present values hash to one when no hasher is configured.
func (p Policy[T]) Hash(v Value[T]) uint64 {
	if !v.ok {
		return 0
	}
	if p.hash == nil {
		return 1
	}
	return p.hash(v.v)
}

// compareOrdered is typ.Compare made total for floats: NaN is only equal to NaN
// and sorts before every other value.
func compareOrdered[T typ.Ordered](a, b T) int {
	aNaN, bNaN := a != a, b != b
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	}
	return typ.Compare(a, b)
}
