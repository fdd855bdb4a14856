package sorted

// Value is an element slot of the sorted list: either a present value or null.
// The zero Value is null.
type Value[T any] struct {
	v  T
	ok bool
}

// Some returns present Value holding v.
func Some[T any](v T) Value[T] {
	return Value[T]{v: v, ok: true}
}

// Null returns Value holding no value.
func Null[T any]() Value[T] {
	return Value[T]{}
}

// IsNull reports whether the value is absent.
func (v Value[T]) IsNull() bool {
	return !v.ok
}

// Get returns the held value and true, or zero value and false for null.
func (v Value[T]) Get() (T, bool) {
	return v.v, v.ok
}

// MustGet returns the held value and panics for null.
func (v Value[T]) MustGet() T {
	if !v.ok {
		panic("sorted: MustGet called on null value")
	}
	return v.v
}

// Or returns the held value or def for null.
func (v Value[T]) Or(def T) T {
	if !v.ok {
		return def
	}
	return v.v
}

// Values wraps every element of vs into present Value.
func Values[T any](vs ...T) []Value[T] {
	result := make([]Value[T], len(vs))
	for i, v := range vs {
		result[i] = Some(v)
	}
	return result
}
