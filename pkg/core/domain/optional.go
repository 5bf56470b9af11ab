package domain

// Optional marks whether a patch field was supplied at all.
// A supplied field may still hold the zero value (or nil for pointer types).
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some returns a set Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}
