package sorted

import (
	"errors"
)

// Errors used by the package.
var (
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrIteratorExhausted = errors.New("iterator is exhausted")
	ErrInvalidConfig     = errors.New("invalid sorted list config")
	ErrInvalidPlacement  = errors.New("invalid null placement")
	ErrPolicyMissing     = errors.New("sorted list has no ordering policy, create it with New")
)
