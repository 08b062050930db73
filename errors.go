package dhash

import "github.com/cockroachdb/errors"

var (
	// ErrTableFull is returned by Insert when no empty or deleted slot is
	// reachable within capacity probe attempts.
	ErrTableFull = errors.New("dhash: table full")

	// ErrEmptyKey is returned by Insert for a zero-length key.
	ErrEmptyKey = errors.New("dhash: key should not be empty")

	// ErrDestroyed is returned by Insert after Destroy has been called.
	ErrDestroyed = errors.New("dhash: table destroyed")

	ErrInvalidCapacity   = errors.New("dhash: capacity must be positive")
	ErrInvalidLoadFactor = errors.New("dhash: max load factor must be in (0, 1)")
	ErrNilHasher         = errors.New("dhash: hasher must not be nil")
	ErrUnknownHasher     = errors.New("dhash: unknown hasher")
)
