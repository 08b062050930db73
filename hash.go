package dhash

import "github.com/cespare/xxhash/v2"

// The reference multipliers. Both are larger than any byte value and distinct
// from each other so the two base hashes are independent.
const (
	Prime1 = 227
	Prime2 = 229
)

// BaseHash computes sum(prime^(len-i+1) * s[i]) mod capacity over the bytes of
// s, reducing after every term. The result is in [0, capacity).
func BaseHash(s string, prime, capacity int) int {
	if capacity <= 1 {
		return 0
	}
	m := uint64(capacity)
	p := uint64(prime) % m
	// The last byte is weighted by prime^2; each step left multiplies by prime.
	pow := p * p % m
	var hash uint64
	for i := len(s) - 1; i >= 0; i-- {
		hash = (hash + pow*uint64(s[i])%m) % m
		pow = pow * p % m
	}
	return int(hash)
}

// ProbeIndex returns the slot visited on the given attempt for key using the
// reference polynomial hash pair.
func ProbeIndex(key string, capacity, attempt int) int {
	return Probe(DefaultHasher, key, capacity, attempt)
}

// Probe combines the two base hashes produced by h into the double hashing
// sequence. The +1 keeps the step from being zero before the reduction.
func Probe(h Hasher, key string, capacity, attempt int) int {
	a, b := h.Hash(key, capacity)
	return combine(a, b, capacity, attempt)
}

func combine(a, b, capacity, attempt int) int {
	return int((uint64(a) + uint64(attempt)*uint64(b+1)) % uint64(capacity))
}

// Hasher produces the two independent base hashes used to build a probe
// sequence. Both values must be in [0, capacity) and depend only on key and
// capacity.
type Hasher interface {
	Hash(key string, capacity int) (a, b int)
}

// PolynomialHasher is the BaseHash pair parameterized by two primes.
type PolynomialHasher struct {
	Prime1 int
	Prime2 int
}

// DefaultHasher is the reference hash pair.
var DefaultHasher Hasher = PolynomialHasher{Prime1: Prime1, Prime2: Prime2}

func (h PolynomialHasher) Hash(key string, capacity int) (int, int) {
	return BaseHash(key, h.Prime1, capacity), BaseHash(key, h.Prime2, capacity)
}

// XXHasher derives both base hashes from one 64-bit xxhash digest, using the
// low and high halves. The second hash is kept below capacity-1 so the probe
// step is never a multiple of the capacity; with a prime capacity every probe
// sequence then visits all slots.
type XXHasher struct{}

func (XXHasher) Hash(key string, capacity int) (int, int) {
	if capacity <= 1 {
		return 0, 0
	}
	sum := xxhash.Sum64String(key)
	m := uint64(capacity)
	return int((sum & 0xffffffff) % m), int((sum >> 32) % (m - 1))
}
