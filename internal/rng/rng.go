// Package rng provides the deterministic random number generator that all
// dungeon generation flows through. Two generators built from the same seed
// produce identical draw sequences, which makes every generated dungeon
// reproducible from its seed alone.
package rng

import "strconv"

// LCG constants (Numerical Recipes). The modulus is 2^32, applied implicitly
// by uint32 wraparound.
const (
	lcgMultiplier = 1664525
	lcgIncrement  = 1013904223
)

// SeededRandom is a linear congruential generator over 32-bit state.
// It is not safe for concurrent use; each generation run owns its own
// instance.
type SeededRandom struct {
	state uint32
}

// New creates a generator from a numeric seed.
func New(seed uint32) *SeededRandom {
	return &SeededRandom{state: seed}
}

// NewFromString creates a generator from a string seed. Strings that parse
// as non-negative decimal integers are used as numeric seeds directly;
// anything else is hashed via HashSeed.
func NewFromString(seed string) *SeededRandom {
	return New(ParseSeed(seed))
}

// ParseSeed converts a seed string to its numeric form. Decimal integers
// pass through unchanged so "42" and the number 42 seed identically.
func ParseSeed(seed string) uint32 {
	if n, err := strconv.ParseUint(seed, 10, 32); err == nil {
		return uint32(n)
	}
	return HashSeed(seed)
}

// HashSeed hashes a string seed with a polynomial rolling hash
// (hash = hash*31 + code point, wrapping at 32 bits signed), then takes the
// absolute value. This matches how players' text seeds have always mapped
// to numeric seeds, so existing shared seeds keep producing the same maps.
func HashSeed(seed string) uint32 {
	var h int32
	for _, c := range seed {
		h = h*31 + int32(c)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return uint32(v)
}

// Next advances the generator and returns a float in [0, 1).
func (r *SeededRandom) Next() float64 {
	r.state = r.state*lcgMultiplier + lcgIncrement
	return float64(r.state) / 4294967296.0
}

// Range returns an integer in [min, max], inclusive of both bounds.
// Callers must ensure max >= min.
func (r *SeededRandom) Range(min, max int) int {
	return int(r.Next()*float64(max-min+1)) + min
}

// Chance returns true with the given probability in [0, 1].
func (r *SeededRandom) Chance(p float64) bool {
	return r.Next() < p
}

// Pick returns a random element of items. Callers must ensure items is
// non-empty.
func Pick[T any](r *SeededRandom, items []T) T {
	return items[int(r.Next()*float64(len(items)))]
}

// Shuffle returns a new slice holding a Fisher-Yates permutation of items.
// The input slice is not modified.
func Shuffle[T any](r *SeededRandom, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := int(r.Next() * float64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}
