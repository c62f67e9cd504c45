package sudoku

import "github.com/bits-and-blooms/bitset"

// CoversDigits reports whether values contains each digit 1..9 exactly once.
// Any value outside [1,9], any duplicate, or a length other than 9 fails.
func CoversDigits(values []uint8) bool {
	if len(values) != Size {
		return false
	}
	seen := bitset.New(Size + 1)
	for _, v := range values {
		if v < 1 || v > Size {
			return false
		}
		if seen.Test(uint(v)) {
			return false
		}
		seen.Set(uint(v))
	}
	return seen.Count() == Size
}

// Mapping is a bijection over the digits 1..9; Mapping[v-1] is the image of
// digit v.
type Mapping [Size]uint8

// Valid reports whether m is a bijection over {1..9}.
func (m Mapping) Valid() bool {
	return CoversDigits(m[:])
}

// Image returns the image of digit v under m. v must be in [1,9].
func (m Mapping) Image(v uint8) uint8 {
	return m[v-1]
}

// IdentityMapping returns the mapping sending every digit to itself.
func IdentityMapping() Mapping {
	var m Mapping
	for i := range m {
		m[i] = uint8(i + 1)
	}
	return m
}
