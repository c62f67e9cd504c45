package sudoku

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestCoversDigitsVectors(t *testing.T) {
	assert := require.New(t)

	assert.True(CoversDigits([]uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}))
	assert.True(CoversDigits([]uint8{9, 8, 7, 6, 5, 4, 3, 2, 1}))
	assert.False(CoversDigits([]uint8{1, 1, 3, 4, 5, 6, 7, 8, 9}), "duplicate")
	assert.False(CoversDigits([]uint8{1, 2, 3, 4, 5, 6, 7, 8, 10}), "out of range")
	assert.False(CoversDigits([]uint8{0, 2, 3, 4, 5, 6, 7, 8, 9}), "zero is not a digit")
	assert.False(CoversDigits([]uint8{1, 2, 3, 4, 5, 6, 7, 8}), "too short")
	assert.False(CoversDigits([]uint8{1, 2, 3, 4, 5, 6, 7, 8, 9, 9}), "too long")
	assert.False(CoversDigits(nil))
}

// shuffledDigits returns a seed-determined permutation of 1..9.
func shuffledDigits(seed int64) []uint8 {
	r := rand.New(rand.NewSource(seed))
	d := []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}
	r.Shuffle(len(d), func(i, j int) { d[i], d[j] = d[j], d[i] })
	return d
}

func TestCoversDigitsProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500

	properties := gopter.NewProperties(parameters)

	properties.Property("every permutation of 1..9 is accepted", prop.ForAll(
		func(seed int64) bool {
			return CoversDigits(shuffledDigits(seed))
		},
		gen.Int64(),
	))

	properties.Property("any single duplicated entry is rejected", prop.ForAll(
		func(seed int64, from, to uint8) bool {
			d := shuffledDigits(seed)
			d[to%9] = d[from%9]
			return from%9 == to%9 || !CoversDigits(d)
		},
		gen.Int64(), gen.UInt8(), gen.UInt8(),
	))

	properties.Property("any out-of-range entry is rejected", prop.ForAll(
		func(seed int64, pos uint8, v uint8) bool {
			d := shuffledDigits(seed)
			if v >= 1 && v <= 9 {
				v += 9
			}
			d[pos%9] = v
			return !CoversDigits(d)
		},
		gen.Int64(), gen.UInt8(), gen.UInt8(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestMapping(t *testing.T) {
	assert := require.New(t)

	id := IdentityMapping()
	assert.True(id.Valid())
	assert.EqualValues(7, id.Image(7))

	m := Mapping{3, 1, 4, 2, 5, 9, 6, 8, 7}
	assert.True(m.Valid())
	assert.EqualValues(3, m.Image(1))
	assert.EqualValues(7, m.Image(9))

	assert.False(Mapping{1, 1, 3, 4, 5, 6, 7, 8, 9}.Valid())
	assert.False(Mapping{}.Valid())
}
