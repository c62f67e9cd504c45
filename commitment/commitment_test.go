package commitment

import (
	"crypto/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/gridproof/gridproof/sudoku"
)

func TestCellDigestDeterministic(t *testing.T) {
	assert := require.New(t)

	assert.Equal(CellDigest(5, 42), CellDigest(5, 42))
	assert.NotEqual(CellDigest(5, 42), CellDigest(6, 42), "value must bind")
	assert.NotEqual(CellDigest(5, 42), CellDigest(5, 43), "nonce must bind")
}

func TestMappingDigestDeterministic(t *testing.T) {
	assert := require.New(t)
	m := sudoku.IdentityMapping()

	assert.Equal(MappingDigest(m, 7), MappingDigest(m, 7))
	assert.NotEqual(MappingDigest(m, 7), MappingDigest(m, 8))

	swapped := m
	swapped[0], swapped[1] = swapped[1], swapped[0]
	assert.NotEqual(MappingDigest(m, 7), MappingDigest(swapped, 7))
}

// cell and mapping commitments must live in disjoint preimage domains: a
// mapping commitment can never be opened as a cell and vice versa.
func TestDomainSeparation(t *testing.T) {
	assert := require.New(t)

	var m sudoku.Mapping // not a valid mapping, but a valid preimage
	m[0] = 5
	assert.NotEqual(CellDigest(5, 42), MappingDigest(m, 42))
}

func TestBindingNoCollisions(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 2000

	properties := gopter.NewProperties(parameters)
	properties.Property("distinct (value, nonce) pairs yield distinct digests", prop.ForAll(
		func(v1, v2 uint8, n1, n2 uint64) bool {
			v1, v2 = v1%9+1, v2%9+1
			if v1 == v2 && n1 == n2 {
				return true
			}
			return CellDigest(v1, n1) != CellDigest(v2, n2)
		},
		gen.UInt8(), gen.UInt8(), gen.UInt64(), gen.UInt64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestCommit(t *testing.T) {
	assert := require.New(t)

	grid := sudoku.ReferenceSolution
	mapping := sudoku.IdentityMapping()
	com, op, err := Commit(grid, mapping, rand.Reader)
	assert.NoError(err)

	// every digest opens with its own (value, nonce) pair
	for i, v := range grid {
		assert.Equal(com.Cells[i], CellDigest(v, op.CellNonces[i]))
	}
	assert.Equal(com.Mapping, MappingDigest(mapping, op.MappingNonce))

	// nonces are drawn independently; 82 draws from 2^64 never collide
	seen := make(map[uint64]struct{}, sudoku.NbCells+1)
	for _, n := range op.CellNonces {
		_, dup := seen[n]
		assert.False(dup, "reused cell nonce")
		seen[n] = struct{}{}
	}
	_, dup := seen[op.MappingNonce]
	assert.False(dup, "mapping nonce reused a cell nonce")

	// tampering with an opened value must not reproduce the digest
	assert.NotEqual(com.Cells[0], CellDigest(grid[0]%9+1, op.CellNonces[0]))
}

func TestCommitFreshAcrossRounds(t *testing.T) {
	assert := require.New(t)

	grid := sudoku.ReferenceSolution
	mapping := sudoku.IdentityMapping()
	com1, op1, err := Commit(grid, mapping, rand.Reader)
	assert.NoError(err)
	com2, op2, err := Commit(grid, mapping, rand.Reader)
	assert.NoError(err)

	// same inputs, fresh nonces: the published digests must differ (hiding
	// would be void if equal inputs were recognizable across rounds)
	assert.NotEqual(op1.CellNonces[0], op2.CellNonces[0])
	assert.NotEqual(com1.Cells[0], com2.Cells[0])
	assert.NotEqual(com1.Mapping, com2.Mapping)
}
