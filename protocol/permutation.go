package protocol

import (
	"io"

	"github.com/gridproof/gridproof/internal/rng"
	"github.com/gridproof/gridproof/sudoku"
)

// Permutation is a round-scoped relabeling of the solution: a fresh random
// digit bijection and the solution grid with that bijection applied. It must
// be discarded once the round's verification completes.
type Permutation struct {
	Mapping sudoku.Mapping
	Grid    sudoku.Grid
}

// Permute draws a uniformly random bijection over the digits 1..9 from rand
// (Fisher-Yates over the identity mapping) and applies it to every cell of
// solution. The shuffle's unpredictability hides the mapping, so rand must
// be cryptographically secure.
func Permute(solution sudoku.Grid, rand io.Reader) (Permutation, error) {
	m := sudoku.IdentityMapping()
	for i := sudoku.Size - 1; i > 0; i-- {
		j, err := rng.Intn(rand, i+1)
		if err != nil {
			return Permutation{}, err
		}
		m[i], m[j] = m[j], m[i]
	}
	p := Permutation{Mapping: m}
	for i, v := range solution {
		p.Grid[i] = m.Image(v)
	}
	return p, nil
}
