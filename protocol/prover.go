package protocol

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/gridproof/gridproof/commitment"
	"github.com/gridproof/gridproof/sudoku"
)

// RoundProver is the prover side of one protocol round. Commit starts a
// fresh round and returns its commitment message; Reveal answers the
// verifier's challenge for the current round.
type RoundProver interface {
	Commit() (commitment.Commitment, error)
	Reveal(Challenge) (Response, error)
}

// Prover is the honest prover. It holds the secret solution and, between
// Commit and Reveal, one round's permutation and commitment opening. Those
// round artifacts are overwritten by the next Commit and never shared across
// rounds.
//
// A Prover is not safe for concurrent use; run one Prover per worker.
type Prover struct {
	solution sudoku.Grid
	rand     io.Reader

	perm    Permutation
	opening commitment.Opening
	active  bool
}

// NewProver returns a prover for the given completed solution, using
// crypto/rand for permutations and nonces. It fails if the grid is not a
// valid completed Sudoku.
func NewProver(solution sudoku.Grid) (*Prover, error) {
	return newProver(solution, rand.Reader)
}

func newProver(solution sudoku.Grid, random io.Reader) (*Prover, error) {
	if !solution.Valid() {
		return nil, errors.New("protocol: solution is not a valid completed grid")
	}
	return &Prover{solution: solution, rand: random}, nil
}

// Commit starts a new round: it draws a fresh digit permutation, commits to
// every cell of the permuted grid and to the mapping, and returns the public
// commitment. The opening stays with the prover.
func (p *Prover) Commit() (commitment.Commitment, error) {
	perm, err := Permute(p.solution, p.rand)
	if err != nil {
		return commitment.Commitment{}, err
	}
	com, op, err := commitment.Commit(perm.Grid, perm.Mapping, p.rand)
	if err != nil {
		return commitment.Commitment{}, err
	}
	p.perm = perm
	p.opening = op
	p.active = true
	return com, nil
}

// Reveal opens exactly the commitments the challenge asks for: the mapping
// and its nonce, or the requested cells with their nonces in challenge
// order. All other nonces remain secret. It is an error to Reveal before
// Commit or to pass a malformed challenge.
func (p *Prover) Reveal(ch Challenge) (Response, error) {
	if !p.active {
		return Response{}, errors.New("protocol: Reveal called before Commit")
	}
	switch ch.Kind {
	case ChallengeMapping:
		return Response{
			Kind:         ResponseMapping,
			Mapping:      p.perm.Mapping,
			MappingNonce: p.opening.MappingNonce,
		}, nil
	case ChallengeCells:
		if len(ch.Cells) == 0 {
			return Response{}, errors.New("protocol: cells challenge with no indices")
		}
		resp := Response{
			Kind:   ResponseCells,
			Values: make([]uint8, len(ch.Cells)),
			Nonces: make([]uint64, len(ch.Cells)),
		}
		for t, idx := range ch.Cells {
			if idx < 0 || idx >= sudoku.NbCells {
				return Response{}, fmt.Errorf("protocol: challenge index %d out of range", idx)
			}
			resp.Values[t] = p.perm.Grid[idx]
			resp.Nonces[t] = p.opening.CellNonces[idx]
		}
		return resp, nil
	default:
		return Response{}, fmt.Errorf("protocol: unknown challenge kind %d", ch.Kind)
	}
}
