package protocol

import (
	"crypto/rand"
	"io"

	"github.com/gridproof/gridproof/commitment"
	"github.com/gridproof/gridproof/internal/rng"
	"github.com/gridproof/gridproof/sudoku"
)

// Verify checks a response against the challenge that prompted it and the
// round's commitment. It accepts iff the response kind matches the challenge
// kind, every disclosed (value, nonce) pair reproduces its committed digest,
// and the disclosed values satisfy the validity rule: a cells response must
// cover the digits 1..9 exactly, a mapping response must be a bijection over
// 1..9. Any mismatch rejects outright.
func Verify(ch Challenge, resp Response, com commitment.Commitment) bool {
	switch {
	case ch.Kind == ChallengeMapping && resp.Kind == ResponseMapping:
		if commitment.MappingDigest(resp.Mapping, resp.MappingNonce) != com.Mapping {
			return false
		}
		return resp.Mapping.Valid()

	case ch.Kind == ChallengeCells && resp.Kind == ResponseCells:
		if len(ch.Cells) != sudoku.Size ||
			len(resp.Values) != sudoku.Size ||
			len(resp.Nonces) != sudoku.Size {
			return false
		}
		for t, idx := range ch.Cells {
			if idx < 0 || idx >= sudoku.NbCells {
				return false
			}
			if commitment.CellDigest(resp.Values[t], resp.Nonces[t]) != com.Cells[idx] {
				return false
			}
		}
		return sudoku.CoversDigits(resp.Values)

	default:
		// kind mismatch
		return false
	}
}

// Verifier is the verifier side of the protocol: it draws uniform challenges
// from the fixed catalogue and checks the prover's responses.
type Verifier struct {
	catalogue []Challenge
	rand      io.Reader
}

// NewVerifier returns a verifier drawing challenges from crypto/rand.
func NewVerifier() *Verifier {
	return newVerifier(rand.Reader)
}

func newVerifier(random io.Reader) *Verifier {
	return &Verifier{catalogue: NewCatalogue(), rand: random}
}

// Challenge draws one challenge uniformly from the 28-entry catalogue. The
// prover must not be able to predict it, so the verifier's rand must be
// unpredictable to the prover.
func (v *Verifier) Challenge() (Challenge, error) {
	i, err := rng.Intn(v.rand, len(v.catalogue))
	if err != nil {
		return Challenge{}, err
	}
	return v.catalogue[i], nil
}

// Verify checks one round. See the package-level Verify function.
func (v *Verifier) Verify(ch Challenge, resp Response, com commitment.Commitment) bool {
	return Verify(ch, resp, com)
}
