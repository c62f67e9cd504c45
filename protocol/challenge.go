// Package protocol implements the interactive zero-knowledge proof engine:
// digit relabeling, commitment, challenge selection, selective reveal,
// verification and the round-repetition scheme that amplifies soundness.
//
// One round runs Permute -> Commit -> Challenge -> Reveal -> Verify. The
// three messages exchanged (Commitment, Challenge, Response) are
// self-contained values, so the protocol can run in-process or across any
// transport.
package protocol

import (
	"fmt"

	"github.com/gridproof/gridproof/sudoku"
)

// NbChallenges is the size of the challenge catalogue: 9 rows, 9 columns,
// 9 boxes and the mapping reveal.
const NbChallenges = 3*sudoku.Size + 1

// ChallengeKind tags the two challenge variants.
type ChallengeKind uint8

const (
	// ChallengeCells asks the prover to open the cells of one row, column or box.
	ChallengeCells ChallengeKind = iota + 1
	// ChallengeMapping asks the prover to open the digit mapping.
	ChallengeMapping
)

// Challenge identifies which commitments the verifier wants opened: either
// the 9 cells of one row, column or box, or the digit mapping.
type Challenge struct {
	Kind  ChallengeKind
	Cells []int  // opened cell indices, in reveal order; nil for ChallengeMapping
	Label string // human-readable name, e.g. "row 3" or "mapping"
}

// NewCatalogue builds the 28 challenges of the protocol from the grid
// geometry. The catalogue is deterministic and independent of any round's
// secrets; build it once and treat it as read-only.
func NewCatalogue() []Challenge {
	cat := make([]Challenge, 0, NbChallenges)
	for i := 0; i < sudoku.Size; i++ {
		idx := sudoku.RowIndices(i)
		cat = append(cat, Challenge{Kind: ChallengeCells, Cells: idx[:], Label: fmt.Sprintf("row %d", i)})
	}
	for i := 0; i < sudoku.Size; i++ {
		idx := sudoku.ColumnIndices(i)
		cat = append(cat, Challenge{Kind: ChallengeCells, Cells: idx[:], Label: fmt.Sprintf("column %d", i)})
	}
	for i := 0; i < sudoku.Size; i++ {
		idx := sudoku.BoxIndices(i)
		cat = append(cat, Challenge{Kind: ChallengeCells, Cells: idx[:], Label: fmt.Sprintf("box %d", i)})
	}
	cat = append(cat, Challenge{Kind: ChallengeMapping, Label: "mapping"})
	return cat
}
