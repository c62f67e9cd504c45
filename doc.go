// Package gridproof implements an interactive zero-knowledge proof of a Sudoku solution.
//
// A Prover who knows the complete solution of a public puzzle convinces a
// Verifier of that fact without revealing a single cell. Each round the
// Prover relabels the solution digits through a fresh random bijection,
// commits to every cell of the relabeled grid (and to the bijection) with
// hash commitments, and the Verifier challenges it to open either one row,
// one column, one box, or the bijection itself. A cheating Prover survives a
// round with probability at most 27/28, so repeating rounds drives the
// cheating probability below any desired bound.
//
// The protocol engine lives in the protocol package; sudoku holds the grid
// data model, commitment the hash commitments, and encoding a CBOR wire form
// for the three protocol messages.
package gridproof

import (
	"github.com/blang/semver/v4"
)

var Version = semver.MustParse("0.1.0")
