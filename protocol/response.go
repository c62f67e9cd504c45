package protocol

import "github.com/gridproof/gridproof/sudoku"

// ResponseKind tags the two response variants; it must structurally match
// the challenge's kind.
type ResponseKind uint8

const (
	// ResponseCells carries the requested cell values and their nonces.
	ResponseCells ResponseKind = iota + 1
	// ResponseMapping carries the digit mapping and its nonce.
	ResponseMapping
)

// Response answers a challenge: either the requested cell values with their
// nonces (in challenge order) or the digit mapping with its nonce. Nonces of
// unopened cells never appear in a response.
type Response struct {
	Kind ResponseKind

	// ResponseCells variant
	Values []uint8
	Nonces []uint64

	// ResponseMapping variant
	Mapping      sudoku.Mapping
	MappingNonce uint64
}
