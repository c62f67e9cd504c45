// Package commitment implements the hash commitments binding the prover to a
// relabeled grid. Each cell is committed individually under its own nonce so
// that a challenge can open a subset of cells without leaking the rest; the
// digit mapping gets one commitment of its own.
//
// Commitments are binding through the collision resistance of SHA3-256 and
// hiding through the 64-bit nonces, which stay secret until reveal.
package commitment

import (
	"encoding/binary"
	"encoding/hex"
	"io"

	"golang.org/x/crypto/sha3"

	"github.com/gridproof/gridproof/internal/rng"
	"github.com/gridproof/gridproof/sudoku"
)

// Digest is a SHA3-256 commitment digest. Its representation is opaque;
// digests are compared only for equality.
type Digest [32]byte

// String returns the digest in hex.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Domain-separation tags. Cell and mapping preimages must never collide, so
// each starts with its own tag byte.
const (
	tagCell    = 0x01
	tagMapping = 0x02
)

// CellDigest commits to a single cell value under nonce. The preimage is the
// fixed-width encoding tag || value || nonce, which is injective over
// (value, nonce) pairs.
func CellDigest(value uint8, nonce uint64) Digest {
	var buf [10]byte
	buf[0] = tagCell
	buf[1] = value
	binary.LittleEndian.PutUint64(buf[2:], nonce)
	return Digest(sha3.Sum256(buf[:]))
}

// MappingDigest commits to a digit mapping under nonce. The preimage is
// tag || m[0..9] || nonce, fixed width, injective.
func MappingDigest(m sudoku.Mapping, nonce uint64) Digest {
	var buf [1 + sudoku.Size + 8]byte
	buf[0] = tagMapping
	copy(buf[1:], m[:])
	binary.LittleEndian.PutUint64(buf[1+sudoku.Size:], nonce)
	return Digest(sha3.Sum256(buf[:]))
}

// Commitment is the public half of a round commitment: one digest per grid
// cell plus one for the digit mapping. It is safe to publish before any
// challenge is issued.
type Commitment struct {
	Cells   [sudoku.NbCells]Digest
	Mapping Digest
}

// Opening is the prover-secret half: the nonces behind every digest. Only
// the nonces selected by a challenge are ever disclosed.
type Opening struct {
	CellNonces   [sudoku.NbCells]uint64
	MappingNonce uint64
}

// Commit commits to every cell of grid and to mapping, drawing one fresh
// nonce per digest from rand. The returned Opening must be kept secret by
// the prover.
func Commit(grid sudoku.Grid, mapping sudoku.Mapping, rand io.Reader) (Commitment, Opening, error) {
	var com Commitment
	var op Opening
	for i, v := range grid {
		nonce, err := rng.Uint64(rand)
		if err != nil {
			return Commitment{}, Opening{}, err
		}
		op.CellNonces[i] = nonce
		com.Cells[i] = CellDigest(v, nonce)
	}
	nonce, err := rng.Uint64(rand)
	if err != nil {
		return Commitment{}, Opening{}, err
	}
	op.MappingNonce = nonce
	com.Mapping = MappingDigest(mapping, nonce)
	return com, op, nil
}
