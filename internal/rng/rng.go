// Package rng provides uniform sampling over a caller-supplied entropy
// stream. Callers pass crypto/rand.Reader in production; tests may pass a
// deterministic stream.
package rng

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Uint64 reads 8 bytes from r and returns them as a uint64.
func Uint64(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("rng: read entropy: %w", err)
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// Intn returns a uniform integer in [0, n). It uses 64-bit rejection
// sampling for exact uniformity.
func Intn(r io.Reader, n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("rng: invalid bound %d", n)
	}
	bound := uint64(n)
	limit := (^uint64(0) / bound) * bound
	for {
		x, err := Uint64(r)
		if err != nil {
			return 0, err
		}
		if x < limit {
			return int(x % bound), nil
		}
	}
}
