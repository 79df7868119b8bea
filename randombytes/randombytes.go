// Package randombytes exposes the process-wide CSPRNG: uniform byte
// buffers, uniform 32-bit values, and unbiased bounded integers. All entropy
// comes from crypto/rand, which is internally synchronized, so every
// function here is safe for concurrent use without caller-side locking.
package randombytes

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/opd-ai/sodiumkit"
)

// Buf returns length cryptographically secure random bytes. A negative
// length fails with sodiumkit.ErrInvalidParameter; zero yields an empty
// slice.
func Buf(length int) ([]byte, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", sodiumkit.ErrInvalidParameter, length)
	}

	buf := make([]byte, length)
	if err := Fill(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// Fill overwrites buf with cryptographically secure random bytes.
func Fill(buf []byte) error {
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return fmt.Errorf("read from system CSPRNG: %w", err)
	}
	return nil
}

// Random returns a uniformly distributed random 32-bit unsigned integer.
func Random() (uint32, error) {
	var b [4]byte
	if err := Fill(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

// Uniform returns an unbiased random integer in [0, upperBound). Naive
// modulo reduction over-represents small values whenever upperBound does not
// divide 2^32; Uniform instead rejects draws from the biased remainder
// region and redraws, so every residue is equally likely. An upperBound
// below 2 always returns 0.
func Uniform(upperBound uint32) (uint32, error) {
	if upperBound < 2 {
		return 0, nil
	}

	// (2^32 - upperBound) mod upperBound: draws below this threshold fall
	// in the region where 2^32 mod upperBound residues are over-represented.
	min := -upperBound % upperBound

	for {
		r, err := Random()
		if err != nil {
			return 0, err
		}
		if r >= min {
			return r % upperBound, nil
		}
	}
}
