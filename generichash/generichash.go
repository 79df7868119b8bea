// Package generichash implements variable-length keyed and unkeyed hashing
// backed by BLAKE2b. One-shot and streaming modes produce identical digests
// for identical input, and the output length is a parameter of the hash
// itself: digests of different lengths over the same message are unrelated,
// not truncations of one another.
package generichash

import (
	"fmt"
	"hash"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/blake2b"

	"github.com/opd-ai/sodiumkit"
	"github.com/opd-ai/sodiumkit/randombytes"
)

const (
	// Bytes is the default digest length.
	Bytes = 32
	// BytesMin is the smallest accepted digest length.
	BytesMin = 16
	// BytesMax is the largest accepted digest length.
	BytesMax = 64

	// KeyBytes is the recommended key length.
	KeyBytes = 32
	// KeyBytesMin is the recommended minimum key length. BLAKE2b itself
	// accepts any key up to KeyBytesMax, so shorter keys are not rejected;
	// they simply carry less entropy.
	KeyBytesMin = 16
	// KeyBytesMax is the largest accepted key length.
	KeyBytesMax = 64
)

// State is a streaming hash accumulator. It is created by New, absorbs input
// through any number of Update calls, and is consumed by a single Final
// call; it is not safe for concurrent use.
type State struct {
	h     hash.Hash
	size  int
	keyed bool
	done  bool
}

// New begins a streaming hash. A size of 0 selects the default length
// Bytes; other sizes must lie within [BytesMin, BytesMax]. A nil or empty
// key selects the unkeyed hash; keys longer than KeyBytesMax are rejected.
func New(key []byte, size int) (*State, error) {
	if size == 0 {
		size = Bytes
	}
	if size < BytesMin || size > BytesMax {
		return nil, fmt.Errorf("%w: output length %d outside [%d, %d]",
			sodiumkit.ErrInvalidParameter, size, BytesMin, BytesMax)
	}
	if len(key) > KeyBytesMax {
		return nil, fmt.Errorf("%w: key length %d exceeds maximum %d",
			sodiumkit.ErrInvalidParameter, len(key), KeyBytesMax)
	}

	h, err := blake2b.New(size, key)
	if err != nil {
		// blake2b rejects parameters it cannot express; everything it can
		// reject has already been validated above, but never assume the
		// primitive succeeded.
		return nil, fmt.Errorf("%w: %v", sodiumkit.ErrInvalidParameter, err)
	}

	logrus.WithFields(logrus.Fields{
		"function":    "New",
		"output_size": size,
		"keyed":       len(key) > 0,
	}).Debug("Streaming hash initialized")

	return &State{h: h, size: size, keyed: len(key) > 0}, nil
}

// Update absorbs another chunk of input. Chunks are order-sensitive: the
// digest depends on the concatenation of all chunks in call order. Updating
// a finalized state fails.
func (s *State) Update(chunk []byte) error {
	if s.done {
		return fmt.Errorf("%w: hash state already finalized", sodiumkit.ErrInvalidParameter)
	}
	// hash.Hash.Write never returns an error.
	s.h.Write(chunk)
	return nil
}

// Final produces the digest and invalidates the state. A second Final, like
// an Update after Final, fails.
func (s *State) Final() ([]byte, error) {
	if s.done {
		return nil, fmt.Errorf("%w: hash state already finalized", sodiumkit.ErrInvalidParameter)
	}
	s.done = true

	digest := s.h.Sum(nil)
	s.h = nil
	return digest, nil
}

// Size returns the digest length this state was configured with.
func (s *State) Size() int {
	return s.size
}

// Keyed reports whether a key was supplied at initialization.
func (s *State) Keyed() bool {
	return s.keyed
}

// Hash computes a one-shot digest of message with the same parameter rules
// as New. For any input, Hash is equivalent to New + Update + Final.
func Hash(message, key []byte, size int) ([]byte, error) {
	st, err := New(key, size)
	if err != nil {
		return nil, err
	}
	if err := st.Update(message); err != nil {
		return nil, err
	}
	return st.Final()
}

// GenerateKey returns a new random hash key of the recommended length.
func GenerateKey() ([]byte, error) {
	return randombytes.Buf(KeyBytes)
}
