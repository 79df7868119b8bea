// Package secretbox provides authenticated symmetric encryption using
// XSalsa20-Poly1305 (NaCl crypto_secretbox). Sealing binds a 16-byte
// Poly1305 tag to the (key, nonce, ciphertext) triple; opening verifies the
// tag before releasing any plaintext, and every verification failure is
// reported as the same opaque error.
//
// Seal generates a fresh random nonce per call and prefixes it to the sealed
// output, so the combined buffer is self-contained:
//
//	nonce (24) || mac (16) || ciphertext
//
// The WithNonce and Detached variants expose the layout for protocols that
// transport the nonce or tag themselves. Nonces must never repeat under the
// same key; random 24-byte nonces make accidental reuse negligible.
package secretbox

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/nacl/secretbox"

	"github.com/opd-ai/sodiumkit"
	"github.com/opd-ai/sodiumkit/randombytes"
	"github.com/opd-ai/sodiumkit/utils"
)

const (
	// KeyBytes is the secret key length.
	KeyBytes = 32
	// NonceBytes is the nonce length.
	NonceBytes = 24
	// MACBytes is the authentication tag length.
	MACBytes = secretbox.Overhead
)

// GenerateKey returns a new random secret key.
func GenerateKey() ([]byte, error) {
	return randombytes.Buf(KeyBytes)
}

// GenerateNonce returns a new random nonce.
func GenerateNonce() ([]byte, error) {
	return randombytes.Buf(NonceBytes)
}

// Seal encrypts and authenticates message under key with a freshly generated
// nonce and returns nonce || mac || ciphertext. It fails only if the key
// length is wrong or the CSPRNG is unavailable.
func Seal(message, key []byte) ([]byte, error) {
	nonce, err := GenerateNonce()
	if err != nil {
		return nil, err
	}

	sealed, err := SealWithNonce(message, key, nonce)
	if err != nil {
		return nil, err
	}

	combined := make([]byte, 0, NonceBytes+len(sealed))
	combined = append(combined, nonce...)
	combined = append(combined, sealed...)
	return combined, nil
}

// SealWithNonce encrypts and authenticates message under key with a
// caller-supplied nonce and returns mac || ciphertext without the nonce
// prefix. The caller is responsible for nonce uniqueness per key; reuse
// breaks both confidentiality and authentication.
func SealWithNonce(message, key, nonce []byte) ([]byte, error) {
	if len(key) != KeyBytes {
		return nil, fmt.Errorf("%w: key length %d, want %d",
			sodiumkit.ErrInvalidParameter, len(key), KeyBytes)
	}
	if len(nonce) != NonceBytes {
		return nil, fmt.Errorf("%w: nonce length %d, want %d",
			sodiumkit.ErrInvalidParameter, len(nonce), NonceBytes)
	}

	var k [KeyBytes]byte
	var n [NonceBytes]byte
	copy(k[:], key)
	copy(n[:], nonce)
	defer utils.Zero(k[:])

	sealed := secretbox.Seal(nil, message, &n, &k)

	logrus.WithFields(logrus.Fields{
		"function":     "SealWithNonce",
		"message_size": len(message),
	}).Debug("Message sealed")

	return sealed, nil
}

// SealDetached encrypts and authenticates message under key with a freshly
// generated nonce and returns the ciphertext, nonce, and tag as separate
// buffers for protocols that carry authentication metadata out of band.
func SealDetached(message, key []byte) (ciphertext, nonce, mac []byte, err error) {
	nonce, err = GenerateNonce()
	if err != nil {
		return nil, nil, nil, err
	}

	sealed, err := SealWithNonce(message, key, nonce)
	if err != nil {
		return nil, nil, nil, err
	}

	// NaCl's combined layout places the tag first.
	return sealed[MACBytes:], nonce, sealed[:MACBytes], nil
}

// Open authenticates and decrypts a combined nonce || mac || ciphertext
// buffer produced by Seal. A buffer too short to contain a nonce and tag, or
// one that fails verification for any reason, yields
// sodiumkit.ErrDecryptionFailed with no further detail.
func Open(combined, key []byte) ([]byte, error) {
	if len(combined) < NonceBytes+MACBytes {
		return nil, sodiumkit.ErrDecryptionFailed
	}
	return OpenWithNonce(combined[NonceBytes:], key, combined[:NonceBytes])
}

// OpenWithNonce authenticates and decrypts a mac || ciphertext buffer with
// an externally supplied nonce.
func OpenWithNonce(ciphertext, key, nonce []byte) ([]byte, error) {
	if len(key) != KeyBytes {
		return nil, fmt.Errorf("%w: key length %d, want %d",
			sodiumkit.ErrInvalidParameter, len(key), KeyBytes)
	}
	if len(nonce) != NonceBytes {
		return nil, fmt.Errorf("%w: nonce length %d, want %d",
			sodiumkit.ErrInvalidParameter, len(nonce), NonceBytes)
	}
	if len(ciphertext) < MACBytes {
		return nil, sodiumkit.ErrDecryptionFailed
	}

	var k [KeyBytes]byte
	var n [NonceBytes]byte
	copy(k[:], key)
	copy(n[:], nonce)
	defer utils.Zero(k[:])

	message, ok := secretbox.Open(nil, ciphertext, &n, &k)
	if !ok {
		// Deliberately opaque: wrong key, tampered ciphertext, wrong nonce,
		// and wrong tag are indistinguishable to the caller.
		logrus.WithFields(logrus.Fields{
			"function":        "OpenWithNonce",
			"ciphertext_size": len(ciphertext),
		}).Debug("Authenticated decryption failed")
		return nil, sodiumkit.ErrDecryptionFailed
	}

	return message, nil
}

// OpenDetached authenticates and decrypts a detached ciphertext with its
// separate tag. Any mismatch anywhere in the (key, nonce, ciphertext, mac)
// combination yields the same sodiumkit.ErrDecryptionFailed.
func OpenDetached(ciphertext, key, nonce, mac []byte) ([]byte, error) {
	if len(mac) != MACBytes {
		return nil, fmt.Errorf("%w: mac length %d, want %d",
			sodiumkit.ErrInvalidParameter, len(mac), MACBytes)
	}

	combined := make([]byte, 0, MACBytes+len(ciphertext))
	combined = append(combined, mac...)
	combined = append(combined, ciphertext...)
	return OpenWithNonce(combined, key, nonce)
}
