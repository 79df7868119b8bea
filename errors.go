package sodiumkit

import "errors"

var (
	// ErrInvalidParameter is returned when a caller-supplied length or size
	// falls outside the valid range for the operation (key, nonce, MAC, or
	// output length). It is detected before any primitive call is made.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDecryptionFailed is returned when an authenticated decryption does
	// not verify. It is deliberately opaque: wrong key, corrupted
	// ciphertext, wrong nonce, and wrong MAC all produce this same error so
	// that callers cannot be turned into a decryption oracle.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidEncoding is returned when hex decoding encounters a
	// character that is neither a hex digit nor in the ignore set, or when
	// the input ends on a half pair.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrAllocationFailure is returned when a secure buffer cannot be
	// acquired, including requests above the allocation cap.
	ErrAllocationFailure = errors.New("allocation failure")
)
