// Package utils provides the constant-time and encoding helpers the rest of
// the library is built on: timing-safe comparison, secure zeroing that the
// compiler cannot elide, and a hex codec that tolerates a caller-chosen set
// of separator characters.
package utils

import (
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/opd-ai/sodiumkit"
)

// Equals compares two byte slices in constant time. The comparison does not
// short-circuit on content, so its duration is independent of where the
// slices differ. Slices of different length compare unequal immediately;
// lengths are not secret, so that early return leaks nothing.
func Equals(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}

// Wipe overwrites data with zero bytes and returns an error if data is nil.
// The overwrite goes through subtle.ConstantTimeCopy followed by
// runtime.KeepAlive so the compiler cannot prove the stores dead and remove
// them.
func Wipe(data []byte) error {
	if data == nil {
		return errors.New("cannot wipe nil data")
	}
	if len(data) == 0 {
		return nil
	}

	zeros := make([]byte, len(data))
	subtle.ConstantTimeCopy(1, data, zeros)

	runtime.KeepAlive(data)
	runtime.KeepAlive(zeros)

	return nil
}

// Zero erases the contents of a byte slice containing sensitive data.
// This is a convenience function that ignores the error from Wipe.
func Zero(data []byte) {
	_ = Wipe(data)
}

// Bin2Hex encodes bin as lowercase hex with no separators.
func Bin2Hex(bin []byte) string {
	return hex.EncodeToString(bin)
}

// Hex2Bin decodes a hex string into bytes. Decoding is case-insensitive. Any
// non-hex character, or an input ending on a half pair, fails with
// sodiumkit.ErrInvalidEncoding.
func Hex2Bin(s string) ([]byte, error) {
	return Hex2BinIgnore(s, "")
}

// Hex2BinIgnore decodes a hex string, skipping any character present in
// ignore (for example ":- " to accept "de-ad be:ef"). Characters outside the
// ignore set must be hex digits; anything else fails with
// sodiumkit.ErrInvalidEncoding rather than being skipped silently.
func Hex2BinIgnore(s, ignore string) ([]byte, error) {
	out := make([]byte, 0, len(s)/2)

	var hi byte
	havePair := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if strings.IndexByte(ignore, c) >= 0 {
			continue
		}

		nibble, ok := hexNibble(c)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected character %q at position %d",
				sodiumkit.ErrInvalidEncoding, c, i)
		}

		if !havePair {
			hi = nibble
			havePair = true
		} else {
			out = append(out, hi<<4|nibble)
			havePair = false
		}
	}

	if havePair {
		return nil, fmt.Errorf("%w: input ends with a dangling half pair",
			sodiumkit.ErrInvalidEncoding)
	}

	return out, nil
}

// hexNibble maps a single hex digit to its value. Accepts both cases.
func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
