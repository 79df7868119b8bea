// Package securebuffer provides zero-on-release storage for secret material
// such as keys and nonces. A Buffer starts zero-initialized, is owned by one
// logical sequence of calls at a time, and is guaranteed to be wiped when
// released. WithSecret scopes a secret to a single function call and wipes it
// on every exit path.
//
// Go's garbage collector can still copy memory, so this is hardening rather
// than a hard guarantee; it matches what a process can achieve without
// mlock-style allocator support.
package securebuffer

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/sodiumkit"
	"github.com/opd-ai/sodiumkit/utils"
)

// MaxBufferSize caps a single secure allocation at 16 MiB. Secret material
// is small; refusing larger requests prevents memory exhaustion through the
// secure allocator.
const MaxBufferSize = 16 * 1024 * 1024

// Buffer holds secret bytes and wipes them on Release. The zero value is not
// usable; create buffers with New or FromBytes.
type Buffer struct {
	data     []byte
	released bool
}

// New allocates a zero-initialized secure buffer of the given size. A
// negative size fails with sodiumkit.ErrInvalidParameter; a size above
// MaxBufferSize fails with sodiumkit.ErrAllocationFailure.
func New(size int) (*Buffer, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: negative buffer size %d", sodiumkit.ErrInvalidParameter, size)
	}
	if size > MaxBufferSize {
		logrus.WithFields(logrus.Fields{
			"function": "New",
			"size":     size,
			"max":      MaxBufferSize,
		}).Warn("Refusing oversized secure buffer request")
		return nil, fmt.Errorf("%w: requested %d bytes exceeds cap %d",
			sodiumkit.ErrAllocationFailure, size, MaxBufferSize)
	}

	return &Buffer{data: make([]byte, size)}, nil
}

// FromBytes copies b into a fresh secure buffer and wipes the original,
// transferring ownership of the secret to the buffer.
func FromBytes(b []byte) *Buffer {
	buf := &Buffer{data: make([]byte, len(b))}
	copy(buf.data, b)
	utils.Zero(b)
	return buf
}

// Bytes returns the underlying storage for in-place use. It returns nil
// after Release. The caller must not retain the slice past the buffer's
// lifetime.
func (b *Buffer) Bytes() []byte {
	if b.released {
		return nil
	}
	return b.data
}

// Len returns the buffer size, or 0 after Release.
func (b *Buffer) Len() int {
	if b.released {
		return 0
	}
	return len(b.data)
}

// Released reports whether the buffer has been wiped and invalidated.
func (b *Buffer) Released() bool {
	return b.released
}

// Release wipes the buffer contents and invalidates the buffer. It is
// idempotent; releasing twice is a no-op.
func (b *Buffer) Release() {
	if b.released {
		return
	}
	utils.Zero(b.data)
	b.data = nil
	b.released = true
}

// WithSecret allocates a zeroed buffer of the given size, passes it to fn,
// and wipes it before returning regardless of how fn exits. The slice must
// not escape fn.
func WithSecret(size int, fn func(secret []byte) error) error {
	buf, err := New(size)
	if err != nil {
		return err
	}
	defer buf.Release()

	return fn(buf.Bytes())
}
