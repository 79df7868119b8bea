package securebuffer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/sodiumkit"
)

func TestNewZeroInitialized(t *testing.T) {
	buf, err := New(32)
	require.NoError(t, err)
	defer buf.Release()

	require.Equal(t, 32, buf.Len())
	for i, b := range buf.Bytes() {
		require.Zerof(t, b, "byte %d not zero-initialized", i)
	}
}

func TestNewInvalidSize(t *testing.T) {
	_, err := New(-1)
	require.Error(t, err)
	assert.ErrorIs(t, err, sodiumkit.ErrInvalidParameter)
}

func TestNewOversized(t *testing.T) {
	_, err := New(MaxBufferSize + 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, sodiumkit.ErrAllocationFailure)
}

func TestReleaseWipes(t *testing.T) {
	buf, err := New(16)
	require.NoError(t, err)

	storage := buf.Bytes()
	for i := range storage {
		storage[i] = 0xaa
	}

	buf.Release()

	assert.True(t, buf.Released())
	assert.Nil(t, buf.Bytes())
	assert.Equal(t, 0, buf.Len())
	for i, b := range storage {
		assert.Zerof(t, b, "byte %d survived release", i)
	}
}

func TestReleaseIdempotent(t *testing.T) {
	buf, err := New(8)
	require.NoError(t, err)

	buf.Release()
	buf.Release()
	assert.True(t, buf.Released())
}

func TestFromBytesWipesSource(t *testing.T) {
	secret := []byte{1, 2, 3, 4}
	buf := FromBytes(secret)
	defer buf.Release()

	assert.Equal(t, []byte{1, 2, 3, 4}, buf.Bytes())
	assert.Equal(t, []byte{0, 0, 0, 0}, secret, "source not wiped")
}

func TestWithSecretWipesOnSuccess(t *testing.T) {
	var captured []byte
	err := WithSecret(8, func(secret []byte) error {
		for i := range secret {
			secret[i] = 0x55
		}
		captured = secret
		return nil
	})
	require.NoError(t, err)

	for i, b := range captured {
		assert.Zerof(t, b, "byte %d survived scope exit", i)
	}
}

func TestWithSecretWipesOnError(t *testing.T) {
	boom := errors.New("boom")
	var captured []byte
	err := WithSecret(8, func(secret []byte) error {
		for i := range secret {
			secret[i] = 0x55
		}
		captured = secret
		return boom
	})
	require.ErrorIs(t, err, boom)

	for i, b := range captured {
		assert.Zerof(t, b, "byte %d survived error exit", i)
	}
}

func TestWithSecretInvalidSize(t *testing.T) {
	called := false
	err := WithSecret(-5, func([]byte) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, sodiumkit.ErrInvalidParameter)
	assert.False(t, called)
}
