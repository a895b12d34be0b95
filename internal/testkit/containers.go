// Package testkit holds conformance checks shared by the container tests of
// several packages.
package testkit

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// Container is the view every fixed-size container exposes.
type Container interface {
	Bytes() []byte
	Len() int
}

// SecretContainer is a Container that supports in-place erasure.
type SecretContainer interface {
	Container
	Erase()
}

// NewContainer constructs a container from raw bytes.
type NewContainer func(b []byte) (Container, error)

// NewSecretContainer constructs a secret container, consuming b.
type NewSecretContainer func(b []byte) (SecretContainer, error)

// RandBytes returns n bytes from crypto/rand.
func RandBytes(t testing.TB, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return b
}

// RunContainerConformance checks the exact-length construction contract.
func RunContainerConformance(t *testing.T, size int, newContainer NewContainer) {
	t.Helper()

	t.Run("CorrectSize", func(t *testing.T) {
		raw := RandBytes(t, size)
		c, err := newContainer(raw)
		require.NoError(t, err)
		require.Equal(t, size, c.Len())
		require.Equal(t, raw, c.Bytes())
	})

	t.Run("SmallerSize", func(t *testing.T) {
		_, err := newContainer(RandBytes(t, size-1))
		require.Error(t, err)
	})

	t.Run("LargerSize", func(t *testing.T) {
		_, err := newContainer(RandBytes(t, size+1))
		require.Error(t, err)
	})

	t.Run("CopiesInput", func(t *testing.T) {
		raw := RandBytes(t, size)
		want := bytes.Clone(raw)
		c, err := newContainer(raw)
		require.NoError(t, err)
		raw[0] ^= 0xff
		require.Equal(t, want, c.Bytes())
	})

	t.Run("BytesReturnsCopy", func(t *testing.T) {
		raw := RandBytes(t, size)
		want := bytes.Clone(raw)
		c, err := newContainer(raw)
		require.NoError(t, err)
		c.Bytes()[0] ^= 0xff
		require.Equal(t, want, c.Bytes())
	})
}

// RunSecretConformance checks the consume-and-zero construction contract and
// erasure.
func RunSecretConformance(t *testing.T, size int, newSecret NewSecretContainer) {
	t.Helper()
	zeros := make([]byte, size)

	t.Run("CorrectSizeZeroesSource", func(t *testing.T) {
		raw := RandBytes(t, size)
		want := bytes.Clone(raw)
		c, err := newSecret(raw)
		require.NoError(t, err)
		require.Equal(t, size, c.Len())
		require.Equal(t, want, c.Bytes())
		require.Equal(t, zeros, raw)
	})

	t.Run("SmallerSizeZeroesSource", func(t *testing.T) {
		raw := RandBytes(t, size-1)
		_, err := newSecret(raw)
		require.Error(t, err)
		require.Equal(t, make([]byte, size-1), raw)
	})

	t.Run("LargerSizeZeroesSource", func(t *testing.T) {
		raw := RandBytes(t, size+1)
		_, err := newSecret(raw)
		require.Error(t, err)
		require.Equal(t, make([]byte, size+1), raw)
	})

	t.Run("Erase", func(t *testing.T) {
		raw := RandBytes(t, size)
		want := bytes.Clone(raw)
		c, err := newSecret(raw)
		require.NoError(t, err)
		require.Equal(t, want, c.Bytes())

		c.Erase()
		require.NotEqual(t, want, c.Bytes())
		require.Equal(t, zeros, c.Bytes())
	})
}
