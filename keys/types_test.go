package keys

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"symbol.dev/sdk/internal/testkit"
	"symbol.dev/sdk/sdkerr"
)

func TestPublicKeyConformance(t *testing.T) {
	testkit.RunContainerConformance(t, PublicKeySize, func(b []byte) (testkit.Container, error) {
		return NewPublicKey(b)
	})
}

func TestPrivateKeyConformance(t *testing.T) {
	testkit.RunSecretConformance(t, PrivateKeySize, func(b []byte) (testkit.SecretContainer, error) {
		k, err := NewPrivateKey(b)
		return &k, err
	})
}

func TestPublicKeyFromHex(t *testing.T) {
	k, err := PublicKeyFromHex("C5FB65CB902623D93DF2E682FFB13F99D50FAC24D5FF2A42F68C7CA1772FE8A0")
	require.NoError(t, err)
	require.Equal(t, "C5FB65CB902623D93DF2E682FFB13F99D50FAC24D5FF2A42F68C7CA1772FE8A0", k.String())

	_, err = PublicKeyFromHex("C5FB")
	require.True(t, sdkerr.IsKind(err, sdkerr.KindDecode))
}

func TestRandomPrivateKeysDiffer(t *testing.T) {
	a, err := RandomPrivateKey()
	require.NoError(t, err)
	b, err := RandomPrivateKey()
	require.NoError(t, err)
	require.False(t, a.Equal(b))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestRandomPrivateKeyFromPropagatesReaderError(t *testing.T) {
	_, err := RandomPrivateKeyFrom(failingReader{})
	require.EqualError(t, err, "entropy exhausted")

	k, err := RandomPrivateKeyFrom(bytes.NewReader(bytes.Repeat([]byte{7}, PrivateKeySize)))
	require.NoError(t, err)
	require.Equal(t, bytes.Repeat([]byte{7}, PrivateKeySize), k.Bytes())
}

func TestPrivateKeyCloneIsIndependent(t *testing.T) {
	k, err := NewPrivateKey(testkit.RandBytes(t, PrivateKeySize))
	require.NoError(t, err)
	c := k.Clone()

	c.Erase()
	require.NotEqual(t, make([]byte, PrivateKeySize), k.Bytes())
	require.False(t, k.Equal(c))
}
