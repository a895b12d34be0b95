package keys

import (
	"crypto/rand"
	"io"

	"symbol.dev/sdk/bytearray"
)

const (
	// PublicKeySize is the length of a compressed curve point.
	PublicKeySize = 32
	// PrivateKeySize is the length of a raw private scalar seed.
	PrivateKeySize = 32
)

// PublicKey is a 32-byte compressed Edwards point.
type PublicKey struct {
	bytearray.Array[bytearray.Size32]
}

// NewPublicKey copies exactly 32 bytes.
func NewPublicKey(b []byte) (PublicKey, error) {
	a, err := bytearray.New[bytearray.Size32](b)
	return PublicKey{a}, err
}

// PublicKeyFromHex decodes 64 uppercase hex characters.
func PublicKeyFromHex(s string) (PublicKey, error) {
	a, err := bytearray.FromHex[bytearray.Size32](s)
	return PublicKey{a}, err
}

// Equal reports byte-wise equality.
func (k PublicKey) Equal(other PublicKey) bool {
	return k.Array.Equal(other.Array)
}

// PrivateKey is a 32-byte secret seed (before clamping).
type PrivateKey struct {
	bytearray.Secure[bytearray.Size32]
}

// NewPrivateKey consumes src: the bytes are copied and src is zeroed.
func NewPrivateKey(src []byte) (PrivateKey, error) {
	s, err := bytearray.FromSecret[bytearray.Size32](src)
	return PrivateKey{s}, err
}

// PrivateKeyFromHex decodes 64 uppercase hex characters.
func PrivateKeyFromHex(s string) (PrivateKey, error) {
	sec, err := bytearray.SecretFromHex[bytearray.Size32](s)
	return PrivateKey{sec}, err
}

// RandomPrivateKey draws a private key from crypto/rand.
func RandomPrivateKey() (PrivateKey, error) {
	return RandomPrivateKeyFrom(rand.Reader)
}

// RandomPrivateKeyFrom draws a private key from r.
func RandomPrivateKeyFrom(r io.Reader) (PrivateKey, error) {
	buf := make([]byte, PrivateKeySize)
	if _, err := io.ReadFull(r, buf); err != nil {
		bytearray.Wipe(buf)
		return PrivateKey{}, err
	}
	return NewPrivateKey(buf)
}

// Clone returns an independent copy that must be erased separately.
func (k PrivateKey) Clone() PrivateKey {
	return PrivateKey{k.Secure.Clone()}
}

// Equal compares in constant time.
func (k PrivateKey) Equal(other PrivateKey) bool {
	return k.Secure.Equal(other.Secure)
}
