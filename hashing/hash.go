package hashing

import "symbol.dev/sdk/bytearray"

// Hash256 is a 32-byte digest.
type Hash256 = bytearray.Array[bytearray.Size32]

// NewHash256 copies exactly 32 bytes.
func NewHash256(b []byte) (Hash256, error) {
	return bytearray.New[bytearray.Size32](b)
}

// Hash256FromHex decodes 64 uppercase hex characters.
func Hash256FromHex(s string) (Hash256, error) {
	return bytearray.FromHex[bytearray.Size32](s)
}

// Zero256 returns an all-zero Hash256.
func Zero256() Hash256 {
	return bytearray.Zero[bytearray.Size32]()
}

// Hash512 is a 64-byte digest. Private-key digests are held in a Hash512 and
// erased as soon as they are consumed; such a digest must stay in one place
// (pass a pointer) and be read through MutableBytes, since Bytes and value
// copies leave unerased duplicates.
type Hash512 struct {
	bytearray.Array[bytearray.Size64]
}

var _ bytearray.Erasable = (*Hash512)(nil)

// NewHash512 copies exactly 64 bytes.
func NewHash512(b []byte) (Hash512, error) {
	a, err := bytearray.New[bytearray.Size64](b)
	return Hash512{a}, err
}

// Hash512FromHex decodes 128 uppercase hex characters.
func Hash512FromHex(s string) (Hash512, error) {
	a, err := bytearray.FromHex[bytearray.Size64](s)
	return Hash512{a}, err
}

// Zero512 returns an all-zero Hash512.
func Zero512() Hash512 {
	return Hash512{bytearray.Zero[bytearray.Size64]()}
}

// Equal reports byte-wise equality.
func (h Hash512) Equal(other Hash512) bool {
	return h.Array.Equal(other.Array)
}

// Erase overwrites the digest with zeros.
func (h *Hash512) Erase() {
	bytearray.Wipe(h.MutableBytes())
}
