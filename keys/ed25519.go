package keys

import (
	"fmt"

	"filippo.io/edwards25519"

	"symbol.dev/sdk/bytearray"
	"symbol.dev/sdk/hashing"
)

// DerivePublicKey computes the public key of privateKey.
//
// The private key is hashed with the 64-byte hash selected by mode, the low
// half of the digest is clamped and multiplied by the curve base point, and
// the resulting point is compressed. Every intermediate secret (digest,
// clamped bytes, scalar) is wiped before returning.
func DerivePublicKey(mode hashing.HashMode, privateKey PrivateKey) PublicKey {
	var digest hashing.Hash512
	defer digest.Erase()
	hashPrivateKey(mode, privateKey.Bytes(), &digest)

	scalar := clampedScalar(digest.MutableBytes()[:PrivateKeySize])
	defer scalar.Set(edwards25519.NewScalar())

	point := new(edwards25519.Point).ScalarBaseMult(scalar)
	publicKey, err := NewPublicKey(point.Bytes())
	if err != nil {
		panic(fmt.Sprintf("keys: compressed point has unexpected size: %v", err))
	}
	return publicKey
}

// hashPrivateKey writes the pre-hash into digest, which the caller owns and
// erases.
func hashPrivateKey(mode hashing.HashMode, privateKey []byte, digest *hashing.Hash512) {
	h := hashing.NewHasher512(mode)
	h.Update(privateKey)
	h.FinalizeInto(digest.MutableBytes())
}

// clamp applies standard Edwards scalar clamping in place.
func clamp(bits *[PrivateKeySize]byte) {
	bits[0] &= 248
	bits[31] &= 127
	bits[31] |= 64
}

func clampedScalar(low []byte) *edwards25519.Scalar {
	var bits [PrivateKeySize]byte
	defer bytearray.Wipe(bits[:])

	copy(bits[:], low)
	clamp(&bits)

	scalar, err := edwards25519.NewScalar().SetBytesWithClamping(bits[:])
	if err != nil {
		panic(fmt.Sprintf("keys: clamped scalar rejected: %v", err))
	}
	return scalar
}
