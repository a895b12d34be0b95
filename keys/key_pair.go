package keys

import (
	"slices"

	"symbol.dev/sdk/hashing"
)

// Derivation describes how a network turns a private key into a public key.
type Derivation struct {
	// Mode selects the private-key pre-hash.
	Mode hashing.HashMode
	// ReverseKey byte-reverses the raw private key before hashing. NEM keys
	// are stored in the reverse order of the scalar seed.
	ReverseKey bool
}

// PublicKey derives the public key for privateKey. The supplied key is never
// modified; a reversed copy, if needed, is erased before returning.
func (d Derivation) PublicKey(privateKey PrivateKey) PublicKey {
	if !d.ReverseKey {
		return DerivePublicKey(d.Mode, privateKey)
	}

	reversed := privateKey.Clone()
	defer reversed.Erase()
	slices.Reverse(reversed.MutableBytes())
	return DerivePublicKey(d.Mode, reversed)
}

// KeyPair couples a private key with its derived public key.
type KeyPair struct {
	privateKey PrivateKey
	publicKey  PublicKey
}

// NewKeyPair takes ownership of privateKey and derives its public key.
func NewKeyPair(d Derivation, privateKey PrivateKey) KeyPair {
	return KeyPair{
		privateKey: privateKey,
		publicKey:  d.PublicKey(privateKey),
	}
}

// PublicKey returns the derived public key.
func (kp KeyPair) PublicKey() PublicKey {
	return kp.publicKey
}

// PrivateKey returns the private key. The returned value shares storage with
// the key pair.
func (kp KeyPair) PrivateKey() PrivateKey {
	return kp.privateKey
}

// Erase wipes the private key.
func (kp *KeyPair) Erase() {
	kp.privateKey.Erase()
}
