// Package hashing adapts the hash primitives used for key derivation and
// address derivation behind a uniform update/finalize interface.
//
// Hash functions are resolved through the go-multihash hasher registry, so a
// mode is nothing more than a multicodec code.
package hashing

import (
	"fmt"
	"hash"

	"github.com/multiformats/go-multihash"
	mhreg "github.com/multiformats/go-multihash/core"
	_ "github.com/multiformats/go-multihash/register/sha3"
	"golang.org/x/crypto/ripemd160"
)

// HashMode selects the 64-byte hash used to pre-hash private keys.
type HashMode int

const (
	// Keccak is original (pre-NIST) Keccak-512.
	Keccak HashMode = iota
	// SHA2_512 is SHA-512.
	SHA2_512
)

func (m HashMode) String() string {
	switch m {
	case Keccak:
		return "keccak-512"
	case SHA2_512:
		return "sha2-512"
	default:
		return fmt.Sprintf("HashMode(%d)", int(m))
	}
}

func (m HashMode) code() uint64 {
	switch m {
	case Keccak:
		return multihash.KECCAK_512
	case SHA2_512:
		return multihash.SHA2_512
	default:
		panic(fmt.Sprintf("hashing: unknown hash mode %d", int(m)))
	}
}

// Hasher512Size is the digest length of every HashMode.
const Hasher512Size = 64

// Hasher512 computes a 64-byte digest in the selected mode.
type Hasher512 struct {
	mode HashMode
	h    hash.Hash
}

// NewHasher512 returns a hasher for mode.
func NewHasher512(mode HashMode) *Hasher512 {
	return &Hasher512{mode: mode, h: mustHasher(mode.code())}
}

// Mode returns the hasher's mode.
func (h *Hasher512) Mode() HashMode {
	return h.mode
}

// Update feeds b into the hash.
func (h *Hasher512) Update(b []byte) {
	_, _ = h.h.Write(b)
}

// FinalizeInto writes the digest into out, which must be exactly 64 bytes.
// The hasher is reset afterwards.
func (h *Hasher512) FinalizeInto(out []byte) {
	if len(out) != Hasher512Size {
		panic(fmt.Sprintf("hashing: finalize buffer must be %d bytes, got %d", Hasher512Size, len(out)))
	}
	sum := h.h.Sum(out[:0])
	if &sum[0] != &out[0] {
		copy(out, sum)
		clear(sum)
	}
	h.h.Reset()
}

// AddressHasher selects the 32-byte hash a network uses for addresses.
type AddressHasher int

const (
	// Keccak256 is original (pre-NIST) Keccak-256.
	Keccak256 AddressHasher = iota
	// SHA3_256 is NIST SHA3-256.
	SHA3_256
)

func (a AddressHasher) String() string {
	switch a {
	case Keccak256:
		return "keccak-256"
	case SHA3_256:
		return "sha3-256"
	default:
		return fmt.Sprintf("AddressHasher(%d)", int(a))
	}
}

// New returns a fresh hash.Hash.
func (a AddressHasher) New() hash.Hash {
	switch a {
	case Keccak256:
		return mustHasher(multihash.KECCAK_256)
	case SHA3_256:
		return mustHasher(multihash.SHA3_256)
	default:
		panic(fmt.Sprintf("hashing: unknown address hasher %d", int(a)))
	}
}

// Sum256 hashes the concatenation of parts.
func (a AddressHasher) Sum256(parts ...[]byte) Hash256 {
	h := a.New()
	for _, p := range parts {
		_, _ = h.Write(p)
	}
	out := Zero256()
	copy(out.MutableBytes(), h.Sum(nil))
	return out
}

// Ripemd160Size is the RIPEMD-160 digest length.
const Ripemd160Size = ripemd160.Size

// Ripemd160 returns the RIPEMD-160 digest of b.
func Ripemd160(b []byte) [Ripemd160Size]byte {
	h := ripemd160.New()
	_, _ = h.Write(b)
	var out [Ripemd160Size]byte
	copy(out[:], h.Sum(nil))
	return out
}

// mustHasher resolves a registered hash function. Every code used here is
// registered at init, so a failure is a build defect.
func mustHasher(code uint64) hash.Hash {
	h, err := mhreg.GetHasher(code)
	if err != nil {
		panic(fmt.Sprintf("hashing: multihash code 0x%x not registered: %v", code, err))
	}
	return h
}
