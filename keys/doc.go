// Package keys holds account key material and derives public keys from
// private keys.
//
// Private keys live in secure containers: the bytes are erased by Erase and
// every intermediate secret produced during derivation (the pre-hash digest,
// the clamped scalar, reversed key copies) is wiped before the call returns.
//
// Derivation follows Ed25519 key generation with a selectable 64-byte
// pre-hash, so the same scalar arithmetic serves both NEM (Keccak-512) and
// Symbol (SHA-512) accounts.
package keys
