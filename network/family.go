package network

import (
	"fmt"
	"strings"

	"symbol.dev/sdk/hashing"
	"symbol.dev/sdk/keys"
	"symbol.dev/sdk/sdkerr"
	"symbol.dev/sdk/timestamp"
)

// Family selects the protocol rules shared by every network of a chain.
type Family int

const (
	NEM Family = iota + 1
	Symbol
)

// addressMidSize is the RIPEMD-160 body shared by both families.
const addressMidSize = hashing.Ripemd160Size

type familyParams struct {
	name          string
	addressHasher hashing.AddressHasher
	addressSize   int
	checksumSize  int
	keyMode       hashing.HashMode
	reverseKey    bool
	unit          timestamp.Unit
}

var families = map[Family]familyParams{
	NEM: {
		name:          "nem",
		addressHasher: hashing.Keccak256,
		addressSize:   25,
		checksumSize:  4,
		keyMode:       hashing.Keccak,
		reverseKey:    true,
		unit:          timestamp.UnitSeconds,
	},
	Symbol: {
		name:          "symbol",
		addressHasher: hashing.SHA3_256,
		addressSize:   24,
		checksumSize:  3,
		keyMode:       hashing.SHA2_512,
		reverseKey:    false,
		unit:          timestamp.UnitMilliseconds,
	},
}

// ParseFamily accepts "nem" or "symbol", case-insensitively.
func ParseFamily(s string) (Family, error) {
	for f, p := range families {
		if strings.EqualFold(s, p.name) {
			return f, nil
		}
	}
	return 0, sdkerr.New(sdkerr.KindLookup, ruleLookup, fmt.Sprintf("unknown network family %q", s))
}

// Valid reports whether f is NEM or Symbol.
func (f Family) Valid() bool {
	_, ok := families[f]
	return ok
}

func (f Family) params() familyParams {
	p, ok := families[f]
	if !ok {
		panic(fmt.Sprintf("network: unknown family %d", int(f)))
	}
	return p
}

func (f Family) String() string {
	if p, ok := families[f]; ok {
		return p.name
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// AddressHasher returns the 32-byte hash used for address derivation.
func (f Family) AddressHasher() hashing.AddressHasher { return f.params().addressHasher }

// AddressSize is the decoded address length: 25 for NEM, 24 for Symbol.
func (f Family) AddressSize() int { return f.params().addressSize }

// ChecksumSize is the trailing checksum length: 4 for NEM, 3 for Symbol.
func (f Family) ChecksumSize() int { return f.params().checksumSize }

// TimestampUnit is the resolution of the family's network timestamps.
func (f Family) TimestampUnit() timestamp.Unit { return f.params().unit }

// Derivation returns the family's private-to-public key rules.
func (f Family) Derivation() keys.Derivation {
	p := f.params()
	return keys.Derivation{Mode: p.keyMode, ReverseKey: p.reverseKey}
}
