package network

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/lightningnetwork/lnd/clock"

	"symbol.dev/sdk/hashing"
	"symbol.dev/sdk/keys"
	"symbol.dev/sdk/sdkerr"
	"symbol.dev/sdk/timestamp"
)

const (
	ruleConfig      = "SDK-NET-001"
	ruleAddressSize = "SDK-NET-002"
	ruleAddressText = "SDK-NET-003"
	ruleLookup      = "SDK-NET-004"
	ruleUnit        = "SDK-NET-005"
)

// Network is one concrete network of a family. The zero value is not usable;
// construct with New or use a built-in.
type Network struct {
	name       string
	identifier byte
	family     Family
	epoch      time.Time
	seed       *hashing.Hash256
}

// New validates and returns a network. generationHashSeed is optional and
// is copied.
func New(name string, identifier byte, family Family, epoch time.Time, generationHashSeed *hashing.Hash256) (Network, error) {
	switch {
	case name == "":
		return Network{}, sdkerr.New(sdkerr.KindConfig, ruleConfig, "network name is required")
	case !family.Valid():
		return Network{}, sdkerr.New(sdkerr.KindConfig, ruleConfig, fmt.Sprintf("network %q: unknown family %d", name, int(family)))
	case epoch.IsZero():
		return Network{}, sdkerr.New(sdkerr.KindConfig, ruleConfig, fmt.Sprintf("network %q: epoch is required", name))
	}

	n := Network{name: name, identifier: identifier, family: family, epoch: epoch.UTC()}
	if generationHashSeed != nil {
		seed := *generationHashSeed
		n.seed = &seed
	}
	return n, nil
}

func mustNew(name string, identifier byte, family Family, epoch time.Time, seedHex string) Network {
	var seed *hashing.Hash256
	if seedHex != "" {
		h, err := hashing.Hash256FromHex(seedHex)
		if err != nil {
			panic(err)
		}
		seed = &h
	}
	n, err := New(name, identifier, family, epoch, seed)
	if err != nil {
		panic(err)
	}
	return n
}

func (n Network) Name() string     { return n.name }
func (n Network) Identifier() byte { return n.identifier }
func (n Network) Family() Family   { return n.family }
func (n Network) Epoch() time.Time { return n.epoch }
func (n Network) String() string   { return n.family.String() + ":" + n.name }

// GenerationHashSeed returns a copy of the seed; ok is false for networks
// without one (every NEM network).
func (n Network) GenerationHashSeed() (seed hashing.Hash256, ok bool) {
	if n.seed == nil {
		return hashing.Hash256{}, false
	}
	return *n.seed, true
}

// PublicKeyToAddress derives the address owned by publicKey on this network.
func (n Network) PublicKeyToAddress(publicKey keys.PublicKey) Address {
	p := n.family.params()

	partOne := p.addressHasher.Sum256(publicKey.Bytes())
	partTwo := hashing.Ripemd160(partOne.Bytes())
	checksum := p.addressHasher.Sum256([]byte{n.identifier}, partTwo[:])

	address := Address{family: n.family}
	address.buf[0] = n.identifier
	copy(address.buf[1:], partTwo[:])
	copy(address.buf[1+addressMidSize:p.addressSize], checksum.Bytes()[:p.checksumSize])
	return address
}

// IsValidAddress reports whether address belongs to this network and carries
// a correct checksum. It never fails; malformed input is simply invalid.
func (n Network) IsValidAddress(address Address) bool {
	p := n.family.params()
	b := address.view()
	if len(b) != p.addressSize || b[0] != n.identifier {
		return false
	}

	body := 1 + addressMidSize
	checksum := p.addressHasher.Sum256(b[:body])
	return subtle.ConstantTimeCompare(b[body:], checksum.Bytes()[:p.checksumSize]) == 1
}

// IsValidAddressString parses s and validates the result. Undecodable text
// is invalid.
func (n Network) IsValidAddressString(s string) bool {
	address, err := ParseAddress(n.family, s)
	if err != nil {
		return false
	}
	return n.IsValidAddress(address)
}

// ParseAddress decodes s using this network's address layout.
func (n Network) ParseAddress(s string) (Address, error) {
	return ParseAddress(n.family, s)
}

// NewKeyPair takes ownership of privateKey and derives its public key with
// the family's rules.
func (n Network) NewKeyPair(privateKey keys.PrivateKey) keys.KeyPair {
	return keys.NewKeyPair(n.family.Derivation(), privateKey)
}

// DatetimeConverter returns the converter anchored at the network epoch.
func (n Network) DatetimeConverter() timestamp.Converter {
	return timestamp.Converter{Epoch: n.epoch, Unit: n.family.TimestampUnit()}
}

// ToDatetime converts ts to an absolute UTC instant. ts must use the
// family's timestamp unit.
func (n Network) ToDatetime(ts timestamp.Timestamp) (time.Time, error) {
	if want := n.family.TimestampUnit(); ts.Unit() != want {
		return time.Time{}, sdkerr.New(sdkerr.KindUnitMismatch, ruleUnit,
			fmt.Sprintf("%s timestamps are in %s, got %s", n, want, ts.Unit()))
	}
	return n.DatetimeConverter().ToDatetime(ts.Count()), nil
}

// FromDatetime converts t to a network timestamp. Instants before the epoch
// fail with sdkerr.KindPrecedesEpoch.
func (n Network) FromDatetime(t time.Time) (timestamp.Timestamp, error) {
	count, err := n.DatetimeConverter().ToDifference(t)
	if err != nil {
		return nil, err
	}
	return timestamp.New(n.family.TimestampUnit(), count)
}

// Now returns the current network timestamp according to c.
func (n Network) Now(c clock.Clock) (timestamp.Timestamp, error) {
	return n.FromDatetime(c.Now())
}

var (
	nemEpoch = time.Date(2015, time.March, 29, 0, 6, 25, 0, time.UTC)

	// NEMMainnet is the public NEM network.
	NEMMainnet = mustNew("mainnet", 0x68, NEM, nemEpoch, "")
	// NEMTestnet is the public NEM test network.
	NEMTestnet = mustNew("testnet", 0x98, NEM, nemEpoch, "")

	// SymbolMainnet is the public Symbol network.
	SymbolMainnet = mustNew("mainnet", 0x68, Symbol,
		time.Date(2021, time.March, 16, 0, 6, 25, 0, time.UTC),
		"57F7DA205008026C776CB6AED843393F04CD458E0AA2D9F1D5F31A402072B2D6")
	// SymbolTestnet is the public Symbol test network.
	SymbolTestnet = mustNew("testnet", 0x98, Symbol,
		time.Date(2021, time.November, 25, 14, 0, 47, 0, time.UTC),
		"49D6E1CE276A85B70EAFE52349AACCA389302E7A9754BCF1221E79494FC665A4")
)
