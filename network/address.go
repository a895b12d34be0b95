package network

import (
	"fmt"

	"github.com/multiformats/go-base32"

	"symbol.dev/sdk/bytearray"
	"symbol.dev/sdk/sdkerr"
)

var addressEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// maxAddressSize bounds every family's AddressSize.
const maxAddressSize = 25

// Address is a decoded account address: [network id][20-byte body][checksum].
// Its length is fixed by the family. Storage is inline, so copies are
// independent.
type Address struct {
	family Family
	buf    [maxAddressSize]byte
}

var _ bytearray.ByteArray = Address{}

// NewAddress copies b, which must be exactly family.AddressSize() bytes.
func NewAddress(family Family, b []byte) (Address, error) {
	if !family.Valid() {
		return Address{}, sdkerr.New(sdkerr.KindLookup, ruleLookup, fmt.Sprintf("unknown network family %d", int(family)))
	}
	if len(b) != family.AddressSize() {
		return Address{}, sdkerr.New(sdkerr.KindSizeMismatch, ruleAddressSize,
			fmt.Sprintf("%s address must be %d bytes, got %d", family, family.AddressSize(), len(b)))
	}
	a := Address{family: family}
	copy(a.buf[:], b)
	return a, nil
}

// ParseAddress decodes the unpadded base32 text form of an address. Only the
// canonical form is accepted: uppercase A-Z and 2-7, no padding.
func ParseAddress(family Family, s string) (Address, error) {
	b, err := addressEncoding.DecodeString(s)
	if err != nil {
		return Address{}, sdkerr.Wrap(sdkerr.KindDecode, ruleAddressText, fmt.Sprintf("invalid address %q", s), err)
	}
	if addressEncoding.EncodeToString(b) != s {
		return Address{}, sdkerr.New(sdkerr.KindDecode, ruleAddressText, fmt.Sprintf("address %q is not in canonical base32 form", s))
	}
	return NewAddress(family, b)
}

// Family returns the family whose layout the address follows.
func (a Address) Family() Family { return a.family }

// Len returns the address length, or 0 for the zero Address.
func (a Address) Len() int {
	if !a.family.Valid() {
		return 0
	}
	return a.family.AddressSize()
}

// Bytes returns a copy of the address.
func (a Address) Bytes() []byte { return append([]byte(nil), a.view()...) }

// MutableBytes returns a writable view of the address's own storage.
func (a *Address) MutableBytes() []byte { return a.buf[:a.Len()] }

func (a *Address) view() []byte { return a.buf[:a.Len()] }

// Equal reports whether both addresses have the same family and bytes.
func (a Address) Equal(other Address) bool {
	return a.family == other.family && a.buf == other.buf
}

// String returns the unpadded base32 form.
func (a Address) String() string {
	return addressEncoding.EncodeToString(a.view())
}

// MarshalJSON renders the address as {"bytes":[...]}.
func (a Address) MarshalJSON() ([]byte, error) {
	return bytearray.EncodeJSON(a.view()), nil
}

// UnmarshalJSON accepts {"bytes":[...]}. The family is inferred from the
// length when the receiver has none.
func (a *Address) UnmarshalJSON(data []byte) error {
	b, err := bytearray.DecodeJSON(data)
	if err != nil {
		return err
	}
	family := a.family
	if !family.Valid() {
		family = familyForSize(len(b))
		if !family.Valid() {
			return sdkerr.New(sdkerr.KindSizeMismatch, ruleAddressSize, fmt.Sprintf("no network family uses %d byte addresses", len(b)))
		}
	}
	decoded, err := NewAddress(family, b)
	if err != nil {
		return err
	}
	*a = decoded
	return nil
}

func familyForSize(n int) Family {
	for f, p := range families {
		if p.addressSize == n {
			return f
		}
	}
	return 0
}
