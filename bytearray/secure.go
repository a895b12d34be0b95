package bytearray

import (
	"crypto/subtle"
)

// Secure is a fixed-size container for secret key material.
//
// A Secure value is a handle to one secret buffer: copies of the value refer
// to the same bytes, so erasing through any copy erases the secret. Use Clone
// for an independent buffer, which must then be erased on its own.
//
// There is no Zero constructor. The zero value is identical to an erased
// container: it reads as all-zero bytes and must not be used as a key.
type Secure[S Size] struct {
	bytes []byte
}

var _ Erasable = (*Secure[Size32])(nil)

// FromSecret takes ownership of src: its bytes are copied into the container
// and src is zeroed before returning, whether or not construction succeeds.
func FromSecret[S Size](src []byte) (Secure[S], error) {
	defer Wipe(src)

	n := sizeOf[S]()
	if len(src) != n {
		return Secure[S]{}, sizeMismatch(n, len(src))
	}
	buf := make([]byte, n)
	copy(buf, src)
	return Secure[S]{bytes: buf}, nil
}

// SecretFromHex decodes exactly 2*S uppercase hex characters. The decode
// buffer is wiped on failure.
func SecretFromHex[S Size](s string) (Secure[S], error) {
	buf := make([]byte, sizeOf[S]())
	if err := decodeHexInto(buf, s); err != nil {
		Wipe(buf)
		return Secure[S]{}, err
	}
	return Secure[S]{bytes: buf}, nil
}

// Len returns S.
func (s Secure[S]) Len() int {
	return sizeOf[S]()
}

// Bytes returns a read-only view of the secret. The view aliases the
// container's storage; do not retain it past the container's lifetime.
func (s Secure[S]) Bytes() []byte {
	if s.bytes == nil {
		return make([]byte, sizeOf[S]())
	}
	return s.bytes
}

// MutableBytes returns a writable view of the secret.
func (s *Secure[S]) MutableBytes() []byte {
	if s.bytes == nil {
		s.bytes = make([]byte, sizeOf[S]())
	}
	return s.bytes
}

// Erase overwrites the container's storage with zeros in place.
func (s *Secure[S]) Erase() {
	Wipe(s.bytes)
}

// Clone returns an independent copy; both copies must be erased.
func (s Secure[S]) Clone() Secure[S] {
	buf := make([]byte, sizeOf[S]())
	copy(buf, s.Bytes())
	return Secure[S]{bytes: buf}
}

// Equal compares in constant time.
func (s Secure[S]) Equal(other Secure[S]) bool {
	return subtle.ConstantTimeCompare(s.Bytes(), other.Bytes()) == 1
}

// String never renders key material.
func (s Secure[S]) String() string {
	return "<redacted>"
}

// RevealHex returns the uppercase hex encoding of the secret. It exists for
// callers that must export key material, such as account generation tools.
func (s Secure[S]) RevealHex() string {
	return encodeHexUpper(s.Bytes())
}

func (s Secure[S]) GoString() string {
	return "bytearray.Secure{<redacted>}"
}

func (s Secure[S]) MarshalJSON() ([]byte, error) {
	return EncodeJSON(s.Bytes()), nil
}

func (s *Secure[S]) UnmarshalJSON(data []byte) error {
	b, err := DecodeJSON(data)
	if err != nil {
		return err
	}
	decoded, err := FromSecret[S](b)
	if err != nil {
		return err
	}
	s.Erase()
	*s = decoded
	return nil
}
