package bytearray

import "bytes"

// Array is a plain fixed-size byte container. Its length always equals S.
//
// Storage is held inline, so assigning or passing an Array copies its bytes.
// The zero value is an all-zero container.
type Array[S Size] struct {
	buf [MaxSize]byte
}

var _ ByteArray = Array[Size32]{}

// New copies b into a new container. It fails with KindSizeMismatch unless
// len(b) equals the container size.
func New[S Size](b []byte) (Array[S], error) {
	n := sizeOf[S]()
	if len(b) != n {
		return Array[S]{}, sizeMismatch(n, len(b))
	}
	var a Array[S]
	copy(a.buf[:n], b)
	return a, nil
}

// Zero returns an all-zero container.
func Zero[S Size]() Array[S] {
	return Array[S]{}
}

// FromHex decodes exactly 2*S uppercase hex characters.
func FromHex[S Size](s string) (Array[S], error) {
	var a Array[S]
	if err := decodeHexInto(a.buf[:sizeOf[S]()], s); err != nil {
		return Array[S]{}, err
	}
	return a, nil
}

// MustFromHex is FromHex for package-level constants; it panics on error.
func MustFromHex[S Size](s string) Array[S] {
	a, err := FromHex[S](s)
	if err != nil {
		panic(err)
	}
	return a
}

// Len returns S.
func (a Array[S]) Len() int {
	return sizeOf[S]()
}

// Bytes returns a copy of the contents. Modifying it never affects a.
func (a Array[S]) Bytes() []byte {
	return bytes.Clone(a.buf[:sizeOf[S]()])
}

// MutableBytes returns a writable view of a's own storage.
func (a *Array[S]) MutableBytes() []byte {
	return a.buf[:sizeOf[S]()]
}

// Equal reports byte-wise equality.
func (a Array[S]) Equal(other Array[S]) bool {
	return a.buf == other.buf
}

// String returns the uppercase hex encoding.
func (a Array[S]) String() string {
	return encodeHexUpper(a.buf[:sizeOf[S]()])
}

func (a Array[S]) MarshalJSON() ([]byte, error) {
	return EncodeJSON(a.buf[:sizeOf[S]()]), nil
}

func (a *Array[S]) UnmarshalJSON(data []byte) error {
	b, err := DecodeJSON(data)
	if err != nil {
		return err
	}
	decoded, err := New[S](b)
	if err != nil {
		return err
	}
	*a = decoded
	return nil
}
