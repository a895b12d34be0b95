package bytearray

import "fmt"

// Size is implemented by the zero-width marker types that fix a container's
// length at compile time.
type Size interface {
	Len() int
}

// MaxSize is the largest length a Size marker may report.
const MaxSize = 64

type (
	Size20 struct{}
	Size24 struct{}
	Size25 struct{}
	Size32 struct{}
	Size64 struct{}
)

func (Size20) Len() int { return 20 }
func (Size24) Len() int { return 24 }
func (Size25) Len() int { return 25 }
func (Size32) Len() int { return 32 }
func (Size64) Len() int { return 64 }

func sizeOf[S Size]() int {
	var s S
	n := s.Len()
	if n < 0 || n > MaxSize {
		panic(fmt.Sprintf("bytearray: size %d outside [0, %d]", n, MaxSize))
	}
	return n
}

// ByteArray is the capability shared by every container.
type ByteArray interface {
	Bytes() []byte
	Len() int
}

// Erasable marks containers whose contents must be erased once no longer
// needed.
type Erasable interface {
	ByteArray
	Erase()
}
