package hashing

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"symbol.dev/sdk/internal/testkit"
)

const knownInput = "9F2FCC7C90DE090D6B87CD7E9718C1EA6CB21118FC2D5DE9F97E5DB6AC1E9C10"

func TestHasher512KnownAnswers(t *testing.T) {
	cases := []struct {
		mode HashMode
		want string
	}{
		{SHA2_512, "FF6EBF72E7E9BC05E06A3DDBAC4298B68DCF50374BD74E910977A496F41270931268FABB3774B73EEC64E5D729C75D0887112E2FAD4DFA7DCEB8D1D97A3DFE44"},
		{Keccak, "1EAFEDCE7292BA73B80AE6151745F43AC95BFC9F31694D422473ABCA2E69D695CB6544DB65506078CB20DBE0762F84AA6AFD14A60AB597955BE73F3F5C50F7A8"},
	}
	for _, tc := range cases {
		t.Run(tc.mode.String(), func(t *testing.T) {
			input, err := Hash256FromHex(knownInput)
			require.NoError(t, err)

			out := Zero512()
			h := NewHasher512(tc.mode)
			h.Update(input.Bytes())
			h.FinalizeInto(out.MutableBytes())

			want, err := Hash512FromHex(tc.want)
			require.NoError(t, err)
			require.True(t, want.Equal(out), "got %s", out)
		})
	}
}

func TestHasher512SplitUpdates(t *testing.T) {
	input, err := Hash256FromHex(knownInput)
	require.NoError(t, err)

	whole := Zero512()
	h := NewHasher512(Keccak)
	h.Update(input.Bytes())
	h.FinalizeInto(whole.MutableBytes())

	split := Zero512()
	h.Update(input.Bytes()[:7])
	h.Update(input.Bytes()[7:])
	h.FinalizeInto(split.MutableBytes())

	require.True(t, whole.Equal(split))
	require.Equal(t, Keccak, h.Mode())
}

func TestHasher512FinalizeRequires64Bytes(t *testing.T) {
	require.Panics(t, func() {
		NewHasher512(SHA2_512).FinalizeInto(make([]byte, 32))
	})
}

func TestAddressHashersOfEmptyInput(t *testing.T) {
	require.Equal(t,
		"C5D2460186F7233C927E7DB2DCC703C0E500B653CA82273B7BFAD8045D85A470",
		Keccak256.Sum256().String())
	require.Equal(t,
		"A7FFC6F8BF1ED76651C14756A061D662F580FF4DE43B49FA82D80A4B80F8434A",
		SHA3_256.Sum256().String())
}

func TestSum256ConcatenatesParts(t *testing.T) {
	a := SHA3_256.Sum256([]byte{0x98}, []byte("body"))
	b := SHA3_256.Sum256(append([]byte{0x98}, []byte("body")...))
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(Keccak256.Sum256([]byte{0x98}, []byte("body"))))
}

func TestRipemd160OfEmptyInput(t *testing.T) {
	sum := Ripemd160(nil)
	require.Equal(t, "9c1185a5c5e9fc54612808977ee8f548b2258d31", hex.EncodeToString(sum[:]))
}

func TestHash256Conformance(t *testing.T) {
	testkit.RunContainerConformance(t, 32, func(b []byte) (testkit.Container, error) {
		return NewHash256(b)
	})
}

func TestHash512Conformance(t *testing.T) {
	testkit.RunContainerConformance(t, 64, func(b []byte) (testkit.Container, error) {
		return NewHash512(b)
	})
}

func TestHash512Erase(t *testing.T) {
	raw := testkit.RandBytes(t, 64)
	h, err := NewHash512(raw)
	require.NoError(t, err)
	require.Equal(t, raw, h.Bytes())

	h.Erase()
	require.Equal(t, make([]byte, 64), h.Bytes())
}

func TestUnknownModesPanic(t *testing.T) {
	require.Panics(t, func() { NewHasher512(HashMode(9)) })
	require.Panics(t, func() { AddressHasher(9).New() })
	require.Equal(t, "HashMode(9)", HashMode(9).String())
}
