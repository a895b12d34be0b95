package bytearray

import (
	"encoding/json"
	"fmt"
	"strconv"

	"symbol.dev/sdk/sdkerr"
)

// decodeHexInto decodes uppercase hex into dst, which fixes the expected
// length. Lowercase digits are rejected. Nibbles are written straight into
// dst so no intermediate copy of the input is made; on failure dst may hold
// a partial decode and callers wipe it.
func decodeHexInto(dst []byte, s string) error {
	if len(s) != 2*len(dst) {
		return sdkerr.New(sdkerr.KindDecode, ruleHexLength,
			fmt.Sprintf("expected %d hex characters, got %d", 2*len(dst), len(s)))
	}
	for i := range dst {
		hi, ok := upperHexNibble(s[2*i])
		if !ok {
			return invalidHexChar(s[2*i], 2*i)
		}
		lo, ok := upperHexNibble(s[2*i+1])
		if !ok {
			return invalidHexChar(s[2*i+1], 2*i+1)
		}
		dst[i] = hi<<4 | lo
	}
	return nil
}

func upperHexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

func invalidHexChar(c byte, offset int) error {
	return sdkerr.New(sdkerr.KindDecode, ruleHexCharset, fmt.Sprintf("invalid hex character %q at offset %d", c, offset))
}

func encodeHexUpper(b []byte) string {
	const digits = "0123456789ABCDEF"
	out := make([]byte, 2*len(b))
	for i, v := range b {
		out[2*i] = digits[v>>4]
		out[2*i+1] = digits[v&0x0f]
	}
	return string(out)
}

// wireForm is the interchange shape of every container: {"bytes":[1,2,...]}.
type wireForm struct {
	Bytes []int `json:"bytes"`
}

// EncodeJSON renders b in the container interchange form.
func EncodeJSON(b []byte) []byte {
	out := make([]byte, 0, 12+4*len(b))
	out = append(out, `{"bytes":[`...)
	for i, v := range b {
		if i > 0 {
			out = append(out, ',')
		}
		out = strconv.AppendUint(out, uint64(v), 10)
	}
	return append(out, "]}"...)
}

// DecodeJSON parses the container interchange form into a new buffer.
func DecodeJSON(data []byte) ([]byte, error) {
	var w wireForm
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, sdkerr.Wrap(sdkerr.KindDecode, ruleJSON, "invalid byte container json", err)
	}
	out := make([]byte, len(w.Bytes))
	for i, v := range w.Bytes {
		if v < 0 || v > 0xff {
			clear(out)
			clear(w.Bytes)
			return nil, sdkerr.New(sdkerr.KindDecode, ruleJSON, fmt.Sprintf("byte value %d out of range at index %d", v, i))
		}
		out[i] = byte(v)
	}
	clear(w.Bytes)
	return out, nil
}
