package bytearray

import (
	"fmt"

	"symbol.dev/sdk/sdkerr"
)

const (
	ruleSize       = "SDK-BYTES-001"
	ruleHexLength  = "SDK-BYTES-002"
	ruleHexCharset = "SDK-BYTES-003"
	ruleJSON       = "SDK-BYTES-004"
)

func sizeMismatch(want, got int) error {
	return sdkerr.New(sdkerr.KindSizeMismatch, ruleSize, fmt.Sprintf("expected %d bytes, got %d", want, got))
}
