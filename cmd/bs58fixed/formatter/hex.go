package formatter

import (
	"encoding/hex"
	"strings"
)

var _ Decode = (*HexDecoder)(nil)

type HexDecoder struct {
}

// Decode accepts an optional 0x prefix.
func (h *HexDecoder) Decode(data string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(data, "0x"))
}
