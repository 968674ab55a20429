package decoder

import "encoding/hex"

var _ Decode = (*HexDecoder)(nil)

type HexDecoder struct {
	Prefixed bool
}

// Decode renders lowercase hex, 0x prefixed when Prefixed is set.
func (h *HexDecoder) Decode(data []byte) string {
	if h.Prefixed {
		return "0x" + hex.EncodeToString(data)
	}
	return hex.EncodeToString(data)
}
