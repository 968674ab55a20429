package decoder

import (
	"github.com/mr-tron/base58"
)

var _ Decode = (*Base58Decoder)(nil)

type Base58Decoder struct {
}

// Decode re-encodes the buffer, giving the canonical form of the validated text.
func (d *Base58Decoder) Decode(buf []byte) string {
	return base58.Encode(buf)
}
