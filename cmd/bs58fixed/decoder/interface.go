package decoder

import (
	"fmt"
)

// Decode renders a decoded buffer for display.
type Decode interface {
	Decode([]byte) string
}

func NewDecoder(scheme string) (Decode, error) {
	if scheme == "ascii" {
		return &AsciiDecoder{}, nil
	}

	if scheme == "hex" {
		return &HexDecoder{}, nil
	}

	if scheme == "0xhex" {
		return &HexDecoder{Prefixed: true}, nil
	}

	if scheme == "base58" {
		return &Base58Decoder{}, nil
	}

	return nil, fmt.Errorf("unknown decoding scheme %q", scheme)
}
