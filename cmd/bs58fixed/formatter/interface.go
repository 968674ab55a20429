package formatter

import (
	"fmt"
)

// Decode turns command line input into the raw bytes to encode.
type Decode interface {
	Decode(data string) ([]byte, error)
}

func NewDecoder(scheme string) (Decode, error) {
	if scheme == "ascii" {
		return &AsciiDecoder{}, nil
	}

	if scheme == "hex" {
		return &HexDecoder{}, nil
	}

	if scheme == "base58" {
		return &Base58Decoder{}, nil
	}

	return nil, fmt.Errorf("unknown decoding scheme %q", scheme)
}
