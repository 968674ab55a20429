package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDecoder(t *testing.T) {
	tests := []struct {
		name        string
		scheme      string
		input       string
		expect      []byte
		expectError bool
	}{
		{name: "hex", scheme: "hex", input: "deadbeef", expect: []byte{0xde, 0xad, 0xbe, 0xef}},
		{name: "hex prefixed", scheme: "hex", input: "0xdeadbeef", expect: []byte{0xde, 0xad, 0xbe, 0xef}},
		{name: "hex invalid", scheme: "hex", input: "zz", expectError: true},
		{name: "ascii", scheme: "ascii", input: "key", expect: []byte("key")},
		{name: "base58", scheme: "base58", input: "2NEpo7TZRRrLZSi2U", expect: []byte("Hello World!")},
		{name: "base58 leading zeros", scheme: "base58", input: "111", expect: []byte{0, 0, 0}},
		{name: "base58 invalid", scheme: "base58", input: "0OIl", expectError: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			decoder, err := NewDecoder(test.scheme)
			require.NoError(t, err)

			out, err := decoder.Decode(test.input)
			if test.expectError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, test.expect, out)
			}
		})
	}
}

func TestNewDecoder_Unknown(t *testing.T) {
	_, err := NewDecoder("solanaATL")
	assert.EqualError(t, err, `unknown decoding scheme "solanaATL"`)
}
