// Copyright 2019 dfuse Platform Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bs58fixed

import (
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
)

const btcAlphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// checkAlphabet reports the first byte of text outside the base58 alphabet,
// in a single pass and without decoding.
func checkAlphabet(text string) error {
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c > 127 {
			return fmt.Errorf("high-bit set on invalid digit")
		}
		if strings.IndexByte(btcAlphabet, c) == -1 {
			return fmt.Errorf("invalid base58 digit (%q)", c)
		}
	}
	return nil
}

// decodeText runs the base58 primitive over text. The empty string is the
// encoding of the empty buffer.
func decodeText(text string) ([]byte, error) {
	if text == "" {
		return nil, nil
	}

	return base58.Decode(text)
}

// decodeValidated decodes text that is already known to be the encoding of
// exactly len(dst) bytes. The empty text leaves dst zeroed, which is what the
// zero value of String and Str decode to.
func decodeValidated(text string, dst []byte) {
	if text == "" {
		for i := range dst {
			dst[i] = 0
		}
		return
	}

	decoded, err := decodeText(text)
	if err != nil {
		invariantViolation(text, err)
	}
	if len(decoded) != len(dst) {
		invariantViolation(text, &LengthError{Expected: len(dst), Actual: len(decoded)})
	}

	copy(dst, decoded)
}
