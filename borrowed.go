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
	"strings"
)

// Str is a reference to a caller-owned base58 encoded string of a fixed-size
// buffer. The text is verified to be the encoding of exactly BufLen bytes when
// the Str is built and never again.
//
// The zero value holds the empty text and decodes to BufLen zero bytes.
type Str[A any, P Storage[A]] struct {
	text string
}

// DecodeFrom is DecodeFromOnto returning a freshly allocated buffer.
func DecodeFrom[A any, P Storage[A]](text string) (Str[A, P], []byte, error) {
	buf := make([]byte, bufLenOf[A, P]())
	s, err := DecodeFromOnto[A, P](text, buf)
	if err != nil {
		return Str[A, P]{}, nil, err
	}

	return s, buf, nil
}

// DecodeFromOnto verifies that text is the base58 encoding of a buffer of
// BufLen bytes and decodes it onto dst. It returns a *FormatError when text is
// not base58 and a *LengthError when it decodes to another byte count; dst is
// not written to on error. Text longer than MaxStrLen is only checked against
// the alphabet, never decoded.
//
// It panics with a *LengthError if len(dst) is not BufLen.
func DecodeFromOnto[A any, P Storage[A]](text string, dst []byte) (Str[A, P], error) {
	bufLen := bufLenOf[A, P]()
	mustBufLen(bufLen, len(dst))

	if len(text) > maxStrLenOf[A, P]() {
		if err := checkAlphabet(text); err != nil {
			return Str[A, P]{}, &FormatError{Text: text, Err: err}
		}
		return Str[A, P]{}, &LengthError{Expected: bufLen, Actual: -1}
	}

	decoded, err := decodeText(text)
	if err != nil {
		return Str[A, P]{}, &FormatError{Text: text, Err: err}
	}
	if len(decoded) != bufLen {
		return Str[A, P]{}, &LengthError{Expected: bufLen, Actual: len(decoded)}
	}

	copy(dst, decoded)
	return Str[A, P]{text: text}, nil
}

// Decode returns the BufLen bytes s encodes.
func (s Str[A, P]) Decode() []byte {
	out := make([]byte, s.BufLen())
	s.DecodeOnto(out)
	return out
}

// DecodeOnto decodes s onto dst, overwriting previous data. It panics with a
// *LengthError if len(dst) is not BufLen.
func (s Str[A, P]) DecodeOnto(dst []byte) {
	mustBufLen(s.BufLen(), len(dst))
	decodeValidated(s.text, dst)
}

// ToOwned copies the text of s into a String of the same size.
func (s Str[A, P]) ToOwned() String[A, P] {
	var out String[A, P]
	storage := out.storage()
	if len(s.text) > len(storage) {
		invariantViolation(s.text, &LengthError{Expected: len(storage), Actual: len(s.text)})
	}

	out.n = copy(storage, s.text)
	return out
}

func (s Str[A, P]) String() string { return s.text }

// Bytes returns a copy of the text as bytes, like String.Bytes.
func (s Str[A, P]) Bytes() []byte { return []byte(s.text) }

func (s Str[A, P]) Len() int { return len(s.text) }

func (s Str[A, P]) MaxStrLen() int { return maxStrLenOf[A, P]() }

func (s Str[A, P]) BufLen() int { return bufLenOf[A, P]() }

// Compare orders views by their text.
func (s Str[A, P]) Compare(other Str[A, P]) int {
	return strings.Compare(s.text, other.text)
}

func (s Str[A, P]) MarshalText() ([]byte, error) {
	return []byte(s.text), nil
}
