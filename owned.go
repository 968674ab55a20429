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
	"bytes"
	"fmt"

	"github.com/mr-tron/base58"
)

// String is a fixed capacity base58 encoded string of a fixed-size buffer.
// Its storage is the array A, so a String lives wherever its owner puts it
// and never grows.
//
// The zero value is an empty String. It decodes to BufLen zero bytes.
//
// Only storage[0:Len()) is ever exposed; the rest of the storage is kept
// zeroed so two Strings holding the same text compare equal with ==.
type String[A any, P Storage[A]] struct {
	n   int
	buf A
}

// Encode returns the base58 encoding of src. It panics with a *LengthError
// if len(src) is not BufLen.
func Encode[A any, P Storage[A]](src []byte) String[A, P] {
	var s String[A, P]
	s.EncodeFrom(src)
	return s
}

// EncodeFrom encodes src onto s, overwriting previous data. It panics with a
// *LengthError if len(src) is not BufLen.
func (s *String[A, P]) EncodeFrom(src []byte) {
	mustBufLen(s.BufLen(), len(src))

	storage := s.storage()
	encoded := base58.Encode(src)
	if len(encoded) > len(storage) {
		panic(fmt.Errorf("bs58fixed: encoding of %d bytes is %d characters long, capacity is %d", len(src), len(encoded), len(storage)))
	}

	n := copy(storage, encoded)
	for i := n; i < len(storage); i++ {
		storage[i] = 0
	}
	s.n = n
}

// Decode returns the BufLen bytes s encodes.
func (s *String[A, P]) Decode() []byte {
	out := make([]byte, s.BufLen())
	s.DecodeOnto(out)
	return out
}

// DecodeOnto decodes s onto dst, overwriting previous data. It panics with a
// *LengthError if len(dst) is not BufLen.
func (s *String[A, P]) DecodeOnto(dst []byte) {
	mustBufLen(s.BufLen(), len(dst))
	decodeValidated(s.String(), dst)
}

// Bytes returns a copy of the encoded text as bytes.
func (s *String[A, P]) Bytes() []byte {
	return append([]byte(nil), s.text()...)
}

func (s String[A, P]) String() string {
	return string(s.text())
}

// Len is the length of the encoded text.
func (s *String[A, P]) Len() int { return s.n }

func (s *String[A, P]) IsEmpty() bool { return s.n == 0 }

// MaxStrLen is the capacity of s.
func (s *String[A, P]) MaxStrLen() int { return len(s.storage()) }

// BufLen is the length of the buffers s encodes and decodes.
func (s *String[A, P]) BufLen() int { return BufLen(s.MaxStrLen()) }

func (s *String[A, P]) Equal(other *String[A, P]) bool {
	return bytes.Equal(s.text(), other.text())
}

// Compare orders Strings by their encoded text.
func (s *String[A, P]) Compare(other *String[A, P]) int {
	return bytes.Compare(s.text(), other.text())
}

func (s String[A, P]) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText validates text like DecodeFrom does and copies it into s.
// On error s is left untouched.
func (s *String[A, P]) UnmarshalText(text []byte) error {
	view, _, err := DecodeFrom[A, P](string(text))
	if err != nil {
		return err
	}

	*s = view.ToOwned()
	return nil
}

// text aliases the valid part of the storage.
func (s *String[A, P]) text() []byte {
	return s.storage()[:s.n:s.n]
}

func (s *String[A, P]) storage() []byte {
	return P(&s.buf).Slice()
}
