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
	"runtime"

	"gopkg.in/yaml.v3"
)

// Array is a fixed-size byte buffer that travels as base58 text. It renders
// through String and parses through the Str validation path, so it can be
// used as a field of JSON or YAML documents:
//
//	type Account struct {
//		Owner bs58fixed.PubkeyArray `json:"owner" yaml:"owner"`
//	}
//
// The buffer lives in the first BufLen bytes of an A; the remaining bytes
// stay zero. The zero value is the all-zero buffer.
type Array[A any, P Storage[A]] struct {
	buf A
}

// ArrayFromBytes copies b into a new Array. It panics with a *LengthError if
// len(b) is not BufLen.
func ArrayFromBytes[A any, P Storage[A]](b []byte) Array[A, P] {
	var a Array[A, P]
	a.SetBytes(b)
	return a
}

// ParseArray decodes base58 text of a BufLen bytes buffer.
func ParseArray[A any, P Storage[A]](text string) (Array[A, P], error) {
	var a Array[A, P]
	if err := a.UnmarshalText([]byte(text)); err != nil {
		return Array[A, P]{}, err
	}

	return a, nil
}

// MustParseArray is ParseArray for values crossing a boundary that promises
// they are valid already, like a foreign runtime call. A failed conversion
// panics with the location of the caller.
func MustParseArray[A any, P Storage[A]](text string) Array[A, P] {
	a, err := ParseArray[A, P](text)
	if err != nil {
		panic(ConversionFailure(err, 1))
	}

	return a
}

// ConversionFailure formats the panic value raised when a value fails to
// convert at a boundary. It reports the location skip frames above its
// caller; 0 is the caller itself.
func ConversionFailure(err error, skip int) error {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return fmt.Errorf("(Converting type failed) %s", err)
	}

	return fmt.Errorf("(Converting type failed) %s (%s:%d)", err, file, line)
}

// Bytes returns the buffer. The slice aliases a and may be modified in place.
func (a *Array[A, P]) Bytes() []byte {
	n := bufLenOf[A, P]()
	return P(&a.buf).Slice()[:n:n]
}

// SetBytes overwrites the buffer with b. It panics with a *LengthError if
// len(b) is not BufLen.
func (a *Array[A, P]) SetBytes(b []byte) {
	dst := a.Bytes()
	mustBufLen(len(dst), len(b))
	copy(dst, b)
}

func (a *Array[A, P]) IsZero() bool {
	for _, b := range a.Bytes() {
		if b != 0 {
			return false
		}
	}
	return true
}

func (a *Array[A, P]) BufLen() int { return bufLenOf[A, P]() }

func (a *Array[A, P]) MaxStrLen() int { return maxStrLenOf[A, P]() }

// Encode returns the owned encoded form of a.
func (a *Array[A, P]) Encode() String[A, P] {
	return Encode[A, P](a.Bytes())
}

func (a Array[A, P]) String() string {
	encoded := a.Encode()
	return encoded.String()
}

func (a Array[A, P]) MarshalText() ([]byte, error) {
	encoded := a.Encode()
	return []byte(encoded.String()), nil
}

// UnmarshalText parses base58 text of a BufLen bytes buffer. On error a is
// left untouched.
func (a *Array[A, P]) UnmarshalText(text []byte) error {
	bufLen := bufLenOf[A, P]()

	var decoded A
	if _, err := DecodeFromOnto[A, P](string(text), P(&decoded).Slice()[:bufLen]); err != nil {
		return fmt.Errorf("expected base58 encoded string of byte buffer of len %d: %w", bufLen, err)
	}

	a.buf = decoded
	return nil
}

func (a Array[A, P]) MarshalYAML() (interface{}, error) {
	return a.String(), nil
}

func (a *Array[A, P]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected base58 encoded string of byte buffer of len %d", value.Line, a.BufLen())
	}

	return a.UnmarshalText([]byte(value.Value))
}
