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
	"sort"

	"go.uber.org/zap"
)

// EncodeFunc encodes a buffer of a registered size.
type EncodeFunc func(src []byte) (string, error)

// ValidateFunc verifies base58 text of a registered size and returns the
// bytes it decodes to.
type ValidateFunc func(text string) ([]byte, error)

// Registration describes a size picked by name at runtime, for tools that
// cannot name the size type statically.
type Registration struct {
	Name      string // unique name
	Title     string // human-readable name
	MaxStrLen int
	BufLen    int

	Encode   EncodeFunc
	Validate ValidateFunc
}

// NewRegistration binds the codecs of size A under name.
func NewRegistration[A any, P Storage[A]](name, title string) *Registration {
	bufLen := bufLenOf[A, P]()

	return &Registration{
		Name:      name,
		Title:     title,
		MaxStrLen: maxStrLenOf[A, P](),
		BufLen:    bufLen,
		Encode: func(src []byte) (string, error) {
			if len(src) != bufLen {
				return "", &LengthError{Expected: bufLen, Actual: len(src)}
			}

			encoded := Encode[A, P](src)
			return encoded.String(), nil
		},
		Validate: func(text string) ([]byte, error) {
			_, buf, err := DecodeFrom[A, P](text)
			return buf, err
		},
	}
}

var registry = make(map[string]*Registration)

func init() {
	Register(NewRegistration[Len11]("u64", "8-byte integer"))
	Register(NewRegistration[Len22]("hash16", "16-byte hash"))
	Register(NewRegistration[Len44]("pubkey", "32-byte public key"))
	Register(NewRegistration[Len88]("signature", "64-byte signature"))
}

func Register(reg *Registration) {
	if reg.Name == "" {
		zlog.Fatal("name cannot be blank")
	} else if _, ok := registry[reg.Name]; ok {
		zlog.Fatal("already registered", zap.String("name", reg.Name))
	}

	if tracer.Enabled() {
		zlog.Debug("registering size", zap.String("name", reg.Name), zap.Int("max_str_len", reg.MaxStrLen), zap.Int("buf_len", reg.BufLen))
	}
	registry[reg.Name] = reg
}

// Lookup returns the registered size name or an error if there is none.
func Lookup(name string) (*Registration, error) {
	reg, found := registry[name]
	if !found {
		return nil, fmt.Errorf("no such size registered %q, known sizes are %v", name, Names())
	}
	return reg, nil
}

// ByName returns a registered size
func ByName(name string) *Registration {
	r, ok := registry[name]
	if !ok {
		return nil
	}
	return r
}

// Names returns the registered size names, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
