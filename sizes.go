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

// Storage is satisfied by a pointer to a named byte array whose length is the
// maximum encoded string length of a codec. The array type itself is the size
// parameter of String, Str and Array, so two codecs only mix when they were
// declared with the same array type.
//
// Declaring a new size takes two lines:
//
//	type Len30 [30]byte
//
//	func (a *Len30) Slice() []byte { return a[:] }
type Storage[A any] interface {
	*A
	Slice() []byte
}

type Len0 [0]byte
type Len1 [1]byte
type Len2 [2]byte
type Len3 [3]byte
type Len4 [4]byte
type Len5 [5]byte
type Len6 [6]byte
type Len7 [7]byte
type Len8 [8]byte
type Len11 [11]byte
type Len16 [16]byte
type Len22 [22]byte
type Len44 [44]byte
type Len88 [88]byte

func (a *Len0) Slice() []byte { return a[:] }
func (a *Len1) Slice() []byte { return a[:] }
func (a *Len2) Slice() []byte { return a[:] }
func (a *Len3) Slice() []byte { return a[:] }
func (a *Len4) Slice() []byte { return a[:] }
func (a *Len5) Slice() []byte { return a[:] }
func (a *Len6) Slice() []byte { return a[:] }
func (a *Len7) Slice() []byte { return a[:] }
func (a *Len8) Slice() []byte { return a[:] }
func (a *Len11) Slice() []byte { return a[:] }
func (a *Len16) Slice() []byte { return a[:] }
func (a *Len22) Slice() []byte { return a[:] }
func (a *Len44) Slice() []byte { return a[:] }
func (a *Len88) Slice() []byte { return a[:] }

// 32-byte public keys, 44 characters.
type (
	PubkeyString = String[Len44, *Len44]
	PubkeyStr    = Str[Len44, *Len44]
	PubkeyArray  = Array[Len44, *Len44]
)

// 64-byte signatures, 88 characters.
type (
	SignatureString = String[Len88, *Len88]
	SignatureStr    = Str[Len88, *Len88]
	SignatureArray  = Array[Len88, *Len88]
)

func maxStrLenOf[A any, P Storage[A]]() int {
	var storage A
	return len(P(&storage).Slice())
}

func bufLenOf[A any, P Storage[A]]() int {
	return BufLen(maxStrLenOf[A, P]())
}
