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
	"encoding/hex"
	"math/rand"
)

// B is a shortcut for (must) hex.DecodeString
var B = func(s string) []byte {
	out, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}

	return out
}

// H is a shortcut for hex.EncodeToString
var H = hex.EncodeToString

// Repeat returns a buffer of n bytes all set to value.
func Repeat(value byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = value
	}

	return out
}

// RandomBytes is present only for testing purposes. It fills a buffer of n
// bytes from rng, favoring runs of leading zero bytes since they take the
// special '1' path of the encoding.
func RandomBytes(rng *rand.Rand, n int) []byte {
	out := make([]byte, n)
	rng.Read(out)

	if n > 0 && rng.Intn(4) == 0 {
		zeros := rng.Intn(n + 1)
		for i := 0; i < zeros; i++ {
			out[i] = 0
		}
	}

	return out
}
