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

// Package bs58fixed encodes fixed-size byte buffers, like public keys, as
// base58 text held in fixed-capacity storage. The maximum text length is
// carried by the type and the buffer length is derived from it with BufLen.
package bs58fixed

import (
	"fmt"
	"math/big"
)

// MaxStrLenLimit is the largest maximum string length for which BufLen is
// known to never exceed ExactBufLen. At 676 the integer approximation claims
// one byte more than 58^676 can hold.
const MaxStrLenLimit = 675

// BufLen returns the number of raw bytes that can be base58 encoded without
// the encoded text exceeding maxStrLen characters.
//
// Let lb() be log base 2:
//
//	256 ^ BUF_LEN = 58 ^ MAX_STR_LEN
//	BUF_LEN = lb(58 ^ MAX_STR_LEN) / lb(256)
//	        = MAX_STR_LEN * lb(58) / 8
//
//	lb(58) = 5.857980995127572
//
// The ratio is approximated as 5858/8000 and the result is rounded down so the
// derived length is never larger than what fits in maxStrLen characters.
//
// BufLen panics if maxStrLen is negative or larger than MaxStrLenLimit.
func BufLen(maxStrLen int) int {
	if maxStrLen < 0 || maxStrLen > MaxStrLenLimit {
		panic(fmt.Errorf("bs58fixed: max string length %d out of supported range [0, %d]", maxStrLen, MaxStrLenLimit))
	}

	return maxStrLen * 5858 / 8000
}

// ExactBufLen returns the largest n such that 256^n <= 58^maxStrLen, that is
// the largest byte count whose every value encodes in at most maxStrLen
// characters. It is slow and meant to check BufLen, not to replace it.
func ExactBufLen(maxStrLen int) int {
	if maxStrLen < 0 {
		panic(fmt.Errorf("bs58fixed: negative max string length %d", maxStrLen))
	}

	limit := new(big.Int).Exp(big.NewInt(58), big.NewInt(int64(maxStrLen)), nil)

	// 256^n <= limit <=> n*8 <= bitlen(limit)-1
	return (limit.BitLen() - 1) / 8
}
