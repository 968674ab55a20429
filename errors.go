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
	"errors"
	"fmt"
)

var (
	// ErrInvalidBase58 matches every *FormatError.
	ErrInvalidBase58 = errors.New("invalid base58")
	// ErrNotOfBufLen matches every *LengthError.
	ErrNotOfBufLen = errors.New("bytes not of correct length")
)

// FormatError is returned when the text is not base58 at all.
type FormatError struct {
	Text string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrInvalidBase58, e.Text, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

func (e *FormatError) Is(target error) bool { return target == ErrInvalidBase58 }

// LengthError is returned when a buffer is not of the length a codec expects:
// valid base58 text decoding to the wrong byte count, or a source buffer of
// the wrong size handed to an encoder (where it is raised as a panic).
//
// Actual is -1 when the text is longer than any encoding of Expected bytes
// and was rejected without being decoded; it then decodes to more bytes.
type LengthError struct {
	Expected int
	Actual   int
}

func (e *LengthError) Error() string {
	if e.Actual < 0 {
		return fmt.Sprintf("%s: expected %d bytes, got more", ErrNotOfBufLen, e.Expected)
	}
	return fmt.Sprintf("%s: expected %d bytes, got %d", ErrNotOfBufLen, e.Expected, e.Actual)
}

func (e *LengthError) Is(target error) bool { return target == ErrNotOfBufLen }

// mustBufLen panics when a caller hands over a buffer of the wrong size. This
// is a programming error, never a runtime condition.
func mustBufLen(expected, actual int) {
	if expected != actual {
		panic(&LengthError{Expected: expected, Actual: actual})
	}
}

// invariantViolation is raised when decoding text that construction already
// proved valid fails. Reaching it is a bug in this package.
func invariantViolation(text string, err error) {
	panic(fmt.Errorf("bs58fixed: invariant violated, validated text %q failed to decode: %w", text, err))
}
