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
	"math/rand"
	"strings"
	"testing"

	btcbase58 "github.com/btcsuite/btcd/btcutil/base58"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStr_Sizes(t *testing.T) {
	t.Run("b_0_0", func(t *testing.T) { testStrValidation[Len0](t, 0) })
	t.Run("b_1_0", func(t *testing.T) { testStrValidation[Len1](t, 0) })
	t.Run("b_2_1", func(t *testing.T) { testStrValidation[Len2](t, 1) })
	t.Run("b_3_2", func(t *testing.T) { testStrValidation[Len3](t, 2) })
	t.Run("b_4_2", func(t *testing.T) { testStrValidation[Len4](t, 2) })
	t.Run("b_5_3", func(t *testing.T) { testStrValidation[Len5](t, 3) })
	t.Run("b_6_4", func(t *testing.T) { testStrValidation[Len6](t, 4) })
	t.Run("b_7_5", func(t *testing.T) { testStrValidation[Len7](t, 5) })
	t.Run("b_8_5", func(t *testing.T) { testStrValidation[Len8](t, 5) })
	t.Run("b_11_8", func(t *testing.T) { testStrValidation[Len11](t, 8) })
	t.Run("b_16_11", func(t *testing.T) { testStrValidation[Len16](t, 11) })
	t.Run("b_22_16", func(t *testing.T) { testStrValidation[Len22](t, 16) })
	t.Run("b_44_32", func(t *testing.T) { testStrValidation[Len44](t, 32) })
	t.Run("b_88_64", func(t *testing.T) { testStrValidation[Len88](t, 64) })
}

func testStrValidation[A any, P Storage[A]](t *testing.T, bufLen int) {
	rng := rand.New(rand.NewSource(int64(bufLen) + 1))

	for i := 0; i < propertyRuns; i++ {
		v := RandomBytes(rng, rng.Intn(2*bufLen+1))
		text := base58.Encode(v)

		s, buf, err := DecodeFrom[A, P](text)
		if len(v) != bufLen {
			require.Error(t, err, "input of %d bytes", len(v))
			assert.ErrorIs(t, err, ErrNotOfBufLen)
			assert.NotErrorIs(t, err, ErrInvalidBase58)
			assert.Nil(t, buf)
			continue
		}

		require.NoError(t, err)
		assert.Equal(t, text, s.String())
		assert.Equal(t, v, buf)
		assert.Equal(t, v, s.Decode())
		if bufLen > 0 {
			assert.Equal(t, btcbase58.Decode(text), buf)
		}

		owned := s.ToOwned()
		assert.Equal(t, text, owned.String())
		assert.Equal(t, v, owned.Decode())
	}
}

func TestStr_FormatErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"zero digit", "0vJ9JU1bJJE96FWSJKvHsmmFADCg4gpZQff4P3bkLKi"},
		{"capital o", "4vJ9JU1bJJE96FWSJKvHsmmFADCg4gpZQff4P3bkLKO"},
		{"capital i", "I"},
		{"lower l", "4vJ9JU1bJJE96FWSJKvHsmmFADCg4gpZQff4P3bkLKl"},
		{"punctuation", "4vJ9JU1bJJE96FWSJKvHsmm!ADCg4gpZQff4P3bkLKi"},
		{"whitespace", " 4vJ9JU1bJJE96FWSJKvHsmmFADCg4gpZQff4P3bkLKi"},
		{"non ascii", "4vJ9JU1bJJE96FWSJKvHsmmFADCg4gpZQff4P3bkLKü"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dst := Repeat(0xaa, 32)
			_, err := DecodeFromOnto[Len44](test.text, dst)
			require.Error(t, err)

			assert.ErrorIs(t, err, ErrInvalidBase58)
			assert.NotErrorIs(t, err, ErrNotOfBufLen)

			var formatErr *FormatError
			require.True(t, errors.As(err, &formatErr))
			assert.Equal(t, test.text, formatErr.Text)
			assert.Error(t, formatErr.Err)

			assert.Equal(t, Repeat(0xaa, 32), dst, "destination must not be written on error")
		})
	}
}

func TestStr_LengthErrors(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		actual int
	}{
		{"empty", "", 0},
		{"one short", "4vJ9JU1bJJE96FWSJKvHsmmFADCg4gpZQff4P3bkLK", 31},
		{"leading zero bytes", "111111111111111111111111111111111", 33},
		{"signature", "67rpwLCuS5DGA8KGZXKsVQ7dnPb9goRLoKfgGbLfQg9WoLUgNY77E2jT11fem3coV9nAkguBACzrU1iyZM4B8roQ", -1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, _, err := DecodeFrom[Len44](test.text)
			require.Error(t, err)

			var lengthErr *LengthError
			require.True(t, errors.As(err, &lengthErr))
			assert.Equal(t, 32, lengthErr.Expected)
			assert.Equal(t, test.actual, lengthErr.Actual)
			assert.EqualError(t, err, (&LengthError{Expected: 32, Actual: test.actual}).Error())
		})
	}
}

func TestStr_OversizedText(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		expectError error
	}{
		{"valid alphabet", strings.Repeat("z", 100_000), ErrNotOfBufLen},
		{"leading ones", strings.Repeat("1", 100_000), ErrNotOfBufLen},
		{"invalid digit last", strings.Repeat("z", 100_000) + "0", ErrInvalidBase58},
		{"high bit", strings.Repeat("z", 100_000) + "ü", ErrInvalidBase58},
		{"one past capacity", strings.Repeat("z", 45), ErrNotOfBufLen},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dst := Repeat(0xaa, 32)
			_, err := DecodeFromOnto[Len44](test.text, dst)
			require.Error(t, err)
			assert.ErrorIs(t, err, test.expectError)
			assert.Equal(t, Repeat(0xaa, 32), dst)

			var lengthErr *LengthError
			if errors.As(err, &lengthErr) {
				assert.Equal(t, -1, lengthErr.Actual)
				assert.EqualError(t, err, "bytes not of correct length: expected 32 bytes, got more")
			}
		})
	}
}

func TestStr_OversizedTextThroughArray(t *testing.T) {
	_, err := ParseArray[Len44](strings.Repeat("z", 100_000))
	assert.ErrorIs(t, err, ErrNotOfBufLen)
}

func TestStr_EmptyTextOfEmptyBuffer(t *testing.T) {
	s, buf, err := DecodeFrom[Len1]("")
	require.NoError(t, err)
	assert.Empty(t, buf)
	assert.Equal(t, "", s.String())
	assert.Empty(t, s.Decode())
}

func TestStr_DecodeFromOntoWrongLength(t *testing.T) {
	assert.PanicsWithError(t, "bytes not of correct length: expected 32 bytes, got 31", func() {
		DecodeFromOnto[Len44]("11111111111111111111111111111111", make([]byte, 31))
	})
}

func TestStr_Accessors(t *testing.T) {
	text := "4vJ9JU1bJJE96FWSJKvHsmmFADCg4gpZQff4P3bkLKi"
	s, _, err := DecodeFrom[Len44](text)
	require.NoError(t, err)

	assert.Equal(t, text, s.String())
	assert.Equal(t, []byte(text), s.Bytes())
	assert.Equal(t, len(text), s.Len())
	assert.Equal(t, 44, s.MaxStrLen())
	assert.Equal(t, 32, s.BufLen())

	dst := make([]byte, 32)
	s.DecodeOnto(dst)
	assert.Equal(t, Repeat(1, 32), dst)

	marshalled, err := s.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, text, string(marshalled))
}

func TestStr_ZeroValue(t *testing.T) {
	var s PubkeyStr

	assert.Equal(t, "", s.String())
	assert.Equal(t, make([]byte, 32), s.Decode())

	owned := s.ToOwned()
	assert.True(t, owned.IsEmpty())
}

func TestStr_InterchangeableWithString(t *testing.T) {
	key := Repeat(0xff, 32)
	key[0] = 0

	owned := Encode[Len44](key)
	view, buf, err := DecodeFrom[Len44](owned.String())
	require.NoError(t, err)

	assert.Equal(t, key, buf)
	assert.True(t, view.ToOwned() == owned)

	other, _, err := DecodeFrom[Len44]("11111111111111111111111111111111")
	require.NoError(t, err)
	assert.Equal(t, -1, other.Compare(view))
	assert.Equal(t, 0, view.Compare(view))
	assert.True(t, view != other)
}
