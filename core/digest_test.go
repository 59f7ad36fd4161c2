// Copyright (c) 2016-2019 Uber Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDigestFromHex(t *testing.T) {
	require := require.New(t)

	hex128 := strings.Repeat("a", 128)
	d, err := NewDigestFromHex(SHA512, hex128)
	require.NoError(err)
	require.Equal(SHA512, d.Algo())
	require.Equal(hex128, d.Hex())
	require.Equal("sha512:"+hex128, d.String())
}

func TestNewDigestFromHexErrors(t *testing.T) {
	tests := []struct {
		desc string
		algo string
		hex  string
	}{
		{"unsupported algo", "md5", strings.Repeat("a", 32)},
		{"wrong length", SHA512, strings.Repeat("a", 64)},
		{"invalid hex", SHA256, strings.Repeat("z", 64)},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			_, err := NewDigestFromHex(test.algo, test.hex)
			require.Error(t, err)
		})
	}
}

func TestParseDigest(t *testing.T) {
	require := require.New(t)

	hex64 := strings.Repeat("a", 64)
	d, err := ParseDigest(SHA256 + ":" + hex64)
	require.NoError(err)
	require.Equal(SHA256, d.Algo())
	require.Equal(hex64, d.Hex())
	require.Equal(SHA256+":"+hex64, d.String())
}

func TestParseDigestErrors(t *testing.T) {
	tests := []struct {
		desc  string
		input string
	}{
		{"empty", ""},
		{"no algo", strings.Repeat("a", 64)},
		{"unsupported algo", "sha1:" + strings.Repeat("a", 64)},
		{"invalid hex", "sha256:" + strings.Repeat("z", 64)},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			_, err := ParseDigest(test.input)
			require.Error(t, err)
		})
	}
}

func TestDigestFixtureRoundTrip(t *testing.T) {
	d := SHA512DigestFixture()
	result, err := ParseDigest(d.String())
	require.NoError(t, err)
	require.Equal(t, d, result)
}
