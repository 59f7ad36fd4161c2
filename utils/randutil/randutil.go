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

// Package randutil provides random data generators for tests and fixtures.
package randutil

import (
	"fmt"
	"math/rand"
	"time"
)

const textChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Text returns a random alphanumeric string of length n.
func Text(n uint64) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = textChars[rand.Intn(len(textChars))]
	}
	return b
}

// Hex returns a random hex-encoded string of length n.
func Hex(n uint64) string {
	const hexChars = "0123456789abcdef"
	b := make([]byte, n)
	for i := range b {
		b[i] = hexChars[rand.Intn(len(hexChars))]
	}
	return string(b)
}

// Blob returns n random bytes.
func Blob(n uint64) []byte {
	b := make([]byte, n)
	rand.Read(b)
	return b
}

// IP returns a random IPv4 address string.
func IP() string {
	return fmt.Sprintf("%d.%d.%d.%d", rand.Intn(256), rand.Intn(256), rand.Intn(256), rand.Intn(256))
}

// Port returns a random TCP port number.
func Port() int {
	return 1024 + rand.Intn(64512)
}

// Addr returns a random "host:port" address string.
func Addr() string {
	return fmt.Sprintf("%s:%d", IP(), Port())
}

// Duration returns a random duration less than max.
func Duration(max time.Duration) time.Duration {
	return time.Duration(rand.Int63n(int64(max)))
}

// ShuffleInt64s shuffles s in place.
func ShuffleInt64s(s []int64) {
	rand.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}
