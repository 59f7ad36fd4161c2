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
	"context"
	"io"

	"github.com/sfsio/sfs/pump"
)

// DigestBlob is the result of a checksum operation, or the receipt produced
// by a completed write stream.
type DigestBlob struct {
	Volume   string
	Primary  bool
	Replica  bool
	Position int64
	Length   int64
	Digests  map[string]Digest
}

// HeaderBlob carries the response headers of a successful delete or
// acknowledge call. Its presence signals the operation took effect; a nil
// HeaderBlob returned with a nil error signals the target was already in
// the desired state.
type HeaderBlob struct {
	Header map[string][]string
}

// ReadStreamBlob is an open, paused response body ready to be drained by a
// consumer. Length is the full payload length as reported by the peer.
type ReadStreamBlob struct {
	Length int64
	Body   io.ReadCloser
}

// Produce pumps b's body into sink, honouring ctx cancellation, and closes
// the body once the copy settles.
func (b *ReadStreamBlob) Produce(ctx context.Context, sink io.Writer) error {
	defer b.Body.Close()
	return pump.Pump(ctx, sink, b.Body)
}

// WriteStreamBlob is bound to a single in-flight write. Writing src to it
// produces exactly one DigestBlob receipt, or an error.
type WriteStreamBlob interface {
	// Send streams src to the peer and returns the receipt on success.
	Send(src io.Reader) (*DigestBlob, error)
}
