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

// Package blobserver implements the server side of the peer wire protocol
// ("/blob/001…") that remoteblob.Client calls into on the other end. It
// backs the protocol onto a pluggable volume.Store so a node can act as a
// peer for other nodes' remote reads and writes.
package blobserver

import "time"

// Config defines Server configuration.
type Config struct {
	// Secret authenticates incoming requests via the
	// X-SFS-Remote-Node-Token header. Must match every peer's configured
	// cluster secret; left empty, it is filled from the cluster secret at
	// startup.
	Secret []byte `yaml:"secret"`

	// RequestTimeout is the threshold above which a request is logged and
	// counted as slow. The request itself is not aborted.
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

func (c Config) applyDefaults() Config {
	if c.RequestTimeout == 0 {
		c.RequestTimeout = 15 * time.Second
	}
	return c
}
