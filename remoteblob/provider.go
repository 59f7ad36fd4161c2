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
package remoteblob

// Provider creates Clients scoped to a specific remote node.
type Provider interface {
	Provide(nodeID, addr string) Client
}

// HTTPProvider provides HTTPClients sharing a cluster secret and options.
type HTTPProvider struct {
	secret []byte
	opts   []Option
}

// NewProvider returns a new HTTPProvider authenticated with secret.
func NewProvider(secret []byte, opts ...Option) HTTPProvider {
	return HTTPProvider{secret: secret, opts: opts}
}

// Provide implements Provider.
func (p HTTPProvider) Provide(nodeID, addr string) Client {
	return New(nodeID, addr, p.secret, p.opts...)
}
