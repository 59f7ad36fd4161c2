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

import "time"

// Config defines configuration for the remote node HTTP client.
type Config struct {
	Timeout time.Duration `yaml:"timeout"`
}

// ApplyDefaults fills in Timeout with New's own default when the config
// left it unset, so callers that build Options from Config don't have to
// special-case the zero value themselves.
func (c Config) ApplyDefaults() Config {
	if c.Timeout == 0 {
		c.Timeout = 15 * time.Second
	}
	return c
}
