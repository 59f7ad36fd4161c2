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
package blobserver

import "github.com/uber-go/tally"

type metrics struct {
	checksums    tally.Counter
	deletes      tally.Counter
	acks         tally.Counter
	canPuts      tally.Counter
	reads        tally.Counter
	writes       tally.Counter
	writeBytes   tally.Counter
	authFailures tally.Counter
	slowRequests tally.Counter
}

func newMetrics(s tally.Scope) *metrics {
	return &metrics{
		checksums:    s.Counter("checksums"),
		deletes:      s.Counter("deletes"),
		acks:         s.Counter("acks"),
		canPuts:      s.Counter("can_puts"),
		reads:        s.Counter("reads"),
		writes:       s.Counter("writes"),
		writeBytes:   s.Counter("write_bytes"),
		authFailures: s.Counter("auth_failures"),
		slowRequests: s.Counter("slow_requests"),
	}
}
