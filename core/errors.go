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

import "fmt"

// ErrorKind classifies an error surfaced by the remote blob protocol or the
// placement/rebalance logic, for logging and downgrade decisions.
type ErrorKind string

// Error kinds.
const (
	KindTransport           ErrorKind = "transport"
	KindProtocolStatus      ErrorKind = "protocol_status"
	KindProtocolBody        ErrorKind = "protocol_body"
	KindDigestMismatch      ErrorKind = "digest_mismatch"
	KindInsufficientCapacity ErrorKind = "insufficient_capacity"
)

// TransportError occurs on a connection-level failure: refused, reset, DNS
// failure, or request timeout.
type TransportError struct {
	URL     string
	Elapsed string
	Cause   error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error after %s to %s: %s", e.Elapsed, e.URL, e.Cause)
}

// Kind implements classifiedError.
func (e *TransportError) Kind() ErrorKind { return KindTransport }

// ProtocolStatusError occurs when a peer responds with an HTTP status
// outside the endpoint's accepted whitelist.
type ProtocolStatusError struct {
	URL    string
	Status int
	Body   string
}

// Error implements the error interface.
func (e *ProtocolStatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s: %s", e.Status, e.URL, e.Body)
}

// Kind implements classifiedError.
func (e *ProtocolStatusError) Kind() ErrorKind { return KindProtocolStatus }

// ProtocolBodyError occurs when a peer's JSON response envelope is
// unparseable, missing its code field, or carries an unexpected code.
type ProtocolBodyError struct {
	URL string
	Msg string
}

// Error implements the error interface.
func (e *ProtocolBodyError) Error() string {
	return fmt.Sprintf("malformed response body from %s: %s", e.URL, e.Msg)
}

// Kind implements classifiedError.
func (e *ProtocolBodyError) Kind() ErrorKind { return KindProtocolBody }

// DigestMismatchError occurs when two or more write targets in the same
// placement group report disagreeing digests for what should be identical
// payload.
type DigestMismatchError struct {
	Targets []string
	Digests []Digest
}

// Error implements the error interface.
func (e *DigestMismatchError) Error() string {
	return fmt.Sprintf("digest mismatch across %d targets: %v", len(e.Targets), e.Digests)
}

// Kind implements classifiedError.
func (e *DigestMismatchError) Kind() ErrorKind { return KindDigestMismatch }

// InsufficientCapacityError occurs when the placement planner could not
// assign as many targets as were requested.
type InsufficientCapacityError struct {
	Requested int
	Obtained  int
}

// Error implements the error interface.
func (e *InsufficientCapacityError) Error() string {
	return fmt.Sprintf("insufficient capacity: requested %d, obtained %d", e.Requested, e.Obtained)
}

// Kind implements classifiedError.
func (e *InsufficientCapacityError) Kind() ErrorKind { return KindInsufficientCapacity }

// classifiedError is implemented by every error kind above, letting callers
// log a kind without a type switch.
type classifiedError interface {
	error
	Kind() ErrorKind
}

// ClassifyError returns the ErrorKind of err, and false if err does not
// carry one (e.g. a bare Invariant panic recovered by a caller, or an
// unrelated error).
func ClassifyError(err error) (ErrorKind, bool) {
	if ce, ok := err.(classifiedError); ok {
		return ce.Kind(), true
	}
	return "", false
}

// Invariant panics to signal an internal precondition violation. Invariant
// violations are bugs: they are never caught, and must never be reached by
// valid input.
func Invariant(format string, args ...interface{}) {
	panic(fmt.Sprintf("invariant violated: "+format, args...))
}
