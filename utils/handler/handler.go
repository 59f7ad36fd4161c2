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

// Package handler provides a status-carrying error type for HTTP handlers,
// so a single returned error can drive both the response status code and
// the logged message.
package handler

import (
	"fmt"
	"net/http"
)

// Error is an error which carries an HTTP status code and optional response
// headers.
type Error struct {
	status int
	header http.Header
	msg    string
}

// Errorf creates an Error with status 500 and a formatted message. Use
// Status to override the status code.
func Errorf(format string, args ...interface{}) *Error {
	return &Error{
		status: http.StatusInternalServerError,
		header: http.Header{},
		msg:    fmt.Sprintf(format, args...),
	}
}

// ErrorStatus creates an Error with no message for status.
func ErrorStatus(status int) *Error {
	return &Error{status: status, header: http.Header{}}
}

// Status sets the HTTP status code of e.
func (e *Error) Status(s int) *Error {
	e.status = s
	return e
}

// Header adds a response header to be written alongside e.
func (e *Error) Header(k, v string) *Error {
	e.header.Add(k, v)
	return e
}

// GetStatusCode returns e's HTTP status code.
func (e *Error) GetStatusCode() int {
	return e.status
}

// GetHeader returns e's response headers.
func (e *Error) GetHeader() http.Header {
	return e.header
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.msg == "" {
		return fmt.Sprintf("status %d", e.status)
	}
	return e.msg
}

// Write writes e as an HTTP response onto w.
func (e *Error) Write(w http.ResponseWriter) {
	for k, vs := range e.header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(e.status)
	if e.msg != "" {
		fmt.Fprint(w, e.msg)
	}
}

// Wrap converts f into an http.HandlerFunc: a returned *Error is written as
// its configured status and message; any other error is written as a bare
// 500; a nil error means f already wrote its own response.
func Wrap(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := f(w, r)
		if err == nil {
			return
		}
		if herr, ok := err.(*Error); ok {
			herr.Write(w)
			return
		}
		Errorf("%s", err).Write(w)
	}
}
