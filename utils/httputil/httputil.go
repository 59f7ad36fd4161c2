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

// Package httputil wraps net/http with the send-option idiom used
// throughout this codebase: every request is built from a method/url pair
// plus a list of Options which configure timeouts, TLS, accepted status
// codes, and transport overrides.
package httputil

import (
	"crypto/tls"
	"fmt"
	"io"
	"io/ioutil"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi"
)

// StatusError occurs when an HTTP request's response has an unexpected
// status code.
type StatusError struct {
	Method       string
	URL          string
	Status       int
	Header       http.Header
	ResponseDump string
}

// Error implements the error interface.
func (e StatusError) Error() string {
	return fmt.Sprintf(
		"%s %s %d: %s", e.Method, e.URL, e.Status, e.ResponseDump)
}

// IsStatus returns true if err is a StatusError of the given status.
func IsStatus(err error, status int) bool {
	statusErr, ok := err.(StatusError)
	return ok && statusErr.Status == status
}

// IsNotFound returns true if err is a 404 StatusError.
func IsNotFound(err error) bool { return IsStatus(err, http.StatusNotFound) }

// IsAccepted returns true if err is a 202 StatusError.
func IsAccepted(err error) bool { return IsStatus(err, http.StatusAccepted) }

// IsConflict returns true if err is a 409 StatusError.
func IsConflict(err error) bool { return IsStatus(err, http.StatusConflict) }

// IsForbidden returns true if err is a 403 StatusError.
func IsForbidden(err error) bool { return IsStatus(err, http.StatusForbidden) }

// NetworkError occurs on any transport-level failure (connection refused,
// reset, DNS failure, timeout before a response was received).
type NetworkError struct {
	msg string
}

// Error implements the error interface.
func (e NetworkError) Error() string {
	return fmt.Sprintf("network error: %s", e.msg)
}

// IsNetworkError returns true if err is a NetworkError.
func IsNetworkError(err error) bool {
	_, ok := err.(NetworkError)
	return ok
}

// IsRetryable returns true if err is a 5XX StatusError, which a caller may
// reasonably retry against a different upstream.
func IsRetryable(err error) bool {
	statusErr, ok := err.(StatusError)
	return ok && statusErr.Status >= 500
}

type sendOptions struct {
	timeout       time.Duration
	tls           *tls.Config
	transport     http.RoundTripper
	acceptedCodes map[int]bool
	acceptAll     bool
	header        http.Header
	body          io.Reader
	contentLength int64
}

// Option configures a request.
type Option func(*sendOptions)

// SendTimeout configures the client-side response timeout.
func SendTimeout(timeout time.Duration) Option {
	return func(o *sendOptions) { o.timeout = timeout }
}

// SendTLS configures the TLS client config used for the request.
func SendTLS(c *tls.Config) Option {
	return func(o *sendOptions) { o.tls = c }
}

// SendTransport overrides the http.RoundTripper used to send the request.
// Primarily intended for testing.
func SendTransport(t http.RoundTripper) Option {
	return func(o *sendOptions) { o.transport = t }
}

// SendAcceptedCodes configures the status codes which do not result in a
// StatusError. Only 200 is accepted by default; codes given here are added
// to that set.
func SendAcceptedCodes(codes ...int) Option {
	return func(o *sendOptions) {
		for _, c := range codes {
			o.acceptedCodes[c] = true
		}
	}
}

// SendHeader adds a request header.
func SendHeader(k, v string) Option {
	return func(o *sendOptions) { o.header.Add(k, v) }
}

// SendBody sets the request body.
func SendBody(body io.Reader) Option {
	return func(o *sendOptions) { o.body = body }
}

// SendContentLength declares the request body's length up front. Setting a
// Content-Length header directly is ignored by the transport; for streamed
// bodies whose length it cannot infer, this is the only way to avoid
// chunked encoding.
func SendContentLength(n int64) Option {
	return func(o *sendOptions) { o.contentLength = n }
}

// SendAcceptAll disables status-code checking: the caller inspects
// resp.StatusCode itself. Used by endpoints whose contract is "any status
// below N", which isn't expressible as an enumerated accepted-code set.
func SendAcceptAll() Option {
	return func(o *sendOptions) { o.acceptAll = true }
}

func newSendOptions(opts []Option) *sendOptions {
	o := &sendOptions{
		timeout:       60 * time.Second,
		header:        http.Header{},
		acceptedCodes: map[int]bool{http.StatusOK: true},
		contentLength: -1,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func send(method, rawurl string, opts ...Option) (*http.Response, error) {
	o := newSendOptions(opts)

	req, err := http.NewRequest(method, rawurl, o.body)
	if err != nil {
		return nil, fmt.Errorf("new request: %s", err)
	}
	req.Header = o.header
	if o.contentLength >= 0 {
		req.ContentLength = o.contentLength
	}

	client := &http.Client{Timeout: o.timeout}
	if o.transport != nil {
		client.Transport = o.transport
	} else if o.tls != nil {
		client.Transport = &http.Transport{TLSClientConfig: o.tls}
	}

	resp, err := client.Do(req)
	if err != nil {
		if nerr, ok := err.(net.Error); ok {
			return nil, NetworkError{nerr.Error()}
		}
		return nil, NetworkError{err.Error()}
	}
	if !o.acceptAll && !o.acceptedCodes[resp.StatusCode] {
		defer resp.Body.Close()
		body, _ := ioutil.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, StatusError{
			Method:       method,
			URL:          rawurl,
			Status:       resp.StatusCode,
			Header:       resp.Header,
			ResponseDump: string(body),
		}
	}
	return resp, nil
}

// Get sends a GET request.
func Get(url string, opts ...Option) (*http.Response, error) { return send("GET", url, opts...) }

// Post sends a POST request.
func Post(url string, opts ...Option) (*http.Response, error) { return send("POST", url, opts...) }

// Put sends a PUT request.
func Put(url string, opts ...Option) (*http.Response, error) { return send("PUT", url, opts...) }

// Delete sends a DELETE request.
func Delete(url string, opts ...Option) (*http.Response, error) {
	return send("DELETE", url, opts...)
}

// Head sends a HEAD request.
func Head(url string, opts ...Option) (*http.Response, error) { return send("HEAD", url, opts...) }

// GetQueryArg returns the query argument arg from r, or def if absent.
func GetQueryArg(r *http.Request, arg, def string) string {
	v := r.URL.Query().Get(arg)
	if v == "" {
		return def
	}
	return v
}

// ParseParam parses and URL-unescapes a chi route parameter from r.
func ParseParam(r *http.Request, name string) (string, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return "", fmt.Errorf("param %q not found", name)
	}
	v, err := url.PathUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("unescape %q: %s", name, err)
	}
	return v, nil
}

// EscapeFragment escapes s for safe inclusion as a single URL path/query
// fragment (single-escape, per-segment).
func EscapeFragment(s string) string {
	return strings.ReplaceAll(url.PathEscape(s), "%2F", "/")
}
