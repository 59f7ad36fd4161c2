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

// Package remoteblob implements the peer wire protocol client: every
// operation a node needs to perform against a remote node's volumes,
// addressed at http://<host:port>/blob/001....
package remoteblob

import (
	"crypto/tls"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sfsio/sfs/core"
	"github.com/sfsio/sfs/utils/httputil"
)

const _tokenHeader = "X-SFS-Remote-Node-Token"

// Client implements the six remote node operations of the peer wire
// protocol against one particular remote node.
type Client interface {
	NodeID() string
	Addr() string

	Checksum(volumeID string, position, offset, length int64, digestAlgos []string) (*core.DigestBlob, error)
	Delete(volumeID string, position int64) (*core.HeaderBlob, error)
	Acknowledge(volumeID string, position int64) (*core.HeaderBlob, error)
	CanPut(volumeID string) (bool, error)
	CreateReadStream(volumeID string, position, offset, length int64) (*core.ReadStreamBlob, error)
	CreateWriteStream(volumeID string, length int64, digestAlgos []string) (core.WriteStreamBlob, error)
}

// HTTPClient is the Client implementation, bound to one remote node's
// address and cluster-shared authentication secret.
type HTTPClient struct {
	nodeID  string
	addr    string
	secret  []byte
	timeout time.Duration
	tls     *tls.Config
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithTimeout overrides the per-request response timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.timeout = d }
}

// WithTLS configures TLS for the client's transport.
func WithTLS(tls *tls.Config) Option {
	return func(c *HTTPClient) { c.tls = tls }
}

// New returns a new HTTPClient addressed at addr, identifying the remote
// node as nodeID, authenticated with the cluster-shared secret.
func New(nodeID, addr string, secret []byte, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		nodeID:  nodeID,
		addr:    addr,
		secret:  secret,
		timeout: 15 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NodeID returns the identity of the remote node this client is bound to.
func (c *HTTPClient) NodeID() string { return c.nodeID }

// Addr returns the "host:port" address this client is bound to.
func (c *HTTPClient) Addr() string { return c.addr }

func (c *HTTPClient) token() string {
	return base64.StdEncoding.EncodeToString(c.secret)
}

func (c *HTTPClient) url(path string, v url.Values) string {
	u := fmt.Sprintf("http://%s/blob/001%s", c.addr, path)
	if len(v) > 0 {
		u += "?" + v.Encode()
	}
	return u
}

func (c *HTTPClient) keepAliveTimeout() string {
	return strconv.FormatInt(int64(c.timeout/2/time.Millisecond), 10)
}

func digestQueryArgs(v url.Values, algos []string) {
	for _, algo := range algos {
		v.Set("x-computed-digest-"+algo, "true")
	}
}

// Checksum implements checksum(volumeId, position, offset?, length?,
// digestAlgos[]) -> optional DigestBlob. A missing blob is reported either
// as an HTTP 404 or as an envelope code 404; both map to a nil blob.
func (c *HTTPClient) Checksum(
	volumeID string, position, offset, length int64, digestAlgos []string) (*core.DigestBlob, error) {

	v := url.Values{}
	v.Set("node", c.nodeID)
	v.Set("volume", volumeID)
	v.Set("position", strconv.FormatInt(position, 10))
	v.Set("keep_alive_timeout", c.keepAliveTimeout())
	if offset > 0 {
		v.Set("offset", strconv.FormatInt(offset, 10))
	}
	if length > 0 {
		v.Set("length", strconv.FormatInt(length, 10))
	}
	digestQueryArgs(v, digestAlgos)

	u := c.url("/checksum", v)
	start := time.Now()
	r, err := httputil.Get(
		u,
		httputil.SendHeader(_tokenHeader, c.token()),
		httputil.SendTimeout(c.timeout),
		httputil.SendTLS(c.tls),
		httputil.SendAcceptedCodes(http.StatusOK, http.StatusNotFound))
	if err != nil {
		return nil, classify(u, start, err)
	}
	defer r.Body.Close()

	if r.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	env, err := decodeEnvelope(u, r.Body)
	if err != nil {
		return nil, err
	}
	if env.Code == http.StatusNotFound {
		return nil, nil
	}
	return decodeDigestBlob(u, env)
}

// Delete implements delete(volumeId, position) -> optional HeaderBlob.
func (c *HTTPClient) Delete(volumeID string, position int64) (*core.HeaderBlob, error) {
	v := url.Values{}
	v.Set("node", c.nodeID)
	v.Set("volume", volumeID)
	v.Set("position", strconv.FormatInt(position, 10))

	u := c.url("", v)
	start := time.Now()
	r, err := httputil.Delete(
		u,
		httputil.SendHeader(_tokenHeader, c.token()),
		httputil.SendTimeout(c.timeout),
		httputil.SendTLS(c.tls),
		httputil.SendAcceptedCodes(http.StatusNoContent, http.StatusNotModified))
	if err != nil {
		return nil, classify(u, start, err)
	}
	defer r.Body.Close()

	if r.StatusCode == http.StatusNotModified {
		return nil, nil
	}
	return &core.HeaderBlob{Header: map[string][]string(r.Header)}, nil
}

// Acknowledge implements acknowledge(volumeId, position) -> optional
// HeaderBlob. Status mapping is identical to Delete.
func (c *HTTPClient) Acknowledge(volumeID string, position int64) (*core.HeaderBlob, error) {
	v := url.Values{}
	v.Set("node", c.nodeID)
	v.Set("volume", volumeID)
	v.Set("position", strconv.FormatInt(position, 10))

	u := c.url("/ack", v)
	start := time.Now()
	r, err := httputil.Put(
		u,
		httputil.SendHeader(_tokenHeader, c.token()),
		httputil.SendTimeout(c.timeout),
		httputil.SendTLS(c.tls),
		httputil.SendAcceptedCodes(http.StatusNoContent, http.StatusNotModified))
	if err != nil {
		return nil, classify(u, start, err)
	}
	defer r.Body.Close()

	if r.StatusCode == http.StatusNotModified {
		return nil, nil
	}
	return &core.HeaderBlob{Header: map[string][]string(r.Header)}, nil
}

// CanPut implements canPut(volumeId) -> bool.
func (c *HTTPClient) CanPut(volumeID string) (bool, error) {
	v := url.Values{}
	v.Set("node", c.nodeID)
	v.Set("volume", volumeID)

	u := c.url("/canput", v)
	start := time.Now()
	r, err := httputil.Put(
		u,
		httputil.SendHeader(_tokenHeader, c.token()),
		httputil.SendTimeout(c.timeout),
		httputil.SendTLS(c.tls),
		httputil.SendAcceptAll())
	if err != nil {
		return false, classify(u, start, err)
	}
	defer r.Body.Close()
	if r.StatusCode >= 400 {
		return false, &core.ProtocolStatusError{URL: u, Status: r.StatusCode}
	}
	return true, nil
}

// CreateReadStream implements createReadStream(volumeId, position, offset?,
// length?) -> optional ReadStreamBlob. The returned body is left open for
// the caller (typically a Pump) to drain.
func (c *HTTPClient) CreateReadStream(volumeID string, position, offset, length int64) (*core.ReadStreamBlob, error) {
	v := url.Values{}
	v.Set("node", c.nodeID)
	v.Set("volume", volumeID)
	v.Set("position", strconv.FormatInt(position, 10))
	if offset > 0 {
		v.Set("offset", strconv.FormatInt(offset, 10))
	}
	if length > 0 {
		v.Set("length", strconv.FormatInt(length, 10))
	}

	u := c.url("", v)
	start := time.Now()
	r, err := httputil.Get(
		u,
		httputil.SendHeader(_tokenHeader, c.token()),
		httputil.SendTimeout(c.timeout),
		httputil.SendTLS(c.tls),
		httputil.SendAcceptedCodes(http.StatusOK, http.StatusNotFound))
	if err != nil {
		return nil, classify(u, start, err)
	}
	if r.StatusCode == http.StatusNotFound {
		io.Copy(ioutil.Discard, r.Body)
		r.Body.Close()
		return nil, nil
	}

	contentLength, _ := strconv.ParseInt(r.Header.Get("Content-Length"), 10, 64)
	return &core.ReadStreamBlob{Length: contentLength, Body: r.Body}, nil
}

// CreateWriteStream implements createWriteStream(volumeId, length,
// digestAlgos[]) -> WriteStreamBlob.
func (c *HTTPClient) CreateWriteStream(volumeID string, length int64, digestAlgos []string) (core.WriteStreamBlob, error) {
	v := url.Values{}
	v.Set("node", c.nodeID)
	v.Set("volume", volumeID)
	v.Set("keep_alive_timeout", c.keepAliveTimeout())
	digestQueryArgs(v, digestAlgos)

	return &httpWriteStream{
		client: c,
		url:    c.url("", v),
		length: length,
	}, nil
}

type httpWriteStream struct {
	client *HTTPClient
	url    string
	length int64
	sent   bool
}

// Send implements core.WriteStreamBlob.
func (w *httpWriteStream) Send(src io.Reader) (*core.DigestBlob, error) {
	if w.sent {
		return nil, ErrWriteStreamClosed
	}
	w.sent = true

	start := time.Now()
	r, err := httputil.Put(
		w.url,
		httputil.SendHeader(_tokenHeader, w.client.token()),
		httputil.SendContentLength(w.length),
		httputil.SendTimeout(w.client.timeout),
		httputil.SendTLS(w.client.tls),
		httputil.SendBody(src),
		httputil.SendAcceptedCodes(http.StatusOK))
	if err != nil {
		return nil, classify(w.url, start, err)
	}
	defer r.Body.Close()

	env, err := decodeEnvelope(w.url, r.Body)
	if err != nil {
		return nil, err
	}
	return decodeDigestBlob(w.url, env)
}

// envelope is the wire shape of every JSON-returning endpoint:
// {code: <int>, blob: {...}}.
type envelope struct {
	Code int             `json:"code"`
	Blob json.RawMessage `json:"blob"`
}

type digestBlobWire struct {
	Volume   string            `json:"volume"`
	Primary  bool              `json:"primary"`
	Replica  bool              `json:"replica"`
	Position int64             `json:"position"`
	Length   int64             `json:"length"`
	Digests  map[string]string `json:"digests"`
}

func decodeEnvelope(u string, body io.Reader) (*envelope, error) {
	var env envelope
	if err := json.NewDecoder(body).Decode(&env); err != nil {
		return nil, &core.ProtocolBodyError{URL: u, Msg: fmt.Sprintf("decode envelope: %s", err)}
	}
	if env.Code == 0 {
		return nil, &core.ProtocolBodyError{URL: u, Msg: "missing code"}
	}
	return &env, nil
}

func decodeDigestBlob(u string, env *envelope) (*core.DigestBlob, error) {
	if env.Code != http.StatusOK {
		return nil, &core.ProtocolBodyError{URL: u, Msg: fmt.Sprintf("unexpected code %d", env.Code)}
	}
	var wire digestBlobWire
	if err := json.Unmarshal(env.Blob, &wire); err != nil {
		return nil, &core.ProtocolBodyError{URL: u, Msg: fmt.Sprintf("decode blob: %s", err)}
	}
	digests := make(map[string]core.Digest, len(wire.Digests))
	for algo, hexDigest := range wire.Digests {
		d, err := core.NewDigestFromHex(algo, hexDigest)
		if err != nil {
			return nil, &core.ProtocolBodyError{URL: u, Msg: fmt.Sprintf("decode digest: %s", err)}
		}
		digests[algo] = d
	}
	return &core.DigestBlob{
		Volume:   wire.Volume,
		Primary:  wire.Primary,
		Replica:  wire.Replica,
		Position: wire.Position,
		Length:   wire.Length,
		Digests:  digests,
	}, nil
}

func classify(u string, start time.Time, err error) error {
	if httputil.IsNetworkError(err) {
		elapsed := time.Since(start).Round(time.Millisecond)
		return &core.TransportError{URL: u, Elapsed: elapsed.String(), Cause: err}
	}
	if statusErr, ok := err.(httputil.StatusError); ok {
		return &core.ProtocolStatusError{URL: u, Status: statusErr.Status, Body: statusErr.ResponseDump}
	}
	return err
}
