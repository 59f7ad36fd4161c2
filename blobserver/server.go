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

import (
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/andres-erbsen/clock"
	"github.com/go-chi/chi"
	"github.com/uber-go/tally"

	"github.com/sfsio/sfs/core"
	"github.com/sfsio/sfs/sfslog"
	"github.com/sfsio/sfs/utils/handler"
	"github.com/sfsio/sfs/volume"
)

const _tokenHeader = "X-SFS-Remote-Node-Token"

// Server serves the peer wire protocol against a local volume.Store.
type Server struct {
	config  Config
	store   volume.Store
	clk     clock.Clock
	metrics *metrics
}

// New returns a Server backing the protocol onto store, authenticating
// every request against config.Secret. clk drives the slow-request check
// against config.RequestTimeout; tests substitute a fake clock to control
// elapsed time deterministically.
func New(config Config, stats tally.Scope, clk clock.Clock, store volume.Store) *Server {
	config = config.applyDefaults()
	return &Server{
		config:  config,
		store:   store,
		clk:     clk,
		metrics: newMetrics(stats.Tagged(map[string]string{"module": "blobserver"})),
	}
}

// Handler returns the HTTP handler implementing "/blob/001…".
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.authMiddleware)
	r.Use(s.slowRequestMiddleware)

	r.Get("/blob/001/checksum", handler.Wrap(s.checksumHandler))
	r.Delete("/blob/001", handler.Wrap(s.deleteHandler))
	r.Put("/blob/001/ack", handler.Wrap(s.acknowledgeHandler))
	r.Put("/blob/001/canput", handler.Wrap(s.canPutHandler))
	r.Get("/blob/001", handler.Wrap(s.readHandler))
	r.Put("/blob/001", handler.Wrap(s.writeHandler))

	return r
}

// slowRequestMiddleware logs and counts any request whose handling exceeds
// config.RequestTimeout. It does not abort the request: the volume.Store
// call underneath may still be making progress, and response timeouts are
// enforced on the calling side, not the serving side.
func (s *Server) slowRequestMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := s.clk.Now()
		next.ServeHTTP(w, r)
		if elapsed := s.clk.Now().Sub(start); elapsed > s.config.RequestTimeout {
			s.metrics.slowRequests.Inc(1)
			sfslog.With("path", r.URL.Path, "elapsed", elapsed).Warnf("slow request exceeded %s", s.config.RequestTimeout)
		}
	})
}

// authMiddleware rejects any request not bearing the cluster-shared
// secret, base64-encoded, in X-SFS-Remote-Node-Token.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		want := base64.StdEncoding.EncodeToString(s.config.Secret)
		got := r.Header.Get(_tokenHeader)
		if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(want)) != 1 {
			s.metrics.authFailures.Inc(1)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func queryInt64(r *http.Request, key string) int64 {
	v, _ := strconv.ParseInt(r.URL.Query().Get(key), 10, 64)
	return v
}

func queryDigestAlgos(r *http.Request) []string {
	var algos []string
	for k, v := range r.URL.Query() {
		if strings.HasPrefix(k, "x-computed-digest-") && len(v) > 0 && v[0] == "true" {
			algos = append(algos, strings.TrimPrefix(k, "x-computed-digest-"))
		}
	}
	return algos
}

func writeDigestBlobEnvelope(w http.ResponseWriter, blob *core.DigestBlob) error {
	digests := make(map[string]string, len(blob.Digests))
	for algo, d := range blob.Digests {
		digests[algo] = d.Hex()
	}
	body := struct {
		Code int `json:"code"`
		Blob struct {
			Volume   string            `json:"volume"`
			Primary  bool              `json:"primary"`
			Replica  bool              `json:"replica"`
			Position int64             `json:"position"`
			Length   int64             `json:"length"`
			Digests  map[string]string `json:"digests"`
		} `json:"blob"`
	}{Code: http.StatusOK}
	body.Blob.Volume = blob.Volume
	body.Blob.Primary = blob.Primary
	body.Blob.Replica = blob.Replica
	body.Blob.Position = blob.Position
	body.Blob.Length = blob.Length
	body.Blob.Digests = digests

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(body)
}

// checksumHandler implements GET /blob/001/checksum.
func (s *Server) checksumHandler(w http.ResponseWriter, r *http.Request) error {
	s.metrics.checksums.Inc(1)
	volumeID := r.URL.Query().Get("volume")
	position := queryInt64(r, "position")
	offset := queryInt64(r, "offset")
	length := queryInt64(r, "length")

	blob, err := s.store.Checksum(volumeID, position, offset, length, queryDigestAlgos(r))
	if err != nil {
		return handler.Errorf("checksum: %s", err)
	}
	if blob == nil {
		return handler.ErrorStatus(http.StatusNotFound)
	}
	return writeDigestBlobEnvelope(w, blob)
}

// deleteHandler implements DELETE /blob/001.
func (s *Server) deleteHandler(w http.ResponseWriter, r *http.Request) error {
	s.metrics.deletes.Inc(1)
	volumeID := r.URL.Query().Get("volume")
	position := queryInt64(r, "position")

	hdr, err := s.store.Delete(volumeID, position)
	if err != nil {
		return handler.Errorf("delete: %s", err)
	}
	if hdr == nil {
		w.WriteHeader(http.StatusNotModified)
		return nil
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// acknowledgeHandler implements PUT /blob/001/ack.
func (s *Server) acknowledgeHandler(w http.ResponseWriter, r *http.Request) error {
	s.metrics.acks.Inc(1)
	volumeID := r.URL.Query().Get("volume")
	position := queryInt64(r, "position")

	hdr, err := s.store.Acknowledge(volumeID, position)
	if err != nil {
		return handler.Errorf("acknowledge: %s", err)
	}
	if hdr == nil {
		w.WriteHeader(http.StatusNotModified)
		return nil
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// canPutHandler implements PUT /blob/001/canput.
func (s *Server) canPutHandler(w http.ResponseWriter, r *http.Request) error {
	s.metrics.canPuts.Inc(1)
	volumeID := r.URL.Query().Get("volume")

	ok, err := s.store.CanPut(volumeID)
	if err != nil {
		return handler.Errorf("canput: %s", err)
	}
	if !ok {
		return handler.ErrorStatus(http.StatusConflict)
	}
	w.WriteHeader(http.StatusOK)
	return nil
}

// readHandler implements GET /blob/001.
func (s *Server) readHandler(w http.ResponseWriter, r *http.Request) error {
	s.metrics.reads.Inc(1)
	volumeID := r.URL.Query().Get("volume")
	position := queryInt64(r, "position")
	offset := queryInt64(r, "offset")
	length := queryInt64(r, "length")

	rs, err := s.store.CreateReadStream(volumeID, position, offset, length)
	if err != nil {
		return handler.Errorf("read: %s", err)
	}
	if rs == nil {
		return handler.ErrorStatus(http.StatusNotFound)
	}

	w.Header().Set("Content-Length", strconv.FormatInt(rs.Length, 10))
	w.WriteHeader(http.StatusOK)
	if err := rs.Produce(r.Context(), w); err != nil {
		sfslog.With("volume", volumeID, "position", position).Warnf("read handler: copy failed: %s", err)
	}
	return nil
}

// writeHandler implements PUT /blob/001.
func (s *Server) writeHandler(w http.ResponseWriter, r *http.Request) error {
	s.metrics.writes.Inc(1)
	volumeID := r.URL.Query().Get("volume")

	ws, err := s.store.CreateWriteStream(volumeID, r.ContentLength, queryDigestAlgos(r))
	if err != nil {
		return handler.Errorf("write: %s", err)
	}
	blob, err := ws.Send(r.Body)
	if err != nil {
		return handler.Errorf("write: %s", err)
	}
	s.metrics.writeBytes.Inc(blob.Length)
	return writeDigestBlobEnvelope(w, blob)
}
