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
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/andres-erbsen/clock"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally"

	"github.com/sfsio/sfs/core"
	"github.com/sfsio/sfs/remoteblob"
	"github.com/sfsio/sfs/volume"
)

func newTestServer(t *testing.T, secret []byte) (*httptest.Server, volume.Store) {
	t.Helper()
	store := volume.NewInMemoryStore()
	s := New(Config{Secret: secret}, tally.NoopScope, clock.New(), store)
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)
	return srv, store
}

func addrOf(srv *httptest.Server) string {
	return strings.TrimPrefix(srv.URL, "http://")
}

func TestServerRoundTripsWriteReadChecksumAckDelete(t *testing.T) {
	require := require.New(t)
	secret := []byte("cluster-secret")
	srv, store := newTestServer(t, secret)

	vol := core.VolumeFixture()
	store.AddVolume(vol)

	client := remoteblob.New("node-a", addrOf(srv), secret)

	ok, err := client.CanPut(vol.VolumeID)
	require.NoError(err)
	require.True(ok)

	ws, err := client.CreateWriteStream(vol.VolumeID, 7, []string{core.SHA512})
	require.NoError(err)
	receipt, err := ws.Send(strings.NewReader("payload"))
	require.NoError(err)
	require.Equal(vol.VolumeID, receipt.Volume)
	require.Contains(receipt.Digests, core.SHA512)

	checksum, err := client.Checksum(vol.VolumeID, receipt.Position, 0, 0, []string{core.SHA512})
	require.NoError(err)
	require.NotNil(checksum)
	require.Equal(receipt.Digests[core.SHA512], checksum.Digests[core.SHA512])

	rs, err := client.CreateReadStream(vol.VolumeID, receipt.Position, 0, 0)
	require.NoError(err)
	require.NotNil(rs)
	defer rs.Body.Close()

	hdr, err := client.Acknowledge(vol.VolumeID, receipt.Position)
	require.NoError(err)
	require.NotNil(hdr)

	hdr, err = client.Acknowledge(vol.VolumeID, receipt.Position)
	require.NoError(err)
	require.Nil(hdr) // already acked: 304 mapped to nil

	hdr, err = client.Delete(vol.VolumeID, receipt.Position)
	require.NoError(err)
	require.NotNil(hdr)
}

func TestServerRejectsWrongToken(t *testing.T) {
	require := require.New(t)
	srv, store := newTestServer(t, []byte("real-secret"))
	vol := core.VolumeFixture()
	store.AddVolume(vol)

	client := remoteblob.New("node-a", addrOf(srv), []byte("wrong-secret"))
	_, err := client.CanPut(vol.VolumeID)
	require.Error(err)
}

func TestServerChecksumMissingBlobReturns404(t *testing.T) {
	require := require.New(t)
	secret := []byte("cluster-secret")
	srv, store := newTestServer(t, secret)
	vol := core.VolumeFixture()
	store.AddVolume(vol)

	client := remoteblob.New("node-a", addrOf(srv), secret)
	blob, err := client.Checksum(vol.VolumeID, 99, 0, 0, []string{core.SHA512})
	require.NoError(err)
	require.Nil(blob)
}

func TestSlowRequestMiddlewareCountsRequestsOverTimeout(t *testing.T) {
	require := require.New(t)

	clk := clock.NewMock()
	clk.Set(time.Now())
	stats := tally.NewTestScope("testing", nil)
	s := New(Config{RequestTimeout: time.Second}, stats, clk, volume.NewInMemoryStore())

	fast := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clk.Add(2 * time.Second)
	})

	w := httptest.NewRecorder()
	s.slowRequestMiddleware(fast).ServeHTTP(w, httptest.NewRequest("GET", "/blob/001", nil))
	require.Nil(stats.Snapshot().Counters()["testing.slow_requests+module=blobserver"])

	s.slowRequestMiddleware(slow).ServeHTTP(w, httptest.NewRequest("GET", "/blob/001", nil))
	require.Equal(int64(1), stats.Snapshot().Counters()["testing.slow_requests+module=blobserver"].Value())
}
