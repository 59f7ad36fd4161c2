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
package volume

import (
	"io/ioutil"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sfsio/sfs/core"
)

func newTestStore(t *testing.T) (*InMemoryStore, *core.Volume) {
	t.Helper()
	s := NewInMemoryStore()
	v := core.VolumeFixture()
	s.AddVolume(v)
	return s, v
}

func TestCreateWriteStreamThenRead(t *testing.T) {
	require := require.New(t)
	s, v := newTestStore(t)

	ws, err := s.CreateWriteStream(v.VolumeID, 11, []string{core.SHA512})
	require.NoError(err)

	receipt, err := ws.Send(strings.NewReader("hello world"))
	require.NoError(err)
	require.EqualValues(11, receipt.Length)
	require.Contains(receipt.Digests, core.SHA512)

	stream, err := s.CreateReadStream(v.VolumeID, receipt.Position, 0, 0)
	require.NoError(err)
	require.NotNil(stream)
	defer stream.Body.Close()

	got, err := ioutil.ReadAll(stream.Body)
	require.NoError(err)
	require.Equal("hello world", string(got))
}

func TestChecksumMatchesWrite(t *testing.T) {
	require := require.New(t)
	s, v := newTestStore(t)

	ws, err := s.CreateWriteStream(v.VolumeID, 3, []string{core.SHA512})
	require.NoError(err)
	receipt, err := ws.Send(strings.NewReader("abc"))
	require.NoError(err)

	blob, err := s.Checksum(v.VolumeID, receipt.Position, 0, 0, []string{core.SHA512})
	require.NoError(err)
	require.Equal(receipt.Digests[core.SHA512], blob.Digests[core.SHA512])
}

func TestDeleteIsIdempotent(t *testing.T) {
	require := require.New(t)
	s, v := newTestStore(t)

	ws, err := s.CreateWriteStream(v.VolumeID, 3, nil)
	require.NoError(err)
	receipt, err := ws.Send(strings.NewReader("abc"))
	require.NoError(err)

	hdr, err := s.Delete(v.VolumeID, receipt.Position)
	require.NoError(err)
	require.NotNil(hdr)

	hdr, err = s.Delete(v.VolumeID, receipt.Position)
	require.NoError(err)
	require.Nil(hdr, "second delete of an already-deleted blob returns nil, not an error")
}

func TestAcknowledgeIsIdempotent(t *testing.T) {
	require := require.New(t)
	s, v := newTestStore(t)

	ws, err := s.CreateWriteStream(v.VolumeID, 3, nil)
	require.NoError(err)
	receipt, err := ws.Send(strings.NewReader("abc"))
	require.NoError(err)

	hdr, err := s.Acknowledge(v.VolumeID, receipt.Position)
	require.NoError(err)
	require.NotNil(hdr)

	hdr, err = s.Acknowledge(v.VolumeID, receipt.Position)
	require.NoError(err)
	require.Nil(hdr)
}

func TestCanPutReflectsVolumeHealth(t *testing.T) {
	require := require.New(t)
	s, v := newTestStore(t)

	ok, err := s.CanPut(v.VolumeID)
	require.NoError(err)
	require.True(ok)

	v.Health = core.VolumeFailed
	ok, err = s.CanPut(v.VolumeID)
	require.NoError(err)
	require.False(ok)
}

func TestCreateWriteStreamInsufficientCapacity(t *testing.T) {
	require := require.New(t)
	s := NewInMemoryStore()
	v := &core.Volume{VolumeID: "tiny", Capacity: 2, Health: core.VolumeUsable}
	s.AddVolume(v)

	ws, err := s.CreateWriteStream(v.VolumeID, 10, nil)
	require.NoError(err)

	_, err = ws.Send(strings.NewReader("way too much data"))
	require.Error(err)
	_, ok := err.(*core.InsufficientCapacityError)
	require.True(ok)
}

func TestCreateWriteStreamUnknownVolume(t *testing.T) {
	require := require.New(t)
	s := NewInMemoryStore()
	_, err := s.CreateWriteStream("missing", 10, nil)
	require.Equal(ErrVolumeNotFound, err)
}
