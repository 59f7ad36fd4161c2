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
package xnode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sfsio/sfs/core"
	"github.com/sfsio/sfs/volume"
)

func TestLocalNodeImplementsXNode(t *testing.T) {
	var _ XNode = (*LocalNode)(nil)
	var _ XNode = (*RemoteNode)(nil)
}

func TestLocalNodeRoundTrip(t *testing.T) {
	require := require.New(t)

	node := core.NodeFixture(1)
	store := volume.NewInMemoryStore()
	store.AddVolume(node.Volumes[0])

	ln := NewLocalNode(node, store)
	require.Equal(node.NodeID, ln.NodeID())
	require.True(ln.IsLocal())

	ws, err := ln.CreateWriteStream(node.Volumes[0].VolumeID, 5, nil)
	require.NoError(err)
	receipt, err := ws.Send(strings.NewReader("hello"))
	require.NoError(err)

	stream, err := ln.CreateReadStream(node.Volumes[0].VolumeID, receipt.Position, 0, 0)
	require.NoError(err)
	require.NotNil(stream)
	stream.Body.Close()
}

func TestClusterDirectoryResolvesLocalAndRemote(t *testing.T) {
	require := require.New(t)

	local := core.NodeFixture(1)
	remote := core.NodeFixture(1)
	store := volume.NewInMemoryStore()
	store.AddVolume(local.Volumes[0])

	dir := NewClusterDirectory(local.NodeID, []*core.Node{local, remote}, store, stubProvider{})

	xn, err := dir.Lookup(local.NodeID)
	require.NoError(err)
	require.True(xn.IsLocal())

	xn, err = dir.Lookup(remote.NodeID)
	require.NoError(err)
	require.False(xn.IsLocal())

	_, err = dir.Lookup("nonexistent")
	require.Error(err)
}
