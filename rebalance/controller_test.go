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
package rebalance

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sfsio/sfs/core"
	"github.com/sfsio/sfs/volume"
	"github.com/sfsio/sfs/xnode"
)

// fakeDirectory resolves every node to a LocalNode backed by a single
// shared in-memory store, so a test can assemble an arbitrary cluster
// without standing up real HTTP peers.
type fakeDirectory struct {
	nodes map[string]*core.Node
	store volume.Store
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{nodes: make(map[string]*core.Node), store: volume.NewInMemoryStore()}
}

func (d *fakeDirectory) addNode(numVolumes int) *core.Node {
	node := core.NodeFixture(numVolumes)
	d.nodes[node.NodeID] = node
	for _, v := range node.Volumes {
		d.store.AddVolume(v)
	}
	return node
}

func (d *fakeDirectory) Lookup(nodeID string) (xnode.XNode, error) {
	node, ok := d.nodes[nodeID]
	if !ok {
		return nil, errNoSuchNode(nodeID)
	}
	return xnode.NewLocalNode(node, d.store), nil
}

type errNoSuchNode string

func (e errNoSuchNode) Error() string { return "no such node: " + string(e) }

// fakeIndex implements Index over an explicit data-node roster, recording
// every DeleteBlobReference call.
type fakeIndex struct {
	mu        sync.Mutex
	dataNodes []*core.Node
	deleted   []*core.BlobReference
}

func (idx *fakeIndex) ListDataNodes() []*core.Node { return idx.dataNodes }

func (idx *fakeIndex) DeleteBlobReference(ref *core.BlobReference) bool {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.deleted = append(idx.deleted, ref)
	return true
}

func (idx *fakeIndex) deleteCount() int {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return len(idx.deleted)
}

// fakeNodes implements Nodes with fixed cluster policy.
type fakeNodes struct {
	primaries, replicas int
	allowSameNode       bool
	master              bool
}

func (n fakeNodes) GetNumberOfPrimaries() int { return n.primaries }
func (n fakeNodes) GetNumberOfReplicas() int  { return n.replicas }
func (n fakeNodes) IsAllowSameNode() bool     { return n.allowSameNode }
func (n fakeNodes) IsMaster() bool            { return n.master }

// putSegmentData writes content to seg's first eligible primary (or
// replica) volume directly through the store, standing in for "a blob
// already written by a prior pass".
func putSegmentData(t *testing.T, store volume.Store, node *core.Node, content string) *core.BlobReference {
	t.Helper()
	ws, err := store.CreateWriteStream(node.Volumes[0].VolumeID, int64(len(content)), []string{core.SHA512})
	require.NoError(t, err)
	receipt, err := ws.Send(strings.NewReader(content))
	require.NoError(t, err)
	return &core.BlobReference{
		NodeID:   node.NodeID,
		VolumeID: receipt.Volume,
		Position: receipt.Position,
		Length:   receipt.Length,
		Digests:  receipt.Digests,
		Role:     core.RolePrimary,
		Acked:    true,
	}
}

func TestControllerTinyDataShortCircuits(t *testing.T) {
	require := require.New(t)
	seg := &core.Segment{ID: "seg-tiny", TinyData: true}

	c := NewController(newFakeDirectory(), fakeNodes{}, &fakeIndex{})
	changed := c.Rebalance(context.Background(), seg)

	require.True(changed)
	require.Empty(seg.PrimaryBlobs)
	require.Empty(seg.ReplicaBlobs)
}

func TestControllerBalanceUpFromOneToThreePrimaries(t *testing.T) {
	require := require.New(t)
	dir := newFakeDirectory()
	a := dir.addNode(1)
	b := dir.addNode(1)
	cNode := dir.addNode(1)
	d := dir.addNode(1)

	ref := putSegmentData(t, dir.store, a, "payload")
	seg := &core.Segment{ID: "seg-1", Pexp: 3, Rexp: 0, PrimaryBlobs: []*core.BlobReference{ref}}

	idx := &fakeIndex{dataNodes: []*core.Node{a, b, cNode, d}}
	ctl := NewController(dir, fakeNodes{allowSameNode: false}, idx)

	changed := ctl.Rebalance(context.Background(), seg)
	require.True(changed)
	require.Len(seg.PrimaryBlobs, 3)

	var digest core.Digest
	nodesUsed := map[string]bool{}
	for _, r := range seg.PrimaryBlobs {
		// The pre-existing copy on A keeps its ack; only the copies added by
		// balance-up are left un-acked.
		if r == ref {
			require.True(r.Acked)
		} else {
			require.False(r.Acked)
		}
		require.Equal(core.RolePrimary, r.Role)
		nodesUsed[r.NodeID] = true
		if digest == (core.Digest{}) {
			digest = r.Digests[core.SHA512]
		} else {
			require.Equal(digest, r.Digests[core.SHA512])
		}
	}
	require.Contains(nodesUsed, a.NodeID)
	require.Len(nodesUsed, 3)
}

func TestControllerBalanceDownFiveToTwoPrimaries(t *testing.T) {
	require := require.New(t)
	dir := newFakeDirectory()
	var refs []*core.BlobReference
	for i := 0; i < 5; i++ {
		n := dir.addNode(1)
		refs = append(refs, putSegmentData(t, dir.store, n, "payload"))
	}
	seg := &core.Segment{ID: "seg-2", Pexp: 2, Rexp: 0, PrimaryBlobs: refs}

	idx := &fakeIndex{}
	ctl := NewController(dir, fakeNodes{}, idx)

	changed := ctl.Rebalance(context.Background(), seg)
	require.True(changed)

	deletedCount := 0
	for _, r := range seg.PrimaryBlobs {
		if r.Deleted {
			deletedCount++
		}
	}
	require.Equal(3, deletedCount)
	require.Equal(3, idx.deleteCount())
	require.True(refs[0].Deleted)
	require.True(refs[1].Deleted)
	require.True(refs[2].Deleted)
	require.False(refs[3].Deleted)
	require.False(refs[4].Deleted)
}

func TestControllerInsufficientCapacityDowngradesToNoChange(t *testing.T) {
	require := require.New(t)
	dir := newFakeDirectory()
	a := dir.addNode(1)
	b := dir.addNode(1)

	ref := putSegmentData(t, dir.store, a, "payload")
	seg := &core.Segment{ID: "seg-3", Pexp: 4, Rexp: 0, PrimaryBlobs: []*core.BlobReference{ref}}

	idx := &fakeIndex{dataNodes: []*core.Node{a, b}}
	ctl := NewController(dir, fakeNodes{}, idx)

	changed := ctl.Rebalance(context.Background(), seg)
	require.False(changed)
	require.Len(seg.PrimaryBlobs, 1)
}

func TestControllerConcurrentUpAndDown(t *testing.T) {
	require := require.New(t)
	dir := newFakeDirectory()
	var primaryRefs []*core.BlobReference
	for i := 0; i < 3; i++ {
		n := dir.addNode(1)
		primaryRefs = append(primaryRefs, putSegmentData(t, dir.store, n, "payload"))
	}
	b1 := dir.addNode(1)
	b1Ref := putSegmentData(t, dir.store, b1, "replica-payload")
	b1Ref.Role = core.RoleReplica

	spare := dir.addNode(1)

	seg := &core.Segment{
		ID:           "seg-4",
		Pexp:         1,
		Rexp:         2,
		PrimaryBlobs: primaryRefs,
		ReplicaBlobs: []*core.BlobReference{b1Ref},
	}

	idx := &fakeIndex{dataNodes: []*core.Node{spare}}
	ctl := NewController(dir, fakeNodes{}, idx)

	changed := ctl.Rebalance(context.Background(), seg)
	require.True(changed)

	deletedPrimaries := 0
	for _, r := range seg.PrimaryBlobs {
		if r.Deleted {
			deletedPrimaries++
		}
	}
	require.Equal(2, deletedPrimaries)
	require.Len(seg.ReplicaBlobs, 2)
}
