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
package placement

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sfsio/sfs/core"
	"github.com/sfsio/sfs/volume"
	"github.com/sfsio/sfs/xnode"
)

// fakeDirectory resolves every node to a LocalNode backed by a single
// shared store, letting a test assemble an arbitrary candidate roster
// without standing up real HTTP peers. If tamperNodeID is set, that node's
// write stream receipts are corrupted in place, modelling a replica whose
// independently-computed digest disagrees with the others.
type fakeDirectory struct {
	nodes        map[string]*core.Node
	store        volume.Store
	tamperNodeID string
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

func (d *fakeDirectory) fillVolume(volumeID string, used uint64) {
	for _, v := range d.store.Volumes() {
		if v.VolumeID == volumeID {
			v.Used = used
		}
	}
}

func (d *fakeDirectory) markFailed(volumeID string) {
	for _, v := range d.store.Volumes() {
		if v.VolumeID == volumeID {
			v.Health = core.VolumeFailed
		}
	}
}

func (d *fakeDirectory) Lookup(nodeID string) (xnode.XNode, error) {
	node, ok := d.nodes[nodeID]
	if !ok {
		return nil, errNoSuchNode(nodeID)
	}
	n := xnode.XNode(xnode.NewLocalNode(node, d.store))
	if nodeID == d.tamperNodeID {
		n = &tamperedNode{n}
	}
	return n, nil
}

type errNoSuchNode string

func (e errNoSuchNode) Error() string { return "no such node: " + string(e) }

// tamperedNode wraps an XNode and corrupts the SHA-512 digest of every
// write receipt it produces, simulating a replica that reports a digest
// disagreeing with its siblings.
type tamperedNode struct {
	xnode.XNode
}

func (n *tamperedNode) CreateWriteStream(volumeID string, length int64, digestAlgos []string) (core.WriteStreamBlob, error) {
	ws, err := n.XNode.CreateWriteStream(volumeID, length, digestAlgos)
	if err != nil {
		return nil, err
	}
	return &tamperedWriteStream{ws}, nil
}

type tamperedWriteStream struct {
	core.WriteStreamBlob
}

func (w *tamperedWriteStream) Send(src io.Reader) (*core.DigestBlob, error) {
	receipt, err := w.WriteStreamBlob.Send(src)
	if err != nil {
		return nil, err
	}
	bad, err := core.NewDigestFromHex(core.SHA512, strings.Repeat("f", 128))
	if err != nil {
		return nil, err
	}
	receipt.Digests[core.SHA512] = bad
	return receipt, nil
}

func TestPlannerAssignsPrimaryAndReplicaTargets(t *testing.T) {
	require := require.New(t)
	dir := newFakeDirectory()
	for i := 0; i < 4; i++ {
		dir.addNode(1)
	}

	p := NewPlanner(dir)
	candidates := make([]*core.Node, 0, len(dir.nodes))
	for _, n := range dir.nodes {
		candidates = append(candidates, n)
	}

	targets, err := p.Plan(context.Background(), candidates, 2, 2, false, 7, strings.NewReader("payload"))
	require.NoError(err)
	require.Len(targets, 4)

	primaries, replicas := 0, 0
	for i, target := range targets {
		require.NotNil(target.Receipt)
		if i < 2 {
			require.Equal(core.RolePrimary, target.Role)
			primaries++
		} else {
			require.Equal(core.RoleReplica, target.Role)
			replicas++
		}
	}
	require.Equal(2, primaries)
	require.Equal(2, replicas)
}

func TestPlannerInsufficientCapacity(t *testing.T) {
	require := require.New(t)
	dir := newFakeDirectory()
	for i := 0; i < 2; i++ {
		dir.addNode(1)
	}

	p := NewPlanner(dir)
	var candidates []*core.Node
	for _, n := range dir.nodes {
		candidates = append(candidates, n)
	}

	_, err := p.Plan(context.Background(), candidates, 2, 2, false, 7, strings.NewReader("payload"))
	require.Error(err)
	var capErr *core.InsufficientCapacityError
	require.ErrorAs(err, &capErr)
	require.Equal(4, capErr.Requested)
	require.Equal(2, capErr.Obtained)
}

func TestPlannerSkipsUnusableVolumes(t *testing.T) {
	require := require.New(t)
	dir := newFakeDirectory()
	good := dir.addNode(1)
	bad := dir.addNode(1)
	dir.markFailed(bad.Volumes[0].VolumeID)

	p := NewPlanner(dir)
	targets, err := p.Plan(context.Background(), []*core.Node{bad, good}, 1, 0, false, 7, strings.NewReader("payload"))
	require.NoError(err)
	require.Len(targets, 1)
	require.Equal(good.NodeID, targets[0].Node.NodeID())
}

func TestPlannerAllowSameNodeUsesMultipleVolumes(t *testing.T) {
	require := require.New(t)
	dir := newFakeDirectory()
	node := dir.addNode(2)

	p := NewPlanner(dir)
	targets, err := p.Plan(context.Background(), []*core.Node{node}, 1, 1, true, 7, strings.NewReader("payload"))
	require.NoError(err)
	require.Len(targets, 2)
	require.Equal(targets[0].Node.NodeID(), targets[1].Node.NodeID())
}

// failingReader fails after n bytes, modelling a source whose read fails
// mid-stream: all write streams must be aborted and no receipts collected.
type failingReader struct {
	remaining int
}

func (f *failingReader) Read(p []byte) (int, error) {
	if f.remaining <= 0 {
		return 0, errSourceFailed{}
	}
	n := len(p)
	if n > f.remaining {
		n = f.remaining
	}
	f.remaining -= n
	return n, nil
}

type errSourceFailed struct{}

func (errSourceFailed) Error() string { return "source read failed" }

func TestPlannerAbortsAllWritesOnSourceReadFailure(t *testing.T) {
	require := require.New(t)
	dir := newFakeDirectory()
	for i := 0; i < 2; i++ {
		dir.addNode(1)
	}

	p := NewPlanner(dir)
	var candidates []*core.Node
	for _, n := range dir.nodes {
		candidates = append(candidates, n)
	}

	src := &failingReader{remaining: 16}
	_, err := p.Plan(context.Background(), candidates, 2, 0, false, 1<<20, src)
	require.Error(err)
	require.ErrorAs(err, new(errSourceFailed))
}

func TestPlannerRejectsSameNodeByDefault(t *testing.T) {
	require := require.New(t)
	dir := newFakeDirectory()
	node := dir.addNode(2)

	p := NewPlanner(dir)
	_, err := p.Plan(context.Background(), []*core.Node{node}, 1, 1, false, 7, strings.NewReader("payload"))
	require.Error(err)
	var capErr *core.InsufficientCapacityError
	require.ErrorAs(err, &capErr)
	require.Equal(1, capErr.Obtained)
}

func TestPlannerDigestMismatchAbortsWithNoTargets(t *testing.T) {
	require := require.New(t)
	dir := newFakeDirectory()
	good := dir.addNode(1)
	bad := dir.addNode(1)
	dir.tamperNodeID = bad.NodeID

	p := NewPlanner(dir)
	targets, err := p.Plan(context.Background(), []*core.Node{good, bad}, 2, 0, false, 7, strings.NewReader("payload"))
	require.Nil(targets)
	require.Error(err)
	var mismatchErr *core.DigestMismatchError
	require.ErrorAs(err, &mismatchErr)
	require.Len(mismatchErr.Targets, 2)
	require.Len(mismatchErr.Digests, 2)
	require.NotEqual(mismatchErr.Digests[0], mismatchErr.Digests[1])
}
