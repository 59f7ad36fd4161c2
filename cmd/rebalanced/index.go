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
package main

import (
	"sync"

	"github.com/sfsio/sfs/core"
	"github.com/sfsio/sfs/sfslog"
	"github.com/sfsio/sfs/xnode"
)

// memIndex is a minimal stand-in for the object-metadata index. The real
// index is a document store consulted to list segments and persist blob
// references, maintained by a separate service; this type exists only so
// rebalanced has something to drive against. It holds
// the static data-node roster loaded from config and a process-local list
// of segments registered for sweeping, and issues physical deletes through
// the node directory on the controller's behalf.
type memIndex struct {
	nodes []*core.Node
	dir   xnode.NodeDirectory

	mu       sync.Mutex
	segments []*core.Segment
}

func newMemIndex(nodes []*core.Node, dir xnode.NodeDirectory) *memIndex {
	return &memIndex{nodes: nodes, dir: dir}
}

// ListDataNodes implements rebalance.Index.
func (idx *memIndex) ListDataNodes() []*core.Node {
	var out []*core.Node
	for _, n := range idx.nodes {
		if n.DataNode {
			out = append(out, n)
		}
	}
	return out
}

// DeleteBlobReference implements rebalance.Index.
func (idx *memIndex) DeleteBlobReference(ref *core.BlobReference) bool {
	xn, err := idx.dir.Lookup(ref.NodeID)
	if err != nil {
		sfslog.With("node", ref.NodeID).Warnf("delete blob reference: lookup failed: %s", err)
		return false
	}
	hdr, err := xn.Delete(ref.VolumeID, ref.Position)
	if err != nil {
		sfslog.With("node", ref.NodeID, "volume", ref.VolumeID).Warnf("delete blob reference: %s", err)
		return false
	}
	return hdr != nil
}

// AddSegment registers seg with the sweep roster.
func (idx *memIndex) AddSegment(seg *core.Segment) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.segments = append(idx.segments, seg)
}

// Segments returns a snapshot of the current sweep roster.
func (idx *memIndex) Segments() []*core.Segment {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	out := make([]*core.Segment, len(idx.segments))
	copy(out, idx.segments)
	return out
}
