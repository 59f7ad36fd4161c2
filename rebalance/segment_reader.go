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
	"github.com/sfsio/sfs/core"
	"github.com/sfsio/sfs/sfslog"
	"github.com/sfsio/sfs/xnode"
)

// SegmentReader locates a readable source: given a segment, it opens a stream
// from any one of its healthy copies, trying eligible primaries before
// eligible replicas.
type SegmentReader struct {
	Directory xnode.NodeDirectory
}

// NewSegmentReader returns a SegmentReader resolving node identities
// through dir.
func NewSegmentReader(dir xnode.NodeDirectory) *SegmentReader {
	return &SegmentReader{Directory: dir}
}

// Open returns an open ReadStreamBlob for seg, or ok=false if none of seg's
// eligible references could be opened. Individual lookup/read failures are
// logged and the next candidate is tried; Open only returns an error for a
// condition that should abort the caller outright, which in this
// implementation never occurs short of a bug.
func (r *SegmentReader) Open(seg *core.Segment) (*core.ReadStreamBlob, bool, error) {
	seg.Mu.Lock()
	candidates := append(seg.EligiblePrimaries(), seg.EligibleReplicas()...)
	seg.Mu.Unlock()

	for _, ref := range candidates {
		xn, err := r.Directory.Lookup(ref.NodeID)
		if err != nil {
			sfslog.With("segment", seg.ID, "node", ref.NodeID).Warnf("segment reader: lookup failed: %s", err)
			continue
		}
		rs, err := xn.CreateReadStream(ref.VolumeID, ref.Position, 0, 0)
		if err != nil {
			sfslog.With("segment", seg.ID, "node", ref.NodeID, "volume", ref.VolumeID).
				Warnf("segment reader: read stream failed: %s", err)
			continue
		}
		if rs != nil {
			return rs, true, nil
		}
	}
	return nil, false, nil
}
