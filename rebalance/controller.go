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
	"sync"

	"github.com/sfsio/sfs/core"
	"github.com/sfsio/sfs/placement"
	"github.com/sfsio/sfs/sfslog"
	"github.com/sfsio/sfs/xnode"
)

// Controller drives rebalancing: per-segment, it counts eligible copies against
// the segment's required counts and drives balance-up/balance-down to close
// the gap.
type Controller struct {
	Nodes   Nodes
	Index   Index
	Reader  *SegmentReader
	Planner *placement.Planner
}

// NewController returns a Controller resolving node identities through dir,
// reading cluster policy from nodes, and persisting through index.
func NewController(dir xnode.NodeDirectory, nodes Nodes, index Index) *Controller {
	return &Controller{
		Nodes:   nodes,
		Index:   index,
		Reader:  NewSegmentReader(dir),
		Planner: placement.NewPlanner(dir),
	}
}

// Rebalance inspects seg's current eligible copy counts against its
// required (Pexp, Rexp) and runs balance-up/balance-down as needed. It
// returns true iff any sub-operation changed seg's reference lists.
//
// Tiny-data segments are considered already stable: their payload lives
// inline in the index entry and is never placed.
func (c *Controller) Rebalance(ctx context.Context, seg *core.Segment) bool {
	if seg.TinyData {
		return true
	}

	seg.Mu.Lock()
	eligiblePrimaries := seg.EligiblePrimaries()
	eligibleReplicas := seg.EligibleReplicas()
	used := seg.UsedVolumeIDs()
	pexp, rexp := seg.Pexp, seg.Rexp
	seg.Mu.Unlock()

	if pexp+rexp < 1 {
		core.Invariant("segment %s: Pexp(%d)+Rexp(%d) < 1", seg.ID, pexp, rexp)
	}

	deltaP := pexp - len(eligiblePrimaries)
	deltaR := rexp - len(eligibleReplicas)

	var wg sync.WaitGroup
	var upChanged, downPChanged, downRChanged bool

	if deltaP < 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			downPChanged = c.runBalanceDown(seg, eligiblePrimaries, -deltaP)
		}()
	}
	if deltaR < 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			downRChanged = c.runBalanceDown(seg, eligibleReplicas, -deltaR)
		}()
	}
	if deltaP > 0 || deltaR > 0 {
		np, nr := deltaP, deltaR
		if np < 0 {
			np = 0
		}
		if nr < 0 {
			nr = 0
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			upChanged = c.runBalanceUp(ctx, seg, used, np, nr)
		}()
	}
	wg.Wait()

	return upChanged || downPChanged || downRChanged
}

// runBalanceDown downgrades a balanceDown failure to changed=false, logging
// the classified error kind rather than aborting the segment.
func (c *Controller) runBalanceDown(seg *core.Segment, refs []*core.BlobReference, k int) bool {
	changed, err := c.balanceDown(seg, refs, k)
	if err != nil {
		kind, _ := core.ClassifyError(err)
		sfslog.With("segment", seg.ID, "kind", kind).Errorf("balance-down failed: %s", err)
		return false
	}
	return changed
}

// balanceDown deletes refs in order until k deletions have succeeded,
// stopping strictly once the target count is reached (refs beyond the kth
// successful deletion are left untouched, not merely unattempted).
func (c *Controller) balanceDown(seg *core.Segment, refs []*core.BlobReference, k int) (bool, error) {
	if k <= 0 || len(refs) < k {
		core.Invariant("balanceDown: k=%d but len(refs)=%d", k, len(refs))
	}

	deleted := 0
	for _, ref := range refs {
		if deleted == k {
			break
		}
		if c.Index.DeleteBlobReference(ref) {
			seg.Mu.Lock()
			ref.Deleted = true
			seg.Mu.Unlock()
			deleted++
		}
	}
	return deleted > 0, nil
}

// runBalanceUp downgrades a balanceUp failure to changed=false, logging the
// classified error kind rather than aborting the segment.
func (c *Controller) runBalanceUp(ctx context.Context, seg *core.Segment, used map[string]bool, np, nr int) bool {
	changed, err := c.balanceUp(ctx, seg, used, np, nr)
	if err != nil {
		kind, _ := core.ClassifyError(err)
		sfslog.With("segment", seg.ID, "kind", kind).Errorf("balance-up failed: %s", err)
		return false
	}
	return changed
}

// balanceUp opens a read stream for seg, assigns np primary and nr replica
// targets excluding volumes in used, and appends an un-acked BlobReference
// for each resulting receipt. New references are deliberately left
// un-acked: acking here, out-of-band from the index update, risks a volume
// believing a blob is persisted while the index has no record of it. The
// volume-level garbage collector is free to reclaim the bytes if the
// subsequent bulk index write never arrives.
func (c *Controller) balanceUp(ctx context.Context, seg *core.Segment, used map[string]bool, np, nr int) (bool, error) {
	rs, ok, err := c.Reader.Open(seg)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	defer rs.Body.Close()

	candidates := candidatesExcluding(c.Index.ListDataNodes(), used)

	targets, err := c.Planner.Plan(ctx, candidates, np, nr, c.Nodes.IsAllowSameNode(), rs.Length, rs.Body)
	if err != nil {
		return false, err
	}

	seg.Mu.Lock()
	for _, t := range targets {
		seg.AppendReference(&core.BlobReference{
			NodeID:   t.Node.NodeID(),
			VolumeID: t.Receipt.Volume,
			Position: t.Receipt.Position,
			Length:   t.Receipt.Length,
			Digests:  map[string]core.Digest{core.SHA512: t.Receipt.Digests[core.SHA512]},
			Role:     t.Role,
		})
	}
	seg.Mu.Unlock()
	return true, nil
}

// candidatesExcluding copies nodes, dropping any volume already used by
// this segment and any node left with no volumes as a result.
func candidatesExcluding(nodes []*core.Node, used map[string]bool) []*core.Node {
	var out []*core.Node
	for _, n := range nodes {
		var vols []*core.Volume
		for _, v := range n.Volumes {
			if used[n.NodeID+"/"+v.VolumeID] {
				continue
			}
			vols = append(vols, v)
		}
		if len(vols) == 0 {
			continue
		}
		cp := *n
		cp.Volumes = vols
		out = append(out, &cp)
	}
	return out
}
