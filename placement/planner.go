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

// Package placement implements the replica group planner: given a
// candidate node roster and required primary/replica counts, it probes
// capacity, opens write streams, tees one byte source across all of them,
// and gates on digest agreement before committing to a set of targets.
package placement

import (
	"context"
	"fmt"
	"io"

	"github.com/sfsio/sfs/core"
	"github.com/sfsio/sfs/pump"
	"github.com/sfsio/sfs/xnode"
)

// Target is one assigned write destination and its resulting receipt.
type Target struct {
	Node    xnode.XNode
	Role    core.Role
	Receipt *core.DigestBlob
}

// Planner assigns replica groups and drives the writes that realize them.
type Planner struct {
	Directory xnode.NodeDirectory
}

// NewPlanner returns a Planner resolving node identities through dir.
func NewPlanner(dir xnode.NodeDirectory) *Planner {
	return &Planner{Directory: dir}
}

type candidate struct {
	node     xnode.XNode
	volumeID string
}

// Plan assigns np primary and nr replica targets from candidates, writes
// src to all of them concurrently, and returns the resulting targets in
// assignment order (primaries first). candidates have already had volumes
// used by this segment filtered out.
func (p *Planner) Plan(
	ctx context.Context,
	candidates []*core.Node,
	np, nr int,
	allowSameNode bool,
	length int64,
	src io.Reader,
) ([]Target, error) {

	probed, err := p.probe(candidates, np+nr, allowSameNode)
	if err != nil {
		return nil, err
	}
	if len(probed) < np+nr {
		return nil, &core.InsufficientCapacityError{Requested: np + nr, Obtained: len(probed)}
	}
	probed = probed[:np+nr]

	streams := make([]core.WriteStreamBlob, len(probed))
	for i, c := range probed {
		ws, err := c.node.CreateWriteStream(c.volumeID, length, []string{core.SHA512})
		if err != nil {
			return nil, err
		}
		streams[i] = ws
	}

	receipts, err := fanOutAndCollect(ctx, src, streams)
	if err != nil {
		return nil, err
	}

	if err := checkDigestAgreement(probed, receipts); err != nil {
		return nil, err
	}

	targets := make([]Target, len(probed))
	for i, c := range probed {
		role := core.RolePrimary
		if i >= np {
			role = core.RoleReplica
		}
		targets[i] = Target{Node: c.node, Role: role, Receipt: receipts[i]}
	}
	return targets, nil
}

// probe walks candidates, resolving each to an XNode and testing canPut on
// its volumes until want targets have been found. A node contributes at
// most one target unless allowSameNode, in which case all of its volumes
// are eligible.
func (p *Planner) probe(candidates []*core.Node, want int, allowSameNode bool) ([]candidate, error) {
	var found []candidate
	for _, node := range candidates {
		if len(found) >= want {
			break
		}
		xn, err := p.Directory.Lookup(node.NodeID)
		if err != nil {
			continue
		}
		for _, vol := range node.Volumes {
			ok, err := xn.CanPut(vol.VolumeID)
			if err != nil || !ok {
				continue
			}
			found = append(found, candidate{node: xn, volumeID: vol.VolumeID})
			if !allowSameNode || len(found) >= want {
				break
			}
		}
	}
	return found, nil
}

// fanOutAndCollect tees src across one pipe per stream and drives each
// stream's Send concurrently, so no stream buffers the whole payload.
func fanOutAndCollect(ctx context.Context, src io.Reader, streams []core.WriteStreamBlob) ([]*core.DigestBlob, error) {
	writers := make([]io.Writer, len(streams))
	pipeWriters := make([]*io.PipeWriter, len(streams))
	receipts := make([]*core.DigestBlob, len(streams))
	errs := make([]error, len(streams))
	done := make(chan struct{}, len(streams))

	for i, ws := range streams {
		pr, pw := io.Pipe()
		pipeWriters[i] = pw
		writers[i] = pw
		i, ws, pr := i, ws, pr
		go func() {
			receipts[i], errs[i] = ws.Send(pr)
			// Closing the read side surfaces a failed sink to the tee on
			// its next write, cancelling the source and remaining sinks.
			pr.CloseWithError(errs[i])
			done <- struct{}{}
		}()
	}

	teeErr := pump.Tee(ctx, src, writers)
	for _, pw := range pipeWriters {
		if teeErr != nil {
			pw.CloseWithError(teeErr)
		} else {
			pw.Close()
		}
	}
	for range streams {
		<-done
	}

	for _, err := range errs {
		if err != nil {
			if teeErr == nil {
				teeErr = err
			}
		}
	}
	if teeErr != nil {
		return nil, teeErr
	}
	return receipts, nil
}

func checkDigestAgreement(probed []candidate, receipts []*core.DigestBlob) error {
	if len(receipts) == 0 {
		return nil
	}
	first, ok := receipts[0].Digests[core.SHA512]
	if !ok {
		return fmt.Errorf("receipt missing %s digest", core.SHA512)
	}
	var targets []string
	var digests []core.Digest
	mismatch := false
	for i, r := range receipts {
		d, ok := r.Digests[core.SHA512]
		if !ok {
			mismatch = true
		}
		targets = append(targets, probed[i].node.NodeID()+"/"+probed[i].volumeID)
		digests = append(digests, d)
		if d != first {
			mismatch = true
		}
	}
	if mismatch {
		return &core.DigestMismatchError{Targets: targets, Digests: digests}
	}
	return nil
}
