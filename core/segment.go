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
package core

import (
	"strconv"
	"sync"
)

// Role identifies whether a BlobReference is a primary or a replica copy.
type Role int

// Roles a BlobReference can hold.
const (
	RolePrimary Role = iota
	RoleReplica
)

// String implements fmt.Stringer.
func (r Role) String() string {
	switch r {
	case RolePrimary:
		return "primary"
	case RoleReplica:
		return "replica"
	default:
		return "unknown"
	}
}

// VolumeHealth describes the usability of a Volume.
type VolumeHealth int

// Volume health states.
const (
	VolumeUsable VolumeHealth = iota
	VolumeFull
	VolumeFailed
)

// Volume is a unit of physical storage belonging to exactly one Node.
// VolumeID is unique cluster-wide.
type Volume struct {
	VolumeID string
	Capacity uint64
	Used     uint64
	Health   VolumeHealth
}

// Usable reports whether v can currently accept a new blob copy.
func (v *Volume) Usable() bool {
	return v.Health == VolumeUsable
}

// Remaining returns the number of unused bytes on v.
func (v *Volume) Remaining() uint64 {
	if v.Used >= v.Capacity {
		return 0
	}
	return v.Capacity - v.Used
}

// Node is a cluster member. Membership is discovered externally and passed
// into the core as an immutable snapshot; the core never mutates it.
type Node struct {
	NodeID   string
	Host     string
	Port     int
	DataNode bool
	Master   bool
	Volumes  []*Volume
}

// HostAndPort returns the "host:port" network address of n.
func (n *Node) HostAndPort() string {
	return n.Host + ":" + strconv.Itoa(n.Port)
}

// BlobReference is one physical copy of a segment's payload living on a
// specific (nodeId, volumeId, position) triple.
type BlobReference struct {
	NodeID          string
	VolumeID        string
	Position        int64
	Length          int64
	Digests         map[string]Digest // keyed by algorithm, e.g. core.SHA512
	Role            Role
	VerifyFailCount int
	Acked           bool
	Deleted         bool
}

// Eligible reports whether ref may be used to serve reads or count toward
// replication requirements: it must be acknowledged, have never failed
// verification, and not be marked deleted.
func (ref *BlobReference) Eligible() bool {
	return !ref.Deleted && ref.VerifyFailCount == 0 && ref.Acked
}

// Segment is the logical unit of an object's content chunked at the object
// layer. It holds two parallel lists of BlobReference and is the unit of
// mutation for rebalancing: all mutations to a segment's reference lists
// must hold Mu.
type Segment struct {
	Mu sync.Mutex

	ID            string
	PrimaryBlobs  []*BlobReference
	ReplicaBlobs  []*BlobReference

	// TinyData indicates the segment's payload is embedded inline in the
	// index entry itself, and therefore never needs placement.
	TinyData bool

	// Pexp is the required primary count for this segment. Rexp is the
	// required replica count. Invariant: Pexp+Rexp >= 1.
	Pexp int
	Rexp int
}

// EligiblePrimaries returns the segment's eligible primary references.
func (s *Segment) EligiblePrimaries() []*BlobReference {
	return eligible(s.PrimaryBlobs)
}

// EligibleReplicas returns the segment's eligible replica references.
func (s *Segment) EligibleReplicas() []*BlobReference {
	return eligible(s.ReplicaBlobs)
}

func eligible(refs []*BlobReference) []*BlobReference {
	var out []*BlobReference
	for _, ref := range refs {
		if ref.Eligible() {
			out = append(out, ref)
		}
	}
	return out
}

// UsedVolumeIDs returns the union of (nodeId, volumeId) pairs used by any
// non-deleted reference (primary or replica) of s, formatted as
// "nodeId/volumeId" so they can be compared as plain strings.
func (s *Segment) UsedVolumeIDs() map[string]bool {
	used := make(map[string]bool)
	addUsed := func(refs []*BlobReference) {
		for _, ref := range refs {
			if ref.Deleted {
				continue
			}
			used[ref.NodeID+"/"+ref.VolumeID] = true
		}
	}
	addUsed(s.PrimaryBlobs)
	addUsed(s.ReplicaBlobs)
	return used
}

// AppendReference appends ref to s's primary or replica list according to
// ref.Role. Callers must hold s.Mu.
func (s *Segment) AppendReference(ref *BlobReference) {
	switch ref.Role {
	case RolePrimary:
		s.PrimaryBlobs = append(s.PrimaryBlobs, ref)
	case RoleReplica:
		s.ReplicaBlobs = append(s.ReplicaBlobs, ref)
	}
}
