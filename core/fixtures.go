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
	"fmt"

	"github.com/sfsio/sfs/utils/memsize"
	"github.com/sfsio/sfs/utils/randutil"
)

// SHA512DigestFixture returns a random sha512 Digest.
func SHA512DigestFixture() Digest {
	d, err := NewDigestFromHex(SHA512, randutil.Hex(128))
	if err != nil {
		panic(err)
	}
	return d
}

// VolumeFixture returns a Volume with random id and ample free capacity.
func VolumeFixture() *Volume {
	return &Volume{
		VolumeID: fmt.Sprintf("vol-%s", randutil.Hex(8)),
		Capacity: memsize.GB,
		Used:     0,
		Health:   VolumeUsable,
	}
}

// NodeFixture returns a Node with n random usable volumes.
func NodeFixture(numVolumes int) *Node {
	node := &Node{
		NodeID:   fmt.Sprintf("node-%s", randutil.Hex(8)),
		Host:     randutil.IP(),
		Port:     randutil.Port(),
		DataNode: true,
	}
	for i := 0; i < numVolumes; i++ {
		node.Volumes = append(node.Volumes, VolumeFixture())
	}
	return node
}

// BlobReferenceFixture returns an eligible, randomly populated
// BlobReference on the given node/volume with the given role.
func BlobReferenceFixture(nodeID, volumeID string, role Role) *BlobReference {
	return &BlobReference{
		NodeID:   nodeID,
		VolumeID: volumeID,
		Position: 0,
		Length:   int64(memsize.MB),
		Digests:  map[string]Digest{SHA512: SHA512DigestFixture()},
		Role:     role,
		Acked:    true,
	}
}

// SegmentFixture returns a Segment with numPrimaries eligible primary refs
// and numReplicas eligible replica refs, each on a distinct fixture
// node/volume pair.
func SegmentFixture(numPrimaries, numReplicas int) *Segment {
	seg := &Segment{
		ID:   fmt.Sprintf("seg-%s", randutil.Hex(8)),
		Pexp: numPrimaries,
		Rexp: numReplicas,
	}
	for i := 0; i < numPrimaries; i++ {
		node := NodeFixture(1)
		seg.PrimaryBlobs = append(seg.PrimaryBlobs, BlobReferenceFixture(node.NodeID, node.Volumes[0].VolumeID, RolePrimary))
	}
	for i := 0; i < numReplicas; i++ {
		node := NodeFixture(1)
		seg.ReplicaBlobs = append(seg.ReplicaBlobs, BlobReferenceFixture(node.NodeID, node.Volumes[0].VolumeID, RoleReplica))
	}
	return seg
}
