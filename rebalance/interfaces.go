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

// Package rebalance implements the rebalance controller and segment
// reader: the per-segment decision to balance copy counts up or down,
// and the logic for locating a readable source among a segment's existing
// copies.
package rebalance

import "github.com/sfsio/sfs/core"

// Nodes is the cluster-wide replication policy collaborator: primary and
// replica counts, the same-node placement flag, and whether this process is
// the cluster master (consulted by the external sweep driver, not by the
// Controller itself).
type Nodes interface {
	GetNumberOfPrimaries() int
	GetNumberOfReplicas() int
	IsAllowSameNode() bool
	IsMaster() bool
}

// Index is the object-metadata index collaborator: the candidate data-node
// roster, and physical+index-level deletion of a single blob reference.
type Index interface {
	// ListDataNodes returns a snapshot of the cluster's data nodes.
	ListDataNodes() []*core.Node

	// DeleteBlobReference issues the physical delete against ref's owning
	// node and acknowledges the deletion at the index layer, reporting
	// whether it took effect.
	DeleteBlobReference(ref *core.BlobReference) bool
}
