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
	"fmt"
	"sync"

	"github.com/sfsio/sfs/core"
	"github.com/sfsio/sfs/remoteblob"
	"github.com/sfsio/sfs/volume"
)

// ClusterDirectory is a NodeDirectory backed by a static node snapshot: one
// node is serviced locally (via store), the rest are resolved to
// RemoteNodes through provider. The cluster snapshot is immutable for the
// lifetime of a ClusterDirectory; membership changes require constructing
// a new one.
type ClusterDirectory struct {
	localNodeID string
	store       volume.Store
	provider    remoteblob.Provider

	mu    sync.Mutex
	nodes map[string]*core.Node
	cache map[string]XNode
}

// NewClusterDirectory returns a ClusterDirectory over nodes, servicing
// localNodeID directly through store and every other node through
// provider.
func NewClusterDirectory(localNodeID string, nodes []*core.Node, store volume.Store, provider remoteblob.Provider) *ClusterDirectory {
	byID := make(map[string]*core.Node, len(nodes))
	for _, n := range nodes {
		byID[n.NodeID] = n
	}
	return &ClusterDirectory{
		localNodeID: localNodeID,
		store:       store,
		provider:    provider,
		nodes:       byID,
		cache:       make(map[string]XNode),
	}
}

// Lookup implements NodeDirectory.
func (d *ClusterDirectory) Lookup(nodeID string) (XNode, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if cached, ok := d.cache[nodeID]; ok {
		return cached, nil
	}

	node, ok := d.nodes[nodeID]
	if !ok {
		return nil, fmt.Errorf("unknown node %q", nodeID)
	}

	var xn XNode
	if nodeID == d.localNodeID {
		xn = NewLocalNode(node, d.store)
	} else {
		xn = NewRemoteNode(d.provider.Provide(nodeID, node.HostAndPort()))
	}
	d.cache[nodeID] = xn
	return xn, nil
}

// Nodes returns the full node roster known to d.
func (d *ClusterDirectory) Nodes() []*core.Node {
	d.mu.Lock()
	defer d.mu.Unlock()
	nodes := make([]*core.Node, 0, len(d.nodes))
	for _, n := range d.nodes {
		nodes = append(nodes, n)
	}
	return nodes
}
