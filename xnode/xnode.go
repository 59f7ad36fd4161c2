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

// Package xnode provides the uniform node abstraction: the rebalance
// and placement cores drive every node, local or remote, through the same
// six operations, polymorphic over XNode and never branching on variant.
package xnode

import (
	"github.com/sfsio/sfs/core"
	"github.com/sfsio/sfs/remoteblob"
	"github.com/sfsio/sfs/volume"
)

// XNode exposes the peer wire protocol operations plus node identity.
// Implementations must not be discriminated on by callers: the rebalance
// core is polymorphic over this interface.
type XNode interface {
	NodeID() string
	HostAndPort() string
	IsLocal() bool

	Checksum(volumeID string, position, offset, length int64, digestAlgos []string) (*core.DigestBlob, error)
	Delete(volumeID string, position int64) (*core.HeaderBlob, error)
	Acknowledge(volumeID string, position int64) (*core.HeaderBlob, error)
	CanPut(volumeID string) (bool, error)
	CreateReadStream(volumeID string, position, offset, length int64) (*core.ReadStreamBlob, error)
	CreateWriteStream(volumeID string, length int64, digestAlgos []string) (core.WriteStreamBlob, error)
}

// LocalNode services the six operations by direct volume I/O: used when the
// target node is the current process.
type LocalNode struct {
	node  *core.Node
	store volume.Store
}

// NewLocalNode returns a LocalNode wrapping store for node.
func NewLocalNode(node *core.Node, store volume.Store) *LocalNode {
	return &LocalNode{node: node, store: store}
}

// NodeID implements XNode.
func (n *LocalNode) NodeID() string { return n.node.NodeID }

// HostAndPort implements XNode.
func (n *LocalNode) HostAndPort() string { return n.node.HostAndPort() }

// IsLocal implements XNode.
func (n *LocalNode) IsLocal() bool { return true }

// Checksum implements XNode.
func (n *LocalNode) Checksum(volumeID string, position, offset, length int64, digestAlgos []string) (*core.DigestBlob, error) {
	return n.store.Checksum(volumeID, position, offset, length, digestAlgos)
}

// Delete implements XNode.
func (n *LocalNode) Delete(volumeID string, position int64) (*core.HeaderBlob, error) {
	return n.store.Delete(volumeID, position)
}

// Acknowledge implements XNode.
func (n *LocalNode) Acknowledge(volumeID string, position int64) (*core.HeaderBlob, error) {
	return n.store.Acknowledge(volumeID, position)
}

// CanPut implements XNode.
func (n *LocalNode) CanPut(volumeID string) (bool, error) {
	return n.store.CanPut(volumeID)
}

// CreateReadStream implements XNode.
func (n *LocalNode) CreateReadStream(volumeID string, position, offset, length int64) (*core.ReadStreamBlob, error) {
	return n.store.CreateReadStream(volumeID, position, offset, length)
}

// CreateWriteStream implements XNode.
func (n *LocalNode) CreateWriteStream(volumeID string, length int64, digestAlgos []string) (core.WriteStreamBlob, error) {
	return n.store.CreateWriteStream(volumeID, length, digestAlgos)
}

// RemoteNode thinly wraps a peer's identity around a remoteblob client.
type RemoteNode struct {
	client remoteblob.Client
}

// NewRemoteNode returns a RemoteNode backed by client.
func NewRemoteNode(client remoteblob.Client) *RemoteNode {
	return &RemoteNode{client: client}
}

// NodeID implements XNode.
func (n *RemoteNode) NodeID() string { return n.client.NodeID() }

// HostAndPort implements XNode.
func (n *RemoteNode) HostAndPort() string { return n.client.Addr() }

// IsLocal implements XNode.
func (n *RemoteNode) IsLocal() bool { return false }

// Checksum implements XNode.
func (n *RemoteNode) Checksum(volumeID string, position, offset, length int64, digestAlgos []string) (*core.DigestBlob, error) {
	return n.client.Checksum(volumeID, position, offset, length, digestAlgos)
}

// Delete implements XNode.
func (n *RemoteNode) Delete(volumeID string, position int64) (*core.HeaderBlob, error) {
	return n.client.Delete(volumeID, position)
}

// Acknowledge implements XNode.
func (n *RemoteNode) Acknowledge(volumeID string, position int64) (*core.HeaderBlob, error) {
	return n.client.Acknowledge(volumeID, position)
}

// CanPut implements XNode.
func (n *RemoteNode) CanPut(volumeID string) (bool, error) {
	return n.client.CanPut(volumeID)
}

// CreateReadStream implements XNode.
func (n *RemoteNode) CreateReadStream(volumeID string, position, offset, length int64) (*core.ReadStreamBlob, error) {
	return n.client.CreateReadStream(volumeID, position, offset, length)
}

// CreateWriteStream implements XNode.
func (n *RemoteNode) CreateWriteStream(volumeID string, length int64, digestAlgos []string) (core.WriteStreamBlob, error) {
	return n.client.CreateWriteStream(volumeID, length, digestAlgos)
}

// NodeDirectory resolves a node id to an XNode, choosing the Local or
// Remote variant once at lookup time.
type NodeDirectory interface {
	Lookup(nodeID string) (XNode, error)
}
