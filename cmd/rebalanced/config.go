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
	"fmt"
	"io/ioutil"
	"time"

	"github.com/sfsio/sfs/blobserver"
	"github.com/sfsio/sfs/clusterconfig"
	"github.com/sfsio/sfs/core"
	"github.com/sfsio/sfs/remoteblob"
	"github.com/sfsio/sfs/sfsmetrics"
	"github.com/sfsio/sfs/utils/memsize"

	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

// NodeConfig describes one member of the static cluster roster loaded from
// config. A real deployment resolves this roster from cluster-membership
// discovery instead; rebalanced takes a snapshot from its own config file.
type NodeConfig struct {
	NodeID   string   `yaml:"node_id"`
	Host     string   `yaml:"host"`
	Port     int      `yaml:"port"`
	DataNode bool     `yaml:"data_node"`
	Master   bool     `yaml:"master"`
	Volumes  []string `yaml:"volumes"`
}

// SweepConfig controls the rebalance sweep loop.
type SweepConfig struct {
	// Interval between successive sweeps over the segment roster.
	Interval time.Duration `yaml:"interval"`

	// Concurrency bounds how many segments rebalance concurrently. The
	// controller imposes no cross-segment limit of its own; bounding is
	// the sweep driver's responsibility.
	Concurrency int64 `yaml:"concurrency"`
}

func (c SweepConfig) applyDefaults() SweepConfig {
	if c.Interval == 0 {
		c.Interval = time.Minute
	}
	if c.Concurrency == 0 {
		c.Concurrency = 8
	}
	return c
}

// Config is rebalanced's top-level configuration.
type Config struct {
	ZapLogging zap.Config           `yaml:"zap_logging"`
	Metrics    sfsmetrics.Config    `yaml:"metrics"`
	Cluster    clusterconfig.Config `yaml:"cluster"`
	BlobServer blobserver.Config    `yaml:"blob_server"`
	RemoteBlob remoteblob.Config    `yaml:"remote_blob"`
	Sweep      SweepConfig          `yaml:"sweep"`
	Nodes      []NodeConfig         `yaml:"nodes"`
}

func loadConfig(path string) (Config, error) {
	var c Config
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %s", err)
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("unmarshal config: %s", err)
	}
	if err := c.Cluster.Validate(); err != nil {
		return c, fmt.Errorf("invalid cluster config: %s", err)
	}
	c.Sweep = c.Sweep.applyDefaults()
	c.RemoteBlob = c.RemoteBlob.ApplyDefaults()
	return c, nil
}

// coreNodes converts the static roster into core.Node values used as the
// candidate data-node snapshot handed to rebalance.Index.ListDataNodes.
func (c Config) coreNodes() []*core.Node {
	nodes := make([]*core.Node, 0, len(c.Nodes))
	for _, n := range c.Nodes {
		node := &core.Node{
			NodeID:   n.NodeID,
			Host:     n.Host,
			Port:     n.Port,
			DataNode: n.DataNode,
			Master:   n.Master,
		}
		for _, vid := range n.Volumes {
			node.Volumes = append(node.Volumes, &core.Volume{
				VolumeID: vid,
				Capacity: memsize.GB,
				Health:   core.VolumeUsable,
			})
		}
		nodes = append(nodes, node)
	}
	return nodes
}
