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

// Package clusterconfig loads the cluster-wide replication policy: the
// configured primary/replica counts, the same-node placement flag, and
// per-container replica overrides. Config implements rebalance.Nodes
// directly, so it can be handed to rebalance.NewController without an
// adapter.
package clusterconfig

import (
	"encoding/base64"
	"fmt"
	"io/ioutil"

	"gopkg.in/validator.v2"
	"gopkg.in/yaml.v2"
)

// Config is the cluster-wide replication policy.
type Config struct {
	// Primaries is the cluster-wide required primary copy count.
	Primaries int `yaml:"primaries" validate:"min=1"`

	// Replicas is the cluster-wide default required replica copy count,
	// used for any container with no entry in ReplicaOverrides.
	Replicas int `yaml:"replicas"`

	// AllowSameNode permits a segment's targets to share a node across
	// distinct volumes.
	AllowSameNode bool `yaml:"allow_same_node"`

	// Master marks this process as the one that runs the rebalance sweep.
	// Consulted by the external sweep driver (cmd/rebalanced), not by the
	// Controller itself.
	Master bool `yaml:"master"`

	// SecretBase64 is the cluster-wide shared secret, base64-encoded as it
	// appears on the wire, used to authenticate peer wire protocol calls.
	SecretBase64 string `yaml:"secret" validate:"nonzero"`

	// ReplicaOverrides maps a container name to a required replica count
	// overriding Replicas for segments belonging to that container.
	ReplicaOverrides map[string]int `yaml:"replica_overrides"`
}

// Load reads and validates a Config from a YAML file at path.
func Load(path string) (Config, error) {
	var c Config
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %s", err)
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("unmarshal config: %s", err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("invalid config: %s", err)
	}
	return c, nil
}

// Validate checks c's required fields.
func (c Config) Validate() error {
	return validator.Validate(c)
}

// Secret decodes SecretBase64 into the raw cluster-shared secret bytes.
func (c Config) Secret() ([]byte, error) {
	return base64.StdEncoding.DecodeString(c.SecretBase64)
}

// GetNumberOfPrimaries implements rebalance.Nodes.
func (c Config) GetNumberOfPrimaries() int { return c.Primaries }

// GetNumberOfReplicas implements rebalance.Nodes.
func (c Config) GetNumberOfReplicas() int { return c.Replicas }

// IsAllowSameNode implements rebalance.Nodes.
func (c Config) IsAllowSameNode() bool { return c.AllowSameNode }

// IsMaster implements rebalance.Nodes.
func (c Config) IsMaster() bool { return c.Master }

// ReplicasForContainer resolves the required replica count for a segment
// belonging to container: the per-container override if one is configured,
// else the cluster-wide default.
func (c Config) ReplicasForContainer(container string) int {
	if n, ok := c.ReplicaOverrides[container]; ok {
		return n
	}
	return c.Replicas
}
