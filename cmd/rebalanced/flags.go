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

import "flag"

// Flags defines rebalanced CLI flags.
type Flags struct {
	ConfigFile string
	NodeID     string
	ListenAddr string
}

// ParseFlags parses rebalanced CLI flags.
func ParseFlags() *Flags {
	var f Flags
	flag.StringVar(&f.ConfigFile, "config", "", "configuration file path")
	flag.StringVar(&f.NodeID, "node-id", "", "this node's cluster-wide identity")
	flag.StringVar(&f.ListenAddr, "listen", "", "address the local blob server listens on")
	flag.Parse()
	return &f
}
