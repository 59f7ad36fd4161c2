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

// Command rebalanced runs the replica-placement and rebalancing core as a
// standalone background loop against a static cluster roster: it serves
// the peer wire protocol for its own node's volumes and periodically sweeps
// a segment roster through the rebalance controller.
package main

import (
	"context"
	"net/http"
	"os"

	"github.com/sfsio/sfs/blobserver"
	"github.com/sfsio/sfs/core"
	"github.com/sfsio/sfs/rebalance"
	"github.com/sfsio/sfs/remoteblob"
	"github.com/sfsio/sfs/sfslog"
	"github.com/sfsio/sfs/sfsmetrics"
	"github.com/sfsio/sfs/utils/memsize"
	"github.com/sfsio/sfs/volume"
	"github.com/sfsio/sfs/xnode"

	"github.com/andres-erbsen/clock"
	"golang.org/x/sync/semaphore"
)

func main() {
	Run(ParseFlags())
}

// Run loads configuration, wires the core components, and runs the
// rebalance sweep loop until the process is killed.
func Run(flags *Flags) {
	if flags.NodeID == "" {
		panic("must specify -node-id")
	}
	if flags.ConfigFile == "" {
		panic("must specify -config")
	}

	config, err := loadConfig(flags.ConfigFile)
	if err != nil {
		panic(err)
	}

	if err := sfslog.Configure(config.ZapLogging); err != nil {
		panic(err)
	}

	secret, err := config.Cluster.Secret()
	if err != nil {
		sfslog.Errorf("decode cluster secret: %s", err)
		os.Exit(1)
	}
	if len(config.BlobServer.Secret) == 0 {
		config.BlobServer.Secret = secret
	}

	stats, closer, err := sfsmetrics.New(config.Metrics, flags.NodeID)
	if err != nil {
		sfslog.Errorf("init metrics: %s", err)
		os.Exit(1)
	}
	defer closer.Close()

	go sfsmetrics.EmitVersion(stats)

	clk := clock.New()

	store := setupLocalStore(config, flags.NodeID)
	server := blobserver.New(config.BlobServer, stats, clk, store)

	nodes := config.coreNodes()
	provider := remoteblob.NewProvider(secret, remoteblob.WithTimeout(config.RemoteBlob.Timeout))
	dir := xnode.NewClusterDirectory(flags.NodeID, nodes, store, provider)

	index := newMemIndex(nodes, dir)
	controller := rebalance.NewController(dir, config.Cluster, index)

	if flags.ListenAddr != "" {
		h := mountAdminRoutes(server.Handler(), index, config.Cluster)
		go func() {
			sfslog.Errorf("blob server exited: %s", http.ListenAndServe(flags.ListenAddr, h))
		}()
	}

	if !config.Cluster.IsMaster() {
		sfslog.Info("not the rebalance master for this cluster; serving blob protocol only")
		select {}
	}

	runSweepLoop(context.Background(), clk, controller, index, config.Sweep)
}

func setupLocalStore(config Config, nodeID string) volume.Store {
	store := volume.NewInMemoryStore()
	for _, n := range config.Nodes {
		if n.NodeID != nodeID {
			continue
		}
		for _, vid := range n.Volumes {
			store.AddVolume(&core.Volume{
				VolumeID: vid,
				Capacity: memsize.GB,
				Health:   core.VolumeUsable,
			})
		}
	}
	return store
}

// runSweepLoop periodically rebalances every segment known to index,
// bounding cross-segment concurrency with a semaphore: the controller
// imposes no such limit itself, so the sweep driver must.
// Ticking is driven through clk rather than the time package directly, so
// tests can advance a fake clock instead of sleeping real wall time.
func runSweepLoop(ctx context.Context, clk clock.Clock, controller *rebalance.Controller, index *memIndex, sweep SweepConfig) {
	ticker := clk.Ticker(sweep.Interval)
	defer ticker.Stop()

	for range ticker.C {
		sweepOnce(ctx, controller, index, sweep.Concurrency)
	}
}

func sweepOnce(ctx context.Context, controller *rebalance.Controller, index *memIndex, concurrency int64) {
	segments := index.Segments()
	sem := semaphore.NewWeighted(concurrency)

	for _, seg := range segments {
		if err := sem.Acquire(ctx, 1); err != nil {
			return
		}
		go func(seg *core.Segment) {
			defer sem.Release(1)
			changed := controller.Rebalance(ctx, seg)
			sfslog.With("segment", seg.ID, "changed", changed).Debug("rebalance pass complete")
		}(seg)
	}

	// Wait for the in-flight passes of this sweep to drain before the next
	// tick fires, by reacquiring the full weight.
	sem.Acquire(ctx, concurrency)
}
