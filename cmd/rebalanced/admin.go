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
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/sfsio/sfs/clusterconfig"
	"github.com/sfsio/sfs/core"
	"github.com/sfsio/sfs/utils/handler"
)

// registerSegmentRequest is the wire shape accepted by the admin segment
// registration endpoint: a segment's id, its container (used to resolve
// Rexp), and its tiny-data flag. It carries no blob references; a segment
// registered through it starts with empty reference lists.
type registerSegmentRequest struct {
	ID        string `json:"id"`
	Container string `json:"container"`
	TinyData  bool   `json:"tiny_data"`
}

// mountAdminRoutes adds rebalanced's own admin surface to h: a PUT
// /x/segments endpoint that registers a segment with the sweep roster,
// standing in for the bulk updates the real object-metadata index would
// otherwise push in.
func mountAdminRoutes(h http.Handler, index *memIndex, cluster clusterconfig.Config) http.Handler {
	r := chi.NewRouter()

	r.Put("/x/segments", handler.Wrap(func(w http.ResponseWriter, req *http.Request) error {
		var body registerSegmentRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			return handler.Errorf("decode body: %s", err)
		}
		if body.ID == "" {
			return handler.ErrorStatus(http.StatusBadRequest)
		}
		seg := &core.Segment{
			ID:       body.ID,
			TinyData: body.TinyData,
			Pexp:     cluster.GetNumberOfPrimaries(),
			Rexp:     cluster.ReplicasForContainer(body.Container),
		}
		index.AddSegment(seg)
		w.WriteHeader(http.StatusNoContent)
		return nil
	}))

	r.Mount("/", h)
	return r
}
