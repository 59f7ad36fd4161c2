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

// Package volume implements the local-node side of the six peer wire
// protocol operations against a node's volumes. The on-disk layout of a
// volume is out of scope; Store exposes just enough surface for the
// in-memory reference implementation and for LocalNode to drive.
package volume

import (
	"bytes"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"sync"

	"github.com/sfsio/sfs/core"
)

// ErrVolumeNotFound is returned when an operation references a volume id
// this store does not manage.
var ErrVolumeNotFound = errors.New("volume not found")

// Store is the local-node counterpart of remoteblob.Client: the same six
// operations, serviced by direct access to a volume's blobs instead of an
// HTTP round trip.
type Store interface {
	CanPut(volumeID string) (bool, error)
	Checksum(volumeID string, position, offset, length int64, digestAlgos []string) (*core.DigestBlob, error)
	Delete(volumeID string, position int64) (*core.HeaderBlob, error)
	Acknowledge(volumeID string, position int64) (*core.HeaderBlob, error)
	CreateReadStream(volumeID string, position, offset, length int64) (*core.ReadStreamBlob, error)
	CreateWriteStream(volumeID string, length int64, digestAlgos []string) (core.WriteStreamBlob, error)

	// AddVolume registers a volume of the given capacity with the store.
	AddVolume(v *core.Volume)
	// Volumes returns the volumes currently registered with the store.
	Volumes() []*core.Volume
}

type blobEntry struct {
	content []byte
	acked   bool
	deleted bool
}

// InMemoryStore is a Store backed entirely by process memory, sufficient
// for tests and for the reference deployment. Each volume's blobs are
// appended at monotonically increasing positions.
type InMemoryStore struct {
	mu      sync.Mutex
	volumes map[string]*core.Volume
	blobs   map[string]map[int64]*blobEntry
	nextPos map[string]int64
}

// NewInMemoryStore returns an empty InMemoryStore.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		volumes: make(map[string]*core.Volume),
		blobs:   make(map[string]map[int64]*blobEntry),
		nextPos: make(map[string]int64),
	}
}

// AddVolume implements Store.
func (s *InMemoryStore) AddVolume(v *core.Volume) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.volumes[v.VolumeID] = v
	s.blobs[v.VolumeID] = make(map[int64]*blobEntry)
}

// Volumes implements Store.
func (s *InMemoryStore) Volumes() []*core.Volume {
	s.mu.Lock()
	defer s.mu.Unlock()
	vs := make([]*core.Volume, 0, len(s.volumes))
	for _, v := range s.volumes {
		vs = append(vs, v)
	}
	return vs
}

// CanPut implements Store.
func (s *InMemoryStore) CanPut(volumeID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.volumes[volumeID]
	if !ok {
		return false, ErrVolumeNotFound
	}
	return v.Usable(), nil
}

// Checksum implements Store.
func (s *InMemoryStore) Checksum(volumeID string, position, offset, length int64, digestAlgos []string) (*core.DigestBlob, error) {
	s.mu.Lock()
	entry, ok := s.entryLocked(volumeID, position)
	s.mu.Unlock()
	if !ok {
		return nil, nil
	}
	payload := sliceBlob(entry.content, offset, length)
	digests, err := computeDigests(payload, digestAlgos)
	if err != nil {
		return nil, err
	}
	return &core.DigestBlob{
		Volume:   volumeID,
		Position: position,
		Length:   int64(len(payload)),
		Digests:  digests,
	}, nil
}

// Delete implements Store.
func (s *InMemoryStore) Delete(volumeID string, position int64) (*core.HeaderBlob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entryLocked(volumeID, position)
	if !ok || entry.deleted {
		return nil, nil
	}
	entry.deleted = true
	return &core.HeaderBlob{}, nil
}

// Acknowledge implements Store.
func (s *InMemoryStore) Acknowledge(volumeID string, position int64) (*core.HeaderBlob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entryLocked(volumeID, position)
	if !ok || entry.acked {
		return nil, nil
	}
	entry.acked = true
	return &core.HeaderBlob{}, nil
}

// CreateReadStream implements Store.
func (s *InMemoryStore) CreateReadStream(volumeID string, position, offset, length int64) (*core.ReadStreamBlob, error) {
	s.mu.Lock()
	entry, ok := s.entryLocked(volumeID, position)
	s.mu.Unlock()
	if !ok {
		return nil, nil
	}
	payload := sliceBlob(entry.content, offset, length)
	return &core.ReadStreamBlob{
		Length: int64(len(payload)),
		Body:   ioutil.NopCloser(bytes.NewReader(payload)),
	}, nil
}

// CreateWriteStream implements Store.
func (s *InMemoryStore) CreateWriteStream(volumeID string, length int64, digestAlgos []string) (core.WriteStreamBlob, error) {
	s.mu.Lock()
	_, ok := s.volumes[volumeID]
	s.mu.Unlock()
	if !ok {
		return nil, ErrVolumeNotFound
	}
	return &memWriteStream{store: s, volumeID: volumeID, length: length, digestAlgos: digestAlgos}, nil
}

func (s *InMemoryStore) entry(volumeID string, position int64) (*blobEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entryLocked(volumeID, position)
}

func (s *InMemoryStore) entryLocked(volumeID string, position int64) (*blobEntry, bool) {
	vol, ok := s.blobs[volumeID]
	if !ok {
		return nil, false
	}
	entry, ok := vol[position]
	return entry, ok
}

type memWriteStream struct {
	store       *InMemoryStore
	volumeID    string
	length      int64
	digestAlgos []string
	sent        bool
}

// Send implements core.WriteStreamBlob.
func (w *memWriteStream) Send(src io.Reader) (*core.DigestBlob, error) {
	if w.sent {
		return nil, errors.New("write stream already sent")
	}
	w.sent = true

	content, err := ioutil.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read payload: %s", err)
	}

	digests, err := computeDigests(content, w.digestAlgos)
	if err != nil {
		return nil, err
	}

	w.store.mu.Lock()
	v, ok := w.store.volumes[w.volumeID]
	if !ok {
		w.store.mu.Unlock()
		return nil, ErrVolumeNotFound
	}
	if v.Remaining() < uint64(len(content)) {
		w.store.mu.Unlock()
		return nil, &core.InsufficientCapacityError{Requested: len(content), Obtained: int(v.Remaining())}
	}
	position := w.store.nextPos[w.volumeID]
	w.store.nextPos[w.volumeID] = position + 1
	w.store.blobs[w.volumeID][position] = &blobEntry{content: content}
	v.Used += uint64(len(content))
	w.store.mu.Unlock()

	return &core.DigestBlob{
		Volume:   w.volumeID,
		Position: position,
		Length:   int64(len(content)),
		Digests:  digests,
	}, nil
}

func sliceBlob(content []byte, offset, length int64) []byte {
	if offset <= 0 && length <= 0 {
		return content
	}
	start := int64(0)
	if offset > 0 {
		start = offset
	}
	if start > int64(len(content)) {
		return nil
	}
	end := int64(len(content))
	if length > 0 && start+length < end {
		end = start + length
	}
	return content[start:end]
}

func computeDigests(content []byte, algos []string) (map[string]core.Digest, error) {
	if len(algos) == 0 {
		algos = []string{core.SHA512}
	}
	digests := make(map[string]core.Digest, len(algos))
	for _, algo := range algos {
		var hexDigest string
		switch algo {
		case core.SHA512:
			sum := sha512.Sum512(content)
			hexDigest = hex.EncodeToString(sum[:])
		default:
			return nil, fmt.Errorf("unsupported digest algorithm %q", algo)
		}
		d, err := core.NewDigestFromHex(algo, hexDigest)
		if err != nil {
			return nil, err
		}
		digests[algo] = d
	}
	return digests, nil
}
