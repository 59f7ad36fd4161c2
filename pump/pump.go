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

// Package pump implements the streaming primitives used to move a
// segment's byte source to one or more remote write streams without
// buffering the whole payload in memory.
package pump

import (
	"context"
	"io"
	"sync"

	"github.com/sfsio/sfs/utils/errutil"
)

// Pump copies src to dst, propagating either side's error. It terminates
// early if ctx is cancelled.
func Pump(ctx context.Context, dst io.Writer, src io.Reader) error {
	done := make(chan error, 1)
	go func() {
		_, err := io.Copy(dst, src)
		done <- err
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}

// CombineDelayError waits for both a and b to settle, delays the first
// failure until both completions are in, then either returns merge(a, b)
// or a single error joining every failure, a's before b's.
func CombineDelayError(a, b func() error, merge func() (interface{}, error)) (interface{}, error) {
	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(2)
	go func() { defer wg.Done(); errs[0] = a() }()
	go func() { defer wg.Done(); errs[1] = b() }()
	wg.Wait()

	if errs[0] != nil || errs[1] != nil {
		var failed []error
		for _, err := range errs {
			if err != nil {
				failed = append(failed, err)
			}
		}
		return nil, errutil.Join(failed)
	}
	return merge()
}

// Tee wires one source to many sinks such that the source advances at the
// rate of the slowest sink: each chunk read from src is fanned out to every
// sink before the next chunk is read. If any sink fails, no further chunks
// are read or written and the errors of every sink that failed on that
// chunk are returned joined; no sink buffers the payload unbounded.
func Tee(ctx context.Context, src io.Reader, sinks []io.Writer) error {
	if len(sinks) == 0 {
		_, err := io.Copy(io.Discard, src)
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	buf := make([]byte, 32*1024)
	for {
		n, readErr := src.Read(buf)
		if n > 0 {
			if err := fanOut(ctx, buf[:n], sinks); err != nil {
				cancel()
				return err
			}
		}
		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			return readErr
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
}

func fanOut(ctx context.Context, chunk []byte, sinks []io.Writer) error {
	var wg sync.WaitGroup
	errs := make([]error, len(sinks))
	wg.Add(len(sinks))
	for i, sink := range sinks {
		i, sink := i, sink
		go func() {
			defer wg.Done()
			select {
			case <-ctx.Done():
				errs[i] = ctx.Err()
				return
			default:
			}
			if _, err := sink.Write(chunk); err != nil {
				errs[i] = err
			}
		}()
	}
	wg.Wait()

	var failed []error
	for _, err := range errs {
		if err != nil {
			failed = append(failed, err)
		}
	}
	return errutil.Join(failed)
}
