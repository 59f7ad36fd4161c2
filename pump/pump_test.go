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
package pump

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPumpCopiesBytes(t *testing.T) {
	require := require.New(t)
	var dst bytes.Buffer
	err := Pump(context.Background(), &dst, strings.NewReader("payload"))
	require.NoError(err)
	require.Equal("payload", dst.String())
}

func TestPumpPropagatesSourceError(t *testing.T) {
	require := require.New(t)
	var dst bytes.Buffer
	err := Pump(context.Background(), &dst, errReader{errors.New("source broke")})
	require.Error(err)
}

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

type errWriter struct{ err error }

func (w errWriter) Write([]byte) (int, error) { return 0, w.err }

func TestTeeFansOutToAllSinks(t *testing.T) {
	require := require.New(t)
	var a, b, c bytes.Buffer

	err := Tee(context.Background(), strings.NewReader("fan out me"), []io.Writer{&a, &b, &c})
	require.NoError(err)
	require.Equal("fan out me", a.String())
	require.Equal("fan out me", b.String())
	require.Equal("fan out me", c.String())
}

func TestTeeAbortsOnSinkFailure(t *testing.T) {
	require := require.New(t)
	var good bytes.Buffer
	bad := errWriter{errors.New("disk full")}

	err := Tee(context.Background(), strings.NewReader("payload"), []io.Writer{&good, bad})
	require.Error(err)
}

func TestTeeNoSinksDrainsSource(t *testing.T) {
	require := require.New(t)
	err := Tee(context.Background(), strings.NewReader("drained"), nil)
	require.NoError(err)
}

func TestCombineDelayErrorMergesOnSuccess(t *testing.T) {
	require := require.New(t)
	result, err := CombineDelayError(
		func() error { return nil },
		func() error { return nil },
		func() (interface{}, error) { return "merged", nil },
	)
	require.NoError(err)
	require.Equal("merged", result)
}

func TestCombineDelayErrorWaitsForBothBeforeFailing(t *testing.T) {
	require := require.New(t)
	secondRan := false
	_, err := CombineDelayError(
		func() error { return errors.New("first failed") },
		func() error { secondRan = true; return nil },
		func() (interface{}, error) { return "merged", nil },
	)
	require.Error(err)
	require.True(secondRan)
}
