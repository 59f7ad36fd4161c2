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

// Package sfslog provides the process-wide structured logger. Components
// call the package-level functions directly rather than threading a logger
// through every constructor.
package sfslog

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu  sync.RWMutex
	log = zap.NewNop().Sugar()
)

// Configure installs cfg as the process-wide logger. Call once at process
// startup; defaults to a no-op logger until then.
func Configure(cfg zap.Config) error {
	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	mu.Lock()
	log = logger.Sugar()
	mu.Unlock()
	return nil
}

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// With returns a logger annotated with the given key-value pairs.
func With(args ...interface{}) *zap.SugaredLogger {
	return current().With(args...)
}

// Debug logs at debug level.
func Debug(args ...interface{}) { current().Debug(args...) }

// Debugf logs a formatted message at debug level.
func Debugf(format string, args ...interface{}) { current().Debugf(format, args...) }

// Info logs at info level.
func Info(args ...interface{}) { current().Info(args...) }

// Infof logs a formatted message at info level.
func Infof(format string, args ...interface{}) { current().Infof(format, args...) }

// Warn logs at warn level.
func Warn(args ...interface{}) { current().Warn(args...) }

// Warnf logs a formatted message at warn level.
func Warnf(format string, args ...interface{}) { current().Warnf(format, args...) }

// Error logs at error level.
func Error(args ...interface{}) { current().Error(args...) }

// Errorf logs a formatted message at error level.
func Errorf(format string, args ...interface{}) { current().Errorf(format, args...) }
