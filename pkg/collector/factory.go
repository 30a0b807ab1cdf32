// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package collector

import (
	"context"

	"github.com/NVIDIA/envinspect/pkg/collector/environment"
	"github.com/NVIDIA/envinspect/pkg/collector/process"
	"github.com/NVIDIA/envinspect/pkg/collector/system"
	"github.com/NVIDIA/envinspect/pkg/defaults"
	"github.com/NVIDIA/envinspect/pkg/report"
)

// Collector gathers one section of a report.
type Collector[T any] interface {
	Collect(ctx context.Context) (*T, error)
}

// Factory creates collectors with their dependencies.
// This interface enables dependency injection for testing.
type Factory interface {
	CreateSystemCollector() Collector[report.System]
	CreateProcessCollector() Collector[report.Process]
	CreateEnvironmentCollector() Collector[report.Environment]
}

// Option configures a DefaultFactory.
type Option func(*DefaultFactory)

// WithVerbose makes the environment collector capture every variable.
func WithVerbose(verbose bool) Option {
	return func(f *DefaultFactory) {
		f.Verbose = verbose
	}
}

// WithArgs sets the program arguments recorded in the environment section.
func WithArgs(args []string) Option {
	return func(f *DefaultFactory) {
		f.Args = args
	}
}

// WithModeVariable sets the environment variable read as the run mode.
func WithModeVariable(name string) Option {
	return func(f *DefaultFactory) {
		if name != "" {
			f.ModeVariable = name
		}
	}
}

// DefaultFactory creates collectors with production dependencies.
type DefaultFactory struct {
	Verbose      bool
	Args         []string
	ModeVariable string
}

// NewDefaultFactory creates a factory with default settings.
func NewDefaultFactory(opts ...Option) *DefaultFactory {
	f := &DefaultFactory{
		ModeVariable: defaults.ModeVariable,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateSystemCollector creates a system collector.
func (f *DefaultFactory) CreateSystemCollector() Collector[report.System] {
	return &system.Collector{}
}

// CreateProcessCollector creates a process collector.
func (f *DefaultFactory) CreateProcessCollector() Collector[report.Process] {
	return &process.Collector{}
}

// CreateEnvironmentCollector creates an environment collector.
func (f *DefaultFactory) CreateEnvironmentCollector() Collector[report.Environment] {
	return &environment.Collector{
		ModeVariable: f.ModeVariable,
		Verbose:      f.Verbose,
		Args:         f.Args,
	}
}
