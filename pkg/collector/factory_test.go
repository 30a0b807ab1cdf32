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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/envinspect/pkg/collector/environment"
	"github.com/NVIDIA/envinspect/pkg/collector/process"
	"github.com/NVIDIA/envinspect/pkg/collector/system"
)

func TestNewDefaultFactory_Defaults(t *testing.T) {
	f := NewDefaultFactory()
	assert.False(t, f.Verbose)
	assert.Nil(t, f.Args)
	assert.Equal(t, "GO_ENV", f.ModeVariable)
}

func TestNewDefaultFactory_Options(t *testing.T) {
	f := NewDefaultFactory(
		WithVerbose(true),
		WithArgs([]string{"--verbose"}),
		WithModeVariable("APP_ENV"),
	)
	assert.True(t, f.Verbose)
	assert.Equal(t, []string{"--verbose"}, f.Args)
	assert.Equal(t, "APP_ENV", f.ModeVariable)
}

func TestWithModeVariable_EmptyKeepsDefault(t *testing.T) {
	f := NewDefaultFactory(WithModeVariable(""))
	assert.Equal(t, "GO_ENV", f.ModeVariable)
}

func TestDefaultFactory_CreateSystemCollector(t *testing.T) {
	col := NewDefaultFactory().CreateSystemCollector()
	require.NotNil(t, col)
	_, ok := col.(*system.Collector)
	assert.True(t, ok, "expected *system.Collector, got %T", col)
}

func TestDefaultFactory_CreateProcessCollector(t *testing.T) {
	col := NewDefaultFactory().CreateProcessCollector()
	require.NotNil(t, col)
	_, ok := col.(*process.Collector)
	assert.True(t, ok, "expected *process.Collector, got %T", col)
}

func TestDefaultFactory_CreateEnvironmentCollector(t *testing.T) {
	f := NewDefaultFactory(WithVerbose(true), WithArgs([]string{"a"}), WithModeVariable("APP_ENV"))

	col := f.CreateEnvironmentCollector()
	envCollector, ok := col.(*environment.Collector)
	require.True(t, ok, "expected *environment.Collector, got %T", col)

	assert.True(t, envCollector.Verbose)
	assert.Equal(t, []string{"a"}, envCollector.Args)
	assert.Equal(t, "APP_ENV", envCollector.ModeVariable)
}

func TestDefaultFactory_AllCollectors(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	f := NewDefaultFactory()
	ctx := context.Background()

	if _, err := f.CreateSystemCollector().Collect(ctx); err != nil {
		t.Logf("system collector returned error (acceptable on restricted hosts): %v", err)
	}

	p, err := f.CreateProcessCollector().Collect(ctx)
	require.NoError(t, err)
	assert.NotZero(t, p.PID)

	e, err := f.CreateEnvironmentCollector().Collect(ctx)
	require.NoError(t, err)
	assert.True(t, e.EnvironmentVariables.IsCount())
}
