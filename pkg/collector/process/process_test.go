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

package process

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Collect(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := &Collector{
		Started: start,
		Now:     func() time.Time { return start.Add(61500 * time.Millisecond) },
	}

	p, err := c.Collect(context.Background())
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	exe, err := os.Executable()
	require.NoError(t, err)

	assert.Equal(t, os.Getpid(), p.PID)
	assert.Equal(t, os.Getppid(), p.PPID)
	assert.Equal(t, wd, p.Cwd)
	assert.Equal(t, exe, p.ExecPath)
	assert.True(t, filepath.IsAbs(p.ScriptPath), "script path %q should be absolute", p.ScriptPath)
	assert.InDelta(t, 61.5, p.Uptime, 1e-9)
}

func TestCollector_DefaultUptimeIsSmallAndPositive(t *testing.T) {
	c := &Collector{}
	p, err := c.Collect(context.Background())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, p.Uptime, 0.0)
	assert.Less(t, p.Uptime, time.Hour.Seconds())
}

func TestCollector_ClockSkewClampsToZero(t *testing.T) {
	start := time.Now()
	c := &Collector{
		Started: start,
		Now:     func() time.Time { return start.Add(-time.Second) },
	}

	p, err := c.Collect(context.Background())
	require.NoError(t, err)
	assert.Zero(t, p.Uptime)
}

func TestCollector_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := &Collector{}
	p, err := c.Collect(ctx)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScriptPath(t *testing.T) {
	exe := "/usr/local/bin/envinspect"

	t.Run("empty falls back to executable", func(t *testing.T) {
		assert.Equal(t, exe, ScriptPath("", exe))
	})

	t.Run("relative path is made absolute", func(t *testing.T) {
		wd, err := os.Getwd()
		require.NoError(t, err)
		rel := filepath.Join(".", "bin", "envinspect")
		assert.Equal(t, filepath.Join(wd, "bin", "envinspect"), ScriptPath(rel, exe))
	})

	t.Run("absolute path is kept", func(t *testing.T) {
		abs := filepath.Join(t.TempDir(), "envinspect")
		assert.Equal(t, abs, ScriptPath(abs, exe))
	})

	t.Run("unknown bare name falls back to executable", func(t *testing.T) {
		t.Setenv("PATH", t.TempDir())
		assert.Equal(t, exe, ScriptPath("envinspect-does-not-exist", exe))
	})
}
