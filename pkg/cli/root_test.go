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

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/envinspect/pkg/collector"
	"github.com/NVIDIA/envinspect/pkg/errors"
	"github.com/NVIDIA/envinspect/pkg/report"
)

type staticCollector[T any] struct {
	v *T
}

func (s staticCollector[T]) Collect(context.Context) (*T, error) {
	cp := *s.v
	return &cp, nil
}

// testFactory returns fixed sections built from the options it was created with.
type testFactory struct {
	cfg *collector.DefaultFactory
}

func (f testFactory) CreateSystemCollector() collector.Collector[report.System] {
	return staticCollector[report.System]{v: &report.System{
		GoVersion: "go1.25.0", Compiler: "gc", Platform: "linux", Architecture: "arm64", OSType: "Linux",
		TotalMemory: "8.00 MB", FreeMemory: "2.00 MB", TotalBytes: 8 << 20, FreeBytes: 2 << 20,
	}}
}

func (f testFactory) CreateProcessCollector() collector.Collector[report.Process] {
	return staticCollector[report.Process]{v: &report.Process{PID: 99, PPID: 1, Uptime: 70}}
}

func (f testFactory) CreateEnvironmentCollector() collector.Collector[report.Environment] {
	vars := report.NewEnvVarCount(1)
	if f.cfg.Verbose {
		vars = report.NewEnvVarMap([]report.EnvVar{{Name: f.cfg.ModeVariable, Value: "test"}})
	}
	args := append([]string{}, f.cfg.Args...)
	return staticCollector[report.Environment]{v: &report.Environment{
		GoEnv:                "test",
		EnvironmentVariables: vars,
		Arguments:            args,
		ModeVariable:         f.cfg.ModeVariable,
	}}
}

func testApp(args ...string) (*app, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	a := &app{
		args:   args,
		stdout: &stdout,
		stderr: &stderr,
		newFactory: func(opts ...collector.Option) collector.Factory {
			return testFactory{cfg: collector.NewDefaultFactory(opts...)}
		},
	}
	return a, &stdout, &stderr
}

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	a, stdout, stderr := testApp(args...)
	err := a.run(context.Background(), []string{"envinspect"})
	return stdout.String(), stderr.String(), err
}

func TestRun_DefaultTextOutput(t *testing.T) {
	out, _, err := runApp(t)
	require.NoError(t, err)

	assert.Contains(t, out, "GO ENVIRONMENT INSPECTOR")
	assert.Contains(t, out, "Used Memory:     2.00 MB\n")
	assert.Contains(t, out, "Uptime:          1m 10s\n")
	assert.Contains(t, out, "Arguments:       none\n")
	assert.Contains(t, out, "Env Var Count:   1\n")
}

func TestRun_JSONWithUnknownArguments(t *testing.T) {
	args := []string{"positional", "--json", "--unknown", "-x", "--verbose"}
	out, _, err := runApp(t, args...)
	require.NoError(t, err)

	var doc struct {
		Environment struct {
			GoEnv                string            `json:"goEnv"`
			EnvironmentVariables map[string]string `json:"environmentVariables"`
			Arguments            []string          `json:"arguments"`
		} `json:"environment"`
		Process struct {
			Uptime float64 `json:"uptime"`
		} `json:"process"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	assert.Equal(t, args, doc.Environment.Arguments, "raw arguments are recorded, flags included")
	assert.Equal(t, map[string]string{"GO_ENV": "test"}, doc.Environment.EnvironmentVariables)
	assert.Equal(t, 70.0, doc.Process.Uptime)
}

func TestRun_JSONWinsOverFormat(t *testing.T) {
	out, _, err := runApp(t, "--format", "yaml", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)))
}

func TestRun_FormatYAML(t *testing.T) {
	out, _, err := runApp(t, "--format=yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "system:\n  goVersion: go1.25.0\n")
}

func TestRun_FormatWithoutValueIsIgnored(t *testing.T) {
	out, _, err := runApp(t, "--format", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)))
}

func TestRun_UnknownFormat(t *testing.T) {
	out, _, err := runApp(t, "--format", "xml")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))
	assert.Empty(t, out)
}

func TestRun_ModeVariable(t *testing.T) {
	out, _, err := runApp(t, "--mode-var", "APP_ENV")
	require.NoError(t, err)
	assert.Contains(t, out, "APP_ENV:         test\n")
}

func TestRun_TrueUsedMemory(t *testing.T) {
	out, _, err := runApp(t, "--true-used-memory")
	require.NoError(t, err)
	assert.Contains(t, out, "Used Memory:     6.00 MB\n")
}

func TestRun_FlagsFromEnvironment(t *testing.T) {
	t.Setenv("ENVINSPECT_FORMAT", "table")
	out, _, err := runApp(t)
	require.NoError(t, err)
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "system.osType")
}

func TestRun_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	t.Run("json notice on stderr", func(t *testing.T) {
		out, errOut, err := runApp(t, "--json", "--save", "--reports-dir", dir)
		require.NoError(t, err)
		assert.True(t, json.Valid([]byte(out)), "stdout holds only the report")
		assert.Contains(t, errOut, "✅ Report saved to: "+dir)
	})

	t.Run("text notice on stdout", func(t *testing.T) {
		out, _, err := runApp(t, "--save", "--reports-dir="+dir)
		require.NoError(t, err)
		assert.Contains(t, out, "✅ Report saved to: "+dir)
	})

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
}

func TestRun_Version(t *testing.T) {
	out, _, err := runApp(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "envinspect")
	assert.Contains(t, out, version)
	assert.NotContains(t, out, "INSPECTOR")
}

func TestNewApp(t *testing.T) {
	a := newApp([]string{"--json"})
	assert.Equal(t, []string{"--json"}, a.args)
	assert.Equal(t, os.Stdout, a.stdout)
	assert.Equal(t, os.Stderr, a.stderr)

	f, ok := a.newFactory(collector.WithVerbose(true)).(*collector.DefaultFactory)
	require.True(t, ok)
	assert.True(t, f.Verbose)
}
