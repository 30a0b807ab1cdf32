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
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/NVIDIA/envinspect/pkg/errors"
	"github.com/NVIDIA/envinspect/pkg/report"
)

// started approximates process start; package variables are initialised
// before main runs.
var started = time.Now()

// Collector reads identifiers, paths and uptime of the current process.
type Collector struct {
	// Started is the process start time. Zero means package initialisation time.
	Started time.Time

	// Now returns the current time. Nil means time.Now.
	Now func() time.Time

	// Arg0 is the program name as invoked. Empty means os.Args[0].
	Arg0 string
}

// Collect returns the process section of the report.
func (c *Collector) Collect(ctx context.Context) (*report.Process, error) {
	slog.Debug("collecting process information")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnavailable, "failed to read working directory", err)
	}

	execPath, err := os.Executable()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnavailable, "failed to resolve executable path", err)
	}

	arg0 := c.Arg0
	if arg0 == "" && len(os.Args) > 0 {
		arg0 = os.Args[0]
	}

	res := &report.Process{
		PID:        os.Getpid(),
		PPID:       os.Getppid(),
		Cwd:        cwd,
		ExecPath:   execPath,
		ScriptPath: ScriptPath(arg0, execPath),
		Uptime:     c.uptime(),
	}

	slog.Debug("collected process information",
		"pid", res.PID,
		"uptime", res.Uptime)

	return res, nil
}

func (c *Collector) uptime() float64 {
	start := c.Started
	if start.IsZero() {
		start = started
	}
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	d := now().Sub(start)
	if d < 0 {
		return 0
	}
	return d.Seconds()
}

// ScriptPath returns the absolute path of the program as it was invoked.
// A bare name is looked up in PATH. When arg0 cannot be resolved the
// executable path is returned.
func ScriptPath(arg0, execPath string) string {
	if arg0 == "" {
		return execPath
	}

	p := arg0
	if !strings.ContainsRune(arg0, filepath.Separator) && !strings.ContainsRune(arg0, '/') {
		found, err := exec.LookPath(arg0)
		if err != nil {
			slog.Debug("program name not found in PATH", "arg0", arg0, "error", err)
			return execPath
		}
		p = found
	}

	abs, err := filepath.Abs(p)
	if err != nil {
		return execPath
	}
	return abs
}
