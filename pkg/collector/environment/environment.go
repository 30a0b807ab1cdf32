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

package environment

import (
	"context"
	"log/slog"
	"os"

	"github.com/NVIDIA/envinspect/pkg/defaults"
	"github.com/NVIDIA/envinspect/pkg/report"
)

// Collector reads the run mode, the environment variables and the
// command-line arguments.
type Collector struct {
	// ModeVariable names the variable holding the run mode. Empty means defaults.ModeVariable.
	ModeVariable string

	// Verbose captures every variable instead of only their count.
	Verbose bool

	// Args are the program arguments, without the program name.
	Args []string

	// Environ returns "NAME=value" entries. Nil means os.Environ.
	Environ func() []string
}

// Collect returns the environment section of the report.
func (c *Collector) Collect(ctx context.Context) (*report.Environment, error) {
	slog.Debug("collecting environment information", "verbose", c.Verbose)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	environ := c.Environ
	if environ == nil {
		environ = os.Environ
	}
	vars := report.ParseEnviron(environ())

	modeVar := c.ModeVariable
	if modeVar == "" {
		modeVar = defaults.ModeVariable
	}

	mode := defaults.ModeNotSet
	all := report.NewEnvVarMap(vars)
	if v, ok := all.Lookup(modeVar); ok && v != "" {
		mode = v
	}

	envVars := all
	if !c.Verbose {
		envVars = report.NewEnvVarCount(len(vars))
	}

	args := make([]string, len(c.Args))
	copy(args, c.Args)

	slog.Debug("collected environment information",
		"mode", mode,
		"variables", len(vars),
		"arguments", len(args))

	return &report.Environment{
		GoEnv:                mode,
		EnvironmentVariables: envVars,
		Arguments:            args,
		ModeVariable:         modeVar,
	}, nil
}
