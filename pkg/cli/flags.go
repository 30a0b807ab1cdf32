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
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/envinspect/pkg/defaults"
	"github.com/NVIDIA/envinspect/pkg/inspector"
	"github.com/NVIDIA/envinspect/pkg/logging"
)

const (
	flagVerbose        = "verbose"
	flagJSON           = "json"
	flagSave           = "save"
	flagFormat         = "format"
	flagReportsDir     = "reports-dir"
	flagModeVar        = "mode-var"
	flagTrueUsedMemory = "true-used-memory"
	flagLogLevel       = "log-level"
)

func envVar(name string) string {
	return defaults.EnvPrefix + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

func rootFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    flagVerbose,
			Usage:   "List environment variables instead of only counting them",
			Sources: cli.EnvVars(envVar(flagVerbose)),
		},
		&cli.BoolFlag{
			Name:    flagJSON,
			Usage:   "Print the report as JSON (same as --format json)",
			Sources: cli.EnvVars(envVar(flagJSON)),
		},
		&cli.BoolFlag{
			Name:    flagSave,
			Usage:   "Save the report as JSON to the reports directory",
			Sources: cli.EnvVars(envVar(flagSave)),
		},
		&cli.StringFlag{
			Name:    flagFormat,
			Usage:   "Output format (" + strings.Join(inspector.SupportedOutputs(), ", ") + ")",
			Sources: cli.EnvVars(envVar(flagFormat)),
			Value:   string(inspector.OutputText),
		},
		&cli.StringFlag{
			Name:    flagReportsDir,
			Usage:   "Directory for saved reports (default: reports next to the executable)",
			Sources: cli.EnvVars(envVar(flagReportsDir)),
		},
		&cli.StringFlag{
			Name:    flagModeVar,
			Usage:   "Environment variable holding the run mode",
			Sources: cli.EnvVars(envVar(flagModeVar)),
			Value:   defaults.ModeVariable,
		},
		&cli.BoolFlag{
			Name:    flagTrueUsedMemory,
			Usage:   "Show total minus free memory under Used Memory",
			Sources: cli.EnvVars(envVar(flagTrueUsedMemory)),
		},
		&cli.StringFlag{
			Name:    flagLogLevel,
			Usage:   "Log level (debug, info, warn, error)",
			Sources: cli.EnvVars(logging.EnvVarLogLevel),
			Value:   "warn",
		},
	}
}

// passthrough are names handled by the command itself rather than declared flags.
var passthrough = map[string]bool{
	"help":    true,
	"h":       true,
	"version": true,
}

// filterArgs keeps only the arguments naming declared flags, with their
// values. Everything else, including positional arguments, is dropped so
// unknown input never fails the run. A value flag followed by another flag
// has no value and is dropped. Parsing stops at "--".
func filterArgs(flags []cli.Flag, args []string) []string {
	bools := make(map[string]bool)
	values := make(map[string]bool)
	for _, f := range flags {
		_, isBool := f.(*cli.BoolFlag)
		for _, n := range f.Names() {
			if isBool {
				bools[n] = true
			} else {
				values[n] = true
			}
		}
	}

	kept := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		if len(arg) < 2 || arg[0] != '-' {
			continue
		}

		name := strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
		name, _, hasValue := strings.Cut(name, "=")

		switch {
		case bools[name], passthrough[name] && !hasValue:
			kept = append(kept, arg)
		case values[name] && hasValue:
			kept = append(kept, arg)
		case values[name] && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-"):
			kept = append(kept, arg, args[i+1])
			i++
		}
	}
	return kept
}

// outputFrom resolves the output format; --json takes precedence over --format.
func outputFrom(cmd *cli.Command) (inspector.Output, error) {
	if cmd.Bool(flagJSON) {
		return inspector.OutputJSON, nil
	}
	return inspector.ParseOutput(cmd.String(flagFormat))
}
