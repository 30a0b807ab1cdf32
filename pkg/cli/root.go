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
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/envinspect/pkg/collector"
	"github.com/NVIDIA/envinspect/pkg/inspector"
	"github.com/NVIDIA/envinspect/pkg/logging"
	"github.com/NVIDIA/envinspect/pkg/store"
)

const (
	name           = "envinspect"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// app holds what a run needs from the process. Tests replace its fields.
type app struct {
	// args are the program arguments without the program name, unfiltered.
	args []string

	stdout io.Writer
	stderr io.Writer

	newFactory func(opts ...collector.Option) collector.Factory
}

func newApp(args []string) *app {
	return &app{
		args:   args,
		stdout: os.Stdout,
		stderr: os.Stderr,
		newFactory: func(opts ...collector.Option) collector.Factory {
			return collector.NewDefaultFactory(opts...)
		},
	}
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Inspect the Go runtime, host and process environment",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Description: `Prints a report of the Go runtime, host memory, the current process and
its environment. Unknown arguments are ignored and recorded in the report.

Examples:
  envinspect
  envinspect --verbose
  envinspect --json --save
  envinspect --format prometheus > /var/lib/node_exporter/envinspect.prom`,
		HideHelpCommand: true,
		Writer:          a.stdout,
		ErrWriter:       a.stderr,
		Flags:           rootFlags(),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String(flagLogLevel))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date,
				"logLevel", cmd.String(flagLogLevel))
			return ctx, nil
		},
		Action: a.action,
	}
}

func (a *app) action(ctx context.Context, cmd *cli.Command) error {
	output, err := outputFrom(cmd)
	if err != nil {
		return err
	}

	factory := a.newFactory(
		collector.WithVerbose(cmd.Bool(flagVerbose)),
		collector.WithArgs(a.args),
		collector.WithModeVariable(cmd.String(flagModeVar)),
	)

	insp := &inspector.Inspector{
		Factory:        factory,
		Output:         output,
		Verbose:        cmd.Bool(flagVerbose),
		TrueUsedMemory: cmd.Bool(flagTrueUsedMemory),
		Save:           cmd.Bool(flagSave),
		Out:            a.stdout,
		Err:            a.stderr,
		Clear:          clearScreen(a.stdout),
	}

	if insp.Save {
		if insp.Store, err = store.New(cmd.String(flagReportsDir)); err != nil {
			return err
		}
	}

	return insp.Run(ctx)
}

// run executes the command for argv, where argv[0] is the program name.
func (a *app) run(ctx context.Context, argv []string) error {
	cmd := a.command()
	program := name
	if len(argv) > 0 {
		program = argv[0]
	}
	return cmd.Run(ctx, append([]string{program}, filterArgs(cmd.Flags, a.args)...))
}

// Execute runs the root command with the process arguments and exits
// non-zero on failure. This is called by main.main().
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	args := make([]string, 0, len(os.Args))
	if len(os.Args) > 1 {
		args = append(args, os.Args[1:]...)
	}

	if err := newApp(args).run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cancel()
		os.Exit(1)
	}
}
