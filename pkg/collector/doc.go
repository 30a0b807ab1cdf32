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

// Package collector provides the collectors that read one section of a report each.
//
// # Overview
//
// Every collector is a read-only probe of the running host and process. The
// three collectors are independent of each other and each returns a flat
// record that the report package assembles:
//
//	type Collector[T any] interface {
//	    Collect(ctx context.Context) (*T, error)
//	}
//
// All collectors check the context before reading so a cancelled run stops
// early.
//
// # Factory Pattern
//
// The Factory interface enables dependency injection and testing by abstracting collector creation:
//
//	type Factory interface {
//	    CreateSystemCollector() Collector[report.System]
//	    CreateProcessCollector() Collector[report.Process]
//	    CreateEnvironmentCollector() Collector[report.Environment]
//	}
//
// The DefaultFactory provides production implementations with configurable options:
//
//	factory := collector.NewDefaultFactory(
//	    collector.WithVerbose(true),
//	    collector.WithArgs(os.Args[1:]),
//	    collector.WithModeVariable("APP_ENV"),
//	)
//
// # Available Collectors
//
// System (system): Go runtime version and compiler, GOOS and GOARCH, the OS
// type as the kernel names it, total and available physical memory
// (gopsutil).
//
// Process (process): pid, parent pid, working directory, executable path,
// the invoked program path and uptime in seconds.
//
// Environment (environment): the run mode variable (GO_ENV by default),
// either all environment variables in their original order or only their
// count, and the command-line arguments.
package collector
