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

// Package cli implements the command-line interface of the envinspect tool.
//
// # Overview
//
// envinspect prints a report of the Go runtime, host memory, the current
// process and its environment, either as a sectioned text layout or as a
// structured document, and can save the report as JSON.
//
// # Usage
//
//	envinspect [--verbose] [--json] [--save] [--format FORMAT]
//
// Flags are presence-based and may appear in any order. Arguments that do
// not name a declared flag are ignored; the full argument list is still
// recorded in the report.
//
// # Flags
//
//	--verbose            List environment variables (first 10 in text output)
//	--json               Print JSON; takes precedence over --format
//	--save               Save the report to the reports directory
//	--format             text, json, yaml, table or prometheus (default: text)
//	--reports-dir        Directory for saved reports (default: reports next to the executable)
//	--mode-var           Variable holding the run mode (default: GO_ENV)
//	--true-used-memory   Show total minus free memory under Used Memory
//	--log-level          debug, info, warn or error (default: warn)
//
// # Environment Variables
//
// Every flag can also be set through ENVINSPECT_<FLAG>, for example
// ENVINSPECT_FORMAT=yaml. The log level is read from LOG_LEVEL.
//
// # Exit Codes
//
//	0  Success
//	1  Any failure; the message is written to stderr
package cli
