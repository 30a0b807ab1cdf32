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

// Package report defines the record produced by one inspection run.
//
// A Report has three sections, always in this order:
//
//   - system: Go runtime version, compiler, platform, architecture, OS type and memory
//   - process: pid, parent pid, working directory, executable and script paths, uptime
//   - environment: run mode, environment variables and command-line arguments
//
// The environment variables are held by EnvVars, which is either the full
// ordered mapping (verbose collection) or only a count. Renderers branch on
// EnvVars.IsCount, never on how the report was collected:
//
//	if env := r.Environment.EnvironmentVariables; env.IsCount() {
//	    fmt.Println(env.Count())
//	} else {
//	    for _, v := range env.Vars() {
//	        fmt.Println(v.Name, v.Value)
//	    }
//	}
//
// Process uptime stays a raw number of seconds in the Report. Only the text
// renderer formats it.
package report
