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

package report

// Report is the nested record produced once per run.
// Field order is the serialization order: system, process, environment.
type Report struct {
	System      System      `json:"system" yaml:"system"`
	Process     Process     `json:"process" yaml:"process"`
	Environment Environment `json:"environment" yaml:"environment"`
}

// System describes the Go runtime and the host it runs on.
type System struct {
	// GoVersion is the runtime version, e.g. "go1.25.0".
	GoVersion string `json:"goVersion" yaml:"goVersion"`

	// Compiler is the toolchain that built the running binary, e.g. "gc".
	Compiler string `json:"compiler" yaml:"compiler"`

	// Platform is the GOOS value, e.g. "linux".
	Platform string `json:"platform" yaml:"platform"`

	// Architecture is the GOARCH value, e.g. "amd64".
	Architecture string `json:"architecture" yaml:"architecture"`

	// OSType is the operating system name as the platform reports it, e.g. "Linux".
	OSType string `json:"osType" yaml:"osType"`

	TotalMemory string `json:"totalMemory" yaml:"totalMemory"`
	FreeMemory  string `json:"freeMemory" yaml:"freeMemory"`

	// TotalBytes and FreeBytes are the raw values behind the formatted strings.
	// They are not part of the serialized report.
	TotalBytes uint64 `json:"-" yaml:"-"`
	FreeBytes  uint64 `json:"-" yaml:"-"`
}

// UsedBytes returns total minus free memory, or zero if free exceeds total.
func (s System) UsedBytes() uint64 {
	if s.FreeBytes > s.TotalBytes {
		return 0
	}
	return s.TotalBytes - s.FreeBytes
}

// Process describes the running inspector process.
type Process struct {
	PID        int    `json:"pid" yaml:"pid"`
	PPID       int    `json:"ppid" yaml:"ppid"`
	Cwd        string `json:"cwd" yaml:"cwd"`
	ExecPath   string `json:"execPath" yaml:"execPath"`
	ScriptPath string `json:"scriptPath" yaml:"scriptPath"`

	// Uptime is seconds since process start at collection time.
	// It is formatted only by the text renderer.
	Uptime float64 `json:"uptime" yaml:"uptime"`
}

// Environment describes the process environment and invocation.
type Environment struct {
	// GoEnv is the value of the mode variable, or "not set".
	GoEnv string `json:"goEnv" yaml:"goEnv"`

	// EnvironmentVariables is either the full mapping or a count, see EnvVars.
	EnvironmentVariables EnvVars `json:"environmentVariables" yaml:"environmentVariables"`

	// Arguments are the command-line arguments without the program name.
	Arguments []string `json:"arguments" yaml:"arguments"`

	// ModeVariable is the name of the variable GoEnv was read from.
	ModeVariable string `json:"-" yaml:"-"`
}

// Assemble merges the three collector outputs into a Report.
func Assemble(sys System, proc Process, env Environment) *Report {
	if env.Arguments == nil {
		env.Arguments = []string{}
	}
	return &Report{
		System:      sys,
		Process:     proc,
		Environment: env,
	}
}
