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

package system

import (
	"context"
	"log/slog"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/mem"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/NVIDIA/envinspect/pkg/defaults"
	"github.com/NVIDIA/envinspect/pkg/errors"
	"github.com/NVIDIA/envinspect/pkg/report"
	"github.com/NVIDIA/envinspect/pkg/units"
)

// MemoryFunc reads virtual memory statistics.
type MemoryFunc func(ctx context.Context) (*mem.VirtualMemoryStat, error)

// OSTypeFunc returns the operating system name as the kernel reports it.
type OSTypeFunc func() (string, error)

// Collector reads the Go runtime identity, OS type and physical memory.
type Collector struct {
	// Memory reads memory statistics. Nil means gopsutil.
	Memory MemoryFunc

	// OSType reads the kernel name. Nil means uname(2) where available.
	OSType OSTypeFunc
}

// Collect returns the system section of the report.
// Free memory is the memory available to new processes without swapping.
func (c *Collector) Collect(ctx context.Context) (*report.System, error) {
	slog.Debug("collecting system information")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	qctx, cancel := context.WithTimeout(ctx, defaults.HostQueryTimeout)
	defer cancel()

	memFn := c.Memory
	if memFn == nil {
		memFn = mem.VirtualMemoryWithContext
	}
	vm, err := memFn(qctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnavailable, "failed to read virtual memory", err)
	}

	osTypeFn := c.OSType
	if osTypeFn == nil {
		osTypeFn = kernelName
	}
	osType, err := osTypeFn()
	if err != nil || strings.TrimSpace(osType) == "" {
		slog.Debug("kernel name not available, using GOOS", "error", err)
		osType = OSTypeName(runtime.GOOS)
	}

	res := &report.System{
		GoVersion:    runtime.Version(),
		Compiler:     runtime.Compiler,
		Platform:     runtime.GOOS,
		Architecture: runtime.GOARCH,
		OSType:       strings.TrimSpace(osType),
		TotalMemory:  units.FormatBytes(vm.Total),
		FreeMemory:   units.FormatBytes(vm.Available),
		TotalBytes:   vm.Total,
		FreeBytes:    vm.Available,
	}

	slog.Debug("collected system information",
		"osType", res.OSType,
		"totalBytes", res.TotalBytes,
		"freeBytes", res.FreeBytes)

	return res, nil
}

// OSTypeName converts a GOOS-style name to the name the kernel reports,
// e.g. "linux" to "Linux" and "windows" to "Windows_NT". It is used where
// the kernel name cannot be read.
func OSTypeName(goos string) string {
	goos = strings.ToLower(strings.TrimSpace(goos))
	switch goos {
	case "":
		return "Unknown"
	case "windows":
		return "Windows_NT"
	case "freebsd":
		return "FreeBSD"
	case "openbsd":
		return "OpenBSD"
	case "netbsd":
		return "NetBSD"
	case "aix":
		return "AIX"
	case "solaris", "illumos":
		return "SunOS"
	}
	return cases.Title(language.Und).String(goos)
}
