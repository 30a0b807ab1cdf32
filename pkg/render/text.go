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

package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/NVIDIA/envinspect/pkg/defaults"
	"github.com/NVIDIA/envinspect/pkg/report"
	"github.com/NVIDIA/envinspect/pkg/units"
)

const (
	title      = "GO ENVIRONMENT INSPECTOR"
	rule       = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"
	labelWidth = 17
)

// TextRenderer writes the human-readable report layout.
type TextRenderer struct {
	// Verbose lists environment variables when the report holds the mapping shape.
	Verbose bool

	// TrueUsedMemory shows total minus free under "Used Memory".
	// By default the line shows the free memory value.
	TrueUsedMemory bool
}

// Render writes r to w in a single write.
func (t TextRenderer) Render(w io.Writer, r *report.Report) error {
	if r == nil {
		return fmt.Errorf("report is nil")
	}

	var b bytes.Buffer

	b.WriteString("\n╔════════════════════════════════════════╗\n")
	fmt.Fprintf(&b, "║   %-37s║\n", title)
	b.WriteString("╚════════════════════════════════════════╝\n\n")

	sys := r.System
	section(&b, "📊 SYSTEM INFORMATION", false)
	line(&b, "Go Version:", sys.GoVersion)
	line(&b, "Compiler:", sys.Compiler)
	line(&b, "Platform:", sys.Platform)
	line(&b, "Architecture:", sys.Architecture)
	line(&b, "OS Type:", sys.OSType)
	line(&b, "Total Memory:", sys.TotalMemory)
	line(&b, "Used Memory:", t.usedMemory(sys))

	proc := r.Process
	section(&b, "⚙️  PROCESS INFORMATION", true)
	line(&b, "Process ID:", fmt.Sprint(proc.PID))
	line(&b, "Parent PID:", fmt.Sprint(proc.PPID))
	line(&b, "Current Dir:", proc.Cwd)
	line(&b, "Exec Path:", proc.ExecPath)
	line(&b, "Script Path:", proc.ScriptPath)
	line(&b, "Uptime:", units.FormatUptime(proc.Uptime))

	env := r.Environment
	modeVar := env.ModeVariable
	if modeVar == "" {
		modeVar = defaults.ModeVariable
	}
	args := strings.Join(env.Arguments, " ")
	if args == "" {
		args = "none"
	}
	section(&b, "🌍 ENVIRONMENT", true)
	line(&b, modeVar+":", env.GoEnv)
	line(&b, "Arguments:", args)

	if t.Verbose && !env.EnvironmentVariables.IsCount() {
		writeEnvVars(&b, env.EnvironmentVariables.Vars())
	} else {
		line(&b, "Env Var Count:", fmt.Sprint(env.EnvironmentVariables.Count()))
	}

	b.WriteString("\n✅ Inspection complete!\n\n")

	_, err := w.Write(b.Bytes())
	return err
}

func (t TextRenderer) usedMemory(sys report.System) string {
	if t.TrueUsedMemory {
		return units.FormatBytes(sys.UsedBytes())
	}
	return sys.FreeMemory
}

func section(b *bytes.Buffer, heading string, gap bool) {
	if gap {
		b.WriteByte('\n')
	}
	b.WriteString(heading)
	b.WriteByte('\n')
	b.WriteString(rule)
	b.WriteByte('\n')
}

func line(b *bytes.Buffer, label, value string) {
	fmt.Fprintf(b, "%-*s%s\n", labelWidth, label, value)
}

func writeEnvVars(b *bytes.Buffer, vars []report.EnvVar) {
	b.WriteString("\nEnvironment Variables:\n")
	for i, v := range vars {
		if i == defaults.EnvPreviewLimit {
			break
		}
		fmt.Fprintf(b, "  %s: %s\n", v.Name, TruncateValue(v.Value))
	}
	if len(vars) > defaults.EnvPreviewLimit {
		fmt.Fprintf(b, "  ... and %d more\n", len(vars)-defaults.EnvPreviewLimit)
	}
}

// TruncateValue shortens values longer than defaults.EnvValueMaxLen characters
// to their first defaults.EnvValueKeepLen characters followed by an ellipsis.
func TruncateValue(v string) string {
	if utf8.RuneCountInString(v) <= defaults.EnvValueMaxLen {
		return v
	}
	runes := []rune(v)
	return string(runes[:defaults.EnvValueKeepLen]) + defaults.EnvValueEllipsis
}
