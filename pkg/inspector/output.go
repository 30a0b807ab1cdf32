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

package inspector

import (
	"strings"

	"github.com/NVIDIA/envinspect/pkg/errors"
	"github.com/NVIDIA/envinspect/pkg/serializer"
)

// Output selects how a report is rendered.
type Output string

const (
	OutputText       Output = "text"
	OutputJSON       Output = Output(serializer.FormatJSON)
	OutputYAML       Output = Output(serializer.FormatYAML)
	OutputTable      Output = Output(serializer.FormatTable)
	OutputPrometheus Output = "prometheus"
)

// SupportedOutputs returns the accepted output names.
func SupportedOutputs() []string {
	return []string{
		string(OutputText),
		string(OutputJSON),
		string(OutputYAML),
		string(OutputTable),
		string(OutputPrometheus),
	}
}

// ParseOutput returns the Output named by s. Matching is case-insensitive.
func ParseOutput(s string) (Output, error) {
	o := Output(strings.ToLower(strings.TrimSpace(s)))
	switch o {
	case OutputText, OutputJSON, OutputYAML, OutputTable, OutputPrometheus:
		return o, nil
	default:
		return "", errors.NewWithContext(errors.ErrCodeInvalidRequest, "unknown output format",
			map[string]any{"format": s, "supported": SupportedOutputs()})
	}
}

// Structured reports whether the output is meant for programs rather than a terminal.
func (o Output) Structured() bool {
	return o != OutputText
}

// serializerFormat returns the serializer format for document outputs.
func (o Output) serializerFormat() (serializer.Format, bool) {
	switch o {
	case OutputJSON, OutputYAML, OutputTable:
		return serializer.Format(o), true
	default:
		return "", false
	}
}
