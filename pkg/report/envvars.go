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

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const countKey = "count"

// EnvVar is a single environment variable.
type EnvVar struct {
	Name  string
	Value string
}

// EnvVars holds the environment in one of two shapes: the full ordered
// mapping of name to value, or only the number of variables. Consumers must
// branch on IsCount rather than on how the value was collected.
//
// Both shapes encode as an object. The count shape is {"count": N}.
type EnvVars struct {
	vars  []EnvVar
	count *int
}

// NewEnvVarMap returns the mapping shape. Order is preserved.
func NewEnvVarMap(vars []EnvVar) EnvVars {
	cp := make([]EnvVar, len(vars))
	copy(cp, vars)
	return EnvVars{vars: cp}
}

// NewEnvVarCount returns the count-only shape.
func NewEnvVarCount(n int) EnvVars {
	return EnvVars{count: &n}
}

// ParseEnviron converts "NAME=value" entries, as returned by os.Environ,
// into variables. The first occurrence of a name wins. Windows per-drive
// entries such as "=C:=C:\dir" keep their leading '=' in the name.
func ParseEnviron(environ []string) []EnvVar {
	vars := make([]EnvVar, 0, len(environ))
	seen := make(map[string]struct{}, len(environ))
	for _, kv := range environ {
		if kv == "" {
			continue
		}
		i := strings.IndexByte(kv[1:], '=')
		var name, value string
		if i < 0 {
			name = kv
		} else {
			name, value = kv[:i+1], kv[i+2:]
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		vars = append(vars, EnvVar{Name: name, Value: value})
	}
	return vars
}

// IsCount reports whether only the count was captured.
func (e EnvVars) IsCount() bool {
	return e.count != nil
}

// Count returns the captured count, or the number of variables in the mapping shape.
func (e EnvVars) Count() int {
	if e.count != nil {
		return *e.count
	}
	return len(e.vars)
}

// Vars returns the variables in captured order. It is empty for the count shape.
func (e EnvVars) Vars() []EnvVar {
	cp := make([]EnvVar, len(e.vars))
	copy(cp, e.vars)
	return cp
}

// Lookup returns the value of name in the mapping shape.
func (e EnvVars) Lookup(name string) (string, bool) {
	for _, v := range e.vars {
		if v.Name == name {
			return v.Value, true
		}
	}
	return "", false
}

// MarshalJSON encodes the mapping shape as an object in captured order.
func (e EnvVars) MarshalJSON() ([]byte, error) {
	if e.count != nil {
		return json.Marshal(map[string]int{countKey: *e.count})
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, v := range e.vars {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(v.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(v.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes either shape. An object whose only member is a
// numeric "count" decodes as the count shape.
func (e *EnvVars) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to read environment variables: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("environment variables must be an object, got %v", tok)
	}

	var vars []EnvVar
	var count *int
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to read environment variable name: %w", err)
		}
		name, _ := tok.(string)

		var raw any
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("failed to read value of %q: %w", name, err)
		}

		switch val := raw.(type) {
		case string:
			vars = append(vars, EnvVar{Name: name, Value: val})
		case json.Number:
			if name != countKey {
				return fmt.Errorf("environment variable %q must be a string", name)
			}
			n, err := val.Int64()
			if err != nil {
				return fmt.Errorf("invalid environment variable count %q: %w", val, err)
			}
			c := int(n)
			count = &c
		default:
			return fmt.Errorf("environment variable %q must be a string", name)
		}
	}

	if count != nil && len(vars) > 0 {
		return fmt.Errorf("environment variables mix a count with %d values", len(vars))
	}
	e.vars, e.count = vars, count
	return nil
}

// MarshalYAML encodes the mapping shape as an ordered YAML mapping.
func (e EnvVars) MarshalYAML() (any, error) {
	if e.count != nil {
		return map[string]int{countKey: *e.count}, nil
	}

	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, v := range e.vars {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.Value},
		)
	}
	return node, nil
}

// UnmarshalYAML decodes either shape, see UnmarshalJSON.
func (e *EnvVars) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("environment variables must be a mapping, line %d", value.Line)
	}

	var vars []EnvVar
	var count *int
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		if key.Value == countKey && val.Tag == "!!int" {
			var n int
			if err := val.Decode(&n); err != nil {
				return fmt.Errorf("invalid environment variable count: %w", err)
			}
			count = &n
			continue
		}
		vars = append(vars, EnvVar{Name: key.Value, Value: val.Value})
	}

	if count != nil && len(vars) > 0 {
		return fmt.Errorf("environment variables mix a count with %d values", len(vars))
	}
	e.vars, e.count = vars, count
	return nil
}
