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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseEnviron(t *testing.T) {
	tests := []struct {
		name    string
		environ []string
		want    []EnvVar
	}{
		{
			name:    "simple",
			environ: []string{"HOME=/root", "SHELL=/bin/bash"},
			want:    []EnvVar{{"HOME", "/root"}, {"SHELL", "/bin/bash"}},
		},
		{
			name:    "value containing equals",
			environ: []string{"OPTS=a=b=c"},
			want:    []EnvVar{{"OPTS", "a=b=c"}},
		},
		{
			name:    "empty value",
			environ: []string{"EMPTY="},
			want:    []EnvVar{{"EMPTY", ""}},
		},
		{
			name:    "missing separator",
			environ: []string{"LONELY"},
			want:    []EnvVar{{"LONELY", ""}},
		},
		{
			name:    "first occurrence wins",
			environ: []string{"DUP=first", "DUP=second"},
			want:    []EnvVar{{"DUP", "first"}},
		},
		{
			name:    "windows drive entry",
			environ: []string{"=C:=C:\\work"},
			want:    []EnvVar{{"=C:", "C:\\work"}},
		},
		{
			name:    "skips empty entries",
			environ: []string{"", "A=1"},
			want:    []EnvVar{{"A", "1"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseEnviron(tt.environ))
		})
	}
}

func TestEnvVars_Shapes(t *testing.T) {
	m := NewEnvVarMap([]EnvVar{{"B", "2"}, {"A", "1"}})
	assert.False(t, m.IsCount())
	assert.Equal(t, 2, m.Count())
	v, ok := m.Lookup("A")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	c := NewEnvVarCount(42)
	assert.True(t, c.IsCount())
	assert.Equal(t, 42, c.Count())
	assert.Empty(t, c.Vars())

	var zero EnvVars
	assert.False(t, zero.IsCount(), "zero value is an empty mapping")
	assert.Equal(t, 0, zero.Count())
}

func TestEnvVars_VarsIsACopy(t *testing.T) {
	src := []EnvVar{{"A", "1"}}
	m := NewEnvVarMap(src)
	src[0].Value = "changed"

	got := m.Vars()
	got[0].Value = "also changed"

	v, _ := m.Lookup("A")
	assert.Equal(t, "1", v)
}

func TestEnvVars_MarshalJSON_PreservesOrder(t *testing.T) {
	m := NewEnvVarMap([]EnvVar{{"ZED", "z"}, {"ALPHA", "a"}, {"MID", "m\"q"}})

	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"ZED":"z","ALPHA":"a","MID":"m\"q"}`, string(b))
}

func TestEnvVars_MarshalJSON_Count(t *testing.T) {
	b, err := json.Marshal(NewEnvVarCount(7))
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":7}`, string(b))
}

func TestEnvVars_UnmarshalJSON(t *testing.T) {
	t.Run("mapping keeps order", func(t *testing.T) {
		var e EnvVars
		require.NoError(t, json.Unmarshal([]byte(`{"ZED":"z","ALPHA":"a"}`), &e))
		assert.False(t, e.IsCount())
		assert.Equal(t, []EnvVar{{"ZED", "z"}, {"ALPHA", "a"}}, e.Vars())
	})

	t.Run("count", func(t *testing.T) {
		var e EnvVars
		require.NoError(t, json.Unmarshal([]byte(`{"count":12}`), &e))
		assert.True(t, e.IsCount())
		assert.Equal(t, 12, e.Count())
	})

	t.Run("variable named count with string value", func(t *testing.T) {
		var e EnvVars
		require.NoError(t, json.Unmarshal([]byte(`{"count":"3"}`), &e))
		assert.False(t, e.IsCount())
		v, ok := e.Lookup("count")
		assert.True(t, ok)
		assert.Equal(t, "3", v)
	})

	t.Run("non string value", func(t *testing.T) {
		var e EnvVars
		assert.Error(t, json.Unmarshal([]byte(`{"A":1}`), &e))
	})

	t.Run("not an object", func(t *testing.T) {
		var e EnvVars
		assert.Error(t, json.Unmarshal([]byte(`["A"]`), &e))
	})

	t.Run("mixed shapes", func(t *testing.T) {
		var e EnvVars
		assert.Error(t, json.Unmarshal([]byte(`{"count":1,"A":"a"}`), &e))
	})
}

func TestEnvVars_YAMLRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   EnvVars
	}{
		{"mapping", NewEnvVarMap([]EnvVar{{"ZED", "z"}, {"NUM", "123"}, {"count", "5"}})},
		{"count", NewEnvVarCount(3)},
		{"empty mapping", NewEnvVarMap(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := yaml.Marshal(tt.in)
			require.NoError(t, err)

			var out EnvVars
			require.NoError(t, yaml.Unmarshal(b, &out))
			assert.Equal(t, tt.in.IsCount(), out.IsCount())
			assert.Equal(t, tt.in.Count(), out.Count())
			assert.Equal(t, tt.in.Vars(), out.Vars())
		})
	}
}
