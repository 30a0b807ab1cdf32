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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/envinspect/pkg/errors"
	"github.com/NVIDIA/envinspect/pkg/serializer"
)

func TestParseOutput(t *testing.T) {
	tests := []struct {
		in      string
		want    Output
		wantErr bool
	}{
		{"text", OutputText, false},
		{"json", OutputJSON, false},
		{"YAML", OutputYAML, false},
		{" table ", OutputTable, false},
		{"prometheus", OutputPrometheus, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOutput(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOutput_Structured(t *testing.T) {
	assert.False(t, OutputText.Structured())
	for _, o := range []Output{OutputJSON, OutputYAML, OutputTable, OutputPrometheus} {
		assert.True(t, o.Structured(), o)
	}
}

func TestOutput_SerializerFormat(t *testing.T) {
	f, ok := OutputYAML.serializerFormat()
	assert.True(t, ok)
	assert.Equal(t, serializer.FormatYAML, f)

	_, ok = OutputPrometheus.serializerFormat()
	assert.False(t, ok)
	_, ok = OutputText.serializerFormat()
	assert.False(t, ok)
}

func TestSupportedOutputs(t *testing.T) {
	for _, name := range SupportedOutputs() {
		_, err := ParseOutput(name)
		assert.NoError(t, err, name)
	}
}
