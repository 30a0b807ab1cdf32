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

// Package defaults provides centralized configuration constants for envinspect.
//
// This package defines timeout values, environment-section limits and
// persistence settings used across the codebase. Centralizing these values
// ensures consistency between the collectors, renderers and the store.
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/NVIDIA/envinspect/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.CollectorTimeout)
//	defer cancel()
//
// # Guidelines
//
//   - Collectors: 10s for a whole pass, 5s per platform query
//   - Verbose text output lists at most 10 variables, values capped at 50 characters
//   - Reports are written with 0644 permissions inside a 0755 directory
package defaults
