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

// Package store saves reports to timestamped JSON files.
//
// Files are written to a "reports" directory next to the executable unless
// another directory is configured:
//
//	s, err := store.New("")
//	path, err := s.Save(ctx, rep)
//
// A saved file holds the same bytes the JSON output format prints and is
// read back with Load.
package store
