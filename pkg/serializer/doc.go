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

// Package serializer provides encoding and decoding of report data in multiple formats.
//
// # Formats
//
//   - FormatJSON: two-space indented JSON, the format of saved reports
//   - FormatYAML: two-space indented YAML
//   - FormatTable: flattened FIELD/VALUE listing, write-only
//
// Table output flattens nested values into dotted keys named after their
// json tags. Fields tagged "-" are skipped. Types with a custom MarshalJSON
// are flattened through their JSON form.
//
// # Writing
//
//	w := serializer.NewWriter(serializer.FormatYAML, os.Stdout)
//	if err := w.Serialize(ctx, rep); err != nil {
//	    return err
//	}
//
// Marshal returns the same bytes a Writer would produce, which is how
// reports are saved to disk together with WriteToFile.
//
// # Reading
//
// Decode reads JSON or YAML from any reader. FromFile decodes a file with
// the format taken from its extension, which is how saved reports are
// loaded back:
//
//	saved, err := serializer.FromFile[report.Report](path)
package serializer
