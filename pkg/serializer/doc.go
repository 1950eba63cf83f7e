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

// Package serializer provides encoding of build result data in multiple formats.
//
// # Overview
//
// The serializer package converts result structures into JSON, YAML, or a
// human-readable table. The build summary printed after a successful image
// build goes through this package, either to stdout or to a file.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, indented representation
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable with preserved structure
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - Flattened FIELD/VALUE rows via text/tabwriter
//   - Write-only, best for terminal viewing
//
// # Usage
//
// Write to stdout:
//
//	w := serializer.NewStdoutWriter(serializer.FormatTable)
//	if err := w.Serialize(ctx, result); err != nil {
//	    return err
//	}
//
// Write to a file, falling back to stdout when the file cannot be created:
//
//	s := serializer.NewFileWriterOrStdout(serializer.FormatYAML, "summary.yaml")
//	if c, ok := s.(serializer.Closer); ok {
//	    defer c.Close()
//	}
//	if err := s.Serialize(ctx, result); err != nil {
//	    return err
//	}
//
// # Format Detection
//
// FormatFromPath maps file extensions to formats:
//   - .json → JSON
//   - .yaml, .yml → YAML
//   - .table, .txt → Table
//   - Other → Table (default)
//
// # Resource Management
//
// Writers created by NewFileWriterOrStdout hold a file handle; call Close
// when done. Close is safe to call multiple times and is a no-op for
// stdout-backed writers.
package serializer
