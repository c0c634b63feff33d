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

// Package serializer reads and writes recipebook data as JSON, YAML or a
// plain-text table.
//
// Writing:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatTable, "")
//	defer w.Close()
//	err := w.Serialize(ctx, view)
//
// Values implementing Tabular are rendered as columns in table format; other
// values are flattened into FIELD/VALUE rows keyed by their json names.
//
// Reading recipe input files (local path or http(s) URL):
//
//	in, err := serializer.FromFile[recipe.Input](ctx, "pancakes.yaml")
//
// HTTP handlers use RespondJSON, which buffers the encoding so a failure
// never produces a partial response.
package serializer
