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

package home

import "github.com/kitchenware/recipebook/pkg/header"

// Document is a View prefixed with a resource header, as returned by the
// API and written by the CLI.
type Document struct {
	header.Header `json:",inline" yaml:",inline"`
	View          `json:",inline" yaml:",inline"`

	// Error is the message of the failed fetch when IsError is set.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewDocument wraps v in a HomeView document produced by version.
func NewDocument(v View, version string) Document {
	doc := Document{
		Header: *header.New(header.WithKind(header.KindHomeView), header.WithVersion(version)),
		View:   v,
	}
	if v.Err != nil {
		doc.Error = v.Err.Error()
	}
	return doc
}
