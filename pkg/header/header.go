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

package header

import (
	"time"
)

// APIVersion is the schema version of documents produced by recipebook.
const APIVersion = "recipebook/v1"

// Kind represents the type of a recipebook document.
type Kind string

// Valid Kind constants.
const (
	KindHomeView   Kind = "HomeView"
	KindRecipe     Kind = "Recipe"
	KindRecipeList Kind = "RecipeList"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is one of the recognized kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindHomeView, KindRecipe, KindRecipeList:
		return true
	default:
		return false
	}
}

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithMetadata adds a metadata key-value pair.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// WithKind sets the Kind.
func WithKind(kind Kind) Option {
	return func(h *Header) {
		h.Kind = kind
	}
}

// WithVersion records the producing binary version in the metadata.
func WithVersion(version string) Option {
	return func(h *Header) {
		if version != "" {
			WithMetadata("version", version)(h)
		}
	}
}

// New creates a Header with the current API version and a UTC timestamp,
// then applies opts.
func New(opts ...Option) *Header {
	h := &Header{
		APIVersion: APIVersion,
		Metadata: map[string]string{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Header identifies a document returned by the API or written by the CLI.
// Embed it in a response struct to prefix the payload with kind and version.
type Header struct {
	Kind       Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
	APIVersion string            `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}
