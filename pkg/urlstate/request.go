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

package urlstate

import (
	"net/http"
	"net/url"
	"sync"
)

// Request is a Store seeded from an inbound HTTP request. Writes are kept so
// the handler can redirect the caller to the committed location.
type Request struct {
	mu      sync.RWMutex
	path    string
	values  url.Values
	written bool
}

// FromRequest returns a Request store over the query of r.
func FromRequest(r *http.Request) *Request {
	return NewRequest(r.URL.Path, r.URL.Query())
}

// NewRequest returns a Request store for path with a copy of v.
func NewRequest(path string, v url.Values) *Request {
	return &Request{path: path, values: Clone(v)}
}

// Parse builds a Request store from a relative or absolute URL string such as
// "/v1/home?q=soup".
func Parse(raw string) (*Request, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	return NewRequest(u.Path, u.Query()), nil
}

// Values returns a copy of the current parameters.
func (r *Request) Values() url.Values {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Clone(r.values)
}

// Replace records v as the committed parameters.
func (r *Request) Replace(v url.Values) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = Clone(v)
	r.written = true
}

// Written reports whether Replace has been called.
func (r *Request) Written() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.written
}

// Location returns the path with the committed query, for a redirect.
func (r *Request) Location() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.path + EncodeQuery(r.values)
}
