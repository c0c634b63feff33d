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
	"net/url"
	"sync"
)

// Store is a URL query-parameter store. Values returns a copy of the current
// parameters; Replace commits a new parameter set.
type Store interface {
	Values() url.Values
	Replace(v url.Values)
}

// Clone returns a deep copy of v. A nil input yields an empty, non-nil map.
func Clone(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}

// Equal reports whether a and b hold the same parameters in the same order.
func Equal(a, b url.Values) bool {
	return a.Encode() == b.Encode()
}

// Memory is a Store held in memory with no history.
type Memory struct {
	mu     sync.RWMutex
	values url.Values
}

// NewMemory returns a Memory store seeded with a copy of v.
func NewMemory(v url.Values) *Memory {
	return &Memory{values: Clone(v)}
}

// Values returns a copy of the current parameters.
func (m *Memory) Values() url.Values {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Clone(m.values)
}

// Replace stores a copy of v.
func (m *Memory) Replace(v url.Values) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = Clone(v)
}
