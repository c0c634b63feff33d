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

// History is a Store that records every committed parameter set so callers
// can move back and forward through them, like a browser location bar.
type History struct {
	mu       sync.RWMutex
	entries  []url.Values
	cursor   int
	revision uint64
}

// NewHistory returns a History whose first entry is a copy of initial.
func NewHistory(initial url.Values) *History {
	return &History{entries: []url.Values{Clone(initial)}}
}

// Values returns a copy of the parameters at the cursor.
func (h *History) Values() url.Values {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return Clone(h.entries[h.cursor])
}

// Replace pushes v as a new entry after the cursor and drops any forward
// entries. Committing the parameters already at the cursor is a no-op.
func (h *History) Replace(v url.Values) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if Equal(h.entries[h.cursor], v) {
		return
	}
	h.entries = append(h.entries[:h.cursor+1], Clone(v))
	h.cursor++
	h.revision++
}

// Back moves the cursor to the previous entry. It reports false when already
// at the oldest entry.
func (h *History) Back() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cursor == 0 {
		return false
	}
	h.cursor--
	h.revision++
	return true
}

// Forward moves the cursor to the next entry. It reports false when already
// at the newest entry.
func (h *History) Forward() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cursor >= len(h.entries)-1 {
		return false
	}
	h.cursor++
	h.revision++
	return true
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}

// Revision increments whenever the parameters at the cursor change.
func (h *History) Revision() uint64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.revision
}

// Encode renders the current parameters as a query string with a leading
// "?", or "" when there are none.
func (h *History) Encode() string {
	return EncodeQuery(h.Values())
}

// EncodeQuery renders v as "?k=v&..." or "" when v is empty.
func EncodeQuery(v url.Values) string {
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}
