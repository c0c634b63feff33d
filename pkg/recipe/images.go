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

package recipe

// PromoteImage moves url to the front of urls, making it the cover image.
// The input slice is not modified; an unknown url leaves the order unchanged.
func PromoteImage(urls []string, url string) []string {
	out := make([]string, 0, len(urls))
	found := false
	for _, u := range urls {
		if u == url {
			found = true
			continue
		}
		out = append(out, u)
	}
	if !found {
		return append([]string(nil), urls...)
	}
	return append([]string{url}, out...)
}

// RemoveImage returns urls without any occurrence of url.
func RemoveImage(urls []string, url string) []string {
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if u != url {
			out = append(out, u)
		}
	}
	return out
}

// CapImages returns how many of the pending new files may be kept given the
// number of existing images and the cap, and whether any had to be dropped.
func CapImages(existing, pending, limit int) (keep int, dropped bool) {
	room := limit - existing
	if room < 0 {
		room = 0
	}
	if pending <= room {
		return pending, false
	}
	return room, true
}
