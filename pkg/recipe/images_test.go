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

import (
	"reflect"
	"testing"
)

func TestPromoteImage(t *testing.T) {
	urls := []string{"a.jpg", "b.jpg", "c.jpg"}

	got := PromoteImage(urls, "c.jpg")
	if want := []string{"c.jpg", "a.jpg", "b.jpg"}; !reflect.DeepEqual(got, want) {
		t.Errorf("PromoteImage() = %v, want %v", got, want)
	}
	if urls[0] != "a.jpg" {
		t.Error("PromoteImage modified its input")
	}

	got = PromoteImage(urls, "missing.jpg")
	if !reflect.DeepEqual(got, urls) {
		t.Errorf("PromoteImage(unknown) = %v, want %v", got, urls)
	}
}

func TestRemoveImage(t *testing.T) {
	got := RemoveImage([]string{"a.jpg", "b.jpg", "a.jpg"}, "a.jpg")
	if want := []string{"b.jpg"}; !reflect.DeepEqual(got, want) {
		t.Errorf("RemoveImage() = %v, want %v", got, want)
	}
}

func TestCapImages(t *testing.T) {
	tests := []struct {
		name        string
		existing    int
		pending     int
		wantKeep    int
		wantDropped bool
	}{
		{"room for all", 1, 3, 3, false},
		{"exactly full", 2, 3, 3, false},
		{"overflow", 3, 4, 2, true},
		{"already full", 5, 1, 0, true},
		{"over limit", 7, 1, 0, true},
		{"nothing pending", 5, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keep, dropped := CapImages(tt.existing, tt.pending, 5)
			if keep != tt.wantKeep || dropped != tt.wantDropped {
				t.Errorf("CapImages(%d, %d, 5) = (%d, %v), want (%d, %v)",
					tt.existing, tt.pending, keep, dropped, tt.wantKeep, tt.wantDropped)
			}
		})
	}
}
