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

package serializer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"recipe.json":   FormatJSON,
		"RECIPE.YAML":   FormatYAML,
		"recipe.yml":    FormatYAML,
		"out.table":     FormatTable,
		"out.txt":       FormatTable,
		"recipe":        FormatJSON,
		"/tmp/a.b.json": FormatJSON,
	}
	for path, want := range tests {
		if got := FormatFromPath(path); got != want {
			t.Errorf("FormatFromPath(%q) = %s, want %s", path, got, want)
		}
	}
}

func TestFormatFromContentType(t *testing.T) {
	tests := map[string]Format{
		"":                                FormatJSON,
		"application/json":                FormatJSON,
		"application/json; charset=utf-8": FormatJSON,
		"application/yaml":                FormatYAML,
		"Application/X-YAML":              FormatYAML,
		"text/yaml; charset=utf-8":        FormatYAML,
	}
	for ct, want := range tests {
		if got := FormatFromContentType(ct); got != want {
			t.Errorf("FormatFromContentType(%q) = %s, want %s", ct, got, want)
		}
	}
}

func TestNewReader_RejectsTableAndUnknown(t *testing.T) {
	if _, err := NewReader(FormatTable, strings.NewReader("")); err == nil {
		t.Error("expected error for table format")
	}
	if _, err := NewReader(Format("toml"), strings.NewReader("")); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestReader_Deserialize(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		input   string
		wantErr bool
	}{
		{"json", FormatJSON, `{"name":"soup","count":3}`, false},
		{"yaml", FormatYAML, "name: soup\ncount: 3\n", false},
		{"json unknown field", FormatJSON, `{"name":"soup","colour":"red"}`, true},
		{"yaml unknown field", FormatYAML, "name: soup\ncolour: red\n", true},
		{"invalid json", FormatJSON, `{"name":`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(tt.format, strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("NewReader failed: %v", err)
			}
			var got testItem
			err = r.Deserialize(&got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Deserialize error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && (got.Name != "soup" || got.Count != 3) {
				t.Errorf("unexpected data: %+v", got)
			}
		})
	}
}

func TestReader_NilChecks(t *testing.T) {
	var r *Reader
	if err := r.Deserialize(&testItem{}); err == nil {
		t.Error("expected error for nil reader")
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil reader: %v", err)
	}

	r, _ = NewReader(FormatJSON, nil)
	if err := r.Deserialize(&testItem{}); err == nil {
		t.Error("expected error for nil input")
	}
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "item.yaml")
	if err := os.WriteFile(path, []byte("name: cake\ncount: 8\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := FromFile[testItem](context.Background(), path)
	if err != nil {
		t.Fatalf("FromFile failed: %v", err)
	}
	if got.Name != "cake" || got.Count != 8 {
		t.Errorf("unexpected data: %+v", got)
	}

	if _, err := FromFile[testItem](context.Background(), filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFromFile_URL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != HttpReaderUserAgent {
			t.Errorf("unexpected user agent %q", r.Header.Get("User-Agent"))
		}
		switch r.URL.Path {
		case "/item.json":
			_, _ = w.Write([]byte(`{"name":"pie","count":1}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	got, err := FromFile[testItem](context.Background(), srv.URL+"/item.json")
	if err != nil {
		t.Fatalf("FromFile failed: %v", err)
	}
	if got.Name != "pie" {
		t.Errorf("unexpected data: %+v", got)
	}

	if _, err := FromFile[testItem](context.Background(), srv.URL+"/missing.json"); err == nil {
		t.Error("expected error for 404")
	}
}
