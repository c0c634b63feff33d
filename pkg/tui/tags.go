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

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kitchenware/recipebook/pkg/recipe"
)

// tagInput edits an ingredient list: enter adds the typed ingredient,
// backspace on an empty input removes the last one.
type tagInput struct {
	input textinput.Model
	tags  []string
	label string
	style lipgloss.Style
}

func newTagInput(label, placeholder string, style lipgloss.Style) tagInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 100
	return tagInput{input: ti, label: label, style: style}
}

func (t *tagInput) setTags(tags []string) {
	t.tags = append([]string(nil), tags...)
}

// update applies a key press and reports whether the tag list changed.
func (t *tagInput) update(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "enter":
		n := len(t.tags)
		t.tags = recipe.AppendUnique(t.tags, t.input.Value())
		if len(t.tags) == n {
			return false, nil
		}
		t.input.SetValue("")
		return true, nil
	case "backspace":
		if t.input.Value() == "" && len(t.tags) > 0 {
			t.tags = t.tags[:len(t.tags)-1]
			return true, nil
		}
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return false, cmd
}

func (t *tagInput) view(focused bool) string {
	parts := make([]string, 0, len(t.tags)+1)
	for _, tag := range t.tags {
		parts = append(parts, t.style.Render(tag))
	}
	parts = append(parts, t.input.View())

	box := inputStyle
	if focused {
		box = inputFocusedStyle
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render(t.label),
		box.Render(strings.Join(parts, " ")),
	)
}
