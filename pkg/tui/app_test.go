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
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kitchenware/recipebook/pkg/home"
	"github.com/kitchenware/recipebook/pkg/recipe"
	"github.com/kitchenware/recipebook/pkg/urlstate"
)

type staticSource struct {
	recipes []recipe.Recipe
}

func (s staticSource) ListRecipes(context.Context, recipe.ListParams) ([]recipe.Recipe, error) {
	return s.recipes, nil
}

func (s staticSource) SearchRecipes(_ context.Context, p recipe.SearchParams) ([]recipe.Recipe, error) {
	var out []recipe.Recipe
	for _, r := range s.recipes {
		if strings.Contains(strings.ToLower(r.Title), strings.ToLower(p.Q)) {
			out = append(out, r)
		}
	}
	return out, nil
}

func newTestApp(t *testing.T, raw string) (*App, *urlstate.History) {
	t.Helper()
	v, err := url.ParseQuery(raw)
	require.NoError(t, err)
	h := urlstate.NewHistory(v)
	src := staticSource{recipes: []recipe.Recipe{
		{ID: 1, Title: "Tomato Soup", CookingTimeInMinutes: 30, Difficulty: recipe.DifficultyEasy},
		{ID: 2, Title: "Pasta Bake", CookingTimeInMinutes: 45, Difficulty: recipe.DifficultyMedium},
	}}
	return NewApp(context.Background(), h, home.NewQueries(src)), h
}

func typeText(a *App, s string) {
	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func press(a *App, k tea.KeyType) {
	a.Update(tea.KeyMsg{Type: k})
}

func settleApp(t *testing.T, a *App) {
	t.Helper()
	require.Eventually(t, func() bool {
		a.Update(changedMsg{})
		return !a.view.IsLoading
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSearchSubmitsOnEnter(t *testing.T) {
	a, h := newTestApp(t, "include_ingredients=tomato")

	typeText(a, "  soup ")
	assert.Empty(t, h.Values().Get(recipe.ParamQuery), "typing must not commit")

	press(a, tea.KeyEnter)
	assert.Equal(t, "soup", h.Values().Get(recipe.ParamQuery))
	assert.Equal(t, "tomato", h.Values().Get(recipe.ParamIncludeIngredients))

	settleApp(t, a)
	assert.Equal(t, `Results for "soup"`, a.view.Heading)
	require.Len(t, a.view.Recipes, 1)
	assert.Contains(t, a.View(), "Tomato Soup")
}

func TestTagInputs(t *testing.T) {
	a, h := newTestApp(t, "")

	press(a, tea.KeyTab)
	assert.Equal(t, focusInclude, a.focus)

	typeText(a, "egg")
	press(a, tea.KeyEnter)
	typeText(a, "milk")
	press(a, tea.KeyEnter)
	assert.Equal(t, "egg,milk", h.Values().Get(recipe.ParamIncludeIngredients))

	press(a, tea.KeyBackspace)
	assert.Equal(t, "egg", h.Values().Get(recipe.ParamIncludeIngredients))

	press(a, tea.KeyTab)
	typeText(a, "nuts")
	press(a, tea.KeyEnter)
	assert.Equal(t, "nuts", h.Values().Get(recipe.ParamExcludeIngredients))

	settleApp(t, a)
	assert.Equal(t, home.HeadingFiltered, a.view.Heading)

	press(a, tea.KeyTab)
	assert.Equal(t, focusSearch, a.focus)
}

func TestEscClears(t *testing.T) {
	a, h := newTestApp(t, "q=soup&exclude_ingredients=nuts")
	assert.Equal(t, "soup", a.search.Value())

	press(a, tea.KeyEsc)
	assert.Empty(t, h.Values())
	assert.Empty(t, a.search.Value())
	assert.Empty(t, a.exclude.tags)
}

func TestHistoryNavigationResyncsSearchBox(t *testing.T) {
	a, h := newTestApp(t, "")

	typeText(a, "soup")
	press(a, tea.KeyEnter)
	typeText(a, " extra")
	require.Equal(t, "soup extra", a.search.Value())

	a.Update(tea.KeyMsg{Type: tea.KeyLeft, Alt: true})
	assert.Empty(t, h.Values().Get(recipe.ParamQuery))
	assert.Empty(t, a.search.Value())

	a.Update(tea.KeyMsg{Type: tea.KeyRight, Alt: true})
	assert.Equal(t, "soup", h.Values().Get(recipe.ParamQuery))
	assert.Equal(t, "soup", a.search.Value())
}

func TestCursorMovement(t *testing.T) {
	a, _ := newTestApp(t, "")
	settleApp(t, a)
	require.Len(t, a.view.Recipes, 2)

	press(a, tea.KeyUp)
	assert.Equal(t, 0, a.cursor)
	press(a, tea.KeyDown)
	press(a, tea.KeyDown)
	assert.Equal(t, 1, a.cursor)
}

func TestQuit(t *testing.T) {
	a, _ := newTestApp(t, "")
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestTagInputDeduplicates(t *testing.T) {
	ti := newTagInput("Include", "", includeTagStyle)
	ti.input.Focus()
	ti.setTags([]string{"egg"})

	ti.input.SetValue("EGG")
	changed, _ := ti.update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, changed)
	assert.Equal(t, []string{"egg"}, ti.tags)
	assert.Equal(t, "EGG", ti.input.Value())

	ti.input.SetValue("   ")
	changed, _ = ti.update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, changed)

	ti.input.SetValue("")
	changed, _ = ti.update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.True(t, changed)
	assert.Empty(t, ti.tags)
}
