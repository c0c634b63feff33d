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
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kitchenware/recipebook/pkg/home"
	"github.com/kitchenware/recipebook/pkg/urlstate"
)

type focusField int

const (
	focusSearch focusField = iota
	focusInclude
	focusExclude
	focusCount
)

// App is the recipe browser. All committed state lives in the URL history;
// the search box mirrors the view model's search text.
type App struct {
	ctx     context.Context
	history *urlstate.History
	queries *home.Queries
	vm      *home.ViewModel

	search  textinput.Model
	include tagInput
	exclude tagInput
	spinner spinner.Model
	focus   focusField

	view   home.View
	cursor int
	width  int
	height int
}

// NewApp returns a browser over history. queries are shared with any other
// view over the same recipe API.
func NewApp(ctx context.Context, history *urlstate.History, queries *home.Queries) *App {
	ti := textinput.New()
	ti.Placeholder = "Search recipes..."
	ti.Prompt = "/ "
	ti.CharLimit = 200
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	a := &App{
		ctx:     ctx,
		history: history,
		queries: queries,
		vm:      home.New(history, queries),
		search:  ti,
		include: newTagInput("Include ingredients", "Add ingredient...", includeTagStyle),
		exclude: newTagInput("Exclude ingredients", "Add ingredient...", excludeTagStyle),
		spinner: sp,
	}
	a.syncInputs()
	a.refresh()
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, a.spinner.Tick, a.waitChanged())
}

// waitChanged subscribes to the queries before returning, so a settle that
// happens while the command is scheduled is not missed.
func (a *App) waitChanged() tea.Cmd {
	ch := a.queries.Changed(a.ctx)
	return func() tea.Msg {
		<-ch
		return changedMsg{}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case changedMsg:
		if a.ctx.Err() != nil {
			return a, tea.Quit
		}
		wait := a.waitChanged()
		a.refresh()
		return a, wait

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit

	case "esc":
		a.vm.HandleClear()
		a.syncInputs()
		a.refresh()
		return a, nil

	case "tab":
		a.setFocus((a.focus + 1) % focusCount)
		return a, textinput.Blink

	case "shift+tab":
		a.setFocus((a.focus + focusCount - 1) % focusCount)
		return a, textinput.Blink

	case "alt+left":
		if a.history.Back() {
			a.syncInputs()
			a.refresh()
		}
		return a, nil

	case "alt+right":
		if a.history.Forward() {
			a.syncInputs()
			a.refresh()
		}
		return a, nil

	case "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil

	case "down":
		if a.cursor < len(a.view.Recipes)-1 {
			a.cursor++
		}
		return a, nil
	}

	switch a.focus {
	case focusInclude:
		changed, cmd := a.include.update(msg)
		if changed {
			a.vm.SetIncludeIngredients(a.include.tags)
			a.refresh()
		}
		return a, cmd

	case focusExclude:
		changed, cmd := a.exclude.update(msg)
		if changed {
			a.vm.SetExcludeIngredients(a.exclude.tags)
			a.refresh()
		}
		return a, cmd
	}

	if msg.Type == tea.KeyEnter {
		a.vm.OnKeyDown(home.KeyEnter)
		a.refresh()
		return a, nil
	}

	var cmd tea.Cmd
	a.search, cmd = a.search.Update(msg)
	a.vm.SetSearchTerm(a.search.Value())
	return a, cmd
}

func (a *App) setFocus(f focusField) {
	a.focus = f
	a.search.Blur()
	a.include.input.Blur()
	a.exclude.input.Blur()
	switch f {
	case focusSearch:
		a.search.Focus()
	case focusInclude:
		a.include.input.Focus()
	case focusExclude:
		a.exclude.input.Focus()
	}
}

// syncInputs copies the committed state and the search text into the inputs.
func (a *App) syncInputs() {
	st := a.vm.State()
	a.search.SetValue(a.vm.SearchTerm())
	a.search.CursorEnd()
	a.include.setTags(st.IncludeIngredients)
	a.exclude.setTags(st.ExcludeIngredients)
}

func (a *App) refresh() {
	a.view = a.vm.View(a.ctx)
	if a.cursor >= len(a.view.Recipes) {
		a.cursor = max(len(a.view.Recipes)-1, 0)
	}
	// a background resync of q (history navigation) also updates the box
	if a.view.SearchTerm != a.search.Value() {
		a.search.SetValue(a.view.SearchTerm)
		a.search.CursorEnd()
	}
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(headingStyle.Render(a.view.Heading))
	b.WriteString("\n")

	box := inputStyle
	if a.focus == focusSearch {
		box = inputFocusedStyle
	}
	b.WriteString(box.Render(a.search.View()))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		a.include.view(a.focus == focusInclude),
		"  ",
		a.exclude.view(a.focus == focusExclude),
	))
	b.WriteString("\n\n")

	b.WriteString(a.body())
	b.WriteString(helpStyle.Render("enter search/add · tab next field · esc clear · alt+←/→ history · ↑/↓ move · ctrl+c quit"))
	return b.String()
}

func (a *App) body() string {
	v := a.view
	switch {
	case v.IsLoading:
		return " " + a.spinner.View() + " Loading recipes...\n"
	case v.IsError:
		return errorStyle.Render("Something went wrong while loading recipes.") + "\n"
	case v.IsEmpty && v.IsSearching:
		return emptyStyle.Render(fmt.Sprintf("No recipes found for %q. Press esc to show all.", v.SubmittedSearch)) + "\n"
	case v.IsEmpty && v.HasActiveFilters:
		return emptyStyle.Render("No recipes match these filters. Press esc to show all.") + "\n"
	case v.IsEmpty:
		return emptyStyle.Render("No recipes yet.") + "\n"
	}

	var b strings.Builder
	for i, r := range v.Recipes {
		meta := fmt.Sprintf("%d min · %s", r.CookingTimeInMinutes, r.Difficulty)
		if c := r.CuisineLabel(); c != "" {
			meta += " · " + c
		}
		line := r.Title + "  " + itemMetaStyle.Render(meta)
		if i == a.cursor {
			b.WriteString(itemSelectedStyle.Render("> " + line))
		} else {
			b.WriteString(itemStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Run starts the browser on the terminal and blocks until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, history *urlstate.History, queries *home.Queries) error {
	p := tea.NewProgram(NewApp(ctx, history, queries), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}
