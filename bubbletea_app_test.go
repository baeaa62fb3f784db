// Copyright 2025 Naren Yellavula
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

package main

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	session := NewSession(nil)
	t.Cleanup(session.Close)

	var model tea.Model = InitialModel(session)
	model, _ = model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return model.(Model)
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	var model tea.Model = m
	for _, key := range keys {
		model, cmd = model.Update(key)
	}
	return model.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typed(s string) []tea.KeyMsg {
	keys := make([]tea.KeyMsg, 0, len(s))
	for _, r := range s {
		keys = append(keys, runes(string(r)))
	}
	return keys
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelLoadBuildAndInsert(t *testing.T) {
	m := newTestModel(t)
	path := writeTree(t, sampleTree)

	m, _ = press(t, m, runes("1"))
	require.NotNil(t, m.pending)
	assert.Equal(t, actionLoad, m.pending.action)

	m, _ = press(t, m, append(typed(path), enter)...)
	assert.Nil(t, m.pending)
	assert.False(t, m.statusIsError, m.status)
	assert.Equal(t, "The tree has been uploaded successfully!", m.status)

	m, _ = press(t, m, runes("3"))
	assert.Contains(t, m.outputText, "In-order: 1 3 6 8 10 14")

	m, _ = press(t, m, runes("4"))
	assert.Equal(t, "AVL tree created!", m.status)
	assert.Contains(t, m.outputText, "8 (h:3)")

	m, _ = press(t, m, append([]tea.KeyMsg{runes("7")}, append(typed("15, 1"), enter)...)...)
	assert.Equal(t, "Inserted 15!  1 already present", m.status)
	assert.Contains(t, m.outputText, "15 (h:1)")

	m, _ = press(t, m, append([]tea.KeyMsg{runes("9")}, append(typed("6 7"), enter)...)...)
	assert.Equal(t, "6 Found!  7 Not found!", m.status)

	m, _ = press(t, m, runes("6"))
	assert.Contains(t, m.outputText, "Breadth-first: 8 3 14 1 6 10 15")
}

func TestModelErrors(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(t, m, runes("2"))
	assert.True(t, m.statusIsError)
	assert.Equal(t, "Tree not loaded! Load a tree file first.", m.status)

	m, _ = press(t, m, runes("5"))
	assert.Equal(t, "AVL tree not created!", m.status)

	m, _ = press(t, m, append([]tea.KeyMsg{runes("7")}, append(typed("abc"), enter)...)...)
	assert.True(t, m.statusIsError)
	assert.Equal(t, `invalid key "abc"`, m.status)

	m, _ = press(t, m, runes("8"), enter)
	assert.Equal(t, "no number given", m.status)
}

func TestModelPromptCancel(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(t, m, runes("1"), runes("q"), esc)
	assert.Nil(t, m.pending)
	assert.Equal(t, "Cancelled", m.status)
	assert.Empty(t, m.input.Value())
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)

	_, cmd := press(t, m, runes("q"))
	assert.True(t, isQuit(cmd))

	_, cmd = press(t, m, runes("0"))
	assert.True(t, isQuit(cmd))

	_, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, isQuit(cmd))
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(t, m, runes("?"))
	assert.True(t, m.showHelp)
	assert.NotEmpty(t, m.helpText)

	m, cmd := press(t, m, esc)
	assert.False(t, m.showHelp)
	assert.False(t, isQuit(cmd), "esc closes help before quitting")
}

func TestModelCopyOutput(t *testing.T) {
	var copied string
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = defaultWriteClipboard })

	m := newTestModel(t)
	m.setOutput("20 (h:2)\n")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.Equal(t, "20 (h:2)\n", copied)
	assert.False(t, m.statusIsError)

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.True(t, m.statusIsError)
	assert.Contains(t, m.status, "no clipboard")
}

func TestModelView(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	assert.Contains(t, view, "Menu")
	assert.Contains(t, view, "Create AVL tree")

	small, _ := m.Update(tea.WindowSizeMsg{Width: 10, Height: 5})
	assert.Contains(t, small.View(), "Terminal too small")
}
