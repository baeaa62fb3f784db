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
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// menuAction identifies an entry of the main menu.
type menuAction int

const (
	actionLoad menuAction = iota
	actionShow
	actionTraverse
	actionBuild
	actionShowAVL
	actionTraverseAVL
	actionInsert
	actionDelete
	actionSearch
	actionExit
)

// menuItem is one entry in the menu list. Entries with a prompt ask for input
// before they run.
type menuItem struct {
	key    string
	title  string
	desc   string
	prompt string
	action menuAction
}

func (i menuItem) FilterValue() string { return i.title }
func (i menuItem) Title() string       { return fmt.Sprintf("%s. %s", i.key, i.title) }
func (i menuItem) Description() string { return i.desc }

var menuItems = []menuItem{
	{key: "1", title: "Load the tree from file", desc: "bracket notation, first line only", prompt: "Enter the file name", action: actionLoad},
	{key: "2", title: "Show the tree", desc: "sideways drawing of the plain tree", action: actionShow},
	{key: "3", title: "Traverse the tree", desc: "pre-order, in-order, post-order", action: actionTraverse},
	{key: "4", title: "Create AVL tree", desc: "insert the plain tree's keys breadth-first", action: actionBuild},
	{key: "5", title: "Show AVL tree", desc: "sideways drawing with heights", action: actionShowAVL},
	{key: "6", title: "Traverse AVL tree", desc: "breadth-first, pre-order, in-order, post-order", action: actionTraverseAVL},
	{key: "7", title: "Insert element", desc: "one or more keys", prompt: "Enter the number to insert", action: actionInsert},
	{key: "8", title: "Delete element", desc: "one or more keys", prompt: "Enter the number to delete", action: actionDelete},
	{key: "9", title: "Search element", desc: "one or more keys", prompt: "Enter the number to search", action: actionSearch},
	{key: "0", title: "Exit", desc: "leave arbor", action: actionExit},
}

var (
	defaultWriteClipboard = clipboard.WriteAll
	writeClipboard        = defaultWriteClipboard
)

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	menu   list.Model
	input  textinput.Model
	output viewport.Model

	session *Session

	// State
	pending       *menuItem // action waiting for prompt input
	focusOnOutput bool
	showHelp      bool
	outputText    string
	status        string
	statusIsError bool

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer
	helpText        string

	// Dimensions
	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles builds the styles from the active color scheme
func NewStyles() *Styles {
	scheme := GetColorScheme()
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.BorderFocus).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.Border),
		Title: lipgloss.NewStyle().
			Foreground(scheme.Primary).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(scheme.Accent).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(scheme.TextMuted).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(scheme.TextMuted),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(scheme.Success).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(scheme.Error).
			Bold(true),
	}
}

// InitialModel creates the initial model
func InitialModel(session *Session) Model {
	items := make([]list.Item, len(menuItems))
	for i, item := range menuItems {
		items[i] = item
	}

	menu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	menu.SetShowTitle(false)
	menu.SetShowHelp(false)
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)
	menu.KeyMap.Quit.SetEnabled(false)

	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40

	output := viewport.New(0, 0)
	output.SetContent("Choose a menu item to begin...")

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	styles := NewStyles()
	ti.PromptStyle = styles.InputPrompt

	return Model{
		menu:            menu,
		input:           ti,
		output:          output,
		session:         session,
		styles:          styles,
		glamourRenderer: glamourRenderer,
	}
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.pending != nil {
			return m.updatePrompt(msg)
		}
		return m.updateMenu(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, nil
}

// updateMenu handles key events while no prompt is open
func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch key := msg.String(); key {
	case "q":
		return m, tea.Quit
	case "esc":
		if m.showHelp {
			m.toggleHelp()
			return m, nil
		}
		return m, tea.Quit
	case "?":
		m.toggleHelp()
		return m, nil
	case "tab":
		m.focusOnOutput = !m.focusOnOutput
		return m, nil
	case "ctrl+y":
		if err := writeClipboard(m.outputText); err != nil {
			m.setStatus(fmt.Sprintf("Copy failed: %v", err), true)
		} else {
			m.setStatus("📋 Output copied to clipboard", false)
		}
		return m, nil
	case "enter":
		if item, ok := m.menu.SelectedItem().(menuItem); ok {
			return m.activate(item)
		}
		return m, nil
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		for i, item := range menuItems {
			if item.key == key {
				m.menu.Select(i)
				return m.activate(item)
			}
		}
	case "pgup":
		m.output.LineUp(m.output.Height)
		return m, nil
	case "pgdown":
		m.output.LineDown(m.output.Height)
		return m, nil
	}

	if m.focusOnOutput {
		m.output, cmd = m.output.Update(msg)
	} else {
		m.menu, cmd = m.menu.Update(msg)
	}
	return m, cmd
}

// updatePrompt handles key events while the input prompt is open
func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "esc":
		m.closePrompt()
		m.setStatus("Cancelled", false)
		return m, nil
	case "enter":
		item := *m.pending
		value := strings.TrimSpace(m.input.Value())
		m.closePrompt()
		return m, m.execute(item, value)
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// activate runs item, or opens its prompt first
func (m Model) activate(item menuItem) (tea.Model, tea.Cmd) {
	if item.prompt == "" {
		return m, m.execute(item, "")
	}
	m.pending = &item
	m.input.Placeholder = item.prompt
	m.input.SetValue("")
	m.input.Focus()
	m.setStatus("", false)
	return m, textinput.Blink
}

func (m *Model) closePrompt() {
	m.pending = nil
	m.input.Blur()
	m.input.SetValue("")
}

// execute performs one menu action against the session
func (m *Model) execute(item menuItem, arg string) tea.Cmd {
	var out strings.Builder
	var err error
	status := ""

	switch item.action {
	case actionLoad:
		if arg == "" {
			m.setStatus("No file name given", true)
			return nil
		}
		var cached bool
		if cached, err = m.session.Load(arg); err == nil {
			status = "The tree has been uploaded successfully!"
			if cached {
				status += " (cached)"
			}
		}
	case actionShow:
		err = m.session.ShowBinary(&out)
	case actionTraverse:
		err = m.session.BinaryTraversals(&out)
	case actionBuild:
		if err = m.session.BuildAVL(); err == nil {
			status = "AVL tree created!"
			err = m.session.ShowAVL(&out)
		}
	case actionShowAVL:
		err = m.session.ShowAVL(&out)
	case actionTraverseAVL:
		err = m.session.AVLTraversals(&out)
	case actionInsert, actionDelete, actionSearch:
		keys, perr := parseKeys(strings.Fields(strings.ReplaceAll(arg, ",", " ")))
		if perr == nil && len(keys) == 0 {
			perr = fmt.Errorf("no number given")
		}
		if perr != nil {
			m.setStatus(perr.Error(), true)
			return nil
		}
		status, err = m.executeKeys(item.action, keys)
		if err == nil && item.action != actionSearch && m.session.HasAVL() {
			err = m.session.ShowAVL(&out)
		}
	case actionExit:
		return tea.Quit
	}

	if err != nil {
		m.setStatus(describeError(err), true)
		return nil
	}
	if out.Len() > 0 {
		m.setOutput(out.String())
	}
	m.setStatus(status, false)
	return nil
}

func (m *Model) executeKeys(action menuAction, keys []int) (string, error) {
	results := make([]string, 0, len(keys))
	for _, key := range keys {
		switch action {
		case actionInsert:
			if m.session.Insert(key) {
				results = append(results, fmt.Sprintf("Inserted %d!", key))
			} else {
				results = append(results, fmt.Sprintf("%d already present", key))
			}
		case actionDelete:
			found, err := m.session.Delete(key)
			if err != nil {
				return "", err
			}
			if found {
				results = append(results, fmt.Sprintf("Deleted %d!", key))
			} else {
				results = append(results, fmt.Sprintf("%d not present", key))
			}
		case actionSearch:
			found, err := m.session.Search(key)
			if err != nil {
				return "", err
			}
			if found {
				results = append(results, fmt.Sprintf("%d Found!", key))
			} else {
				results = append(results, fmt.Sprintf("%d Not found!", key))
			}
		}
	}
	return strings.Join(results, "  "), nil
}

func (m *Model) setOutput(text string) {
	m.outputText = text
	m.showHelp = false
	m.output.SetContent(text)
	m.output.GotoTop()
}

func (m *Model) setStatus(text string, isError bool) {
	m.status = text
	m.statusIsError = isError
}

// toggleHelp swaps the output pane for the rendered usage guide and back
func (m *Model) toggleHelp() {
	m.showHelp = !m.showHelp
	if !m.showHelp {
		m.output.SetContent(m.outputText)
		return
	}
	if m.helpText == "" {
		m.helpText = usageMarkdown()
		if m.glamourRenderer != nil {
			if rendered, err := m.glamourRenderer.Render(m.helpText); err == nil {
				m.helpText = rendered
			}
		}
	}
	m.output.SetContent(m.helpText)
	m.output.GotoTop()
}

// View renders the menu, the prompt, the output pane and the key help
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 30 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	menuWidth, outputWidth, bodyHeight := m.dimensions()

	menuStyle, outputStyle := m.styles.BorderFocused, m.styles.BorderBlurred
	menuTitle, outputTitle := " 🌳 Menu (Active) ", " 📋 Output "
	if m.focusOnOutput {
		menuStyle, outputStyle = outputStyle, menuStyle
		menuTitle, outputTitle = " 🌳 Menu ", " 📋 Output (Active) "
	}
	if m.showHelp {
		outputTitle = " 📖 Usage "
	}

	menuBox := menuStyle.
		Width(menuWidth).
		Height(bodyHeight - 5).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(menuTitle),
			m.menu.View(),
		))

	promptTitle := " ✏️  Input "
	promptStyle := m.styles.BorderBlurred
	if m.pending != nil {
		promptTitle = fmt.Sprintf(" ✏️  %s ", m.pending.prompt)
		promptStyle = m.styles.BorderFocused
	}
	promptBox := promptStyle.
		Width(menuWidth).
		Height(3).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(promptTitle),
			m.input.View(),
		))

	outputBox := outputStyle.
		Width(outputWidth).
		Height(bodyHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(outputTitle),
			m.output.View(),
		))

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, menuBox, promptBox),
		outputBox,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		m.renderStatus(),
		m.renderHelp(),
	)
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	style := m.styles.SuccessMessage
	if m.statusIsError {
		style = m.styles.ErrorMessage
	}
	return lipgloss.NewStyle().Padding(0, 0, 0, 2).Render(style.Render(m.status))
}

// renderHelp renders the key help footer
func (m Model) renderHelp() string {
	var keys []string
	var descs []string

	if m.pending != nil {
		keys = append(keys, "enter", "esc")
		descs = append(descs, "confirm", "cancel")
	} else {
		keys = append(keys, "enter", "0-9", "tab", "ctrl+y", "?", "q")
		descs = append(descs, "run", "menu item", "switch focus", "copy output", "usage", "quit")
	}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

func (m Model) dimensions() (menuWidth, outputWidth, bodyHeight int) {
	menuWidth = (m.width * 4 / 10) - 1
	outputWidth = m.width - menuWidth - 3
	bodyHeight = m.height - 6
	return
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	menuWidth, outputWidth, bodyHeight := m.dimensions()

	m.input.Width = max(menuWidth-6, 1)
	m.menu.SetSize(max(menuWidth-2, 1), max(bodyHeight-7, 1))
	m.output.Width = max(outputWidth-2, 1)
	m.output.Height = max(bodyHeight-2, 1)
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(session *Session) error {
	InitializeColors()

	program := tea.NewProgram(
		InitialModel(session),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
