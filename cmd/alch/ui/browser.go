// Package ui implements the interactive catalog browser: a bubbletea
// program with an incremental search box, a scrolling result list, and a
// detail pane for the selected ingredient.
package ui

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/radj307/caco-alch-potion-builder/internal/alchemy"
	"github.com/radj307/caco-alch-potion-builder/internal/format"
)

// visibleRows is the fallback list height before the first WindowSizeMsg.
const visibleRows = 15

// Model is the browser state. Construct with New.
type Model struct {
	reg     *alchemy.Registry
	fmt     *format.Formatter
	input   textinput.Model
	results []alchemy.Ingredient
	cursor  int
	offset  int
	rows    int
	width   int
}

// New builds a browser over a loaded registry. The formatter controls
// how the detail pane renders the selected ingredient.
func New(reg *alchemy.Registry, f *format.Formatter) Model {
	input := textinput.New()
	input.Placeholder = "search ingredients and effects"
	input.Prompt = "/ "
	input.Focus()

	m := Model{
		reg:   reg,
		fmt:   f,
		input: input,
		rows:  visibleRows,
	}
	m.refilter()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// refilter recomputes the result list from the current search text and
// clamps the cursor into range.
func (m *Model) refilter() {
	term := strings.TrimSpace(m.input.Value())
	if term == "" {
		m.results = m.reg.List()
	} else {
		m.results = m.reg.Find(term, alchemy.MatchContains, alchemy.ScopeBoth)
	}
	if m.cursor >= len(m.results) {
		m.cursor = len(m.results) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.scrollIntoView()
}

// scrollIntoView keeps the cursor inside the visible window.
func (m *Model) scrollIntoView() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.rows {
		m.offset = m.cursor - m.rows + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		// Search box, separator, and detail pane share the screen with
		// the list.
		m.rows = msg.Height - 8
		if m.rows < 3 {
			m.rows = 3
		}
		m.scrollIntoView()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			if msg.String() == "esc" && m.input.Value() != "" {
				m.input.SetValue("")
				m.refilter()
				return m, nil
			}
			return m, tea.Quit
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			m.scrollIntoView()
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
			m.scrollIntoView()
			return m, nil
		case "pgup":
			m.cursor -= m.rows
			if m.cursor < 0 {
				m.cursor = 0
			}
			m.scrollIntoView()
			return m, nil
		case "pgdown":
			m.cursor += m.rows
			if m.cursor > len(m.results)-1 {
				m.cursor = len(m.results) - 1
			}
			m.scrollIntoView()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refilter()
	return m, cmd
}

// Selected returns the ingredient under the cursor.
func (m Model) Selected() (alchemy.Ingredient, bool) {
	if len(m.results) == 0 {
		return alchemy.Ingredient{}, false
	}
	return m.results[m.cursor], true
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(listTitleStyle.Render(resultCount(len(m.results))))
	b.WriteString("\n")

	end := m.offset + m.rows
	if end > len(m.results) {
		end = len(m.results)
	}
	for i := m.offset; i < end; i++ {
		name := m.results[i].Name
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + name))
		} else {
			b.WriteString(itemStyle.Render("  " + name))
		}
		b.WriteString("\n")
	}

	if sel, ok := m.Selected(); ok {
		var detail bytes.Buffer
		m.fmt.Ingredient(&detail, sel, m.terms())
		b.WriteString(paneStyle.Render(strings.TrimRight(detail.String(), "\n")))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("up/down move · esc clear · ctrl+c quit"))
	return b.String()
}

func (m Model) terms() []string {
	term := strings.TrimSpace(strings.ToLower(m.input.Value()))
	if term == "" {
		return nil
	}
	return []string{term}
}

func resultCount(n int) string {
	if n == 1 {
		return "1 ingredient"
	}
	return strconv.Itoa(n) + " ingredients"
}
