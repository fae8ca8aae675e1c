package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search programs..."
	ti.CharLimit = 100
	return ti
}

// startSearch focuses the search field, keeping the current query.
func (m *Model) startSearch() tea.Cmd {
	m.searching = true
	m.search.SetValue(m.ctrl.State().LastQuery)
	m.search.CursorEnd()
	return m.search.Focus()
}

// handleSearchKey edits the query. Every keystroke filters the full catalog
// again; enter and esc leave the field and keep the query.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm), key.Matches(msg, m.keys.Escape):
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.applyQuery(m.search.Value())
	return m, cmd
}

// clearSearch drops the query and shows the full catalog again.
func (m *Model) clearSearch() {
	m.search.SetValue("")
	m.applyQuery("")
}

func (m *Model) applyQuery(q string) {
	if q == m.ctrl.State().LastQuery {
		return
	}
	m.ctrl.Query(q)
	m.clampSelection()
}
