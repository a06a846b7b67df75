// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// model is the bubbletea model for the ARI tree browser.
type model struct {
	keys keyMap

	lines    []treeLine
	filtered []int // indexes into lines, empty filter shows all

	cursor       int
	scrollOffset int
	width        int
	height       int

	filterActive bool
	filterInput  string

	sourcePath string
}

func newModel(lines []treeLine, sourcePath string) model {
	m := model{
		keys:       defaultKeyMap,
		lines:      lines,
		sourcePath: sourcePath,
	}
	m.applyFilter()
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		if m.filterActive {
			return m.handleFilterKeys(message)
		}

		switch {
		case key.Matches(message, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(message, m.keys.FilterActivate):
			m.filterActive = true
		case key.Matches(message, m.keys.Up):
			m.moveCursor(-1)
		case key.Matches(message, m.keys.Down):
			m.moveCursor(1)
		case key.Matches(message, m.keys.PageUp):
			m.moveCursor(-m.pageSize())
		case key.Matches(message, m.keys.PageDown):
			m.moveCursor(m.pageSize())
		case key.Matches(message, m.keys.Home):
			m.setCursor(0)
		case key.Matches(message, m.keys.End):
			m.setCursor(len(m.filtered) - 1)
		case key.Matches(message, m.keys.FilterClear):
			if m.filterInput != "" {
				m.filterInput = ""
				m.applyFilter()
			}
		}

	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
	}

	return m, nil
}

func (m model) handleFilterKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.Type {
	case tea.KeyEsc:
		m.filterActive = false
		m.filterInput = ""
		m.applyFilter()
	case tea.KeyEnter:
		m.filterActive = false
	case tea.KeyBackspace:
		if len(m.filterInput) > 0 {
			m.filterInput = m.filterInput[:len(m.filterInput)-1]
			m.applyFilter()
		}
	case tea.KeyRunes:
		m.filterInput += string(message.Runes)
		m.applyFilter()
	}
	return m, nil
}

func (m *model) applyFilter() {
	if m.filterInput == "" {
		m.filtered = make([]int, len(m.lines))
		for i := range m.lines {
			m.filtered[i] = i
		}
		m.setCursor(m.cursor)
		return
	}

	type scored struct {
		index int
		score int
	}
	var matches []scored
	for i, line := range m.lines {
		score, ok := fuzzyMatch(line.label, m.filterInput)
		if !ok {
			continue
		}
		matches = append(matches, scored{index: i, score: score})
	}
	// Higher fzf scores are better matches; keep the flattened
	// top-to-bottom tree order among equal scores so the result still
	// reads as a coherent subtree rather than a shuffled list.
	for i := 1; i < len(matches); i++ {
		for j := i; j > 0 && matches[j].score > matches[j-1].score; j-- {
			matches[j], matches[j-1] = matches[j-1], matches[j]
		}
	}

	m.filtered = make([]int, len(matches))
	for i, s := range matches {
		m.filtered[i] = s.index
	}
	m.setCursor(0)
}

func (m *model) moveCursor(delta int) {
	m.setCursor(m.cursor + delta)
}

func (m *model) setCursor(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(m.filtered)-1 {
		pos = len(m.filtered) - 1
	}
	if pos < 0 {
		pos = 0
	}
	m.cursor = pos

	visible := m.pageSize()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

func (m model) pageSize() int {
	size := m.height - 3
	if size < 1 {
		size = 1
	}
	return size
}
