// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleHeader   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	styleSelected = lipgloss.NewStyle().Reverse(true)
	styleDim      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleFilter   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

func (m model) View() string {
	var b strings.Builder

	b.WriteString(styleHeader.Render(fmt.Sprintf("ari-inspect — %s", m.sourcePath)))
	b.WriteString("\n")

	visible := m.pageSize()
	end := m.scrollOffset + visible
	if end > len(m.filtered) {
		end = len(m.filtered)
	}

	for i := m.scrollOffset; i < end; i++ {
		lineIdx := m.filtered[i]
		line := m.lines[lineIdx]
		rendered := strings.Repeat("  ", line.depth) + line.label
		if i == m.cursor {
			rendered = styleSelected.Render(rendered)
		}
		b.WriteString(rendered)
		b.WriteString("\n")
	}

	if m.filterActive {
		b.WriteString(styleFilter.Render("/" + m.filterInput))
	} else if m.filterInput != "" {
		b.WriteString(styleDim.Render(fmt.Sprintf("filter: %q (esc to clear)", m.filterInput)))
	} else {
		b.WriteString(styleDim.Render("j/k move, / filter, q quit"))
	}

	return b.String()
}
