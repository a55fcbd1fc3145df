// Copyright (c) 2025-2026 FARM-AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the crop advisor TUI.
//
// This file renders the two panel states: the collapsed launcher and the
// open chat with transcript, input form and status bar.
package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/uttamofficial/FARM-AI/internal/ui/components"
	"github.com/uttamofficial/FARM-AI/internal/util"
)

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (m *Model) View() string {
	if !m.visible {
		return m.viewLauncher()
	}
	return m.viewChat()
}

// viewLauncher renders the collapsed state: a small box inviting the user
// to open the chat, mirroring a floating chat button.
func (m *Model) viewLauncher() string {
	title := m.theme.HeaderTitle.Render("FARM-AI Crop Advisor")
	hint := m.theme.LauncherHint.Render("press ctrl+t to chat")

	note := ""
	if m.pending > 0 {
		note = "\n" + m.theme.PendingText.Render(
			m.spinner.View()+" fetching recommendations ("+util.IntToString(m.pending)+" pending)")
	}

	box := m.theme.LauncherBox.Render(title + "\n" + hint + note)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// viewChat renders the open panel.
func (m *Model) viewChat() string {
	var sections []string

	sections = append(sections, m.viewHeader())

	if m.ready {
		sections = append(sections, m.viewport.View())
	}

	sections = append(sections, m.viewForm())
	sections = append(sections, m.viewStatusBar())

	return m.theme.App.Render(strings.Join(sections, "\n"))
}

// viewHeader renders the panel title bar.
func (m *Model) viewHeader() string {
	return m.theme.Header.Width(m.width - 2).Render("FARM-AI Crop Advisor")
}

// viewForm renders the four field inputs in a two-column grid with the
// submit hint underneath.
func (m *Model) viewForm() string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		m.inputs[0].View(),
		m.inputs[2].View(),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.inputs[1].View(),
		m.inputs[3].View(),
	)
	grid := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)

	note := m.theme.SubmitNote.Render("Enter to get recommendations")
	return m.theme.FormBox.Width(m.width - 2).Render(grid + "\n" + note)
}

// viewStatusBar renders pending state and shortcuts.
func (m *Model) viewStatusBar() string {
	var left string
	if m.pending > 0 {
		left = m.spinner.View() + " " +
			m.theme.PendingText.Render("fetching ("+util.IntToString(m.pending)+")")
	} else {
		left = m.theme.ShortcutDesc.Render("ready")
	}

	var shortcuts []string
	for _, b := range m.keys.ShortHelp() {
		shortcuts = append(shortcuts,
			m.theme.ShortcutKey.Render(b.Help().Key)+" "+
				m.theme.ShortcutDesc.Render(b.Help().Desc))
	}
	right := strings.Join(shortcuts, "  ")

	gap := m.width - 4 - util.StringWidth(left) - util.StringWidth(right)
	if gap < 1 {
		gap = 1
	}

	return m.theme.StatusBar.Width(m.width - 2).
		Render(left + strings.Repeat(" ", gap) + right)
}

// =============================================================================
// VIEWPORT
// =============================================================================

// newViewport creates the transcript viewport.
func newViewport(width, height int) viewport.Model {
	vp := viewport.New(width, height)
	vp.SetContent("")
	return vp
}

// chromeHeight returns the rows taken by everything except the viewport:
// header (3 with border), form (5 content rows plus border), status bar (1).
func (m *Model) chromeHeight() int {
	return 11
}

// refreshViewport rebuilds the transcript content and follows the tail.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	var blocks []string
	for _, msg := range m.transcript.Messages() {
		bubble := components.NewMessageBubble(msg, m.theme)
		bubble.SetWidth(m.viewport.Width)
		bubble.ShowTimestamp = m.showTimestamp
		blocks = append(blocks, bubble.View())
	}

	m.viewport.SetContent(strings.Join(blocks, "\n\n"))
	m.viewport.GotoBottom()
}
