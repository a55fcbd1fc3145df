// Copyright (c) 2025-2026 FARM-AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the crop advisor TUI.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/uttamofficial/FARM-AI/internal/model"
	"github.com/uttamofficial/FARM-AI/internal/ui/styles"
)

// =============================================================================
// MESSAGE BUBBLE COMPONENT
// =============================================================================

// MessageBubble renders a single transcript message as a styled bubble.
// User messages lean right in blue, advisor messages lean left in green.
type MessageBubble struct {
	Message       *model.Message
	Width         int
	ShowTimestamp bool
	theme         *styles.Theme
}

// NewMessageBubble creates a bubble for a message.
func NewMessageBubble(msg *model.Message, theme *styles.Theme) *MessageBubble {
	if msg == nil {
		msg = &model.Message{Role: model.RoleBot}
	}
	return &MessageBubble{
		Message:       msg,
		Width:         80,
		ShowTimestamp: true,
		theme:         theme,
	}
}

// SetWidth sets the bubble rendering width.
func (b *MessageBubble) SetWidth(width int) {
	b.Width = width
}

// View renders the message bubble.
func (b *MessageBubble) View() string {
	switch b.Message.Role {
	case model.RoleUser:
		return b.renderUserBubble()
	default:
		return b.renderBotBubble()
	}
}

// ==========================================================================
// USER BUBBLE - Blue tones, right-aligned feel
// ==========================================================================

func (b *MessageBubble) renderUserBubble() string {
	content := b.Message.Content
	if content == "" {
		content = "..."
	}

	maxContentWidth := b.Width - 12 // Account for margins and padding
	if maxContentWidth < 20 {
		maxContentWidth = 20
	}
	wrapped := wordWrap(content, maxContentWidth)
	contentWidth := minInt(maxLineWidth(wrapped)+4, b.Width-8)

	bubble := b.theme.UserBubble.Width(contentWidth).Render(wrapped)

	roleLine := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Italic(true).
		Render(b.Message.Role.DisplayName())
	if b.ShowTimestamp {
		roleLine += " " + b.renderTimestamp()
	}

	block := lipgloss.JoinVertical(lipgloss.Right, bubble, roleLine)
	return lipgloss.NewStyle().Width(b.Width).Align(lipgloss.Right).Render(block)
}

// ==========================================================================
// BOT BUBBLE - Green tones, left-aligned
// ==========================================================================

func (b *MessageBubble) renderBotBubble() string {
	content := b.Message.Content
	if content == "" {
		content = "..."
	}

	maxContentWidth := b.Width - 12
	if maxContentWidth < 20 {
		maxContentWidth = 20
	}
	wrapped := wordWrap(content, maxContentWidth)
	contentWidth := minInt(maxLineWidth(wrapped)+4, b.Width-8)

	bubble := b.theme.BotBubble.Width(contentWidth).Render(wrapped)

	roleLine := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Italic(true).
		Render(b.Message.Role.DisplayName())
	if b.ShowTimestamp {
		roleLine += " " + b.renderTimestamp()
	}

	return lipgloss.JoinVertical(lipgloss.Left, bubble, roleLine)
}

// renderTimestamp renders the message time as HH:MM.
func (b *MessageBubble) renderTimestamp() string {
	return b.theme.Timestamp.Render(b.Message.Timestamp.Format("15:04"))
}
