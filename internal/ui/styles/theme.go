// Copyright (c) 2025-2026 FARM-AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header      lipgloss.Style
	HeaderTitle lipgloss.Style

	// ==========================================================================
	// MESSAGE BUBBLE STYLES
	// ==========================================================================

	UserBubble lipgloss.Style
	BotBubble  lipgloss.Style
	Timestamp  lipgloss.Style

	// ==========================================================================
	// INPUT FORM STYLES
	// ==========================================================================

	FormBox         lipgloss.Style
	FieldLabel      lipgloss.Style
	FieldLabelFocus lipgloss.Style
	FieldHint       lipgloss.Style
	FieldError      lipgloss.Style
	SubmitNote      lipgloss.Style

	// ==========================================================================
	// STATUS STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	Spinner      lipgloss.Style
	PendingText  lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// LAUNCHER STYLES
	// ==========================================================================

	LauncherBox  lipgloss.Style
	LauncherHint lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	colorProfile := termenv.ColorProfile()

	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// App container
	t.App = lipgloss.NewStyle()

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Leaf).
		Background(SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Leaf).
		Padding(0, 2).
		Align(lipgloss.Center)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Leaf)

	// Message bubbles
	t.UserBubble = lipgloss.NewStyle().
		Foreground(UserBubbleFg).
		Background(UserBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(UserBubbleBorder).
		Padding(0, 2).
		MarginLeft(4)

	t.BotBubble = lipgloss.NewStyle().
		Foreground(BotBubbleFg).
		Background(BotBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(BotBubbleBorder).
		Padding(0, 2).
		MarginRight(4)

	t.Timestamp = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Input form
	t.FormBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.FieldLabel = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.FieldLabelFocus = lipgloss.NewStyle().
		Bold(true).
		Foreground(Leaf)

	t.FieldHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.FieldError = lipgloss.NewStyle().
		Foreground(Rose)

	t.SubmitNote = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Status
	t.StatusBar = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(SurfaceDim).
		Padding(0, 1)

	t.Spinner = lipgloss.NewStyle().
		Foreground(Amber)

	t.PendingText = lipgloss.NewStyle().
		Foreground(Amber).
		Italic(true)

	t.ShortcutKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Sky)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Launcher (chat hidden)
	t.LauncherBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Leaf).
		Padding(1, 3).
		Align(lipgloss.Center)

	t.LauncherHint = lipgloss.NewStyle().
		Foreground(TextMuted)
}
