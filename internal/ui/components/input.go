// Copyright (c) 2025-2026 FARM-AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/uttamofficial/FARM-AI/internal/model"
	"github.com/uttamofficial/FARM-AI/internal/ui/styles"
)

// =============================================================================
// FIELD INPUT COMPONENT - Labeled numeric input for one farm condition
// =============================================================================

// FieldInput wraps a textinput with its field label, advisory range hint and
// an invalid marker set after a failed submission attempt.
type FieldInput struct {
	Field   model.Field
	input   textinput.Model
	invalid bool
	width   int
	theme   *styles.Theme
}

// NewFieldInput creates the input for one farm condition field.
func NewFieldInput(field model.Field, theme *styles.Theme) *FieldInput {
	ti := textinput.New()
	ti.Placeholder = field.Placeholder()
	ti.CharLimit = 16
	ti.Width = 12
	ti.Prompt = "> "

	ti.PromptStyle = lipgloss.NewStyle().
		Foreground(styles.Leaf).
		Bold(true)

	ti.TextStyle = lipgloss.NewStyle().
		Foreground(styles.TextPrimary)

	ti.PlaceholderStyle = lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Italic(true)

	ti.Cursor.Style = lipgloss.NewStyle().
		Foreground(styles.Leaf)

	return &FieldInput{
		Field: field,
		input: ti,
		width: 40,
		theme: theme,
	}
}

// Focus focuses the input.
func (f *FieldInput) Focus() tea.Cmd {
	return f.input.Focus()
}

// Blur removes focus from the input.
func (f *FieldInput) Blur() {
	f.input.Blur()
}

// Focused reports whether the input is focused.
func (f *FieldInput) Focused() bool {
	return f.input.Focused()
}

// SetWidth sets the rendering width.
func (f *FieldInput) SetWidth(width int) {
	f.width = width
	inputWidth := width - len(f.input.Prompt) - 4
	if inputWidth < 8 {
		inputWidth = 8
	}
	f.input.Width = inputWidth
}

// Value returns the raw text value.
func (f *FieldInput) Value() string {
	return f.input.Value()
}

// SetValue replaces the text value.
func (f *FieldInput) SetValue(v string) {
	f.input.SetValue(v)
}

// Reset clears the text and the invalid marker.
func (f *FieldInput) Reset() {
	f.input.Reset()
	f.invalid = false
}

// Parse returns the numeric value of the field, or ok=false when the text
// is empty or not a finite number.
func (f *FieldInput) Parse() (float64, bool) {
	raw := strings.TrimSpace(f.input.Value())
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// SetInvalid marks or clears the invalid state.
func (f *FieldInput) SetInvalid(invalid bool) {
	f.invalid = invalid
}

// Invalid reports whether the field is marked invalid.
func (f *FieldInput) Invalid() bool {
	return f.invalid
}

// Update forwards a message to the underlying textinput. Typing clears the
// invalid marker.
func (f *FieldInput) Update(msg tea.Msg) tea.Cmd {
	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if f.invalid && f.input.Value() != before {
		f.invalid = false
	}
	return cmd
}

// View renders the label, hint and input on two lines.
func (f *FieldInput) View() string {
	labelStyle := f.theme.FieldLabel
	if f.input.Focused() {
		labelStyle = f.theme.FieldLabelFocus
	}
	if f.invalid {
		labelStyle = f.theme.FieldError
	}

	label := labelStyle.Render(f.Field.DisplayName())
	hint := f.theme.FieldHint.Render("(" + f.Field.Hint() + ")")

	return label + " " + hint + "\n" + f.input.View()
}
