// Copyright (c) 2025-2026 FARM-AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the crop advisor TUI.
//
// This file defines the main model: a toggleable chat panel holding the
// message transcript, the four farm condition inputs and the submission
// state.
package chat

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/uttamofficial/FARM-AI/internal/advisor"
	"github.com/uttamofficial/FARM-AI/internal/model"
	"github.com/uttamofficial/FARM-AI/internal/ui/components"
	"github.com/uttamofficial/FARM-AI/internal/ui/styles"
)

// =============================================================================
// PERSISTENCE HOOKS
// =============================================================================

// SubmissionRecorder logs completed submissions. Implemented by the history
// package adapter in main; nil disables logging.
type SubmissionRecorder interface {
	RecordSubmission(req advisor.RecommendationRequest, resp *advisor.RecommendationResponse)
}

// TranscriptSaver persists the transcript. Implemented by the session store
// adapter in main; nil disables persistence.
type TranscriptSaver interface {
	SaveTranscript(t *model.Transcript)
}

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the advisor chat panel.
type Model struct {
	// Visibility: the panel starts hidden and toggles without losing state
	visible bool

	// Conversation state
	transcript *model.Transcript
	farm       *model.FarmInputs

	// Input form
	inputs   [4]*components.FieldInput
	focusIdx int

	// Submission state. Counts in-flight requests; overlapping submissions
	// are allowed and each reply lands as its own transcript message.
	pending int

	// Service client
	client *advisor.Client

	// Persistence hooks (optional)
	recorder SubmissionRecorder
	saver    TranscriptSaver

	// Display
	viewport      viewport.Model
	spinner       spinner.Model
	keys          KeyMap
	theme         *styles.Theme
	width         int
	height        int
	ready         bool
	showTimestamp bool
}

// New creates the chat model. The panel starts hidden.
func New(client *advisor.Client, theme *styles.Theme) *Model {
	if theme == nil {
		theme = styles.NewTheme()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	m := &Model{
		visible:       false,
		transcript:    model.NewTranscript(),
		farm:          model.NewFarmInputs(),
		client:        client,
		spinner:       sp,
		keys:          DefaultKeyMap(),
		theme:         theme,
		width:         80,
		height:        24,
		showTimestamp: true,
	}

	for i, f := range model.Fields {
		m.inputs[i] = components.NewFieldInput(f, theme)
	}

	return m
}

// WithTranscript replaces the starting transcript, used when resuming a
// saved session.
func (m *Model) WithTranscript(t *model.Transcript) *Model {
	if t != nil {
		m.transcript = t
	}
	return m
}

// WithRecorder sets the submission log hook.
func (m *Model) WithRecorder(r SubmissionRecorder) *Model {
	m.recorder = r
	return m
}

// WithSaver sets the transcript persistence hook.
func (m *Model) WithSaver(s TranscriptSaver) *Model {
	m.saver = s
	return m
}

// WithTimestamps toggles bubble timestamps.
func (m *Model) WithTimestamps(show bool) *Model {
	m.showTimestamp = show
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// =============================================================================
// STATE ACCESSORS
// =============================================================================

// Visible reports whether the chat panel is shown.
func (m *Model) Visible() bool {
	return m.visible
}

// Transcript returns the current transcript.
func (m *Model) Transcript() *model.Transcript {
	return m.transcript
}

// Pending returns the number of in-flight submissions.
func (m *Model) Pending() int {
	return m.pending
}

// focusedInput returns the currently focused field input.
func (m *Model) focusedInput() *components.FieldInput {
	return m.inputs[m.focusIdx]
}

// focusField moves keyboard focus to the input at idx.
func (m *Model) focusField(idx int) tea.Cmd {
	if idx < 0 {
		idx = len(m.inputs) - 1
	}
	idx = idx % len(m.inputs)
	for i, in := range m.inputs {
		if i == idx {
			continue
		}
		in.Blur()
	}
	m.focusIdx = idx
	return m.inputs[idx].Focus()
}
