// Copyright (c) 2025-2026 FARM-AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the crop advisor TUI.
//
// This file contains the update loop: key routing, submission handling and
// the async recommendation fetch.
package chat

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/uttamofficial/FARM-AI/internal/advisor"
	"github.com/uttamofficial/FARM-AI/internal/model"
	"github.com/uttamofficial/FARM-AI/internal/util"
)

// =============================================================================
// UPDATE LOOP
// =============================================================================

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case RecommendationsMsg:
		return m.handleRecommendations(msg)

	case RecommendationErrMsg:
		return m.handleRecommendationErr(msg)
	}

	return m, nil
}

// handleKey routes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveTranscript()
		return m, tea.Quit

	case key.Matches(msg, m.keys.ToggleChat):
		// Hiding never clears state: transcript, inputs and in-flight
		// submissions all survive the toggle.
		m.visible = !m.visible
		if m.visible {
			m.refreshViewport()
			return m, m.focusField(m.focusIdx)
		}
		return m, nil
	}

	if !m.visible {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.NextField):
		return m, m.focusField(m.focusIdx + 1)

	case key.Matches(msg, m.keys.PrevField):
		return m, m.focusField(m.focusIdx - 1)

	case key.Matches(msg, m.keys.Submit):
		return m, m.attemptSubmit()

	case key.Matches(msg, m.keys.ScrollUp):
		m.viewport.LineUp(3)
		return m, nil

	case key.Matches(msg, m.keys.ScrollDown):
		m.viewport.LineDown(3)
		return m, nil
	}

	// Everything else goes to the focused field input.
	return m, m.focusedInput().Update(msg)
}

// resize recomputes layout dimensions.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	for _, in := range m.inputs {
		in.SetWidth(width / 2)
	}

	vpHeight := height - m.chromeHeight()
	if vpHeight < 3 {
		vpHeight = 3
	}

	if !m.ready {
		m.viewport = newViewport(width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = vpHeight
	}
	m.refreshViewport()
}

// =============================================================================
// SUBMISSION
// =============================================================================

// FetchingText is the placeholder bot message appended for each valid
// submission while its request is in flight.
const FetchingText = "Fetching recommendations..."

// attemptSubmit validates the four fields and either appends a validation
// message or starts an async fetch. Inputs are never cleared here; only a
// successful reply clears them.
func (m *Model) attemptSubmit() tea.Cmd {
	// Sync field inputs into the farm input state.
	for i, f := range model.Fields {
		if v, ok := m.inputs[i].Parse(); ok {
			m.farm.Set(f, v)
		} else {
			m.farm.Clear(f)
		}
	}

	missing := m.farm.Missing()
	if len(missing) > 0 {
		for i, f := range model.Fields {
			m.inputs[i].SetInvalid(fieldIn(missing, f))
		}
		m.transcript.AddBotMessage(validationMessage(missing))
		m.refreshViewport()
		return nil
	}

	for _, in := range m.inputs {
		in.SetInvalid(false)
	}

	// Every valid submission appends exactly two messages up front: the
	// user-side echo and one fetching placeholder. The reply or error
	// message follows whenever the service answers.
	m.transcript.AddUserMessage(m.submissionSummary())
	m.transcript.AddBotMessage(FetchingText)
	m.refreshViewport()

	req := advisor.NewRequest(m.farm)
	m.pending++

	client := m.client
	return func() tea.Msg {
		resp, err := client.Recommendations(context.Background(), req)
		if err != nil {
			return RecommendationErrMsg{Err: err}
		}
		return RecommendationsMsg{Request: req, Response: resp}
	}
}

// submissionSummary renders the user-side echo of a submission.
func (m *Model) submissionSummary() string {
	ph, _ := m.farm.Value(model.FieldSoilPH)
	moisture, _ := m.farm.Value(model.FieldSoilMoisture)
	temp, _ := m.farm.Value(model.FieldTemperature)
	rain, _ := m.farm.Value(model.FieldRainfall)

	return "Soil pH: " + util.FloatToString(ph) +
		", Soil Moisture: " + util.FloatToString(moisture) +
		", Temperature: " + util.FloatToString(temp) + " C" +
		", Rainfall: " + util.FloatToString(rain) + " mm"
}

// validationMessage names every invalid field in submission order.
func validationMessage(missing []model.Field) string {
	names := make([]string, 0, len(missing))
	for _, f := range missing {
		names = append(names, f.DisplayName())
	}
	return "Please provide valid values for: " + strings.Join(names, ", ")
}

// fieldIn reports whether f is in the list.
func fieldIn(fields []model.Field, f model.Field) bool {
	for _, x := range fields {
		if x == f {
			return true
		}
	}
	return false
}

// =============================================================================
// REPLY HANDLING
// =============================================================================

// handleRecommendations lands a successful reply: the formatted text joins
// the transcript and the inputs reset to empty.
func (m *Model) handleRecommendations(msg RecommendationsMsg) (tea.Model, tea.Cmd) {
	if m.pending > 0 {
		m.pending--
	}

	m.transcript.AddBotMessage(advisor.FormatRecommendations(msg.Response.Recommendations))

	m.farm.Reset()
	for _, in := range m.inputs {
		in.Reset()
	}

	m.refreshViewport()
	m.saveTranscript()

	if m.recorder != nil {
		recorder := m.recorder
		return m, func() tea.Msg {
			recorder.RecordSubmission(msg.Request, msg.Response)
			return nil
		}
	}
	return m, nil
}

// handleRecommendationErr lands a failed reply. Inputs are retained so the
// user can resubmit without retyping.
func (m *Model) handleRecommendationErr(msg RecommendationErrMsg) (tea.Model, tea.Cmd) {
	if m.pending > 0 {
		m.pending--
	}

	m.transcript.AddBotMessage(advisor.FormatError(msg.Err))
	m.refreshViewport()
	m.saveTranscript()
	return m, nil
}

// saveTranscript persists the transcript through the optional hook.
func (m *Model) saveTranscript() {
	if m.saver != nil && !m.transcript.IsEmpty() {
		m.saver.SaveTranscript(m.transcript)
	}
}
