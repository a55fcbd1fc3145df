// Copyright (c) 2025-2026 FARM-AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the crop advisor TUI.
//
// This file defines the Bubble Tea message types used by the chat
// interface. All message types follow Bubble Tea conventions and are
// immutable.
package chat

import (
	"github.com/uttamofficial/FARM-AI/internal/advisor"
)

// =============================================================================
// RECOMMENDATION MESSAGES
// =============================================================================

// RecommendationsMsg delivers a successful service reply for one submission.
// The request is carried along so the submission can be logged.
type RecommendationsMsg struct {
	Request  advisor.RecommendationRequest
	Response *advisor.RecommendationResponse
}

// RecommendationErrMsg delivers a failed submission. Transport failures,
// non-2xx statuses and parse failures all arrive here.
type RecommendationErrMsg struct {
	Err error
}
