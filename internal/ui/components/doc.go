// Copyright (c) 2025-2026 FARM-AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the crop advisor
// TUI: message bubbles for the transcript and labeled numeric inputs for the
// farm condition form.
package components
