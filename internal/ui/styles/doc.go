// Copyright (c) 2025-2026 FARM-AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles centralizes colors and lipgloss styles. Colors are
// AdaptiveColor pairs so light and dark terminals both stay readable.
package styles
