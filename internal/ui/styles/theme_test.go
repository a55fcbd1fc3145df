// Copyright (c) 2025-2026 FARM-AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"
)

func TestNewTheme(t *testing.T) {
	theme := NewTheme()
	if theme == nil {
		t.Fatal("NewTheme() returned nil")
	}

	// Styles must carry content through rendering.
	out := theme.UserBubble.Render("hello")
	if !strings.Contains(out, "hello") {
		t.Errorf("UserBubble.Render lost content: %q", out)
	}
	out = theme.FieldLabelFocus.Render("Soil pH")
	if !strings.Contains(out, "Soil pH") {
		t.Errorf("FieldLabelFocus.Render lost content: %q", out)
	}
}

func TestAdaptiveColorsHaveBothVariants(t *testing.T) {
	colors := map[string]struct{ light, dark string }{
		"Leaf":      {Leaf.Light, Leaf.Dark},
		"Rose":      {Rose.Light, Rose.Dark},
		"UserBgFg":  {UserBubbleFg.Light, UserBubbleFg.Dark},
		"BotBgFg":   {BotBubbleFg.Light, BotBubbleFg.Dark},
		"TextMuted": {TextMuted.Light, TextMuted.Dark},
	}

	for name, c := range colors {
		if c.light == "" || c.dark == "" {
			t.Errorf("%s is missing a light or dark variant", name)
		}
	}
}
