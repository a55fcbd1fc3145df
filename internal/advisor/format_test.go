// Copyright (c) 2025-2026 FARM-AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package advisor

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestFormatRecommendationsEmpty(t *testing.T) {
	if got := FormatRecommendations(nil); got != NoRecommendationsText {
		t.Errorf("FormatRecommendations(nil) = %q, want %q", got, NoRecommendationsText)
	}
	if got := FormatRecommendations([]Recommendation{}); got != NoRecommendationsText {
		t.Errorf("FormatRecommendations(empty) = %q, want %q", got, NoRecommendationsText)
	}
}

func TestFormatRecommendationsSingle(t *testing.T) {
	recs := []Recommendation{
		{
			Crop:                   "Wheat",
			EstimatedROIPercentage: 12.34,
			PredictedYield:         5.678,
			PredictedPrice:         200.5,
			EstimatedProfit:        150.256,
			PestRiskScore:          0.2,
			Explanation:            "Good soil match.",
		},
	}

	got := FormatRecommendations(recs)

	// ROI rounds to one decimal, money to two, pest risk scales to percent.
	wantFragments := []string{
		"Here are the recommended crops for your conditions:",
		"1. Wheat - 12.3% ROI",
		"Yield: 5.7 tons | Price: $200.50 | Profit: $150.26",
		"Pest Risk: 20.0%",
		"Good soil match.",
	}
	for _, frag := range wantFragments {
		if !strings.Contains(got, frag) {
			t.Errorf("output missing %q\ngot:\n%s", frag, got)
		}
	}
}

func TestFormatRecommendationsRanking(t *testing.T) {
	recs := []Recommendation{
		{Crop: "Rice"},
		{Crop: "Maize"},
		{Crop: "Barley"},
	}

	got := FormatRecommendations(recs)

	// Rank is positional: first record is 1 regardless of its numbers.
	for i, crop := range []string{"Rice", "Maize", "Barley"} {
		want := fmt.Sprintf("%d. %s", i+1, crop)
		if !strings.Contains(got, want) {
			t.Errorf("output missing rank line %q\ngot:\n%s", want, got)
		}
	}

	if strings.Index(got, "Rice") > strings.Index(got, "Maize") {
		t.Error("records should keep service order")
	}
}

func TestFormatRecommendationsOmitsEmptyExplanation(t *testing.T) {
	recs := []Recommendation{{Crop: "Rice", Explanation: ""}}
	got := FormatRecommendations(recs)

	for _, line := range strings.Split(got, "\n") {
		if strings.TrimSpace(line) == "" && line != "" {
			t.Errorf("output has a whitespace-only line: %q", line)
		}
	}
	if strings.HasSuffix(got, "\n") {
		t.Error("output should not end with a newline")
	}
}

func TestFormatError(t *testing.T) {
	err := errors.New("connection refused")
	got := FormatError(err)
	want := "Error fetching recommendations: connection refused. Please try again."
	if got != want {
		t.Errorf("FormatError() = %q, want %q", got, want)
	}
}
