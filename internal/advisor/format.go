// Copyright (c) 2025-2026 FARM-AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package advisor

import (
	"fmt"
	"strings"
)

// NoRecommendationsText is shown when a well-formed reply carries no
// recommendations. This is informational, not an error.
const NoRecommendationsText = "No recommendations found for the provided data."

// FormatRecommendations converts a service reply into the text block shown
// as a single bot message. Each record becomes a numbered sub-block with
// ROI, yield, price, profit, pest risk and the free-text explanation.
// Formatting never fails; zero values of fields the service omitted are
// rendered as-is rather than masked.
func FormatRecommendations(recs []Recommendation) string {
	if len(recs) == 0 {
		return NoRecommendationsText
	}

	var sb strings.Builder
	sb.WriteString("Here are the recommended crops for your conditions:\n")

	for i, r := range recs {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "%d. %s - %.1f%% ROI\n", i+1, r.Crop, r.EstimatedROIPercentage)
		fmt.Fprintf(&sb, "   Yield: %.1f tons | Price: $%.2f | Profit: $%.2f\n",
			r.PredictedYield, r.PredictedPrice, r.EstimatedProfit)
		fmt.Fprintf(&sb, "   Pest Risk: %.1f%%\n", r.PestRiskScore*100)
		if r.Explanation != "" {
			fmt.Fprintf(&sb, "   %s\n", r.Explanation)
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

// FormatError converts a failed submission into the bot message shown to
// the user. The underlying error text is embedded verbatim.
func FormatError(err error) string {
	return fmt.Sprintf("Error fetching recommendations: %v. Please try again.", err)
}
