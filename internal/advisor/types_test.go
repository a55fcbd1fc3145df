// Copyright (c) 2025-2026 FARM-AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package advisor

import (
	"encoding/json"
	"testing"

	"github.com/uttamofficial/FARM-AI/internal/model"
)

func TestRequestWireFormat(t *testing.T) {
	in := model.NewFarmInputs()
	in.Set(model.FieldSoilPH, 6.5)
	in.Set(model.FieldSoilMoisture, 40)
	in.Set(model.FieldTemperature, 25)
	in.Set(model.FieldRainfall, 100)

	body, err := json.Marshal(NewRequest(in))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	// The service depends on exactly this grouping and these key names.
	want := `{"farmInputs":{"Soil_pH":6.5,"Soil_Moisture":40},` +
		`"weatherForecast":{"Temperature_C":25,"Rainfall_mm":100}}`
	if string(body) != want {
		t.Errorf("request body = %s, want %s", body, want)
	}
}

func TestResponseParsing(t *testing.T) {
	raw := `{
		"recommendations": [
			{
				"Crop": "Wheat",
				"Estimated_ROI_Percentage": 12.34,
				"Predicted_Yield": 5.678,
				"Predicted_Price": 200.5,
				"Estimated_Profit": 150.256,
				"Pest_Risk_Score": 0.2,
				"Explanation": "Good soil match."
			}
		]
	}`

	var resp RecommendationResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if len(resp.Recommendations) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(resp.Recommendations))
	}

	r := resp.Recommendations[0]
	if r.Crop != "Wheat" {
		t.Errorf("Crop = %q, want %q", r.Crop, "Wheat")
	}
	if r.EstimatedROIPercentage != 12.34 {
		t.Errorf("ROI = %v, want 12.34", r.EstimatedROIPercentage)
	}
	if r.PestRiskScore != 0.2 {
		t.Errorf("PestRiskScore = %v, want 0.2", r.PestRiskScore)
	}
	if r.Explanation != "Good soil match." {
		t.Errorf("Explanation = %q", r.Explanation)
	}
}

func TestResponseIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		resp *RecommendationResponse
		want bool
	}{
		{"nil response", nil, true},
		{"nil slice", &RecommendationResponse{}, true},
		{"empty slice", &RecommendationResponse{Recommendations: []Recommendation{}}, true},
		{"one record", &RecommendationResponse{Recommendations: []Recommendation{{Crop: "Rice"}}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.resp.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMissingRecommendationsKeyParsesEmpty(t *testing.T) {
	var resp RecommendationResponse
	if err := json.Unmarshal([]byte(`{}`), &resp); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !resp.IsEmpty() {
		t.Error("absent recommendations key should parse as empty, not error")
	}
}
