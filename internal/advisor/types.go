// Copyright (c) 2025-2026 FARM-AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package advisor

import "github.com/uttamofficial/FARM-AI/internal/model"

// =============================================================================
// REQUEST TYPES
// =============================================================================

// FarmConditions carries the soil measurements group of the request body.
type FarmConditions struct {
	SoilPH       float64 `json:"Soil_pH"`
	SoilMoisture float64 `json:"Soil_Moisture"`
}

// WeatherForecast carries the weather measurements group of the request body.
type WeatherForecast struct {
	TemperatureC float64 `json:"Temperature_C"`
	RainfallMm   float64 `json:"Rainfall_mm"`
}

// RecommendationRequest is the body of the recommendation POST. The service
// expects the four measurements regrouped into exactly these two objects;
// the group names and field assignments are part of the wire contract.
type RecommendationRequest struct {
	FarmInputs      FarmConditions  `json:"farmInputs"`
	WeatherForecast WeatherForecast `json:"weatherForecast"`
}

// NewRequest regroups the four enumerated fields into the request body.
// Callers must only pass complete inputs; an absent field contributes its
// zero value.
func NewRequest(inputs *model.FarmInputs) RecommendationRequest {
	ph, _ := inputs.Value(model.FieldSoilPH)
	moisture, _ := inputs.Value(model.FieldSoilMoisture)
	temp, _ := inputs.Value(model.FieldTemperature)
	rain, _ := inputs.Value(model.FieldRainfall)

	return RecommendationRequest{
		FarmInputs: FarmConditions{
			SoilPH:       ph,
			SoilMoisture: moisture,
		},
		WeatherForecast: WeatherForecast{
			TemperatureC: temp,
			RainfallMm:   rain,
		},
	}
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// Recommendation is one crop suggestion returned by the service. Records
// arrive ranked best-first; the rank shown to the user is positional.
type Recommendation struct {
	Crop                   string  `json:"Crop"`
	EstimatedROIPercentage float64 `json:"Estimated_ROI_Percentage"`
	PredictedYield         float64 `json:"Predicted_Yield"`
	PredictedPrice         float64 `json:"Predicted_Price"`
	EstimatedProfit        float64 `json:"Estimated_Profit"`
	PestRiskScore          float64 `json:"Pest_Risk_Score"`
	Explanation            string  `json:"Explanation"`
}

// RecommendationResponse is the body of a successful service reply. An
// absent or empty recommendations array is a valid response and is handled
// distinctly from errors.
type RecommendationResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
}

// IsEmpty returns true when the response carries no recommendations.
func (r *RecommendationResponse) IsEmpty() bool {
	return r == nil || len(r.Recommendations) == 0
}
