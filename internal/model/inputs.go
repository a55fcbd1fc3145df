// Copyright (c) 2025-2026 FARM-AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "math"

// =============================================================================
// FARM FIELD TYPE
// =============================================================================

// Field identifies one of the four farm-condition measurements the widget
// collects. Using an enumerated type instead of string keys keeps field
// lookups type-safe.
type Field int

const (
	FieldSoilPH Field = iota
	FieldSoilMoisture
	FieldTemperature
	FieldRainfall
)

// Fields lists all four fields in submission order.
var Fields = [4]Field{FieldSoilPH, FieldSoilMoisture, FieldTemperature, FieldRainfall}

// Name returns the underscore-separated field name used on the wire.
func (f Field) Name() string {
	switch f {
	case FieldSoilPH:
		return "Soil_pH"
	case FieldSoilMoisture:
		return "Soil_Moisture"
	case FieldTemperature:
		return "Temperature_C"
	case FieldRainfall:
		return "Rainfall_mm"
	default:
		return "Unknown"
	}
}

// DisplayName returns the field name with underscores replaced by spaces,
// for user-facing messages.
func (f Field) DisplayName() string {
	switch f {
	case FieldSoilPH:
		return "Soil pH"
	case FieldSoilMoisture:
		return "Soil Moisture"
	case FieldTemperature:
		return "Temperature C"
	case FieldRainfall:
		return "Rainfall mm"
	default:
		return "Unknown"
	}
}

// Hint returns the advisory input range shown next to the field. The range
// is a hint only; validation never enforces it.
func (f Field) Hint() string {
	switch f {
	case FieldSoilPH:
		return "5.0-9.0"
	case FieldSoilMoisture:
		return "10-50 %"
	case FieldTemperature:
		return "0-45 C"
	case FieldRainfall:
		return "0-500 mm"
	default:
		return ""
	}
}

// Placeholder returns the placeholder text for the field's input control.
func (f Field) Placeholder() string {
	switch f {
	case FieldSoilPH:
		return "e.g. 6.5"
	case FieldSoilMoisture:
		return "e.g. 40"
	case FieldTemperature:
		return "e.g. 25"
	case FieldRainfall:
		return "e.g. 100"
	default:
		return ""
	}
}

// =============================================================================
// FARM INPUTS
// =============================================================================

// FarmInputs bundles the four optional numeric measurements into a single
// piece of state with one update entry point per field. A field is either
// absent or holds a number; absent is the zero state and the state each
// field returns to after a successful submission.
type FarmInputs struct {
	values [4]float64
	set    [4]bool
}

// NewFarmInputs creates an empty input set (all fields absent).
func NewFarmInputs() *FarmInputs {
	return &FarmInputs{}
}

// Set stores a value for the field.
func (in *FarmInputs) Set(f Field, v float64) {
	in.values[f] = v
	in.set[f] = true
}

// Clear marks a single field absent.
func (in *FarmInputs) Clear(f Field) {
	in.values[f] = 0
	in.set[f] = false
}

// Reset marks all four fields absent.
func (in *FarmInputs) Reset() {
	*in = FarmInputs{}
}

// Value returns the field's current value and whether it is present.
func (in *FarmInputs) Value(f Field) (float64, bool) {
	return in.values[f], in.set[f]
}

// Missing returns the fields that are absent or non-finite, in submission
// order. An empty result means the inputs are ready to submit.
func (in *FarmInputs) Missing() []Field {
	var missing []Field
	for _, f := range Fields {
		v, ok := in.Value(f)
		if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
			missing = append(missing, f)
		}
	}
	return missing
}

// Complete returns true when all four fields hold finite numbers.
func (in *FarmInputs) Complete() bool {
	return len(in.Missing()) == 0
}
