// Copyright (c) 2025-2026 FARM-AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"math"
	"testing"
)

func TestFieldNames(t *testing.T) {
	tests := []struct {
		field       Field
		name        string
		displayName string
	}{
		{FieldSoilPH, "Soil_pH", "Soil pH"},
		{FieldSoilMoisture, "Soil_Moisture", "Soil Moisture"},
		{FieldTemperature, "Temperature_C", "Temperature C"},
		{FieldRainfall, "Rainfall_mm", "Rainfall mm"},
	}

	for _, tt := range tests {
		if got := tt.field.Name(); got != tt.name {
			t.Errorf("Name() = %q, want %q", got, tt.name)
		}
		if got := tt.field.DisplayName(); got != tt.displayName {
			t.Errorf("DisplayName() = %q, want %q", got, tt.displayName)
		}
	}
}

func TestFarmInputsSetAndValue(t *testing.T) {
	in := NewFarmInputs()

	if _, ok := in.Value(FieldSoilPH); ok {
		t.Error("new inputs should have no values set")
	}

	in.Set(FieldSoilPH, 6.5)
	v, ok := in.Value(FieldSoilPH)
	if !ok || v != 6.5 {
		t.Errorf("Value() = %v, %v, want 6.5, true", v, ok)
	}

	in.Clear(FieldSoilPH)
	if _, ok := in.Value(FieldSoilPH); ok {
		t.Error("Clear() should mark the field absent")
	}
}

func TestFarmInputsMissing(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(*FarmInputs)
		missing []Field
	}{
		{
			name:    "all absent",
			setup:   func(in *FarmInputs) {},
			missing: []Field{FieldSoilPH, FieldSoilMoisture, FieldTemperature, FieldRainfall},
		},
		{
			name: "one absent",
			setup: func(in *FarmInputs) {
				in.Set(FieldSoilPH, 6.5)
				in.Set(FieldSoilMoisture, 40)
				in.Set(FieldTemperature, 25)
			},
			missing: []Field{FieldRainfall},
		},
		{
			name: "NaN counts as missing",
			setup: func(in *FarmInputs) {
				in.Set(FieldSoilPH, math.NaN())
				in.Set(FieldSoilMoisture, 40)
				in.Set(FieldTemperature, 25)
				in.Set(FieldRainfall, 100)
			},
			missing: []Field{FieldSoilPH},
		},
		{
			name: "Inf counts as missing",
			setup: func(in *FarmInputs) {
				in.Set(FieldSoilPH, 6.5)
				in.Set(FieldSoilMoisture, math.Inf(1))
				in.Set(FieldTemperature, 25)
				in.Set(FieldRainfall, 100)
			},
			missing: []Field{FieldSoilMoisture},
		},
		{
			name: "complete",
			setup: func(in *FarmInputs) {
				in.Set(FieldSoilPH, 6.5)
				in.Set(FieldSoilMoisture, 40)
				in.Set(FieldTemperature, 25)
				in.Set(FieldRainfall, 100)
			},
			missing: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewFarmInputs()
			tt.setup(in)

			got := in.Missing()
			if len(got) != len(tt.missing) {
				t.Fatalf("Missing() = %v, want %v", got, tt.missing)
			}
			for i := range got {
				if got[i] != tt.missing[i] {
					t.Errorf("Missing()[%d] = %v, want %v", i, got[i], tt.missing[i])
				}
			}

			wantComplete := len(tt.missing) == 0
			if in.Complete() != wantComplete {
				t.Errorf("Complete() = %v, want %v", in.Complete(), wantComplete)
			}
		})
	}
}

func TestFarmInputsMissingOrder(t *testing.T) {
	// Missing fields must come back in submission order regardless of the
	// order values were set.
	in := NewFarmInputs()
	in.Set(FieldRainfall, 100)

	missing := in.Missing()
	want := []Field{FieldSoilPH, FieldSoilMoisture, FieldTemperature}
	if len(missing) != len(want) {
		t.Fatalf("Missing() = %v, want %v", missing, want)
	}
	for i := range want {
		if missing[i] != want[i] {
			t.Errorf("Missing()[%d] = %v, want %v", i, missing[i], want[i])
		}
	}
}

func TestFarmInputsReset(t *testing.T) {
	in := NewFarmInputs()
	for _, f := range Fields {
		in.Set(f, 1)
	}
	if !in.Complete() {
		t.Fatal("inputs should be complete before reset")
	}

	in.Reset()
	if in.Complete() {
		t.Error("Reset() should mark all fields absent")
	}
	if got := len(in.Missing()); got != 4 {
		t.Errorf("Missing() after reset returned %d fields, want 4", got)
	}
}
