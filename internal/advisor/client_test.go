// Copyright (c) 2025-2026 FARM-AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRequest() RecommendationRequest {
	return RecommendationRequest{
		FarmInputs:      FarmConditions{SoilPH: 6.5, SoilMoisture: 40},
		WeatherForecast: WeatherForecast{TemperatureC: 25, RainfallMm: 100},
	}
}

func TestRecommendationsSuccess(t *testing.T) {
	var gotPath, gotMethod, gotContentType string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(RecommendationResponse{
			Recommendations: []Recommendation{{Crop: "Wheat", EstimatedROIPercentage: 12.3}},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	resp, err := client.Recommendations(context.Background(), testRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, RecommendationsPath, gotPath)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotContentType)
	assert.JSONEq(t,
		`{"farmInputs":{"Soil_pH":6.5,"Soil_Moisture":40},"weatherForecast":{"Temperature_C":25,"Rainfall_mm":100}}`,
		string(gotBody))

	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, "Wheat", resp.Recommendations[0].Crop)
}

func TestRecommendationsEmptyReplyIsNotError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"recommendations":[]}`))
	}))
	defer srv.Close()

	resp, err := NewClient(srv.URL).Recommendations(context.Background(), testRequest())
	require.NoError(t, err)
	assert.True(t, resp.IsEmpty())
}

func TestRecommendationsStatusError(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"client error", http.StatusBadRequest},
		{"server error", http.StatusInternalServerError},
		{"service unavailable", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", tt.status)
			}))
			defer srv.Close()

			resp, err := NewClient(srv.URL).Recommendations(context.Background(), testRequest())
			require.Error(t, err)
			assert.Nil(t, resp)
			assert.True(t, IsStatusError(err))

			var se *StatusError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.status, se.StatusCode)
		})
	}
}

func TestRecommendationsSingleAttempt(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Recommendations(context.Background(), testRequest())
	require.Error(t, err)

	// One submission is exactly one POST: no retry on failure.
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestRecommendationsMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"recommendations": [`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Recommendations(context.Background(), testRequest())
	require.Error(t, err)
	assert.False(t, IsStatusError(err))
}

func TestRecommendationsContextCancel(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewClient(srv.URL).Recommendations(ctx, testRequest())
	require.Error(t, err)
}

func TestClientDefaults(t *testing.T) {
	c := NewClient("")
	assert.Equal(t, DefaultBaseURL, c.BaseURL())

	c = NewClient("http://example.com/")
	assert.Equal(t, "http://example.com", c.BaseURL(), "trailing slash should be trimmed")
}

func TestWithTimeoutDoesNotMutateSharedClient(t *testing.T) {
	a := NewClient("http://a.example").WithTimeout(time.Second)
	b := NewClient("http://b.example")

	_ = a
	assert.Equal(t, time.Duration(0), sharedHTTPClient.Timeout,
		"shared client must keep no timeout")
	_ = b
}
