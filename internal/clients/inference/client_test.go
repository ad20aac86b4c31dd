package inference

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/domain"
)

func TestPredictUsage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/predict", r.URL.Path)

		var profile map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&profile))
		assert.Equal(t, "New England", profile["DIVISION"])

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]float64{
				"heating_kbtu":  40000,
				"cooling_kbtu":  8000,
				"water_kbtu":    12000,
				"baseload_kbtu": 15000,
				"total_kbtu":    80000,
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, zerolog.Nop())
	breakdown, err := c.PredictUsage(context.Background(), domain.HomeProfile{"DIVISION": "New England"})

	require.NoError(t, err)
	assert.Equal(t, 80000.0, breakdown.Total)
	assert.Equal(t, 40000.0, breakdown.Heating)
}

func TestPredictUsageServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		msg := "model not loaded"
		json.NewEncoder(w).Encode(map[string]any{"success": false, "error": &msg})
	}))
	defer srv.Close()

	c := New(srv.URL, zerolog.Nop())
	_, err := c.PredictUsage(context.Background(), domain.HomeProfile{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "model not loaded")
}

func TestPredictUsageRejectsNonPositiveTotal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]float64{"total_kbtu": 0},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, zerolog.Nop())
	_, err := c.PredictUsage(context.Background(), domain.HomeProfile{})
	require.Error(t, err)
}

func TestHealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL, zerolog.Nop())
	assert.True(t, c.Healthy(context.Background()))

	srv.Close()
	assert.False(t, c.Healthy(context.Background()))
}
